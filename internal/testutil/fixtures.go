// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// BundlerYAML is an OAS 3.0 document exercising every HTTP method colour,
// nested object properties, array items and schema references.
const BundlerYAML = `openapi: 3.0.3
info:
  title: Bundler API
  version: 1.2.0
  description: Bundles ISO 8583 messages for settlement.
paths:
  /bundles:
    get:
      operationId: listBundles
      summary: List bundles
      description: Lists every ` + "`Bundle`" + ` visible to the caller.
      parameters:
        - name: limit
          in: query
          description: "Max results|page size"
          schema:
            type: integer
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Bundle"
    post:
      operationId: createBundle
      summary: Create bundle
      description: |-
        Creates a bundle from "raw" messages.
        Returns the stored ` + "`Bundle`" + ` schema.
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/BundleRequest"
      responses:
        "201":
          description: Created
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Bundle"
        "400":
          $ref: "#/components/responses/BadRequest"
  /bundles/{bundleId}:
    parameters:
      - $ref: "#/components/parameters/BundleId"
    get:
      operationId: getBundle
      summary: Get bundle
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Bundle"
    put:
      operationId: replaceBundle
      summary: Replace bundle
      responses:
        "200":
          description: OK
    patch:
      operationId: updateBundle
      summary: Update bundle
      responses:
        "200":
          description: OK
    delete:
      operationId: deleteBundle
      summary: Delete bundle
      responses:
        "204":
          description: Deleted
  /health:
    head:
      responses:
        "200":
          description: OK
components:
  parameters:
    BundleId:
      name: bundleId
      in: path
      required: true
      description: Bundle identifier
      schema:
        type: string
  responses:
    BadRequest:
      description: Invalid request
      content:
        application/json:
          schema:
            $ref: "#/components/schemas/Error"
  schemas:
    Bundle:
      type: object
      description: A stored bundle.
      required:
        - id
        - messages
      properties:
        id:
          type: string
          description: Bundle identifier
        status:
          type: string
          description: "open|closed"
        messages:
          type: array
          items:
            $ref: "#/components/schemas/Message"
        settlement:
          type: object
          description: Settlement details
          required:
            - currency
          properties:
            currency:
              type: string
            window:
              type: object
              properties:
                opensAt:
                  type: string
                  format: date-time
                  description: |-
                    Start of window
                    in UTC
    BundleRequest:
      type: object
      required:
        - messages
      properties:
        messages:
          type: array
          items:
            $ref: "#/components/schemas/Message"
        note:
          description: Free text
    Message:
      type: object
      description: A single ISO 8583 message.
      required:
        - mti
      properties:
        mti:
          type: string
          description: Message type indicator
        amount:
          type: number
          description: Transaction amount
        bundle:
          $ref: "#/components/schemas/Bundle"
    Error:
      type: object
      properties:
        code:
          type: integer
        message:
          type: string
`

// SwaggerYAML is a minimal OAS 2.0 document with a body parameter.
const SwaggerYAML = `swagger: "2.0"
info:
  title: Legacy API
  version: "0.9"
consumes:
  - application/json
produces:
  - application/json
paths:
  /pets:
    post:
      operationId: addPet
      summary: Add pet
      parameters:
        - name: body
          in: body
          required: true
          schema:
            $ref: "#/definitions/Pet"
        - name: dryRun
          in: query
          type: boolean
      responses:
        "200":
          description: OK
          schema:
            $ref: "#/definitions/Pet"
definitions:
  Pet:
    type: object
    required:
      - name
    properties:
      name:
        type: string
      tags:
        type: array
        items:
          type: string
`

// PetsYAML is a small acyclic OAS 3.0 document that passes structural
// validation.
const PetsYAML = `openapi: 3.0.3
info:
  title: Pets
  version: "1.0"
paths:
  /pets:
    get:
      operationId: listPets
      summary: List pets
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      required:
        - name
      properties:
        name:
          type: string
        age:
          type: integer
`

// OAS31YAML is an OAS 3.1 document using a nullable type array and a
// description attached to a reference.
const OAS31YAML = `openapi: 3.1.0
info:
  title: Pets
  version: "2.0"
paths:
  /pets/{petId}:
    get:
      operationId: getPet
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Owner:
      type: object
      properties:
        email:
          type: string
    Pet:
      type: object
      required:
        - name
      properties:
        name:
          type: [string, "null"]
        owner:
          description: Current owner
          allOf:
            - $ref: "#/components/schemas/Owner"
`

// UntitledYAML decodes cleanly but fails structural validation: info.title
// is empty.
const UntitledYAML = `openapi: 3.0.3
info:
  version: "1.0"
paths: {}
`

// MalformedYAML is not valid YAML.
const MalformedYAML = "openapi: 3.0.3\ninfo:\n  title: [unclosed\n"

// WriteTempFile writes content to name inside a fresh temporary directory and
// returns the file path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}
