package openapi_test

import (
	"fmt"

	"github.com/colossus-credit/docs/openapi"
)

func ExampleParse() {
	data := []byte(`openapi: 3.0.3
info:
  title: Pets
  version: "1"
paths:
  /pets:
    get:
      operationId: listPets
    post:
      operationId: createPet
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        tags:
          type: array
          items:
            type: string
`)
	doc, err := openapi.Parse(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, op := range doc.Operations {
		fmt.Println(op.Method, op.Path, op.OperationID)
	}
	for _, p := range doc.Schema("Pet").Properties {
		fmt.Println(p.Name, p.ResolvedType())
	}
	// Output:
	// GET /pets listPets
	// POST /pets createPet
	// name string
	// tags string[]
}

func ExampleToCanonicalJSON() {
	out, err := openapi.ToCanonicalJSON([]byte("openapi: 3.1.0\ninfo:\n  title: T\n"), "openapi.yaml")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(out))
	// Output:
	// {
	//   "openapi": "3.1.0",
	//   "info": {
	//     "title": "T"
	//   }
	// }
}
