package openapi

import "strings"

// Methods lists the HTTP methods that form operations, in the order they are
// recognised inside a path item.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// AnyType is the placeholder type for properties that declare none.
const AnyType = "any"

// Document is the parsed, read-only view of an OpenAPI document.
type Document struct {
	// OpenAPI is the "openapi" or "swagger" version string.
	OpenAPI string
	// Title is info.title
	Title string
	// Version is info.version
	Version string
	// Description is info.description
	Description string
	// Operations in path order, then method order within each path item.
	Operations []*Operation
	// Schemas in source order.
	Schemas []*Schema
	// SourcePath identifies where the document was read from.
	SourcePath string
	// SourceFormat is the detected source encoding.
	SourceFormat SourceFormat
}

// IsOAS2 reports whether the document is a Swagger 2.0 document.
func (d *Document) IsOAS2() bool {
	return strings.HasPrefix(d.OpenAPI, "2.")
}

// IsOAS31 reports whether the document declares OpenAPI 3.1 or later, whose
// schemas follow JSON Schema 2020-12.
func (d *Document) IsOAS31() bool {
	return strings.HasPrefix(d.OpenAPI, "3.") && !strings.HasPrefix(d.OpenAPI, "3.0")
}

// SchemaNames returns the schema names in source order.
func (d *Document) SchemaNames() []string {
	names := make([]string, 0, len(d.Schemas))
	for _, s := range d.Schemas {
		names = append(names, s.Name)
	}
	return names
}

// Schema returns the named schema, or nil.
func (d *Document) Schema(name string) *Schema {
	for _, s := range d.Schemas {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Operation is one HTTP method on one path.
type Operation struct {
	Path        string
	Method      string // upper case
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
	Parameters  []*Parameter
	RequestBody *Body
	Responses   []*Response
}

// Parameter is a non-body operation parameter.
type Parameter struct {
	Name        string
	In          string
	Required    bool
	Type        string
	Description string
}

// Body is an operation request body.
type Body struct {
	Description string
	Required    bool
	Content     []*MediaType
}

// Response is one entry of an operation's responses map.
type Response struct {
	Status      string
	Description string
	Content     []*MediaType
}

// MediaType pairs a media type name with the resolved type of its schema.
type MediaType struct {
	Name string
	Type string
}

// Schema is a named object definition.
type Schema struct {
	Name        string
	Description string
	Type        string
	Required    []string
	Properties  []*Property
}

// Property is one entry of a properties map. Nested object properties carry
// their own Properties and Required lists.
type Property struct {
	Name        string
	Type        string // declared type, may be empty
	Ref         string // referenced schema name, may be empty
	ItemsType   string // resolved items type for arrays
	Format      string
	Description string
	Required    []string
	Properties  []*Property
}

// ResolvedType returns the type shown for the property: the referenced schema
// name, the declared type (arrays as "T[]"), or AnyType.
func (p *Property) ResolvedType() string {
	switch {
	case p.Ref != "":
		return p.Ref
	case p.Type == "array" && p.ItemsType != "":
		return p.ItemsType + "[]"
	case p.Type == "":
		return AnyType
	default:
		return p.Type
	}
}

// IsNestedObject reports whether the property is an object carrying its own
// property map.
func (p *Property) IsNestedObject() bool {
	return p.Type == "object" && len(p.Properties) > 0
}

// RefName returns the last segment of a JSON reference, unescaping JSON
// pointer tokens. "#/components/schemas/Pet" -> "Pet".
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	} else if i := strings.LastIndex(ref, "#"); i >= 0 {
		ref = ref[i+1:]
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(ref)
}
