package openapi

import (
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/logging"
)

// maxRefDepth bounds local $ref chains (parameters, responses, bodies).
const maxRefDepth = 16

type decoder struct {
	root   *yaml.Node
	source string
	log    logging.Logger
	oas2   bool
	// OAS 2.0 consumes/produces defaults
	consumes string
	produces string
}

func (d *decoder) document() (*Document, error) {
	doc := &Document{}

	doc.OpenAPI = scalar(d.root, "openapi")
	if doc.OpenAPI == "" {
		doc.OpenAPI = scalar(d.root, "swagger")
		d.oas2 = doc.OpenAPI != ""
	}
	if doc.OpenAPI == "" {
		return nil, &docerrors.ParseError{
			Path:    d.source,
			Line:    d.root.Line,
			Message: `missing "openapi" or "swagger" version field`,
		}
	}

	if info := child(d.root, "info"); info != nil {
		doc.Title = scalar(info, "title")
		doc.Version = scalar(info, "version")
		doc.Description = scalar(info, "description")
	}

	d.consumes = firstOr(stringList(d.root, "consumes"), "application/json")
	d.produces = firstOr(stringList(d.root, "produces"), "application/json")

	ops, err := d.operations()
	if err != nil {
		return nil, err
	}
	doc.Operations = ops

	schemasNode := child(child(d.root, "components"), "schemas")
	if d.oas2 {
		schemasNode = child(d.root, "definitions")
	}
	eachPair(schemasNode, func(name string, n *yaml.Node) {
		doc.Schemas = append(doc.Schemas, d.schema(name, n))
	})

	return doc, nil
}

func (d *decoder) operations() ([]*Operation, error) {
	paths := child(d.root, "paths")
	if paths == nil {
		d.log.Warn("document has no paths", "source", d.source)
		return nil, nil
	}
	if paths.Kind != yaml.MappingNode {
		return nil, &docerrors.ParseError{Path: d.source, Line: paths.Line, Column: paths.Column, Message: "paths", Cause: errNotMapping}
	}

	var ops []*Operation
	eachPair(paths, func(path string, item *yaml.Node) {
		item = d.deref(item)
		shared := d.parameters(child(item, "parameters"))

		eachPair(item, func(key string, opNode *yaml.Node) {
			method := strings.ToLower(key)
			if !slices.Contains(Methods, method) || opNode.Kind != yaml.MappingNode {
				return
			}
			ops = append(ops, d.operation(path, method, opNode, shared))
		})
	})
	return ops, nil
}

func (d *decoder) operation(path, method string, n *yaml.Node, shared []*decodedParam) *Operation {
	op := &Operation{
		Path:        path,
		Method:      strings.ToUpper(method),
		OperationID: scalar(n, "operationId"),
		Summary:     scalar(n, "summary"),
		Description: scalar(n, "description"),
		Tags:        stringList(n, "tags"),
		Deprecated:  scalar(n, "deprecated") == "true",
	}

	params := mergeParams(shared, d.parameters(child(n, "parameters")))
	for _, p := range params {
		if p.body != nil {
			op.RequestBody = p.body
			continue
		}
		op.Parameters = append(op.Parameters, p.param)
	}

	if rb := d.deref(child(n, "requestBody")); rb != nil {
		op.RequestBody = &Body{
			Description: scalar(rb, "description"),
			Required:    scalar(rb, "required") == "true",
			Content:     d.content(child(rb, "content")),
		}
	}

	eachPair(child(n, "responses"), func(status string, rn *yaml.Node) {
		rn = d.deref(rn)
		resp := &Response{Status: status, Description: scalar(rn, "description")}
		if d.oas2 {
			if s := child(rn, "schema"); s != nil {
				resp.Content = []*MediaType{{Name: d.produces, Type: schemaType(s)}}
			}
		} else {
			resp.Content = d.content(child(rn, "content"))
		}
		op.Responses = append(op.Responses, resp)
	})

	return op
}

// decodedParam is either a regular parameter or an OAS 2.0 body parameter.
type decodedParam struct {
	param *Parameter
	body  *Body
}

func (p *decodedParam) key() string {
	if p.body != nil {
		return "body"
	}
	return p.param.In + ":" + p.param.Name
}

func (d *decoder) parameters(n *yaml.Node) []*decodedParam {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]*decodedParam, 0, len(n.Content))
	for _, raw := range n.Content {
		pn := d.deref(raw)
		in := scalar(pn, "in")
		if in == "body" {
			out = append(out, &decodedParam{body: &Body{
				Description: scalar(pn, "description"),
				Required:    scalar(pn, "required") == "true",
				Content:     []*MediaType{{Name: d.consumes, Type: schemaType(child(pn, "schema"))}},
			}})
			continue
		}
		typ := scalar(pn, "type")
		if s := child(pn, "schema"); s != nil {
			typ = schemaType(s)
		}
		if typ == "" {
			typ = AnyType
		}
		out = append(out, &decodedParam{param: &Parameter{
			Name:        scalar(pn, "name"),
			In:          in,
			Required:    scalar(pn, "required") == "true",
			Type:        typ,
			Description: scalar(pn, "description"),
		}})
	}
	return out
}

// mergeParams applies operation-level parameters over path-level ones with the
// same name and location, keeping path-level order first.
func mergeParams(shared, own []*decodedParam) []*decodedParam {
	if len(shared) == 0 {
		return own
	}
	merged := make([]*decodedParam, 0, len(shared)+len(own))
	overridden := make(map[string]*decodedParam, len(own))
	for _, p := range own {
		overridden[p.key()] = p
	}
	for _, p := range shared {
		if o, ok := overridden[p.key()]; ok {
			merged = append(merged, o)
			delete(overridden, p.key())
			continue
		}
		merged = append(merged, p)
	}
	for _, p := range own {
		if _, pending := overridden[p.key()]; pending {
			merged = append(merged, p)
		}
	}
	return merged
}

func (d *decoder) content(n *yaml.Node) []*MediaType {
	var out []*MediaType
	eachPair(n, func(name string, mt *yaml.Node) {
		typ := ""
		if s := child(mt, "schema"); s != nil {
			typ = schemaType(s)
		}
		out = append(out, &MediaType{Name: name, Type: typ})
	})
	return out
}

func (d *decoder) schema(name string, n *yaml.Node) *Schema {
	n = resolveNode(n)
	s := &Schema{
		Name:        name,
		Description: scalar(n, "description"),
		Type:        declaredType(n),
		Required:    stringList(n, "required"),
	}
	s.Properties = d.properties(child(n, "properties"))
	if len(s.Properties) == 0 {
		// allOf members contribute their inline properties in order
		if all := child(n, "allOf"); all != nil && all.Kind == yaml.SequenceNode {
			for _, member := range all.Content {
				s.Properties = append(s.Properties, d.properties(child(member, "properties"))...)
				s.Required = append(s.Required, stringList(member, "required")...)
			}
		}
	}
	return s
}

func (d *decoder) properties(n *yaml.Node) []*Property {
	var props []*Property
	eachPair(n, func(name string, pn *yaml.Node) {
		pn = resolveNode(pn)
		p := &Property{
			Name:        name,
			Type:        declaredType(pn),
			Format:      scalar(pn, "format"),
			Description: scalar(pn, "description"),
			Required:    stringList(pn, "required"),
		}
		if ref := scalar(pn, "$ref"); ref != "" {
			p.Ref = RefName(ref)
		}
		if p.Ref == "" && p.Type == "" {
			// allOf: [{$ref: ...}] attaches a description to a reference
			if member := soleMember(pn); member != nil {
				if ref := scalar(member, "$ref"); ref != "" {
					p.Ref = RefName(ref)
				} else {
					p.Type = declaredType(member)
					if len(p.Required) == 0 {
						p.Required = stringList(member, "required")
					}
					pn = member
				}
			}
		}
		if items := child(pn, "items"); items != nil {
			p.ItemsType = schemaType(items)
		}
		p.Properties = d.properties(child(pn, "properties"))
		props = append(props, p)
	})
	return props
}

// deref follows local "#/..." references up to maxRefDepth. Unresolvable or
// external references return the node unchanged.
func (d *decoder) deref(n *yaml.Node) *yaml.Node {
	n = resolveNode(n)
	for range maxRefDepth {
		ref := scalar(n, "$ref")
		if !strings.HasPrefix(ref, "#/") {
			return n
		}
		target := lookupPointer(d.root, ref)
		if target == nil {
			d.log.Warn("unresolved reference", "ref", ref, "source", d.source)
			return n
		}
		n = target
	}
	return n
}

// lookupPointer resolves a local JSON pointer ("#/a/b") against root.
func lookupPointer(root *yaml.Node, ref string) *yaml.Node {
	n := root
	for _, tok := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		tok = strings.NewReplacer("~1", "/", "~0", "~").Replace(tok)
		n = child(n, tok)
		if n == nil {
			return nil
		}
	}
	return n
}

// schemaType resolves the display type of an inline schema node.
func schemaType(n *yaml.Node) string {
	n = resolveNode(n)
	if n == nil {
		return ""
	}
	if ref := scalar(n, "$ref"); ref != "" {
		return RefName(ref)
	}
	t := declaredType(n)
	if t == "array" {
		if items := child(n, "items"); items != nil {
			if it := schemaType(items); it != "" {
				return it + "[]"
			}
		}
	}
	if t == "" {
		if member := soleMember(n); member != nil {
			return schemaType(member)
		}
		return AnyType
	}
	return t
}

// soleMember returns the only schema of a one-element allOf, oneOf or anyOf.
func soleMember(n *yaml.Node) *yaml.Node {
	for _, key := range []string{"allOf", "oneOf", "anyOf"} {
		if seq := child(n, key); seq != nil && seq.Kind == yaml.SequenceNode && len(seq.Content) == 1 {
			return resolveNode(seq.Content[0])
		}
	}
	return nil
}

// declaredType reads "type", joining OAS 3.1 type arrays without "null".
func declaredType(n *yaml.Node) string {
	t := child(n, "type")
	if t == nil {
		return ""
	}
	if t.Kind == yaml.SequenceNode {
		var types []string
		for _, v := range t.Content {
			if v.Value != "null" {
				types = append(types, v.Value)
			}
		}
		return strings.Join(types, ", ")
	}
	return t.Value
}

// Node helpers. All of them tolerate nil and non-mapping nodes.

func resolveNode(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func child(n *yaml.Node, key string) *yaml.Node {
	n = resolveNode(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolveNode(n.Content[i+1])
		}
	}
	return nil
}

func eachPair(n *yaml.Node, fn func(key string, val *yaml.Node)) {
	n = resolveNode(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		fn(n.Content[i].Value, resolveNode(n.Content[i+1]))
	}
}

func scalar(n *yaml.Node, key string) string {
	v := child(n, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}

// stringList reads a sequence of scalars.
func stringList(n *yaml.Node, key string) []string {
	v := child(n, key)
	if v == nil || v.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]string, 0, len(v.Content))
	for _, item := range v.Content {
		if item = resolveNode(item); item != nil && item.Kind == yaml.ScalarNode {
			out = append(out, item.Value)
		}
	}
	return out
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
