package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/colossus-credit/docs/docerrors"
)

// ToCanonicalJSON converts a JSON or YAML document into indented JSON with
// mapping keys in source order. Scalars keep their YAML type.
func ToCanonicalJSON(data []byte, source string) ([]byte, error) {
	root, err := ParseNode(data, source)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeJSONNode(&buf, root, source); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, &docerrors.ParseError{Path: source, Message: "canonical encoding", Cause: err}
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONNode(buf *bytes.Buffer, n *yaml.Node, source string) error {
	n = resolveNode(n)
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, n.Content[i].Value)
			buf.WriteByte(':')
			if err := writeJSONNode(buf, n.Content[i+1], source); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONNode(buf, item, source); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		return writeJSONScalar(buf, n, source)
	default:
		return &docerrors.ParseError{
			Path:    source,
			Line:    n.Line,
			Column:  n.Column,
			Message: fmt.Sprintf("unsupported node kind %v", n.Kind),
		}
	}
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, n *yaml.Node, source string) error {
	switch n.ShortTag() {
	case "!!null":
		buf.WriteString("null")
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			writeJSONString(buf, n.Value)
			return nil
		}
		buf.WriteString(strconv.FormatBool(b))
	case "!!int":
		i, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
		if err != nil {
			// out of int64 range: keep the digits as a JSON number when valid
			if json.Valid([]byte(n.Value)) {
				buf.WriteString(n.Value)
				return nil
			}
			writeJSONString(buf, n.Value)
			return nil
		}
		buf.WriteString(strconv.FormatInt(i, 10))
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return &docerrors.ParseError{Path: source, Line: n.Line, Column: n.Column, Message: "invalid float", Cause: err}
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return &docerrors.ParseError{
				Path:    source,
				Line:    n.Line,
				Column:  n.Column,
				Message: fmt.Sprintf("non-finite number %q has no JSON encoding", n.Value),
			}
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	default:
		// !!str, !!timestamp, !!binary and custom tags are emitted as text
		writeJSONString(buf, n.Value)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
}
