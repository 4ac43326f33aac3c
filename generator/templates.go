package generator

import (
	"bytes"
	"embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/colossus-credit/docs/schematable"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
	"lower": strings.ToLower,
	"cell":  schematable.SanitizeCell,
	"code":  schematable.CodeType,
}

// executeTemplate executes a template by name and returns the rendered bytes
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
