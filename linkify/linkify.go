// Package linkify turns inline-code mentions of schema names in generated
// pages into links to the schema reference page.
//
// The rewrite is a plain textual substitution applied once per schema name,
// in the order the names were given. It does not detect overlapping matches
// and is not idempotent: running it twice over the same text nests links.
package linkify

import (
	"regexp"
	"strings"
)

// Linkifier rewrites `Name` and `Name` schema mentions into links.
type Linkifier struct {
	pageURL string
	rules   []rule
}

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// New builds a Linkifier for names. pageURL is the schema page the links
// point at, e.g. "/api-reference/schemas".
func New(names []string, pageURL string) *Linkifier {
	l := &Linkifier{pageURL: pageURL}
	for _, name := range names {
		if name == "" {
			continue
		}
		l.rules = append(l.rules, rule{
			pattern: regexp.MustCompile("`" + regexp.QuoteMeta(name) + "`( schema)?"),
			// ${1} keeps the optional " schema" after the link
			replacement: "[`" + escapeReplacement(name) + "`](" + escapeReplacement(Anchor(pageURL, name)) + ")${1}",
		})
	}
	return l
}

// Anchor returns the link target for a schema name.
func Anchor(pageURL, name string) string {
	return pageURL + "#" + strings.ToLower(name)
}

// Apply rewrites every mention of every configured name in text.
func (l *Linkifier) Apply(text string) string {
	for _, r := range l.rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// Len returns the number of configured names.
func (l *Linkifier) Len() int {
	return len(l.rules)
}

// File is the subset of a generated file the linkifier rewrites.
type File interface {
	FileName() string
	Bytes() []byte
	SetBytes([]byte)
}

// ApplyFiles rewrites every file accepted by filter and returns how many
// files changed. A nil filter accepts all files.
func (l *Linkifier) ApplyFiles(files []File, filter func(name string) bool) int {
	changed := 0
	for _, f := range files {
		if filter != nil && !filter(f.FileName()) {
			continue
		}
		before := string(f.Bytes())
		after := l.Apply(before)
		if after != before {
			f.SetBytes([]byte(after))
			changed++
		}
	}
	return changed
}

func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
