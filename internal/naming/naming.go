package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Words splits s into words on separators and case boundaries.
// Acronyms stay together: "getUserByID" -> [get User By ID],
// "HTTPServer" -> [HTTP Server]. Digits stay attached to the preceding word.
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// ToKebabCase converts s to lower-case words joined by hyphens.
// Example: "listPets" -> "list-pets"
// Example: "GET /pets/{petId}" -> "get-pets-pet-id"
func ToKebabCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// PageSlug derives a page id for an operation: the kebab-cased operationId
// when present, otherwise method and path. Page ids are limited to
// [a-z0-9-], so accents are folded and other letters dropped.
// Example: "créerLot" -> "creer-lot"
func PageSlug(operationID, method, path string) string {
	if slug := ASCIISlug(operationID); slug != "" {
		return slug
	}
	if slug := ASCIISlug(method + " " + path); slug != "" {
		return slug
	}
	return "operation"
}

// ASCIISlug kebab-cases s, strips diacritics and removes anything outside
// [a-z0-9-]. Words left empty are dropped.
func ASCIISlug(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	var words []string
	for _, w := range Words(folded) {
		w = strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				return r
			case r >= 'A' && r <= 'Z':
				return unicode.ToLower(r)
			}
			return -1
		}, w)
		if w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, "-")
}

// ToTitleWords turns an identifier into a space separated title, keeping
// acronyms intact.
// Example: "getUserByID" -> "Get User By ID"
func ToTitleWords(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.Join(Words(s), " "))
}
