package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "camelCase", input: "listPets", want: []string{"list", "Pets"}},
		{name: "trailing acronym", input: "getUserByID", want: []string{"get", "User", "By", "ID"}},
		{name: "leading acronym", input: "HTTPServer", want: []string{"HTTP", "Server"}},
		{name: "snake_case", input: "api_v2_client", want: []string{"api", "v2", "client"}},
		{name: "path template", input: "/pets/{petId}", want: []string{"pets", "pet", "Id"}},
		{name: "only separators", input: "/-_", want: nil},
		{name: "unicode", input: "überUser", want: []string{"über", "User"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"listPets", "list-pets"},
		{"getUserByID", "get-user-by-id"},
		{"create_transaction", "create-transaction"},
		{"GET /pets/{petId}", "get-pets-pet-id"},
		{"already-kebab", "already-kebab"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToKebabCase(tt.input))
		})
	}
}

func TestPageSlug(t *testing.T) {
	t.Run("operationId wins", func(t *testing.T) {
		assert.Equal(t, "list-pets", PageSlug("listPets", "GET", "/pets"))
	})

	t.Run("method and path fallback", func(t *testing.T) {
		assert.Equal(t, "post-bundles", PageSlug("", "POST", "/bundles"))
	})

	t.Run("nothing usable", func(t *testing.T) {
		assert.Equal(t, "operation", PageSlug("", "", "/"))
	})

	t.Run("accented operationId is folded", func(t *testing.T) {
		assert.Equal(t, "creer-lot", PageSlug("créerLot", "POST", "/lots"))
	})

	t.Run("non-latin operationId falls back to method and path", func(t *testing.T) {
		assert.Equal(t, "get-lots", PageSlug("ロット一覧", "GET", "/lots"))
	})
}

func TestASCIISlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"listPets", "list-pets"},
		{"überUser", "uber-user"},
		{"Ångström_unit", "angstrom-unit"},
		{"naïveCafé", "naive-cafe"},
		{"straße", "strae"},
		{"GET /données/{idLot}", "get-donnees-id-lot"},
		{"日本", ""},
		{"", ""},
	}

	pageID := regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ASCIISlug(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.Regexp(t, pageID, got)
			}
		})
	}
}

func TestToTitleWords(t *testing.T) {
	assert.Equal(t, "List Pets", ToTitleWords("listPets"))
	assert.Equal(t, "Get User By ID", ToTitleWords("getUserByID"))
	assert.Equal(t, "Create Transaction", ToTitleWords("create_transaction"))
	assert.Equal(t, "", ToTitleWords(""))
}
