package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "quantum widgets", "quantum widgets"},
		{"percent is literal", "%", `\%`},
		{"underscore is literal", "a_c", `a\_c`},
		{"backslash is doubled", `foo\`, `foo\\`},
		{"mixed metacharacters", `50%_off\`, `50\%\_off\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}

// A bare wildcard query must not expand into a match-everything pattern; the
// bound parameter has to arrive with its metacharacters neutralized so the
// ILIKE comparison stays a literal substring match.
func TestEscapeLikeKeepsWildcardsLiteral(t *testing.T) {
	escaped := escapeLike("%")
	assert.NotEqual(t, "%", escaped)

	// A trailing lone backslash would otherwise end the pattern with the
	// escape character, which Postgres rejects.
	escaped = escapeLike(`trailing\`)
	assert.Equal(t, `trailing\\`, escaped)
}
