package keyvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"KeyValue", "\t\t\"name\"\t\t\"Axe\"", []string{"name", "Axe"}},
		{"Scalar", "\t\"1234\"", []string{"1234"}},
		{"OpenBrace", "\t{", []string{"\t{"}},
		{"CloseBrace", "}", []string{"}"}},
		{"EscapedQuote", `"desc"	"say \"hi\""`, []string{"desc", `say "hi"`}},
		{"EscapedBackslash", `"path"	"a\\b"`, []string{"path", `a\b`}},
		{"EmptyValue", `"key"	""`, []string{"key", ""}},
		{"Unterminated", `"key"	"never closed`, []string{"key"}},
		{"OnlyUnterminated", `"dangling`, []string{`"dangling`}},
		{"NoQuotes", "plain text line", []string{"plain text line"}},
		{"Comment", `"key" "value" // trailing`, []string{"key", "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.line))
		})
	}
}

func TestTokenize_QuoteRoundTrip(t *testing.T) {
	pairs := [][]string{
		{"name"},
		{"name", "#DOTA_Item_Axe_Loading_Screen"},
		{`quo"te`, `back\slash`},
		{`\"`, `\\\"`},
		{`trailing\`, `"`},
		{"", "empty key"},
	}

	for _, pair := range pairs {
		line := "\t"
		for i, s := range pair {
			if i > 0 {
				line += "\t\t"
			}
			line += Quote(s)
		}
		assert.Equal(t, pair, Tokenize(line), "line %s", line)
	}
}

func TestTokenize_EscapeClearedByOtherCharacter(t *testing.T) {
	// \n is not an escape sequence: the backslash is swallowed and the
	// following quote closes the token normally.
	assert.Equal(t, []string{"an"}, Tokenize(`"a\n"`))
	// an escaped quote does not leave the escape armed for the next quote
	assert.Equal(t, []string{`x" `}, Tokenize(`"x\" "y`))
}
