package keyvalues

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "\"items_game\"\r\n{\r\n" +
	"\t\"game_info\"\r\n\t{\r\n\t\t\"first_valid_class\"\t\t\"2\"\r\n\t}\r\n" +
	"\t\"items\"\r\n\t{\r\n" +
	"\t\t\"default\"\r\n\t\t{\r\n\t\t\t\"name\"\t\t\"default\"\r\n\t\t}\r\n" +
	"\r\n" +
	"\t\t\"1\"\r\n\t\t{\r\n\t\t\t\"name\"\t\t\"A\"\r\n\t\t\t\"visuals\"\r\n\t\t\t{\r\n\t\t\t\t\"asset\"\t\"p1\"\r\n\t\t\t}\r\n\t\t}\r\n" +
	"\t}\r\n" +
	"\t\"prefabs\"\r\n\t{\r\n\t\t\"loading_screen\"\r\n\t\t{\r\n\t\t}\r\n\t}\r\n" +
	"}\r\n"

func TestSplitLines(t *testing.T) {
	lines := SplitLines([]byte("a\r\nb\rc\n\nd\xe9"))
	assert.Equal(t, []string{"a", "b", "c", "d?"}, lines)
}

func TestSection(t *testing.T) {
	lines := Section(SplitLines([]byte(sampleDoc)), "items")
	require.NotEmpty(t, lines)

	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}

	assert.Equal(t, `"default"`, trimmed[0])
	assert.Equal(t, "}", trimmed[len(trimmed)-1])
	assert.NotContains(t, trimmed, `"prefabs"`)
	assert.NotContains(t, trimmed, `"first_valid_class"		"2"`)

	opens, closes := 0, 0
	for _, l := range trimmed {
		switch l {
		case "{":
			opens++
		case "}":
			closes++
		}
	}
	assert.Equal(t, opens, closes, "range must hold balanced children only")
}

func TestSection_MissingKey(t *testing.T) {
	assert.Empty(t, Section(SplitLines([]byte(sampleDoc)), "no_such_key"))
	assert.Empty(t, Section([]string{`"items"`}, "items"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{"Open", "\t{", Line{Kind: BraceOpen, Number: 3}},
		{"Close", "  }  ", Line{Kind: BraceClose, Number: 3}},
		{"Scalar", `	"1234"`, Line{Kind: Scalar, Number: 3, Value: "1234"}},
		{"KeyValue", `"prefab"	"loading_screen"`, Line{Kind: KeyValue, Number: 3, Key: "prefab", Value: "loading_screen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(3, tt.raw, Tokenize(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_TooManyTokens(t *testing.T) {
	raw := `"a" "b" "c"`
	_, err := Classify(7, raw, Tokenize(raw))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 7, perr.Line)
	assert.Equal(t, raw, perr.Text)
	assert.ErrorIs(t, err, ErrMalformed)
}
