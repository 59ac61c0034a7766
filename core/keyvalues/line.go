package keyvalues

import "strings"

// Kind tags the shape of a classified line.
type Kind int

const (
	// BraceOpen is a bare "{" opening a nested object.
	BraceOpen Kind = iota
	// BraceClose is a bare "}" closing the innermost object.
	BraceClose
	// KeyValue is a "key" "value" pair.
	KeyValue
	// Scalar is a single token that is not a brace, usually the key of the
	// object opened on the following line.
	Scalar
)

// String returns the kind name used in logs and errors.
func (k Kind) String() string {
	switch k {
	case BraceOpen:
		return "brace_open"
	case BraceClose:
		return "brace_close"
	case KeyValue:
		return "key_value"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Line is one classified line of a KeyValues document.
type Line struct {
	// Kind is the shape of the line.
	Kind Kind
	// Number is the 1-based position of the line inside the parsed range.
	Number int
	// Key is set for KeyValue lines.
	Key string
	// Value is set for KeyValue and Scalar lines.
	Value string
}

// Classify maps the tokens of one line to a tagged Line.
// It fails with a *ParseError when the line carries neither one nor two tokens.
func Classify(number int, raw string, tokens []string) (Line, error) {
	switch len(tokens) {
	case 1:
		tok := strings.TrimSpace(tokens[0])
		switch tok {
		case "{":
			return Line{Kind: BraceOpen, Number: number}, nil
		case "}":
			return Line{Kind: BraceClose, Number: number}, nil
		}
		return Line{Kind: Scalar, Number: number, Value: strings.Trim(tok, `"`)}, nil
	case 2:
		return Line{
			Kind:   KeyValue,
			Number: number,
			Key:    strings.Trim(tokens[0], `"`),
			Value:  strings.Trim(tokens[1], `"`),
		}, nil
	default:
		return Line{}, &ParseError{
			Line:   number,
			Text:   raw,
			Reason: "expected one or two tokens",
		}
	}
}
