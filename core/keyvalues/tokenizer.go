package keyvalues

import "strings"

const (
	quote  = '"'
	escape = '\\'
)

// Tokenize splits a single line into its quoted tokens.
//
// A double quote opens or closes a token; the closing quote emits the buffered
// characters. A backslash escapes the next quote or backslash, which is then
// written to the buffer literally. Characters outside quotes are dropped.
// An unterminated token at the end of the line is discarded.
//
// When the line holds no quoted token at all the original line is returned as
// the only element, which lets structural lines such as "{" and "}" pass
// through unchanged.
func Tokenize(line string) []string {
	var (
		tokens  []string
		buf     strings.Builder
		inToken bool
		escaped bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case quote:
			if escaped {
				buf.WriteByte(quote)
			} else {
				if inToken {
					tokens = append(tokens, buf.String())
					buf.Reset()
				}
				inToken = !inToken
			}
			escaped = false
		case escape:
			if escaped {
				buf.WriteByte(escape)
			}
			escaped = !escaped
		default:
			if inToken {
				buf.WriteByte(c)
			}
			escaped = false
		}
	}

	if len(tokens) == 0 {
		return []string{line}
	}
	return tokens
}

// Quote renders s as a quoted token that Tokenize reads back verbatim.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
