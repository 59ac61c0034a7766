package keyvalues

import (
	"strings"
)

// SplitLines decodes blob as US-ASCII and splits it on '\r' and '\n'.
// Bytes outside the ASCII range are replaced by '?' and empty fragments
// (such as the gap inside "\r\n") are dropped.
func SplitLines(blob []byte) []string {
	buf := make([]byte, len(blob))
	for i, b := range blob {
		if b > 0x7F {
			b = '?'
		}
		buf[i] = b
	}
	return strings.FieldsFunc(string(buf), func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}

// Section returns the lines holding the children of the collection named key.
//
// It skips ahead to the first line that, trimmed, equals the quoted key, skips
// that line and the collection's opening brace, then collects every non-blank
// line while tracking the brace depth. Collection stops as soon as the depth
// turns negative, i.e. on the collection's own closing brace, which is not
// included. A document without the key yields no lines.
func Section(lines []string, key string) []string {
	sentinel := `"` + key + `"`

	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == sentinel {
			start = i + 2
			break
		}
	}
	if start < 0 || start > len(lines) {
		return nil
	}

	var (
		out   []string
		depth int
	)
	for _, l := range lines[start:] {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		switch trimmed {
		case "{":
			depth++
		case "}":
			depth--
		}
		if depth < 0 {
			break
		}
		out = append(out, l)
	}
	return out
}
