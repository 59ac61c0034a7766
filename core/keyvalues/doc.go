// Package keyvalues reads the Valve KeyValues text format used by the game's
// script files (items_game.txt and friends).
//
// The package does not build a document tree. It works line by line:
//
//   - Tokenize splits one line into its quoted tokens, honouring the \" and \\
//     escape sequences. Lines without quoted content come back unchanged as a
//     single token, so bare braces flow through the same path.
//   - Classify turns a token slice into a tagged Line (BraceOpen, BraceClose,
//     KeyValue or Scalar) so callers can switch on the kind instead of on the
//     token count.
//   - SplitLines and Section isolate the children of one named collection
//     (e.g. "items") out of a much larger document by brace-depth scanning.
//
// # Usage
//
//	lines := keyvalues.Section(keyvalues.SplitLines(blob), "items")
//	for i, raw := range lines {
//	    line, err := keyvalues.Classify(i+1, raw, keyvalues.Tokenize(raw))
//	    ...
//	}
package keyvalues
