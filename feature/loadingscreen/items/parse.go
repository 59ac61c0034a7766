package items

import (
	"loadscreen-export/core/keyvalues"
	"loadscreen-export/core/reconcile"
)

// Collection is the key of the item definitions inside items_game.txt.
const Collection = "items"

// LoadingScreenPrefab is the prefab of loading screen items.
const LoadingScreenPrefab = "loading_screen"

// IsLoadingScreen keeps loading screen items.
func IsLoadingScreen(item reconcile.Item) bool {
	return item.Type == LoadingScreenPrefab
}

// Lines bounds the "items" collection of blob and classifies every line.
func Lines(blob []byte) ([]keyvalues.Line, error) {
	raw := keyvalues.Section(keyvalues.SplitLines(blob), Collection)

	lines := make([]keyvalues.Line, 0, len(raw))
	for i, text := range raw {
		line, err := keyvalues.Classify(i+1, text, keyvalues.Tokenize(text))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Parse returns the items of blob accepted by keep, in document order.
// A document without an "items" collection yields no items.
func Parse(blob []byte, keep Predicate) ([]reconcile.Item, error) {
	lines, err := Lines(blob)
	if err != nil {
		return nil, err
	}
	return Fold(lines, keep)
}
