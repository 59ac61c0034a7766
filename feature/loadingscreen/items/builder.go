package items

import (
	"strconv"

	"loadscreen-export/core/keyvalues"
	"loadscreen-export/core/reconcile"
)

// reserved scalars are never item identifiers.
var reserved = map[string]struct{}{
	"default": {},
}

// Predicate decides whether a completed item is kept.
type Predicate func(reconcile.Item) bool

// Builder folds classified lines into items.
//
// The zero value is ready to use. Depth 0 means the builder is waiting for the
// next item; any positive depth means an item is open.
type Builder struct {
	// Depth is the current brace depth relative to the collection body.
	Depth int
	// Current is the item being assembled while Open is true.
	Current reconcile.Item
	// Open is true between an item's opening and closing brace.
	Open bool

	pendingID int
}

// Step feeds one line to the builder.
//
// It returns the item completed by this line, if any. done is true when the
// depth went below zero, i.e. the line closed the enclosing collection; no
// further lines should be fed after that.
func (b *Builder) Step(line keyvalues.Line) (emitted *reconcile.Item, done bool, err error) {
	switch line.Kind {
	case keyvalues.BraceOpen:
		b.Depth++
		if b.Depth == 1 {
			b.Current = reconcile.Item{ID: b.pendingID}
			b.Open = true
			b.pendingID = 0
		}

	case keyvalues.BraceClose:
		b.Depth--
		switch {
		case b.Depth < 0:
			return nil, true, nil
		case b.Depth == 0 && b.Open:
			item := b.Current
			b.Current = reconcile.Item{}
			b.Open = false
			return &item, false, nil
		}

	case keyvalues.Scalar:
		if b.Depth != 0 {
			// key of a nested object such as "visuals"
			return nil, false, nil
		}
		if _, ok := reserved[line.Value]; ok {
			return nil, false, nil
		}
		id, convErr := strconv.Atoi(line.Value)
		if convErr != nil {
			return nil, false, &keyvalues.ParseError{
				Line:   line.Number,
				Text:   line.Value,
				Reason: "item id is not a number",
				Err:    convErr,
			}
		}
		b.pendingID = id

	case keyvalues.KeyValue:
		if b.Depth < 1 || !b.Open {
			return nil, false, nil
		}
		switch line.Key {
		case "name":
			b.Current.Name = line.Value
		case "prefab":
			b.Current.Type = line.Value
		case "asset":
			b.Current.Path = line.Value
		}
	}

	return nil, false, nil
}

// Fold runs every line through a fresh Builder and returns the completed items
// accepted by keep, in document order. A nil keep accepts everything.
// Folding stops early when the enclosing collection closes.
func Fold(lines []keyvalues.Line, keep Predicate) ([]reconcile.Item, error) {
	var (
		b   Builder
		out []reconcile.Item
	)
	for _, l := range lines {
		item, done, err := b.Step(l)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if item != nil && (keep == nil || keep(*item)) {
			out = append(out, *item)
		}
	}
	return out, nil
}
