package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguous is matched by *AmbiguousMatchError through errors.Is.
var ErrAmbiguous = errors.New("ambiguous asset match")

// AmbiguousMatchError is returned under TieBreakError when an item path
// matches more than one archive entry.
type AmbiguousMatchError struct {
	Item       Item
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("item %d (%s): path %q matches %d entries: %s",
		e.Item.ID, e.Item.Name, e.Item.Path, len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// Is reports whether target is ErrAmbiguous.
func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguous
}
