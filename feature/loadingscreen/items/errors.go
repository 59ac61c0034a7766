package items

import (
	"errors"
	"fmt"
)

// ErrNaming is matched by *NamingError through errors.Is.
var ErrNaming = errors.New("unrecognized item name")

// NamingError reports an item name that does not follow the
// "#DOTA_Item_<identifier>_<suffix>" convention.
type NamingError struct {
	ID   int
	Name string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("item %d: name %q does not match #DOTA_Item_<name>_<suffix>", e.ID, e.Name)
}

// Is reports whether target is ErrNaming.
func (e *NamingError) Is(target error) bool {
	return target == ErrNaming
}
