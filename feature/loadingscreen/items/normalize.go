package items

import (
	"regexp"
	"strings"

	"loadscreen-export/core/reconcile"
)

const consolePrefix = "console/"

var (
	// #DOTA_Item_<identifier>_Loading_Screen[_<free>]
	markedName = regexp.MustCompile(`^#DOTA_Item_(\w+?)_Loading_Screen(_\w*)?$`)
	// #DOTA_Item_<identifier>_<free>
	plainName = regexp.MustCompile(`^#DOTA_Item_(\w+)_\w*$`)
)

// Normalize converts a localization token name into a display name and strips
// the console prefix from the asset path. The ID is never changed.
//
// Items whose name is empty or does not start with '#' are returned as they
// are, path included.
func Normalize(item reconcile.Item) (reconcile.Item, error) {
	if item.Name == "" || !strings.HasPrefix(item.Name, "#") {
		return item, nil
	}

	ident, ok := identifier(item.Name)
	if !ok {
		return reconcile.Item{}, &NamingError{ID: item.ID, Name: item.Name}
	}
	out := item
	out.Path = strings.TrimPrefix(item.Path, consolePrefix)
	out.Name = strings.ReplaceAll(ident, "_", " ")
	return out, nil
}

// NormalizeAll normalizes every item, failing on the first naming error.
func NormalizeAll(list []reconcile.Item) ([]reconcile.Item, error) {
	out := make([]reconcile.Item, 0, len(list))
	for _, item := range list {
		n, err := Normalize(item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func identifier(name string) (string, bool) {
	if m := markedName.FindStringSubmatch(name); m != nil {
		return m[1], true
	}
	if m := plainName.FindStringSubmatch(name); m != nil {
		return m[1], true
	}
	return "", false
}
