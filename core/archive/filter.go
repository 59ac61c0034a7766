package archive

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// DirPrefix accepts entries whose directory starts with prefix.
func DirPrefix(prefix string) Filter {
	return func(e Entry) bool {
		return strings.HasPrefix(e.Directory, prefix)
	}
}

// All accepts entries accepted by every filter. Nil filters are skipped and
// no filters yield nil, which Fetch treats as accept-all.
func All(filters ...Filter) Filter {
	var set []Filter
	for _, f := range filters {
		if f != nil {
			set = append(set, f)
		}
	}
	switch len(set) {
	case 0:
		return nil
	case 1:
		return set[0]
	}
	return func(e Entry) bool {
		for _, f := range set {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// Glob accepts entries whose full path matches pattern. '/' is the separator,
// so "*" stays inside one directory and "**" crosses directories.
func Glob(pattern string) (Filter, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid entry pattern %q: %w", pattern, err)
	}
	return func(e Entry) bool {
		return g.Match(e.FullPath())
	}, nil
}
