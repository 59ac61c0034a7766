package utils

import "strings"

// Truncate shortens s to at most max characters, replacing the tail with
// "..." when it is cut. It counts runes, not bytes.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// SafeFileName replaces path separators and characters rejected by common
// file systems, so an item name can be used as a file name.
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	repl := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_",
	)
	name = repl.Replace(name)
	name = strings.Trim(name, ". ")
	if name == "" {
		return "_"
	}
	return name
}
