package extract

import "strings"

// IsPrivate reports whether a name is private under the Python
// leading-underscore convention. Every classification site (attributes and
// methods alike) goes through this single predicate.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, "_")
}

// isDunder reports double-underscore hook names like __repr__ or __eq__.
func isDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
