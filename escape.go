package macrocss

import (
	"fmt"
	"strings"
)

// EscapeSelector escapes a utility token so it is usable as a CSS class name.
// Every character outside [A-Za-z0-9_-] is backslash-escaped; a leading digit
// is hex-escaped per the CSS identifier grammar ("10px" -> "\31 0px").
func EscapeSelector(selector string) string {
	var b strings.Builder
	b.Grow(len(selector))

	for i, r := range selector {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			// CSS identifiers cannot start with a digit; hex-escape it.
			// The trailing space terminates the escape sequence.
			fmt.Fprintf(&b, "\\3%c ", r)
		case isSelectorSafe(r):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isSelectorSafe(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
