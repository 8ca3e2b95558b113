// Package sanitize neutralizes untrusted comment text before it reaches a
// display surface.
package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// HTML escapes <, >, &, " and ' so s can be inserted into markup. All other
// characters pass through unchanged.
func HTML(s string) string {
	return html.EscapeString(s)
}

// Terminal removes ANSI escape sequences and non-printing control characters
// so s cannot move the cursor or restyle the terminal. Newlines and tabs are
// kept.
func Terminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
