package macrocss

import (
	"fmt"
	"strings"
)

// knownPseudoClasses are the pseudo-class prefixes recognized in utility
// tokens. Parameterized pseudo-classes (nth-child and friends) are not
// expressible in token syntax and are left to custom selectors.
var knownPseudoClasses = map[string]bool{
	"hover":         true,
	"focus":         true,
	"focus-within":  true,
	"focus-visible": true,
	"active":        true,
	"visited":       true,
	"link":          true,
	"checked":       true,
	"disabled":      true,
	"enabled":       true,
	"empty":         true,
	"first-child":   true,
	"last-child":    true,
	"only-child":    true,
	"required":      true,
	"optional":      true,
}

// MacroMatch is the immutable per-match view handed to a macro handler: the
// raw matched token, its capture groups, and the structural modifiers parsed
// from the token's chained prefixes (screen, pseudo-classes).
type MacroMatch struct {
	fullMatch     string
	selector      string
	captures      []string
	screen        string
	pseudoClasses []string
	component     string
	valid         bool
}

// newMacroMatch parses the prefix blob captured ahead of the macro body.
// Prefixes chain in any count ("md:hover:m:10px"); each segment must name a
// configured screen or a known pseudo-class, otherwise the token is malformed
// and the match is marked invalid so no record is registered for it.
func newMacroMatch(fullMatch, prefixes string, captures []string, screens map[string]string) *MacroMatch {
	m := &MacroMatch{
		fullMatch: fullMatch,
		selector:  fullMatch,
		captures:  captures,
		valid:     true,
	}

	if prefixes == "" {
		return m
	}

	for _, seg := range strings.Split(strings.TrimSuffix(prefixes, ":"), ":") {
		switch {
		case seg == "":
			continue
		case knownPseudoClasses[seg]:
			m.pseudoClasses = append(m.pseudoClasses, seg)
		default:
			if _, ok := screens[seg]; ok && m.screen == "" {
				m.screen = seg
				continue
			}
			m.valid = false
			return m
		}
	}

	return m
}

// newComponentMatch marks a token matched through a registered component
// alias; it carries no captures and emits no properties of its own.
func newComponentMatch(alias string) *MacroMatch {
	return &MacroMatch{fullMatch: alias, selector: alias, component: alias, valid: true}
}

// Selector returns the full matched token, prefixes included. This is the
// canonical (pre-escaping) selector for the resulting record.
func (m *MacroMatch) Selector() string { return m.selector }

// Screen returns the breakpoint name parsed from the token, or "".
func (m *MacroMatch) Screen() string { return m.screen }

// PseudoClasses returns the pseudo-class prefixes parsed from the token.
func (m *MacroMatch) PseudoClasses() []string { return m.pseudoClasses }

// IsComponent reports whether the token declares a component alias rather
// than a literal property macro.
func (m *MacroMatch) IsComponent() bool { return m.component != "" }

// Capture returns capture group i of the macro pattern. Group 0 is the first
// capture, not the whole match. Indexing a group absent from the pattern is a
// handler bug and fails loudly with ErrCaptureNotFound.
func (m *MacroMatch) Capture(i int) (string, error) {
	if i < 0 || i >= len(m.captures) {
		return "", fmt.Errorf("%w: group %d of %d in token %q", ErrCaptureNotFound, i, len(m.captures), m.fullMatch)
	}
	return m.captures[i], nil
}
