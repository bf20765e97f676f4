package macrocss

import "strings"

// Screen is a named responsive breakpoint. Records assigned to a screen are
// emitted inside its media query block; the zero-name screen is the default
// (unwrapped) group.
type Screen struct {
	Name       string
	MediaQuery string
}

// recordKey distinguishes records by selector and scope within one screen.
func recordKey(selector, scope string) string {
	return scope + "\x1f" + selector
}

type screenGroup struct {
	order   []string
	records map[string]*CssRecord
}

func newScreenGroup() *screenGroup {
	return &screenGroup{records: make(map[string]*CssRecord)}
}

// CompilationResult owns every CssRecord produced for one compilation
// universe, partitioned by screen for ordered emission. Two lookups
// describing the same logical selector (same escaped selector, screen and
// scope) always resolve to the same record instance.
type CompilationResult struct {
	screens []Screen
	// DefaultScreenLast emits the no-media group after all screens instead
	// of before them.
	DefaultScreenLast bool

	groups map[string]*screenGroup

	hooks   *Hooks
	mangler *Mangler

	// Warnings collects non-fatal degradations observed while compiling
	// into this result (malformed directives, unknown references).
	Warnings []string
}

// NewCompilationResult creates an empty result bound to the given hook
// registry, mangler and screen ordering.
func NewCompilationResult(screens []Screen, hooks *Hooks, mangler *Mangler) *CompilationResult {
	if mangler == nil {
		mangler = NewMangler()
	}
	return &CompilationResult{
		screens: screens,
		groups:  make(map[string]*screenGroup),
		hooks:   hooks,
		mangler: mangler,
	}
}

// Mangler returns the shared mangler backing this result.
func (cr *CompilationResult) Mangler() *Mangler { return cr.mangler }

// EnsureRecord returns the record for (selector, screen, scope), creating it
// on first request. selector must already be escaped.
func (cr *CompilationResult) EnsureRecord(selector, screen, scope string) *CssRecord {
	group, ok := cr.groups[screen]
	if !ok {
		group = newScreenGroup()
		cr.groups[screen] = group
	}

	key := recordKey(selector, scope)
	if rec, ok := group.records[key]; ok {
		return rec
	}

	rec := newCssRecord(selector, screen, scope, cr.hooks, cr.mangler)
	group.records[key] = rec
	group.order = append(group.order, key)
	return rec
}

// GetRecord returns the record for (selector, screen, scope), or nil.
func (cr *CompilationResult) GetRecord(selector, screen, scope string) *CssRecord {
	group, ok := cr.groups[screen]
	if !ok {
		return nil
	}
	return group.records[recordKey(selector, scope)]
}

// RecordCount returns the total number of records across all screens.
func (cr *CompilationResult) RecordCount() int {
	n := 0
	for _, group := range cr.groups {
		n += len(group.records)
	}
	return n
}

// screenOrder yields screen names in emission order: the default group
// first (or last when configured), then configured screens in ascending
// configuration order.
func (cr *CompilationResult) screenOrder() []string {
	names := make([]string, 0, len(cr.screens)+1)
	if !cr.DefaultScreenLast {
		names = append(names, "")
	}
	for _, s := range cr.screens {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	if cr.DefaultScreenLast {
		names = append(names, "")
	}
	return names
}

func (cr *CompilationResult) mediaQuery(screen string) string {
	for _, s := range cr.screens {
		if s.Name == screen {
			return s.MediaQuery
		}
	}
	return ""
}

// GenerateCss renders the whole result: per-screen groups concatenated in
// screen order, records within a group in creation order, non-default
// screens wrapped in their media query. Records flagged off via
// ShouldBeGenerated are skipped.
func (cr *CompilationResult) GenerateCss(opts RenderOptions) string {
	var b strings.Builder

	for _, screen := range cr.screenOrder() {
		group, ok := cr.groups[screen]
		if !ok {
			continue
		}

		var body strings.Builder
		for _, key := range group.order {
			rec := group.records[key]
			if !rec.ShouldBeGenerated {
				continue
			}
			body.WriteString(rec.GenerateCss(opts))
		}
		if body.Len() == 0 {
			continue
		}

		if screen == "" {
			b.WriteString(body.String())
			continue
		}

		query := cr.mediaQuery(screen)
		if opts.Minimize {
			b.WriteString("@media " + query + "{" + body.String() + "}")
		} else {
			b.WriteString("@media " + query + " {\n" + body.String() + "}\n")
		}
	}

	return b.String()
}
