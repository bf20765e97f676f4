package macrocss

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MacroHandler receives one matched token and fills the accumulator with the
// CSS properties the token encodes. Handler output is final for that token;
// a handler returning an error (a bad capture index, typically) aborts the
// compile pass, since handlers are developer-authored configuration.
type MacroHandler func(*MacroMatch, *SelectorProperties) error

// Macro pairs a pattern with its handler. Patterns are tried in configured
// order; the first pattern matching a token wins.
type Macro struct {
	Pattern string
	Handler MacroHandler
}

// Config is the compiler configuration.
type Config struct {
	Macros []Macro

	// Variables are substituted into content ($name references) before
	// scanning. Content-level variable directives override them per pass.
	Variables map[string]string

	// Components maps an alias to utility chains. Every utility in a chain
	// contributes its properties to the alias selector; chain members that
	// match no macro stay literal and compound the alias selector instead.
	Components map[string][]string

	// Screens declares breakpoints in ascending emission order.
	Screens []Screen

	// DefaultScreenLast emits the no-media group after the screens.
	DefaultScreenLast bool

	// Scope, when set, prefixes every emitted selector variant.
	Scope string

	// Pregenerate tokens are compiled on every pass even when absent from
	// the scanned content.
	Pregenerate []string

	// ContentProcessors are named custom directive extractors, run after the
	// built-in macrocss-* directive syntax.
	ContentProcessors map[string]ContentOptionProcessor

	// Hooks and Mangler are injected capabilities. Hooks default to an empty
	// registry private to this compiler; the mangler defaults to a fresh one
	// but should be shared when several compilers must produce consistent
	// mangled output.
	Hooks   *Hooks
	Mangler *Mangler
}

type compiledMacro struct {
	re      *regexp.Regexp
	handler MacroHandler
}

// Compiler scans content for configured macro tokens and folds the matches
// into a CompilationResult.
type Compiler struct {
	config     Config
	macros     []compiledMacro
	screens    map[string]string
	components map[string][]string
	variables  map[string]string
	hooks      *Hooks
	mangler    *Mangler
}

// New builds a compiler, compiling every macro pattern up front. Pattern and
// handler problems fail immediately: they are developer configuration, not
// content.
func New(config Config) (*Compiler, error) {
	c := &Compiler{
		config:     config,
		screens:    make(map[string]string, len(config.Screens)),
		components: make(map[string][]string),
		variables:  make(map[string]string),
		hooks:      config.Hooks,
		mangler:    config.Mangler,
	}
	if c.hooks == nil {
		c.hooks = NewHooks()
	}
	if c.mangler == nil {
		c.mangler = NewMangler()
	}

	for _, s := range config.Screens {
		c.screens[s.Name] = s.MediaQuery
	}
	for alias, chains := range config.Components {
		c.components[alias] = append([]string(nil), chains...)
	}
	for name, value := range config.Variables {
		c.variables[name] = value
	}

	for i, macro := range config.Macros {
		if macro.Handler == nil {
			return nil, fmt.Errorf("%w: macro %d (%s)", ErrNilHandler, i, macro.Pattern)
		}
		// Anchored composition: an optional chain of screen/pseudo prefixes,
		// then the macro body, spanning the whole candidate token. Anchoring
		// keeps greedy captures from crossing token boundaries.
		re, err := regexp.Compile(`^((?:[\w-]+:)*)(` + macro.Pattern + `)$`)
		if err != nil {
			return nil, fmt.Errorf("%w: macro %d (%s): %v", ErrBadPattern, i, macro.Pattern, err)
		}
		c.macros = append(c.macros, compiledMacro{re: re, handler: macro.Handler})
	}

	return c, nil
}

// Hooks returns the compiler's hook registry for listener registration.
func (c *Compiler) Hooks() *Hooks { return c.hooks }

// Mangler returns the compiler's mangler.
func (c *Compiler) Mangler() *Mangler { return c.mangler }

// NewResult returns an empty result bound to this compiler's hooks, mangler
// and screen ordering.
func (c *Compiler) NewResult() *CompilationResult {
	result := NewCompilationResult(c.config.Screens, c.hooks, c.mangler)
	result.DefaultScreenLast = c.config.DefaultScreenLast
	return result
}

// Compile scans content and merges the discovered declarations into existing
// (or a fresh result when existing is nil). Compiling identical content
// repeatedly into the same result is a no-op beyond the first pass: record
// identity lookup and first-write-wins make the operation idempotent.
func (c *Compiler) Compile(content string, existing *CompilationResult) (*CompilationResult, error) {
	result := existing
	if result == nil {
		result = c.NewResult()
	}

	opts, warnings := processDirectives(content)
	result.Warnings = append(result.Warnings, warnings...)

	names := make([]string, 0, len(c.config.ContentProcessors))
	for name := range c.config.ContentProcessors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		extra, err := c.config.ContentProcessors[name](content)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("content processor %s: directive dropped: %v", name, err))
			continue
		}
		opts.merge(extra)
	}

	variables := c.variables
	if len(opts.Variables) > 0 {
		variables = make(map[string]string, len(c.variables)+len(opts.Variables))
		for k, v := range c.variables {
			variables[k] = v
		}
		for k, v := range opts.Variables {
			variables[k] = v
		}
	}

	for alias, chains := range opts.Components {
		for _, chain := range chains {
			if containsString(c.components[alias], chain) {
				continue
			}
			c.components[alias] = append(c.components[alias], chain)
		}
	}

	scanned := stripDirectives(content)
	if len(c.config.Pregenerate) > 0 || len(opts.Pregenerate) > 0 {
		scanned += " " + strings.Join(c.config.Pregenerate, " ") + " " + strings.Join(opts.Pregenerate, " ")
	}
	scanned = substituteVariables(scanned, variables)

	tokens := splitTokens(scanned)
	componentRefs, err := c.scan(tokens, result)
	if err != nil {
		return nil, err
	}
	if err := c.expandComponents(componentRefs, result); err != nil {
		return nil, err
	}

	return result, nil
}

// scan tests every content token against the macro table in configured
// order and registers a record per distinct matched token. The first
// pattern matching a token wins; tokens matching nothing stay literal.
// Tokens naming a registered component alias emit no properties of their
// own; their matches are returned for expansion after the pass.
func (c *Compiler) scan(tokens []string, result *CompilationResult) ([]*MacroMatch, error) {
	consumed := make(map[string]bool)
	var componentRefs []*MacroMatch

	for _, token := range tokens {
		if consumed[token] {
			continue
		}
		consumed[token] = true

		if _, ok := c.components[token]; ok {
			componentRefs = append(componentRefs, newComponentMatch(token))
			continue
		}

		m, ok := c.matchToken(token)
		if !ok {
			continue
		}
		if _, err := c.compileToken(token, m.prefixes, m.captures, m.handler, result, nil); err != nil {
			return nil, err
		}
	}

	return componentRefs, nil
}

// splitTokens breaks content into candidate tokens at whitespace and markup
// delimiters, so captures never leak across attribute quotes or tags.
func splitTokens(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '\'', '`', '=', '<', '>', '(', ')', '{', '}', '[', ']', ',', ';':
			return true
		}
		return false
	})
}

// compileToken runs one matched token through its handler and merges the
// outcome into the result. Malformed tokens (unrecognized prefix segments)
// and empty handler output register no record. component, when non-empty,
// is the alias this token styles.
func (c *Compiler) compileToken(token, prefixes string, captures []string, handler MacroHandler, result *CompilationResult, component *componentRef) (*CssRecord, error) {
	match := newMacroMatch(token, prefixes, captures, c.screens)
	if !match.valid {
		return nil, nil
	}

	props := newSelectorProperties(c.hooks)
	if err := handler(match, props); err != nil {
		return nil, fmt.Errorf("macro handler for token %q: %w", token, err)
	}
	if props.Empty() {
		return nil, nil
	}

	rec := result.EnsureRecord(EscapeSelector(token), match.Screen(), c.config.Scope)
	rec.AddProperties(props.Properties())
	rec.AddPseudoClasses(match.PseudoClasses()...)
	if component != nil {
		rec.AddComponent(component.alias, component.chain)
	}
	return rec, nil
}

type componentRef struct {
	alias string
	chain string
}

// expandComponents compiles the chains of every alias the scan matched.
// Chain members that match a macro contribute their properties to the alias
// selector; members matching nothing remain literal classes and compound the
// alias selector instead of being expanded. An alias referenced in content
// but defined nowhere never reaches this point: it stays a literal class.
func (c *Compiler) expandComponents(matches []*MacroMatch, result *CompilationResult) error {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Selector() < matches[j].Selector()
	})

	for _, m := range matches {
		if !m.IsComponent() {
			continue
		}
		for _, chain := range c.components[m.Selector()] {
			if err := c.compileChain(m.Selector(), chain, result); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Compiler) compileChain(alias, chain string, result *CompilationResult) error {
	members := strings.Fields(chain)

	var literals []string
	type pending struct {
		token    string
		prefixes string
		captures []string
		handler  MacroHandler
	}
	var matched []pending

	for _, member := range members {
		m, ok := c.matchToken(member)
		if !ok {
			literals = append(literals, member)
			continue
		}
		matched = append(matched, pending{member, m.prefixes, m.captures, m.handler})
	}

	ref := &componentRef{alias: alias, chain: strings.Join(literals, " ")}
	for _, p := range matched {
		if _, err := c.compileToken(p.token, p.prefixes, p.captures, p.handler, result, ref); err != nil {
			return err
		}
	}

	return nil
}

type tokenMatch struct {
	prefixes string
	captures []string
	handler  MacroHandler
}

// matchToken tests a lone token against the macro table, returning the
// first full-token match.
func (c *Compiler) matchToken(token string) (tokenMatch, bool) {
	for _, macro := range c.macros {
		groups := macro.re.FindStringSubmatch(token)
		if groups == nil {
			continue
		}
		return tokenMatch{prefixes: groups[1], captures: groups[3:], handler: macro.handler}, true
	}
	return tokenMatch{}, false
}

// substituteVariables textually replaces $name references with configured
// values. Longer names replace first so $primary-dark is never clobbered by
// $primary.
func substituteVariables(content string, variables map[string]string) string {
	if len(variables) == 0 {
		return content
	}

	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "$"+name, variables[name])
	}
	return strings.NewReplacer(pairs...).Replace(content)
}
