package macrocss

import "strings"

// RenderOptions controls CSS text generation.
type RenderOptions struct {
	// Minimize strips all optional whitespace from the output.
	Minimize bool
	// MangleSelectors replaces literal class selectors with short generated
	// identifiers. Mangling is applied at render time only; the canonical
	// selector stored on each record is never rewritten, so the same result
	// can be rendered both ways without recompilation.
	MangleSelectors bool
}

// CssRecord is the durable unit of output: one logical selector with its
// resolved properties, pseudo-class variants, component aliases and custom
// selectors. Rendered text is memoized under a generation counter: every
// mutation bumps the generation, and the cache is served only while its
// recorded generation and render options still match.
type CssRecord struct {
	selector        string
	mangledSelector string
	screen          string
	scope           string

	customSelectors []string
	componentOrder  []string
	components      map[string][]string

	propertyNames []string
	properties    map[string]string
	pseudoClasses []string

	// ShouldBeGenerated suppresses the record from rendered output while
	// keeping it available for later activation.
	ShouldBeGenerated bool

	hooks   *Hooks
	mangler *Mangler

	gen       uint64
	cacheGen  uint64
	cacheOpts RenderOptions
	cache     string
	cacheOk   bool
}

func newCssRecord(selector, screen, scope string, hooks *Hooks, mangler *Mangler) *CssRecord {
	r := &CssRecord{
		selector:          selector,
		screen:            screen,
		scope:             scope,
		components:        make(map[string][]string),
		properties:        make(map[string]string),
		ShouldBeGenerated: true,
		hooks:             hooks,
		mangler:           mangler,
	}
	if mangler != nil {
		r.mangledSelector = mangler.MangledSelector(selector)
	}
	return r
}

// Selector returns the canonical escaped selector.
func (r *CssRecord) Selector() string { return r.selector }

// MangledSelector returns the short identifier assigned at creation.
func (r *CssRecord) MangledSelector() string { return r.mangledSelector }

// Screen returns the record's breakpoint key, "" for the default group.
func (r *CssRecord) Screen() string { return r.screen }

// Properties returns the record's property map. Callers must not mutate it.
func (r *CssRecord) Properties() map[string]string { return r.properties }

func (r *CssRecord) touch() {
	r.gen++
	r.cacheOk = false
}

// AddProperty stores a property value. A name already present is left
// untouched: first write wins, by contract.
func (r *CssRecord) AddProperty(name, value string) {
	if name == "" {
		return
	}
	if _, exists := r.properties[name]; exists {
		return
	}
	r.propertyNames = append(r.propertyNames, name)
	r.properties[name] = value
	r.touch()
}

// AddProperties merges accumulated handler output in acceptance order.
func (r *CssRecord) AddProperties(names []string, props map[string]string) {
	for _, name := range names {
		r.AddProperty(name, props[name])
	}
}

// AddPseudoClasses appends pseudo-class suffixes, deduplicated.
func (r *CssRecord) AddPseudoClasses(pseudoClasses ...string) {
	for _, pc := range pseudoClasses {
		if pc == "" || containsString(r.pseudoClasses, pc) {
			continue
		}
		r.pseudoClasses = append(r.pseudoClasses, pc)
		r.touch()
	}
}

// AddCustomSelectors appends literal selectors that receive the same
// property set without mangling.
func (r *CssRecord) AddCustomSelectors(selectors ...string) {
	for _, sel := range selectors {
		if sel == "" || containsString(r.customSelectors, sel) {
			continue
		}
		r.customSelectors = append(r.customSelectors, sel)
		r.touch()
	}
}

// AddComponent associates a component alias with a selector chain. Chains
// are deduplicated per alias; an empty chain means the alias applies alone.
func (r *CssRecord) AddComponent(alias, chain string) {
	if alias == "" {
		return
	}
	chains, known := r.components[alias]
	if !known {
		r.componentOrder = append(r.componentOrder, alias)
	}
	if known && containsString(chains, chain) {
		return
	}
	r.components[alias] = append(chains, chain)
	r.touch()
}

// GenerateCss renders the record. Repeated calls without mutation and with
// the same options return the cached text with no recomputation.
func (r *CssRecord) GenerateCss(opts RenderOptions) string {
	if r.cacheOk && r.cacheGen == r.gen && r.cacheOpts == opts {
		return r.cache
	}

	css := r.render(opts)
	css = r.hooks.applyCss(CssPayload{Selector: r.selector, Css: css}).Css

	r.cache = css
	r.cacheGen = r.gen
	r.cacheOpts = opts
	r.cacheOk = true
	return css
}

func (r *CssRecord) render(opts RenderOptions) string {
	selectors := r.selectorVariants(opts)
	if len(selectors) == 0 || len(r.propertyNames) == 0 {
		return ""
	}

	var b strings.Builder
	if opts.Minimize {
		b.WriteString(strings.Join(selectors, ","))
		b.WriteByte('{')
		for i, name := range r.propertyNames {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(name)
			b.WriteByte(':')
			b.WriteString(r.properties[name])
		}
		b.WriteByte('}')
		return b.String()
	}

	b.WriteString(strings.Join(selectors, ",\n"))
	b.WriteString("{\n")
	for i, name := range r.propertyNames {
		if i > 0 {
			b.WriteString(";\n")
		}
		b.WriteByte('\t')
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(r.properties[name])
	}
	b.WriteString("\n}\n")
	return b.String()
}

// selectorVariants expands the record into its emitted selector list: custom
// selectors verbatim, the class selector (mangled or literal), and component
// alias combinations, each prefixed with the scope and suffixed with every
// pseudo-class when any are present.
func (r *CssRecord) selectorVariants(opts RenderOptions) []string {
	var base []string

	base = append(base, r.customSelectors...)

	class := r.selector
	if opts.MangleSelectors && r.mangledSelector != "" {
		class = r.mangledSelector
	}
	base = append(base, "."+class)

	for _, alias := range r.componentOrder {
		aliasClass := EscapeSelector(alias)
		if opts.MangleSelectors && r.mangler != nil {
			aliasClass = r.mangler.MangledSelector(alias)
		}
		for _, chain := range r.components[alias] {
			sel := "." + aliasClass
			for _, link := range strings.Fields(chain) {
				sel += "." + EscapeSelector(link)
			}
			base = append(base, sel)
		}
	}

	if len(r.pseudoClasses) == 0 {
		out := make([]string, len(base))
		for i, sel := range base {
			out[i] = r.scope + sel
		}
		return out
	}

	out := make([]string, 0, len(base)*len(r.pseudoClasses))
	for _, sel := range base {
		for _, pc := range r.pseudoClasses {
			out = append(out, r.scope+sel+":"+pc)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
