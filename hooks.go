package macrocss

// PropertyPayload is the value folded through the property-addition hook
// pipeline. Handlers propose a single candidate pair; hooks may rewrite it or
// expand it into several derived properties (e.g. a shorthand into longhands)
// by filling Derived. When Derived is non-empty it replaces the candidate pair
// entirely and its pairs are accepted in listed order, so derived declarations
// render in the same order on every compile; otherwise Name/Value are merged
// as-is.
type PropertyPayload struct {
	Name    string
	Value   string
	Derived []PropertyPair
}

// PropertyPair is one derived property declaration.
type PropertyPair struct {
	Name  string
	Value string
}

// CssPayload is the value folded through the post-generation hook pipeline.
// Listeners observe (and may rewrite) the rendered text of one record.
type CssPayload struct {
	Selector string
	Css      string
}

// PropertyHook transforms a candidate property before it is accepted.
type PropertyHook func(PropertyPayload) PropertyPayload

// CssHook observes the CSS text rendered for a record.
type CssHook func(CssPayload) CssPayload

// pipeline folds a payload through an ordered, append-only listener list.
type pipeline[T any] struct {
	listeners []func(T) T
}

func (p *pipeline[T]) add(fn func(T) T) {
	p.listeners = append(p.listeners, fn)
}

// call feeds payload through every listener in registration order. With no
// listeners the payload is returned unchanged.
func (p *pipeline[T]) call(payload T) T {
	for _, fn := range p.listeners {
		payload = fn(payload)
	}
	return payload
}

// Hooks is the extension-point registry for one compiler instance. It is
// passed by reference into the compiler and its records rather than living in
// package-level state, so independent compilers never share bindings.
// Registration is expected to happen before compilation begins; the registry
// is append-only for its lifetime.
type Hooks struct {
	property pipeline[PropertyPayload]
	css      pipeline[CssPayload]
}

// NewHooks returns an empty hook registry.
func NewHooks() *Hooks {
	return &Hooks{}
}

// OnProperty registers a listener on the property-addition extension point.
func (h *Hooks) OnProperty(fn PropertyHook) {
	h.property.add(func(p PropertyPayload) PropertyPayload { return fn(p) })
}

// OnCss registers a listener on the post-CSS-generation extension point.
func (h *Hooks) OnCss(fn CssHook) {
	h.css.add(func(p CssPayload) CssPayload { return fn(p) })
}

// applyProperty folds a candidate property through the registered listeners.
// Safe to call on a nil registry.
func (h *Hooks) applyProperty(p PropertyPayload) PropertyPayload {
	if h == nil {
		return p
	}
	return h.property.call(p)
}

// applyCss folds rendered CSS through the registered listeners.
// Safe to call on a nil registry.
func (h *Hooks) applyCss(p CssPayload) CssPayload {
	if h == nil {
		return p
	}
	return h.css.call(p)
}
