package macrocss

// SelectorProperties accumulates the property -> value pairs a macro handler
// derives for one matched token. Each candidate pair is folded through the
// property hook pipeline before acceptance, so hooks can rewrite a value or
// expand a shorthand into several longhands. First write wins, matching the
// record-level policy, so handlers are safe to call redundantly.
type SelectorProperties struct {
	hooks *Hooks
	names []string
	props map[string]string
}

func newSelectorProperties(hooks *Hooks) *SelectorProperties {
	return &SelectorProperties{
		hooks: hooks,
		props: make(map[string]string),
	}
}

// Add proposes a property for the current selector.
func (p *SelectorProperties) Add(name, value string) {
	payload := p.hooks.applyProperty(PropertyPayload{Name: name, Value: value})

	if len(payload.Derived) > 0 {
		for _, d := range payload.Derived {
			p.accept(d.Name, d.Value)
		}
		return
	}
	p.accept(payload.Name, payload.Value)
}

func (p *SelectorProperties) accept(name, value string) {
	if name == "" {
		return
	}
	if _, exists := p.props[name]; exists {
		return
	}
	p.names = append(p.names, name)
	p.props[name] = value
}

// Properties returns the accumulated pairs in acceptance order.
func (p *SelectorProperties) Properties() ([]string, map[string]string) {
	return p.names, p.props
}

// Empty reports whether the handler produced no properties.
func (p *SelectorProperties) Empty() bool { return len(p.names) == 0 }
