package macrocss

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// PropertySnapshot is one property pair in acceptance order.
type PropertySnapshot struct {
	Name  string `json:"name" msgpack:"name"`
	Value string `json:"value" msgpack:"value"`
}

// ComponentSnapshot is one component alias with its selector chains.
type ComponentSnapshot struct {
	Alias  string   `json:"alias" msgpack:"alias"`
	Chains []string `json:"chains" msgpack:"chains"`
}

// RecordSnapshot is the plain structural form of one CssRecord. Hook
// bindings and any other function-valued state are not part of it.
type RecordSnapshot struct {
	Selector          string              `json:"selector" msgpack:"selector"`
	MangledSelector   string              `json:"mangledSelector" msgpack:"mangledSelector"`
	Screen            string              `json:"screenId,omitempty" msgpack:"screenId"`
	Scope             string              `json:"scope,omitempty" msgpack:"scope"`
	CustomSelectors   []string            `json:"customSelectors,omitempty" msgpack:"customSelectors"`
	Components        []ComponentSnapshot `json:"components,omitempty" msgpack:"components"`
	Properties        []PropertySnapshot  `json:"properties" msgpack:"properties"`
	PseudoClasses     []string            `json:"pseudoClasses,omitempty" msgpack:"pseudoClasses"`
	ShouldBeGenerated bool                `json:"shouldBeGenerated" msgpack:"shouldBeGenerated"`
}

// Snapshot is the serialized form of a CompilationResult: every record in
// creation order plus the mangler's assignment table, so a hydrated result
// continues the short-identifier sequence without collision.
type Snapshot struct {
	SelectorsList    []RecordSnapshot  `json:"selectorsList" msgpack:"selectorsList"`
	MangledSelectors map[string]string `json:"mangledSelectors" msgpack:"mangledSelectors"`
}

// Serialize captures the result's structural state.
func (cr *CompilationResult) Serialize() *Snapshot {
	snap := &Snapshot{MangledSelectors: cr.mangler.Table()}

	for _, screen := range cr.allScreens() {
		group, ok := cr.groups[screen]
		if !ok {
			continue
		}
		for _, key := range group.order {
			snap.SelectorsList = append(snap.SelectorsList, snapshotRecord(group.records[key]))
		}
	}

	return snap
}

// allScreens is screenOrder extended with any screen that holds records but
// is absent from the configured list, so no record is dropped.
func (cr *CompilationResult) allScreens() []string {
	ordered := cr.screenOrder()
	seen := make(map[string]bool, len(ordered))
	for _, s := range ordered {
		seen[s] = true
	}
	for s := range cr.groups {
		if !seen[s] {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

func snapshotRecord(r *CssRecord) RecordSnapshot {
	snap := RecordSnapshot{
		Selector:          r.selector,
		MangledSelector:   r.mangledSelector,
		Screen:            r.screen,
		Scope:             r.scope,
		CustomSelectors:   append([]string(nil), r.customSelectors...),
		PseudoClasses:     append([]string(nil), r.pseudoClasses...),
		ShouldBeGenerated: r.ShouldBeGenerated,
	}
	for _, alias := range r.componentOrder {
		snap.Components = append(snap.Components, ComponentSnapshot{
			Alias:  alias,
			Chains: append([]string(nil), r.components[alias]...),
		})
	}
	for _, name := range r.propertyNames {
		snap.Properties = append(snap.Properties, PropertySnapshot{Name: name, Value: r.properties[name]})
	}
	return snap
}

// Hydrate reconstructs a CompilationResult from a snapshot. The hook
// registry is process-local configuration, not data, so the caller supplies
// the bindings to re-attach; likewise the screen table. The mangler is
// seeded from the snapshot's assignment table before any record is rebuilt,
// which keeps subsequently compiled selectors collision-free and makes
// merging new content indistinguishable from a single-pass compile.
func Hydrate(snap *Snapshot, screens []Screen, hooks *Hooks, mangler *Mangler) *CompilationResult {
	if mangler == nil {
		mangler = NewMangler()
	}
	mangler.Restore(snap.MangledSelectors)

	cr := NewCompilationResult(screens, hooks, mangler)
	for _, rs := range snap.SelectorsList {
		rec := cr.EnsureRecord(rs.Selector, rs.Screen, rs.Scope)
		for _, p := range rs.Properties {
			rec.AddProperty(p.Name, p.Value)
		}
		rec.AddPseudoClasses(rs.PseudoClasses...)
		rec.AddCustomSelectors(rs.CustomSelectors...)
		for _, comp := range rs.Components {
			for _, chain := range comp.Chains {
				rec.AddComponent(comp.Alias, chain)
			}
		}
		rec.ShouldBeGenerated = rs.ShouldBeGenerated
	}

	return cr
}

// MarshalJSON encodes the snapshot as the plain JSON document consumers
// persist between build passes.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	type plain Snapshot
	return json.Marshal((*plain)(s))
}

// UnmarshalJSON decodes a snapshot document.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	type plain Snapshot
	if err := json.Unmarshal(data, (*plain)(s)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return nil
}

// MarshalBinary encodes the snapshot with msgpack, the compact form used
// for cross-run build caches.
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	type plain Snapshot
	return msgpack.Marshal((*plain)(s))
}

// UnmarshalBinary decodes a msgpack snapshot.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	type plain Snapshot
	if err := msgpack.Unmarshal(data, (*plain)(s)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return nil
}
