package macrocss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHooksEmptyPipelinePassthrough(t *testing.T) {
	h := NewHooks()

	p := h.applyProperty(PropertyPayload{Name: "margin", Value: "10px"})
	require.Equal(t, "margin", p.Name)
	require.Equal(t, "10px", p.Value)

	c := h.applyCss(CssPayload{Selector: "x", Css: ".x{}"})
	require.Equal(t, ".x{}", c.Css)
}

func TestHooksFoldInRegistrationOrder(t *testing.T) {
	h := NewHooks()
	h.OnProperty(func(p PropertyPayload) PropertyPayload {
		p.Value += "-first"
		return p
	})
	h.OnProperty(func(p PropertyPayload) PropertyPayload {
		p.Value += "-second"
		return p
	})

	p := h.applyProperty(PropertyPayload{Name: "margin", Value: "v"})
	require.Equal(t, "v-first-second", p.Value)
}

func TestHooksDerivedPropertiesExpandShorthand(t *testing.T) {
	h := NewHooks()
	h.OnProperty(func(p PropertyPayload) PropertyPayload {
		if p.Name == "mx" {
			p.Derived = []PropertyPair{
				{Name: "margin-left", Value: p.Value},
				{Name: "margin-right", Value: p.Value},
			}
		}
		return p
	})

	props := newSelectorProperties(h)
	props.Add("mx", "4px")

	names, values := props.Properties()
	require.Equal(t, []string{"margin-left", "margin-right"}, names)
	require.Equal(t, "4px", values["margin-left"])
	require.Equal(t, "4px", values["margin-right"])
}

func TestHooksNilRegistrySafe(t *testing.T) {
	var h *Hooks
	p := h.applyProperty(PropertyPayload{Name: "margin", Value: "1px"})
	require.Equal(t, "margin", p.Name)
}
