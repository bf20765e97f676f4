//go:build property
// +build property

package macrocss

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestManglerProperties tests determinism and injectivity of the selector
// mangler over arbitrary selector strings.
func TestManglerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("repeated requests are memoized", prop.ForAll(
		func(selector string) bool {
			m := NewMangler()
			first := m.MangledSelector(selector)
			second := m.MangledSelector(selector)
			return first == second
		},
		gen.RegexMatch(`^[a-z0-9:%.#-]+$`),
	))

	properties.Property("distinct selectors get distinct identifiers", prop.ForAll(
		func(a, b string) bool {
			if a == b {
				return true
			}
			m := NewMangler()
			return m.MangledSelector(a) != m.MangledSelector(b)
		},
		gen.RegexMatch(`^[a-z0-9:%.-]+$`),
		gen.RegexMatch(`^[a-z0-9:%.-]+$`),
	))

	properties.Property("restore preserves assignments", prop.ForAll(
		func(selectors []string) bool {
			m := NewMangler()
			want := make(map[string]string, len(selectors))
			for _, sel := range selectors {
				want[sel] = m.MangledSelector(sel)
			}

			restored := NewMangler()
			restored.Restore(m.Table())
			for sel, id := range want {
				if restored.MangledSelector(sel) != id {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(20, gen.RegexMatch(`^[a-z0-9:-]+$`)),
	))

	properties.TestingRun(t)
}

// TestCompileProperties tests compile idempotence over generated token sets.
func TestCompileProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("recompiling the same content is a no-op", prop.ForAll(
		func(values []string) bool {
			c, err := New(Config{Macros: DefaultMacros()})
			if err != nil {
				return false
			}

			content := ""
			for _, v := range values {
				content += " m:" + v
			}

			once, err := c.Compile(content, nil)
			if err != nil {
				return false
			}
			singlePass := once.GenerateCss(RenderOptions{})

			twice, err := c.Compile(content, once)
			if err != nil {
				return false
			}
			return twice.GenerateCss(RenderOptions{}) == singlePass
		},
		gen.SliceOfN(10, gen.RegexMatch(`^[0-9]{1,3}(px|em|%)$`)),
	))

	properties.Property("serialize then hydrate renders identically", prop.ForAll(
		func(values []string) bool {
			c, err := New(Config{Macros: DefaultMacros()})
			if err != nil {
				return false
			}

			content := ""
			for _, v := range values {
				content += " p:" + v
			}
			result, err := c.Compile(content, nil)
			if err != nil {
				return false
			}

			hydrated := Hydrate(result.Serialize(), nil, NewHooks(), NewMangler())
			return hydrated.GenerateCss(RenderOptions{}) == result.GenerateCss(RenderOptions{})
		},
		gen.SliceOfN(8, gen.RegexMatch(`^[0-9]{1,2}px$`)),
	))

	properties.TestingRun(t)
}
