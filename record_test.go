package macrocss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRecord(selector string) *CssRecord {
	return newCssRecord(selector, "", "", NewHooks(), NewMangler())
}

func TestCssRecordFirstWriteWins(t *testing.T) {
	rec := newTestRecord("m\\:10px")
	rec.AddProperty("margin", "10px")
	rec.AddProperty("margin", "20px")

	require.Equal(t, "10px", rec.Properties()["margin"])
	require.Contains(t, rec.GenerateCss(RenderOptions{}), "margin:10px")
}

func TestCssRecordRendersBasicRule(t *testing.T) {
	rec := newTestRecord(`m\:10px`)
	rec.AddProperty("margin", "10px")

	require.Equal(t, ".m\\:10px{\n\tmargin:10px\n}\n", rec.GenerateCss(RenderOptions{}))
}

func TestCssRecordMinimize(t *testing.T) {
	rec := newTestRecord("a")
	rec.AddProperty("margin", "10px")
	rec.AddProperty("color", "red")

	require.Equal(t, ".a{margin:10px;color:red}", rec.GenerateCss(RenderOptions{Minimize: true}))
}

func TestCssRecordPseudoClassesReplaceUnsuffixedVariant(t *testing.T) {
	rec := newTestRecord(`m\:10px`)
	rec.AddProperty("margin", "10px")
	rec.AddPseudoClasses("hover")

	css := rec.GenerateCss(RenderOptions{})
	require.Contains(t, css, `.m\:10px:hover{`)
	require.NotContains(t, css, `.m\:10px{`)
}

func TestCssRecordScopePrefixesEveryVariant(t *testing.T) {
	rec := newCssRecord("a", "", "#app ", NewHooks(), NewMangler())
	rec.AddProperty("margin", "1px")
	rec.AddCustomSelectors("article h1")

	css := rec.GenerateCss(RenderOptions{})
	require.Contains(t, css, "#app article h1")
	require.Contains(t, css, "#app .a{")
}

func TestCssRecordComponentChains(t *testing.T) {
	rec := newTestRecord(`p\:8px`)
	rec.AddProperty("padding", "8px")
	rec.AddComponent("btn", "")
	rec.AddComponent("btn", "rounded")
	// Duplicate chain is a no-op.
	rec.AddComponent("btn", "rounded")

	css := rec.GenerateCss(RenderOptions{Minimize: true})
	require.Equal(t, `.p\:8px,.btn,.btn.rounded{padding:8px}`, css)
}

func TestCssRecordMangledRender(t *testing.T) {
	mangler := NewMangler()
	rec := newCssRecord(`m\:10px`, "", "", NewHooks(), mangler)
	rec.AddProperty("margin", "10px")

	require.Equal(t, ".m\\:10px{\n\tmargin:10px\n}\n", rec.GenerateCss(RenderOptions{}))
	require.Equal(t, ".a{\n\tmargin:10px\n}\n", rec.GenerateCss(RenderOptions{MangleSelectors: true}))
	// Switching back does not require recompilation.
	require.Equal(t, ".m\\:10px{\n\tmargin:10px\n}\n", rec.GenerateCss(RenderOptions{}))
}

func TestCssRecordCacheInvalidation(t *testing.T) {
	renders := 0
	hooks := NewHooks()
	hooks.OnCss(func(p CssPayload) CssPayload {
		renders++
		return p
	})

	rec := newCssRecord("a", "", "", hooks, NewMangler())
	rec.AddProperty("margin", "1px")

	first := rec.GenerateCss(RenderOptions{})
	second := rec.GenerateCss(RenderOptions{})
	require.Equal(t, first, second)
	require.Equal(t, 1, renders, "unchanged record must serve the cache")

	rec.AddProperty("color", "red")
	third := rec.GenerateCss(RenderOptions{})
	require.NotEqual(t, first, third)
	require.Equal(t, 2, renders, "mutation must invalidate the cache")
}

func TestCssRecordEmptyPropertiesRenderNothing(t *testing.T) {
	rec := newTestRecord("a")
	require.Equal(t, "", rec.GenerateCss(RenderOptions{}))
}
