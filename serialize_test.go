package macrocss

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSampleResult(t *testing.T) *CompilationResult {
	t.Helper()

	cr := NewCompilationResult(testScreens, NewHooks(), NewMangler())

	rec := cr.EnsureRecord(`m\:10px`, "", "")
	rec.AddProperty("margin", "10px")
	rec.AddPseudoClasses("hover")
	rec.AddCustomSelectors("article p")
	rec.AddComponent("btn", "rounded")

	md := cr.EnsureRecord(`c\:red`, "md", "")
	md.AddProperty("color", "red")

	return cr
}

func TestSnapshotRoundTripJSON(t *testing.T) {
	cr := buildSampleResult(t)

	data, err := json.Marshal(cr.Serialize())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))

	hydrated := Hydrate(&snap, testScreens, NewHooks(), NewMangler())
	require.Equal(t,
		cr.GenerateCss(RenderOptions{}),
		hydrated.GenerateCss(RenderOptions{}))
	require.Equal(t,
		cr.GenerateCss(RenderOptions{Minimize: true, MangleSelectors: true}),
		hydrated.GenerateCss(RenderOptions{Minimize: true, MangleSelectors: true}))
}

func TestSnapshotRoundTripBinary(t *testing.T) {
	cr := buildSampleResult(t)

	data, err := cr.Serialize().MarshalBinary()
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, snap.UnmarshalBinary(data))

	hydrated := Hydrate(&snap, testScreens, NewHooks(), NewMangler())
	require.Equal(t, cr.GenerateCss(RenderOptions{}), hydrated.GenerateCss(RenderOptions{}))
}

func TestSnapshotCarriesNoHookState(t *testing.T) {
	cr := buildSampleResult(t)

	data, err := json.Marshal(cr.Serialize())
	require.NoError(t, err)

	// The document is plain data: only the selectors list and the mangler
	// table appear at the top level.
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 2)
	require.Contains(t, doc, "selectorsList")
	require.Contains(t, doc, "mangledSelectors")
}

func TestHydrationResumesManglerSequence(t *testing.T) {
	cr := NewCompilationResult(nil, NewHooks(), NewMangler())
	first := cr.EnsureRecord("one", "", "")
	first.AddProperty("margin", "1px")
	firstID := first.MangledSelector()

	snap := cr.Serialize()

	hydrated := Hydrate(snap, nil, NewHooks(), NewMangler())
	second := hydrated.EnsureRecord("two", "", "")
	second.AddProperty("margin", "2px")

	require.Equal(t, firstID, hydrated.GetRecord("one", "", "").MangledSelector())
	require.NotEqual(t, firstID, second.MangledSelector(),
		"selectors compiled after hydration must not reuse snapshot identifiers")
}

func TestUnmarshalInvalidSnapshot(t *testing.T) {
	var snap Snapshot
	require.ErrorIs(t, snap.UnmarshalJSON([]byte("{nope")), ErrInvalidSnapshot)
	require.ErrorIs(t, snap.UnmarshalBinary([]byte{0xc1}), ErrInvalidSnapshot)
}
