package macrocss

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManglerSequence(t *testing.T) {
	m := NewMangler()

	require.Equal(t, "a", m.MangledSelector("first"))
	require.Equal(t, "b", m.MangledSelector("second"))
	require.Equal(t, "c", m.MangledSelector("third"))

	// Memoized: repeated requests return the same assignment.
	require.Equal(t, "a", m.MangledSelector("first"))
	require.Equal(t, "b", m.MangledSelector("second"))
}

func TestManglerDistinctSelectorsDistinctIds(t *testing.T) {
	m := NewMangler()
	seen := make(map[string]bool)

	for i := 0; i < 2000; i++ {
		id := m.MangledSelector(fmt.Sprintf("selector-%d", i))
		require.False(t, seen[id], "identifier %q assigned twice", id)
		seen[id] = true
	}
}

func TestManglerSkipsReservedIdents(t *testing.T) {
	m := NewMangler()

	// "ad" is the 30th identifier in the raw sequence; exhaust past it.
	for i := 0; i < 100; i++ {
		id := m.MangledSelector(fmt.Sprintf("sel-%d", i))
		require.False(t, reservedIdents[id], "reserved identifier %q was assigned", id)
	}
}

func TestManglerRestoreResumesWithoutCollision(t *testing.T) {
	first := NewMangler()
	aID := first.MangledSelector("alpha")
	bID := first.MangledSelector("beta")

	second := NewMangler()
	second.Restore(first.Table())

	// Known selectors keep their assignments.
	require.Equal(t, aID, second.MangledSelector("alpha"))
	require.Equal(t, bID, second.MangledSelector("beta"))

	// New selectors never collide with restored identifiers.
	cID := second.MangledSelector("gamma")
	require.NotEqual(t, aID, cID)
	require.NotEqual(t, bID, cID)
}

func TestIdentAt(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{26 + 36, "ba"},
		{26 + 26*36 - 1, "z9"},
		{26 + 26*36, "aaa"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, identAt(tt.index))
		})
	}
}
