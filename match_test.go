package macrocss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMacroMatchPrefixParsing(t *testing.T) {
	screens := map[string]string{"sm": "(min-width: 640px)", "md": "(min-width: 768px)"}

	tests := []struct {
		name        string
		token       string
		prefixes    string
		wantScreen  string
		wantPseudos []string
		wantValid   bool
	}{
		{
			name:      "no prefixes",
			token:     "m:10px",
			prefixes:  "",
			wantValid: true,
		},
		{
			name:       "screen only",
			token:      "md:m:10px",
			prefixes:   "md:",
			wantScreen: "md",
			wantValid:  true,
		},
		{
			name:        "pseudo only",
			token:       "hover:m:10px",
			prefixes:    "hover:",
			wantPseudos: []string{"hover"},
			wantValid:   true,
		},
		{
			name:        "screen and pseudo chained",
			token:       "md:hover:m:10px",
			prefixes:    "md:hover:",
			wantScreen:  "md",
			wantPseudos: []string{"hover"},
			wantValid:   true,
		},
		{
			name:        "pseudo before screen",
			token:       "hover:sm:m:10px",
			prefixes:    "hover:sm:",
			wantScreen:  "sm",
			wantPseudos: []string{"hover"},
			wantValid:   true,
		},
		{
			name:        "many pseudos",
			token:       "hover:focus:m:10px",
			prefixes:    "hover:focus:",
			wantPseudos: []string{"hover", "focus"},
			wantValid:   true,
		},
		{
			name:      "unrecognized prefix invalidates the match",
			token:     "bogus:m:10px",
			prefixes:  "bogus:",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMacroMatch(tt.token, tt.prefixes, []string{"10px"}, screens)
			require.Equal(t, tt.wantValid, m.valid)
			if !tt.wantValid {
				return
			}
			require.Equal(t, tt.wantScreen, m.Screen())
			require.Equal(t, tt.wantPseudos, m.PseudoClasses())
			require.Equal(t, tt.token, m.Selector())
		})
	}
}

func TestComponentMatch(t *testing.T) {
	m := newComponentMatch("btn")
	require.True(t, m.IsComponent())
	require.Equal(t, "btn", m.Selector())
	require.Empty(t, m.Screen())
	require.Empty(t, m.PseudoClasses())

	literal := newMacroMatch("m:10px", "", []string{"10px"}, nil)
	require.False(t, literal.IsComponent())
}

func TestMacroMatchCapture(t *testing.T) {
	m := newMacroMatch("m:10px", "", []string{"10px"}, nil)

	got, err := m.Capture(0)
	require.NoError(t, err)
	require.Equal(t, "10px", got)

	_, err = m.Capture(1)
	require.ErrorIs(t, err, ErrCaptureNotFound)

	_, err = m.Capture(-1)
	require.ErrorIs(t, err, ErrCaptureNotFound)
}
