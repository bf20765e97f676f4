package macrocss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeSelector(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     string
	}{
		{
			name:     "plain identifier untouched",
			selector: "btn-primary_2",
			want:     "btn-primary_2",
		},
		{
			name:     "colons escaped",
			selector: "m:10px",
			want:     `m\:10px`,
		},
		{
			name:     "chained prefixes",
			selector: "md:hover:m:10px",
			want:     `md\:hover\:m\:10px`,
		},
		{
			name:     "leading digit hex escaped",
			selector: "10px",
			want:     `\31 0px`,
		},
		{
			name:     "percent and dot escaped",
			selector: "w:33.3%",
			want:     `w\:33\.3\%`,
		},
		{
			name:     "empty",
			selector: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EscapeSelector(tt.selector))
		})
	}
}
