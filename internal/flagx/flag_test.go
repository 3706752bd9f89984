package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "127.0.0.1:9000", "-x", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "127.0.0.1:9000"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=launcher.json", "-a=addr"},
			allowed: []string{"--config"},
			want:    []string{"--config=launcher.json"},
		},
		{
			name:    "flag followed by another flag keeps only the flag",
			args:    []string{"-login", "-a", "addr"},
			allowed: []string{"-login"},
			want:    []string{"-login"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "addr"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
