package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-d", "saves", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "saves"},
		},
		{
			name:    "equals form",
			args:    []string{"--dir=saves", "-l=debug", "-other=1"},
			allowed: []string{"--dir", "-l"},
			want:    []string{"--dir=saves", "-l=debug"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-d"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "positional args dropped",
			args:    []string{"list", "-d", "saves", "verify"},
			allowed: []string{"-d"},
			want:    []string{"-d", "saves"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"bin", "-config", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"bin", "-c", "short.json"}
	assert.Equal(t, "short.json", JsonConfigFlags())

	os.Args = []string{"bin", "list"}
	assert.Equal(t, "", JsonConfigFlags())
}
