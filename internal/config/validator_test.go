package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "absolute base dir", cfg: Config{BaseDir: "/srv/projects"}},
		{name: "home-relative base dir", cfg: Config{BaseDir: "~/projects"}},
		{name: "whitespace base dir", cfg: Config{BaseDir: "   "}, wantErr: "whitespace"},
		{name: "tilde user", cfg: Config{BaseDir: "~bob/projects"}, wantErr: "~username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseDir: \"  \"\n"), 0o644))

	err := ValidateFile(path)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "baseDir", verrs[0].Field)
}
