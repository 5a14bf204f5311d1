package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultPath := filepath.Join(home, ".expressgen", "config.yaml")

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")

		result, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.Equal(t, defaultPath, result.Shadowed[SourceDefault])
	})

	t.Run("env over default", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, defaultPath, result.Value)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Empty(t, result.Shadowed)
	})
}

func TestResolveBaseDir(t *testing.T) {
	work := t.TempDir()

	tests := []struct {
		name       string
		flag       string
		env        string
		config     string
		wantValue  string
		wantSource ConfigSource
		wantShadow map[ConfigSource]string
	}{
		{
			name:       "defaults to working directory",
			wantValue:  work,
			wantSource: SourceDefault,
			wantShadow: map[ConfigSource]string{},
		},
		{
			name:       "config file value",
			config:     "/srv/config",
			wantValue:  "/srv/config",
			wantSource: SourceConfig,
			wantShadow: map[ConfigSource]string{},
		},
		{
			name:       "env shadows config",
			env:        "/srv/env",
			config:     "/srv/config",
			wantValue:  "/srv/env",
			wantSource: SourceEnv,
			wantShadow: map[ConfigSource]string{SourceConfig: "/srv/config"},
		},
		{
			name:       "flag shadows env and config",
			flag:       "/srv/flag",
			env:        "/srv/env",
			config:     "/srv/config",
			wantValue:  "/srv/flag",
			wantSource: SourceFlag,
			wantShadow: map[ConfigSource]string{SourceEnv: "/srv/env", SourceConfig: "/srv/config"},
		},
		{
			name:       "relative flag is joined to working directory",
			flag:       "apps",
			wantValue:  filepath.Join(work, "apps"),
			wantSource: SourceFlag,
			wantShadow: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvBaseDir, tt.env)

			result, err := ResolveBaseDir(ResolveBaseDirOptions{
				FlagValue:   tt.flag,
				ConfigValue: tt.config,
				WorkingDir:  work,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantSource, result.Source)
			assert.Equal(t, tt.wantShadow, result.Shadowed)
		})
	}
}

func TestResolveBaseDir_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseDir, "")

	result, err := ResolveBaseDir(ResolveBaseDirOptions{
		ConfigValue: "~/projects",
		WorkingDir:  t.TempDir(),
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), result.Value)
}

func TestResolveBaseDir_RequiresAbsoluteWorkingDir(t *testing.T) {
	_, err := ResolveBaseDir(ResolveBaseDirOptions{WorkingDir: "relative"})
	assert.Error(t, err)
}
