// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the expressgen configuration.
// Loaded from ~/.expressgen/config.yaml.
type Config struct {
	// BaseDir is the directory new projects are created in.
	// Env: EXPRESSGEN_BASE_DIR, Default: the working directory.
	BaseDir string `mapstructure:"baseDir" yaml:"baseDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `expressgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log: LogConfig{Timestamps: &timestamps},
	}
}

// configHeader is written above the YAML body by Marshal.
const configHeader = `# expressgen configuration
# baseDir: directory new projects are created in (defaults to the working directory)
`

// Marshal renders the config as commented YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return buf.Bytes(), nil
}
