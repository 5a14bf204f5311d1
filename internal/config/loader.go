package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for expressgen configuration.
const envPrefix = "EXPRESSGEN"

// Environment variables read by expressgen.
const (
	EnvConfig        = "EXPRESSGEN_CONFIG"
	EnvBaseDir       = "EXPRESSGEN_BASE_DIR"
	EnvLogTimestamps = "EXPRESSGEN_LOG_TIMESTAMPS"
)

// Loader handles loading and merging configuration from a file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("log.timestamps", EnvLogTimestamps)

	return &Loader{v: v}
}

// Load loads configuration from configFile. A missing file is not an error.
// Environment variables take precedence over file values, except
// EXPRESSGEN_BASE_DIR which ResolveBaseDir applies so its source is reported.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
