package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opmodel/expressgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) EXPRESSGEN_CONFIG env, (3) ~/.expressgen/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveBaseDirOptions contains the inputs for base directory resolution.
type ResolveBaseDirOptions struct {
	// FlagValue is the --dir flag value (empty if not set).
	FlagValue string

	// ConfigValue is the baseDir value from the config file.
	ConfigValue string

	// WorkingDir is the absolute directory relative paths are resolved against
	// and the default when nothing else is set.
	WorkingDir string
}

// ResolveBaseDir resolves the directory projects are created in using precedence:
// (1) --dir flag, (2) EXPRESSGEN_BASE_DIR env, (3) config baseDir, (4) working directory.
// The result is always absolute.
func ResolveBaseDir(opts ResolveBaseDirOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "baseDir",
		Shadowed: make(map[ConfigSource]string),
	}

	if !filepath.IsAbs(opts.WorkingDir) {
		return result, fmt.Errorf("working directory %q is not absolute", opts.WorkingDir)
	}

	envValue := os.Getenv(EnvBaseDir)
	configValue := opts.ConfigValue

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = opts.WorkingDir
		result.Source = SourceDefault
		return result, nil
	}

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return result, fmt.Errorf("expanding base directory: %w", err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(opts.WorkingDir, expanded)
	}
	result.Value = filepath.Clean(expanded)

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
