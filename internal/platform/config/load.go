package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "OKTAORGINFO_"
	appDirName     = "oktaorginfo"
	configFileName = "config.yaml"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	path      string
	explicit  bool
	overrides map[string]any
}

// WithFile sets the YAML config file to load. Unlike the default location, an
// explicitly named file must exist.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		if path == "" {
			return
		}
		o.path = path
		o.explicit = true
	}
}

// WithOverrides applies dotted-key values on top of every other layer.
// Command-line flags use this.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/oktaorginfo/config.yaml (or the
// platform equivalent). Returns "" when no user config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, configFileName)
}

// Load reads configuration using a 4-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. YAML file (WithFile, or DefaultPath when it exists)
//  3. Environment variables (OKTAORGINFO_ prefix)
//  4. Overrides (WithOverrides)
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	OKTAORGINFO_LOG_LEVEL             -> log.level
//	OKTAORGINFO_CLIENT_USER_AGENT     -> client.user_agent
//	OKTAORGINFO_TELEMETRY_SERVICE_NAME -> telemetry.service_name
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{path: DefaultPath(), overrides: map[string]any{}}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: Config file.
	if err := loadFile(k, o); err != nil {
		return nil, err
	}

	// Layer 3: Environment variables with OKTAORGINFO_ prefix.
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Layer 4: Flag overrides.
	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadFile loads the YAML layer. A missing default file is skipped; a missing
// explicit file is an error.
func loadFile(k *koanf.Koanf, o *loadOptions) error {
	if o.path == "" {
		return nil
	}

	if _, err := os.Stat(o.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !o.explicit {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", o.path, err)
	}

	if err := k.Load(file.Provider(o.path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", o.path, err)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "client.user_agent", the env form "client_user_agent"
// is computed by replacing dots with underscores.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
