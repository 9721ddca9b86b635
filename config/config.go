// Package config loads sink configuration for xlogs from defaults, YAML and
// the environment, and wires the selected backend to a stream.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/trickstertwo/xlogs"
)

// Backend names accepted in Config.Backend.
const (
	BackendZerolog = "zerolog"
	BackendZap     = "zap"
	BackendSlog    = "slog"
	BackendLogrus  = "logrus"
	BackendWriter  = "writer"
)

// Output targets accepted in Config.Output.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// DefaultEnvPrefix is stripped from environment keys: XLOGS_MIN_LEVEL sets
// min_level.
const DefaultEnvPrefix = "XLOGS_"

// Config selects a sink backend and the filters placed in front of it.
type Config struct {
	Backend  string `koanf:"backend" validate:"required,oneof=zerolog zap slog logrus writer"`
	MinLevel string `koanf:"min_level" validate:"required,xlogs_level"`

	// Levels restricts delivery to a level set. Unknown entries are ignored.
	Levels []string `koanf:"levels"`

	// Name is a regular expression matched against logger names.
	Name string `koanf:"name" validate:"omitempty,xlogs_pattern"`

	Layout       string  `koanf:"layout"`
	Console      bool    `koanf:"console"`
	Output       string  `koanf:"output" validate:"required,oneof=stdout stderr"`
	MaxPerSecond float64 `koanf:"max_per_second" validate:"gte=0"`
}

type loadOptions struct {
	files     []string
	raw       [][]byte
	envPrefix string
	env       bool
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

// WithFile layers a YAML file over the defaults. The file must exist.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) { o.files = append(o.files, path) }
}

// WithYAML layers raw YAML bytes over defaults and files.
func WithYAML(b []byte) LoadOption {
	return func(o *loadOptions) { o.raw = append(o.raw, b) }
}

// WithEnvPrefix changes the environment prefix (default XLOGS_).
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) { o.envPrefix = prefix }
}

// WithoutEnv skips the environment layer.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) { o.env = false }
}

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Raw YAML passed with WithYAML
// 3. YAML files passed with WithFile
// 4. Default values (lowest priority)
func Load(opts ...LoadOption) (*Config, error) {
	o := loadOptions{envPrefix: DefaultEnvPrefix, env: true}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	for _, path := range o.files {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	for _, b := range o.raw {
		if err := k.Load(rawbytes.Provider(b), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}
	if o.env {
		if err := k.Load(envProvider(o.envPrefix), nil); err != nil {
			return nil, fmt.Errorf("failed to load environment variables: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"backend":        BackendWriter,
		"min_level":      string(xlogs.LevelAll),
		"layout":         xlogs.DefaultLayout,
		"console":        false,
		"output":         OutputStdout,
		"max_per_second": 0,
	}
	return k.Load(confmap.Provider(defaults, "."), nil)
}

// envProvider maps PREFIX_MIN_LEVEL to min_level. XLOGS_LEVELS is split on
// commas.
func envProvider(prefix string) *env.Env {
	return env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(k, v string) (string, any) {
			key := strings.ToLower(strings.TrimPrefix(k, prefix))
			if key == "levels" {
				parts := strings.Split(v, ",")
				for i := range parts {
					parts[i] = strings.TrimSpace(parts[i])
				}
				return key, parts
			}
			return key, v
		},
	})
}
