package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Bench   BenchConfig   `json:"bench"`
	Logging LoggingConfig `json:"logging"`
}

// BenchConfig drives the sampling benchmark.
type BenchConfig struct {
	// Instances lists instance files; relative paths resolve against BaseDir.
	Instances []string `json:"instances"`
	// BaseDir resolves relative instance paths; "." when empty.
	BaseDir string `json:"base_dir"`
	// Samples is the number of random schedules evaluated per instance.
	Samples int `json:"samples"`
	// BaseSeed seeds the per-instance random generators.
	BaseSeed int64 `json:"base_seed"`
	// Out is the CSV report path.
	Out string `json:"out"`
}

// SetDefaults applies sane defaults.
func (c *BenchConfig) SetDefaults() {
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	if c.Samples == 0 {
		c.Samples = 1000
	}
	if c.BaseSeed == 0 {
		c.BaseSeed = 1000
	}
	if c.Out == "" {
		c.Out = "artifacts/results.csv"
	}
}

// Validate checks mandatory fields.
func (c BenchConfig) Validate() error {
	if len(c.Instances) == 0 {
		return fmt.Errorf("at least one instance file is required")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	return nil
}

// LoggingConfig selects log verbosity and format.
type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn or error.
	Level string `json:"level"`
	// Console switches to human-readable log output instead of JSON.
	Console bool `json:"console"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("RCPSP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "rcpsp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Bench.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Bench.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
