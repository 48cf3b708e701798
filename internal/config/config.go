package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"match-engine-go/internal/constants"
	"match-engine-go/internal/logger"
	"match-engine-go/internal/matcher"
)

// Config is the application configuration. Weights and synonyms are read
// once at startup and handed to the orchestrator as immutable values; there
// is no process-wide mutable scoring state.
type Config struct {
	Engine EngineConfig  `yaml:"engine"`
	Logger logger.Config `yaml:"logger"`
}

// EngineConfig configures the matching engine itself.
type EngineConfig struct {
	// Dimensions is the embedding vector length of the deployment.
	Dimensions int `yaml:"dimensions"`

	// Concurrency bounds batch fan-out.
	Concurrency int `yaml:"concurrency"`

	// Weights maps category name to its weight. Must be non-negative and
	// sum to 1.0; validated at load time.
	Weights map[string]float64 `yaml:"weights"`

	// Synonyms extends the built-in skill synonym table.
	Synonyms map[string]string `yaml:"synonyms"`
}

// LoadConfig loads configuration from the given path. An empty path searches
// the usual locations and falls back to the built-in defaults when nothing
// is found, so the engine works out of the box. Validation runs before the
// config is returned: a bad weights table fails here, not mid-batch.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv("MATCH_ENGINE_CONFIG")
	}
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			filepath.Join(os.Getenv("HOME"), ".match-engine", "config.yaml"),
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			cfg := createDefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks everything that must hold before a single match runs.
func (c *Config) Validate() error {
	if err := matcher.ValidateWeights(c.Engine.Weights); err != nil {
		return err
	}
	if c.Engine.Dimensions <= 0 {
		return fmt.Errorf("engine.dimensions must be positive, got %d", c.Engine.Dimensions)
	}
	if c.Engine.Concurrency <= 0 {
		return fmt.Errorf("engine.concurrency must be positive, got %d", c.Engine.Concurrency)
	}
	return nil
}

// createDefaultConfig returns the full default configuration. Tests run on
// it directly.
func createDefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Dimensions:  constants.DefaultEmbeddingDimensions,
			Concurrency: constants.DefaultBatchConcurrency,
			Weights:     matcher.DefaultWeights(),
			Synonyms:    map[string]string{},
		},
		Logger: logger.Config{
			Level:        "info",
			Format:       "pretty",
			TimeFormat:   "2006-01-02 15:04:05",
			ReportCaller: false,
		},
	}
}

// applyDefaults fills the holes a partial YAML file leaves behind.
func applyDefaults(cfg *Config) {
	if cfg.Engine.Dimensions == 0 {
		cfg.Engine.Dimensions = constants.DefaultEmbeddingDimensions
	}
	if cfg.Engine.Concurrency == 0 {
		cfg.Engine.Concurrency = constants.DefaultBatchConcurrency
	}
	if cfg.Engine.Weights == nil {
		cfg.Engine.Weights = matcher.DefaultWeights()
	}
	if cfg.Engine.Synonyms == nil {
		cfg.Engine.Synonyms = map[string]string{}
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = "pretty"
	}
}

// applyEnvOverrides lets the environment override selected fields.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("MATCH_ENGINE_LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if format := os.Getenv("MATCH_ENGINE_LOG_FORMAT"); format != "" {
		cfg.Logger.Format = format
	}
}

// CreateSampleConfig writes a commented starting-point config file. Existing
// files are never overwritten.
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("file %s already exists, refusing to overwrite", filePath)
	}
	data, err := yaml.Marshal(createDefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal sample config: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("write sample config %s: %w", filePath, err)
	}
	return nil
}
