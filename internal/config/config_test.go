package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine-go/internal/constants"
	"match-engine-go/internal/matcher"
	"match-engine-go/internal/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MATCH_ENGINE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig("")
	require.Error(t, err, "explicit env path that does not exist must fail")

	cfg := createDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, constants.DefaultEmbeddingDimensions, cfg.Engine.Dimensions)
	assert.Equal(t, constants.DefaultBatchConcurrency, cfg.Engine.Concurrency)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.InDelta(t, 0.40, cfg.Engine.Weights[types.CategoryTechnicalSkills], 1e-9)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  dimensions: 384
  concurrency: 8
logger:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 384, cfg.Engine.Dimensions)
	assert.Equal(t, 8, cfg.Engine.Concurrency)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// Omitted weights fall back to the defaults.
	require.NoError(t, matcher.ValidateWeights(cfg.Engine.Weights))
}

func TestLoadConfigCustomWeights(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  weights:
    technical_skills: 0.35
    experience: 0.25
    education: 0.10
    soft_skills: 0.10
    semantic_similarity: 0.20
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.20, cfg.Engine.Weights[types.CategorySemantic], 1e-9)
}

func TestLoadConfigRejectsInvalidWeights(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  weights:
    technical_skills: 0.5
    experience: 0.3
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrInvalidWeights)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "engine: [not a mapping")

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MATCH_ENGINE_LOG_LEVEL", "warn")
	t.Setenv("MATCH_ENGINE_LOG_FORMAT", "json")

	path := writeConfigFile(t, `
logger:
  level: info
  format: pretty
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestValidateRejectsBadEngineValues(t *testing.T) {
	cfg := createDefaultConfig()
	cfg.Engine.Dimensions = 0
	assert.Error(t, cfg.Validate())

	cfg = createDefaultConfig()
	cfg.Engine.Concurrency = -1
	assert.Error(t, cfg.Validate())
}

func TestCreateSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, CreateSampleConfig(path))

	// The sample must load back cleanly.
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	// A second write refuses to clobber the file.
	assert.Error(t, CreateSampleConfig(path))
}
