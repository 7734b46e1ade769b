package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stargate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, NewValidator().Validate(cfg))
	assert.Equal(t, "static", cfg.Research.Provider)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  research_timeout: 60s
research:
  provider: live
  model: gpt-4o-mini
  timeout: 20s
logging:
  level: debug
  format: json
`)

	cfg, err := NewLoader(NewValidator()).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Pipeline.ResearchTimeout)
	assert.Equal(t, "live", cfg.Research.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Research.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Unset fields keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Pipeline.PlannerTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(NewValidator()).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.CONFIG_LOAD_FAILED))
}

func TestLoadWithDefaults_MissingFileFallsBack(t *testing.T) {
	cfg, err := NewLoader(NewValidator()).LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_InvalidProvider(t *testing.T) {
	path := writeConfig(t, `
research:
  provider: psychic
logging:
  level: info
  format: text
`)
	_, err := NewLoader(NewValidator()).Load(path)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.CONFIG_VALIDATION_FAILED))
	assert.Contains(t, err.Error(), "research.provider")
}

func TestLoad_LiveProviderRequiresModel(t *testing.T) {
	path := writeConfig(t, `
research:
  provider: live
logging:
  level: info
  format: text
`)
	_, err := NewLoader(NewValidator()).Load(path)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.CONFIG_VALIDATION_FAILED))
}

func TestValidate_RubricWeights(t *testing.T) {
	base := func() *Config { return DefaultConfig() }

	t.Run("valid_override", func(t *testing.T) {
		cfg := base()
		cfg.Judge.RubricWeights = map[string]float64{
			"Market Viability":      0.5,
			"Technical Feasibility": 0.5,
		}
		assert.NoError(t, NewValidator().Validate(cfg))
	})

	t.Run("sum_not_one", func(t *testing.T) {
		cfg := base()
		cfg.Judge.RubricWeights = map[string]float64{
			"Market Viability":      0.5,
			"Technical Feasibility": 0.4,
		}
		err := NewValidator().Validate(cfg)
		require.Error(t, err)
		assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
	})

	t.Run("negative_weight", func(t *testing.T) {
		cfg := base()
		cfg.Judge.RubricWeights = map[string]float64{
			"Market Viability":      1.2,
			"Technical Feasibility": -0.2,
		}
		err := NewValidator().Validate(cfg)
		require.Error(t, err)
		assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
	})

	t.Run("empty_means_builtin", func(t *testing.T) {
		assert.NoError(t, NewValidator().Validate(base()))
	})
}
