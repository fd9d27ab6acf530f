package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	normalizeConfig(cfg)
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "shout"
	cfg.Sheet.MaxDepth = -1
	cfg.Sheet.CloseThreshold = 1.5
	cfg.Sheet.Stacking.ScaleStep = -0.1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "sheet.max_depth")
	assert.Contains(t, err.Error(), "sheet.close_threshold")
	assert.Contains(t, err.Error(), "sheet.stacking.scale_step")
}

func TestValidateConfig_ThresholdBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sheet.VelocityThreshold = -0.1
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Sheet.CloseThreshold = 1.0
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_ScaleBackgroundAmount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sheet.ScaleBackgroundAmount = 1.0
	assert.Error(t, validateConfig(cfg))

	cfg.Sheet.ScaleBackgroundAmount = 0
	assert.NoError(t, validateConfig(cfg))
}
