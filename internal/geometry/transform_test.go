package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStackingConfig() StackingConfig {
	return StackingConfig{
		ScaleStep:       0.04,
		OffsetStep:      16,
		OpacityStep:     0.15,
		Radius:          12,
		RenderThreshold: 3,
	}
}

func TestTransform_ForegroundIsIdentity(t *testing.T) {
	for _, depth := range []int{0, -1, -5} {
		tr := Transform(depth, testStackingConfig())
		assert.Equal(t, StackTransform{Scale: 1, Offset: 0, Opacity: 1, BorderRadius: 0}, tr, "depth %d", depth)
	}

	// Identity holds regardless of configuration.
	tr := Transform(0, StackingConfig{ScaleStep: 0.5, OffsetStep: 100, OpacityStep: 1, Radius: 99, RenderThreshold: 1})
	assert.Equal(t, StackTransform{Scale: 1, Offset: 0, Opacity: 1, BorderRadius: 0}, tr)
}

func TestTransform_DepthSteps(t *testing.T) {
	cfg := testStackingConfig()

	tr := Transform(1, cfg)
	assert.InDelta(t, 0.96, tr.Scale, 1e-9)
	assert.InDelta(t, 16, tr.Offset, 1e-9)
	assert.InDelta(t, 0.85, tr.Opacity, 1e-9)
	assert.InDelta(t, 12, tr.BorderRadius, 1e-9)

	tr = Transform(2, cfg)
	assert.InDelta(t, 0.92, tr.Scale, 1e-9)
	assert.InDelta(t, 32, tr.Offset, 1e-9)
	assert.InDelta(t, 0.70, tr.Opacity, 1e-9)
}

func TestTransform_RenderThresholdClamp(t *testing.T) {
	cfg := testStackingConfig()

	// At the threshold the sheet freezes at the previous depth's position
	// but becomes invisible.
	tr := Transform(3, cfg)
	assert.InDelta(t, 0.92, tr.Scale, 1e-9)
	assert.InDelta(t, 32, tr.Offset, 1e-9)
	assert.Zero(t, tr.Opacity)
	assert.InDelta(t, 12, tr.BorderRadius, 1e-9)

	// Deeper sheets stay frozen at the same spot.
	assert.Equal(t, tr, Transform(7, cfg))
}

func TestTransform_ScaleFloor(t *testing.T) {
	cfg := StackingConfig{ScaleStep: 0.2, OffsetStep: 8, OpacityStep: 0.05}
	for depth := 0; depth < 20; depth++ {
		tr := Transform(depth, cfg)
		assert.GreaterOrEqual(t, tr.Scale, 0.5, "depth %d", depth)
	}
}

func TestTransform_OpacityNeverNegative(t *testing.T) {
	cfg := StackingConfig{OpacityStep: 0.4}
	for depth := 0; depth < 10; depth++ {
		tr := Transform(depth, cfg)
		assert.GreaterOrEqual(t, tr.Opacity, 0.0, "depth %d", depth)
	}
}

func TestTransform_ZeroThresholdNeverClamps(t *testing.T) {
	cfg := StackingConfig{ScaleStep: 0.04, OffsetStep: 16, OpacityStep: 0.1}
	tr := Transform(5, cfg)
	assert.InDelta(t, 0.8, tr.Scale, 1e-9)
	assert.InDelta(t, 80, tr.Offset, 1e-9)
	assert.InDelta(t, 0.5, tr.Opacity, 1e-9)
}
