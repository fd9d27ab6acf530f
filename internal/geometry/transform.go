// Package geometry contains the pure math behind sheet stacking visuals:
// per-depth transforms, snap point resolution, snap target selection, and
// spring motion. Nothing in this package has side effects; the presentation
// layer feeds values in and renders whatever comes out.
package geometry

// StackingConfig governs how sheets deeper in the stack are scaled, offset,
// and faded behind the foreground sheet. All fields are non-negative.
type StackingConfig struct {
	ScaleStep       float64 `mapstructure:"scale_step" yaml:"scale_step" toml:"scale_step"`
	OffsetStep      float64 `mapstructure:"offset_step" yaml:"offset_step" toml:"offset_step"`
	OpacityStep     float64 `mapstructure:"opacity_step" yaml:"opacity_step" toml:"opacity_step"`
	Radius          float64 `mapstructure:"radius" yaml:"radius" toml:"radius"`
	RenderThreshold int     `mapstructure:"render_threshold" yaml:"render_threshold" toml:"render_threshold"`
}

// StackTransform is the visual transform for one sheet at a given depth.
type StackTransform struct {
	Scale        float64
	Offset       float64
	Opacity      float64
	BorderRadius float64
}

// Sheets never shrink below half size no matter how deep the stack grows.
const minScale = 0.5

// Transform maps a sheet's depth to its visual transform. Depth 0 is the
// foreground sheet and renders untransformed; deeper sheets shrink, shift,
// and fade according to cfg.
//
// Depths at or beyond RenderThreshold keep the scale and offset of the last
// rendered depth but are fully transparent. Freezing the position there
// avoids a visible jump when a sheet re-enters view after a pop.
func Transform(depth int, cfg StackingConfig) StackTransform {
	if depth <= 0 {
		return StackTransform{Scale: 1, Offset: 0, Opacity: 1, BorderRadius: 0}
	}

	visualDepth := depth
	clamped := false
	if cfg.RenderThreshold > 0 && depth >= cfg.RenderThreshold {
		visualDepth = cfg.RenderThreshold - 1
		clamped = true
	}

	d := float64(visualDepth)
	scale := 1 - d*cfg.ScaleStep
	if scale < minScale {
		scale = minScale
	}
	opacity := 1 - d*cfg.OpacityStep
	if opacity < 0 || clamped {
		opacity = 0
	}

	return StackTransform{
		Scale:        scale,
		Offset:       d * cfg.OffsetStep,
		Opacity:      opacity,
		BorderRadius: cfg.Radius,
	}
}
