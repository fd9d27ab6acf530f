// Package config provides configuration management for stacksheet with
// Viper integration. The file-level Config is fully defaulted through Viper;
// the programmatic Options type carries partial overrides that Resolve merges
// into one concrete Resolved struct consumed by every downstream component.
package config

import (
	"github.com/howells/stacksheet/internal/geometry"
)

// Side identifies which edge of the viewport a sheet is anchored to. The
// side determines the dismiss axis: left/right sheets dismiss horizontally,
// top/bottom sheets vertically.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Valid reports whether s is one of the four recognized sides.
func (s Side) Valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight:
		return true
	}
	return false
}

// Horizontal reports whether the dismiss axis for this side is horizontal.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Dismissward returns the sign of movement toward dismissal along the
// dismiss axis, in screen coordinates (x grows right, y grows down).
func (s Side) Dismissward() float64 {
	if s == SideTop || s == SideLeft {
		return -1
	}
	return 1
}

// Config is the root of the stacksheet configuration file.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Sheet   SheetConfig   `mapstructure:"sheet" yaml:"sheet" toml:"sheet"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// SheetConfig holds sheet behavior configuration as read from the config
// file. Viper defaults keep every field populated, so the struct is concrete
// rather than pointer-typed.
type SheetConfig struct {
	MaxDepth        int     `mapstructure:"max_depth" yaml:"max_depth" toml:"max_depth"`
	CloseOnEscape   bool    `mapstructure:"close_on_escape" yaml:"close_on_escape" toml:"close_on_escape"`
	CloseOnBackdrop bool    `mapstructure:"close_on_backdrop" yaml:"close_on_backdrop" toml:"close_on_backdrop"`
	ShowOverlay     bool    `mapstructure:"show_overlay" yaml:"show_overlay" toml:"show_overlay"`
	LockScroll      bool    `mapstructure:"lock_scroll" yaml:"lock_scroll" toml:"lock_scroll"`
	Width           float64 `mapstructure:"width" yaml:"width" toml:"width"`
	MaxWidth        float64 `mapstructure:"max_width" yaml:"max_width" toml:"max_width"`
	Breakpoint      float64 `mapstructure:"breakpoint" yaml:"breakpoint" toml:"breakpoint"`

	// Side is either a single side string ("bottom") or a table with
	// desktop/mobile keys. normalizeConfig resolves it into SideDesktop
	// and SideMobile.
	Side        any  `mapstructure:"side" yaml:"side" toml:"side" jsonschema:"oneof_type=string;object"`
	SideDesktop Side `mapstructure:"-" yaml:"-" toml:"-" json:"-"`
	SideMobile  Side `mapstructure:"-" yaml:"-" toml:"-" json:"-"`

	Stacking geometry.StackingConfig `mapstructure:"stacking" yaml:"stacking" toml:"stacking"`

	// Spring is either a preset name ("default", "gentle", "wobbly",
	// "stiff") or a table with stiffness/damping/mass. normalizeConfig
	// resolves it into SpringParams.
	Spring       any             `mapstructure:"spring" yaml:"spring" toml:"spring" jsonschema:"oneof_type=string;object"`
	SpringParams geometry.Spring `mapstructure:"-" yaml:"-" toml:"-" json:"-"`

	ZIndex    int    `mapstructure:"z_index" yaml:"z_index" toml:"z_index"`
	AriaLabel string `mapstructure:"aria_label" yaml:"aria_label" toml:"aria_label"`

	// SnapPoints entries are fractions (<= 1), absolute pixels, or unit
	// strings such as "320px" or "50vh".
	SnapPoints             []any `mapstructure:"snap_points" yaml:"snap_points" toml:"snap_points"`
	SnapPointIndex         int   `mapstructure:"snap_point_index" yaml:"snap_point_index" toml:"snap_point_index"`
	SnapToSequentialPoints bool  `mapstructure:"snap_to_sequential_points" yaml:"snap_to_sequential_points" toml:"snap_to_sequential_points"`

	Drag              bool    `mapstructure:"drag" yaml:"drag" toml:"drag"`
	CloseThreshold    float64 `mapstructure:"close_threshold" yaml:"close_threshold" toml:"close_threshold"`
	VelocityThreshold float64 `mapstructure:"velocity_threshold" yaml:"velocity_threshold" toml:"velocity_threshold"`

	Dismissible bool `mapstructure:"dismissible" yaml:"dismissible" toml:"dismissible"`
	Modal       bool `mapstructure:"modal" yaml:"modal" toml:"modal"`

	ShouldScaleBackground bool    `mapstructure:"should_scale_background" yaml:"should_scale_background" toml:"should_scale_background"`
	ScaleBackgroundAmount float64 `mapstructure:"scale_background_amount" yaml:"scale_background_amount" toml:"scale_background_amount"`
}

// SheetOptions converts the file-level sheet configuration into the partial
// Options form so file and programmatic configuration share one Resolve path.
func (c *Config) SheetOptions() Options {
	s := c.Sheet
	return Options{
		MaxDepth:        &s.MaxDepth,
		CloseOnEscape:   &s.CloseOnEscape,
		CloseOnBackdrop: &s.CloseOnBackdrop,
		ShowOverlay:     &s.ShowOverlay,
		LockScroll:      &s.LockScroll,
		Width:           &s.Width,
		MaxWidth:        &s.MaxWidth,
		Breakpoint:      &s.Breakpoint,
		Side: &SideSpec{
			Desktop: s.SideDesktop,
			Mobile:  s.SideMobile,
		},
		Stacking: &StackingOptions{
			ScaleStep:       &s.Stacking.ScaleStep,
			OffsetStep:      &s.Stacking.OffsetStep,
			OpacityStep:     &s.Stacking.OpacityStep,
			Radius:          &s.Stacking.Radius,
			RenderThreshold: &s.Stacking.RenderThreshold,
		},
		Spring:                 &SpringSpec{Params: &s.SpringParams},
		ZIndex:                 &s.ZIndex,
		AriaLabel:              &s.AriaLabel,
		SnapPoints:             s.SnapPoints,
		SnapPointIndex:         &s.SnapPointIndex,
		SnapToSequentialPoints: &s.SnapToSequentialPoints,
		Drag:                   &s.Drag,
		CloseThreshold:         &s.CloseThreshold,
		VelocityThreshold:      &s.VelocityThreshold,
		Dismissible:            &s.Dismissible,
		Modal:                  &s.Modal,
		ShouldScaleBackground:  &s.ShouldScaleBackground,
		ScaleBackgroundAmount:  &s.ScaleBackgroundAmount,
	}
}
