package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values. The sheet
// core itself is total; validation exists so a mistyped config file fails
// loudly at load time instead of producing quietly-odd behavior.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSheet(config)...)
	validationErrors = append(validationErrors, validateStacking(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "", "json", "console":
	default:
		validationErrors = append(validationErrors, "logging.format must be json or console")
	}
	return validationErrors
}

func validateSheet(config *Config) []string {
	var validationErrors []string
	s := config.Sheet

	if s.MaxDepth < 0 {
		validationErrors = append(validationErrors, "sheet.max_depth must be non-negative (0 = unlimited)")
	}
	if s.Width < 0 {
		validationErrors = append(validationErrors, "sheet.width must be non-negative")
	}
	if s.MaxWidth < 0 {
		validationErrors = append(validationErrors, "sheet.max_width must be non-negative")
	}
	if s.Breakpoint < 0 {
		validationErrors = append(validationErrors, "sheet.breakpoint must be non-negative")
	}
	if s.CloseThreshold < 0 || s.CloseThreshold > 1 {
		validationErrors = append(validationErrors, "sheet.close_threshold must be between 0 and 1")
	}
	if s.VelocityThreshold < 0 {
		validationErrors = append(validationErrors, "sheet.velocity_threshold must be non-negative")
	}
	if s.SnapPointIndex < 0 {
		validationErrors = append(validationErrors, "sheet.snap_point_index must be non-negative")
	}
	if s.ScaleBackgroundAmount < 0 || s.ScaleBackgroundAmount >= 1 {
		validationErrors = append(validationErrors, "sheet.scale_background_amount must be in [0, 1)")
	}
	return validationErrors
}

func validateStacking(config *Config) []string {
	var validationErrors []string
	st := config.Sheet.Stacking

	if st.ScaleStep < 0 {
		validationErrors = append(validationErrors, "sheet.stacking.scale_step must be non-negative")
	}
	if st.OffsetStep < 0 {
		validationErrors = append(validationErrors, "sheet.stacking.offset_step must be non-negative")
	}
	if st.OpacityStep < 0 {
		validationErrors = append(validationErrors, "sheet.stacking.opacity_step must be non-negative")
	}
	if st.Radius < 0 {
		validationErrors = append(validationErrors, "sheet.stacking.radius must be non-negative")
	}
	if st.RenderThreshold < 0 {
		validationErrors = append(validationErrors, "sheet.stacking.render_threshold must be non-negative")
	}
	return validationErrors
}
