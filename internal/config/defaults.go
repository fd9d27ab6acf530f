package config

// DefaultConfig returns the default configuration values for stacksheet.
func DefaultConfig() *Config {
	res := DefaultResolved()
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Sheet: SheetConfig{
			MaxDepth:               res.MaxDepth,
			CloseOnEscape:          res.CloseOnEscape,
			CloseOnBackdrop:        res.CloseOnBackdrop,
			ShowOverlay:            res.ShowOverlay,
			LockScroll:             res.LockScroll,
			Width:                  res.Width,
			MaxWidth:               res.MaxWidth,
			Breakpoint:             res.Breakpoint,
			Side:                   string(res.SideDesktop),
			SideDesktop:            res.SideDesktop,
			SideMobile:             res.SideMobile,
			Stacking:               res.Stacking,
			Spring:                 "default",
			SpringParams:           res.Spring,
			ZIndex:                 res.ZIndex,
			AriaLabel:              res.AriaLabel,
			SnapPoints:             nil,
			SnapPointIndex:         res.SnapPointIndex,
			SnapToSequentialPoints: res.SnapToSequentialPoints,
			Drag:                   res.Drag,
			CloseThreshold:         res.CloseThreshold,
			VelocityThreshold:      res.VelocityThreshold,
			Dismissible:            res.Dismissible,
			Modal:                  res.Modal,
			ShouldScaleBackground:  res.ShouldScaleBackground,
			ScaleBackgroundAmount:  res.ScaleBackgroundAmount,
		},
	}
}

// setDefaults registers every default with Viper so a sparse config file
// still unmarshals into a fully populated Config.
func (m *Manager) setDefaults() {
	def := DefaultConfig()

	m.viper.SetDefault("logging.level", def.Logging.Level)
	m.viper.SetDefault("logging.format", def.Logging.Format)

	s := def.Sheet
	m.viper.SetDefault("sheet.max_depth", s.MaxDepth)
	m.viper.SetDefault("sheet.close_on_escape", s.CloseOnEscape)
	m.viper.SetDefault("sheet.close_on_backdrop", s.CloseOnBackdrop)
	m.viper.SetDefault("sheet.show_overlay", s.ShowOverlay)
	m.viper.SetDefault("sheet.lock_scroll", s.LockScroll)
	m.viper.SetDefault("sheet.width", s.Width)
	m.viper.SetDefault("sheet.max_width", s.MaxWidth)
	m.viper.SetDefault("sheet.breakpoint", s.Breakpoint)
	m.viper.SetDefault("sheet.side", s.Side)
	m.viper.SetDefault("sheet.stacking.scale_step", s.Stacking.ScaleStep)
	m.viper.SetDefault("sheet.stacking.offset_step", s.Stacking.OffsetStep)
	m.viper.SetDefault("sheet.stacking.opacity_step", s.Stacking.OpacityStep)
	m.viper.SetDefault("sheet.stacking.radius", s.Stacking.Radius)
	m.viper.SetDefault("sheet.stacking.render_threshold", s.Stacking.RenderThreshold)
	m.viper.SetDefault("sheet.spring", s.Spring)
	m.viper.SetDefault("sheet.z_index", s.ZIndex)
	m.viper.SetDefault("sheet.aria_label", s.AriaLabel)
	m.viper.SetDefault("sheet.snap_points", s.SnapPoints)
	m.viper.SetDefault("sheet.snap_point_index", s.SnapPointIndex)
	m.viper.SetDefault("sheet.snap_to_sequential_points", s.SnapToSequentialPoints)
	m.viper.SetDefault("sheet.drag", s.Drag)
	m.viper.SetDefault("sheet.close_threshold", s.CloseThreshold)
	m.viper.SetDefault("sheet.velocity_threshold", s.VelocityThreshold)
	m.viper.SetDefault("sheet.dismissible", s.Dismissible)
	m.viper.SetDefault("sheet.modal", s.Modal)
	m.viper.SetDefault("sheet.should_scale_background", s.ShouldScaleBackground)
	m.viper.SetDefault("sheet.scale_background_amount", s.ScaleBackgroundAmount)
}
