package config

import (
	"github.com/howells/stacksheet/internal/geometry"
)

// SideSpec is the union form of the side option: a single value for all
// viewports, or distinct desktop/mobile sides.
type SideSpec struct {
	Value   Side // single side for every viewport; takes precedence when set
	Desktop Side
	Mobile  Side
}

// SpringSpec is the union form of the spring option: a preset name or
// explicit parameters. Params takes precedence when both are set.
type SpringSpec struct {
	Preset string
	Params *geometry.Spring
}

// StackingOptions carries partial stacking overrides.
type StackingOptions struct {
	ScaleStep       *float64
	OffsetStep      *float64
	OpacityStep     *float64
	Radius          *float64
	RenderThreshold *int
}

// Options is a partial sheet configuration. Nil fields fall back to
// defaults; see Resolve.
type Options struct {
	MaxDepth        *int
	CloseOnEscape   *bool
	CloseOnBackdrop *bool
	ShowOverlay     *bool
	LockScroll      *bool
	Width           *float64
	MaxWidth        *float64
	Breakpoint      *float64
	Side            *SideSpec
	Stacking        *StackingOptions
	Spring          *SpringSpec
	ZIndex          *int
	AriaLabel       *string

	OnOpenComplete  func()
	OnCloseComplete func()

	SnapPoints             []any
	SnapPointIndex         *int
	OnSnapPointChange      func(index int)
	SnapToSequentialPoints *bool

	Drag              *bool
	CloseThreshold    *float64
	VelocityThreshold *float64

	Dismissible *bool
	Modal       *bool

	ShouldScaleBackground *bool
	ScaleBackgroundAmount *float64
}

// Resolved is the fully-defaulted configuration every downstream component
// operates on. It is immutable for the lifetime of one store instance.
type Resolved struct {
	// MaxDepth caps the stack length; zero means unlimited.
	MaxDepth        int
	CloseOnEscape   bool
	CloseOnBackdrop bool
	ShowOverlay     bool
	LockScroll      bool
	Width           float64
	MaxWidth        float64
	Breakpoint      float64
	SideDesktop     Side
	SideMobile      Side
	Stacking        geometry.StackingConfig
	Spring          geometry.Spring
	ZIndex          int
	AriaLabel       string

	OnOpenComplete  func()
	OnCloseComplete func()

	SnapPoints             []any
	SnapPointIndex         int
	OnSnapPointChange      func(index int)
	SnapToSequentialPoints bool

	Drag              bool
	CloseThreshold    float64
	VelocityThreshold float64

	Dismissible bool
	Modal       bool

	ShouldScaleBackground bool
	ScaleBackgroundAmount float64
}

// SideFor returns the side used at the given viewport width.
func (r Resolved) SideFor(viewportWidth float64) Side {
	if viewportWidth > 0 && viewportWidth < r.Breakpoint {
		return r.SideMobile
	}
	return r.SideDesktop
}

// DefaultResolved returns the fully-defaulted configuration.
func DefaultResolved() Resolved {
	return Resolved{
		MaxDepth:        0,
		CloseOnEscape:   true,
		CloseOnBackdrop: true,
		ShowOverlay:     true,
		LockScroll:      true,
		Width:           0,
		MaxWidth:        640,
		Breakpoint:      768,
		SideDesktop:     SideBottom,
		SideMobile:      SideBottom,
		Stacking: geometry.StackingConfig{
			ScaleStep:       0.04,
			OffsetStep:      16,
			OpacityStep:     0.15,
			Radius:          12,
			RenderThreshold: 3,
		},
		Spring:                 geometry.DefaultSpring(),
		ZIndex:                 100,
		SnapPointIndex:         0,
		SnapToSequentialPoints: false,
		Drag:                   true,
		CloseThreshold:         0.25,
		VelocityThreshold:      0.4,
		Dismissible:            true,
		Modal:                  true,
		ShouldScaleBackground:  false,
		ScaleBackgroundAmount:  0.06,
	}
}

// Resolve merges partial options over the defaults and normalizes the
// union-typed fields into one concrete shape. Malformed values degrade to
// their defaults rather than fail.
func Resolve(opts Options) Resolved {
	r := DefaultResolved()

	r.MaxDepth = valueOr(opts.MaxDepth, r.MaxDepth)
	if r.MaxDepth < 0 {
		r.MaxDepth = 0
	}
	r.CloseOnEscape = valueOr(opts.CloseOnEscape, r.CloseOnEscape)
	r.CloseOnBackdrop = valueOr(opts.CloseOnBackdrop, r.CloseOnBackdrop)
	r.ShowOverlay = valueOr(opts.ShowOverlay, r.ShowOverlay)
	r.LockScroll = valueOr(opts.LockScroll, r.LockScroll)
	r.Width = valueOr(opts.Width, r.Width)
	r.MaxWidth = valueOr(opts.MaxWidth, r.MaxWidth)
	r.Breakpoint = valueOr(opts.Breakpoint, r.Breakpoint)
	r.ZIndex = valueOr(opts.ZIndex, r.ZIndex)
	r.AriaLabel = valueOr(opts.AriaLabel, r.AriaLabel)

	if opts.Side != nil {
		r.SideDesktop, r.SideMobile = resolveSide(*opts.Side, r.SideDesktop, r.SideMobile)
	}
	if opts.Stacking != nil {
		st := opts.Stacking
		r.Stacking.ScaleStep = valueOr(st.ScaleStep, r.Stacking.ScaleStep)
		r.Stacking.OffsetStep = valueOr(st.OffsetStep, r.Stacking.OffsetStep)
		r.Stacking.OpacityStep = valueOr(st.OpacityStep, r.Stacking.OpacityStep)
		r.Stacking.Radius = valueOr(st.Radius, r.Stacking.Radius)
		r.Stacking.RenderThreshold = valueOr(st.RenderThreshold, r.Stacking.RenderThreshold)
	}
	if opts.Spring != nil {
		r.Spring = resolveSpring(*opts.Spring, r.Spring)
	}

	r.OnOpenComplete = opts.OnOpenComplete
	r.OnCloseComplete = opts.OnCloseComplete
	r.OnSnapPointChange = opts.OnSnapPointChange

	if opts.SnapPoints != nil {
		r.SnapPoints = opts.SnapPoints
	}
	r.SnapPointIndex = valueOr(opts.SnapPointIndex, r.SnapPointIndex)
	r.SnapToSequentialPoints = valueOr(opts.SnapToSequentialPoints, r.SnapToSequentialPoints)

	r.Drag = valueOr(opts.Drag, r.Drag)
	r.CloseThreshold = valueOr(opts.CloseThreshold, r.CloseThreshold)
	r.VelocityThreshold = valueOr(opts.VelocityThreshold, r.VelocityThreshold)
	r.Dismissible = valueOr(opts.Dismissible, r.Dismissible)
	r.Modal = valueOr(opts.Modal, r.Modal)
	r.ShouldScaleBackground = valueOr(opts.ShouldScaleBackground, r.ShouldScaleBackground)
	r.ScaleBackgroundAmount = valueOr(opts.ScaleBackgroundAmount, r.ScaleBackgroundAmount)

	return r
}

func resolveSide(spec SideSpec, defDesktop, defMobile Side) (desktop, mobile Side) {
	desktop, mobile = defDesktop, defMobile
	if spec.Value.Valid() {
		return spec.Value, spec.Value
	}
	if spec.Desktop.Valid() {
		desktop = spec.Desktop
	}
	if spec.Mobile.Valid() {
		mobile = spec.Mobile
	}
	return desktop, mobile
}

func resolveSpring(spec SpringSpec, def geometry.Spring) geometry.Spring {
	if spec.Params != nil && spec.Params.Stiffness > 0 {
		s := *spec.Params
		if s.Mass <= 0 {
			s.Mass = 1
		}
		return s
	}
	if spec.Preset != "" {
		if s, ok := geometry.SpringPreset(spec.Preset); ok {
			return s
		}
	}
	return def
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
