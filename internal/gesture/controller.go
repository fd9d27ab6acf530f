package gesture

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/howells/stacksheet/internal/config"
	"github.com/howells/stacksheet/internal/geometry"
)

// Feel defaults. Empirically tuned; configurable but the defaults are the
// compatibility contract.
const (
	DefaultDeadZone         = 10.0
	DefaultMaxAngle         = 35.0
	DefaultRubberBandFactor = 0.6
)

// Phase is the recognizer state.
type Phase int

const (
	// PhaseIdle: no pointer down, zero offset.
	PhaseIdle Phase = iota
	// PhaseTracking: pointer down, movement still inside the dead zone.
	PhaseTracking
	// PhaseDragging: the gesture committed; moves update the drag offset.
	PhaseDragging
	// PhaseRejected: the gesture failed the commit decision; the pointer
	// belongs to scrolling/interaction until release.
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracking:
		return "tracking"
	case PhaseDragging:
		return "dragging"
	case PhaseRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Action is the outcome of a released gesture.
type Action int

const (
	// ActionNone: nothing to do (gesture never committed, or cancelled).
	ActionNone Action = iota
	// ActionSettle: bounce back to the resting position.
	ActionSettle
	// ActionDismiss: pop if nested, close otherwise.
	ActionDismiss
	// ActionSnap: move to SnapIndex and reset the offset.
	ActionSnap
)

// Resolution is what PointerUp hands back to the caller.
type Resolution struct {
	Action    Action
	SnapIndex int
}

// Config carries the per-panel recognizer parameters. Zero feel fields
// fall back to the defaults above.
type Config struct {
	Side             config.Side
	DeadZone         float64
	MaxAngle         float64 // degrees off the dismiss axis
	RubberBandFactor float64

	// Release thresholds, used when no snap heights are configured.
	CloseThreshold    float64 // fraction of PanelExtent
	VelocityThreshold float64 // px/ms

	// Snap state. Non-empty SnapHeights routes release through the snap
	// target selector instead of the thresholds.
	SnapHeights []float64
	PanelExtent float64
	Sequential  bool
	SnapIndex   int

	Enabled     bool
	Dismissible bool
}

// FromResolved builds a recognizer Config for one panel from the resolved
// sheet configuration.
func FromResolved(r config.Resolved, viewportWidth, panelExtent float64, snapHeights []float64) Config {
	return Config{
		Side:              r.SideFor(viewportWidth),
		CloseThreshold:    r.CloseThreshold,
		VelocityThreshold: r.VelocityThreshold,
		SnapHeights:       snapHeights,
		PanelExtent:       panelExtent,
		Sequential:        r.SnapToSequentialPoints,
		SnapIndex:         r.SnapPointIndex,
		Enabled:           r.Drag,
		Dismissible:       r.Dismissible,
	}
}

// Controller is the per-panel drag recognizer. It is single-pointer and
// synchronous: every method runs to completion in the caller's event
// handler, and a second pointer-down during an in-flight gesture is
// ignored.
type Controller struct {
	cfg Config
	log zerolog.Logger

	phase     Phase
	startX    float64
	startY    float64
	startTime float64
	target    Target
	offset    float64
}

// NewController creates a recognizer with the given parameters, filling
// zero feel fields with the defaults.
func NewController(cfg Config, log zerolog.Logger) *Controller {
	if cfg.DeadZone <= 0 {
		cfg.DeadZone = DefaultDeadZone
	}
	if cfg.MaxAngle <= 0 {
		cfg.MaxAngle = DefaultMaxAngle
	}
	if cfg.RubberBandFactor <= 0 {
		cfg.RubberBandFactor = DefaultRubberBandFactor
	}
	return &Controller{
		cfg: cfg,
		log: log.With().Str("component", "gesture").Logger(),
	}
}

// Phase returns the current recognizer state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Offset returns the current drag offset along the dismiss axis. Zero
// unless a gesture is committed.
func (c *Controller) Offset() float64 {
	return c.offset
}

// SetSnapIndex updates the active snap index used as the starting point of
// sequential resolution.
func (c *Controller) SetSnapIndex(index int) {
	c.cfg.SnapIndex = index
}

// PointerDown starts tracking when the event qualifies: dragging enabled,
// primary button, and a non-interactive target (or the handle, which
// always qualifies). Events during an in-flight gesture are ignored.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.phase != PhaseIdle {
		return
	}
	if !c.cfg.Enabled || ev.Button != ButtonPrimary {
		return
	}
	if ev.Target.Interactive && !ev.Target.InHandle {
		c.log.Debug().Msg("pointer down on interactive target; not tracking")
		return
	}

	c.phase = PhaseTracking
	c.startX = ev.X
	c.startY = ev.Y
	c.startTime = ev.TimeMs
	c.target = ev.Target
}

// PointerMove advances the state machine. Inside the dead zone nothing
// happens; the first move past it decides commit or reject; committed
// moves update the offset.
func (c *Controller) PointerMove(ev PointerEvent) {
	switch c.phase {
	case PhaseTracking:
		dx := ev.X - c.startX
		dy := ev.Y - c.startY
		if math.Hypot(dx, dy) < c.cfg.DeadZone {
			return
		}
		if c.commit(dx, dy) {
			c.phase = PhaseDragging
			c.offset = c.applyOffset(dx, dy)
		} else {
			c.phase = PhaseRejected
		}
	case PhaseDragging:
		c.offset = c.applyOffset(ev.X-c.startX, ev.Y-c.startY)
	}
}

// commit is the one-shot decision at the dead zone boundary.
func (c *Controller) commit(dx, dy float64) bool {
	axial, cross := c.split(dx, dy)

	angle := math.Atan2(math.Abs(cross), math.Abs(axial)) * 180 / math.Pi
	if angle > c.cfg.MaxAngle {
		c.log.Debug().Float64("angle", angle).Msg("gesture rejected: off-axis")
		return false
	}
	if axial*c.cfg.Side.Dismissward() < 0 {
		c.log.Debug().Msg("gesture rejected: non-dismiss direction")
		return false
	}
	if c.target.Scrollable && !c.target.AtScrollEdge {
		c.log.Debug().Msg("gesture rejected: scrollable ancestor not at edge")
		return false
	}
	return true
}

// applyOffset maps raw axial displacement to the drag offset: linear in
// the dismiss direction, rubber-banded past the resting position.
func (c *Controller) applyOffset(dx, dy float64) float64 {
	axial, _ := c.split(dx, dy)
	raw := axial * c.cfg.Side.Dismissward()
	if raw >= 0 {
		return raw
	}
	return -math.Sqrt(-raw) * c.cfg.RubberBandFactor
}

// split separates a movement vector into the dismiss-axis component and
// the cross component for the configured side.
func (c *Controller) split(dx, dy float64) (axial, cross float64) {
	if c.cfg.Side.Horizontal() {
		return dx, dy
	}
	return dy, dx
}

// PointerUp resolves the gesture and resets to idle. Only a committed drag
// produces a non-None action.
func (c *Controller) PointerUp(ev PointerEvent) Resolution {
	if c.phase != PhaseDragging {
		c.reset()
		return Resolution{Action: ActionNone}
	}

	offset := c.offset
	elapsed := ev.TimeMs - c.startTime
	velocity := 0.0
	if elapsed > 0 {
		velocity = offset / elapsed
	}
	c.reset()

	res := c.resolve(offset, velocity)
	c.log.Debug().
		Float64("offset", offset).
		Float64("velocity", velocity).
		Int("action", int(res.Action)).
		Msg("gesture resolved")
	return res
}

func (c *Controller) resolve(offset, velocity float64) Resolution {
	if len(c.cfg.SnapHeights) > 0 {
		target := geometry.FindSnapTarget(offset, c.cfg.PanelExtent, c.cfg.SnapHeights, velocity, c.cfg.SnapIndex, c.cfg.Sequential)
		if target == geometry.DismissTarget {
			if !c.cfg.Dismissible {
				return Resolution{Action: ActionSettle}
			}
			return Resolution{Action: ActionDismiss}
		}
		return Resolution{Action: ActionSnap, SnapIndex: target}
	}

	pastThreshold := c.cfg.PanelExtent > 0 && offset/c.cfg.PanelExtent > c.cfg.CloseThreshold
	if (pastThreshold || velocity > c.cfg.VelocityThreshold) && c.cfg.Dismissible {
		return Resolution{Action: ActionDismiss}
	}
	return Resolution{Action: ActionSettle}
}

// PointerCancel aborts any in-flight gesture: straight back to idle, zero
// offset, never a dismissal.
func (c *Controller) PointerCancel() {
	if c.phase != PhaseIdle {
		c.log.Debug().Str("phase", c.phase.String()).Msg("gesture cancelled")
	}
	c.reset()
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.offset = 0
	c.target = Target{}
}
