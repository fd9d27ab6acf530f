package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/howells/stacksheet/internal/config"
	"github.com/howells/stacksheet/internal/gesture"
	"github.com/howells/stacksheet/internal/geometry"
	"github.com/howells/stacksheet/internal/sheet"
)

const frameInterval = time.Second / 60

// demo sheet types cycled by the keyboard commands
var demoTypes = []string{"menu", "settings", "profile", "detail"}

// frameMsg drives the spring animation.
type frameMsg time.Time

// ConfigReloadedMsg carries a live-reloaded sheet configuration into the
// running program.
type ConfigReloadedMsg struct {
	Resolved config.Resolved
}

// Model is the bubbletea model for the demo.
type Model struct {
	store *sheet.Store
	ctrl  *gesture.Controller
	theme *Theme
	keys  keyMap
	cfg   config.Resolved
	log   zerolog.Logger

	width  int
	height int

	snapHeights []float64
	panelExtent float64

	// spring animation toward the resting offset after release
	spring    geometry.Spring
	animating bool
	animPos   float64
	animVel   float64
	animTo    float64

	started  time.Time
	typeStep int
}

// NewModel creates the demo model.
func NewModel(cfg config.Resolved, log zerolog.Logger) Model {
	m := Model{
		store:   sheet.NewStore(cfg, log),
		theme:   NewTheme(),
		keys:    defaultKeyMap(),
		cfg:     cfg,
		log:     log.With().Str("component", "tui").Logger(),
		spring:  cfg.Spring,
		width:   80,
		height:  24,
		started: time.Now(),
	}
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// layout recomputes pixel-space geometry and rebuilds the recognizer for
// the current terminal size.
func (m *Model) layout() {
	areaHeight := m.height - 3
	if areaHeight < 4 {
		areaHeight = 4
	}
	m.panelExtent = float64(areaHeight) * cellHeightPx
	m.snapHeights = geometry.ResolveSnapPoints(m.cfg.SnapPoints, m.panelExtent, geometry.DefaultRootFontSize)

	gcfg := gesture.FromResolved(m.cfg, float64(m.width)*cellWidthPx, m.panelExtent, m.snapHeights)
	gcfg.SnapIndex = m.store.ActiveSnapIndex()
	m.ctrl = gesture.NewController(gcfg, m.log)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case ConfigReloadedMsg:
		m.cfg = msg.Resolved
		m.spring = msg.Resolved.Spring
		m.layout()
		m.log.Info().Msg("configuration reloaded")

	case frameMsg:
		if !m.animating {
			return m, nil
		}
		m.animPos, m.animVel = m.spring.Step(m.animPos, m.animVel, m.animTo, frameInterval.Seconds())
		if m.spring.Settled(m.animPos, m.animVel, m.animTo) {
			m.animPos = m.animTo
			m.animating = false
			return m, nil
		}
		return m, m.frame()
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		if m.cfg.CloseOnEscape && m.store.IsOpen() {
			m.store.Close()
			m.stopAnim()
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.store.Open(sheet.Kind(m.nextType()), "", m.demoData())
		m.stopAnim()
	case key.Matches(msg, m.keys.Push):
		m.store.Push(sheet.Kind(m.nextType()), "", m.demoData())
		m.stopAnim()
	case key.Matches(msg, m.keys.Replace):
		m.store.Replace(sheet.Kind(m.nextType()), "", m.demoData())
	case key.Matches(msg, m.keys.Swap):
		m.store.Swap(sheet.Kind(m.nextType()), m.demoData())
	case key.Matches(msg, m.keys.Navigate):
		m.store.Navigate(sheet.Kind(demoTypes[0]), "", m.demoData())
	case key.Matches(msg, m.keys.Pop):
		m.store.Pop()
		m.stopAnim()
	case key.Matches(msg, m.keys.Close):
		m.store.Close()
		m.stopAnim()
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := m.pointerEvent(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.store.IsOpen() {
			m.ctrl.PointerDown(ev)
		}
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(ev)
	case tea.MouseActionRelease:
		res := m.ctrl.PointerUp(ev)
		return m.applyResolution(res)
	}
	return m, nil
}

// pointerEvent scales terminal cell coordinates to the px space the feel
// constants are tuned for.
func (m Model) pointerEvent(msg tea.MouseMsg) gesture.PointerEvent {
	button := gesture.ButtonSecondary
	if msg.Button == tea.MouseButtonLeft {
		button = gesture.ButtonPrimary
	}
	return gesture.PointerEvent{
		X:      float64(msg.X) * cellWidthPx,
		Y:      float64(msg.Y) * cellHeightPx,
		TimeMs: float64(time.Since(m.started).Milliseconds()),
		Button: button,
		Target: gesture.Target{InHandle: true},
	}
}

func (m Model) applyResolution(res gesture.Resolution) (tea.Model, tea.Cmd) {
	switch res.Action {
	case gesture.ActionDismiss:
		if m.store.Len() > 1 {
			m.store.Pop()
		} else {
			m.store.Close()
		}
		m.stopAnim()
		return m, nil
	case gesture.ActionSnap:
		m.store.SetSnapIndex(res.SnapIndex)
		m.ctrl.SetSnapIndex(res.SnapIndex)
		return m.settleTo(geometry.SnapOffset(res.SnapIndex, m.snapHeights, m.panelExtent))
	case gesture.ActionSettle:
		return m.settleTo(geometry.SnapOffset(m.store.ActiveSnapIndex(), m.snapHeights, m.panelExtent))
	default:
		return m, nil
	}
}

// settleTo springs the display offset from wherever the drag left it to
// the resting offset.
func (m Model) settleTo(target float64) (tea.Model, tea.Cmd) {
	m.animPos = m.displayOffset()
	m.animVel = 0
	m.animTo = target
	m.animating = true
	return m, m.frame()
}

func (m *Model) stopAnim() {
	m.animating = false
	m.animPos = 0
	m.animVel = 0
	m.animTo = 0
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// displayOffset is the offset the view renders this frame: live drag,
// spring position, or the resting snap offset.
func (m Model) displayOffset() float64 {
	if m.ctrl.Phase() == gesture.PhaseDragging {
		return m.ctrl.Offset()
	}
	if m.animating {
		return m.animPos
	}
	return geometry.SnapOffset(m.store.ActiveSnapIndex(), m.snapHeights, m.panelExtent)
}

func (m *Model) nextType() string {
	t := demoTypes[m.typeStep%len(demoTypes)]
	m.typeStep++
	return t
}

func (m Model) demoData() map[string]any {
	return map[string]any{"depth": m.store.Len()}
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.store.Snapshot()

	status := m.theme.Title.Render("stacksheet demo")
	if snap.IsOpen {
		status += "  " + m.theme.Badge.Render(fmt.Sprintf("depth %d", len(snap.Stack)))
	}
	if len(m.snapHeights) > 0 {
		status += "  " + m.theme.Subtle.Render(fmt.Sprintf("snap %d/%d", m.store.ActiveSnapIndex()+1, len(m.snapHeights)))
	}

	snapLabel := ""
	if len(m.snapHeights) > 0 {
		snapLabel = fmt.Sprintf("snap %d", m.store.ActiveSnapIndex())
	}

	areaHeight := m.height - 3
	if areaHeight < 4 {
		areaHeight = 4
	}
	dragRows := int(m.displayOffset() / cellHeightPx)
	if dragRows < 0 {
		dragRows = 0
	}
	if dragRows > areaHeight-2 {
		dragRows = areaHeight - 2
	}

	stack := renderStack(m.theme, snap, m.cfg.Stacking, m.width, areaHeight, dragRows, snapLabel)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		status,
		stack,
		helpLine(m.theme, m.keys),
	)
}

// Ensure interface compliance.
var _ tea.Model = (*Model)(nil)
