// Package gesture implements the drag-to-dismiss recognizer: a per-panel
// state machine that turns raw pointer events into a single scalar drag
// offset and, on release, a resolution (settle, snap, or dismiss).
package gesture

// Button identifies a pointer button. Only the primary button starts a
// drag.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Target describes what the pointer landed on at pointer-down. The
// presentation layer performs the hit test; the recognizer only consumes
// the verdicts.
type Target struct {
	// Interactive marks buttons, inputs, links, editable regions, and
	// anything explicitly drag-exempt. Interactive targets never start a
	// drag unless they sit inside a handle.
	Interactive bool

	// InHandle marks the designated drag handle, which always qualifies,
	// interactive or not.
	InHandle bool

	// Scrollable marks a scrollable ancestor; AtScrollEdge reports whether
	// that ancestor is already at its scroll edge in the dismiss direction.
	// A scrollable ancestor not at its edge wins over dismissal.
	Scrollable   bool
	AtScrollEdge bool
}

// PointerEvent is one pointer sample in panel coordinates. TimeMs is a
// monotonic timestamp in milliseconds; velocity comes out in px/ms.
type PointerEvent struct {
	X      float64
	Y      float64
	TimeMs float64
	Button Button
	Target Target
}
