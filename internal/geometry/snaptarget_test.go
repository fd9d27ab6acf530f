package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSnapTarget_FreeModeRestingStays(t *testing.T) {
	heights := []float64{200, 400, 600}
	got := FindSnapTarget(0, 600, heights, 0, 2, false)
	assert.Equal(t, 2, got)
}

func TestFindSnapTarget_FreeModeFarDragDismisses(t *testing.T) {
	heights := []float64{200, 400, 600}
	got := FindSnapTarget(500, 600, heights, 0, 2, false)
	assert.Equal(t, DismissTarget, got)
}

func TestFindSnapTarget_FreeModeNearestSnap(t *testing.T) {
	heights := []float64{200, 400, 600}
	// Offsets from fully open: 400, 200, 0. A drag to 180 is nearest the
	// middle snap.
	got := FindSnapTarget(180, 600, heights, 0, 2, false)
	assert.Equal(t, 1, got)
}

func TestFindSnapTarget_FreeModeVelocityProjection(t *testing.T) {
	heights := []float64{200, 400, 600}
	// Slow release from the top: raw offset 50 stays at index 2.
	assert.Equal(t, 2, FindSnapTarget(50, 600, heights, 0.1, 2, false))
	// A flick at 1.0 px/ms projects to 50+150=200, landing exactly on the
	// middle snap.
	assert.Equal(t, 1, FindSnapTarget(50, 600, heights, 1.0, 2, false))
}

func TestFindSnapTarget_ProjectionVelocityCapped(t *testing.T) {
	heights := []float64{200, 600}
	// Velocity clamps to 2, so projection adds at most 300.
	got := FindSnapTarget(0, 600, heights, 50, 1, false)
	assert.Equal(t, 0, got)
}

func TestFindSnapTarget_DismissWinsTies(t *testing.T) {
	heights := []float64{300}
	// Offset 450 is equidistant (150) from the snap offset 300 and from
	// dismissal at 600. Dismissal wins the tie.
	got := FindSnapTarget(450, 600, heights, 0, 0, false)
	assert.Equal(t, DismissTarget, got)
}

func TestFindSnapTarget_FirstOccurrenceWinsNearestTie(t *testing.T) {
	// Two snap offsets equidistant from the position: the scan keeps the
	// earlier index.
	heights := []float64{200, 400}
	// Offsets: 400 (idx 0), 200 (idx 1); position 300 ties at 100 each.
	got := FindSnapTarget(300, 600, heights, 0, 0, false)
	assert.Equal(t, 0, got)
}

func TestFindSnapTarget_SequentialStepsDown(t *testing.T) {
	heights := []float64{200, 400, 600}
	// Positive velocity moves toward dismissal, one snap at a time.
	assert.Equal(t, 1, FindSnapTarget(0, 600, heights, 0.5, 2, true))
	assert.Equal(t, 0, FindSnapTarget(0, 600, heights, 0.5, 1, true))
	assert.Equal(t, DismissTarget, FindSnapTarget(0, 600, heights, 0.5, 0, true))
}

func TestFindSnapTarget_SequentialStepsUpClamps(t *testing.T) {
	heights := []float64{200, 400, 600}
	assert.Equal(t, 1, FindSnapTarget(0, 600, heights, -0.5, 0, true))
	assert.Equal(t, 2, FindSnapTarget(0, 600, heights, -0.5, 1, true))
	// No dismissal upward: past the last index clamps to fully open.
	assert.Equal(t, 2, FindSnapTarget(0, 600, heights, -0.5, 2, true))
}

func TestFindSnapTarget_SequentialZeroVelocityStays(t *testing.T) {
	heights := []float64{200, 400, 600}
	assert.Equal(t, 1, FindSnapTarget(0, 600, heights, 0, 1, true))
}

func TestFindSnapTarget_EmptyHeightsDismisses(t *testing.T) {
	assert.Equal(t, DismissTarget, FindSnapTarget(0, 600, nil, 0, 0, false))
	assert.Equal(t, DismissTarget, FindSnapTarget(0, 600, nil, 0, 0, true))
}

func TestSnapOffset(t *testing.T) {
	heights := []float64{200, 400, 600}
	assert.Equal(t, 400.0, SnapOffset(0, heights, 600))
	assert.Equal(t, 200.0, SnapOffset(1, heights, 600))
	assert.Equal(t, 0.0, SnapOffset(2, heights, 600))

	// Out-of-range indexes clamp to fully open instead of failing.
	assert.Equal(t, 0.0, SnapOffset(-1, heights, 600))
	assert.Equal(t, 0.0, SnapOffset(3, heights, 600))
}
