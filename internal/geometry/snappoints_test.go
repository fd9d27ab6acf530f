package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSnapPoints_Fractions(t *testing.T) {
	assert.Equal(t, []float64{400}, ResolveSnapPoints([]any{0.5}, 800, 0))
	assert.Equal(t, []float64{200, 400, 800}, ResolveSnapPoints([]any{1.0, 0.25, 0.5}, 800, 0))
}

func TestResolveSnapPoints_AbsolutePixels(t *testing.T) {
	assert.Equal(t, []float64{320}, ResolveSnapPoints([]any{320}, 800, 0))
	assert.Equal(t, []float64{150, 300}, ResolveSnapPoints([]any{300.0, 150}, 800, 0))
}

func TestResolveSnapPoints_FractionBoundary(t *testing.T) {
	// 1 is still a fraction (fully open); anything above is absolute px.
	assert.Equal(t, []float64{800}, ResolveSnapPoints([]any{1.0}, 800, 0))
	assert.Equal(t, []float64{1.5}, ResolveSnapPoints([]any{1.5}, 800, 0))
	assert.Equal(t, []float64{2}, ResolveSnapPoints([]any{2}, 800, 0))
}

func TestResolveSnapPoints_UnitStrings(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		viewport float64
		want     float64
	}{
		{"px", "320px", 800, 320},
		{"rem default root", "20rem", 800, 320},
		{"em default root", "2em", 800, 32},
		{"vh", "50vh", 900, 450},
		{"percent", "25%", 800, 200},
		{"fractional px", "12.5px", 800, 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSnapPoints([]any{tt.spec}, tt.viewport, 0)
			assert.Equal(t, []float64{tt.want}, got)
		})
	}
}

func TestResolveSnapPoints_CustomRootFontSize(t *testing.T) {
	assert.Equal(t, []float64{200}, ResolveSnapPoints([]any{"10rem"}, 800, 20))
}

func TestResolveSnapPoints_FiltersInvalid(t *testing.T) {
	got := ResolveSnapPoints([]any{0, "bad", 300}, 800, 0)
	assert.Equal(t, []float64{300}, got)

	assert.Empty(t, ResolveSnapPoints([]any{"", "-5px", "10vw", nil, true, -200}, 800, 0))
	assert.Empty(t, ResolveSnapPoints(nil, 800, 0))
}

func TestResolveSnapPoints_DedupesEquivalentSpecs(t *testing.T) {
	// A fraction and an absolute value resolving to the same height
	// collapse into one snap point.
	assert.Equal(t, []float64{400}, ResolveSnapPoints([]any{0.5, 400}, 800, 0))

	// Values within one pixel of each other collapse too.
	assert.Equal(t, []float64{400}, ResolveSnapPoints([]any{400, 400.5}, 800, 0))

	// Values further apart survive.
	assert.Equal(t, []float64{400, 402}, ResolveSnapPoints([]any{402, 400}, 800, 0))
}

func TestResolveSnapPoints_SortsAscending(t *testing.T) {
	got := ResolveSnapPoints([]any{"90vh", 0.25, 500}, 1000, 0)
	assert.Equal(t, []float64{250, 500, 900}, got)
}
