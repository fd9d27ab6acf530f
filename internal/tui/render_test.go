package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/howells/stacksheet/internal/geometry"
	"github.com/howells/stacksheet/internal/sheet"
)

func TestBoxWidth_Clamps(t *testing.T) {
	assert.Equal(t, 80, boxWidth(80, 1.0))
	assert.Equal(t, 40, boxWidth(80, 0.5))
	assert.Equal(t, 16, boxWidth(80, 0.01))
	assert.Equal(t, 80, boxWidth(80, 2.0))
}

func TestLipLine_InvisibleAtZeroOpacity(t *testing.T) {
	theme := NewTheme()
	tr := geometry.StackTransform{Scale: 0.9, Opacity: 0}
	assert.Empty(t, lipLine(theme, tr, 80))
}

func TestRenderStack_ClosedShowsHint(t *testing.T) {
	theme := NewTheme()
	out := renderStack(theme, sheet.Snapshot{}, geometry.StackingConfig{}, 60, 10, 0, "")
	assert.Contains(t, out, "stack closed")
}

func TestRenderStack_ShowsTopSheet(t *testing.T) {
	theme := NewTheme()
	snap := sheet.Snapshot{
		Stack: []sheet.Item{
			{ID: "a1", Type: "menu"},
			{ID: "b1", Type: "settings"},
		},
		IsOpen: true,
	}
	stacking := geometry.StackingConfig{ScaleStep: 0.04, OffsetStep: 16, OpacityStep: 0.15, Radius: 12, RenderThreshold: 3}

	out := renderStack(theme, snap, stacking, 60, 12, 0, "")

	assert.Contains(t, out, "settings")
	assert.NotContains(t, out, "menu") // background sheet renders as a lip only
}

func TestRenderSheetBody_IncludesData(t *testing.T) {
	theme := NewTheme()
	item := sheet.Item{ID: "a1", Type: "profile", Data: map[string]any{"user": "ada"}}

	out := renderSheetBody(theme, item, 50, "")

	assert.Contains(t, out, "profile")
	assert.Contains(t, out, "user: ada")
}

func TestHelpLine_ListsCoreKeys(t *testing.T) {
	out := helpLine(NewTheme(), defaultKeyMap())
	for _, key := range []string{"open", "push", "pop", "quit"} {
		assert.True(t, strings.Contains(out, key), "help should mention %q", key)
	}
}
