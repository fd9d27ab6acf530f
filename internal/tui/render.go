package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/howells/stacksheet/internal/geometry"
	"github.com/howells/stacksheet/internal/sheet"
)

// Terminal cells are not pixels. The gesture feel constants (dead zone,
// projection) are tuned in px, so mouse coordinates are scaled up by a
// nominal cell size before they reach the recognizer.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

// boxWidth maps a depth scale onto a terminal column count, clamped to a
// sane minimum so deep sheets stay visible as a sliver.
func boxWidth(termWidth int, scale float64) int {
	w := int(float64(termWidth) * scale)
	if w < 16 {
		w = 16
	}
	if w > termWidth {
		w = termWidth
	}
	return w
}

// lipLine renders the one-row "peek" of a background sheet: a shrunken,
// dimmed top edge whose width tracks the depth scale.
func lipLine(theme *Theme, tr geometry.StackTransform, termWidth int) string {
	if tr.Opacity <= 0 {
		return ""
	}
	w := boxWidth(termWidth-4, tr.Scale)
	edge := "╭" + strings.Repeat("─", w-2) + "╮"
	style := theme.Backdrop
	if tr.Opacity > 0.7 {
		style = theme.HandleBar
	}
	return lipgloss.PlaceHorizontal(termWidth, lipgloss.Center, style.Render(edge))
}

// renderSheetBody renders the foreground sheet box: handle bar, title line,
// data payload, and the snap badge when snap points are active.
func renderSheetBody(theme *Theme, item sheet.Item, width int, snapLabel string) string {
	inner := width - 6 // border + padding
	if inner < 8 {
		inner = 8
	}

	handle := theme.HandleBar.Render(strings.Repeat("━", 8))
	title := theme.Title.Render(item.Type)
	id := theme.Subtle.Render(item.ID)

	lines := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, handle),
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", id),
	}

	if len(item.Data) > 0 {
		keys := make([]string, 0, len(item.Data))
		for k := range item.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, theme.Subtle.Render(fmt.Sprintf("%s: %v", k, item.Data[k])))
		}
	}

	if snapLabel != "" {
		lines = append(lines, theme.Badge.Render(snapLabel))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return theme.SheetBox.Width(width - 4).Render(body)
}

// renderStack composes the whole sheet area: background lips deepest-first,
// then the top sheet pushed down by the drag offset (in rows).
func renderStack(theme *Theme, snap sheet.Snapshot, stacking geometry.StackingConfig, termWidth, areaHeight int, dragRows int, snapLabel string) string {
	if !snap.IsOpen {
		hint := theme.Subtle.Render("stack closed — press o to open a sheet")
		return lipgloss.Place(termWidth, areaHeight, lipgloss.Center, lipgloss.Center, hint)
	}

	var lips []string
	for i := 0; i < len(snap.Stack)-1; i++ {
		tr := geometry.Transform(snap.Depth(i), stacking)
		if line := lipLine(theme, tr, termWidth); line != "" {
			lips = append(lips, line)
		}
	}

	top, _ := snap.Top()
	box := renderSheetBody(theme, top, termWidth, snapLabel)
	box = lipgloss.PlaceHorizontal(termWidth, lipgloss.Center, box)

	if dragRows > 0 {
		box = strings.Repeat("\n", dragRows) + box
	}

	parts := append(lips, box)
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(termWidth, areaHeight, lipgloss.Left, lipgloss.Bottom, content)
}

// helpLine renders the key legend from the bound keys.
func helpLine(theme *Theme, keys keyMap) string {
	parts := make([]string, 0, 9)
	for _, b := range keys.helpBindings() {
		h := b.Help()
		parts = append(parts, theme.HelpKey.Render(h.Key)+" "+theme.HelpDesc.Render(h.Desc))
	}
	parts = append(parts, theme.HelpKey.Render("drag")+" "+theme.HelpDesc.Render("dismiss"))
	return strings.Join(parts, theme.HelpDesc.Render(" · "))
}
