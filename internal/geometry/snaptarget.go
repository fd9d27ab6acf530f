package geometry

import "math"

// DismissTarget is the FindSnapTarget result meaning the sheet should be
// dismissed entirely rather than settle on a snap point.
const DismissTarget = -1

const (
	// Releases faster than this (px/ms) project the position forward
	// instead of snapping from the raw offset.
	projectionVelocityThreshold = 0.4
	projectionMultiplier        = 150
	projectionVelocityCap       = 2
)

// FindSnapTarget decides where a released drag should settle: the index of a
// snap height, or DismissTarget for full dismissal.
//
// dragOffset and velocity are measured along the dismiss axis, positive
// toward dismissal. snapHeights must be ascending as produced by
// ResolveSnapPoints; internally each height maps to an offset from fully
// open as panelExtent - height.
//
// In sequential mode only the snap adjacent to currentIndex in the direction
// of the release velocity is a candidate: stepping below index 0 dismisses,
// stepping past the last index clamps to fully open. In free mode the snap
// nearest the (possibly projected) position wins, with dismissal winning any
// tie against the nearest snap.
func FindSnapTarget(dragOffset, panelExtent float64, snapHeights []float64, velocity float64, currentIndex int, sequential bool) int {
	if len(snapHeights) == 0 {
		return DismissTarget
	}

	if sequential {
		next := currentIndex
		switch {
		case velocity > 0:
			next = currentIndex - 1
		case velocity < 0:
			next = currentIndex + 1
		}
		if next < 0 {
			return DismissTarget
		}
		if next > len(snapHeights)-1 {
			next = len(snapHeights) - 1
		}
		return next
	}

	position := dragOffset
	if math.Abs(velocity) >= projectionVelocityThreshold {
		v := math.Max(-projectionVelocityCap, math.Min(projectionVelocityCap, velocity))
		position = dragOffset + v*projectionMultiplier
	}

	// First occurrence wins ties during the scan.
	best := DismissTarget
	bestDist := math.Inf(1)
	for i, height := range snapHeights {
		dist := math.Abs(position - (panelExtent - height))
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if math.Abs(position-panelExtent) <= bestDist {
		return DismissTarget
	}
	return best
}

// SnapOffset returns the drag offset at which the sheet rests on the given
// snap height: panelExtent - snapHeights[index]. Out-of-range indexes clamp
// to zero (fully open) rather than fail.
func SnapOffset(index int, snapHeights []float64, panelExtent float64) float64 {
	if index < 0 || index >= len(snapHeights) {
		return 0
	}
	return panelExtent - snapHeights[index]
}
