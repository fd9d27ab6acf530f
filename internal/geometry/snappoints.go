package geometry

import (
	"regexp"
	"sort"
	"strconv"
)

// DefaultRootFontSize converts rem/em snap specs to pixels when the embedding
// layer does not report a root font size.
const DefaultRootFontSize = 16.0

// Snap heights closer together than this collapse into one.
const snapDedupeTolerance = 1.0

var snapUnitPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(px|rem|em|vh|%)$`)

// ResolveSnapPoints converts raw snap specs into ascending, deduplicated
// pixel heights relative to viewportExtent.
//
// A spec is either a number (a fraction of the viewport when <= 1, absolute
// pixels otherwise) or a CSS-style unit string such as "320px", "20rem", or
// "50vh". Anything else resolves to zero and is filtered out along with
// non-positive results; malformed specs degrade silently rather than fail.
func ResolveSnapPoints(specs []any, viewportExtent, rootFontSize float64) []float64 {
	if rootFontSize <= 0 {
		rootFontSize = DefaultRootFontSize
	}

	resolved := make([]float64, 0, len(specs))
	for _, spec := range specs {
		px := resolveSnapSpec(spec, viewportExtent, rootFontSize)
		if px > 0 {
			resolved = append(resolved, px)
		}
	}

	sort.Float64s(resolved)

	// Collapse near-equal heights, e.g. 0.5 of an 800px viewport and a
	// literal 400 resolving to the same point.
	deduped := resolved[:0]
	for _, px := range resolved {
		if len(deduped) > 0 && px-deduped[len(deduped)-1] <= snapDedupeTolerance {
			continue
		}
		deduped = append(deduped, px)
	}
	return deduped
}

// resolveNumeric maps a bare number: values up to 1 are fractions of the
// viewport, anything larger is absolute pixels.
func resolveNumeric(v, viewportExtent float64) float64 {
	if v <= 1 {
		return v * viewportExtent
	}
	return v
}

func resolveSnapSpec(spec any, viewportExtent, rootFontSize float64) float64 {
	switch v := spec.(type) {
	case float64:
		return resolveNumeric(v, viewportExtent)
	case float32:
		return resolveNumeric(float64(v), viewportExtent)
	case int:
		return resolveNumeric(float64(v), viewportExtent)
	case int64:
		return resolveNumeric(float64(v), viewportExtent)
	case string:
		m := snapUnitPattern.FindStringSubmatch(v)
		if m == nil {
			return 0
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		switch m[2] {
		case "px":
			return value
		case "rem", "em":
			return value * rootFontSize
		case "vh", "%":
			return value / 100 * viewportExtent
		}
	}
	return 0
}
