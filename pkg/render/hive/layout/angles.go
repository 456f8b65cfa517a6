package layout

import "math"

// MajorAngle returns the angular spacing between group axes: 2π/G.
// numGroups must be positive; Build guards this before any angle math runs.
func MajorAngle(numGroups int) float64 {
	return 2 * math.Pi / float64(numGroups)
}

// MinorAngle returns the angular half-offset used to split a group's axis
// into two and to nudge edge endpoints off exact axis overlap: 2π/(6G).
func MinorAngle(numGroups int) float64 {
	return 2 * math.Pi / (6 * float64(numGroups))
}

// GroupTheta returns the angle of the idx-th group's axis before any
// splitting: idx·major.
func GroupTheta(idx, numGroups int) float64 {
	return float64(idx) * MajorAngle(numGroups)
}

// correctAngles resolves two edge cases before the duplicate-axis
// adjustment. Angles sitting exactly at zero are rebased to 2π when the
// other endpoint is more than half a turn away, so the curve takes the
// short arc instead of sweeping the long way around through angle zero.
// Coincident angles are bowed apart by one minor angle each so the curve
// is visibly non-degenerate; this happens for edges between two nodes on
// the same unsplit axis, which a well-formed input avoids but which is
// defended against here.
//
// The exact float comparisons are deliberate: axis angles are produced by
// the same multiplication everywhere, so equality is reliable.
func correctAngles(start, end, minor float64) (float64, float64) {
	if start == 0 && end-start > math.Pi {
		start = 2 * math.Pi
	}
	if end == 0 && end-start < -math.Pi {
		end = 2 * math.Pi
	}

	if start == end {
		start -= minor
		end += minor
	}

	return start, end
}

// adjustAngles selects which duplicate of a split axis each edge endpoint
// resolves to, by nudging the endpoints toward each other's side: the
// lower-indexed group's endpoint moves forward by one minor angle and the
// higher-indexed one moves back. Edges between the first and last group
// additionally receive an opposite-sense double shift so they route across
// the 0/2π seam rather than across the whole circle.
//
// The clauses are cumulative, not exclusive: for two groups
// both the ordering shift and the seam shift fire, netting a one-minor-angle
// move in the seam direction. The shifts also apply when the axis in
// question was never split, a known quirk kept for output compatibility.
func adjustAngles(startIdx, endIdx, numGroups int, start, end, minor float64) (float64, float64) {
	if startIdx < endIdx {
		end -= minor
		start += minor
	}
	if endIdx < startIdx {
		start -= minor
		end += minor
	}

	if startIdx == 0 && endIdx == numGroups-1 {
		start -= 2 * minor
		end += 2 * minor
	}
	if startIdx == numGroups-1 && endIdx == 0 {
		start += 2 * minor
		end -= 2 * minor
	}

	return start, end
}
