// Package overlap validates a candidate object placement against the other
// placed objects, classifying bounding-box overlap by how much of the
// candidate's own footprint it covers.
//
// Overlap is advisory during drag (the dragged object may pass over others)
// and blocking at commit time; that policy lives in the engine, this package
// only measures and classifies.
package overlap

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

// DefaultWarnPercent is the tolerated overlap, as a percentage of the
// candidate's own bounding-box area. Overlap at or below this threshold is a
// warning; above it, an error. This is a tuning knob, not a law of nature.
const DefaultWarnPercent = 5.0

// Overlap reports one colliding object.
type Overlap struct {
	OtherID  string   `json:"other_id"`
	Percent  float64  `json:"percent"`
	Severity Severity `json:"severity"`
}

// Severity grades an overlap.
type Severity string

// Overlap severities.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Result is the outcome of an overlap check. Valid is false only when at
// least one overlap exceeds the warning threshold.
type Result struct {
	Valid    bool      `json:"valid"`
	Overlaps []Overlap `json:"overlaps,omitempty"`
}

// Worst returns the largest overlap in the result, or nil if there are none.
func (r Result) Worst() *Overlap {
	var worst *Overlap
	for i := range r.Overlaps {
		if worst == nil || r.Overlaps[i].Percent > worst.Percent {
			worst = &r.Overlaps[i]
		}
	}
	return worst
}

// Check measures the candidate object at pos against every object in others.
//
// Two objects overlap when their axis-aligned bounding boxes intersect with
// positive area; the overlap percentage is the intersection area relative to
// the candidate's own area. A degenerate candidate (zero area) cannot
// overlap anything.
//
// The candidate must not appear in others; excluding self is the caller's
// job (object.List.Others does it).
//
// The only error condition is an unknown object kind, which is a programming
// error, not a spatial outcome.
func Check(candidate *object.Object, pos geometry.Point, others []*object.Object, warnPercent float64) (Result, error) {
	cb, err := candidate.BoundsAt(pos)
	if err != nil {
		return Result{}, err
	}

	res := Result{Valid: true}
	area := cb.Area()
	if area == 0 {
		return res, nil
	}

	for _, other := range others {
		ob, err := other.Bounds()
		if err != nil {
			return Result{}, err
		}

		shared := cb.IntersectionArea(ob)
		if shared <= 0 {
			continue
		}

		pct := shared / area * 100
		ov := Overlap{OtherID: other.ID, Percent: pct, Severity: SeverityWarning}
		if pct > warnPercent {
			ov.Severity = SeverityError
			res.Valid = false
		}
		res.Overlaps = append(res.Overlaps, ov)
	}
	return res, nil
}
