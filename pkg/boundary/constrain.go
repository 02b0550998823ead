package boundary

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

// Constrain returns the position nearest to proposed at which the object
// satisfies all boundary constraints. Each axis is clamped independently.
//
// When the object is wider or taller than the venue's usable extent, no
// position on that axis satisfies the constraint; the clamp then collapses
// to the venue's center on that axis as the best-effort placement. This
// fallback is deliberate: a defined answer beats an unsatisfiable range.
//
// Constrain is pure: same inputs produce the same output, and applying it
// twice equals applying it once. With constraints disabled the proposed
// position is returned unchanged.
func Constrain(o *object.Object, proposed geometry.Point, venueBounds geometry.BoundingBox, c Constraints) (geometry.Point, error) {
	hw, hh, err := o.HalfExtents()
	if err != nil {
		return geometry.Point{}, err
	}
	if !c.Enabled {
		return proposed, nil
	}
	return geometry.Point{
		X: clampAxis(proposed.X, hw, venueBounds.MinX, venueBounds.MaxX, c.MarginMm),
		Y: clampAxis(proposed.Y, hh, venueBounds.MinY, venueBounds.MaxY, c.MarginMm),
	}, nil
}

// RealTimeResult reports the outcome of per-axis clamping during drag-move.
type RealTimeResult struct {
	// LimitedPosition is the position after clamping any violating axes.
	LimitedPosition geometry.Point `json:"limited_position"`

	// WasLimited is true when at least one axis was clamped.
	WasLimited bool `json:"was_limited"`

	// LimitedAxes names the clamped axes ("x", "y"), in that order.
	LimitedAxes []string `json:"limited_axes,omitempty"`
}

// EnforceRealTimeLimits clamps a dragged object's position axis by axis.
// An axis in violation is pulled back to its nearest valid value; an axis
// still valid is left exactly where the pointer put it. This is what makes a
// dragged object slide along a wall instead of sticking to it.
func EnforceRealTimeLimits(o *object.Object, proposed geometry.Point, venueBounds geometry.BoundingBox, c Constraints) (RealTimeResult, error) {
	hw, hh, err := o.HalfExtents()
	if err != nil {
		return RealTimeResult{}, err
	}
	if !c.Enabled {
		return RealTimeResult{LimitedPosition: proposed}, nil
	}

	res := RealTimeResult{LimitedPosition: proposed}

	if x := clampAxis(proposed.X, hw, venueBounds.MinX, venueBounds.MaxX, c.MarginMm); x != proposed.X {
		res.LimitedPosition.X = x
		res.WasLimited = true
		res.LimitedAxes = append(res.LimitedAxes, "x")
	}
	if y := clampAxis(proposed.Y, hh, venueBounds.MinY, venueBounds.MaxY, c.MarginMm); y != proposed.Y {
		res.LimitedPosition.Y = y
		res.WasLimited = true
		res.LimitedAxes = append(res.LimitedAxes, "y")
	}
	return res, nil
}

// clampAxis returns the center coordinate nearest to v at which an object
// with the given half extent fits between min and max with the margin
// respected. An unsatisfiable range collapses to the axis midpoint.
func clampAxis(v, half, min, max, margin float64) float64 {
	lo := min + margin + half
	hi := max - margin - half
	if lo > hi {
		return (min + max) / 2
	}
	return geometry.Clamp(v, lo, hi)
}
