// Package boundary implements the venue boundary constraint checks for the
// layout engine: validity of a placement against the venue outline, per-side
// violation reporting, and clamping of invalid positions to the nearest valid
// ones.
//
// All checks work on axis-aligned bounding boxes in millimeters. Results are
// plain values, never errors: these functions run on every pointer move and
// must stay cheap and allocation-light.
package boundary

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

// DefaultWarnDistanceMm is the proximity threshold: an object edge within
// this distance of the venue boundary (but still inside) raises a warning.
const DefaultWarnDistanceMm = 30

// Constraints configures boundary checking for a session. Supplied once at
// engine construction and read-only afterwards.
type Constraints struct {
	// Enabled is the global on/off switch. When false every position is
	// valid and constraining is a no-op.
	Enabled bool `json:"enabled" toml:"enabled"`

	// MarginMm is the clearance an object must keep inside the venue edge.
	MarginMm float64 `json:"margin_mm" toml:"margin_mm"`

	// WarnDistanceMm is the proximity warning threshold, measured from the
	// margin line.
	WarnDistanceMm float64 `json:"warn_distance_mm" toml:"warn_distance_mm"`
}

// DefaultConstraints returns the default session constraints: enabled, no
// margin, 30 mm proximity warning.
func DefaultConstraints() Constraints {
	return Constraints{Enabled: true, MarginMm: 0, WarnDistanceMm: DefaultWarnDistanceMm}
}

// Side identifies a venue edge.
type Side string

// Venue sides.
const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Severity grades a violation.
type Severity string

// Violation severities. Warnings inform; only errors invalidate.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Violation reports one side's constraint state. For errors MagnitudeMm is
// how far the object has crossed past the allowed line; for warnings it is
// the remaining clearance to the margin line.
type Violation struct {
	Side        Side     `json:"side"`
	Severity    Severity `json:"severity"`
	MagnitudeMm float64  `json:"magnitude_mm"`
}

// Result is the outcome of a boundary check. Valid is true iff no
// error-severity violations exist; warnings never invalidate.
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// Errors returns only the error-severity violations.
func (r Result) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns only the warning-severity violations.
func (r Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			out = append(out, v)
		}
	}
	return out
}

// NearestEdgeDistanceMm returns the smallest warning clearance in the result,
// or -1 if no warnings are present. Used for proximity feedback.
func (r Result) NearestEdgeDistanceMm() float64 {
	nearest := -1.0
	for _, v := range r.Violations {
		if v.Severity != SeverityWarning {
			continue
		}
		if nearest < 0 || v.MagnitudeMm < nearest {
			nearest = v.MagnitudeMm
		}
	}
	return nearest
}

// Check compares an object's bounding box against the venue bounds under the
// given constraints.
//
// For each side the signed inward distance from the object edge to the venue
// edge is measured. A side whose distance falls below the margin is an error;
// a side sitting on or within WarnDistanceMm of the margin line is a warning.
// A distance of exactly the margin (flush placement) is valid.
func Check(objectBounds, venueBounds geometry.BoundingBox, c Constraints) Result {
	if !c.Enabled {
		return Result{Valid: true}
	}

	sides := [4]struct {
		side Side
		dist float64
	}{
		{SideLeft, objectBounds.MinX - venueBounds.MinX},
		{SideTop, objectBounds.MinY - venueBounds.MinY},
		{SideRight, venueBounds.MaxX - objectBounds.MaxX},
		{SideBottom, venueBounds.MaxY - objectBounds.MaxY},
	}

	res := Result{Valid: true}
	for _, s := range sides {
		clearance := s.dist - c.MarginMm
		switch {
		case clearance < 0:
			res.Valid = false
			res.Violations = append(res.Violations, Violation{
				Side:        s.side,
				Severity:    SeverityError,
				MagnitudeMm: -clearance,
			})
		case clearance <= c.WarnDistanceMm:
			res.Violations = append(res.Violations, Violation{
				Side:        s.side,
				Severity:    SeverityWarning,
				MagnitudeMm: clearance,
			})
		}
	}
	return res
}

// CheckObject is a convenience wrapper that computes the object's bounds at
// pos and checks them. It propagates the UNKNOWN_KIND error from the bounds
// calculation; spatial outcomes stay in the Result.
func CheckObject(o *object.Object, pos geometry.Point, venueBounds geometry.BoundingBox, c Constraints) (Result, error) {
	b, err := o.BoundsAt(pos)
	if err != nil {
		return Result{}, err
	}
	return Check(b, venueBounds, c), nil
}
