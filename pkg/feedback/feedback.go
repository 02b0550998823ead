// Package feedback turns validation outcomes into the transient, user-facing
// messages shown near the pointer while editing: snap-backs, proximity
// warnings, rejections, confirmations.
//
// Feedback is fire-and-forget. Losing a record affects user experience only,
// never correctness, and no acknowledgment flows back from the display layer.
package feedback

import (
	"fmt"
	"time"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/overlap"
)

// Type classifies a feedback record.
type Type string

// Feedback types.
const (
	TypePlacementAccepted Type = "placement_accepted"
	TypePlacementRejected Type = "placement_rejected"
	TypeBoundaryLimited   Type = "boundary_limited"
	TypeProximityWarning  Type = "proximity_warning"
	TypeOverlapWarning    Type = "overlap_warning"
	TypeSnapBack          Type = "snap_back"
	TypeMoveCommitted     Type = "move_committed"
	TypeDragCanceled      Type = "drag_canceled"
)

// Severity grades a feedback record for display styling.
type Severity string

// Feedback severities.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Display durations. Errors linger; confirmations get out of the way.
const (
	DurationShort = 2 * time.Second
	DurationLong  = 5 * time.Second
)

// Feedback is one user-facing message. SuggestedPosition, when set, is the
// nearest valid position the user could move to instead.
type Feedback struct {
	Type              Type            `json:"type"`
	Message           string          `json:"message"`
	Severity          Severity        `json:"severity"`
	Duration          time.Duration   `json:"duration"`
	SuggestedPosition *geometry.Point `json:"suggested_position,omitempty"`
}

// Notifier is the display surface feedback is pushed to. It is injected into
// the engine at construction so the engine stays free of display state; id
// identifies the on-screen slot (typically the object id) so a newer record
// replaces an older one instead of stacking.
type Notifier interface {
	Show(id string, fb Feedback)
	Hide(id string)
}

// NopNotifier discards all feedback. Useful for headless validation runs and
// tests that do not assert on messages.
type NopNotifier struct{}

// Show implements Notifier.
func (NopNotifier) Show(string, Feedback) {}

// Hide implements Notifier.
func (NopNotifier) Hide(string) {}

// PlacementAccepted describes a successful placement click.
func PlacementAccepted(pos geometry.Point) Feedback {
	return Feedback{
		Type:     TypePlacementAccepted,
		Message:  fmt.Sprintf("placed at (%.1f, %.1f)", pos.X, pos.Y),
		Severity: SeveritySuccess,
		Duration: DurationShort,
	}
}

// PlacementRejected describes a refused placement click, with the nearest
// valid position as a suggestion when one exists.
func PlacementRejected(br boundary.Result, or overlap.Result, suggested *geometry.Point) Feedback {
	fb := Feedback{
		Type:              TypePlacementRejected,
		Message:           rejectionMessage(br, or),
		Severity:          SeverityError,
		Duration:          DurationLong,
		SuggestedPosition: suggested,
	}
	if suggested != nil {
		fb.Message += fmt.Sprintf("; nearest valid position (%.1f, %.1f)", suggested.X, suggested.Y)
	}
	return fb
}

// BoundaryLimited describes a drag position that was clamped to the venue.
func BoundaryLimited(axes []string) Feedback {
	return Feedback{
		Type:     TypeBoundaryLimited,
		Message:  fmt.Sprintf("held inside the venue boundary (%s)", axisList(axes)),
		Severity: SeverityWarning,
		Duration: DurationShort,
	}
}

// Proximity describes an object close to, but not violating, the boundary.
func Proximity(distanceMm float64) Feedback {
	return Feedback{
		Type:     TypeProximityWarning,
		Message:  fmt.Sprintf("%.0f mm from the venue boundary", distanceMm),
		Severity: SeverityInfo,
		Duration: DurationShort,
	}
}

// OverlapWarning describes a non-blocking overlap during drag.
func OverlapWarning(r overlap.Result) Feedback {
	msg := "overlapping another object"
	if w := r.Worst(); w != nil {
		msg = fmt.Sprintf("overlapping %s by %.1f%%", w.OtherID, w.Percent)
	}
	return Feedback{
		Type:     TypeOverlapWarning,
		Message:  msg,
		Severity: SeverityWarning,
		Duration: DurationShort,
	}
}

// SnapBack describes a drag whose final position was invalid and was rolled
// back to where it started.
func SnapBack(br boundary.Result, or overlap.Result, suggested *geometry.Point) Feedback {
	fb := Feedback{
		Type:              TypeSnapBack,
		Message:           "moved back: " + rejectionMessage(br, or),
		Severity:          SeverityError,
		Duration:          DurationLong,
		SuggestedPosition: suggested,
	}
	if suggested != nil {
		fb.Message += fmt.Sprintf("; try (%.1f, %.1f)", suggested.X, suggested.Y)
	}
	return fb
}

// MoveCommitted describes a successful drag.
func MoveCommitted(distanceMm float64) Feedback {
	return Feedback{
		Type:     TypeMoveCommitted,
		Message:  fmt.Sprintf("moved %.1f mm", distanceMm),
		Severity: SeveritySuccess,
		Duration: DurationShort,
	}
}

// DragCanceled describes an explicitly canceled drag.
func DragCanceled() Feedback {
	return Feedback{
		Type:     TypeDragCanceled,
		Message:  "drag canceled",
		Severity: SeverityInfo,
		Duration: DurationShort,
	}
}

// rejectionMessage summarizes why a position was refused, boundary violations
// first since those are spatial hard stops.
func rejectionMessage(br boundary.Result, or overlap.Result) string {
	if errs := br.Errors(); len(errs) > 0 {
		sides := make([]string, len(errs))
		for i, v := range errs {
			sides[i] = fmt.Sprintf("%s by %.1f mm", v.Side, v.MagnitudeMm)
		}
		return "outside the venue boundary: " + joinAnd(sides)
	}
	if w := or.Worst(); w != nil {
		return fmt.Sprintf("overlaps %s by %.1f%%", w.OtherID, w.Percent)
	}
	return "position is not valid"
}

func axisList(axes []string) string {
	if len(axes) == 0 {
		return "position"
	}
	return joinAnd(axes)
}

func joinAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		out := parts[0]
		for _, p := range parts[1 : len(parts)-1] {
			out += ", " + p
		}
		return out + " and " + parts[len(parts)-1]
	}
}
