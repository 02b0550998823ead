package engine

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/feedback"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/observability"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/overlap"
)

// MoveResult reports one processed drag-move event.
type MoveResult struct {
	// Position is the applied position after any per-axis clamping.
	Position geometry.Point

	// Limited is true when the boundary pulled the position back.
	Limited bool

	// LimitedAxes names the clamped axes.
	LimitedAxes []string

	// Feedback is the message emitted for this move, if any.
	Feedback *feedback.Feedback
}

// EndResult reports the outcome of drag-end.
type EndResult struct {
	// Committed is true when the drag's final position was kept.
	Committed bool

	// Reverted is true when the object was returned to its start position,
	// either because the drag was too short to be intentional or because
	// the final position failed validation.
	Reverted bool

	// Position is the object's position after the transition.
	Position geometry.Point

	// DistanceMm is the pointer travel between drag start and the rounded
	// final position.
	DistanceMm float64

	// Feedback is the message emitted, if any. Jitter reverts emit none.
	Feedback *feedback.Feedback
}

// StartDrag begins a drag session for the object with the given id.
// Only one session may be active at a time; starting a second is an error.
func (e *Engine) StartDrag(id string) error {
	if e.drag != nil {
		return errors.New(errors.ErrCodeDragActive, "drag already in progress for %q", e.drag.objectID)
	}
	o, err := e.objects.Get(id)
	if err != nil {
		return err
	}

	e.drag = &dragSession{
		objectID: id,
		start:    o.Position,
		current:  o.Position,
		valid:    true,
	}
	e.logger.Debug("drag start", "id", id, "x", o.Position.X, "y", o.Position.Y)
	observability.Interaction().OnDragStart(id)
	return nil
}

// MoveDrag processes one pointer-move event during an active drag.
//
// The proposed position is clamped per axis against the venue boundary (a
// valid axis is left exactly where the pointer put it), overlap against
// other objects is measured but never blocks the move, and the result is
// written to the shared object list in the same call, so the renderer always
// sees the position that was validated. This is the hot path: one boundary
// check, one pairwise overlap scan, no allocations beyond the results.
func (e *Engine) MoveDrag(pointer geometry.Point) (MoveResult, error) {
	if e.drag == nil {
		return MoveResult{}, errors.New(errors.ErrCodeNoDrag, "no drag in progress")
	}
	o, err := e.objects.Get(e.drag.objectID)
	if err != nil {
		return MoveResult{}, err
	}

	// Validate-then-apply as one step: every outcome is computed before the
	// shared list is touched, so a failed validation leaves no half-applied
	// position behind.
	limited, err := boundary.EnforceRealTimeLimits(o, pointer, e.venueBounds, e.constraints)
	if err != nil {
		return MoveResult{}, err
	}
	pos := limited.LimitedPosition

	br, err := boundary.CheckObject(o, pos, e.venueBounds, e.constraints)
	if err != nil {
		return MoveResult{}, err
	}
	or, err := overlap.Check(o, pos, e.objects.Others(o.ID), e.warnPercent)
	if err != nil {
		return MoveResult{}, err
	}

	if err := e.objects.SetPosition(o.ID, pos); err != nil {
		return MoveResult{}, err
	}
	e.drag.current = pos
	e.drag.valid = br.Valid && or.Valid

	res := MoveResult{Position: pos, Limited: limited.WasLimited, LimitedAxes: limited.LimitedAxes}
	switch {
	case limited.WasLimited:
		fb := feedback.BoundaryLimited(limited.LimitedAxes)
		res.Feedback = &fb
	case len(or.Overlaps) > 0:
		fb := feedback.OverlapWarning(or)
		res.Feedback = &fb
	case br.NearestEdgeDistanceMm() >= 0:
		fb := feedback.Proximity(br.NearestEdgeDistanceMm())
		res.Feedback = &fb
	}
	if res.Feedback != nil {
		e.notifier.Show(o.ID, *res.Feedback)
	} else {
		e.notifier.Hide(o.ID)
	}

	observability.Interaction().OnDragMove(o.ID, limited.WasLimited)
	return res, nil
}

// EndDrag completes the active drag session on pointer-up.
//
// The final position is rounded to 0.1 mm and re-validated against the live
// object list, not state captured at drag start. Too-short drags revert
// silently; invalid final positions snap back to the start position with a
// suggested alternative; valid ones are committed. The session is discarded
// on every path, including errors.
func (e *Engine) EndDrag() (EndResult, error) {
	if e.drag == nil {
		return EndResult{}, errors.New(errors.ErrCodeNoDrag, "no drag in progress")
	}
	session := e.drag
	defer func() { e.drag = nil }()

	o, err := e.objects.Get(session.objectID)
	if err != nil {
		return EndResult{}, err
	}

	final := session.current.Round()
	distance := session.start.DistanceTo(final)

	if distance < e.minDragMm {
		// Jitter, not an edit: restore the exact start position, no feedback.
		if err := e.objects.SetPosition(o.ID, session.start); err != nil {
			return EndResult{}, err
		}
		e.notifier.Hide(o.ID)
		e.logger.Debug("drag below threshold, reverted", "id", o.ID, "distance_mm", distance)
		observability.Interaction().OnDragEnd(o.ID, false, distance)
		return EndResult{Reverted: true, Position: session.start, DistanceMm: distance}, nil
	}

	br, or, err := e.validate(o, final)
	if err != nil {
		// Programming error mid-commit: put the object back where the drag
		// started rather than leaving the live-move position behind.
		if restoreErr := e.objects.SetPosition(o.ID, session.start); restoreErr != nil {
			return EndResult{}, restoreErr
		}
		return EndResult{}, err
	}

	if !br.Valid || !or.Valid {
		if err := e.objects.SetPosition(o.ID, session.start); err != nil {
			return EndResult{}, err
		}
		fb := feedback.SnapBack(br, or, e.suggest(o, final))
		e.notifier.Show(o.ID, fb)
		e.logger.Debug("drag rolled back", "id", o.ID, "x", final.X, "y", final.Y)
		observability.Interaction().OnDragEnd(o.ID, false, distance)
		return EndResult{Reverted: true, Position: session.start, DistanceMm: distance, Feedback: &fb}, nil
	}

	if err := e.objects.SetPosition(o.ID, final); err != nil {
		return EndResult{}, err
	}
	fb := feedback.MoveCommitted(distance)
	e.notifier.Show(o.ID, fb)
	e.logger.Debug("drag committed", "id", o.ID, "x", final.X, "y", final.Y, "distance_mm", distance)
	observability.Interaction().OnDragEnd(o.ID, true, distance)
	return EndResult{Committed: true, Position: final, DistanceMm: distance, Feedback: &fb}, nil
}

// CancelDrag aborts the active drag session: the object returns to its start
// position and the session is discarded. Canceling with no active session is
// a no-op. This covers Escape presses and lost pointer capture, which would
// otherwise leave the object wherever the last move put it.
func (e *Engine) CancelDrag() error {
	if e.drag == nil {
		return nil
	}
	session := e.drag
	e.drag = nil

	if err := e.objects.SetPosition(session.objectID, session.start); err != nil {
		return err
	}
	e.notifier.Show(session.objectID, feedback.DragCanceled())
	e.logger.Debug("drag canceled", "id", session.objectID)
	observability.Interaction().OnDragCancel(session.objectID)
	return nil
}
