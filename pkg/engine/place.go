package engine

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/feedback"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/observability"
)

// PlacementRequest seeds the hypothetical object for a placement click.
// It comes from the toolbar: the armed tool's kind, size, and style.
type PlacementRequest struct {
	Size  object.SizeParams
	Style object.Style
}

// PlacementResult reports the outcome of a placement click.
type PlacementResult struct {
	// Placed is the newly placed object, nil when the click was rejected.
	Placed *object.Object

	// Check holds the validation results for the clicked position.
	Check PlacementCheck

	// Feedback is the user-facing message that was emitted.
	Feedback feedback.Feedback
}

// PlaceObject handles a placement click at the given pointer position (in
// venue coordinates).
//
// The position is rounded to 0.1 mm, a hypothetical object is validated
// against the boundary and the other placed objects, and only if both checks
// pass is the object given a fresh id and appended to the list. A rejected
// click adds nothing and reports the nearest valid position as a suggestion;
// no partial state is ever observable.
func (e *Engine) PlaceObject(req PlacementRequest, pointer geometry.Point) (PlacementResult, error) {
	pos := pointer.Round()
	hypothetical := &object.Object{Position: pos, Size: req.Size, Style: req.Style}

	br, or, err := e.validate(hypothetical, pos)
	if err != nil {
		// Unknown kind or similar programming error: nothing was mutated.
		return PlacementResult{}, err
	}

	check := PlacementCheck{Boundary: br, Overlap: or, Valid: br.Valid && or.Valid}
	if !check.Valid {
		fb := feedback.PlacementRejected(br, or, e.suggest(hypothetical, pos))
		e.notifier.Show("placement", fb)
		e.logger.Debug("placement rejected", "kind", req.Size.Kind(), "x", pos.X, "y", pos.Y)
		observability.Interaction().OnPlacement(string(req.Size.Kind()), false)
		return PlacementResult{Check: check, Feedback: fb}, nil
	}

	hypothetical.ID = object.NewID()
	if err := e.objects.Add(hypothetical); err != nil {
		// Duplicate id from a fresh UUID would be an internal invariant
		// violation; the list is untouched when Add fails.
		return PlacementResult{}, err
	}

	fb := feedback.PlacementAccepted(pos)
	e.notifier.Show(hypothetical.ID, fb)
	e.logger.Debug("object placed", "id", hypothetical.ID, "kind", req.Size.Kind(), "x", pos.X, "y", pos.Y)
	observability.Interaction().OnPlacement(string(req.Size.Kind()), true)

	return PlacementResult{Placed: hypothetical, Check: check, Feedback: fb}, nil
}
