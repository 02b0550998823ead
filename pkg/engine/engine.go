// Package engine implements the drag and placement orchestrator: the state
// machine that coordinates boundary checks, overlap checks, position
// clamping, and user feedback across the three interaction phases of the
// editor (placement click, live drag, drag end).
//
// The engine is the single writer of object positions. Every operation is a
// synchronous recomputation from current inputs; after any call returns, the
// shared object list reflects the new state and is safe to re-read. There is
// no background work and no locking; the host event loop serializes calls.
//
// # Interaction State Machine
//
// Two non-overlapping modes exist: placement (a single click while a
// placement tool is armed) and dragging (pointer-down on an existing object
// through pointer-up). A drag session is ephemeral; it never survives
// EndDrag or CancelDrag, including on error paths.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/feedback"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/overlap"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/venue"
)

// MinIntentionalDragMm is the minimum pointer travel for a drag to count as
// intentional. Anything shorter is treated as jitter or an accidental click
// and reverts to the start position, so tiny involuntary movements never get
// recorded as edits.
const MinIntentionalDragMm = 3.0

// Options configures an Engine. The zero value is usable: defaults are
// applied by New.
type Options struct {
	// Constraints is the boundary policy for the session. Nil means
	// boundary.DefaultConstraints(); a non-nil value is used as given, so
	// an explicitly disabled policy stays disabled.
	Constraints *boundary.Constraints

	// OverlapWarnPercent is the tolerated overlap percentage before an
	// overlap blocks commit. Zero means overlap.DefaultWarnPercent.
	OverlapWarnPercent float64

	// MinDragMm overrides MinIntentionalDragMm when positive.
	MinDragMm float64

	// Notifier receives user-facing feedback. Nil means discard.
	Notifier feedback.Notifier

	// Logger for diagnostic output. Nil means discard.
	Logger *log.Logger
}

// Engine orchestrates placement and dragging against one venue outline and
// one shared object list.
type Engine struct {
	venueBounds geometry.BoundingBox
	objects     *object.List
	constraints boundary.Constraints
	warnPercent float64
	minDragMm   float64
	notifier    feedback.Notifier
	logger      *log.Logger

	drag *dragSession
}

// dragSession is the ephemeral state of one in-progress drag.
type dragSession struct {
	objectID string
	start    geometry.Point
	current  geometry.Point
	valid    bool
}

// New creates an engine for the given venue and object list.
// The outline and constraints are fixed for the engine's lifetime; loading a
// new venue means building a new engine.
func New(outline venue.Outline, objects *object.List, opts Options) (*Engine, error) {
	if err := outline.Validate(); err != nil {
		return nil, err
	}
	if objects == nil {
		objects = object.NewList()
	}
	if opts.OverlapWarnPercent == 0 {
		opts.OverlapWarnPercent = overlap.DefaultWarnPercent
	}
	if opts.MinDragMm <= 0 {
		opts.MinDragMm = MinIntentionalDragMm
	}
	if opts.Notifier == nil {
		opts.Notifier = feedback.NopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.Constraints == nil {
		c := boundary.DefaultConstraints()
		opts.Constraints = &c
	}

	return &Engine{
		venueBounds: outline.Bounds(),
		objects:     objects,
		constraints: *opts.Constraints,
		warnPercent: opts.OverlapWarnPercent,
		minDragMm:   opts.MinDragMm,
		notifier:    opts.Notifier,
		logger:      opts.Logger,
	}, nil
}

// Objects returns the shared object list the engine writes to.
func (e *Engine) Objects() *object.List { return e.objects }

// VenueBounds returns the venue bounding box the engine validates against.
func (e *Engine) VenueBounds() geometry.BoundingBox { return e.venueBounds }

// Constraints returns the session's boundary constraints.
func (e *Engine) Constraints() boundary.Constraints { return e.constraints }

// Dragging reports whether a drag session is active, and for which object.
func (e *Engine) Dragging() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.objectID, true
}

// validate runs the boundary and overlap checks for an object probed at pos,
// against the live object list.
func (e *Engine) validate(o *object.Object, pos geometry.Point) (boundary.Result, overlap.Result, error) {
	br, err := boundary.CheckObject(o, pos, e.venueBounds, e.constraints)
	if err != nil {
		return boundary.Result{}, overlap.Result{}, err
	}
	or, err := overlap.Check(o, pos, e.objects.Others(o.ID), e.warnPercent)
	if err != nil {
		return boundary.Result{}, overlap.Result{}, err
	}
	return br, or, nil
}

// suggest computes the nearest valid position for o around pos, for use in
// rejection feedback. Best effort: a nil pointer means no suggestion.
func (e *Engine) suggest(o *object.Object, pos geometry.Point) *geometry.Point {
	p, err := boundary.Constrain(o, pos, e.venueBounds, e.constraints)
	if err != nil {
		return nil
	}
	p = p.Round()
	return &p
}

// ValidateAll re-checks every placed object against the venue and the other
// objects. Used by headless validation (CLI, load-time checks); the
// interactive paths validate incrementally.
func (e *Engine) ValidateAll() (map[string]PlacementCheck, error) {
	out := make(map[string]PlacementCheck, e.objects.Len())
	for _, o := range e.objects.All() {
		br, or, err := e.validate(o, o.Position)
		if err != nil {
			return nil, err
		}
		out[o.ID] = PlacementCheck{Boundary: br, Overlap: or, Valid: br.Valid && or.Valid}
	}
	return out, nil
}

// PlacementCheck bundles the two validation results for one position.
type PlacementCheck struct {
	Valid    bool            `json:"valid"`
	Boundary boundary.Result `json:"boundary"`
	Overlap  overlap.Result  `json:"overlap"`
}
