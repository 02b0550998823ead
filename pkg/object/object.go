// Package object defines the placeable objects the editor manipulates: tables,
// equipment, imported shapes, and text boxes positioned on a venue floor plan.
//
// Each object carries a tagged union of size parameters, one variant per kind.
// Code that switches on the kind must handle every variant; an unrecognized
// kind is a programming error and surfaces as a structured error rather than
// a silent skip (silent skips have caused rendering desync before).
//
// # Persisted Shape
//
// Objects serialize to the project JSON layout as:
//
//	{"id": "...", "type": "rectangle", "position": {"x": 400, "y": 300},
//	 "properties": {"width": 100, "height": 60, "rotation": 0},
//	 "style": {"fill": "#d9e8fb", "stroke": "#2b6cb0"}}
//
// The "properties" object holds the variant fields for the object's kind.
package object

import (
	"github.com/google/uuid"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
)

// Kind discriminates the size-parameter union.
type Kind string

// Object kinds.
const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindImported  Kind = "imported"
	KindTextBox   Kind = "text"
)

// SizeParams is the tagged union of per-kind size parameters.
// Exactly one concrete type exists per Kind.
type SizeParams interface {
	Kind() Kind
}

// RectangleParams sizes a rectangular table or equipment footprint.
type RectangleParams struct {
	WidthMm     float64
	HeightMm    float64
	RotationDeg float64
}

// Kind implements SizeParams.
func (RectangleParams) Kind() Kind { return KindRectangle }

// CircleParams sizes a round table.
type CircleParams struct {
	RadiusMm float64
}

// Kind implements SizeParams.
func (CircleParams) Kind() Kind { return KindCircle }

// ImportedParams sizes a shape imported from an external drawing.
// SourceRef identifies the import source; it is opaque to the layout engine.
type ImportedParams struct {
	WidthMm     float64
	HeightMm    float64
	RotationDeg float64
	SourceRef   string
}

// Kind implements SizeParams.
func (ImportedParams) Kind() Kind { return KindImported }

// TextBoxParams sizes a text annotation. Width and height are derived from
// the text content and font by the (external) text measurement layer; the
// engine treats them as given.
type TextBoxParams struct {
	WidthMm  float64
	HeightMm float64
	Text     string
}

// Kind implements SizeParams.
func (TextBoxParams) Kind() Kind { return KindTextBox }

// Style holds the visual attributes of an object. The layout engine never
// reads these; they ride along for the persisted shape and rendering.
type Style struct {
	Fill          string  `json:"fill,omitempty"`
	Stroke        string  `json:"stroke,omitempty"`
	StrokeWidthMm float64 `json:"stroke_width,omitempty"`
	Opacity       float64 `json:"opacity,omitempty"`
}

// Object is a single placeable object on the floor plan.
// Position is the object's center point in millimeters. The position is the
// only field the drag engine mutates; everything else is set at creation.
type Object struct {
	ID       string
	Position geometry.Point
	Size     SizeParams
	Style    Style
}

// NewID mints a unique object identifier. Uniqueness across the session is
// the only hard requirement; IDs are not sortable.
func NewID() string {
	return uuid.NewString()
}

// HalfExtents returns the half-width and half-height of the object's
// axis-aligned bounding box.
//
// Rotation is deliberately ignored: rotated rectangles bound as if
// axis-aligned at their unrotated size. Downstream overlap and boundary
// checks assume this box.
//
// Zero or negative sizes yield degenerate (possibly inverted) extents;
// callers must not assume non-degeneracy. An unknown kind returns an
// UNKNOWN_KIND error.
func (o *Object) HalfExtents() (hw, hh float64, err error) {
	switch p := o.Size.(type) {
	case RectangleParams:
		return p.WidthMm / 2, p.HeightMm / 2, nil
	case CircleParams:
		return p.RadiusMm, p.RadiusMm, nil
	case ImportedParams:
		return p.WidthMm / 2, p.HeightMm / 2, nil
	case TextBoxParams:
		return p.WidthMm / 2, p.HeightMm / 2, nil
	default:
		return 0, 0, errors.New(errors.ErrCodeUnknownKind, "unknown object kind %T", o.Size)
	}
}

// Bounds returns the object's axis-aligned bounding box at its current
// position.
func (o *Object) Bounds() (geometry.BoundingBox, error) {
	return o.BoundsAt(o.Position)
}

// BoundsAt returns the object's bounding box as if it were centered at pos,
// without mutating the object. Drag-move and placement probing use this to
// test hypothetical positions.
func (o *Object) BoundsAt(pos geometry.Point) (geometry.BoundingBox, error) {
	hw, hh, err := o.HalfExtents()
	if err != nil {
		return geometry.BoundingBox{}, err
	}
	return geometry.BoxAround(pos, hw, hh), nil
}

// Kind returns the object's kind, or empty string if the size union holds an
// unknown type.
func (o *Object) Kind() Kind {
	if o.Size == nil {
		return ""
	}
	return o.Size.Kind()
}
