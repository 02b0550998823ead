// Package venue models the venue outline a floor plan is built on.
//
// An outline is immutable per load: it is created when a background diagram
// is loaded and replaced wholesale on the next load, never partially updated.
// Its bounding box anchors all boundary constraint checks.
package venue

import (
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
)

// Outline is the venue floor outline, in millimeters.
type Outline struct {
	WidthMm  float64 `json:"width"`
	HeightMm float64 `json:"height"`
}

// Bounds returns the venue's bounding box, anchored at the origin.
func (o Outline) Bounds() geometry.BoundingBox {
	return geometry.BoundingBox{MinX: 0, MinY: 0, MaxX: o.WidthMm, MaxY: o.HeightMm}
}

// Validate checks that the outline has positive extent on both axes.
func (o Outline) Validate() error {
	if o.WidthMm <= 0 || o.HeightMm <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"venue outline must have positive dimensions, got %gx%g mm", o.WidthMm, o.HeightMm)
	}
	return nil
}
