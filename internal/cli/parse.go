package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

// parsePoint parses "X,Y" in millimeters into a point.
func parsePoint(s string) (geometry.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("position %q: want X,Y in millimeters", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("position %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("position %q: bad y: %w", s, err)
	}
	return geometry.Point{X: x, Y: y}, nil
}

// parseDims parses "WxH" in millimeters.
func parseDims(s string) (w, h float64, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size %q: want WxH in millimeters", s)
	}
	w, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	h, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	return w, h, nil
}

// validateDims range-checks user-entered width and height.
func validateDims(w, h float64) error {
	if err := errors.ValidateSizeMm("width", w); err != nil {
		return err
	}
	return errors.ValidateSizeMm("height", h)
}

// validateSizeInput range-checks user-supplied size parameters before they
// reach the engine. The geometry layer tolerates degenerate sizes; values
// from flags or request bodies must not be.
func validateSizeInput(size object.SizeParams) error {
	switch p := size.(type) {
	case object.RectangleParams:
		return validateDims(p.WidthMm, p.HeightMm)
	case object.CircleParams:
		return errors.ValidateSizeMm("radius", p.RadiusMm)
	case object.ImportedParams:
		return validateDims(p.WidthMm, p.HeightMm)
	case object.TextBoxParams:
		return validateDims(p.WidthMm, p.HeightMm)
	default:
		return nil
	}
}

// parseSizeParams builds size parameters from the shape flags of the place
// command.
//
// Accepted combinations:
//   - rectangle: --size WxH, optional --rotation
//   - circle: --radius R
//   - text: --size WxH and --text
func parseSizeParams(kind, size, text string, radius, rotation float64) (object.SizeParams, error) {
	var params object.SizeParams
	switch object.Kind(kind) {
	case object.KindRectangle:
		if size == "" {
			return nil, fmt.Errorf("rectangle needs --size WxH")
		}
		w, h, err := parseDims(size)
		if err != nil {
			return nil, err
		}
		params = object.RectangleParams{WidthMm: w, HeightMm: h, RotationDeg: rotation}

	case object.KindCircle:
		if radius == 0 {
			return nil, fmt.Errorf("circle needs --radius in millimeters")
		}
		params = object.CircleParams{RadiusMm: radius}

	case object.KindTextBox:
		if size == "" {
			return nil, fmt.Errorf("text needs --size WxH")
		}
		w, h, err := parseDims(size)
		if err != nil {
			return nil, err
		}
		params = object.TextBoxParams{WidthMm: w, HeightMm: h, Text: text}

	default:
		return nil, fmt.Errorf("unknown object kind %q (want rectangle, circle, or text)", kind)
	}

	if err := validateSizeInput(params); err != nil {
		return nil, err
	}
	return params, nil
}
