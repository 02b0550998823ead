// Package render produces SVG floor plans from a venue outline and its
// placed objects. One SVG user unit equals one millimeter, so the output
// overlays pixel-perfectly on the venue drawing it was traced from.
package render

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/engine"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/venue"
)

// Default drawing styles, used when an object carries no explicit style.
const (
	defaultFill        = "#d0e2f2"
	defaultStroke      = "#2b5d8a"
	defaultStrokeWidth = 2.0

	invalidFill   = "#f6c9c9"
	invalidStroke = "#a33030"

	venueFill   = "#ffffff"
	venueStroke = "#222222"
)

// SVGOption customizes one render.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	constraints boundary.Constraints
	checks      map[string]engine.PlacementCheck
	showMargin  bool
	showLabels  bool
	scale       float64
}

// WithValidation colors objects by their validation result: failing objects
// are drawn in the invalid palette.
func WithValidation(checks map[string]engine.PlacementCheck) SVGOption {
	return func(r *svgRenderer) { r.checks = checks }
}

// WithMarginGuide draws the margin line inside the venue edge.
func WithMarginGuide(c boundary.Constraints) SVGOption {
	return func(r *svgRenderer) {
		r.constraints = c
		r.showMargin = c.Enabled && c.MarginMm > 0
	}
}

// WithLabels draws each object's id beneath it.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = true } }

// WithScale multiplies the output pixel size while keeping millimeter
// coordinates. Scale 1 means one CSS pixel per millimeter.
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderSVG draws the venue outline and every object in the list.
// Objects render in id order so output is deterministic.
func RenderSVG(outline venue.Outline, objects *object.List, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	all := objects.All()
	slices.SortFunc(all, func(a, b *object.Object) int {
		return cmp.Compare(a.ID, b.ID)
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		outline.WidthMm, outline.HeightMm, outline.WidthMm*r.scale, outline.HeightMm*r.scale)

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		outline.WidthMm, outline.HeightMm, venueFill, venueStroke)

	if r.showMargin {
		m := r.constraints.MarginMm
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="8 4"/>`+"\n",
			m, m, outline.WidthMm-2*m, outline.HeightMm-2*m, venueStroke)
	}

	for _, o := range all {
		r.renderObject(&buf, o)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderObject(buf *bytes.Buffer, o *object.Object) {
	fill, stroke, width := objectStyle(o)
	if check, ok := r.checks[o.ID]; ok && !check.Valid {
		fill, stroke = invalidFill, invalidStroke
	}

	switch size := o.Size.(type) {
	case object.CircleParams:
		fmt.Fprintf(buf, `  <circle id="obj-%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
			o.ID, o.Position.X, o.Position.Y, size.RadiusMm, fill, stroke, width, opacityAttr(o))
	case object.TextBoxParams:
		r.renderRect(buf, o, size.WidthMm, size.HeightMm, 0, fill, stroke, width)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="%.1f">%s</text>`+"\n",
			o.Position.X, o.Position.Y, textSize(size.HeightMm), escapeText(size.Text))
	case object.RectangleParams:
		r.renderRect(buf, o, size.WidthMm, size.HeightMm, size.RotationDeg, fill, stroke, width)
	case object.ImportedParams:
		r.renderRect(buf, o, size.WidthMm, size.HeightMm, size.RotationDeg, fill, stroke, width)
	}

	if r.showLabels {
		b, err := o.Bounds()
		if err == nil {
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="10">%s</text>`+"\n",
				o.Position.X, b.MaxY+14, escapeText(o.ID))
		}
	}
}

// renderRect draws a rectangle centered on the object's position. Rotation
// is visual only; placement validation always uses the axis-aligned bounds.
func (r *svgRenderer) renderRect(buf *bytes.Buffer, o *object.Object, w, h, rotation float64, fill, stroke string, strokeWidth float64) {
	x := o.Position.X - w/2
	y := o.Position.Y - h/2

	transform := ""
	if rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.1f %.1f %.1f)"`, rotation, o.Position.X, o.Position.Y)
	}
	fmt.Fprintf(buf, `  <rect id="obj-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"%s%s/>`+"\n",
		o.ID, x, y, w, h, fill, stroke, strokeWidth, opacityAttr(o), transform)
}

func objectStyle(o *object.Object) (fill, stroke string, width float64) {
	fill, stroke, width = defaultFill, defaultStroke, defaultStrokeWidth
	if o.Style.Fill != "" {
		fill = o.Style.Fill
	}
	if o.Style.Stroke != "" {
		stroke = o.Style.Stroke
	}
	if o.Style.StrokeWidthMm > 0 {
		width = o.Style.StrokeWidthMm
	}
	return fill, stroke, width
}

func opacityAttr(o *object.Object) string {
	if o.Style.Opacity > 0 && o.Style.Opacity < 1 {
		return fmt.Sprintf(` opacity="%.2f"`, o.Style.Opacity)
	}
	return ""
}

// textSize scales text to roughly a third of the box height, clamped to
// stay legible on tiny boxes.
func textSize(boxHeight float64) float64 {
	s := boxHeight / 3
	if s < 8 {
		return 8
	}
	if s > 48 {
		return 48
	}
	return s
}

func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
