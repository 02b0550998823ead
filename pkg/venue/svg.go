package venue

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
)

// mmPerPx converts CSS pixels to millimeters at the SVG reference 96 dpi.
const mmPerPx = 25.4 / 96

// ParseSVG extracts the venue dimensions from an SVG outline document.
//
// Dimensions come from the root element's width/height attributes when
// present (supporting mm, cm, m, and px units; unitless values are treated
// as millimeters). When width/height are missing or percentages, the viewBox
// extent is used instead, interpreted as millimeters.
//
// Only the root <svg> element is inspected; the document body is never
// parsed. Shape extraction is the drawing layer's job, not the engine's.
func ParseSVG(r io.Reader) (Outline, error) {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return Outline{}, errors.New(errors.ErrCodeInvalidSVG, "no <svg> root element found")
		}
		if err != nil {
			return Outline{}, errors.Wrap(errors.ErrCodeInvalidSVG, err, "malformed SVG document")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return Outline{}, errors.New(errors.ErrCodeInvalidSVG, "root element is <%s>, expected <svg>", start.Name.Local)
		}
		return outlineFromRoot(start)
	}
}

// LoadSVG reads the venue outline from an SVG file on disk.
func LoadSVG(path string) (Outline, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Outline{}, errors.New(errors.ErrCodeFileNotFound, "SVG file not found: %s", path)
	}
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeInvalidSVG, err, "open %s", path)
	}
	defer f.Close()
	return ParseSVG(f)
}

func outlineFromRoot(start xml.StartElement) (Outline, error) {
	var widthAttr, heightAttr, viewBox string
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "width":
			widthAttr = a.Value
		case "height":
			heightAttr = a.Value
		case "viewBox":
			viewBox = a.Value
		}
	}

	width, wok := parseLength(widthAttr)
	height, hok := parseLength(heightAttr)
	if wok && hok {
		o := Outline{WidthMm: width, HeightMm: height}
		return o, o.Validate()
	}

	if viewBox == "" {
		return Outline{}, errors.New(errors.ErrCodeInvalidSVG, "SVG has no usable width/height attributes and no viewBox")
	}

	fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
	if len(fields) != 4 {
		return Outline{}, errors.New(errors.ErrCodeInvalidSVG, "malformed viewBox %q", viewBox)
	}
	vw, err1 := strconv.ParseFloat(fields[2], 64)
	vh, err2 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil {
		return Outline{}, errors.New(errors.ErrCodeInvalidSVG, "malformed viewBox %q", viewBox)
	}

	o := Outline{WidthMm: vw, HeightMm: vh}
	return o, o.Validate()
}

// parseLength converts an SVG length attribute to millimeters.
// Returns false for empty values and percentages, which force the viewBox
// fallback.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0, false
	}

	factor := 1.0
	for _, u := range []struct {
		suffix string
		factor float64
	}{
		{"mm", 1},
		{"cm", 10},
		{"px", mmPerPx},
		{"pt", 25.4 / 72},
		{"in", 25.4},
		{"m", 1000},
	} {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSuffix(s, u.suffix)
			factor = u.factor
			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v * factor, true
}
