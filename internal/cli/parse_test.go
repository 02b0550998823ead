package cli

import (
	"testing"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geometry.Point
		wantErr bool
	}{
		{"200,150", geometry.Point{X: 200, Y: 150}, false},
		{"200.5, 150.25", geometry.Point{X: 200.5, Y: 150.25}, false},
		{"-10,300", geometry.Point{X: -10, Y: 300}, false},
		{"200", geometry.Point{}, true},
		{"a,b", geometry.Point{}, true},
		{"1,2,3", geometry.Point{}, true},
		{"", geometry.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parsePoint(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDims(t *testing.T) {
	tests := []struct {
		in           string
		wantW, wantH float64
		wantErr      bool
	}{
		{"800x600", 800, 600, false},
		{"1800X750", 1800, 750, false},
		{"100.5x60.25", 100.5, 60.25, false},
		{"800", 0, 0, true},
		{"800x600x10", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseDims(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDims(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (w != tt.wantW || h != tt.wantH) {
				t.Errorf("parseDims(%q) = (%g, %g), want (%g, %g)", tt.in, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestParseSizeParams(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		size     string
		text     string
		radius   float64
		rotation float64
		want     object.SizeParams
		wantErr  bool
	}{
		{
			name: "rectangle",
			kind: "rectangle", size: "100x60", rotation: 45,
			want: object.RectangleParams{WidthMm: 100, HeightMm: 60, RotationDeg: 45},
		},
		{
			name: "circle",
			kind: "circle", radius: 40,
			want: object.CircleParams{RadiusMm: 40},
		},
		{
			name: "text box",
			kind: "text", size: "120x40", text: "Exit",
			want: object.TextBoxParams{WidthMm: 120, HeightMm: 40, Text: "Exit"},
		},
		{name: "rectangle without size", kind: "rectangle", wantErr: true},
		{name: "circle without radius", kind: "circle", wantErr: true},
		{name: "text without size", kind: "text", text: "Exit", wantErr: true},
		{name: "unknown kind", kind: "triangle", size: "10x10", wantErr: true},
		{name: "negative dimensions", kind: "rectangle", size: "-5x-5", wantErr: true},
		{name: "zero height", kind: "rectangle", size: "100x0", wantErr: true},
		{name: "negative radius", kind: "circle", radius: -40, wantErr: true},
		{name: "kilometer-scale width", kind: "rectangle", size: "2000000x600", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSizeParams(tt.kind, tt.size, tt.text, tt.radius, tt.rotation)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSizeParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseSizeParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSizeParamsInvalidSizeCode(t *testing.T) {
	_, err := parseSizeParams("rectangle", "-5x-5", "", 0, 0)
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Fatalf("parseSizeParams() error = %v, want code %s", err, errors.ErrCodeInvalidSize)
	}
}
