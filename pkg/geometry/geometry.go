// Package geometry provides the primitive spatial types for the venue layout
// editor. All coordinates and sizes are in millimeters: the editor works at a
// 1 display-unit = 1 mm scale, so venue space and display space share units.
package geometry

import "math"

// PrecisionMm is the position precision the editor commits to: one decimal
// digit, i.e. 0.1 mm. Pointer-derived positions are rounded to this precision
// before they are stored.
const PrecisionMm = 0.1

// Point is a position in venue space, in millimeters.
// For placed objects it refers to the object's center.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Round returns the point with both coordinates rounded to 0.1 mm.
func (p Point) Round() Point {
	return Point{X: RoundMm(p.X), Y: RoundMm(p.Y)}
}

// DistanceTo returns the Euclidean distance to q in millimeters.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// RoundMm rounds v to one decimal digit (0.1 mm).
func RoundMm(v float64) float64 {
	return math.Round(v*10) / 10
}

// BoundingBox is an axis-aligned rectangle in venue space.
// A box with MaxX < MinX or MaxY < MinY is inverted (negative extent); such
// boxes arise from degenerate object sizes and are handled, not rejected.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the box.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the box.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the center point of the box.
func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Area returns the area of the box, or 0 for degenerate boxes.
func (b BoundingBox) Area() float64 {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersects reports whether b and o overlap with positive area.
// Boxes that merely touch along an edge do not intersect.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.IntersectionArea(o) > 0
}

// IntersectionArea returns the area shared by b and o, or 0 if they are
// disjoint or either box is degenerate.
func (b BoundingBox) IntersectionArea(o BoundingBox) float64 {
	w := math.Min(b.MaxX, o.MaxX) - math.Max(b.MinX, o.MinX)
	h := math.Min(b.MaxY, o.MaxY) - math.Max(b.MinY, o.MinY)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Contains reports whether p lies inside or on the edge of b.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// BoxAround returns the axis-aligned box centered on p with the given half
// extents. Negative half extents produce an inverted box.
func BoxAround(p Point, halfWidth, halfHeight float64) BoundingBox {
	return BoundingBox{
		MinX: p.X - halfWidth,
		MinY: p.Y - halfHeight,
		MaxX: p.X + halfWidth,
		MaxY: p.Y + halfHeight,
	}
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
