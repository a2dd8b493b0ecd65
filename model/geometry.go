package model

import "math"

// EMU is a length in English Metric Units.
type EMU int64

const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
)

// Inches converts a length in inches to EMU, truncating toward zero.
func Inches(v float64) EMU {
	return EMU(v * float64(EMUPerInch))
}

// Pt converts a length in points to EMU, truncating toward zero.
func Pt(v float64) EMU {
	return EMU(v * float64(EMUPerPoint))
}

// Inches returns the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / float64(EMUPerInch)
}

// Points returns the length in points.
func (e EMU) Points() float64 {
	return float64(e) / float64(EMUPerPoint)
}

// Point represents a 2D point in EMU
type Point struct {
	X, Y EMU
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box anchored at its top-left corner.
// Y grows downward, as on a slide.
type BBox struct {
	X      EMU // Left
	Y      EMU // Top
	Width  EMU
	Height EMU
}

// NewBBox creates a bounding box from EMU coordinates
func NewBBox(x, y, width, height EMU) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxInches creates a bounding box from coordinates in inches.
func NewBBoxInches(x, y, width, height float64) BBox {
	return BBox{X: Inches(x), Y: Inches(y), Width: Inches(width), Height: Inches(height)}
}

// Left returns the left edge X coordinate
func (b BBox) Left() EMU {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() EMU {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() EMU {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() EMU {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x := maxEMU(b.Left(), other.Left())
	y := maxEMU(b.Top(), other.Top())
	right := minEMU(b.Right(), other.Right())
	bottom := minEMU(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := minEMU(b.Left(), other.Left())
	y := minEMU(b.Top(), other.Top())
	right := maxEMU(b.Right(), other.Right())
	bottom := maxEMU(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Offset returns the box moved by dx, dy.
func (b BBox) Offset(dx, dy EMU) BBox {
	return BBox{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// Inset shrinks the box by margin on all sides.
func (b BBox) Inset(margin EMU) BBox {
	return BBox{
		X:      b.X + margin,
		Y:      b.Y + margin,
		Width:  b.Width - 2*margin,
		Height: b.Height - 2*margin,
	}
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Within reports whether b lies entirely inside outer.
func (b BBox) Within(outer BBox) bool {
	return b.Left() >= outer.Left() && b.Right() <= outer.Right() &&
		b.Top() >= outer.Top() && b.Bottom() <= outer.Bottom()
}

func minEMU(a, b EMU) EMU {
	if a < b {
		return a
	}
	return b
}

func maxEMU(a, b EMU) EMU {
	if a > b {
		return a
	}
	return b
}
