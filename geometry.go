package genart

import (
	"fmt"
	"image"
)

// Size is a canvas size in pixels.
type Size struct {
	Width, Height int
}

// Valid reports whether both dimensions are at least one pixel.
func (s Size) Valid() bool {
	return s.Width >= 1 && s.Height >= 1
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// BoundingBox is the axis-aligned box (X0,Y0)-(X1,Y1) enclosing a shape.
type BoundingBox struct {
	X0, Y0, X1, Y1 int
}

// Width returns X1 - X0.
func (b BoundingBox) Width() int {
	return b.X1 - b.X0
}

// Height returns Y1 - Y0.
func (b BoundingBox) Height() int {
	return b.Y1 - b.Y0
}

// IsSquare reports whether the box is a non-empty square, which is what
// circles are inscribed in.
func (b BoundingBox) IsSquare() bool {
	return b.X0 < b.X1 && b.Width() == b.Height()
}

// Center returns the center of the box.
func (b BoundingBox) Center() (x, y float64) {
	return float64(b.X0+b.X1) / 2, float64(b.Y0+b.Y1) / 2
}

func (b BoundingBox) rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1, b.Y1)
}

// Radius returns half the width of the box.
func (b BoundingBox) Radius() float64 {
	return float64(b.Width()) / 2
}

// AngularRange is an arc span in degrees. Stop may be greater than 360;
// ranges are never normalized.
type AngularRange struct {
	Start, Stop int
}

// FullCircle is the range of a complete circle.
var FullCircle = AngularRange{Start: 0, Stop: 360}

// Span returns Stop - Start.
func (r AngularRange) Span() int {
	return r.Stop - r.Start
}

// IsZero reports whether r is the zero value.
func (r AngularRange) IsZero() bool {
	return r == AngularRange{}
}
