package genart

import "image/color"

// Rasterizer is the set of drawing primitives the shape generators need.
//
// Widths are stroke widths in pixels; zero means the thinnest visible line.
// Angles in an AngularRange are degrees clockwise from 3 o'clock and are
// passed through without normalization.
type Rasterizer interface {
	// Line strokes the segment p0-p1.
	Line(p0, p1 Point, c color.Color, width int) error

	// PieSlice fills the circular sector inscribed in b over r.
	PieSlice(b BoundingBox, r AngularRange, c color.Color, width int) error

	// Arc strokes the circle boundary inscribed in b over r without filling.
	Arc(b BoundingBox, r AngularRange, c color.Color, width int) error
}
