package genart

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// maxBoxStroke is the widest outline DrawBox samples.
const maxBoxStroke = 3

// Box is an axis-aligned rectangle outline drawn by DrawBox.
type Box struct {
	TopLeft     Point
	TopRight    Point
	BottomRight Point
	BottomLeft  Point
	Color       color.NRGBA
	Width       int
}

// Bounds returns the box corners as a BoundingBox.
func (b Box) Bounds() BoundingBox {
	return BoundingBox{X0: b.TopLeft.X, Y0: b.TopLeft.Y, X1: b.BottomRight.X, Y1: b.BottomRight.Y}
}

// Edges returns the four outline segments in drawing order:
// top, right, bottom, left.
func (b Box) Edges() [4][2]Point {
	return [4][2]Point{
		{b.TopLeft, b.TopRight},
		{b.TopRight, b.BottomRight},
		{b.BottomRight, b.BottomLeft},
		{b.BottomLeft, b.TopLeft},
	}
}

// DrawBox strokes a random rectangle outline on r.
//
// The top-left corner lands anywhere in [0,W-1]x[0,H-1] and the opposite
// corner in (x0,W]x(y0,H], so every box is at least 1x1. The single pixel
// box only happens when the top-left corner is (W-1,H-1). All four edges
// share one color and one stroke width in [0,3].
func DrawBox(r Rasterizer, rng *rand.Rand, size Size) (Box, error) {
	if !size.Valid() {
		return Box{}, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}

	x0 := rng.IntN(size.Width)
	y0 := rng.IntN(size.Height)
	x1 := x0 + 1 + rng.IntN(size.Width-x0)
	y1 := y0 + 1 + rng.IntN(size.Height-y0)

	box := Box{
		TopLeft:     Pt(x0, y0),
		TopRight:    Pt(x1, y0),
		BottomRight: Pt(x1, y1),
		BottomLeft:  Pt(x0, y1),
		Color:       SampleColor(rng, true),
		Width:       rng.IntN(maxBoxStroke + 1),
	}
	for _, e := range box.Edges() {
		if err := r.Line(e[0], e[1], box.Color, box.Width); err != nil {
			return box, fmt.Errorf("genart: draw box edge: %w", err)
		}
	}
	return box, nil
}
