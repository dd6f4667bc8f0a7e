package genart

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

const (
	// circleMargin is reserved at the right and bottom canvas edges so a
	// circle always has room to extend from its bounding box origin.
	circleMargin = 10

	// maxCircleStroke is the widest line DrawCircle samples.
	maxCircleStroke = 5
)

// CircleOptions controls DrawCircle.
type CircleOptions struct {
	// Fill draws a filled pie slice instead of an arc outline.
	Fill bool

	// MaxDiameter caps the bounding box width. Zero means the box may extend
	// to the right canvas edge.
	MaxDiameter int

	// Range is the angular span to draw. The zero value draws a full circle;
	// use DrawSlice for spans starting at an arbitrary angle.
	Range AngularRange
}

// Circle is a circle, pie slice or arc drawn by DrawCircle or DrawSlice.
type Circle struct {
	Bounds BoundingBox
	Range  AngularRange
	Fill   bool
	Color  color.NRGBA
	Width  int
}

// DrawCircle draws a random circle on r.
//
// The bounding box origin is sampled from [0,W-10]x[0,H-10]. The right edge
// x1 is sampled from (x0,W], or (x0,x0+1+MaxDiameter] when MaxDiameter is
// set, and y1 = y0 + (x1-x0) so the box is always square. One color and one
// stroke width in [0,5] are sampled per call.
func DrawCircle(r Rasterizer, rng *rand.Rand, size Size, opts CircleOptions) (Circle, error) {
	if opts.Range.IsZero() {
		opts.Range = FullCircle
	}
	return drawCircle(r, rng, size, opts)
}

func drawCircle(r Rasterizer, rng *rand.Rand, size Size, opts CircleOptions) (Circle, error) {
	if !size.Valid() {
		return Circle{}, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	if size.Width < circleMargin || size.Height < circleMargin {
		return Circle{}, fmt.Errorf("%w: %s is below %dpx", ErrCanvasTooSmall, size, circleMargin)
	}
	if opts.MaxDiameter < 0 {
		return Circle{}, fmt.Errorf("genart: negative max diameter %d", opts.MaxDiameter)
	}

	x0 := rng.IntN(size.Width - circleMargin + 1)
	y0 := rng.IntN(size.Height - circleMargin + 1)

	var x1 int
	if opts.MaxDiameter == 0 {
		x1 = x0 + 1 + rng.IntN(size.Width-x0)
	} else {
		x1 = x0 + 1 + rng.IntN(opts.MaxDiameter+1)
	}
	y1 := y0 + (x1 - x0)

	c := Circle{
		Bounds: BoundingBox{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Range:  opts.Range,
		Fill:   opts.Fill,
		Color:  SampleColor(rng, true),
		Width:  rng.IntN(maxCircleStroke + 1),
	}

	var err error
	if c.Fill {
		err = r.PieSlice(c.Bounds, c.Range, c.Color, c.Width)
	} else {
		err = r.Arc(c.Bounds, c.Range, c.Color, c.Width)
	}
	if err != nil {
		return c, fmt.Errorf("genart: draw circle: %w", err)
	}
	return c, nil
}
