package genart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// coverageThreshold is the minimum scratch alpha at which a pixel counts as
// covered by a shape. Covered pixels take the shape color unblended.
const coverageThreshold = 0x80

var errCanvasClosed = errors.New("genart: draw on closed canvas")

// flushGPU flushes pending accelerator work on a scratch context.
var flushGPU = (*gg.Context).FlushGPU

// Canvas is a fixed-size pixel buffer with straight (non-premultiplied)
// alpha. Every primitive replaces the pixels it covers with its color,
// alpha included, so translucent shapes leave translucent pixels instead of
// blending with what is underneath.
//
// gg rasterizes each primitive onto a transparent scratch context sized to
// the primitive; its coverage decides which canvas pixels are written.
// A Canvas is owned by one image generation and must not be shared.
type Canvas struct {
	pix  *image.NRGBA
	size Size
}

// Ensure Canvas implements Rasterizer.
var _ Rasterizer = (*Canvas)(nil)

// NewCanvas creates a canvas of the given size filled with background.
func NewCanvas(size Size, background color.Color) (*Canvas, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	if background == nil {
		background = White
	}
	pix := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(pix, pix.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{pix: pix, size: size}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() Size {
	return c.size
}

// Image returns the canvas pixels. The image aliases the canvas buffer.
func (c *Canvas) Image() *image.NRGBA {
	return c.pix
}

// Close releases the canvas buffer.
func (c *Canvas) Close() error {
	c.pix = nil
	return nil
}

// Line strokes p0-p1 through pixel centers.
func (c *Canvas) Line(p0, p1 Point, col color.Color, width int) error {
	area := image.Rect(p0.X, p0.Y, p1.X, p1.Y).Canon()
	return c.paint(area, width, col, func(dc *gg.Context) error {
		dc.SetLineWidth(strokeWidth(width))
		dc.DrawLine(pixelCenter(p0.X), pixelCenter(p0.Y), pixelCenter(p1.X), pixelCenter(p1.Y))
		return dc.Stroke()
	})
}

// PieSlice fills the sector and, for a positive width, strokes its border
// in the same color. A span of 360 degrees or more fills the whole disc.
func (c *Canvas) PieSlice(b BoundingBox, r AngularRange, col color.Color, width int) error {
	if r.Span() <= 0 {
		return nil
	}
	cx, cy := b.Center()
	radius := b.Radius()

	return c.paint(b.rect(), width, col, func(dc *gg.Context) error {
		if r.Span() >= 360 {
			dc.DrawCircle(cx, cy, radius)
		} else {
			a1, a2 := radians(r.Start), radians(r.Stop)
			dc.MoveTo(cx, cy)
			dc.LineTo(cx+radius*math.Cos(a1), cy+radius*math.Sin(a1))
			dc.DrawArc(cx, cy, radius, a1, a2)
			dc.ClosePath()
		}

		if width <= 0 {
			return dc.Fill()
		}
		if err := dc.FillPreserve(); err != nil {
			dc.ClearPath()
			return err
		}
		dc.SetLineWidth(float64(width))
		return dc.Stroke()
	})
}

// Arc strokes the boundary of the circle inscribed in b over r.
func (c *Canvas) Arc(b BoundingBox, r AngularRange, col color.Color, width int) error {
	if r.Span() <= 0 {
		return nil
	}
	cx, cy := b.Center()
	radius := b.Radius()

	return c.paint(b.rect(), width, col, func(dc *gg.Context) error {
		dc.SetLineWidth(strokeWidth(width))
		if r.Span() >= 360 {
			dc.DrawCircle(cx, cy, radius)
		} else {
			dc.DrawArc(cx, cy, radius, radians(r.Start), radians(r.Stop))
		}
		return dc.Stroke()
	})
}

// paint runs render on an opaque scratch context covering area grown by the
// stroke width, then writes col into every canvas pixel the scratch covers.
// render works in canvas coordinates.
func (c *Canvas) paint(area image.Rectangle, width int, col color.Color, render func(dc *gg.Context) error) error {
	if c.pix == nil {
		return errCanvasClosed
	}
	pad := width + 2
	area = image.Rect(area.Min.X-pad, area.Min.Y-pad, area.Max.X+pad+1, area.Max.Y+pad+1).Intersect(c.pix.Bounds())
	if area.Empty() {
		return nil
	}

	dc := gg.NewContext(area.Dx(), area.Dy())
	defer func() { _ = dc.Close() }()
	dc.SetLineCap(gg.LineCapButt)
	dc.SetColor(color.White)
	dc.Translate(-float64(area.Min.X), -float64(area.Min.Y))

	if err := render(dc); err != nil {
		return err
	}
	if err := flushGPU(dc); err != nil {
		return fmt.Errorf("genart: flush gpu: %w", err)
	}
	c.stamp(area.Min, dc.Image(), color.NRGBAModel.Convert(col).(color.NRGBA))
	return nil
}

// stamp sets every pixel of c whose scratch alpha reaches coverageThreshold
// to col. origin is the canvas position of the scratch image's top left.
func (c *Canvas) stamp(origin image.Point, scratch image.Image, col color.NRGBA) {
	sb := scratch.Bounds()
	rgba, fast := scratch.(*image.RGBA)
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			var a uint8
			if fast {
				a = rgba.Pix[rgba.PixOffset(x, y)+3]
			} else {
				_, _, _, a32 := scratch.At(x, y).RGBA()
				a = uint8(a32 >> 8)
			}
			if a >= coverageThreshold {
				c.pix.SetNRGBA(origin.X+x-sb.Min.X, origin.Y+y-sb.Min.Y, col)
			}
		}
	}
}

// strokeWidth maps a zero width to a one pixel hairline.
func strokeWidth(width int) float64 {
	if width < 1 {
		return 1
	}
	return float64(width)
}

func pixelCenter(v int) float64 {
	return float64(v) + 0.5
}

func radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
