package genart

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"
)

// call is one primitive recorded by recorder.
type call struct {
	op     string // "line", "pieslice" or "arc"
	p0, p1 Point
	bounds BoundingBox
	rng    AngularRange
	color  color.Color
	width  int
}

// recorder is a Rasterizer that records calls instead of drawing.
type recorder struct {
	calls []call
	err   error // returned from every call when set
}

func (r *recorder) Line(p0, p1 Point, c color.Color, width int) error {
	r.calls = append(r.calls, call{op: "line", p0: p0, p1: p1, color: c, width: width})
	return r.err
}

func (r *recorder) PieSlice(b BoundingBox, a AngularRange, c color.Color, width int) error {
	r.calls = append(r.calls, call{op: "pieslice", bounds: b, rng: a, color: c, width: width})
	return r.err
}

func (r *recorder) Arc(b BoundingBox, a AngularRange, c color.Color, width int) error {
	r.calls = append(r.calls, call{op: "arc", bounds: b, rng: a, color: c, width: width})
	return r.err
}

// panicker is a Rasterizer that panics on every call.
type panicker struct{}

func (panicker) Line(Point, Point, color.Color, int) error {
	panic(errors.New("line exploded"))
}

func (panicker) PieSlice(BoundingBox, AngularRange, color.Color, int) error {
	panic("pieslice exploded")
}

func (panicker) Arc(BoundingBox, AngularRange, color.Color, int) error {
	panic("arc exploded")
}

func testRand(t *testing.T, seed uint64) *rand.Rand {
	t.Helper()
	return NewRand(seed)
}

func TestSizeValid(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{1, 1}, true},
		{Size{256, 256}, true},
		{Size{0, 10}, false},
		{Size{10, 0}, false},
		{Size{-1, -1}, false},
	}
	for _, tt := range tests {
		if got := tt.size.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	b := BoundingBox{X0: 10, Y0: 20, X1: 30, Y1: 40}
	if b.Width() != 20 || b.Height() != 20 {
		t.Errorf("size = %dx%d, want 20x20", b.Width(), b.Height())
	}
	if !b.IsSquare() {
		t.Error("IsSquare() = false, want true")
	}
	if x, y := b.Center(); x != 20 || y != 30 {
		t.Errorf("Center() = (%v, %v), want (20, 30)", x, y)
	}
	if b.Radius() != 10 {
		t.Errorf("Radius() = %v, want 10", b.Radius())
	}
	if (BoundingBox{X0: 5, Y0: 5, X1: 5, Y1: 5}).IsSquare() {
		t.Error("empty box reported as square")
	}
	if (BoundingBox{X0: 0, Y0: 0, X1: 4, Y1: 5}).IsSquare() {
		t.Error("4x5 box reported as square")
	}
}

func TestAngularRange(t *testing.T) {
	if FullCircle.Span() != 360 {
		t.Errorf("FullCircle.Span() = %d, want 360", FullCircle.Span())
	}
	r := AngularRange{Start: 350, Stop: 380}
	if r.Span() != 30 {
		t.Errorf("Span() = %d, want 30", r.Span())
	}
	if r.IsZero() || !(AngularRange{}).IsZero() {
		t.Error("IsZero mismatch")
	}
}
