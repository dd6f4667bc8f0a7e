package genart

import (
	"errors"
	"testing"
)

func TestDrawBoxBounds(t *testing.T) {
	sizes := []Size{{1, 1}, {1, 50}, {50, 1}, {2, 2}, {256, 256}, {1000, 600}}
	for _, size := range sizes {
		t.Run(size.String(), func(t *testing.T) {
			rng := testRand(t, 7)
			for i := 0; i < 2000; i++ {
				box, err := DrawBox(&recorder{}, rng, size)
				if err != nil {
					t.Fatalf("DrawBox: %v", err)
				}
				b := box.Bounds()
				if b.Width() < 1 || b.Height() < 1 {
					t.Fatalf("box %+v smaller than 1x1", b)
				}
				if b.X0 < 0 || b.Y0 < 0 || b.X0 > size.Width-1 || b.Y0 > size.Height-1 {
					t.Fatalf("top-left %v outside [0,%d]x[0,%d]", box.TopLeft, size.Width-1, size.Height-1)
				}
				if b.X1 > size.Width || b.Y1 > size.Height {
					t.Fatalf("bottom-right %v beyond %v", box.BottomRight, size)
				}
				if box.Width < 0 || box.Width > 3 {
					t.Fatalf("stroke width %d outside [0,3]", box.Width)
				}
			}
		})
	}
}

func TestDrawBoxSinglePixel(t *testing.T) {
	rec := &recorder{}
	box, err := DrawBox(rec, testRand(t, 3), Size{1, 1})
	if err != nil {
		t.Fatalf("DrawBox(1x1): %v", err)
	}
	want := BoundingBox{X0: 0, Y0: 0, X1: 1, Y1: 1}
	if got := box.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if len(rec.calls) != 4 {
		t.Fatalf("recorded %d calls, want 4", len(rec.calls))
	}
}

func TestDrawBoxEdges(t *testing.T) {
	rec := &recorder{}
	box, err := DrawBox(rec, testRand(t, 11), Size{200, 100})
	if err != nil {
		t.Fatalf("DrawBox: %v", err)
	}

	want := [4][2]Point{
		{box.TopLeft, box.TopRight},
		{box.TopRight, box.BottomRight},
		{box.BottomRight, box.BottomLeft},
		{box.BottomLeft, box.TopLeft},
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("recorded %d calls, want %d", len(rec.calls), len(want))
	}
	for i, c := range rec.calls {
		if c.op != "line" {
			t.Errorf("call %d op = %q, want line", i, c.op)
		}
		if c.p0 != want[i][0] || c.p1 != want[i][1] {
			t.Errorf("edge %d = %v-%v, want %v-%v", i, c.p0, c.p1, want[i][0], want[i][1])
		}
		if c.color != box.Color || c.width != box.Width {
			t.Errorf("edge %d style = (%v, %d), want (%v, %d)", i, c.color, c.width, box.Color, box.Width)
		}
	}

	// Axis-aligned: the derived corners share coordinates.
	if box.TopRight.Y != box.TopLeft.Y || box.BottomLeft.X != box.TopLeft.X || box.BottomRight.X != box.TopRight.X {
		t.Errorf("box %+v is not axis-aligned", box)
	}
}

func TestDrawBoxInvalidSize(t *testing.T) {
	for _, size := range []Size{{0, 0}, {0, 5}, {5, 0}} {
		if _, err := DrawBox(&recorder{}, testRand(t, 1), size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("DrawBox(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestDrawBoxRasterizerError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{err: boom}
	if _, err := DrawBox(rec, testRand(t, 1), Size{10, 10}); !errors.Is(err, boom) {
		t.Fatalf("DrawBox error = %v, want wrapped boom", err)
	}
	if len(rec.calls) != 1 {
		t.Errorf("recorded %d calls after failure, want 1", len(rec.calls))
	}
}
