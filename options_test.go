package genart

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

// memPersister is a test persister for DI testing.
type memPersister struct {
	images []image.Image
}

func (m *memPersister) Save(img image.Image, index int) (string, error) {
	m.images = append(m.images, img)
	return "mem", nil
}

// TestNewDefault tests the options New applies without arguments.
func TestNewDefault(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New returned nil")
	}
	o := g.opts
	if o.rng == nil {
		t.Error("rng is nil, expected an unseeded source")
	}
	if o.weights != DefaultWeights {
		t.Errorf("weights = %+v, want %+v", o.weights, DefaultWeights)
	}
	if o.shapesPerImage != DefaultShapesPerImage {
		t.Errorf("shapesPerImage = %d, want %d", o.shapesPerImage, DefaultShapesPerImage)
	}
	if o.minDiameter != DefaultMinDiameter || o.maxDiameter != DefaultMaxDiameter {
		t.Errorf("diameter range = [%d,%d]", o.minDiameter, o.maxDiameter)
	}
	if o.maxSliceSize != DefaultMaxSliceSize {
		t.Errorf("maxSliceSize = %d, want %d", o.maxSliceSize, DefaultMaxSliceSize)
	}
	if _, ok := o.persister.(*FilePersister); !ok {
		t.Errorf("persister = %T, want *FilePersister", o.persister)
	}
}

// TestWithPersister tests dependency injection of a custom persister.
func TestWithPersister(t *testing.T) {
	mem := &memPersister{}
	g := New(WithSeed(1), WithShapesPerImage(5), WithPersister(mem))

	report, err := g.Generate(context.Background(), 2, Size{24, 24})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(mem.images) != 2 {
		t.Fatalf("persister got %d images, want 2", len(mem.images))
	}
	if report.Images[1].Path != "mem" {
		t.Errorf("Path = %q, want path returned by the persister", report.Images[1].Path)
	}
}

// TestWithBackground tests that the canvas starts with the given color.
func TestWithBackground(t *testing.T) {
	mem := &memPersister{}
	black := color.NRGBA{A: 255}
	g := New(WithShapesPerImage(0), WithBackground(black), WithPersister(mem))
	if _, err := g.Generate(context.Background(), 1, Size{8, 8}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	r, gr, b, a := mem.images[0].At(4, 4).RGBA()
	if r != 0 || gr != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel = %d,%d,%d,%d, want opaque black", r, gr, b, a)
	}
}

// TestWithRand tests that a shared source drives all sampling.
func TestWithRand(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	if _, err := New(WithRand(NewRand(11)), WithShapesPerImage(50)).Compose(context.Background(), a, Size{64, 64}); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithSeed(11), WithShapesPerImage(50)).Compose(context.Background(), b, Size{64, 64}); err != nil {
		t.Fatal(err)
	}
	if len(a.calls) != len(b.calls) {
		t.Fatalf("call counts differ: %d vs %d", len(a.calls), len(b.calls))
	}
	for i := range a.calls {
		if a.calls[i] != b.calls[i] {
			t.Fatalf("call %d differs: %+v vs %+v", i, a.calls[i], b.calls[i])
		}
	}

	if New(WithRand(nil)).opts.rng == nil {
		t.Error("WithRand(nil) left the source unset")
	}
}

// TestWithMaxDiameterRange tests that a fixed range pins the max diameter.
func TestWithMaxDiameterRange(t *testing.T) {
	g := New(WithSeed(2), WithMaxDiameterRange(40, 40), WithShapesPerImage(1))
	comp, err := g.Compose(context.Background(), &recorder{}, Size{100, 100})
	if err != nil {
		t.Fatal(err)
	}
	if comp.MaxDiameter != 40 {
		t.Errorf("MaxDiameter = %d, want 40", comp.MaxDiameter)
	}
}

// TestWithLogger tests that a per-Generator logger overrides the package one.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := New(WithLogger(l), WithRunID("run-7"), WithShapesPerImage(1), WithPersister(&memPersister{}))
	if _, err := g.Generate(context.Background(), 1, Size{16, 16}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"batch started", "image composed", "image saved", "run_id=run-7"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}
