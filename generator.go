package genart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Generator composes batches of random-shape images.
//
// A Generator is not safe for concurrent use: all sampling goes through one
// random source and images are produced strictly one after another.
type Generator struct {
	opts options
}

// New creates a Generator. Without options it draws 1000 shapes per image
// with 5:20:75 box:circle:slice odds on opaque white and writes PNG files
// into output/.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newUnseededRand()
	}
	if o.persister == nil {
		o.persister = &FilePersister{}
	}
	if o.background == nil {
		o.background = White
	}
	return &Generator{opts: o}
}

// Composition describes the shapes layered onto one canvas.
type Composition struct {
	MaxDiameter int
	Counts      ShapeCounts
}

// ImageResult describes one saved image.
type ImageResult struct {
	Index       int
	Path        string
	MaxDiameter int
	Counts      ShapeCounts
	Elapsed     time.Duration
}

// Report summarizes a Generate call. On failure it still lists the images
// saved before the error.
type Report struct {
	RunID   string
	Size    Size
	Images  []ImageResult
	Counts  ShapeCounts
	Started time.Time
	Elapsed time.Duration
}

// Paths returns the paths of the saved images in generation order.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		paths = append(paths, img.Path)
	}
	return paths
}

// Generate produces numImages images of the given size.
//
// Each image starts as a blank canvas, receives the configured number of
// shapes and is handed to the Persister before the next one begins. The
// first error from drawing, saving or ctx aborts the whole batch and is
// returned as a *BatchError. Files already written are left in place.
func (g *Generator) Generate(ctx context.Context, numImages int, size Size) (*Report, error) {
	runID := g.opts.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	report := &Report{RunID: runID, Size: size, Started: time.Now()}
	defer func() { report.Elapsed = time.Since(report.Started) }()

	log := g.logger().With("run_id", runID)

	if err := g.validate(numImages, size); err != nil {
		err = &BatchError{Index: -1, Stage: StageConfig, Shape: -1, Err: err}
		log.Error("batch rejected", "err", err)
		return report, err
	}

	log.Debug("batch started", "images", numImages, "size", size.String(), "shapes_per_image", g.opts.shapesPerImage)
	for i := 0; i < numImages; i++ {
		res, err := g.generateOne(ctx, log, i, size)
		if err != nil {
			log.Error("batch failed", "index", i, "saved", len(report.Images), "err", err)
			return report, err
		}
		report.Images = append(report.Images, res)
		report.Counts.Add(res.Counts)
		log.Info("image saved", "index", i, "path", res.Path, "elapsed", res.Elapsed)
		if g.opts.progress != nil {
			g.opts.progress(res)
		}
	}
	log.Info("batch finished", "images", len(report.Images), "shapes", report.Counts.Total(), "elapsed", time.Since(report.Started))
	return report, nil
}

// generateOne draws and saves the index-th image.
func (g *Generator) generateOne(ctx context.Context, log *slog.Logger, index int, size Size) (ImageResult, error) {
	start := time.Now()
	res := ImageResult{Index: index}

	if err := ctx.Err(); err != nil {
		return res, &BatchError{Index: index, Stage: StageCancel, Shape: -1, Err: err}
	}

	canvas, err := NewCanvas(size, g.opts.background)
	if err != nil {
		return res, &BatchError{Index: index, Stage: StageCanvas, Shape: -1, Err: err}
	}
	defer func() { _ = canvas.Close() }()

	comp, err := g.Compose(ctx, canvas, size)
	if err != nil {
		var be *BatchError
		if errors.As(err, &be) {
			be.Index = index
		}
		return res, err
	}
	res.MaxDiameter = comp.MaxDiameter
	res.Counts = comp.Counts

	log.Debug("image composed", "index", index, "max_diameter", comp.MaxDiameter,
		"boxes", comp.Counts[ShapeBox], "circles", comp.Counts[ShapeCircle], "slices", comp.Counts[ShapeSlice])

	path, err := g.save(canvas, index)
	if err != nil {
		return res, &BatchError{Index: index, Stage: StageSave, Shape: -1, Err: err}
	}
	res.Path = path
	res.Elapsed = time.Since(start)
	return res, nil
}

// Compose layers the configured number of random shapes onto r.
//
// One max diameter is sampled per call and shared by every circle and slice,
// which keeps shapes within one image at a consistent scale. Shapes are drawn
// in order, so later shapes cover earlier ones. Errors are *BatchError values
// with Index -1.
func (g *Generator) Compose(ctx context.Context, r Rasterizer, size Size) (Composition, error) {
	if err := g.validateShapes(); err != nil {
		return Composition{}, &BatchError{Index: -1, Stage: StageConfig, Shape: -1, Err: err}
	}
	rng := g.opts.rng
	comp := Composition{
		MaxDiameter: g.opts.minDiameter + rng.IntN(g.opts.maxDiameter-g.opts.minDiameter+1),
	}
	for i := 0; i < g.opts.shapesPerImage; i++ {
		if err := ctx.Err(); err != nil {
			return comp, &BatchError{Index: -1, Stage: StageCancel, Shape: i, Err: err}
		}
		kind := g.opts.weights.Pick(rng)
		if err := g.drawShape(r, size, kind, comp.MaxDiameter); err != nil {
			return comp, &BatchError{Index: -1, Stage: StageDraw, Shape: i, Err: err}
		}
		comp.Counts[kind]++
	}
	return comp, nil
}

// drawShape dispatches one shape, converting a rasterizer panic into a
// *PanicError.
func (g *Generator) drawShape(r Rasterizer, size Size, kind ShapeKind, maxDiameter int) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()

	rng := g.opts.rng
	switch kind {
	case ShapeBox:
		_, err = DrawBox(r, rng, size)
	case ShapeCircle:
		_, err = DrawCircle(r, rng, size, CircleOptions{
			Fill:        coin(rng),
			MaxDiameter: maxDiameter,
		})
	default:
		fill := coin(rng)
		sliceSize := rng.IntN(g.opts.maxSliceSize + 1)
		_, err = DrawSlice(r, rng, size, fill, maxDiameter, sliceSize)
	}
	return err
}

func (g *Generator) save(canvas *Canvas, index int) (path string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return g.opts.persister.Save(canvas.Image(), index)
}

func (g *Generator) validate(numImages int, size Size) error {
	switch {
	case numImages < 0:
		return fmt.Errorf("genart: negative image count %d", numImages)
	case !size.Valid():
		return fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	return g.validateShapes()
}

func (g *Generator) validateShapes() error {
	o := &g.opts
	switch {
	case o.shapesPerImage < 0:
		return fmt.Errorf("genart: negative shapes per image %d", o.shapesPerImage)
	case o.minDiameter < 0 || o.maxDiameter < o.minDiameter:
		return fmt.Errorf("genart: invalid diameter range [%d,%d]", o.minDiameter, o.maxDiameter)
	case o.maxSliceSize < 0:
		return fmt.Errorf("%w: max %d", ErrInvalidSliceSize, o.maxSliceSize)
	}
	return o.weights.Validate()
}

func (g *Generator) logger() *slog.Logger {
	if g.opts.logger != nil {
		return g.opts.logger
	}
	return Logger()
}

func coin(rng *rand.Rand) bool {
	return rng.IntN(2) == 1
}

// Defaults of GenerateImages callers usually start from.
var (
	DefaultNumImages = 1
	DefaultSize      = Size{Width: 256, Height: 256}
)

// GenerateImages writes numImages images of the given size into output/
// using an unseeded Generator. It reports whether the whole batch succeeded;
// on failure the error detail is written to stderr.
func GenerateImages(numImages int, size Size) bool {
	_, err := New().Generate(context.Background(), numImages, size)
	if err != nil {
		Diagnose(os.Stderr, err)
		return false
	}
	return true
}

// Diagnose writes a human readable description of err to w: the error line,
// the failing image, stage and shape of a *BatchError, every wrapped cause on
// its own line, and the stack trace when the error wraps a recovered panic.
func Diagnose(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "error: %v\n", err)

	var be *BatchError
	if errors.As(err, &be) {
		if be.Index >= 0 {
			_, _ = fmt.Fprintf(w, "  image: %d\n", be.Index)
		}
		_, _ = fmt.Fprintf(w, "  stage: %s\n", be.Stage)
		if be.Shape >= 0 {
			_, _ = fmt.Fprintf(w, "  shape: %d\n", be.Shape)
		}
	}
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		_, _ = fmt.Fprintf(w, "  caused by: %v\n", cause)
	}

	var pe *PanicError
	if errors.As(err, &pe) && len(pe.Stack) > 0 {
		_, _ = fmt.Fprintf(w, "%s\n", pe.Stack)
	}
}
