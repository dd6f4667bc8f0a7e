package genart

import (
	"image/color"
	"log/slog"
	"math/rand/v2"
)

// Option configures a Generator during creation.
//
// Example:
//
//	// Reproducible output into testdata/
//	g := genart.New(
//	    genart.WithSeed(42),
//	    genart.WithPersister(&genart.FilePersister{Dir: "testdata"}),
//	)
type Option func(*options)

// Defaults used by New.
const (
	DefaultShapesPerImage = 1000
	DefaultMinDiameter    = 10
	DefaultMaxDiameter    = 100
	DefaultMaxSliceSize   = 30
)

type options struct {
	rng            *rand.Rand
	weights        Weights
	shapesPerImage int
	background     color.Color
	minDiameter    int
	maxDiameter    int
	maxSliceSize   int
	persister      Persister
	logger         *slog.Logger
	runID          string
	progress       func(ImageResult)
}

func defaultOptions() options {
	return options{
		weights:        DefaultWeights,
		shapesPerImage: DefaultShapesPerImage,
		background:     White,
		minDiameter:    DefaultMinDiameter,
		maxDiameter:    DefaultMaxDiameter,
		maxSliceSize:   DefaultMaxSliceSize,
	}
}

// WithRand sets the random source. All sampling in the Generator draws from
// rng; a nil rng selects an unseeded source.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed uses a PCG source seeded with seed, making output reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = NewRand(seed)
	}
}

// WithWeights sets the relative odds of each shape kind.
func WithWeights(w Weights) Option {
	return func(o *options) {
		o.weights = w
	}
}

// WithShapesPerImage sets how many shapes are layered onto each image.
func WithShapesPerImage(n int) Option {
	return func(o *options) {
		o.shapesPerImage = n
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithMaxDiameterRange sets the range the per-image max diameter is sampled
// from. Both bounds are inclusive.
func WithMaxDiameterRange(lo, hi int) Option {
	return func(o *options) {
		o.minDiameter = lo
		o.maxDiameter = hi
	}
}

// WithMaxSliceSize sets the largest slice span in degrees.
func WithMaxSliceSize(deg int) Option {
	return func(o *options) {
		o.maxSliceSize = deg
	}
}

// WithPersister sets where finished images go. The default is a
// FilePersister writing PNG files into output/.
func WithPersister(p Persister) Option {
	return func(o *options) {
		o.persister = p
	}
}

// WithLogger sets a logger for this Generator instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRunID sets the identifier attached to the Report and log records.
// By default a random UUID is used.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// WithProgress registers a callback invoked after each image is saved.
func WithProgress(fn func(ImageResult)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// NewRand returns a PCG-backed generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newUnseededRand returns a generator seeded from the runtime source.
func newUnseededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
