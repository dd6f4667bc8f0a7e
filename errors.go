package genart

import (
	"errors"
	"fmt"
)

// Generation errors.
var (
	// ErrInvalidSize is returned when a canvas dimension is below one pixel.
	ErrInvalidSize = errors.New("genart: invalid canvas size")

	// ErrCanvasTooSmall is returned by the circle generator when the canvas
	// is smaller than the margin reserved for the bounding box origin.
	ErrCanvasTooSmall = errors.New("genart: canvas too small for circle margin")

	// ErrInvalidSliceSize is returned for a negative slice span.
	ErrInvalidSliceSize = errors.New("genart: invalid slice size")

	// ErrInvalidWeights is returned when no shape kind can be picked.
	ErrInvalidWeights = errors.New("genart: invalid shape weights")
)

// Stage names the step of image generation in which a BatchError occurred.
type Stage string

const (
	StageConfig Stage = "config"
	StageCanvas Stage = "canvas"
	StageDraw   Stage = "draw"
	StageSave   Stage = "save"
	StageCancel Stage = "cancel"
)

// BatchError aborts a Generate call. Index is the image being produced when
// the failure happened; images with a lower index were already saved.
type BatchError struct {
	Index int
	Stage Stage
	Shape int // shape iteration for StageDraw, -1 otherwise
	Err   error
}

func (e *BatchError) Error() string {
	if e.Stage == StageDraw {
		return fmt.Sprintf("genart: image %d: %s shape %d: %v", e.Index, e.Stage, e.Shape, e.Err)
	}
	return fmt.Sprintf("genart: image %d: %s: %v", e.Index, e.Stage, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// PanicError carries a panic recovered during generation along with the
// goroutine stack at the point of the panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
