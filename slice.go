package genart

import (
	"fmt"
	"math/rand/v2"
)

// DrawSlice draws a short wedge (fill) or arc segment (outline).
//
// The start angle is uniform in [0,360) and the stop angle is
// start+sliceSize, which may exceed 360. The rest of the geometry is
// sampled exactly as in DrawCircle.
func DrawSlice(r Rasterizer, rng *rand.Rand, size Size, fill bool, maxDiameter, sliceSize int) (Circle, error) {
	if sliceSize < 0 {
		return Circle{}, fmt.Errorf("%w: %d", ErrInvalidSliceSize, sliceSize)
	}
	start := rng.IntN(360)
	return drawCircle(r, rng, size, CircleOptions{
		Fill:        fill,
		MaxDiameter: maxDiameter,
		Range:       AngularRange{Start: start, Stop: start + sliceSize},
	})
}
