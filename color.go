package genart

import (
	"image/color"
	"math/rand/v2"
)

// White is the opaque white canvas background.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// SampleColor returns a random color with each channel uniform in [0,255].
// When includeAlpha is false the color is opaque.
func SampleColor(rng *rand.Rand, includeAlpha bool) color.NRGBA {
	c := color.NRGBA{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: uint8(rng.IntN(256)),
	}
	if !includeAlpha {
		c.A = 255
	}
	return c
}
