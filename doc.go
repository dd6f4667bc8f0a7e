// Package genart generates raster images by compositing randomly
// parameterized shapes onto a blank canvas.
//
// # Overview
//
// A [Generator] builds each image from scratch: it clears a [Canvas] to
// opaque white, then layers a fixed number of shapes on top of each other
// (1000 by default) and hands the result to a [Persister]. Three shape kinds
// are drawn, picked with fixed relative weights:
//
//   - Box: an axis-aligned rectangle outline ([DrawBox])
//   - Circle: a full circle, either a filled disc or an outline ([DrawCircle])
//   - Slice: a short pie wedge or arc segment ([DrawSlice])
//
// Shapes replace the pixels they cover, alpha included, so a translucent
// shape leaves translucent pixels and PNG output keeps its alpha channel.
//
// Rasterization is delegated to github.com/gogpu/gg through the [Rasterizer]
// interface. Encoding is delegated to the standard image codecs and
// golang.org/x/image.
//
// # Quick Start
//
//	import "github.com/gogpu/genart"
//
//	g := genart.New(genart.WithPersister(&genart.FilePersister{Dir: "output"}))
//	report, err := g.Generate(ctx, 4, genart.Size{Width: 1000, Height: 1000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, img := range report.Images {
//	    fmt.Println(img.Path)
//	}
//
// # Randomness
//
// Every generator takes an explicit *rand.Rand (math/rand/v2). A Generator
// created without [WithRand] or [WithSeed] uses an unseeded source, so runs
// are not reproducible. Passing the same seed twice yields byte-identical
// images.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is 3 o'clock, increasing clockwise on screen
package genart
