// Package sheet lays a batch of images out as a single contact sheet.
package sheet

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// DefaultCell is the tile edge length used when Compose is given cell <= 0.
const DefaultCell = 256

// gap is the white border around and between tiles.
const gap = 8

// Compose scales every image into a cell x cell tile and arranges the tiles
// left to right, top to bottom, in rows of columns tiles. Images that are not
// square are fitted inside the tile preserving their aspect ratio.
//
// columns <= 0 picks the smallest square grid that holds all images.
func Compose(images []image.Image, columns, cell int) *image.RGBA {
	if cell <= 0 {
		cell = DefaultCell
	}
	if columns <= 0 {
		columns = squareColumns(len(images))
	}
	rows := (len(images) + columns - 1) / columns
	if rows == 0 {
		rows = 1
	}

	w := columns*cell + (columns+1)*gap
	h := rows*cell + (rows+1)*gap
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, img := range images {
		if img == nil {
			continue
		}
		col, row := i%columns, i/columns
		x := gap + col*(cell+gap)
		y := gap + row*(cell+gap)
		tile := fit(img.Bounds(), image.Rect(x, y, x+cell, y+cell))
		draw.CatmullRom.Scale(dst, tile, img, img.Bounds(), draw.Over, nil)
	}
	return dst
}

// fit returns the largest rectangle with src's aspect ratio centered in dst.
func fit(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw <= 0 || sh <= 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func squareColumns(n int) int {
	c := 1
	for c*c < n {
		c++
	}
	return c
}
