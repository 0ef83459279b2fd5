package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Box is an inclusive pixel rectangle: pixels at both (X0,Y0) and (X1,Y1)
// are covered. Drawing coordinates are written this way so they can be read
// straight off a pixel grid.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Rect returns the half-open rectangle covering the same pixels.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1)
}

// Width returns the number of pixel columns the box covers.
func (b Box) Width() int { return b.X1 - b.X0 + 1 }

// Height returns the number of pixel rows the box covers.
func (b Box) Height() int { return b.Y1 - b.Y0 + 1 }

// Empty reports whether the box is inverted and covers no pixels.
func (b Box) Empty() bool { return b.X1 < b.X0 || b.Y1 < b.Y0 }

// SquareSize returns the side of the smallest square that holds a w×h image.
func SquareSize(w, h int) int {
	if w > h {
		return w
	}
	return h
}

// CenterOffset returns where a w×h image is placed to sit centred on a
// size×size canvas. Odd leftovers go to the right and bottom edges.
func CenterOffset(size, w, h int) image.Point {
	return image.Pt((size-w)/2, (size-h)/2)
}

// NewFilled allocates a size×size canvas with every pixel set to c.
func NewFilled(size int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// HasAlpha reports whether img carries per-pixel transparency.
// Paletted images count only when a palette entry is not fully opaque.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}

	switch img.ColorModel() {
	case color.RGBAModel, color.RGBA64Model,
		color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
