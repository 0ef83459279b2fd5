package icon

import (
	"github.com/elliotaplant/next-train-server/internal/palette"
	"github.com/elliotaplant/next-train-server/internal/raster"
)

// FaviconSize is the side of the site favicon in pixels.
const FaviconSize = 32

// Train returns the site favicon: a white train on a blue disc.
func Train() Design {
	const size = FaviconSize
	return Design{
		Size: size,
		Shapes: []Shape{
			// background disc
			{Ellipse, raster.Box{X0: 2, Y0: 2, X1: size - 2, Y1: size - 2}, palette.Blue},
			// body
			{Rectangle, raster.Box{X0: 8, Y0: 12, X1: 24, Y1: 20}, palette.White},
			// windows
			{Rectangle, raster.Box{X0: 10, Y0: 14, X1: 13, Y1: 17}, palette.Blue},
			{Rectangle, raster.Box{X0: 15, Y0: 14, X1: 18, Y1: 17}, palette.Blue},
			{Rectangle, raster.Box{X0: 20, Y0: 14, X1: 23, Y1: 17}, palette.Blue},
			// wheels
			{Ellipse, raster.Box{X0: 10, Y0: 19, X1: 14, Y1: 23}, palette.White},
			{Ellipse, raster.Box{X0: 18, Y0: 19, X1: 22, Y1: 23}, palette.White},
		},
	}
}
