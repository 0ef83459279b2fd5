// Package icon describes small icons as an ordered list of filled shapes and
// rasterises them.
package icon

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/elliotaplant/next-train-server/internal/palette"
	"github.com/elliotaplant/next-train-server/internal/raster"
)

// Kind selects the shape drawn inside a Shape's box.
type Kind int

const (
	Rectangle Kind = iota
	Ellipse
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Ellipse:
		return "ellipse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is one filled primitive. Box bounds the shape inclusively; an
// ellipse is inscribed in it.
type Shape struct {
	Kind Kind
	Box  raster.Box
	Fill string // palette colour
}

// Design is a square icon drawn as Shapes in order, later shapes on top.
type Design struct {
	Size   int
	Shapes []Shape
}

// Validate checks that every shape can be drawn.
func (d Design) Validate() error {
	if d.Size <= 0 {
		return fmt.Errorf("icon size must be positive, got %d", d.Size)
	}
	if len(d.Shapes) == 0 {
		return errors.New("icon has no shapes")
	}
	for i, s := range d.Shapes {
		if s.Kind != Rectangle && s.Kind != Ellipse {
			return fmt.Errorf("shape %d: unknown kind %v", i, s.Kind)
		}
		if s.Box.Empty() {
			return fmt.Errorf("shape %d: inverted box %+v", i, s.Box)
		}
		if _, err := palette.Parse(s.Fill); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

// Render draws d on a transparent canvas.
func Render(d Design) (image.Image, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(d.Size, d.Size)
	for _, s := range d.Shapes {
		fill, _ := palette.Parse(s.Fill)
		dc.SetColor(fill)

		r := s.Box.Rect()
		x, y := float64(r.Min.X), float64(r.Min.Y)
		w, h := float64(r.Dx()), float64(r.Dy())
		switch s.Kind {
		case Rectangle:
			dc.DrawRectangle(x, y, w, h)
		case Ellipse:
			dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
		}
		dc.Fill()
	}
	return dc.Image(), nil
}
