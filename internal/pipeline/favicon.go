package pipeline

import (
	"fmt"

	"github.com/elliotaplant/next-train-server/internal/ico"
	"github.com/elliotaplant/next-train-server/internal/icon"
)

// FaviconOptions controls favicon generation.
type FaviconOptions struct {
	Design icon.Design // zero value means icon.Train()
}

// Favicon renders a design and encodes it as a single-image icon.
func Favicon(opts FaviconOptions) (*Result, error) {
	design := opts.Design
	if design.Size == 0 && len(design.Shapes) == 0 {
		design = icon.Train()
	}

	img, err := icon.Render(design)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	data, err := ico.Encode(img)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   data,
		Format: "ico",
		Width:  design.Size,
		Height: design.Size,
	}, nil
}
