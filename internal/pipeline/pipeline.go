package pipeline

import "image"

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded output file
	Format    string // "ico" or "png"
	SrcWidth  int    // zero for generated images
	SrcHeight int
	Width     int
	Height    int
	Offset    image.Point // where the source landed on the canvas, before scaling
}
