package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/elliotaplant/next-train-server/internal/ico"
	"github.com/elliotaplant/next-train-server/internal/palette"
	"github.com/elliotaplant/next-train-server/internal/raster"
)

// SquareOptions controls logo squaring.
type SquareOptions struct {
	Size int // scale the squared logo to Size×Size; 0 keeps max(w, h)
}

// Square centres an image on a square canvas sized to its longest side and
// encodes the result as PNG. The canvas starts opaque white; sources with an
// alpha channel are blended over it, others overwrite it.
func Square(data []byte, opts SquareOptions) (*Result, error) {
	if opts.Size < 0 {
		return nil, fmt.Errorf("size must not be negative, got %d", opts.Size)
	}
	src, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("decode: empty %dx%d image", w, h)
	}

	size := raster.SquareSize(w, h)
	off := raster.CenterOffset(size, w, h)
	canvas := raster.NewFilled(size, palette.MustParse(palette.White))

	op := draw.Src
	if raster.HasAlpha(src) {
		op = draw.Over
	}
	draw.Draw(canvas, image.Rectangle{Min: off, Max: off.Add(sb.Size())}, src, sb.Min, op)

	var out image.Image = canvas
	if opts.Size > 0 && opts.Size != size {
		out = scale(canvas, opts.Size)
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:      buf.Bytes(),
		Format:    "png",
		SrcWidth:  w,
		SrcHeight: h,
		Width:     out.Bounds().Dx(),
		Height:    out.Bounds().Dy(),
		Offset:    off,
	}, nil
}

func decode(data []byte) (image.Image, error) {
	if ico.IsICO(data) {
		return ico.Decode(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func scale(src *image.NRGBA, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
