// Package ico reads and writes Windows icon files.
package ico

import (
	"bytes"
	"fmt"
	"image"

	goico "github.com/sergeymakinen/go-ico"
)

// Encode writes img as a single-image icon file.
func Encode(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() > 256 || b.Dy() > 256 {
		return nil, fmt.Errorf("icon images are at most 256x256, got %dx%d", b.Dx(), b.Dy())
	}
	var buf bytes.Buffer
	if err := goico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ico encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode decodes the image stored in an icon file.
func Decode(data []byte) (image.Image, error) {
	if !IsICO(data) {
		return nil, ErrNotICO
	}
	img, err := goico.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ico decode: %w", err)
	}
	return img, nil
}
