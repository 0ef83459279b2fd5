package pipeline

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/elliotaplant/next-train-server/internal/ico"
	"github.com/elliotaplant/next-train-server/internal/icon"
	"github.com/elliotaplant/next-train-server/internal/raster"
)

func TestFullFavicon(t *testing.T) {
	result, err := Favicon(FaviconOptions{})
	if err != nil {
		t.Fatalf("Favicon: %v", err)
	}
	if result.Format != "ico" {
		t.Errorf("format = %q, want ico", result.Format)
	}

	// Verify output metadata
	info, err := ico.GetInfo(result.Data)
	if err != nil {
		t.Fatalf("GetInfo on output: %v", err)
	}
	if len(info.Entries) != 1 {
		t.Errorf("expected 1 icon image, got %d", len(info.Entries))
	}
	e := info.Largest()
	if e.Width != icon.FaviconSize || e.Height != icon.FaviconSize {
		t.Errorf("unexpected dimensions: %dx%d", e.Width, e.Height)
	}

	img, err := ico.Decode(result.Data)
	if err != nil {
		t.Fatalf("output is not a decodable icon: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
	if c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); c.A != 0 {
		t.Errorf("corner pixel %v, want transparent", c)
	}

	t.Logf("Favicon output: %dx%d, %d bytes, png=%v, bpp=%d",
		e.Width, e.Height, len(result.Data), e.PNG, e.BitCount)
}

func TestFaviconIdempotent(t *testing.T) {
	a, err := Favicon(FaviconOptions{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Favicon(FaviconOptions{Design: icon.Train()})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("default and explicit train design produced different bytes")
	}
}

func TestFaviconCustomDesign(t *testing.T) {
	d := icon.Design{
		Size: 16,
		Shapes: []icon.Shape{
			{Kind: icon.Rectangle, Box: raster.Box{X0: 0, Y0: 0, X1: 15, Y1: 15}, Fill: "#FF0000"},
		},
	}
	result, err := Favicon(FaviconOptions{Design: d})
	if err != nil {
		t.Fatalf("Favicon: %v", err)
	}
	img, err := ico.Decode(result.Data)
	if err != nil {
		t.Fatal(err)
	}
	got := color.NRGBAModel.Convert(img.At(8, 8)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("centre pixel = %v, want opaque red", got)
	}
	if result.Width != 16 {
		t.Errorf("width = %d", result.Width)
	}
}

func TestFaviconInvalidDesign(t *testing.T) {
	_, err := Favicon(FaviconOptions{Design: icon.Design{Size: 8, Shapes: []icon.Shape{{Fill: "nope"}}}})
	if err == nil {
		t.Fatal("expected error for invalid design")
	}
}
