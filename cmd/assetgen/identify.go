package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/elliotaplant/next-train-server/internal/ico"
	"github.com/elliotaplant/next-train-server/internal/palette"
	"github.com/elliotaplant/next-train-server/internal/raster"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image dimensions, format and icon directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()

	if ico.IsICO(data) {
		info, err := ico.GetInfo(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		largest := info.Largest()
		fmt.Fprintf(out, "File:       %s\n", path)
		fmt.Fprintf(out, "Format:     ico\n")
		fmt.Fprintf(out, "Dimensions: %d x %d\n", largest.Width, largest.Height)
		fmt.Fprintf(out, "File size:  %d bytes\n", len(data))
		fmt.Fprintf(out, "Images:     %d\n", len(info.Entries))
		for i, e := range info.Entries {
			payload := "DIB"
			if e.PNG {
				payload = "PNG"
			}
			fmt.Fprintf(out, "  [%d] %dx%d, %d bpp, %s, %d bytes\n", i, e.Width, e.Height, e.BitCount, payload, e.Size)
		}
		return nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	b := img.Bounds()

	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     %s\n", format)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", b.Dx(), b.Dy())
	fmt.Fprintf(out, "Color model: %s\n", palette.ModelName(img.ColorModel()))
	fmt.Fprintf(out, "Alpha:      %v\n", raster.HasAlpha(img))
	fmt.Fprintf(out, "File size:  %d bytes\n", len(data))
	return nil
}
