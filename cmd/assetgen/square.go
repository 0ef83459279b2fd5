package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elliotaplant/next-train-server/internal/pipeline"
)

var squareCmd = &cobra.Command{
	Use:   "square",
	Short: "Centre a logo on a white square canvas and save it as PNG",
	Args:  cobra.NoArgs,
	RunE:  runSquare,
}

func init() {
	squareCmd.Flags().StringP("input", "i", "", "Input logo image (default from config)")
	squareCmd.Flags().StringP("output", "o", "", "Output PNG file (default from config)")
	squareCmd.Flags().Int("size", 0, "Scale the squared logo to this many pixels (0 keeps the longest side)")
	rootCmd.AddCommand(squareCmd)
}

func runSquare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	inputPath := cfg.Logo.Input
	if cmd.Flags().Changed("input") {
		inputPath, _ = cmd.Flags().GetString("input")
	}
	outputPath := cfg.Logo.Output
	if cmd.Flags().Changed("output") {
		outputPath, _ = cmd.Flags().GetString("output")
	}
	size := cfg.Logo.Size
	if cmd.Flags().Changed("size") {
		size, _ = cmd.Flags().GetInt("size")
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Square(inputData, pipeline.SquareOptions{Size: size})
	if err != nil {
		return fmt.Errorf("square %s: %w", inputPath, err)
	}

	if err := writeOutput(outputPath, result.Data); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created square logo: %dx%d\n", result.Width, result.Height)
	fmt.Fprintf(out, "Input:  %s (%dx%d, %d bytes)\n", inputPath, result.SrcWidth, result.SrcHeight, len(inputData))
	fmt.Fprintf(out, "Output: %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}
