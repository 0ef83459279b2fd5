package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elliotaplant/next-train-server/internal/pipeline"
)

var faviconCmd = &cobra.Command{
	Use:   "favicon",
	Short: "Draw the train favicon and save it as ICO",
	Args:  cobra.NoArgs,
	RunE:  runFavicon,
}

func init() {
	faviconCmd.Flags().StringP("output", "o", "", "Output ICO file (default from config)")
	rootCmd.AddCommand(faviconCmd)
}

func runFavicon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	outputPath := cfg.Favicon.Output
	if cmd.Flags().Changed("output") {
		outputPath, _ = cmd.Flags().GetString("output")
	}

	result, err := pipeline.Favicon(pipeline.FaviconOptions{})
	if err != nil {
		return fmt.Errorf("favicon: %w", err)
	}

	if err := writeOutput(outputPath, result.Data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%dx%d ICO, %d bytes)\n",
		outputPath, result.Width, result.Height, len(result.Data))
	return nil
}
