package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// ImageCommandHandler encapsulates logic for stored card images via CLI.
type ImageCommandHandler struct {
	load DependencyLoader
}

// NewImageCommandHandler returns an ImageCommandHandler operating on the dependencies built by load
func NewImageCommandHandler(load DependencyLoader) *ImageCommandHandler {
	return &ImageCommandHandler{load: load}
}

// GetCmd copies a stored image to --output, or to stdout when no output is given
func (commandHandler *ImageCommandHandler) GetCmd(cmd *cobra.Command, args []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	deps, err := commandHandler.load(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	content, _, err := deps.CardImage.Download(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer content.Close()

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.OpenFile(filepath.Clean(outputPath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if _, err := io.Copy(out, content); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// SweepCmd removes stored images no card references
func (commandHandler *ImageCommandHandler) SweepCmd(cmd *cobra.Command, _ []string) error {
	deps, err := commandHandler.load(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	removed, err := deps.Sweeper.Sweep(cmd.Context())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d orphaned images\n", removed)
	return err
}

// InitImageCommands registers the images command group
func InitImageCommands(rootCmd *cobra.Command, load DependencyLoader) error {
	handler := NewImageCommandHandler(load)

	var imagesCmd = &cobra.Command{
		Use:   "images",
		Short: "Manage stored card images",
	}

	var getCmd = &cobra.Command{
		Use:   "get <image-name>",
		Short: "Fetch a stored image",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.GetCmd,
	}
	getCmd.Flags().StringP("output", "o", "", "Path to write the image to (default stdout)")
	imagesCmd.AddCommand(getCmd)

	var sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Remove stored images no card refers to",
		Args:  cobra.NoArgs,
		RunE:  handler.SweepCmd,
	}
	imagesCmd.AddCommand(sweepCmd)

	rootCmd.AddCommand(imagesCmd)
	return nil
}
