package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render an axis from a computed layout",
		Long: `Render an axis from a computed layout.

The visualize command takes a layout.json file (produced by 'layout -o' or
'render -f json') and renders it to SVG, PNG, PDF, or JSON. The layout holds
all tick positions, so this step is purely about drawing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			if err := rf.apply(&opts); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, rf.output)
		},
	}

	rf.register(cmd)

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read layout %s: %w", input, err)
	}
	warnIfNoConverter(opts.Formats)

	opts.Logger = c.Logger
	artifacts, err := pipeline.RenderFromLayoutData(ctx, data, opts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}
	printSuccess("Visualization complete")
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
