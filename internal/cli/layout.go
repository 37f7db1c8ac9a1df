package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/layout"
)

// layoutCommand creates the layout command for computing axis layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout [axis.toml]",
		Short: "Compute the segment geometry and tick positions of an axis",
		Long: `Compute the segment geometry and tick positions of an axis.

The layout command reads an axis config (TOML or JSON), lays out its segments
along the axis, and prints a table of segment offsets and sizes. With -o the
layout is written as layout.json (same format as 'render -f json'), which the
'visualize' command renders without recomputing.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags, output, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write layout JSON to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print layout JSON to stdout instead of a table")

	return cmd
}

// runLayout loads the config, computes the layout, and prints or writes it.
func (c *CLI) runLayout(ctx context.Context, input string, flags layoutFlags, output string, asJSON bool) error {
	opts, err := flags.options(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	if asJSON {
		data, err := layout.Marshal(l)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	printLayoutSummary(os.Stdout, l)
	printStats(len(l.Segments), len(l.Ticks), cacheHit)

	if output == "" {
		return nil
	}
	if err := layout.WriteFile(l, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	printSuccess("Layout written")
	printFile(output)
	printNewline()
	printNextStep("Render", appName+" visualize "+output)
	return nil
}
