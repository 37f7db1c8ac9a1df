package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/pipeline"
	"github.com/matzehuels/segaxis/pkg/render"
)

// renderFlags holds the drawing flags shared by render and visualize.
type renderFlags struct {
	formats    string
	output     string
	showMinor  bool
	noLabels   bool
	splitLines bool
	bands      bool
	scale      float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&f.showMinor, "minor-ticks", false, "draw minor ticks")
	cmd.Flags().BoolVar(&f.noLabels, "no-labels", false, "omit tick labels")
	cmd.Flags().BoolVar(&f.splitLines, "split-lines", false, "draw split lines across the grid at each major tick")
	cmd.Flags().BoolVar(&f.bands, "bands", false, "shade alternating segments across the grid")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG zoom factor")
}

func (f *renderFlags) apply(opts *pipeline.Options) error {
	opts.Formats = parseFormats(f.formats)
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	opts.ShowMinor = f.showMinor
	opts.NoLabels = f.noLabels
	opts.SplitLines = f.splitLines
	opts.Bands = f.bands
	opts.Scale = f.scale
	return nil
}

// renderCommand creates the render command: config to rendered files in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		lf layoutFlags
		rf renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [axis.toml]",
		Short: "Lay out and render an axis to SVG, PNG, PDF, or JSON",
		Long: `Lay out and render an axis to SVG, PNG, PDF, or JSON.

This is a shortcut for 'layout' followed by 'visualize'. PNG and PDF output
require rsvg-convert (librsvg) on the PATH.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := lf.options(args[0])
			if err != nil {
				return fmt.Errorf("load config %s: %w", args[0], err)
			}
			if err := rf.apply(&opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, rf.output, lf.noCache)
		},
	}

	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

// runRender executes the full pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	warnIfNoConverter(opts.Formats)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Rendering axis...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if spinner.Cancelled() {
		spinner.Stop()
		return ctx.Err()
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.StopWithSuccess("Render complete")

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))

	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Segments, result.Stats.Ticks, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes each artifact and returns the paths in format order.
// A single format with an explicit output is written to that exact path.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	var paths []string
	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if path == input {
			return nil, fmt.Errorf("refusing to overwrite input %s (use -o)", input)
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func warnIfNoConverter(formats []string) {
	if render.Available() {
		return
	}
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			printWarning("rsvg-convert not found; %s output will fail", f)
			return
		}
	}
}
