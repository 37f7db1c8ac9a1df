// Package cli implements the segaxis command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/buildinfo"
	"github.com/matzehuels/segaxis/pkg/cache"
	"github.com/matzehuels/segaxis/pkg/config"
	"github.com/matzehuels/segaxis/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "segaxis"

	// defaultAddr is the listen address for the serve command.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetJSONLogs switches the logger to one JSON object per line.
func (c *CLI) SetJSONLogs() {
	c.Logger.SetFormatter(log.JSONFormatter)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Segaxis lays out and renders segmented chart axes",
		Long:         `Segaxis lays out chart axes whose value range is split into consecutive segments, each with its own tick density and pixel share, and renders them as SVG, PNG, PDF, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.initCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/segaxis/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags holds the flags shared by commands that lay out an axis.
type layoutFlags struct {
	axisLength float64
	minor      int
	clamp      bool
	noCache    bool
	refresh    bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.axisLength, "axis-length", 0, "axis pixel length (overrides the grid edge)")
	cmd.Flags().IntVar(&f.minor, "minor", 0, "minor ticks per major interval (overrides the config)")
	cmd.Flags().BoolVar(&f.clamp, "clamp", false, "snap out-of-range ticks onto the axis ends")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when a cached layout exists")
}

// options loads the axis document at path into pipeline options.
func (f *layoutFlags) options(path string) (pipeline.Options, error) {
	doc, err := config.LoadDocument(path)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Config:           doc,
		AxisLength:       f.axisLength,
		MinorSplitNumber: f.minor,
		Clamp:            f.clamp,
		Refresh:          f.refresh,
	}, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// basePath derives the output base from output and input paths, stripping
// known format extensions.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if ext != "" && pipeline.ValidateFormats([]string{strings.TrimPrefix(ext, ".")}) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
