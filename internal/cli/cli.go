// Package cli implements the hiveplot command-line interface.
//
// This package provides commands for computing hive plot layouts from
// graph files, rendering them as visualizations, serving the pipeline
// over HTTP, and managing the local layout cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a hive plot layout from a graph file
//   - render: Generate SVG, PNG, PDF, or JSON visualizations
//   - serve: Run the HTTP API server
//   - colors: Interactively assign colors to node groups
//   - cache: Manage the local layout cache
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nilesh-iiita/hiveplot/pkg/buildinfo"
	"github.com/nilesh-iiita/hiveplot/pkg/cache"
	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "hiveplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the user's
// config file applied, if one exists.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("ignoring invalid config file", "error", err)
	}
	return &CLI{
		Logger: logger,
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Hiveplot visualizes grouped graphs as hive plots",
		Long:         `Hiveplot is a CLI tool for visualizing grouped graphs as hive plots, placing each group of nodes on a radial axis and drawing edges as curves between axes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.colorsCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
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

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/hiveplot/).
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

// pipelineOptions builds pipeline options seeded from the config file.
func (c *CLI) pipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		Scale:  c.Config.Scale,
		Style:  c.Config.Style,
		Labels: c.Config.Labels,
	}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
