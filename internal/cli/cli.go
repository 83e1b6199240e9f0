// Package cli implements the tagcloud command-line interface.
//
// Commands:
//   - render: build a cloud from a text file and write SVG, JSON, PNG or PDF
//   - layout: write only the placed rectangles as JSON
//   - serve: run the HTTP API
//   - cache: inspect or clear the layout cache
//   - completion: generate shell completions
//
// Every command accepts --verbose for debug logs and --config to read
// options from a TOML, YAML or JSON file. Flags override file values.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

const appName = "tagcloud"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string

	// config holds the options read from --config, applied before flags.
	config pipeline.Options
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "tagcloud lays out words as a non-overlapping tag cloud",
		Long: `tagcloud counts the words of a text, sizes each word by frequency and
places the boxes around a center point without overlap, growing outward
along a circle or any polar shape you describe with a Go expression.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "read options from a .toml, .yaml or .json file")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) preRun(*cobra.Command, []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	if c.configPath == "" {
		return nil
	}
	opts, err := pipeline.LoadOptions(c.configPath)
	if err != nil {
		return err
	}
	c.config = opts
	c.Logger.Debug("loaded config", "path", c.configPath)
	return nil
}

// newRunner creates a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// readInput reads the text of path, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	if err := errors.ValidateFilePath(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.New(errors.ErrCodeFileNotFound, "input file not found: '%s'", path)
	}
	return string(data), err
}
