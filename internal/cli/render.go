package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   *optionFlags
	)

	cmd := &cobra.Command{
		Use:   "render <text-file|->",
		Short: "Render a text file as a tag cloud",
		Long: `Render counts the words of a text file and writes the cloud in every
requested format. With several formats, --output is used as a base path and
each file gets its own extension.`,
		Example: `  tagcloud render speech.txt
  tagcloud render speech.txt -f svg,png --gradient --color "#1d3557" --secondary-color "#e63946"
  tagcloud render speech.txt --layouter shaped --radius "1 + 0.6*math.Sin(3*angle)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.resolve(cmd.Flags(), c.config)
			return c.runRender(cmd, args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or base path (default: input name)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	flags = newOptionFlags(cmd.Flags(), true)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input, output string, noCache bool, opts pipeline.Options) error {
	text, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(cmd.Context(), "Placing words...")
	spinner.Start()
	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), text, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.StopWithSuccess("Rendered %s", StyleNumber.Render(fmt.Sprintf("%d tags", result.Stats.TagCount)))
	prog.done("render complete")
	printStats(result.Stats.WordCount, result.Stats.TagCount, result.Stats.Radius, result.CacheInfo.LayoutHit)

	base := basePath(output, input)
	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	for _, f := range formats {
		path := base + render.Format(f).Ext()
		if len(formats) == 1 && filepath.Ext(output) != "" {
			path = output
		}
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the output path without extension. An empty output uses
// the input name, or "cloud" for stdin. Known format extensions are
// stripped from output.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "cloud"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil && ext != "" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
