package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   *optionFlags
	)

	cmd := &cobra.Command{
		Use:   "layout <text-file|->",
		Short: "Compute word rectangles without rendering",
		Long: `Layout sizes and places the words of a text file and writes the tags
with their rectangles as JSON. Use "-o -" to print to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.resolve(cmd.Flags(), c.config)
			return c.runLayout(cmd, args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	flags = newOptionFlags(cmd.Flags(), false)

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, input, output string, noCache bool, opts pipeline.Options) error {
	text, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx := cmd.Context()
	prog := newProgress(c.Logger)
	words, err := runner.Extract(ctx, text, opts)
	if err != nil {
		return err
	}
	layout, cached, err := runner.LayoutWithCacheInfo(ctx, words, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("placed %d tags", len(layout.Tags)))

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return err
	}
	if output == "-" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	if output == "" {
		output = basePath("", input) + ".layout.json"
	}
	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Placed %s", StyleNumber.Render(fmt.Sprintf("%d tags", len(layout.Tags))))
	printStats(len(words), len(layout.Tags), layout.Radius, cached)
	printFile(output)
	return nil
}

