package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/pipeline"
)

// typesCommand lists the registered box types.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List box types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList(cmd.OutOrStdout(), box.NewFactory(nil).Types(), typeDescriptions)
			return nil
		},
	}
}

// edgesCommand lists the registered edge styles.
func (c *CLI) edgesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List edge styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList(cmd.OutOrStdout(), box.NewFactory(nil).Edges().Names(), edgeDescriptions)
			return nil
		},
	}
}

// formatsCommand lists the output formats and their file extensions.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList(cmd.OutOrStdout(), pipeline.Formats(), pipeline.FormatExtensions)
			return nil
		},
	}
}

// printList writes one name per line followed by its description.
func printList(w io.Writer, names []string, desc map[string]string) {
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for _, n := range names {
		fmt.Fprintf(w, "%s  %s\n", styleAccent.Render(fmt.Sprintf("%-*s", width, n)), styleDim.Render(desc[n]))
	}
}
