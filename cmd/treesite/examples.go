package main

import (
	"embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/treesite/internal/errors"
)

//go:embed examples/basic_site/main.go examples/render_page/main.go
var exampleFS embed.FS

// exampleNames lists the programs printed by the examples command.
var exampleNames = []string{"basic_site", "render_page"}

func exampleSource(name string) (string, bool) {
	data, err := exampleFS.ReadFile("examples/" + name + "/main.go")
	if err != nil {
		return "", false
	}
	return string(data), true
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [name]",
		Short: "Print an example program",
		Long: `Print the source of an example program using the treesite packages.

Without a name the available examples are listed.

Examples:
  treesite examples
  treesite examples basic_site > main.go`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "available examples: %s\n", strings.Join(exampleNames, ", "))
				return nil
			}
			src, ok := exampleSource(args[0])
			if !ok {
				return errors.New("E502").
					WithDetail(fmt.Sprintf("%q is not an example; available: %s", args[0], strings.Join(exampleNames, ", ")))
			}
			fmt.Fprint(out, src)
			return nil
		},
	}
}
