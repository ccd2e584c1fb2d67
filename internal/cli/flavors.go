package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coop-app/themekit/internal/catppuccin"
)

func init() {
	rootCmd.AddCommand(flavorsCmd)
}

var flavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List registered flavors",
	Long:  "List the registered Catppuccin flavors and whether each is light or dark.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlavors(cmd.OutOrStdout(), appConfig.Prefix)
	},
}

func runFlavors(out io.Writer, prefix string) error {
	writer := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(writer, "FLAVOR\tID\tMODE\n")
	for _, flavor := range catppuccin.Flavors() {
		mode := "dark"
		if catppuccin.IsLight(flavor) {
			mode = "light"
		}
		fmt.Fprintf(writer, "%s\t%s-%s\t%s\n", flavor, prefix, flavor, mode)
	}
	return writer.Flush()
}
