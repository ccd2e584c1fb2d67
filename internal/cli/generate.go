package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coop-app/themekit/internal/catppuccin"
	"github.com/coop-app/themekit/internal/theme"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate all theme files",
	Long:  "Generate one theme JSON file per Catppuccin flavor into the themes directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.OutOrStdout(), logger, appConfig.ThemesDir, appConfig.Prefix)
	},
}

func runGenerate(out io.Writer, log zerolog.Logger, dir, prefix string) error {
	fmt.Fprintf(out, "Generating theme files in %s/...\n", dir)

	written := make([]string, 0, len(catppuccin.Palettes))
	for _, flavor := range catppuccin.Flavors() {
		palette, _ := catppuccin.Lookup(flavor)

		fmt.Fprintf(out, "  Generating %s theme...\n", flavor)
		family, err := theme.BuildFamily(prefix, flavor, palette)
		if err != nil {
			return err
		}

		path, err := theme.WriteFamily(dir, family)
		if err != nil {
			return err
		}
		log.Info().
			Str("flavor", flavor).
			Str("id", family.ID).
			Str("path", path).
			Msg("theme written")
		fmt.Fprintf(out, "    Saved to %s\n", path)
		written = append(written, path)
	}

	fmt.Fprintln(out, "\nDone! Generated theme files:")
	for _, path := range written {
		fmt.Fprintf(out, "  - %s\n", filepath.ToSlash(path))
	}
	return nil
}
