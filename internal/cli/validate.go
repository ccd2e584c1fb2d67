package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coop-app/themekit/internal/validate"
)

// errValidationFailed marks a completed run that found invalid files,
// as opposed to a run that could not start.
var errValidationFailed = errors.New("validation failed")

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate generated theme files",
	Long:  "Validate every theme JSON file in the themes directory and report per-file findings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runValidate(cmd.OutOrStdout(), logger, appConfig.ThemesDir, appConfig.Prefix)
		if errors.Is(err, errValidationFailed) {
			// Findings were already itemized on stdout.
			return errors.New("some theme files have validation errors")
		}
		return err
	},
}

func runValidate(out io.Writer, log zerolog.Logger, dir, prefix string) error {
	styles := newReportStyles()

	results, err := validate.Dir(dir, prefix)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Found %d theme files:\n", len(results))
	for _, r := range results {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(r.Path))
	}
	fmt.Fprintln(out)

	valid := 0
	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Result.Valid {
			valid++
			fmt.Fprintf(out, "  %s %s: VALID\n", styles.Pass.Render("✓"), name)
			fmt.Fprintf(out, "    %s\n", styles.Muted.Render(fmt.Sprintf("ID: %s, Name: %s", r.Result.ID, r.Result.Name)))
			log.Debug().Str("file", name).Str("id", r.Result.ID).Msg("theme valid")
		} else {
			fmt.Fprintf(out, "  %s %s: INVALID\n", styles.Fail.Render("✗"), name)
			for _, msg := range r.Result.Errors {
				fmt.Fprintf(out, "    - %s\n", msg)
			}
			log.Warn().Str("file", name).Int("errors", len(r.Result.Errors)).Msg("theme invalid")
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, styles.Heading.Render("VALIDATION SUMMARY"))
	writer := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(writer, "Total files:\t%d\n", len(results))
	fmt.Fprintf(writer, "Valid:\t%d\n", valid)
	fmt.Fprintf(writer, "Invalid:\t%d\n", len(results)-valid)
	if err := writer.Flush(); err != nil {
		return err
	}

	if valid != len(results) {
		fmt.Fprintln(out, "\n"+styles.Fail.Render("Some theme files have validation errors."))
		return errValidationFailed
	}
	fmt.Fprintln(out, "\n"+styles.Pass.Render("All theme files are valid!"))
	return nil
}
