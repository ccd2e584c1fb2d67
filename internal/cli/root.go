// Package cli provides the themekit command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coop-app/themekit/internal/config"
	"github.com/coop-app/themekit/internal/logging"
)

var (
	flagThemesDir string
	flagPrefix    string
	flagLogLevel  string

	appConfig *config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "Generate and validate Catppuccin theme files",
	Long:  "themekit generates Catppuccin theme JSON files for the Coop application and validates generated theme directories.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("themes-dir") {
			cfg.ThemesDir = flagThemesDir
		}
		if cmd.Flags().Changed("prefix") {
			cfg.Prefix = flagPrefix
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		appConfig = cfg
		logger = logging.New(cfg.LogLevel).With().
			Str("run_id", uuid.NewString()).
			Logger()
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagThemesDir, "themes-dir", config.DefaultThemesDir, "directory for generated theme files")
	rootCmd.PersistentFlags().StringVar(&flagPrefix, "prefix", config.DefaultPrefix, "theme id and file name prefix")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
