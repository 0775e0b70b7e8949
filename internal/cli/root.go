// Package cli provides the Cobra command structure for imghex.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/imghex/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root imghex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "imghex",
		Short: "A structural analyzer for raster image containers",
		Long: `imghex walks the byte-level structure of PNG, JPEG, and BMP files and
reports what it finds: chunks, markers, headers, compressed payloads, and
the places where a file deviates from its own format.

It never decodes pixels during analysis. Damaged and truncated files are
first-class inputs; structural problems are reported as diagnostics, not
fatal errors. A companion generator produces a reproducible set of test
images, and the compare command measures how the same pixels fare across
formats and quality settings.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
