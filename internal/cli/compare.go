package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/imghex/internal/logging"
	"github.com/yaklabco/imghex/internal/ui/pretty"
	"github.com/yaklabco/imghex/pkg/compare"
)

// fallbackTableWidth is used when stdout is not a terminal.
const fallbackTableWidth = 100

func newCompareCommand() *cobra.Command {
	var jsonOut string

	cmd := &cobra.Command{
		Use:   "compare [dir]",
		Short: "Compare compression across formats and quality settings",
		Long: `Compare how the images in a directory compress across formats.

Every image is re-encoded in memory as standard and optimized PNG, JPEG
at several quality levels, uncompressed BMP, and lossless and lossy WebP.
The resulting sizes are reported per image and aggregated per format, and
a JSON summary is written alongside the report.

Examples:
  imghex compare                       # Compare the configured directory
  imghex compare fixtures              # Compare fixtures/
  imghex compare --json-out sizes.json # Choose the summary path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runCompare(cmd, dir, jsonOut)
		},
	}

	cmd.Flags().StringVar(&jsonOut, "json-out", "", "JSON summary path (default from config, empty disables)")

	return cmd
}

func runCompare(cmd *cobra.Command, dir, jsonOut string) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.Generate.Dir
	}
	summaryPath := cfg.Compare.SummaryPath
	if cmd.Flags().Changed("json-out") {
		summaryPath = jsonOut
	}

	summary, err := compare.AnalyzeDirectory(ctx, dir, compare.Options{
		JPEGQualities: cfg.Compare.JPEGQualities,
	})
	if err != nil {
		return fmt.Errorf("compare %s: %w", dir, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	width := fallbackTableWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	compare.RenderText(cmd.OutOrStdout(), summary, styles, width)

	if summaryPath != "" {
		if err := summary.WriteJSON(summaryPath); err != nil {
			return err
		}
		logger.Info("summary written", logging.FieldOutput, summaryPath)
	}

	return nil
}
