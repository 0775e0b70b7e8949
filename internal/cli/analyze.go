package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/imghex/internal/logging"
	"github.com/yaklabco/imghex/pkg/config"
	"github.com/yaklabco/imghex/pkg/container"
	"github.com/yaklabco/imghex/pkg/fsutil"
	"github.com/yaklabco/imghex/pkg/reporter"
	"github.com/yaklabco/imghex/pkg/sniff"
)

// ErrDiagnosticsFound is returned when analysis surfaces diagnostics.
var ErrDiagnosticsFound = errors.New("diagnostics found")

type analyzeFlags struct {
	format     string
	strictCRC  bool
	dumpLength int
	noHexDump  bool
	strict     bool
}

func newAnalyzeCommand() *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Analyze the byte-level structure of image files",
		Long:  analyzeLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().BoolVar(&flags.strictCRC, "strict-crc", false, "recompute and verify PNG chunk CRCs")
	cmd.Flags().IntVar(&flags.dumpLength, "dump-length", 0, "bytes of hex preview per file (0 = config default)")
	cmd.Flags().BoolVar(&flags.noHexDump, "no-hexdump", false, "suppress the hex preview")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat unrecognized formats as failures")

	return cmd
}

const analyzeLongDescription = `Analyze the byte-level structure of PNG, JPEG, and BMP files.

Each file is walked without decoding pixels: PNG chunks, JPEG markers, and
BMP headers are reported along with any structural problems found on the
way. Damaged files are analyzed as far as the bytes allow; the problems
become diagnostics in the report rather than errors.

Examples:
  imghex analyze photo.png               # Report PNG chunk structure
  imghex analyze *.jpg --format json     # Machine-readable output
  imghex analyze dump.png --strict-crc   # Verify chunk checksums
  imghex analyze raw.bin --no-hexdump    # Skip the hex preview`

func runAnalyze(cmd *cobra.Command, args []string, flags *analyzeFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyAnalyzeFlags(cmd, cfg, flags)

	logger.Debug("analysis configured",
		logging.FieldFormat, cfg.Format,
		logging.FieldStrictCRC, cfg.StrictCRC,
		logging.FieldFiles, len(args),
	)

	result := &reporter.Result{}
	opts := container.Options{StrictCRC: cfg.StrictCRC}

	for _, path := range args {
		analysis := reporter.FileAnalysis{Path: path}

		data, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			logger.Debug("read failed", logging.FieldPath, path, logging.FieldError, err)
			analysis.Err = err
			result.Files = append(result.Files, analysis)
			continue
		}

		report, err := container.Analyze(data, opts)
		if err != nil {
			analysis.Err = err
			result.Files = append(result.Files, analysis)
			continue
		}

		logger.Debug("file analyzed",
			logging.FieldPath, path,
			logging.FieldKind, report.ContainerKind,
			logging.FieldSize, report.Size,
			logging.FieldFacts, len(report.Facts),
			logging.FieldDiagnostics, len(report.Diagnostics()),
		)

		analysis.Data = data
		analysis.Report = report
		result.Files = append(result.Files, analysis)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		ErrorWriter:   cmd.ErrOrStderr(),
		Format:        format,
		Color:         colorMode,
		ShowHexDump:   !cfg.NoHexDump,
		HexPreviewLen: cfg.HexPreviewLen,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrDiagnosticsFound
	}
	return nil
}

// applyAnalyzeFlags overlays explicitly set flags onto the loaded config.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config, flags *analyzeFlags) {
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.format
	}
	if cmd.Flags().Changed("strict-crc") {
		cfg.StrictCRC = flags.strictCRC
	}
	if cmd.Flags().Changed("dump-length") {
		cfg.HexPreviewLen = flags.dumpLength
	}
	if cmd.Flags().Changed("no-hexdump") {
		cfg.NoHexDump = flags.noHexDump
	}
}

// loadConfig resolves configuration from the persistent --config flag and
// the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir, configPath)
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}
	return cfg, nil
}

// hasUnrecognized reports whether any successfully read file failed
// format detection.
func hasUnrecognized(result *reporter.Result) bool {
	for _, f := range result.Files {
		if f.Report != nil && f.Report.ContainerKind == sniff.KindUnknown {
			return true
		}
	}
	return false
}
