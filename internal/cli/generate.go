package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/imghex/internal/logging"
	"github.com/yaklabco/imghex/pkg/imagegen"
)

func newGenerateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a reproducible set of test images",
		Long: `Generate a small, reproducible set of test images.

The set covers a minimal black pixel, a grayscale gradient, a busy color
pattern, and a repeating geometric pattern, each encoded as PNG, JPEG,
and BMP where it makes sense. The same inputs always produce the same
pixel data, so the images are suitable as analyzer fixtures.

Examples:
  imghex generate                  # Write into the configured directory
  imghex generate --dir fixtures   # Write into fixtures/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default from config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, dir string) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.Generate.Dir
	}

	generated, err := imagegen.WriteTestImages(ctx, dir)
	if err != nil {
		return fmt.Errorf("generate test images: %w", err)
	}

	var total int64
	for _, g := range generated {
		logger.Info("wrote image",
			logging.FieldPath, g.Path,
			logging.FieldFormat, g.Format,
			logging.FieldSize, g.Size,
		)
		total += g.Size
	}

	logger.Info("test images generated",
		logging.FieldDir, dir,
		logging.FieldFiles, len(generated),
		logging.FieldSize, total,
	)

	return nil
}
