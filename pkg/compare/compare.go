// Package compare re-encodes images into multiple formats and quality
// settings and reports how the resulting sizes stack up. All candidate
// encodings happen in memory; only the JSON summary ever touches disk.
package compare

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"sort"
	"strings"

	// Registered decoders for the formats ListImages accepts.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/yaklabco/imghex/internal/logging"
	"github.com/yaklabco/imghex/pkg/fsutil"
	"github.com/yaklabco/imghex/pkg/imagegen"
)

// Variant is one candidate encoding of a source image.
type Variant struct {
	// Format is the container format name ("PNG", "JPEG", "BMP", "WebP").
	Format string `json:"format"`

	// Name distinguishes variants within a format ("optimized", "q85").
	Name string `json:"name"`

	// Description is a human-readable label for the variant.
	Description string `json:"description"`

	// Size is the encoded size in bytes.
	Size int64 `json:"size"`
}

// ImageAnalysis holds the per-image comparison results, variants sorted
// by ascending size.
type ImageAnalysis struct {
	// Name is the source file name without extension.
	Name string `json:"filename"`

	// Path is the source file path.
	Path string `json:"path"`

	// Width and Height are the decoded pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Variants are the candidate encodings, smallest first.
	Variants []Variant `json:"variants"`
}

// Smallest returns the most compact variant. Variants is never empty for
// an analysis produced by AnalyzeImage.
func (a *ImageAnalysis) Smallest() Variant {
	return a.Variants[0]
}

// BestJPEG returns the highest-quality JPEG variant and whether one
// exists. Qualities are encoded in descending order, so among JPEG
// variants the largest is the highest quality.
func (a *ImageAnalysis) BestJPEG() (Variant, bool) {
	best := Variant{}
	found := false
	for _, v := range a.Variants {
		if v.Format == "JPEG" && (!found || v.Size > best.Size) {
			best = v
			found = true
		}
	}
	return best, found
}

// Options tunes the comparison.
type Options struct {
	// JPEGQualities are the quality levels to encode JPEG variants at.
	// Empty means the default ladder.
	JPEGQualities []int
}

//nolint:gochecknoglobals // Default quality ladder
var defaultJPEGQualities = []int{100, 95, 85, 75, 50, 25}

// AnalyzeImage decodes the image at path and encodes it into every
// candidate variant, returning the measured sizes.
func AnalyzeImage(ctx context.Context, path string, opts Options) (*ImageAnalysis, error) {
	data, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	analysis := &ImageAnalysis{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	qualities := opts.JPEGQualities
	if len(qualities) == 0 {
		qualities = defaultJPEGQualities
	}

	plan := []struct {
		format      imagegen.Format
		encOpts     imagegen.EncodeOptions
		name        string
		label       string
		description string
	}{
		{imagegen.FormatPNG, imagegen.EncodeOptions{}, "standard", "PNG", "standard PNG"},
		{imagegen.FormatPNG, imagegen.EncodeOptions{PNGLevel: png.BestCompression}, "optimized", "PNG", "optimized PNG"},
		{imagegen.FormatBMP, imagegen.EncodeOptions{}, "single", "BMP", "uncompressed BMP"},
		{imagegen.FormatWebP, imagegen.EncodeOptions{WebPLossless: true}, "lossless", "WebP", "lossless WebP"},
		{imagegen.FormatWebP, imagegen.EncodeOptions{WebPQuality: 80}, "lossy", "WebP", "lossy WebP (80%)"},
	}
	for _, q := range qualities {
		plan = append(plan, struct {
			format      imagegen.Format
			encOpts     imagegen.EncodeOptions
			name        string
			label       string
			description string
		}{
			imagegen.FormatJPEG,
			imagegen.EncodeOptions{JPEGQuality: q},
			fmt.Sprintf("q%d", q),
			"JPEG",
			fmt.Sprintf("JPEG quality %d%%", q),
		})
	}

	for _, step := range plan {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("analyze %s: %w", path, ctx.Err())
		default:
		}

		var buf bytes.Buffer
		if err := imagegen.Encode(&buf, img, step.format, step.encOpts); err != nil {
			return nil, fmt.Errorf("%s variant %s: %w", path, step.name, err)
		}
		analysis.Variants = append(analysis.Variants, Variant{
			Format:      step.label,
			Name:        step.name,
			Description: step.description,
			Size:        int64(buf.Len()),
		})
	}

	sort.SliceStable(analysis.Variants, func(i, j int) bool {
		return analysis.Variants[i].Size < analysis.Variants[j].Size
	})

	return analysis, nil
}

// AnalyzeDirectory runs AnalyzeImage over every image file directly
// inside dir and aggregates the results.
func AnalyzeDirectory(ctx context.Context, dir string, opts Options) (*Summary, error) {
	logger := logging.FromContext(ctx)

	paths, err := fsutil.ListImages(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}

	logger.Debug("comparing images", logging.FieldDir, dir, logging.FieldImages, len(paths))

	summary := &Summary{}
	for _, path := range paths {
		analysis, err := AnalyzeImage(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		logger.Debug("image analyzed",
			logging.FieldPath, path,
			logging.FieldVariants, len(analysis.Variants),
			logging.FieldSmallest, analysis.Smallest().Size)
		summary.Images = append(summary.Images, *analysis)
	}

	summary.computeStats()
	return summary, nil
}
