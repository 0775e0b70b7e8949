package imagegen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// GeneratedImage describes one file produced by WriteTestImages.
type GeneratedImage struct {
	// Path is the written file path.
	Path string

	// Pattern is the pixel pattern rendered into the file.
	Pattern Pattern

	// Format is the container format the file was encoded in.
	Format Format

	// Size is the encoded file size in bytes.
	Size int64
}

// testSetEntry pairs a rendered pattern with the encodings written for it.
type testSetEntry struct {
	name    string
	pattern Pattern
	width   int
	height  int
	formats []formatSpec
}

type formatSpec struct {
	format Format
	opts   EncodeOptions
}

// The canonical test set: a minimal single pixel plus three patterns at
// increasing sizes, each in PNG, JPEG, and BMP.
//
//nolint:gochecknoglobals // Fixed generation plan
var testSet = []testSetEntry{
	{
		name: "test_minimal_black", pattern: PatternSolid, width: 1, height: 1,
		formats: []formatSpec{
			{FormatPNG, EncodeOptions{PNGLevel: png.BestCompression}},
		},
	},
	{
		name: "test_gradient_10x10", pattern: PatternGradient, width: 10, height: 10,
		formats: []formatSpec{
			{FormatPNG, EncodeOptions{PNGLevel: png.BestCompression}},
			{FormatJPEG, EncodeOptions{JPEGQuality: 95}},
			{FormatBMP, EncodeOptions{}},
		},
	},
	{
		name: "test_colorful_50x50", pattern: PatternColorful, width: 50, height: 50,
		formats: []formatSpec{
			{FormatPNG, EncodeOptions{PNGLevel: png.BestCompression}},
			{FormatJPEG, EncodeOptions{JPEGQuality: 85}},
			{FormatBMP, EncodeOptions{}},
		},
	},
	{
		name: "test_geometric_100x100", pattern: PatternGeometric, width: 100, height: 100,
		formats: []formatSpec{
			{FormatPNG, EncodeOptions{PNGLevel: png.BestCompression}},
			{FormatJPEG, EncodeOptions{JPEGQuality: 90}},
			{FormatBMP, EncodeOptions{}},
		},
	},
}

// WriteTestImages renders the canonical test set into dir, creating the
// directory if needed, and returns the written files in order.
func WriteTestImages(ctx context.Context, dir string) ([]GeneratedImage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var generated []GeneratedImage
	for _, entry := range testSet {
		select {
		case <-ctx.Done():
			return generated, fmt.Errorf("generate images: %w", ctx.Err())
		default:
		}

		img, err := Render(entry.pattern, entry.width, entry.height)
		if err != nil {
			return generated, err
		}

		for _, spec := range entry.formats {
			path := filepath.Join(dir, entry.name+spec.format.Extension())
			size, err := writeEncoded(path, img, spec.format, spec.opts)
			if err != nil {
				return generated, err
			}
			generated = append(generated, GeneratedImage{
				Path:    path,
				Pattern: entry.pattern,
				Format:  spec.format,
				Size:    size,
			})
		}
	}

	return generated, nil
}

func writeEncoded(path string, img image.Image, format Format, opts EncodeOptions) (int64, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return int64(buf.Len()), nil
}
