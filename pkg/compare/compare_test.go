package compare_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/imghex/internal/ui/pretty"
	"github.com/yaklabco/imghex/pkg/compare"
	"github.com/yaklabco/imghex/pkg/imagegen"
)

// writeImage encodes a colorful pattern into dir under name.
func writeImage(t *testing.T, dir, name string, format imagegen.Format, opts imagegen.EncodeOptions) string {
	t.Helper()

	img := imagegen.Colorful(20, 20)
	var buf bytes.Buffer
	require.NoError(t, imagegen.Encode(&buf, img, format, opts))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestAnalyzeImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeImage(t, dir, "pattern.png", imagegen.FormatPNG, imagegen.EncodeOptions{})

	analysis, err := compare.AnalyzeImage(context.Background(), path, compare.Options{
		JPEGQualities: []int{90, 50},
	})
	require.NoError(t, err)

	assert.Equal(t, "pattern", analysis.Name)
	assert.Equal(t, 20, analysis.Width)
	assert.Equal(t, 20, analysis.Height)

	// 2 PNG + 1 BMP + 2 WebP + 2 JPEG.
	require.Len(t, analysis.Variants, 7)

	// Sorted ascending by size.
	for i := 1; i < len(analysis.Variants); i++ {
		assert.LessOrEqual(t, analysis.Variants[i-1].Size, analysis.Variants[i].Size)
	}
	assert.Equal(t, analysis.Variants[0], analysis.Smallest())

	jpeg, ok := analysis.BestJPEG()
	require.True(t, ok)
	assert.Equal(t, "q90", jpeg.Name)

	// A 20x20 RGB BMP carries 14+40 header bytes plus raw rows.
	for _, v := range analysis.Variants {
		if v.Format == "BMP" {
			assert.Equal(t, int64(14+40+20*20*3), v.Size)
		}
	}
}

func TestAnalyzeImageErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := compare.AnalyzeImage(context.Background(), "/nonexistent.png", compare.Options{})
		assert.Error(t, err)
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "junk.png")
		require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

		_, err := compare.AnalyzeImage(context.Background(), path, compare.Options{})
		assert.ErrorContains(t, err, "decode")
	})
}

func TestAnalyzeDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeImage(t, dir, "a.png", imagegen.FormatPNG, imagegen.EncodeOptions{})
	writeImage(t, dir, "b.bmp", imagegen.FormatBMP, imagegen.EncodeOptions{})

	summary, err := compare.AnalyzeDirectory(context.Background(), dir, compare.Options{
		JPEGQualities: []int{85},
	})
	require.NoError(t, err)

	require.Len(t, summary.Images, 2)
	assert.Equal(t, "a", summary.Images[0].Name)
	assert.Equal(t, "b", summary.Images[1].Name)

	// Per image: 2 PNG, 1 BMP, 2 WebP, 1 JPEG.
	assert.Equal(t, 4, summary.Formats["PNG"].Count)
	assert.Equal(t, 2, summary.Formats["BMP"].Count)
	assert.Equal(t, 2, summary.Formats["JPEG"].Count)
	assert.Equal(t, 4, summary.Formats["WebP"].Count)
	assert.InDelta(t, float64(summary.Formats["BMP"].TotalSize)/2, summary.Formats["BMP"].AvgSize, 0.001)

	assert.Equal(t, []string{"BMP", "JPEG", "PNG", "WebP"}, summary.FormatNames())
}

func TestAnalyzeDirectoryEmpty(t *testing.T) {
	t.Parallel()

	_, err := compare.AnalyzeDirectory(context.Background(), t.TempDir(), compare.Options{})
	assert.ErrorContains(t, err, "no images")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeImage(t, dir, "a.png", imagegen.FormatPNG, imagegen.EncodeOptions{})

	summary, err := compare.AnalyzeDirectory(context.Background(), dir, compare.Options{
		JPEGQualities: []int{85},
	})
	require.NoError(t, err)

	out := filepath.Join(dir, "results.json")
	require.NoError(t, summary.WriteJSON(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded compare.Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Images, 1)
	assert.Equal(t, "a", decoded.Images[0].Name)
	assert.NotEmpty(t, decoded.Formats["PNG"].Count)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeImage(t, dir, "sample.png", imagegen.FormatPNG, imagegen.EncodeOptions{})

	summary, err := compare.AnalyzeDirectory(context.Background(), dir, compare.Options{
		JPEGQualities: []int{85},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	compare.RenderText(&buf, summary, pretty.NewStyles(false), 80)

	out := buf.String()
	assert.Contains(t, out, "sample (20x20 px)")
	assert.Contains(t, out, "best compression:")
	assert.Contains(t, out, "best quality JPEG: q85")
	assert.Contains(t, out, "format statistics")
	assert.True(t, strings.Contains(out, "PNG") && strings.Contains(out, "WebP"))
}
