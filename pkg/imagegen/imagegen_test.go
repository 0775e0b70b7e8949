package imagegen_test

import (
	"bytes"
	"context"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/imghex/pkg/imagegen"
	"github.com/yaklabco/imghex/pkg/sniff"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("gradient corners", func(t *testing.T) {
		t.Parallel()

		img := imagegen.Gradient(10, 10)
		assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(9, 9))

		// Mid-diagonal intensity follows 255*(x+y)/18.
		want := uint8(255 * 9 / 18)
		assert.Equal(t, color.RGBA{R: want, G: want, B: want, A: 255}, img.RGBAAt(4, 5))
	})

	t.Run("colorful channel cycling", func(t *testing.T) {
		t.Parallel()

		img := imagegen.Colorful(50, 50)
		assert.Equal(t, color.RGBA{R: 35, G: 10, B: 27, A: 255}, img.RGBAAt(7, 2))
	})

	t.Run("geometric squares on white", func(t *testing.T) {
		t.Parallel()

		img := imagegen.Geometric(100, 100)
		white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		assert.Equal(t, white, img.RGBAAt(99, 0))
		assert.Equal(t, color.RGBA{G: 255, B: 128, A: 255}, img.RGBAAt(0, 0))
	})

	t.Run("unknown pattern", func(t *testing.T) {
		t.Parallel()

		_, err := imagegen.Render("plaid", 10, 10)
		assert.Error(t, err)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		t.Parallel()

		_, err := imagegen.Render(imagegen.PatternSolid, 0, 10)
		assert.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	img := imagegen.Colorful(16, 16)

	tests := []struct {
		format imagegen.Format
		opts   imagegen.EncodeOptions
		want   sniff.Kind
	}{
		{imagegen.FormatPNG, imagegen.EncodeOptions{}, sniff.KindPNG},
		{imagegen.FormatJPEG, imagegen.EncodeOptions{JPEGQuality: 85}, sniff.KindJPEG},
		{imagegen.FormatBMP, imagegen.EncodeOptions{}, sniff.KindBMP},
		{imagegen.FormatWebP, imagegen.EncodeOptions{WebPLossless: true}, sniff.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, imagegen.Encode(&buf, img, tt.format, tt.opts))
			assert.NotZero(t, buf.Len())
			assert.Equal(t, tt.want, sniff.Detect(buf.Bytes()))
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		assert.Error(t, imagegen.Encode(&buf, img, "tiff", imagegen.EncodeOptions{}))
	})
}

func TestWriteTestImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	generated, err := imagegen.WriteTestImages(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, generated, 10)

	var names []string
	for _, g := range generated {
		assert.Positive(t, g.Size)
		names = append(names, filepath.Base(g.Path))
	}

	assert.Equal(t, []string{
		"test_minimal_black.png",
		"test_gradient_10x10.png",
		"test_gradient_10x10.jpg",
		"test_gradient_10x10.bmp",
		"test_colorful_50x50.png",
		"test_colorful_50x50.jpg",
		"test_colorful_50x50.bmp",
		"test_geometric_100x100.png",
		"test_geometric_100x100.jpg",
		"test_geometric_100x100.bmp",
	}, names)
}

func TestWriteTestImagesCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := imagegen.WriteTestImages(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
