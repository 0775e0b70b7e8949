package imagegen

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
)

// Format identifies an output container format.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatWebP Format = "webp"
)

// Extension returns the conventional filename extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatWebP:
		return ".webp"
	default:
		return "." + string(f)
	}
}

// EncodeOptions carries the per-format tuning knobs. Zero values select
// sensible defaults for every format.
type EncodeOptions struct {
	// PNGLevel selects the PNG deflate effort. The zero value is the
	// encoder default; BestCompression matches an "optimized" save.
	PNGLevel png.CompressionLevel

	// JPEGQuality is the JPEG quality in [1,100]; 0 means 75.
	JPEGQuality int

	// WebPLossless selects lossless WebP encoding.
	WebPLossless bool

	// WebPQuality is the lossy WebP quality in (0,100]; 0 means 80.
	WebPQuality float32
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: opts.PNGLevel}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encode bmp: %w", err)
		}
	case FormatWebP:
		quality := opts.WebPQuality
		if quality == 0 {
			quality = 80
		}
		webpOpts := &webp.Options{Lossless: opts.WebPLossless, Quality: quality}
		if err := webp.Encode(w, img, webpOpts); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
	default:
		return fmt.Errorf("encode: unknown format %q", format)
	}
	return nil
}
