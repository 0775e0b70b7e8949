// Package imagegen renders synthetic raster images and encodes them into
// the container formats the analyzer understands. The patterns are chosen
// to exercise compression differently: flat fills, smooth gradients, busy
// color noise, and repeating geometry.
package imagegen

import (
	"fmt"
	"image"
	"image/color"
)

// Pattern identifies a pixel pattern the renderer can produce.
type Pattern string

// Supported patterns.
const (
	PatternSolid     Pattern = "solid"
	PatternGradient  Pattern = "gradient"
	PatternColorful  Pattern = "colorful"
	PatternGeometric Pattern = "geometric"
)

// Render produces a width x height RGBA image filled with the pattern.
// Solid renders black; use Solid directly for other fill colors.
func Render(pattern Pattern, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render %s: invalid dimensions %dx%d", pattern, width, height)
	}

	switch pattern {
	case PatternSolid:
		return Solid(width, height, color.RGBA{A: 255}), nil
	case PatternGradient:
		return Gradient(width, height), nil
	case PatternColorful:
		return Colorful(width, height), nil
	case PatternGeometric:
		return Geometric(width, height), nil
	default:
		return nil, fmt.Errorf("render: unknown pattern %q", pattern)
	}
}

// Solid returns an image uniformly filled with c.
func Solid(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Gradient returns a diagonal grayscale ramp from black at the top-left
// corner to white at the bottom-right corner.
func Gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	span := width + height - 2
	if span <= 0 {
		span = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * (x + y) / span)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// Colorful returns a busy color pattern where each channel cycles at a
// different rate across the image.
func Colorful(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x * 5) % 256),
				G: uint8((y * 5) % 256),
				B: uint8(((x + y) * 3) % 256),
				A: 255,
			})
		}
	}
	return img
}

// Geometric returns a white canvas with a diagonal run of filled squares,
// each holding an outlined circle. Highly repetitive, so it compresses
// very differently under lossless and lossy codecs.
func Geometric(width, height int) *image.RGBA {
	img := Solid(width, height, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	limit := width
	if height < limit {
		limit = height
	}
	for i := 0; i+8 < limit; i += 10 {
		fill := color.RGBA{R: uint8(i % 256), G: uint8((255 - i) % 256), B: 128, A: 255}
		fillRect(img, i, i, i+8, i+8, fill)
		circleOutline(img, i+4, i+4, 3, color.RGBA{A: 255})
	}
	return img
}

// fillRect fills the inclusive rectangle [x0,y0]..[x1,y1].
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// circleOutline draws a midpoint-algorithm circle outline centered at
// (cx, cy).
func circleOutline(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		img.SetRGBA(cx+x, cy+y, c)
		img.SetRGBA(cx+y, cy+x, c)
		img.SetRGBA(cx-y, cy+x, c)
		img.SetRGBA(cx-x, cy+y, c)
		img.SetRGBA(cx-x, cy-y, c)
		img.SetRGBA(cx-y, cy-x, c)
		img.SetRGBA(cx+y, cy-x, c)
		img.SetRGBA(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
