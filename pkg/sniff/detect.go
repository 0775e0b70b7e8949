// Package sniff classifies byte buffers into image container kinds.
// Detection compares fixed byte signatures at the buffer head, checked
// from the longest signature down so a PNG is never misread as BMP.
package sniff

import "bytes"

// Kind identifies a container format.
type Kind string

// Container kinds detectable from a buffer prefix.
const (
	KindPNG     Kind = "png"
	KindJPEG    Kind = "jpeg"
	KindBMP     Kind = "bmp"
	KindUnknown Kind = "unknown"
)

// Container signatures.
//
//nolint:gochecknoglobals // Fixed format constants
var (
	pngSignature  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSignature = []byte{0xFF, 0xD8}
	bmpSignature  = []byte{'B', 'M'}
)

// PNGSignatureLen is the length of the PNG file signature.
const PNGSignatureLen = len("\x89PNG\r\n\x1a\n")

// Detect classifies data by its signature. Buffers shorter than the
// shortest signature (2 bytes) are Unknown; detection never fails.
func Detect(data []byte) Kind {
	switch {
	case bytes.HasPrefix(data, pngSignature):
		return KindPNG
	case bytes.HasPrefix(data, jpegSignature):
		return KindJPEG
	case bytes.HasPrefix(data, bmpSignature):
		return KindBMP
	default:
		return KindUnknown
	}
}

// String returns the upper-case display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPNG:
		return "PNG"
	case KindJPEG:
		return "JPEG"
	case KindBMP:
		return "BMP"
	default:
		return "Unknown"
	}
}
