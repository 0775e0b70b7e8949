package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// defaultHexPreviewLen is the length of the buffer-head hex preview.
const defaultHexPreviewLen = 128

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowHexDump includes the buffer-head hex preview (text format).
	ShowHexDump bool

	// HexPreviewLen is the number of bytes previewed from the buffer head.
	HexPreviewLen int

	// Compact uses compact/minified output where applicable.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:        os.Stdout,
		ErrorWriter:   os.Stderr,
		Format:        FormatText,
		Color:         "auto",
		ShowHexDump:   true,
		HexPreviewLen: defaultHexPreviewLen,
		Compact:       false,
	}
}
