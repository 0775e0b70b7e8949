// Package reporter renders structural analysis reports as styled text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/imghex/pkg/container"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// FileAnalysis is one analyzed input: the buffer, its structural report,
// or the load error that prevented analysis.
type FileAnalysis struct {
	// Path is the input file path.
	Path string

	// Data is the analyzed buffer. Renderers use it for the hex preview.
	Data []byte

	// Report is the structural report, nil when Err is set.
	Report *container.Report

	// Err is the load error, if the file could not be read.
	Err error
}

// Result aggregates the analyses of one run in input order.
type Result struct {
	Files []FileAnalysis
}

// Reporter formats and writes analysis results.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.HexPreviewLen == 0 {
		opts.HexPreviewLen = DefaultOptions().HexPreviewLen
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
