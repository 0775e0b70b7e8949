package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/imghex/internal/ui/pretty"
	"github.com/yaklabco/imghex/pkg/container"
	"github.com/yaklabco/imghex/pkg/hexdump"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to analyze."))
		return nil
	}

	for i, file := range result.Files {
		if i > 0 {
			fmt.Fprintln(r.bw)
		}
		r.renderFile(&file)
	}

	return nil
}

// renderFile writes the full structural description of one analyzed file.
func (r *TextReporter) renderFile(file *FileAnalysis) {
	if file.Err != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(file.Path),
			r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Err)),
		)
		return
	}

	report := file.Report
	fmt.Fprintln(r.bw, r.styles.FilePath.Render(file.Path))
	fmt.Fprintf(r.bw, "%s %s  %s %d bytes\n",
		r.styles.FactLabel.Render("kind:"),
		r.styles.Kind.Render(report.ContainerKind.String()),
		r.styles.FactLabel.Render("size:"),
		report.Size,
	)

	if report.ContainerKind.String() == "Unknown" {
		fmt.Fprintln(r.bw, r.styles.Diagnostic.Render("unrecognized container format"))
	}

	for _, fact := range report.Facts {
		r.renderFact(fact)
	}

	if r.opts.ShowHexDump && len(file.Data) > 0 {
		previewLen := r.opts.HexPreviewLen
		fmt.Fprintln(r.bw, r.styles.Header.Render(
			fmt.Sprintf("hex dump (first %d bytes):", min(previewLen, len(file.Data)))))
		fmt.Fprint(r.bw, hexdump.Dump(file.Data, 0, previewLen))
	}
}

// renderFact writes one structural fact. The switch is exhaustive over
// the closed fact set; a new fact kind must be handled here.
func (r *TextReporter) renderFact(fact container.Fact) {
	switch f := fact.(type) {
	case container.ChunkFact:
		r.chunkLine(f.ChunkInfo, "")

	case container.ImageHeaderFact:
		r.chunkLine(f.ChunkInfo, fmt.Sprintf("%dx%d px, bit depth %d, color type %d, compression %d, filter %d, interlace %d",
			f.Width, f.Height, f.BitDepth, f.ColorType, f.CompressionMethod, f.FilterMethod, f.InterlaceMethod))

	case container.ImageDataFact:
		r.chunkLine(f.ChunkInfo, fmt.Sprintf("%d -> %d bytes inflated (ratio %.2f), first bytes % X",
			f.CompressedLen, f.DecompressedLen, f.Ratio, f.Preview))

	case container.EndOfStreamFact:
		r.chunkLine(f.ChunkInfo, "end of stream")

	case container.MarkerFact:
		fmt.Fprintf(r.bw, "  %s %s %s\n",
			r.styles.Offset.Render(fmt.Sprintf("%04X:", f.Offset)),
			r.styles.FactLabel.Render(fmt.Sprintf("marker 0xFF%02X", f.Code)),
			r.styles.FactValue.Render(f.Name),
		)

	case container.BMPFileHeaderFact:
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.FactLabel.Render("file header:"),
			r.styles.FactValue.Render(fmt.Sprintf("file size %d, reserved %d/%d, data offset %d",
				f.FileSize, f.Reserved1, f.Reserved2, f.DataOffset)),
		)

	case container.BMPInfoHeaderFact:
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.FactLabel.Render("info header:"),
			r.styles.FactValue.Render(fmt.Sprintf("header size %d, %dx%d px",
				f.HeaderSize, f.Width, f.Height)),
		)

	case container.DiagnosticFact:
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Diagnostic.Render(fmt.Sprintf("! %s @%04X:", f.Code, f.Offset)),
			r.styles.FactValue.Render(f.Message),
		)
	}
}

// chunkLine writes a PNG chunk line with optional type-specific detail.
func (r *TextReporter) chunkLine(info container.ChunkInfo, detail string) {
	fmt.Fprintf(r.bw, "  %s %s %s",
		r.styles.Offset.Render(fmt.Sprintf("%04X:", info.Offset)),
		r.styles.FactLabel.Render(fmt.Sprintf("chunk #%d %s", info.Index, info.Type)),
		r.styles.Dim.Render(fmt.Sprintf("length=%d crc=%08X", info.Length, info.DeclaredCRC)),
	)
	if detail != "" {
		fmt.Fprintf(r.bw, "  %s", r.styles.FactValue.Render(detail))
	}
	fmt.Fprintln(r.bw)
}
