package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/imghex/pkg/container"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileReport `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileReport represents a single file's structural report.
type JSONFileReport struct {
	Path  string     `json:"path"`
	Kind  string     `json:"kind"`
	Size  int        `json:"size"`
	Facts []JSONFact `json:"facts"`
	Error string     `json:"error,omitempty"`
}

// JSONFact is the flattened wire form of a structural fact. Type carries
// the fact kind discriminator; only the fields for that kind are set.
type JSONFact struct {
	Type string `json:"type"`

	// Chunk framing (PNG facts).
	Index       int    `json:"index,omitempty"`
	Offset      int    `json:"offset"`
	ChunkType   string `json:"chunkType,omitempty"`
	Length      uint32 `json:"length,omitempty"`
	DeclaredCRC string `json:"declaredCrc,omitempty"`

	// Image header fields.
	Width             uint32 `json:"width,omitempty"`
	Height            uint32 `json:"height,omitempty"`
	BitDepth          uint8  `json:"bitDepth,omitempty"`
	ColorType         uint8  `json:"colorType,omitempty"`
	CompressionMethod uint8  `json:"compressionMethod,omitempty"`
	FilterMethod      uint8  `json:"filterMethod,omitempty"`
	InterlaceMethod   uint8  `json:"interlaceMethod,omitempty"`

	// Image data fields.
	CompressedLen   int     `json:"compressedLen,omitempty"`
	DecompressedLen int     `json:"decompressedLen,omitempty"`
	Ratio           float64 `json:"ratio,omitempty"`
	Preview         string  `json:"preview,omitempty"`

	// Marker fields.
	Code     string `json:"code,omitempty"`
	Name     string `json:"name,omitempty"`
	Terminal bool   `json:"terminal,omitempty"`

	// BMP header fields.
	FileSize   uint32 `json:"fileSize,omitempty"`
	Reserved1  uint16 `json:"reserved1,omitempty"`
	Reserved2  uint16 `json:"reserved2,omitempty"`
	DataOffset uint32 `json:"dataOffset,omitempty"`
	HeaderSize uint32 `json:"headerSize,omitempty"`

	// Diagnostic fields.
	DiagCode string `json:"diagCode,omitempty"`
	Message  string `json:"message,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesAnalyzed    int            `json:"filesAnalyzed"`
	FilesErrored     int            `json:"filesErrored"`
	ByKind           map[string]int `json:"byKind"`
	TotalFacts       int            `json:"totalFacts"`
	TotalDiagnostics int            `json:"totalDiagnostics"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONReporter) buildOutput(result *Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileReport, 0),
		Summary: JSONSummary{
			ByKind: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileReport := JSONFileReport{
			Path:  file.Path,
			Facts: make([]JSONFact, 0),
		}

		if file.Err != nil {
			fileReport.Error = file.Err.Error()
			output.Summary.FilesErrored++
		}

		if file.Report != nil {
			fileReport.Kind = string(file.Report.ContainerKind)
			fileReport.Size = file.Report.Size
			output.Summary.ByKind[fileReport.Kind]++

			for _, fact := range file.Report.Facts {
				fileReport.Facts = append(fileReport.Facts, encodeFact(fact))
				output.Summary.TotalFacts++
				if fact.Kind() == container.KindDiagnostic {
					output.Summary.TotalDiagnostics++
				}
			}
		}

		output.Files = append(output.Files, fileReport)
		output.Summary.FilesAnalyzed++
	}

	return output
}

// encodeFact flattens a structural fact into its wire form. Exhaustive
// over the closed fact set.
func encodeFact(fact container.Fact) JSONFact {
	out := JSONFact{Type: string(fact.Kind())}

	switch f := fact.(type) {
	case container.ChunkFact:
		encodeChunkInfo(&out, f.ChunkInfo)

	case container.ImageHeaderFact:
		encodeChunkInfo(&out, f.ChunkInfo)
		out.Width = f.Width
		out.Height = f.Height
		out.BitDepth = f.BitDepth
		out.ColorType = f.ColorType
		out.CompressionMethod = f.CompressionMethod
		out.FilterMethod = f.FilterMethod
		out.InterlaceMethod = f.InterlaceMethod

	case container.ImageDataFact:
		encodeChunkInfo(&out, f.ChunkInfo)
		out.CompressedLen = f.CompressedLen
		out.DecompressedLen = f.DecompressedLen
		out.Ratio = f.Ratio
		out.Preview = fmt.Sprintf("%X", f.Preview)

	case container.EndOfStreamFact:
		encodeChunkInfo(&out, f.ChunkInfo)

	case container.MarkerFact:
		out.Index = f.Index
		out.Offset = f.Offset
		out.Code = fmt.Sprintf("0xFF%02X", f.Code)
		out.Name = f.Name
		out.Terminal = f.Terminal

	case container.BMPFileHeaderFact:
		out.FileSize = f.FileSize
		out.Reserved1 = f.Reserved1
		out.Reserved2 = f.Reserved2
		out.DataOffset = f.DataOffset

	case container.BMPInfoHeaderFact:
		out.HeaderSize = f.HeaderSize
		out.Width = f.Width
		out.Height = f.Height

	case container.DiagnosticFact:
		out.Offset = f.Offset
		out.DiagCode = string(f.Code)
		out.Message = f.Message
	}

	return out
}

func encodeChunkInfo(out *JSONFact, info container.ChunkInfo) {
	out.Index = info.Index
	out.Offset = info.Offset
	out.ChunkType = info.Type
	out.Length = info.Length
	out.DeclaredCRC = fmt.Sprintf("%08X", info.DeclaredCRC)
}
