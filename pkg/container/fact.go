// Package container walks the internal framing of raster image containers
// (PNG chunks, JPEG markers, BMP headers) and produces an ordered sequence
// of structural facts. It validates structural invariants and recovers
// every malformed-input condition into a diagnostic fact, so analysis
// always completes.
package container

import "github.com/yaklabco/imghex/pkg/sniff"

// FactKind discriminates the closed set of structural fact variants.
type FactKind string

// Structural fact kinds. Renderers switch exhaustively over this set, so
// adding a kind is a compile-visible change.
const (
	KindChunk         FactKind = "chunk"
	KindImageHeader   FactKind = "image_header"
	KindImageData     FactKind = "image_data"
	KindEndOfStream   FactKind = "end_of_stream"
	KindMarker        FactKind = "marker"
	KindBMPFileHeader FactKind = "bmp_file_header"
	KindBMPInfoHeader FactKind = "bmp_info_header"
	KindDiagnostic    FactKind = "diagnostic"
)

// Fact is one decoded structural record. Concrete fact types form a closed
// set; renderers dispatch with a type switch.
type Fact interface {
	Kind() FactKind
}

// ChunkInfo carries the framing common to every PNG chunk: position,
// declared length, and the declared (not recomputed) CRC.
type ChunkInfo struct {
	// Index is the 1-based position of the chunk in the stream.
	Index int

	// Offset is the byte offset of the chunk's length field.
	Offset int

	// Type is the 4-byte ASCII type tag.
	Type string

	// Length is the declared payload length.
	Length uint32

	// DeclaredCRC is the CRC-32 value stored in the chunk trailer.
	DeclaredCRC uint32
}

// ChunkFact reports a chunk with no type-specific decoding.
type ChunkFact struct {
	ChunkInfo
}

// Kind implements Fact.
func (ChunkFact) Kind() FactKind { return KindChunk }

// ImageHeaderFact reports a decoded IHDR chunk. Valid only when the chunk
// payload is exactly 13 bytes; shorter or longer payloads are reported as
// a malformed-field diagnostic instead.
type ImageHeaderFact struct {
	ChunkInfo

	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Kind implements Fact.
func (ImageHeaderFact) Kind() FactKind { return KindImageHeader }

// ImageDataFact reports an IDAT chunk whose payload inflated successfully.
type ImageDataFact struct {
	ChunkInfo

	// CompressedLen is the payload length in bytes.
	CompressedLen int

	// DecompressedLen is the inflated length in bytes.
	DecompressedLen int

	// Ratio is DecompressedLen / CompressedLen (zero when the payload is empty).
	Ratio float64

	// Preview holds up to the first 16 decompressed bytes.
	Preview []byte
}

// Kind implements Fact.
func (ImageDataFact) Kind() FactKind { return KindImageData }

// EndOfStreamFact reports the IEND chunk that terminates a PNG walk.
type EndOfStreamFact struct {
	ChunkInfo
}

// Kind implements Fact.
func (EndOfStreamFact) Kind() FactKind { return KindEndOfStream }

// MarkerFact reports one JPEG marker.
type MarkerFact struct {
	// Index is the 1-based position of the marker in the scan.
	Index int

	// Offset is the position of the 0xFF introducer byte.
	Offset int

	// Code is the marker code byte following 0xFF.
	Code uint8

	// Name is the human-readable marker name.
	Name string

	// Terminal is true for EOI and SOS, which end the walk.
	Terminal bool
}

// Kind implements Fact.
func (MarkerFact) Kind() FactKind { return KindMarker }

// BMPFileHeaderFact reports the fixed 14-byte BMP file header.
type BMPFileHeaderFact struct {
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// Kind implements Fact.
func (BMPFileHeaderFact) Kind() FactKind { return KindBMPFileHeader }

// BMPInfoHeaderFact reports the common prefix of the bitmap info header,
// decoded best-effort when at least 26 bytes are present.
type BMPInfoHeaderFact struct {
	HeaderSize uint32
	Width      uint32
	Height     uint32
}

// Kind implements Fact.
func (BMPInfoHeaderFact) Kind() FactKind { return KindBMPInfoHeader }

// DiagCode categorizes diagnostic facts.
type DiagCode string

// Diagnostic codes for recoverable structural problems.
const (
	DiagTruncatedChunk       DiagCode = "truncated_chunk"
	DiagTruncatedHeader      DiagCode = "truncated_header"
	DiagMalformedField       DiagCode = "malformed_field"
	DiagDecompressionFailure DiagCode = "decompression_failure"
	DiagChecksumMismatch     DiagCode = "checksum_mismatch"
	DiagIncompleteStream     DiagCode = "incomplete_stream"
)

// DiagnosticFact reports a recoverable structural problem. Walks convert
// every malformed-input condition into one of these and continue or halt
// locally; they never surface as errors to the caller.
type DiagnosticFact struct {
	// Code categorizes the problem.
	Code DiagCode

	// Offset is the buffer position the problem was detected at.
	Offset int

	// Message is the human-readable description.
	Message string
}

// Kind implements Fact.
func (DiagnosticFact) Kind() FactKind { return KindDiagnostic }

// Report is the result of one analysis pass: the detected container kind
// and the ordered, append-only fact sequence derived from the buffer.
type Report struct {
	// ContainerKind is the detected format.
	ContainerKind sniff.Kind

	// Size is the analyzed buffer length in bytes.
	Size int

	// Facts is the ordered sequence of structural facts.
	Facts []Fact
}

// Diagnostics returns the diagnostic facts in report order.
func (r *Report) Diagnostics() []DiagnosticFact {
	var diags []DiagnosticFact
	for _, fact := range r.Facts {
		if diag, ok := fact.(DiagnosticFact); ok {
			diags = append(diags, diag)
		}
	}
	return diags
}

// CountByKind returns the number of facts per kind.
func (r *Report) CountByKind() map[FactKind]int {
	counts := make(map[FactKind]int, len(r.Facts))
	for _, fact := range r.Facts {
		counts[fact.Kind()]++
	}
	return counts
}
