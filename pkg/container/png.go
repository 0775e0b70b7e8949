package container

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/yaklabco/imghex/pkg/cursor"
	"github.com/yaklabco/imghex/pkg/sniff"
)

// PNG chunk framing: 4-byte length + 4-byte type before the payload,
// 4-byte CRC after it.
const (
	chunkOverhead  = 12
	ihdrPayloadLen = 13
	idatPreviewLen = 16
)

// walkState models the walk control flow. Both the PNG and JPEG walks
// terminate early on a specific tag; the state makes that transition
// explicit rather than an ad hoc early return.
type walkState uint8

const (
	stateScanning walkState = iota
	stateTerminated
)

// pngWalker iterates PNG chunks and accumulates structural facts.
type pngWalker struct {
	cur       cursor.Cursor
	opts      Options
	facts     []Fact
	state     walkState
	offset    int
	nextIndex int
}

// WalkPNG walks the chunk sequence of a PNG buffer and returns the
// structural facts found. The buffer must carry the PNG signature;
// calling it with any other content is a programmer error and returns
// ErrWrongFormat. Structural problems inside the chunk stream never
// produce an error — they become diagnostic facts.
func WalkPNG(data []byte, opts Options) ([]Fact, error) {
	if sniff.Detect(data) != sniff.KindPNG {
		return nil, fmt.Errorf("%w: buffer is not a PNG stream", ErrWrongFormat)
	}

	w := &pngWalker{
		cur:       cursor.New(data),
		opts:      opts,
		state:     stateScanning,
		offset:    sniff.PNGSignatureLen,
		nextIndex: 1,
	}

	for w.state == stateScanning {
		w.step()
	}
	return w.facts, nil
}

// step decodes one chunk, or terminates the walk when a full chunk cannot
// be framed.
func (w *pngWalker) step() {
	if w.cur.Remaining(w.offset) < chunkOverhead {
		w.emit(DiagnosticFact{
			Code:   DiagTruncatedChunk,
			Offset: w.offset,
			Message: fmt.Sprintf("need %d bytes for a chunk header and CRC, %d remain",
				chunkOverhead, w.cur.Remaining(w.offset)),
		})
		w.state = stateTerminated
		return
	}

	length, _ := w.cur.U32BE(w.offset)
	if w.cur.Remaining(w.offset) < chunkOverhead+int(length) {
		w.emit(DiagnosticFact{
			Code:   DiagTruncatedChunk,
			Offset: w.offset,
			Message: fmt.Sprintf("chunk declares %d payload bytes but only %d remain after the header",
				length, w.cur.Remaining(w.offset)-chunkOverhead),
		})
		w.state = stateTerminated
		return
	}

	typeTag, _ := w.cur.At(w.offset+4, 4)
	payload, _ := w.cur.At(w.offset+8, int(length))
	declaredCRC, _ := w.cur.U32BE(w.offset + 8 + int(length))

	info := ChunkInfo{
		Index:       w.nextIndex,
		Offset:      w.offset,
		Type:        string(typeTag),
		Length:      length,
		DeclaredCRC: declaredCRC,
	}
	w.nextIndex++

	switch info.Type {
	case "IHDR":
		w.emitIHDR(info, payload)
	case "IDAT":
		w.emitIDAT(info, payload)
	case "IEND":
		// The only chunk type that halts iteration: all real PNGs end here.
		w.emit(EndOfStreamFact{ChunkInfo: info})
		w.state = stateTerminated
	default:
		w.emit(ChunkFact{ChunkInfo: info})
	}

	if w.opts.StrictCRC {
		w.verifyCRC(info, typeTag, payload)
	}

	w.offset += chunkOverhead + int(length)
}

// emitIHDR decodes the image header fields when the payload has the exact
// required length, and reports a malformed field otherwise.
func (w *pngWalker) emitIHDR(info ChunkInfo, payload []byte) {
	if len(payload) != ihdrPayloadLen {
		w.emit(DiagnosticFact{
			Code:   DiagMalformedField,
			Offset: info.Offset,
			Message: fmt.Sprintf("IHDR payload is %d bytes, must be exactly %d",
				len(payload), ihdrPayloadLen),
		})
		return
	}

	p := cursor.New(payload)
	width, _ := p.U32BE(0)
	height, _ := p.U32BE(4)

	w.emit(ImageHeaderFact{
		ChunkInfo:         info,
		Width:             width,
		Height:            height,
		BitDepth:          payload[8],
		ColorType:         payload[9],
		CompressionMethod: payload[10],
		FilterMethod:      payload[11],
		InterlaceMethod:   payload[12],
	})
}

// emitIDAT attempts an independent zlib inflate of the payload. Failure is
// non-fatal: the walk reports it and continues with the next chunk.
func (w *pngWalker) emitIDAT(info ChunkInfo, payload []byte) {
	decompressed, err := inflate(payload)
	if err != nil {
		w.emit(DiagnosticFact{
			Code:    DiagDecompressionFailure,
			Offset:  info.Offset,
			Message: fmt.Sprintf("IDAT inflate failed: %v", err),
		})
		return
	}

	ratio := 0.0
	if len(payload) > 0 {
		ratio = float64(len(decompressed)) / float64(len(payload))
	}

	preview := decompressed
	if len(preview) > idatPreviewLen {
		preview = preview[:idatPreviewLen]
	}

	w.emit(ImageDataFact{
		ChunkInfo:       info,
		CompressedLen:   len(payload),
		DecompressedLen: len(decompressed),
		Ratio:           ratio,
		Preview:         preview,
	})
}

// verifyCRC recomputes CRC-32 over type tag and payload and reports a
// mismatch against the declared trailer value.
func (w *pngWalker) verifyCRC(info ChunkInfo, typeTag, payload []byte) {
	computed := crc32.ChecksumIEEE(typeTag)
	computed = crc32.Update(computed, crc32.IEEETable, payload)
	if computed != info.DeclaredCRC {
		w.emit(DiagnosticFact{
			Code:   DiagChecksumMismatch,
			Offset: info.Offset,
			Message: fmt.Sprintf("chunk %s declares CRC %08X, computed %08X",
				info.Type, info.DeclaredCRC, computed),
		})
	}
}

func (w *pngWalker) emit(fact Fact) {
	w.facts = append(w.facts, fact)
}

// inflate decompresses a zlib stream fully into memory.
func inflate(payload []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}
