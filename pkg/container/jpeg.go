package container

import (
	"fmt"

	"github.com/yaklabco/imghex/pkg/sniff"
)

// JPEG marker codes with structural significance.
const (
	markerSOI = 0xD8
	markerEOI = 0xD9
	markerSOS = 0xDA
)

// markerNames maps marker codes to display names.
//
//nolint:gochecknoglobals // Fixed format constants
var markerNames = map[uint8]string{
	markerSOI: "SOI (Start of Image)",
	markerEOI: "EOI (End of Image)",
	markerSOS: "SOS (Start of Scan)",
	0xDB:      "DQT (Define Quantization Table)",
	0xC0:      "SOF0 (Start of Frame)",
	0xC4:      "DHT (Define Huffman Table)",
	0xE0:      "APP0 (Application Data)",
}

// MarkerName resolves a marker code to its display name.
func MarkerName(code uint8) string {
	if name, ok := markerNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", code)
}

// WalkJPEG scans a JPEG buffer for markers and returns the structural
// facts found. The buffer must begin with the SOI signature; anything
// else is caller misuse and returns ErrWrongFormat.
//
// The scan advances byte by byte: each 0xFF is treated as a marker
// introducer and the following byte as the marker code. EOI and SOS both
// terminate the walk, because entropy-coded scan data after SOS is not
// marker-structured and must not be misread as markers. Reaching the
// buffer end without a terminal marker yields an incomplete-stream fact.
func WalkJPEG(data []byte, _ Options) ([]Fact, error) {
	if sniff.Detect(data) != sniff.KindJPEG {
		return nil, fmt.Errorf("%w: buffer is not a JPEG stream", ErrWrongFormat)
	}

	var facts []Fact
	state := stateScanning
	index := 0

	for offset := 0; offset < len(data)-1 && state == stateScanning; offset++ {
		if data[offset] != 0xFF {
			continue
		}
		code := data[offset+1]
		index++

		terminal := code == markerEOI || code == markerSOS
		facts = append(facts, MarkerFact{
			Index:    index,
			Offset:   offset,
			Code:     code,
			Name:     MarkerName(code),
			Terminal: terminal,
		})
		if terminal {
			state = stateTerminated
		}
	}

	if state == stateScanning {
		facts = append(facts, DiagnosticFact{
			Code:    DiagIncompleteStream,
			Offset:  len(data),
			Message: "buffer ended without an EOI or SOS marker",
		})
	}

	return facts, nil
}
