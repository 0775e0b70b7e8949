package container

import (
	"fmt"

	"github.com/yaklabco/imghex/pkg/cursor"
	"github.com/yaklabco/imghex/pkg/sniff"
)

// BMP layout constants: the 14-byte file header is fixed; 26 bytes is the
// file header plus the common prefix of the info header (size, width,
// height). Info-header variants differ beyond that prefix, so the parser
// commits only to it.
const (
	bmpFileHeaderLen = 14
	bmpInfoPrefixLen = 26
)

// WalkBMP decodes the BMP file header and, when enough bytes exist, the
// info-header prefix. The buffer must begin with the BM signature;
// anything else is caller misuse and returns ErrWrongFormat. A buffer
// shorter than the 14-byte file header yields a truncated-header fact;
// between 14 and 26 bytes the file header alone is reported, which is not
// an error.
func WalkBMP(data []byte, _ Options) ([]Fact, error) {
	if sniff.Detect(data) != sniff.KindBMP {
		return nil, fmt.Errorf("%w: buffer is not a BMP stream", ErrWrongFormat)
	}

	var facts []Fact
	cur := cursor.New(data)

	if cur.Len() < bmpFileHeaderLen {
		facts = append(facts, DiagnosticFact{
			Code:   DiagTruncatedHeader,
			Offset: cur.Len(),
			Message: fmt.Sprintf("BMP file header needs %d bytes, buffer has %d",
				bmpFileHeaderLen, cur.Len()),
		})
		return facts, nil
	}

	fileSize, _ := cur.U32LE(2)
	reserved1, _ := cur.U16LE(6)
	reserved2, _ := cur.U16LE(8)
	dataOffset, _ := cur.U32LE(10)

	facts = append(facts, BMPFileHeaderFact{
		FileSize:   fileSize,
		Reserved1:  reserved1,
		Reserved2:  reserved2,
		DataOffset: dataOffset,
	})

	if cur.Len() >= bmpInfoPrefixLen {
		headerSize, _ := cur.U32LE(14)
		width, _ := cur.U32LE(18)
		height, _ := cur.U32LE(22)

		facts = append(facts, BMPInfoHeaderFact{
			HeaderSize: headerSize,
			Width:      width,
			Height:     height,
		})
	}

	return facts, nil
}
