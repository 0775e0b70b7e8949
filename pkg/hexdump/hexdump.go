// Package hexdump renders byte ranges as aligned hex plus an ASCII gutter.
// It is pure formatting with no container knowledge, shared by all report
// renderers.
package hexdump

import (
	"fmt"
	"strings"
)

const bytesPerRow = 16

// printable ASCII range rendered verbatim in the gutter.
const (
	printableMin = 0x20
	printableMax = 0x7E
)

// Dump renders [start, start+length) of data in 16-byte rows. Each row is
// an uppercase 4-digit hex offset, 16 space-separated hex byte values
// (blank triplets past the buffer end), and an ASCII gutter where
// non-printable bytes render as '.'. The range is clamped to the buffer;
// an empty range yields an empty string.
func Dump(data []byte, start, length int) string {
	if start < 0 {
		length += start
		start = 0
	}
	end := start + length
	if end > len(data) {
		end = len(data)
	}
	if start >= end {
		return ""
	}

	var sb strings.Builder
	for row := start; row < end; row += bytesPerRow {
		writeRow(&sb, data, row, end)
	}
	return sb.String()
}

// writeRow renders one 16-byte row starting at offset row.
func writeRow(sb *strings.Builder, data []byte, row, end int) {
	fmt.Fprintf(sb, "%04X: ", row)

	var ascii [bytesPerRow]byte
	for i := 0; i < bytesPerRow; i++ {
		if row+i < end {
			b := data[row+i]
			fmt.Fprintf(sb, "%02X ", b)
			if b >= printableMin && b <= printableMax {
				ascii[i] = b
			} else {
				ascii[i] = '.'
			}
		} else {
			sb.WriteString("   ")
			ascii[i] = ' '
		}
	}

	sb.WriteString(" |")
	sb.Write(ascii[:])
	sb.WriteString("|\n")
}

// Rows returns the number of rows Dump would produce for the given range.
func Rows(dataLen, start, length int) int {
	if start < 0 {
		length += start
		start = 0
	}
	end := start + length
	if end > dataLen {
		end = dataLen
	}
	if start >= end {
		return 0
	}
	return (end - start + bytesPerRow - 1) / bytesPerRow
}
