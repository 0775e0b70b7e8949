// Package cursor provides bounds-checked access to an immutable byte buffer.
// It is the foundation for all container parsers: every read is expressed as
// an (offset, length) range resolved against the owning buffer, so payload
// access stays zero-copy without risking reads past the end.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would extend past the buffer end.
var ErrOutOfBounds = errors.New("read out of bounds")

// Cursor wraps an immutable byte buffer. The buffer must not be mutated
// after the cursor is created; returned slices are views into it.
type Cursor struct {
	data []byte
}

// New creates a cursor over data. The cursor does not copy the buffer.
func New(data []byte) Cursor {
	return Cursor{data: data}
}

// Len returns the total buffer length.
func (c Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of bytes from offset to the buffer end.
// A negative or past-end offset yields zero.
func (c Cursor) Remaining(offset int) int {
	if offset < 0 || offset > len(c.data) {
		return 0
	}
	return len(c.data) - offset
}

// At returns the byte range [offset, offset+length) as a view into the
// buffer. It fails with ErrOutOfBounds when the range does not fit.
func (c Cursor) At(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(c.data) {
		return nil, fmt.Errorf("%w: range [%d, %d) in buffer of %d bytes",
			ErrOutOfBounds, offset, offset+length, len(c.data))
	}
	return c.data[offset : offset+length], nil
}

// U32BE decodes a big-endian uint32 at offset.
func (c Cursor) U32BE(offset int) (uint32, error) {
	raw, err := c.At(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(raw), nil
}

// U32LE decodes a little-endian uint32 at offset.
func (c Cursor) U32LE(offset int) (uint32, error) {
	raw, err := c.At(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

// U16LE decodes a little-endian uint16 at offset.
func (c Cursor) U16LE(offset int) (uint16, error) {
	raw, err := c.At(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(raw), nil
}
