package cursor

import (
	"encoding/binary"
	"fmt"
)

// ErrShortRead is the sentinel wrapped by every truncation error returned
// from a Cursor read. Callers match it with errors.Is.
var ErrShortRead = &ReadError{What: "read", Need: 0, Have: 0}

// ReadError reports a read that would run past the end of the slice.
type ReadError struct {
	What string // which primitive was being read
	Need int    // bytes required
	Have int    // bytes remaining
}

func (e *ReadError) Error() string {
	if e.Need == 0 && e.Have == 0 {
		return "cursor: short read"
	}
	return fmt.Sprintf("cursor: short read: need %d bytes for %s, have %d", e.Need, e.What, e.Have)
}

// Is makes every ReadError match ErrShortRead.
func (e *ReadError) Is(target error) bool {
	_, ok := target.(*ReadError)
	return ok
}

// Cursor reads little-endian primitives from a borrowed byte slice.
// The zero value is an empty cursor; use New to wrap a slice.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset from the start of the slice.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of bytes remaining.
func (c *Cursor) Len() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

// Empty reports whether no bytes remain.
func (c *Cursor) Empty() bool {
	return c.Len() == 0
}

// Seek repositions the cursor to an absolute offset. Offsets beyond the end
// of the slice are allowed; subsequent reads simply see an empty remainder.
func (c *Cursor) Seek(pos int) {
	c.pos = pos
}

func (c *Cursor) short(what string, need int) error {
	return &ReadError{What: what, Need: need, Have: c.Len()}
}

// Take consumes exactly n bytes and returns them as a sub-slice of the
// underlying buffer. The returned slice is not a copy.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, c.short("raw bytes", n)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() (uint8, error) {
	if c.Len() < 1 {
		return 0, c.short("u8", 1)
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// Uint16 reads a little-endian 16-bit integer.
func (c *Cursor) Uint16() (uint16, error) {
	if c.Len() < 2 {
		return 0, c.short("u16", 2)
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// Uint32 reads a little-endian 32-bit integer.
func (c *Cursor) Uint32() (uint32, error) {
	if c.Len() < 4 {
		return 0, c.short("u32", 4)
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// Uint64 reads a little-endian 64-bit integer.
func (c *Cursor) Uint64() (uint64, error) {
	if c.Len() < 8 {
		return 0, c.short("u64", 8)
	}
	v := binary.LittleEndian.Uint64(c.data[c.pos:])
	c.pos += 8
	return v, nil
}

// Int8 reads one byte as a signed integer.
func (c *Cursor) Int8() (int8, error) {
	v, err := c.Uint8()
	return int8(v), err
}

// Int16 reads a little-endian signed 16-bit integer.
func (c *Cursor) Int16() (int16, error) {
	v, err := c.Uint16()
	return int16(v), err
}

// Int32 reads a little-endian signed 32-bit integer.
func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	return int32(v), err
}

// Int64 reads a little-endian signed 64-bit integer.
func (c *Cursor) Int64() (int64, error) {
	v, err := c.Uint64()
	return int64(v), err
}

// PascalString reads a 1-byte length followed by that many bytes. The string
// is not NUL-terminated. This is the legacy ("_ST") name encoding.
func (c *Cursor) PascalString() (string, error) {
	n, err := c.Uint8()
	if err != nil {
		return "", err
	}
	b, err := c.Take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CString reads bytes up to and including a terminating NUL and returns the
// string without the terminator. A missing terminator is a truncation error.
func (c *Cursor) CString() (string, error) {
	for i := c.pos; i < len(c.data); i++ {
		if c.data[i] == 0 {
			s := string(c.data[c.pos:i])
			c.pos = i + 1
			return s, nil
		}
	}
	return "", c.short("NUL-terminated string", c.Len()+1)
}
