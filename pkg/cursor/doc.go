// Package cursor provides a bounds-checked reader over a borrowed byte slice.
//
// CodeView record payloads are sequences of little-endian fields with no
// self-description: the only way to find field N+1 is to finish decoding
// field N. A Cursor tracks a position inside a slice and exposes primitive
// reads (fixed-width integers, length-prefixed and NUL-terminated strings,
// raw sub-slices) that fail with an explicit error when fewer bytes remain
// than the read requires. A Cursor never reads past the end of its slice and
// never panics on malformed input.
//
// Cursors do not copy or own the underlying data. A Cursor, and any sub-slice
// returned by Take, must not outlive the buffer it was created from.
package cursor
