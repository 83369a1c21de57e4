package cvsym

import (
	"errors"
	"fmt"
)

// Sentinel errors reported while walking or decoding a symbol stream.
var (
	// ErrSymbolTooShort means a record length prefix was below 2; the record
	// cannot even hold its own kind field, so the stream is corrupt.
	ErrSymbolTooShort = errors.New("cvsym: symbol record too short")

	// ErrOddGapBytes means the trailing gap array of a live-range record does
	// not divide into whole gap entries. The stream is treated as malformed
	// rather than silently truncated.
	ErrOddGapBytes = errors.New("cvsym: live-range gap bytes not a multiple of entry size")
)

// UnknownKindError is returned by Symbol.Parse for record kinds this package
// has no decoder for. The raw record remains accessible via Symbol.RawBytes.
type UnknownKindError struct {
	Kind SymbolKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("cvsym: unimplemented symbol kind 0x%04x", uint16(e.Kind))
}

// UnknownLeafError is returned when a numeric-leaf constant carries a leaf
// discriminant this package cannot interpret.
type UnknownLeafError struct {
	Leaf uint16
}

func (e *UnknownLeafError) Error() string {
	return fmt.Sprintf("cvsym: unexpected numeric leaf 0x%04x", e.Leaf)
}

// DecodeError wraps a failure to decode one record's payload with the record
// kind and its index in the stream.
type DecodeError struct {
	Kind  SymbolKind
	Index SymbolIndex
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cvsym: decoding %v at %v: %v", e.Kind, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
