// Package cvsym decodes the symbol sub-stream of CodeView debug information.
//
// A symbol stream is a flat sequence of variable-length records. Each record
// starts with a 16-bit length, followed by a 16-bit kind and a kind-specific
// payload; all integers are little-endian. Records cross-reference each other
// by SymbolIndex, the byte offset of a record's kind field within the stream.
//
// The package exposes three layers:
//
//   - Symbol: a cheap handle over one record's raw bytes, giving access to the
//     kind, the index and scope classification without decoding the payload.
//   - SymbolData: the decoded payload, obtained from Symbol.Parse. Each record
//     kind maps to one of the concrete *Symbol struct types in this package.
//   - Iter / SymbolTable: forward iteration over a stream with seek support,
//     skipping alignment padding and detecting stream corruption.
//
// Decoded values copy names and small fixed fields out of the buffer; a Symbol
// itself borrows from the stream buffer and must not outlive it. Nothing in
// this package mutates the stream, so any number of iterators and symbols may
// exist over the same buffer concurrently.
package cvsym
