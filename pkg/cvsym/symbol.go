package cvsym

import (
	"fmt"

	"github.com/mkarlsen/cvsym/pkg/cursor"
)

// Symbol is one raw record sliced out of a symbol stream. Its data aliases
// the stream and covers the kind field and payload, without the length
// prefix. Decoding is deferred until Parse is called.
type Symbol struct {
	index SymbolIndex
	data  []byte
}

// Index returns the symbol's address within the stream. Parent, End and
// Next references in decoded records hold values of this form.
func (s Symbol) Index() SymbolIndex {
	return s.index
}

// RawKind returns the record kind without decoding the payload. A record too
// short to carry a kind reads as zero.
func (s Symbol) RawKind() SymbolKind {
	if len(s.data) < 2 {
		return 0
	}
	return SymbolKind(uint16(s.data[0]) | uint16(s.data[1])<<8)
}

// RawBytes returns the undecoded record, kind field included. The slice
// aliases the stream and must not be modified.
func (s Symbol) RawBytes() []byte {
	return s.data
}

// StartsScope reports whether this record opens a scope that a later
// ScopeEnd, ProcedureEnd or InlineSiteEnd record closes.
func (s Symbol) StartsScope() bool {
	return s.RawKind().StartsScope()
}

// EndsScope reports whether this record closes a scope.
func (s Symbol) EndsScope() bool {
	return s.RawKind().EndsScope()
}

// Parse decodes the record payload. Failures are wrapped in a DecodeError
// carrying the kind and stream index.
func (s Symbol) Parse() (SymbolData, error) {
	data, err := ParseSymbolData(s.data)
	if err != nil {
		return nil, &DecodeError{Kind: s.RawKind(), Index: s.index, Err: err}
	}
	return data, nil
}

// Name decodes the record and returns its name. It reports false for
// nameless kinds and for records that fail to decode.
func (s Symbol) Name() (string, bool) {
	data, err := s.Parse()
	if err != nil {
		return "", false
	}
	return SymbolName(data)
}

func (s Symbol) String() string {
	return fmt.Sprintf("Symbol{ kind: 0x%04x [%d bytes] }", uint16(s.RawKind()), len(s.data))
}

// Iter walks the records of a symbol stream in offset order. Use it like a
// bufio.Scanner: call Next until it returns false, then check Err.
//
//	iter := table.Iter()
//	for iter.Next() {
//		sym := iter.Symbol()
//		...
//	}
//	if err := iter.Err(); err != nil {
//		...
//	}
type Iter struct {
	data []byte
	pos  int
	sym  Symbol
	err  error
}

// NewIter returns an iterator positioned at the start of data. The data is
// borrowed, not copied.
func NewIter(data []byte) *Iter {
	return &Iter{data: data}
}

// Next advances to the following record, skipping alignment padding. It
// returns false when the stream is exhausted or malformed; Err distinguishes
// the two.
func (i *Iter) Next() bool {
	if i.err != nil {
		return false
	}

	c := cursor.New(i.data)
	c.Seek(i.pos)
	for !c.Empty() {
		index := SymbolIndex(c.Pos())
		length, err := c.Uint16()
		if err != nil {
			i.err = err
			return false
		}
		if length < 2 {
			i.err = ErrSymbolTooShort
			return false
		}
		data, err := c.Take(int(length))
		if err != nil {
			i.err = err
			return false
		}
		i.pos = c.Pos()

		sym := Symbol{index: index, data: data}
		if sym.RawKind().padding() {
			continue
		}
		i.sym = sym
		return true
	}
	return false
}

// Symbol returns the record produced by the last successful Next.
func (i *Iter) Symbol() Symbol {
	return i.sym
}

// Err returns the first error encountered while walking the stream. It
// returns nil on a clean end of stream.
func (i *Iter) Err() error {
	return i.err
}

// Seek repositions the iterator at the given symbol index, clearing any
// error state. The next call to Next yields the record at that index.
func (i *Iter) Seek(index SymbolIndex) {
	i.pos = int(index)
	i.sym = Symbol{}
	i.err = nil
}

// SkipTo seeks to the given index and advances once, so that Symbol returns
// the record stored there.
func (i *Iter) SkipTo(index SymbolIndex) bool {
	i.Seek(index)
	return i.Next()
}

// SymbolTable provides access to a module's symbol stream. The underlying
// data is immutable once wrapped, so a table may be shared across goroutines;
// each goroutine should use its own Iter.
type SymbolTable struct {
	data []byte
}

// NewSymbolTable wraps a symbol stream. The data is borrowed, not copied,
// and must not be modified while the table is in use.
func NewSymbolTable(data []byte) *SymbolTable {
	return &SymbolTable{data: data}
}

// Iter returns an iterator over the whole stream.
func (t *SymbolTable) Iter() *Iter {
	return NewIter(t.data)
}

// IterAt returns an iterator positioned at the given symbol index, typically
// obtained from a Parent, End or Next reference.
func (t *SymbolTable) IterAt(index SymbolIndex) *Iter {
	i := NewIter(t.data)
	i.Seek(index)
	return i
}

// Len returns the stream length in bytes.
func (t *SymbolTable) Len() int {
	return len(t.data)
}
