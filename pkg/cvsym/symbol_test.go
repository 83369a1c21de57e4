package cvsym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/cvsym/pkg/cursor"
)

// moduleStream is a minimal module symbol stream: a 4-byte signature
// followed by two records.
func moduleStream() *SymbolTable {
	data := []byte{
		0x00, 0x00, 0x00, 0x00, // module signature
		0x02, 0x00, 0x4e, 0x11, // S_INLINESITE_END
		0x02, 0x00, 0x06, 0x00, // S_END
	}
	return NewSymbolTable(data)
}

func collect(t *testing.T, iter *Iter) []Symbol {
	t.Helper()
	var symbols []Symbol
	for iter.Next() {
		symbols = append(symbols, iter.Symbol())
	}
	require.NoError(t, iter.Err())
	return symbols
}

func TestIter(t *testing.T) {
	symbols := collect(t, moduleStream().IterAt(4))

	require.Len(t, symbols, 2)

	assert.Equal(t, SymbolIndex(0x4), symbols[0].Index())
	assert.Equal(t, S_INLINESITE_END, symbols[0].RawKind())
	assert.Equal(t, []byte{0x4e, 0x11}, symbols[0].RawBytes())

	assert.Equal(t, SymbolIndex(0x8), symbols[1].Index())
	assert.Equal(t, S_END, symbols[1].RawKind())
	assert.Equal(t, []byte{0x06, 0x00}, symbols[1].RawBytes())
}

func TestIterSeek(t *testing.T) {
	iter := moduleStream().IterAt(4)
	iter.Seek(SymbolIndex(0x8))

	require.True(t, iter.Next())
	assert.Equal(t, SymbolIndex(0x8), iter.Symbol().Index())
	assert.Equal(t, S_END, iter.Symbol().RawKind())

	assert.False(t, iter.Next())
	assert.NoError(t, iter.Err())
}

func TestIterSkipTo(t *testing.T) {
	iter := moduleStream().IterAt(4)

	require.True(t, iter.SkipTo(SymbolIndex(0x8)))
	assert.Equal(t, SymbolIndex(0x8), iter.Symbol().Index())
}

func TestIterSkipsPadding(t *testing.T) {
	data := []byte{
		0x02, 0x00, 0x02, 0x04, // S_ALIGN
		0x02, 0x00, 0x07, 0x00, // S_SKIP
		0x02, 0x00, 0x06, 0x00, // S_END
	}

	symbols := collect(t, NewIter(data))
	require.Len(t, symbols, 1)
	assert.Equal(t, S_END, symbols[0].RawKind())
	assert.Equal(t, SymbolIndex(0x8), symbols[0].Index())
}

func TestIterSymbolTooShort(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, // length below the kind field size
	}

	iter := NewIter(data)
	assert.False(t, iter.Next())
	assert.ErrorIs(t, iter.Err(), ErrSymbolTooShort)
}

func TestIterTruncatedRecord(t *testing.T) {
	data := []byte{
		0x10, 0x00, 0x06, 0x00, // length runs past the end of the stream
	}

	iter := NewIter(data)
	assert.False(t, iter.Next())
	assert.ErrorIs(t, iter.Err(), cursor.ErrShortRead)
}

func TestIterErrIsSticky(t *testing.T) {
	iter := NewIter([]byte{0x01, 0x00, 0x00})
	assert.False(t, iter.Next())
	assert.False(t, iter.Next())
	assert.ErrorIs(t, iter.Err(), ErrSymbolTooShort)
}

func TestSymbolParse(t *testing.T) {
	iter := moduleStream().IterAt(4)
	require.True(t, iter.SkipTo(SymbolIndex(0x8)))

	parsed, err := iter.Symbol().Parse()
	require.NoError(t, err)
	assert.Equal(t, ScopeEnd{}, parsed)
}

func TestSymbolParse_DecodeError(t *testing.T) {
	sym := Symbol{index: SymbolIndex(0x20), data: []byte{16, 17, 0, 0}}

	_, err := sym.Parse()
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, S_GPROC32, decErr.Kind)
	assert.Equal(t, SymbolIndex(0x20), decErr.Index)
	assert.ErrorIs(t, err, cursor.ErrShortRead)
}

func TestSymbolScopes(t *testing.T) {
	proc := Symbol{data: []byte{0x10, 0x11}} // S_GPROC32
	assert.True(t, proc.StartsScope())
	assert.False(t, proc.EndsScope())

	end := Symbol{data: []byte{0x06, 0x00}} // S_END
	assert.False(t, end.StartsScope())
	assert.True(t, end.EndsScope())
}

func TestSymbolName_Accessor(t *testing.T) {
	sym := Symbol{data: []byte{36, 17, 115, 116, 100, 0}} // S_UNAMESPACE "std"

	name, ok := sym.Name()
	assert.True(t, ok)
	assert.Equal(t, "std", name)

	_, ok = Symbol{data: []byte{0x06, 0x00}}.Name()
	assert.False(t, ok)
}

func TestSymbolString(t *testing.T) {
	sym := Symbol{data: []byte{0x0e, 0x11, 0x00}}
	assert.Equal(t, "Symbol{ kind: 0x110e [3 bytes] }", sym.String())
}
