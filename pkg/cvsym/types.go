package cvsym

import (
	"fmt"

	"github.com/mkarlsen/cvsym/pkg/cursor"
)

// SymbolIndex is the byte offset of a record's kind field within the symbol
// stream. It serves as the stable address of a symbol and as the encoding of
// parent/end/next cross-references.
type SymbolIndex uint32

func (i SymbolIndex) String() string {
	return fmt.Sprintf("SymbolIndex(0x%x)", uint32(i))
}

// TypeIndex references a record in the type information stream. This package
// does not resolve type indexes; they are carried through for callers that do.
type TypeIndex uint32

func (i TypeIndex) String() string {
	return fmt.Sprintf("TypeIndex(0x%x)", uint32(i))
}

// IdIndex references a record in the ID information stream.
type IdIndex uint32

func (i IdIndex) String() string {
	return fmt.Sprintf("IdIndex(0x%x)", uint32(i))
}

// Register identifies a machine register. The mapping of values to register
// names depends on the target CPU and is not interpreted here.
type Register uint16

// Token is a COM+ metadata token carried by managed procedure records.
type Token uint32

// SectionOffset locates code or data as an offset within a numbered section
// of the compiled object. Resolving it to a virtual address requires an
// external address map.
type SectionOffset struct {
	Offset  uint32
	Section uint16
}

func (s SectionOffset) String() string {
	return fmt.Sprintf("%04x:%08x", s.Section, s.Offset)
}

// readSectionOffset reads the common wire form: a 32-bit offset followed by a
// 16-bit section number.
func readSectionOffset(c *cursor.Cursor) (SectionOffset, error) {
	off, err := c.Uint32()
	if err != nil {
		return SectionOffset{}, err
	}
	sec, err := c.Uint16()
	if err != nil {
		return SectionOffset{}, err
	}
	return SectionOffset{Offset: off, Section: sec}, nil
}

// readOptionalIndex maps the on-disk convention for parent/next references:
// index 0 means "no reference".
func readOptionalIndex(c *cursor.Cursor) (*SymbolIndex, error) {
	v, err := c.Uint32()
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, nil
	}
	idx := SymbolIndex(v)
	return &idx, nil
}

// readModuleIndex maps the 1-based module field of reference records: raw 0
// decodes to absent, raw N to the zero-based module index N-1.
func readModuleIndex(c *cursor.Cursor) (*uint16, error) {
	v, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, nil
	}
	m := v - 1
	return &m, nil
}

// readName decodes a record name using the kind's layout generation: legacy
// kinds use a length-prefixed string, modern kinds a NUL-terminated one.
func readName(c *cursor.Cursor, kind SymbolKind) (string, error) {
	if kind.legacyName() {
		return c.PascalString()
	}
	return c.CString()
}

// readOptionalName mirrors readName for record families whose legacy forms
// carry no name at all.
func readOptionalName(c *cursor.Cursor, kind SymbolKind) (*string, error) {
	if kind.legacyName() {
		return nil, nil
	}
	s, err := c.CString()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Numeric leaf discriminants for constant values. A leaf below lfNumeric is
// the value itself.
const (
	lfNumeric   uint16 = 0x8000
	lfChar      uint16 = 0x8000
	lfShort     uint16 = 0x8001
	lfUShort    uint16 = 0x8002
	lfLong      uint16 = 0x8003
	lfULong     uint16 = 0x8004
	lfQuadword  uint16 = 0x8009
	lfUQuadword uint16 = 0x800a
)

// Variant is a numeric constant decoded from a numeric leaf. The concrete
// type preserves the width and signedness of the wire encoding.
type Variant interface {
	isVariant()
}

// Variant value types, one per numeric leaf encoding.
type (
	// VariantU8 holds an unsigned 8-bit constant.
	VariantU8 uint8
	// VariantU16 holds an unsigned 16-bit constant, including immediate
	// leaf values below 0x8000.
	VariantU16 uint16
	// VariantU32 holds an unsigned 32-bit constant.
	VariantU32 uint32
	// VariantU64 holds an unsigned 64-bit constant.
	VariantU64 uint64
	// VariantI8 holds a signed 8-bit constant.
	VariantI8 int8
	// VariantI16 holds a signed 16-bit constant.
	VariantI16 int16
	// VariantI32 holds a signed 32-bit constant.
	VariantI32 int32
	// VariantI64 holds a signed 64-bit constant.
	VariantI64 int64
)

func (VariantU8) isVariant()  {}
func (VariantU16) isVariant() {}
func (VariantU32) isVariant() {}
func (VariantU64) isVariant() {}
func (VariantI8) isVariant()  {}
func (VariantI16) isVariant() {}
func (VariantI32) isVariant() {}
func (VariantI64) isVariant() {}

// readVariant decodes a numeric leaf: a 16-bit discriminant that either is an
// immediate unsigned value (below 0x8000) or selects a wider typed value that
// follows.
func readVariant(c *cursor.Cursor) (Variant, error) {
	leaf, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	if leaf < lfNumeric {
		return VariantU16(leaf), nil
	}

	switch leaf {
	case lfChar:
		v, err := c.Int8()
		return VariantI8(v), err
	case lfShort:
		v, err := c.Int16()
		return VariantI16(v), err
	case lfUShort:
		v, err := c.Uint16()
		return VariantU16(v), err
	case lfLong:
		v, err := c.Int32()
		return VariantI32(v), err
	case lfULong:
		v, err := c.Uint32()
		return VariantU32(v), err
	case lfQuadword:
		v, err := c.Int64()
		return VariantI64(v), err
	case lfUQuadword:
		v, err := c.Uint64()
		return VariantU64(v), err
	default:
		return nil, &UnknownLeafError{Leaf: leaf}
	}
}
