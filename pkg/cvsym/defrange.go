package cvsym

import "github.com/mkarlsen/cvsym/pkg/cursor"

// AddressRange is the half-open program region over which a live-range
// record applies.
type AddressRange struct {
	Offset SectionOffset
	// Len is the range length in bytes.
	Len uint16
}

// AddressGap is a sub-range excluded from an enclosing AddressRange, relative
// to the range start.
type AddressGap struct {
	GapStartOffset uint16
	// Len is the gap length in bytes.
	Len uint16
}

func readAddressRange(c *cursor.Cursor) (AddressRange, error) {
	off, err := readSectionOffset(c)
	if err != nil {
		return AddressRange{}, err
	}
	length, err := c.Uint16()
	if err != nil {
		return AddressRange{}, err
	}
	return AddressRange{Offset: off, Len: length}, nil
}

// readGaps consumes the rest of the record as 4-byte gap entries. A trailing
// remainder that is not a whole entry marks the record as malformed.
func readGaps(c *cursor.Cursor) ([]AddressGap, error) {
	remaining := c.Len()
	if remaining%4 != 0 {
		return nil, ErrOddGapBytes
	}

	gaps := make([]AddressGap, 0, remaining/4)
	for !c.Empty() {
		start, err := c.Uint16()
		if err != nil {
			return nil, err
		}
		length, err := c.Uint16()
		if err != nil {
			return nil, err
		}
		gaps = append(gaps, AddressGap{GapStartOffset: start, Len: length})
	}
	return gaps, nil
}

// DefRangeSymbol maps a variable to a DIA program computing its location
// over a live range.
//
// Kind S_DEFRANGE.
type DefRangeSymbol struct {
	// Program is the DIA program index computing the variable's value.
	Program uint32
	Range   AddressRange
	Gaps    []AddressGap
}

func (DefRangeSymbol) symbolData() {}

func decodeDefRange(payload []byte, _ SymbolKind) (DefRangeSymbol, error) {
	c := cursor.New(payload)
	program, err := c.Uint32()
	if err != nil {
		return DefRangeSymbol{}, err
	}
	rng, err := readAddressRange(c)
	if err != nil {
		return DefRangeSymbol{}, err
	}
	gaps, err := readGaps(c)
	if err != nil {
		return DefRangeSymbol{}, err
	}
	return DefRangeSymbol{Program: program, Range: rng, Gaps: gaps}, nil
}

// DefRangeSubFieldSymbol maps part of an aggregate variable to a DIA program
// over a live range.
//
// Kind S_DEFRANGE_SUBFIELD.
type DefRangeSubFieldSymbol struct {
	Program uint32
	// OffsetInParent is the byte offset of the sub-field within the variable.
	OffsetInParent uint32
	Range          AddressRange
	Gaps           []AddressGap
}

func (DefRangeSubFieldSymbol) symbolData() {}

func decodeDefRangeSubField(payload []byte, _ SymbolKind) (DefRangeSubFieldSymbol, error) {
	c := cursor.New(payload)
	program, err := c.Uint32()
	if err != nil {
		return DefRangeSubFieldSymbol{}, err
	}
	offsetParent, err := c.Uint32()
	if err != nil {
		return DefRangeSubFieldSymbol{}, err
	}
	rng, err := readAddressRange(c)
	if err != nil {
		return DefRangeSubFieldSymbol{}, err
	}
	gaps, err := readGaps(c)
	if err != nil {
		return DefRangeSubFieldSymbol{}, err
	}
	return DefRangeSubFieldSymbol{
		Program:        program,
		OffsetInParent: offsetParent,
		Range:          rng,
		Gaps:           gaps,
	}, nil
}

// DefRangeRegisterSymbol places a variable in a register over a live range.
//
// Kind S_DEFRANGE_REGISTER.
type DefRangeRegisterSymbol struct {
	Register Register
	Flags    RangeFlags
	Range    AddressRange
	Gaps     []AddressGap
}

func (DefRangeRegisterSymbol) symbolData() {}

func decodeDefRangeRegister(payload []byte, _ SymbolKind) (DefRangeRegisterSymbol, error) {
	c := cursor.New(payload)
	reg, err := c.Uint16()
	if err != nil {
		return DefRangeRegisterSymbol{}, err
	}
	flags, err := readRangeFlags(c)
	if err != nil {
		return DefRangeRegisterSymbol{}, err
	}
	rng, err := readAddressRange(c)
	if err != nil {
		return DefRangeRegisterSymbol{}, err
	}
	gaps, err := readGaps(c)
	if err != nil {
		return DefRangeRegisterSymbol{}, err
	}
	return DefRangeRegisterSymbol{
		Register: Register(reg),
		Flags:    flags,
		Range:    rng,
		Gaps:     gaps,
	}, nil
}

// DefRangeFramePointerRelativeSymbol places a variable at a frame pointer
// relative offset over a live range.
//
// Kind S_DEFRANGE_FRAMEPOINTER_REL.
type DefRangeFramePointerRelativeSymbol struct {
	// Offset is relative to the frame pointer.
	Offset int32
	Range  AddressRange
	Gaps   []AddressGap
}

func (DefRangeFramePointerRelativeSymbol) symbolData() {}

func decodeDefRangeFramePointerRelative(payload []byte, _ SymbolKind) (DefRangeFramePointerRelativeSymbol, error) {
	c := cursor.New(payload)
	off, err := c.Int32()
	if err != nil {
		return DefRangeFramePointerRelativeSymbol{}, err
	}
	rng, err := readAddressRange(c)
	if err != nil {
		return DefRangeFramePointerRelativeSymbol{}, err
	}
	gaps, err := readGaps(c)
	if err != nil {
		return DefRangeFramePointerRelativeSymbol{}, err
	}
	return DefRangeFramePointerRelativeSymbol{Offset: off, Range: rng, Gaps: gaps}, nil
}

// DefRangeFramePointerRelativeFullScopeSymbol places a variable at a frame
// pointer relative offset for the whole enclosing scope. It carries no range
// of its own.
//
// Kind S_DEFRANGE_FRAMEPOINTER_REL_FULL_SCOPE.
type DefRangeFramePointerRelativeFullScopeSymbol struct {
	Offset int32
}

func (DefRangeFramePointerRelativeFullScopeSymbol) symbolData() {}

func decodeDefRangeFramePointerRelativeFullScope(payload []byte, _ SymbolKind) (DefRangeFramePointerRelativeFullScopeSymbol, error) {
	c := cursor.New(payload)
	off, err := c.Int32()
	if err != nil {
		return DefRangeFramePointerRelativeFullScopeSymbol{}, err
	}
	return DefRangeFramePointerRelativeFullScopeSymbol{Offset: off}, nil
}

// DefRangeSubFieldRegisterSymbol places part of an aggregate variable in a
// register over a live range.
//
// Kind S_DEFRANGE_SUBFIELD_REGISTER.
type DefRangeSubFieldRegisterSymbol struct {
	Register Register
	Flags    RangeFlags
	// OffsetInParent is the byte offset of the sub-field within the variable.
	// Only the low 12 bits are meaningful on the wire.
	OffsetInParent uint32
	Range          AddressRange
	Gaps           []AddressGap
}

func (DefRangeSubFieldRegisterSymbol) symbolData() {}

func decodeDefRangeSubFieldRegister(payload []byte, _ SymbolKind) (DefRangeSubFieldRegisterSymbol, error) {
	c := cursor.New(payload)
	reg, err := c.Uint16()
	if err != nil {
		return DefRangeSubFieldRegisterSymbol{}, err
	}
	flags, err := readRangeFlags(c)
	if err != nil {
		return DefRangeSubFieldRegisterSymbol{}, err
	}
	offsetParent, err := c.Uint32()
	if err != nil {
		return DefRangeSubFieldRegisterSymbol{}, err
	}
	rng, err := readAddressRange(c)
	if err != nil {
		return DefRangeSubFieldRegisterSymbol{}, err
	}
	gaps, err := readGaps(c)
	if err != nil {
		return DefRangeSubFieldRegisterSymbol{}, err
	}
	return DefRangeSubFieldRegisterSymbol{
		Register:       Register(reg),
		Flags:          flags,
		OffsetInParent: offsetParent & 0xfff,
		Range:          rng,
		Gaps:           gaps,
	}, nil
}

// DefRangeRegisterRelativeSymbol places a variable at a register relative
// offset over a live range.
//
// Kind S_DEFRANGE_REGISTER_REL.
type DefRangeRegisterRelativeSymbol struct {
	// Register holds the base pointer of the variable.
	Register Register
	// SpilledUdtMember reports whether the variable is a spilled member of a
	// user defined type.
	SpilledUdtMember bool
	// OffsetInParent is the byte offset of the sub-field within the variable,
	// meaningful only when SpilledUdtMember is set.
	OffsetInParent uint16
	// Offset is relative to the register.
	Offset int32
	Range  AddressRange
	Gaps   []AddressGap
}

func (DefRangeRegisterRelativeSymbol) symbolData() {}

func decodeDefRangeRegisterRelative(payload []byte, _ SymbolKind) (DefRangeRegisterRelativeSymbol, error) {
	c := cursor.New(payload)
	reg, err := c.Uint16()
	if err != nil {
		return DefRangeRegisterRelativeSymbol{}, err
	}
	bits, err := c.Uint16()
	if err != nil {
		return DefRangeRegisterRelativeSymbol{}, err
	}
	off, err := c.Int32()
	if err != nil {
		return DefRangeRegisterRelativeSymbol{}, err
	}
	rng, err := readAddressRange(c)
	if err != nil {
		return DefRangeRegisterRelativeSymbol{}, err
	}
	gaps, err := readGaps(c)
	if err != nil {
		return DefRangeRegisterRelativeSymbol{}, err
	}
	return DefRangeRegisterRelativeSymbol{
		Register:         Register(reg),
		SpilledUdtMember: bits&1 != 0,
		OffsetInParent:   (bits >> 4) & 0xfff,
		Offset:           off,
		Range:            rng,
		Gaps:             gaps,
	}, nil
}
