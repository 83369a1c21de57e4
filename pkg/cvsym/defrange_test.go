package cvsym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefRangeRegister(t *testing.T) {
	data := []byte{65, 17, 17, 0, 0, 0, 70, 40, 0, 0, 1, 0, 66, 0, 44, 0, 19, 0}

	assert.Equal(t, DefRangeRegisterSymbol{
		Register: Register(17),
		Flags:    RangeFlags{Maybe: false},
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x2846, Section: 1},
			Len:    0x42,
		},
		Gaps: []AddressGap{{GapStartOffset: 0x2c, Len: 0x13}},
	}, parseRecord(t, data))
}

func TestParseDefRangeRegister_NoGaps(t *testing.T) {
	data := []byte{65, 17, 19, 0, 1, 0, 156, 41, 0, 0, 1, 0, 2, 0}

	assert.Equal(t, DefRangeRegisterSymbol{
		Register: Register(0x13),
		Flags:    RangeFlags{Maybe: true},
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x299c, Section: 1},
			Len:    2,
		},
		Gaps: []AddressGap{},
	}, parseRecord(t, data))
}

func TestParseDefRangeRegister_OddGapBytes(t *testing.T) {
	// two stray bytes after the address range
	data := []byte{65, 17, 19, 0, 1, 0, 156, 41, 0, 0, 1, 0, 2, 0, 44, 0}

	_, err := ParseSymbolData(data)
	require.ErrorIs(t, err, ErrOddGapBytes)
}

func TestParseDefRange(t *testing.T) {
	data := []byte{
		63, 17, // S_DEFRANGE
		5, 0, 0, 0, // program
		70, 40, 0, 0, // range offset
		1, 0, // range section
		16, 0, // range length
		4, 0, 8, 0, // gap
	}

	assert.Equal(t, DefRangeSymbol{
		Program: 5,
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x2846, Section: 1},
			Len:    16,
		},
		Gaps: []AddressGap{{GapStartOffset: 4, Len: 8}},
	}, parseRecord(t, data))
}

func TestParseDefRangeSubField(t *testing.T) {
	data := []byte{
		64, 17, // S_DEFRANGE_SUBFIELD
		5, 0, 0, 0, // program
		8, 0, 0, 0, // offset in parent
		70, 40, 0, 0, // range offset
		1, 0, // range section
		16, 0, // range length
	}

	assert.Equal(t, DefRangeSubFieldSymbol{
		Program:        5,
		OffsetInParent: 8,
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x2846, Section: 1},
			Len:    16,
		},
		Gaps: []AddressGap{},
	}, parseRecord(t, data))
}

func TestParseDefRangeFramePointerRelative(t *testing.T) {
	data := []byte{
		66, 17, // S_DEFRANGE_FRAMEPOINTER_REL
		248, 255, 255, 255, // offset -8
		70, 40, 0, 0, // range offset
		1, 0, // range section
		32, 0, // range length
	}

	assert.Equal(t, DefRangeFramePointerRelativeSymbol{
		Offset: -8,
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x2846, Section: 1},
			Len:    32,
		},
		Gaps: []AddressGap{},
	}, parseRecord(t, data))
}

func TestParseDefRangeFramePointerRelativeFullScope(t *testing.T) {
	data := []byte{
		68, 17, // S_DEFRANGE_FRAMEPOINTER_REL_FULL_SCOPE
		16, 0, 0, 0, // offset
	}

	assert.Equal(t, DefRangeFramePointerRelativeFullScopeSymbol{
		Offset: 16,
	}, parseRecord(t, data))
}

func TestParseDefRangeSubFieldRegister(t *testing.T) {
	data := []byte{
		67, 17, // S_DEFRANGE_SUBFIELD_REGISTER
		17, 0, // register
		0, 0, // flags
		4, 16, 0, 0, // offset in parent, upper bits discarded
		70, 40, 0, 0, // range offset
		1, 0, // range section
		16, 0, // range length
	}

	assert.Equal(t, DefRangeSubFieldRegisterSymbol{
		Register:       Register(17),
		Flags:          RangeFlags{},
		OffsetInParent: 4,
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x2846, Section: 1},
			Len:    16,
		},
		Gaps: []AddressGap{},
	}, parseRecord(t, data))
}

func TestParseDefRangeRegisterRelative(t *testing.T) {
	data := []byte{
		69, 17, // S_DEFRANGE_REGISTER_REL
		22, 0, // base register
		65, 0, // spilled udt member, offset in parent 4
		24, 0, 0, 0, // base pointer offset
		70, 40, 0, 0, // range offset
		1, 0, // range section
		16, 0, // range length
	}

	assert.Equal(t, DefRangeRegisterRelativeSymbol{
		Register:         Register(22),
		SpilledUdtMember: true,
		OffsetInParent:   4,
		Offset:           24,
		Range: AddressRange{
			Offset: SectionOffset{Offset: 0x2846, Section: 1},
			Len:    16,
		},
		Gaps: []AddressGap{},
	}, parseRecord(t, data))
}
