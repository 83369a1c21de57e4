package cvsym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcedure_Global(t *testing.T) {
	data := []byte{
		16, 17, 0, 0, 0, 0, 48, 2, 0, 0, 0, 0, 0, 0, 6, 0, 0, 0, 5, 0, 0, 0, 5, 0, 0, 0, 7,
		16, 0, 0, 64, 85, 0, 0, 1, 0, 0, 66, 97, 122, 58, 58, 102, 95, 112, 114, 111, 116,
		101, 99, 116, 101, 100, 0,
	}

	assert.Equal(t, ProcedureSymbol{
		Global:         true,
		DPC:            false,
		Parent:         nil,
		End:            SymbolIndex(560),
		Next:           nil,
		Len:            6,
		DbgStartOffset: 5,
		DbgEndOffset:   5,
		TypeIndex:      TypeIndex(4103),
		Offset:         SectionOffset{Offset: 21824, Section: 1},
		Flags:          ProcedureFlags{},
		Name:           "Baz::f_protected",
	}, parseRecord(t, data))
}

func TestParseProcedure_Local(t *testing.T) {
	data := []byte{
		15, 17, 0, 0, 0, 0, 156, 1, 0, 0, 0, 0, 0, 0, 18, 0, 0, 0, 4, 0, 0, 0, 9, 0, 0, 0,
		128, 16, 0, 0, 196, 87, 0, 0, 1, 0, 128, 95, 95, 115, 99, 114, 116, 95, 99, 111,
		109, 109, 111, 110, 95, 109, 97, 105, 110, 0, 0, 0,
	}

	assert.Equal(t, ProcedureSymbol{
		Global:         false,
		DPC:            false,
		Parent:         nil,
		End:            SymbolIndex(412),
		Next:           nil,
		Len:            18,
		DbgStartOffset: 4,
		DbgEndOffset:   9,
		TypeIndex:      TypeIndex(4224),
		Offset:         SectionOffset{Offset: 22468, Section: 1},
		Flags:          ProcedureFlags{OptDbgInfo: true},
		Name:           "__scrt_common_main",
	}, parseRecord(t, data))
}

func TestParseBlock(t *testing.T) {
	data := []byte{
		3, 17, 244, 149, 9, 0, 40, 151, 9, 0, 135, 1, 0, 0, 108, 191, 184, 2, 1, 0, 0, 0,
	}

	assert.Equal(t, BlockSymbol{
		Parent: SymbolIndex(0x0009_95f4),
		End:    SymbolIndex(0x0009_9728),
		Len:    391,
		Offset: SectionOffset{Offset: 0x02b8_bf6c, Section: 0x1},
		Name:   "",
	}, parseRecord(t, data))
}

func TestParseThunk(t *testing.T) {
	data := []byte{
		2, 17, 0, 0, 0, 0, 108, 22, 0, 0, 0, 0, 0, 0, 140, 11, 0, 0, 1, 0, 9, 0, 3, 91,
		116, 104, 117, 110, 107, 93, 58, 68, 101, 114, 105, 118, 101, 100, 58, 58, 70, 117,
		110, 99, 49, 96, 97, 100, 106, 117, 115, 116, 111, 114, 123, 56, 125, 39, 0, 0, 0,
		0,
	}

	assert.Equal(t, ThunkSymbol{
		Parent: nil,
		End:    SymbolIndex(0x166c),
		Next:   nil,
		Offset: SectionOffset{Offset: 0xb8c, Section: 0x1},
		Len:    9,
		Name:   "[thunk]:Derived::Func1`adjustor{8}'",
		Kind:   ThunkPCode{},
	}, parseRecord(t, data))
}

func TestParseSeparatedCode(t *testing.T) {
	data := []byte{
		50, 17, 0, 0, 0, 0, 108, 0, 0, 0, 88, 0, 0, 0, 0, 0, 0, 0, 196, 252, 10, 0, 56, 67,
		0, 0, 1, 0, 1, 0,
	}

	assert.Equal(t, SeparatedCodeSymbol{
		Parent:       SymbolIndex(0x0),
		End:          SymbolIndex(0x6c),
		Len:          88,
		Flags:        SeparatedCodeFlags{},
		Offset:       SectionOffset{Offset: 0xafcc4, Section: 0x1},
		ParentOffset: SectionOffset{Offset: 0x4338, Section: 0x1},
	}, parseRecord(t, data))
}

func TestParseFrameProcedure(t *testing.T) {
	data := []byte{
		18, 16, 152, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 48,
		160, 2, 0, 0, 0,
	}

	assert.Equal(t, FrameProcedureSymbol{
		FrameSize:          152,
		PaddingSize:        0,
		PaddingOffset:      0,
		SavedRegistersSize: 0,
		ExceptionHandler:   SectionOffset{Offset: 0, Section: 0},
		Flags: FrameProcedureFlags{
			HasEH:                   true,
			InlineSpec:              true,
			SafeBuffers:             true,
			EncodedLocalBasePointer: 2,
			EncodedParamBasePointer: 2,
		},
	}, parseRecord(t, data))
}

func TestParseCallSiteInfo(t *testing.T) {
	data := []byte{57, 17, 134, 123, 8, 0, 1, 0, 0, 0, 17, 91, 0, 0}

	assert.Equal(t, CallSiteInfoSymbol{
		Offset:    SectionOffset{Offset: 0x87b86, Section: 0x1},
		TypeIndex: TypeIndex(0x5b11),
	}, parseRecord(t, data))
}

func TestParseFrameCookie(t *testing.T) {
	data := []byte{58, 17, 32, 2, 0, 0, 79, 1, 1, 0}

	assert.Equal(t, FrameCookieSymbol{
		Offset:     544,
		Register:   Register(335),
		CookieKind: FrameCookieXorStackPointer,
		Flags:      0,
	}, parseRecord(t, data))
}

func TestParseInlineSite(t *testing.T) {
	data := []byte{
		77, 17, 144, 1, 0, 0, 208, 1, 0, 0, 121, 17, 0, 0, 12, 6, 3, 0,
	}

	assert.Equal(t, InlineSiteSymbol{
		Parent:      symPtr(SymbolIndex(0x0190)),
		End:         SymbolIndex(0x01d0),
		Inlinee:     IdIndex(4473),
		Invocations: nil,
		Annotations: NewBinaryAnnotations([]byte{12, 6, 3, 0}),
	}, parseRecord(t, data))
}

func TestParseFunctionList_Callees(t *testing.T) {
	data := []byte{
		90, 17, 3, 0, 0, 0, 191, 72, 0, 0, 192, 72, 0, 0, 193, 72, 0, 0,
	}

	// No invocation counts follow the type indexes, so all three read as zero.
	assert.Equal(t, FunctionListSymbol{
		Callees:     true,
		Functions:   []TypeIndex{TypeIndex(0x48bf), TypeIndex(0x48c0), TypeIndex(0x48c1)},
		Invocations: []uint32{0, 0, 0},
	}, parseRecord(t, data))
}

func TestParseFunctionList_PartialInvocations(t *testing.T) {
	data := []byte{
		91, 17, // S_CALLERS
		2, 0, 0, 0, // count
		1, 16, 0, 0, // first function
		2, 16, 0, 0, // second function
		5, 0, 0, 0, // invocations of the first; the rest is truncated
	}

	assert.Equal(t, FunctionListSymbol{
		Callees:     false,
		Functions:   []TypeIndex{TypeIndex(0x1001), TypeIndex(0x1002)},
		Invocations: []uint32{5, 0},
	}, parseRecord(t, data))
}

func TestParseInlinees(t *testing.T) {
	data := []byte{104, 17, 2, 0, 0, 0, 74, 18, 0, 0, 80, 18, 0, 0}

	assert.Equal(t, InlineesSymbol{
		Inlinees: []IdIndex{IdIndex(0x124a), IdIndex(0x1250)},
	}, parseRecord(t, data))
}

func TestParseArmSwitchTable(t *testing.T) {
	data := []byte{
		89, 17, 136, 7, 1, 0, 2, 0, 4, 0, 161, 229, 7, 0, 136, 7, 1, 0, 1, 0, 2, 0, 4, 0,
		0, 0,
	}

	assert.Equal(t, ArmSwitchTableSymbol{
		BaseOffset:   SectionOffset{Offset: 0x10788, Section: 2},
		SwitchType:   JumpTableInt32,
		BranchOffset: SectionOffset{Offset: 0x7e5a1, Section: 0x1},
		TableOffset:  SectionOffset{Offset: 0x10788, Section: 2},
		Entries:      4,
	}, parseRecord(t, data))
}

func TestParseHeapAllocationSite(t *testing.T) {
	data := []byte{94, 17, 18, 166, 84, 0, 1, 0, 5, 0, 138, 20, 0, 0}

	assert.Equal(t, HeapAllocationSiteSymbol{
		Offset:             SectionOffset{Offset: 0x54a612, Section: 0x1},
		CallInstructionLen: 5,
		TypeIndex:          TypeIndex(0x148a),
	}, parseRecord(t, data))
}

func TestParseProcedure_Truncated(t *testing.T) {
	data := []byte{16, 17, 0, 0, 0, 0, 48, 2}

	_, err := ParseSymbolData(data)
	require.Error(t, err)
}
