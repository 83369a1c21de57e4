package cvsym

import (
	"fmt"

	"github.com/mkarlsen/cvsym/pkg/cursor"
)

// ProcedureSymbol opens a procedure scope. The record is terminated by a
// matching ScopeEnd or ProcedureEnd at the index in End.
//
// Kinds S_LPROC32, S_GPROC32, their _ST, _ID and _DPC forms.
type ProcedureSymbol struct {
	Global bool
	// DPC reports whether the procedure was compiled for a DPC target.
	DPC    bool
	Parent *SymbolIndex
	End    SymbolIndex
	Next   *SymbolIndex
	// Len is the procedure length in bytes.
	Len uint32
	// DbgStartOffset is the start of the debuggable region, relative to the
	// procedure start.
	DbgStartOffset uint32
	// DbgEndOffset is the end of the debuggable region, relative to the
	// procedure start.
	DbgEndOffset uint32
	TypeIndex    TypeIndex
	Offset       SectionOffset
	Flags        ProcedureFlags
	Name         string
}

func (ProcedureSymbol) symbolData() {}

func decodeProcedure(payload []byte, kind SymbolKind) (ProcedureSymbol, error) {
	c := cursor.New(payload)
	var s ProcedureSymbol
	var err error

	s.Global = kind == S_GPROC32 || kind == S_GPROC32_ST || kind == S_GPROC32_ID
	s.DPC = kind == S_LPROC32_DPC || kind == S_LPROC32_DPC_ID

	if s.Parent, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	end, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.End = SymbolIndex(end)
	if s.Next, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	if s.Len, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.DbgStartOffset, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.DbgEndOffset, err = c.Uint32(); err != nil {
		return s, err
	}
	ti, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.TypeIndex = TypeIndex(ti)
	if s.Offset, err = readSectionOffset(c); err != nil {
		return s, err
	}
	if s.Flags, err = readProcedureFlags(c); err != nil {
		return s, err
	}
	if s.Name, err = readName(c, kind); err != nil {
		return s, err
	}
	return s, nil
}

// ManagedProcedureSymbol opens a managed procedure scope.
//
// Kinds S_LMANPROC and S_GMANPROC.
type ManagedProcedureSymbol struct {
	Global bool
	Parent *SymbolIndex
	End    SymbolIndex
	Next   *SymbolIndex
	// Len is the procedure length in bytes.
	Len            uint32
	DbgStartOffset uint32
	DbgEndOffset   uint32
	// Token is the COM+ metadata token of the method.
	Token          Token
	Offset         SectionOffset
	Flags          ProcedureFlags
	ReturnRegister Register
	Name           *string
}

func (ManagedProcedureSymbol) symbolData() {}

func decodeManagedProcedure(payload []byte, kind SymbolKind) (ManagedProcedureSymbol, error) {
	c := cursor.New(payload)
	var s ManagedProcedureSymbol
	var err error

	s.Global = kind == S_GMANPROC
	if s.Parent, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	end, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.End = SymbolIndex(end)
	if s.Next, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	if s.Len, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.DbgStartOffset, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.DbgEndOffset, err = c.Uint32(); err != nil {
		return s, err
	}
	token, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.Token = Token(token)
	if s.Offset, err = readSectionOffset(c); err != nil {
		return s, err
	}
	if s.Flags, err = readProcedureFlags(c); err != nil {
		return s, err
	}
	reg, err := c.Uint16()
	if err != nil {
		return s, err
	}
	s.ReturnRegister = Register(reg)
	if s.Name, err = readOptionalName(c, kind); err != nil {
		return s, err
	}
	return s, nil
}

// BlockSymbol opens a lexical block scope inside a procedure.
//
// Kinds S_BLOCK32 and S_BLOCK32_ST.
type BlockSymbol struct {
	Parent SymbolIndex
	End    SymbolIndex
	// Len is the block length in bytes.
	Len    uint32
	Offset SectionOffset
	Name   string
}

func (BlockSymbol) symbolData() {}

func decodeBlock(payload []byte, kind SymbolKind) (BlockSymbol, error) {
	c := cursor.New(payload)
	var s BlockSymbol
	var err error

	parent, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.Parent = SymbolIndex(parent)
	end, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.End = SymbolIndex(end)
	if s.Len, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.Offset, err = readSectionOffset(c); err != nil {
		return s, err
	}
	if s.Name, err = readName(c, kind); err != nil {
		return s, err
	}
	return s, nil
}

// InlineSiteSymbol opens an inline call site scope.
//
// Kinds S_INLINESITE and S_INLINESITE2.
type InlineSiteSymbol struct {
	Parent *SymbolIndex
	End    SymbolIndex
	// Inlinee references the function ID of the inlined function.
	Inlinee IdIndex
	// Invocations counts calls to the inlinee; only v2 records carry it.
	Invocations *uint32
	Annotations BinaryAnnotations
}

func (InlineSiteSymbol) symbolData() {}

func decodeInlineSite(payload []byte, kind SymbolKind) (InlineSiteSymbol, error) {
	c := cursor.New(payload)
	var s InlineSiteSymbol
	var err error

	if s.Parent, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	end, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.End = SymbolIndex(end)
	inlinee, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.Inlinee = IdIndex(inlinee)

	if kind == S_INLINESITE2 {
		invocations, err := c.Uint32()
		if err != nil {
			return s, err
		}
		s.Invocations = &invocations
	}

	rest, err := c.Take(c.Len())
	if err != nil {
		return s, err
	}
	s.Annotations = NewBinaryAnnotations(rest)
	return s, nil
}

// ThunkKind is the variant data of a thunk record.
type ThunkKind interface {
	thunkKind()
}

// Thunk variants.
type (
	// ThunkNoType is a thunk with no additional information.
	ThunkNoType struct{}
	// ThunkAdjustor is a "this" adjustor thunk with a delta and the name of
	// the target function.
	ThunkAdjustor struct {
		Delta  uint16
		Target string
	}
	// ThunkVCall is a virtual call thunk holding the table entry offset.
	ThunkVCall uint16
	// ThunkPCode is a PCode thunk.
	ThunkPCode struct{}
	// ThunkLoad is a thunk that loads code on demand.
	ThunkLoad struct{}
	// ThunkUnknown preserves an unrecognized ordinal.
	ThunkUnknown uint8
)

func (ThunkNoType) thunkKind()   {}
func (ThunkAdjustor) thunkKind() {}
func (ThunkVCall) thunkKind()    {}
func (ThunkPCode) thunkKind()    {}
func (ThunkLoad) thunkKind()     {}
func (ThunkUnknown) thunkKind()  {}

// ThunkSymbol describes a compiler generated thunk and opens its scope.
//
// Kinds S_THUNK32 and S_THUNK32_ST.
type ThunkSymbol struct {
	Parent *SymbolIndex
	End    SymbolIndex
	Next   *SymbolIndex
	Offset SectionOffset
	// Len is the thunk length in bytes.
	Len  uint16
	Name string
	Kind ThunkKind
}

func (ThunkSymbol) symbolData() {}

func decodeThunk(payload []byte, kind SymbolKind) (ThunkSymbol, error) {
	c := cursor.New(payload)
	var s ThunkSymbol
	var err error

	if s.Parent, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	end, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.End = SymbolIndex(end)
	if s.Next, err = readOptionalIndex(c); err != nil {
		return s, err
	}
	if s.Offset, err = readSectionOffset(c); err != nil {
		return s, err
	}
	if s.Len, err = c.Uint16(); err != nil {
		return s, err
	}

	// The ordinal precedes the name; its variant data follows the name.
	ord, err := c.Uint8()
	if err != nil {
		return s, err
	}
	if s.Name, err = readName(c, kind); err != nil {
		return s, err
	}

	switch ord {
	case 0:
		s.Kind = ThunkNoType{}
	case 1:
		delta, err := c.Uint16()
		if err != nil {
			return s, err
		}
		target, err := readName(c, kind)
		if err != nil {
			return s, err
		}
		s.Kind = ThunkAdjustor{Delta: delta, Target: target}
	case 2:
		entry, err := c.Uint16()
		if err != nil {
			return s, err
		}
		s.Kind = ThunkVCall(entry)
	case 3:
		s.Kind = ThunkPCode{}
	case 4:
		s.Kind = ThunkLoad{}
	default:
		s.Kind = ThunkUnknown(ord)
	}
	return s, nil
}

// SeparatedCodeSymbol describes a block of code separated from its parent
// function, such as a hot-patched or out-of-line region. Opens a scope.
//
// Kind S_SEPCODE.
type SeparatedCodeSymbol struct {
	Parent SymbolIndex
	End    SymbolIndex
	// Len is the block length in bytes.
	Len   uint32
	Flags SeparatedCodeFlags
	// Offset locates the separated block itself.
	Offset SectionOffset
	// ParentOffset locates the block's position within its parent.
	ParentOffset SectionOffset
}

func (SeparatedCodeSymbol) symbolData() {}

func decodeSeparatedCode(payload []byte, _ SymbolKind) (SeparatedCodeSymbol, error) {
	c := cursor.New(payload)
	var s SeparatedCodeSymbol
	var err error

	parent, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.Parent = SymbolIndex(parent)
	end, err := c.Uint32()
	if err != nil {
		return s, err
	}
	s.End = SymbolIndex(end)
	if s.Len, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.Flags, err = readSeparatedCodeFlags(c); err != nil {
		return s, err
	}

	// The two offsets precede the two section numbers on the wire.
	off, err := c.Uint32()
	if err != nil {
		return s, err
	}
	parentOff, err := c.Uint32()
	if err != nil {
		return s, err
	}
	sec, err := c.Uint16()
	if err != nil {
		return s, err
	}
	parentSec, err := c.Uint16()
	if err != nil {
		return s, err
	}
	s.Offset = SectionOffset{Offset: off, Section: sec}
	s.ParentOffset = SectionOffset{Offset: parentOff, Section: parentSec}
	return s, nil
}

// FrameProcedureSymbol carries extra frame and prolog information about the
// enclosing procedure.
//
// Kind S_FRAMEPROC.
type FrameProcedureSymbol struct {
	// FrameSize is the frame size in bytes.
	FrameSize uint32
	// PaddingSize is the size of the frame padding in bytes.
	PaddingSize uint32
	// PaddingOffset is the frame-relative offset of the padding.
	PaddingOffset uint32
	// SavedRegistersSize counts the bytes of callee save registers.
	SavedRegistersSize uint32
	// ExceptionHandler locates the exception handler, if any.
	ExceptionHandler SectionOffset
	Flags            FrameProcedureFlags
}

func (FrameProcedureSymbol) symbolData() {}

func decodeFrameProcedure(payload []byte, _ SymbolKind) (FrameProcedureSymbol, error) {
	c := cursor.New(payload)
	var s FrameProcedureSymbol
	var err error

	if s.FrameSize, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.PaddingSize, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.PaddingOffset, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.SavedRegistersSize, err = c.Uint32(); err != nil {
		return s, err
	}
	off, err := c.Uint32()
	if err != nil {
		return s, err
	}
	sec, err := c.Uint16()
	if err != nil {
		return s, err
	}
	s.ExceptionHandler = SectionOffset{Offset: off, Section: sec}
	if s.Flags, err = readFrameProcedureFlags(c); err != nil {
		return s, err
	}
	return s, nil
}

// CallSiteInfoSymbol describes an indirect call site.
//
// Kind S_CALLSITEINFO.
type CallSiteInfoSymbol struct {
	Offset SectionOffset
	// TypeIndex describes the function signature of the call.
	TypeIndex TypeIndex
}

func (CallSiteInfoSymbol) symbolData() {}

func decodeCallSiteInfo(payload []byte, _ SymbolKind) (CallSiteInfoSymbol, error) {
	c := cursor.New(payload)
	off, err := readSectionOffset(c)
	if err != nil {
		return CallSiteInfoSymbol{}, err
	}
	// padding word
	if _, err := c.Uint16(); err != nil {
		return CallSiteInfoSymbol{}, err
	}
	ti, err := c.Uint32()
	if err != nil {
		return CallSiteInfoSymbol{}, err
	}
	return CallSiteInfoSymbol{Offset: off, TypeIndex: TypeIndex(ti)}, nil
}

// FrameCookieType describes how a security cookie is protected.
type FrameCookieType uint8

// Frame cookie protection schemes.
const (
	FrameCookieCopy            FrameCookieType = 0
	FrameCookieXorStackPointer FrameCookieType = 1
	FrameCookieXorBasePointer  FrameCookieType = 2
	FrameCookieXorR13          FrameCookieType = 3
)

func (t FrameCookieType) String() string {
	switch t {
	case FrameCookieCopy:
		return "Copy"
	case FrameCookieXorStackPointer:
		return "XorStackPointer"
	case FrameCookieXorBasePointer:
		return "XorBasePointer"
	case FrameCookieXorR13:
		return "XorR13"
	default:
		return fmt.Sprintf("FrameCookieType(0x%02x)", uint8(t))
	}
}

// FrameCookieSymbol locates the security cookie of a stack frame.
//
// Kind S_FRAMECOOKIE.
type FrameCookieSymbol struct {
	// Offset is the frame-relative position of the cookie.
	Offset     int32
	Register   Register
	CookieKind FrameCookieType
	Flags      uint8
}

func (FrameCookieSymbol) symbolData() {}

func decodeFrameCookie(payload []byte, _ SymbolKind) (FrameCookieSymbol, error) {
	c := cursor.New(payload)
	off, err := c.Int32()
	if err != nil {
		return FrameCookieSymbol{}, err
	}
	reg, err := c.Uint16()
	if err != nil {
		return FrameCookieSymbol{}, err
	}
	cookie, err := c.Uint8()
	if err != nil {
		return FrameCookieSymbol{}, err
	}
	flags, err := c.Uint8()
	if err != nil {
		return FrameCookieSymbol{}, err
	}
	return FrameCookieSymbol{
		Offset:     off,
		Register:   Register(reg),
		CookieKind: FrameCookieType(cookie),
		Flags:      flags,
	}, nil
}

// HeapAllocationSiteSymbol describes a call site of a heap allocator.
//
// Kind S_HEAPALLOCSITE.
type HeapAllocationSiteSymbol struct {
	Offset SectionOffset
	// CallInstructionLen is the length of the call instruction in bytes.
	CallInstructionLen uint16
	// TypeIndex describes the signature of the called allocator.
	TypeIndex TypeIndex
}

func (HeapAllocationSiteSymbol) symbolData() {}

func decodeHeapAllocationSite(payload []byte, _ SymbolKind) (HeapAllocationSiteSymbol, error) {
	c := cursor.New(payload)
	off, err := readSectionOffset(c)
	if err != nil {
		return HeapAllocationSiteSymbol{}, err
	}
	instrLen, err := c.Uint16()
	if err != nil {
		return HeapAllocationSiteSymbol{}, err
	}
	ti, err := c.Uint32()
	if err != nil {
		return HeapAllocationSiteSymbol{}, err
	}
	return HeapAllocationSiteSymbol{
		Offset:             off,
		CallInstructionLen: instrLen,
		TypeIndex:          TypeIndex(ti),
	}, nil
}

// JumpTableEntrySize is the encoding of entries in an ARM switch table.
type JumpTableEntrySize uint16

// Jump table entry encodings.
const (
	JumpTableInt8            JumpTableEntrySize = 0
	JumpTableUInt8           JumpTableEntrySize = 1
	JumpTableInt16           JumpTableEntrySize = 2
	JumpTableUInt16          JumpTableEntrySize = 3
	JumpTableInt32           JumpTableEntrySize = 4
	JumpTableUInt32          JumpTableEntrySize = 5
	JumpTablePointer         JumpTableEntrySize = 6
	JumpTableUInt8ShiftLeft  JumpTableEntrySize = 7
	JumpTableUInt16ShiftLeft JumpTableEntrySize = 8
	JumpTableInt8ShiftLeft   JumpTableEntrySize = 9
	JumpTableInt16ShiftLeft  JumpTableEntrySize = 10
)

// ArmSwitchTableSymbol describes a jump table emitted for a switch statement
// on ARM targets.
//
// Kind S_ARMSWITCHTABLE.
type ArmSwitchTableSymbol struct {
	// BaseOffset locates the base address the table entries are relative to.
	BaseOffset SectionOffset
	SwitchType JumpTableEntrySize
	// BranchOffset locates the branch instruction using the table.
	BranchOffset SectionOffset
	// TableOffset locates the table itself.
	TableOffset SectionOffset
	// Entries is the number of switch table entries.
	Entries uint32
}

func (ArmSwitchTableSymbol) symbolData() {}

func decodeArmSwitchTable(payload []byte, _ SymbolKind) (ArmSwitchTableSymbol, error) {
	c := cursor.New(payload)
	var s ArmSwitchTableSymbol
	var err error

	baseOff, err := c.Uint32()
	if err != nil {
		return s, err
	}
	baseSec, err := c.Uint16()
	if err != nil {
		return s, err
	}
	s.BaseOffset = SectionOffset{Offset: baseOff, Section: baseSec}

	switchType, err := c.Uint16()
	if err != nil {
		return s, err
	}
	s.SwitchType = JumpTableEntrySize(switchType)

	// Branch and table offsets precede their section numbers on the wire.
	branchOff, err := c.Uint32()
	if err != nil {
		return s, err
	}
	tableOff, err := c.Uint32()
	if err != nil {
		return s, err
	}
	branchSec, err := c.Uint16()
	if err != nil {
		return s, err
	}
	tableSec, err := c.Uint16()
	if err != nil {
		return s, err
	}
	s.BranchOffset = SectionOffset{Offset: branchOff, Section: branchSec}
	s.TableOffset = SectionOffset{Offset: tableOff, Section: tableSec}
	if s.Entries, err = c.Uint32(); err != nil {
		return s, err
	}
	return s, nil
}

// FunctionListSymbol lists functions called by, or calling, the enclosing
// procedure. Invocation counts may be truncated on the wire; missing entries
// read as zero so the two slices always have equal length.
//
// Kinds S_CALLERS and S_CALLEES.
type FunctionListSymbol struct {
	// Callees reports whether the list holds callees rather than callers.
	Callees     bool
	Functions   []TypeIndex
	Invocations []uint32
}

func (FunctionListSymbol) symbolData() {}

func decodeFunctionList(payload []byte, kind SymbolKind) (FunctionListSymbol, error) {
	c := cursor.New(payload)
	count, err := c.Uint32()
	if err != nil {
		return FunctionListSymbol{}, err
	}

	functions := make([]TypeIndex, 0, count)
	for i := uint32(0); i < count; i++ {
		ti, err := c.Uint32()
		if err != nil {
			return FunctionListSymbol{}, err
		}
		functions = append(functions, TypeIndex(ti))
	}

	invocations := make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		if c.Empty() {
			invocations = append(invocations, 0)
			continue
		}
		n, err := c.Uint32()
		if err != nil {
			return FunctionListSymbol{}, err
		}
		invocations = append(invocations, n)
	}

	return FunctionListSymbol{
		Callees:     kind == S_CALLEES,
		Functions:   functions,
		Invocations: invocations,
	}, nil
}

// InlineesSymbol lists functions inlined into the enclosing procedure.
//
// Kind S_INLINEES.
type InlineesSymbol struct {
	Inlinees []IdIndex
}

func (InlineesSymbol) symbolData() {}

func decodeInlinees(payload []byte, _ SymbolKind) (InlineesSymbol, error) {
	c := cursor.New(payload)
	count, err := c.Uint32()
	if err != nil {
		return InlineesSymbol{}, err
	}
	inlinees := make([]IdIndex, 0, count)
	for i := uint32(0); i < count; i++ {
		id, err := c.Uint32()
		if err != nil {
			return InlineesSymbol{}, err
		}
		inlinees = append(inlinees, IdIndex(id))
	}
	return InlineesSymbol{Inlinees: inlinees}, nil
}
