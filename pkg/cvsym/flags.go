package cvsym

import "github.com/mkarlsen/cvsym/pkg/cursor"

// CV_PROCFLAGS bits.
const (
	pflagNoFPO      uint8 = 0x01
	pflagInt        uint8 = 0x02
	pflagFar        uint8 = 0x04
	pflagNever      uint8 = 0x08
	pflagNotReached uint8 = 0x10
	pflagCustCall   uint8 = 0x20
	pflagNoInline   uint8 = 0x40
	pflagOptDbgInfo uint8 = 0x80
)

// ProcedureFlags describe a procedure or label record.
type ProcedureFlags struct {
	// Frame pointer is present (not omitted).
	NoFPO bool
	// Interrupt return.
	Int bool
	// Far return.
	Far bool
	// Procedure does not return.
	Never bool
	// Procedure is never called.
	NotReached bool
	// Custom calling convention.
	CustomCall bool
	// Marked as noinline.
	NoInline bool
	// Debug information for optimized code is present.
	OptDbgInfo bool
}

func readProcedureFlags(c *cursor.Cursor) (ProcedureFlags, error) {
	v, err := c.Uint8()
	if err != nil {
		return ProcedureFlags{}, err
	}
	return ProcedureFlags{
		NoFPO:      v&pflagNoFPO != 0,
		Int:        v&pflagInt != 0,
		Far:        v&pflagFar != 0,
		Never:      v&pflagNever != 0,
		NotReached: v&pflagNotReached != 0,
		CustomCall: v&pflagCustCall != 0,
		NoInline:   v&pflagNoInline != 0,
		OptDbgInfo: v&pflagOptDbgInfo != 0,
	}, nil
}

// CompileFlags describe how a module was compiled. The SDL, PGO and
// ExpModule bits were introduced with the v3 compile record and always read
// as false for the older kinds, whatever the raw bits say.
type CompileFlags struct {
	// Compiled for edit and continue.
	EditAndContinue bool
	// Compiled without debugging info.
	NoDebugInfo bool
	// Compiled with LTCG.
	LinkTimeCodegen bool
	// Compiled with /bzalign.
	NoDataAlign bool
	// Managed code or data is present.
	Managed bool
	// Compiled with /GS.
	SecurityChecks bool
	// Compiled with /hotpatch.
	HotPatch bool
	// Converted with CvtCIL.
	CvtCIL bool
	// This is a MSIL .NET module.
	MSILModule bool
	// Compiled with /sdl.
	SDL bool
	// Compiled with /ltcg:pgo or pgo:.
	PGO bool
	// This is a .exp module.
	ExpModule bool
}

// The wire form is a 16-bit flag word followed by one unused byte.
func readCompileFlags(c *cursor.Cursor, kind SymbolKind) (CompileFlags, error) {
	raw, err := c.Uint16()
	if err != nil {
		return CompileFlags{}, err
	}
	if _, err := c.Uint8(); err != nil {
		return CompileFlags{}, err
	}

	isCompile3 := kind == S_COMPILE3
	return CompileFlags{
		EditAndContinue: raw&1 != 0,
		NoDebugInfo:     (raw>>1)&1 != 0,
		LinkTimeCodegen: (raw>>2)&1 != 0,
		NoDataAlign:     (raw>>3)&1 != 0,
		Managed:         (raw>>4)&1 != 0,
		SecurityChecks:  (raw>>5)&1 != 0,
		HotPatch:        (raw>>6)&1 != 0,
		CvtCIL:          (raw>>7)&1 != 0,
		MSILModule:      (raw>>8)&1 != 0,
		SDL:             (raw>>9)&1 != 0 && isCompile3,
		PGO:             (raw>>10)&1 != 0 && isCompile3,
		ExpModule:       (raw>>11)&1 != 0 && isCompile3,
	}, nil
}

// CV_LVARFLAGS bits.
const (
	lvarIsParam        uint16 = 0x01
	lvarAddrTaken      uint16 = 0x02
	lvarCompGenx       uint16 = 0x04
	lvarIsAggregate    uint16 = 0x08
	lvarIsAliased      uint16 = 0x10
	lvarIsAlias        uint16 = 0x20
	lvarIsRetValue     uint16 = 0x40
	lvarIsOptimizedOut uint16 = 0x80
	lvarIsEnregGlob    uint16 = 0x100
	lvarIsEnregStat    uint16 = 0x200
)

// LocalVariableFlags describe a local variable or managed slot record.
type LocalVariableFlags struct {
	// Variable is a parameter.
	IsParam bool
	// Address is taken.
	AddrTaken bool
	// Variable is compiler generated.
	CompilerGenerated bool
	// The symbol is split into temporaries treated as independent entities.
	IsAggregate bool
	// Variable has multiple simultaneous lifetimes.
	IsAliased bool
	// Represents one of the multiple simultaneous lifetimes.
	IsAlias bool
	// Represents a function return value.
	IsRetValue bool
	// Variable has no lifetimes.
	IsOptimizedOut bool
	// Variable is an enregistered global.
	IsEnregisteredGlobal bool
	// Variable is an enregistered static.
	IsEnregisteredStatic bool
}

func readLocalVariableFlags(c *cursor.Cursor) (LocalVariableFlags, error) {
	v, err := c.Uint16()
	if err != nil {
		return LocalVariableFlags{}, err
	}
	return LocalVariableFlags{
		IsParam:              v&lvarIsParam != 0,
		AddrTaken:            v&lvarAddrTaken != 0,
		CompilerGenerated:    v&lvarCompGenx != 0,
		IsAggregate:          v&lvarIsAggregate != 0,
		IsAliased:            v&lvarIsAliased != 0,
		IsAlias:              v&lvarIsAlias != 0,
		IsRetValue:           v&lvarIsRetValue != 0,
		IsOptimizedOut:       v&lvarIsOptimizedOut != 0,
		IsEnregisteredGlobal: v&lvarIsEnregGlob != 0,
		IsEnregisteredStatic: v&lvarIsEnregStat != 0,
	}, nil
}

// ExportFlags describe an exported symbol.
type ExportFlags struct {
	// An exported constant.
	Constant bool
	// Exported data, such as a static variable.
	Data bool
	// A private symbol.
	Private bool
	// A symbol with no name.
	NoName bool
	// Ordinal was explicitly assigned.
	Ordinal bool
	// This is a forwarder.
	Forwarder bool
}

func readExportFlags(c *cursor.Cursor) (ExportFlags, error) {
	v, err := c.Uint16()
	if err != nil {
		return ExportFlags{}, err
	}
	return ExportFlags{
		Constant:  v&0x01 != 0,
		Data:      v&0x02 != 0,
		Private:   v&0x04 != 0,
		NoName:    v&0x08 != 0,
		Ordinal:   v&0x10 != 0,
		Forwarder: v&0x20 != 0,
	}, nil
}

// SeparatedCodeFlags describe a separated code block.
type SeparatedCodeFlags struct {
	// The block doubles as a lexical scope.
	IsLexicalScope bool
	// The code fragment returns to its parent.
	ReturnsToParent bool
}

func readSeparatedCodeFlags(c *cursor.Cursor) (SeparatedCodeFlags, error) {
	v, err := c.Uint32()
	if err != nil {
		return SeparatedCodeFlags{}, err
	}
	return SeparatedCodeFlags{
		IsLexicalScope:  v&0x01 != 0,
		ReturnsToParent: v&0x02 != 0,
	}, nil
}

// RangeFlags describe a register live range.
type RangeFlags struct {
	// May have no user name on one of the control flow paths.
	Maybe bool
}

func readRangeFlags(c *cursor.Cursor) (RangeFlags, error) {
	v, err := c.Uint16()
	if err != nil {
		return RangeFlags{}, err
	}
	return RangeFlags{Maybe: v&0x01 != 0}, nil
}

// FrameProcedureFlags carry extra frame information of a procedure. The two
// encoded base-pointer fields are 2-bit register selectors, not booleans.
type FrameProcedureFlags struct {
	// Function uses _alloca().
	HasAlloca bool
	// Function uses setjmp().
	HasSetJmp bool
	// Function uses longjmp().
	HasLongJmp bool
	// Function uses inline assembly.
	HasInlineAsm bool
	// Function has exception handling states.
	HasEH bool
	// Function was declared inline.
	InlineSpec bool
	// Function has structured exception handling.
	HasSEH bool
	// Function is __declspec(naked).
	Naked bool
	// Function has /GS buffer security checks.
	SecurityChecks bool
	// Function compiled with /EHa.
	AsyncEH bool
	// Function has /GS checks but stack ordering could not be done.
	GSNoStackOrdering bool
	// Function was inlined within another function.
	WasInlined bool
	// Function is __declspec(strict_gs_check).
	GSCheck bool
	// Function is __declspec(safebuffers).
	SafeBuffers bool
	// Encoded local base pointer register.
	EncodedLocalBasePointer uint8
	// Encoded parameter base pointer register.
	EncodedParamBasePointer uint8
	// Function was compiled with PGO/PGU.
	PogoOn bool
	// Pogo counts are valid.
	ValidCounts bool
	// Optimized for speed.
	OptSpeed bool
	// Function contains CFG checks and no write checks.
	GuardCF bool
	// Function contains CFW checks and/or instrumentation.
	GuardCFW bool
}

func readFrameProcedureFlags(c *cursor.Cursor) (FrameProcedureFlags, error) {
	raw, err := c.Uint32()
	if err != nil {
		return FrameProcedureFlags{}, err
	}
	return FrameProcedureFlags{
		HasAlloca:               raw&1 != 0,
		HasSetJmp:               (raw>>1)&1 != 0,
		HasLongJmp:              (raw>>2)&1 != 0,
		HasInlineAsm:            (raw>>3)&1 != 0,
		HasEH:                   (raw>>4)&1 != 0,
		InlineSpec:              (raw>>5)&1 != 0,
		HasSEH:                  (raw>>6)&1 != 0,
		Naked:                   (raw>>7)&1 != 0,
		SecurityChecks:          (raw>>8)&1 != 0,
		AsyncEH:                 (raw>>9)&1 != 0,
		GSNoStackOrdering:       (raw>>10)&1 != 0,
		WasInlined:              (raw>>11)&1 != 0,
		GSCheck:                 (raw>>12)&1 != 0,
		SafeBuffers:             (raw>>13)&1 != 0,
		EncodedLocalBasePointer: uint8(raw>>14) & 3,
		EncodedParamBasePointer: uint8(raw>>16) & 3,
		PogoOn:                  (raw>>18)&1 != 0,
		ValidCounts:             (raw>>19)&1 != 0,
		OptSpeed:                (raw>>20)&1 != 0,
		GuardCF:                 (raw>>21)&1 != 0,
		GuardCFW:                (raw>>22)&1 != 0,
	}, nil
}

// CV_PUBSYMFLAGS bits, decoded inline into PublicSymbol.
const (
	pubCode     uint32 = 0x1
	pubFunction uint32 = 0x2
	pubManaged  uint32 = 0x4
	pubMSIL     uint32 = 0x8
)
