package cvsym

import (
	"encoding/binary"

	"github.com/mkarlsen/cvsym/pkg/cursor"
)

// SymbolData is the decoded payload of a symbol record. Concrete types are
// the *Symbol structs in this package plus the empty scope-end markers.
type SymbolData interface {
	symbolData()
}

// ParseSymbolData decodes one record from its kind+payload bytes, as sliced
// by Iter. Kinds without a decoder return an UnknownKindError.
func ParseSymbolData(data []byte) (SymbolData, error) {
	c := cursor.New(data)
	rawKind, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	kind := SymbolKind(rawKind)
	payload := data[2:]

	switch kind {
	case S_END:
		return ScopeEnd{}, nil
	case S_PROC_ID_END:
		return ProcedureEnd{}, nil
	case S_INLINESITE_END:
		return InlineSiteEnd{}, nil
	case S_OBJNAME, S_OBJNAME_ST:
		return decodeObjName(payload, kind)
	case S_REGISTER, S_REGISTER_ST:
		return decodeRegisterVariable(payload, kind)
	case S_CONSTANT, S_CONSTANT_ST, S_MANCONSTANT:
		return decodeConstant(payload, kind)
	case S_UDT, S_UDT_ST, S_COBOLUDT, S_COBOLUDT_ST:
		return decodeUserDefinedType(payload, kind)
	case S_MANYREG, S_MANYREG_ST, S_MANYREG2, S_MANYREG2_ST:
		return decodeMultiRegisterVariable(payload, kind)
	case S_LDATA32, S_LDATA32_ST, S_GDATA32, S_GDATA32_ST,
		S_LMANDATA, S_LMANDATA_ST, S_GMANDATA, S_GMANDATA_ST:
		return decodeData(payload, kind)
	case S_PUB32, S_PUB32_ST:
		return decodePublic(payload, kind)
	case S_LPROC32, S_LPROC32_ST, S_GPROC32, S_GPROC32_ST,
		S_LPROC32_ID, S_GPROC32_ID, S_LPROC32_DPC, S_LPROC32_DPC_ID:
		return decodeProcedure(payload, kind)
	case S_LMANPROC, S_GMANPROC:
		return decodeManagedProcedure(payload, kind)
	case S_LTHREAD32, S_LTHREAD32_ST, S_GTHREAD32, S_GTHREAD32_ST:
		return decodeThreadStorage(payload, kind)
	case S_COMPILE2, S_COMPILE2_ST, S_COMPILE3:
		return decodeCompileFlags(payload, kind)
	case S_UNAMESPACE, S_UNAMESPACE_ST:
		return decodeUsingNamespace(payload, kind)
	case S_PROCREF, S_PROCREF_ST, S_LPROCREF, S_LPROCREF_ST:
		return decodeProcedureReference(payload, kind)
	case S_TRAMPOLINE:
		return decodeTrampoline(payload, kind)
	case S_DATAREF, S_DATAREF_ST:
		return decodeDataReference(payload, kind)
	case S_ANNOTATIONREF:
		return decodeAnnotationReference(payload, kind)
	case S_TOKENREF:
		return decodeTokenReference(payload, kind)
	case S_EXPORT:
		return decodeExport(payload, kind)
	case S_LOCAL:
		return decodeLocal(payload, kind)
	case S_MANSLOT, S_MANSLOT_ST:
		return decodeManagedSlot(payload, kind)
	case S_BUILDINFO:
		return decodeBuildInfo(payload, kind)
	case S_INLINESITE, S_INLINESITE2:
		return decodeInlineSite(payload, kind)
	case S_LABEL32, S_LABEL32_ST:
		return decodeLabel(payload, kind)
	case S_BLOCK32, S_BLOCK32_ST:
		return decodeBlock(payload, kind)
	case S_REGREL32:
		return decodeRegisterRelative(payload, kind)
	case S_THUNK32, S_THUNK32_ST:
		return decodeThunk(payload, kind)
	case S_SEPCODE:
		return decodeSeparatedCode(payload, kind)
	case S_OEM:
		return decodeOem(payload, kind)
	case S_ENVBLOCK:
		return decodeEnvBlock(payload, kind)
	case S_SECTION:
		return decodeSection(payload, kind)
	case S_COFFGROUP:
		return decodeCoffGroup(payload, kind)
	case S_DEFRANGE:
		return decodeDefRange(payload, kind)
	case S_DEFRANGE_SUBFIELD:
		return decodeDefRangeSubField(payload, kind)
	case S_DEFRANGE_REGISTER:
		return decodeDefRangeRegister(payload, kind)
	case S_DEFRANGE_FRAMEPOINTER_REL:
		return decodeDefRangeFramePointerRelative(payload, kind)
	case S_DEFRANGE_FRAMEPOINTER_REL_FULL_SCOPE:
		return decodeDefRangeFramePointerRelativeFullScope(payload, kind)
	case S_DEFRANGE_SUBFIELD_REGISTER:
		return decodeDefRangeSubFieldRegister(payload, kind)
	case S_DEFRANGE_REGISTER_REL:
		return decodeDefRangeRegisterRelative(payload, kind)
	case S_BPREL32, S_BPREL32_ST, S_BPREL32_16T:
		return decodeBasePointerRelative(payload, kind)
	case S_FRAMEPROC:
		return decodeFrameProcedure(payload, kind)
	case S_CALLSITEINFO:
		return decodeCallSiteInfo(payload, kind)
	case S_CALLERS, S_CALLEES:
		return decodeFunctionList(payload, kind)
	case S_INLINEES:
		return decodeInlinees(payload, kind)
	case S_ARMSWITCHTABLE:
		return decodeArmSwitchTable(payload, kind)
	case S_HEAPALLOCSITE:
		return decodeHeapAllocationSite(payload, kind)
	case S_FRAMECOOKIE:
		return decodeFrameCookie(payload, kind)
	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

// SymbolName returns the name carried by a decoded record, if its kind has
// one. Records with an optional absent name report false like nameless kinds.
func SymbolName(data SymbolData) (string, bool) {
	switch d := data.(type) {
	case ObjNameSymbol:
		return d.Name, true
	case ConstantSymbol:
		return d.Name, true
	case UserDefinedTypeSymbol:
		return d.Name, true
	case DataSymbol:
		return d.Name, true
	case PublicSymbol:
		return d.Name, true
	case ProcedureSymbol:
		return d.Name, true
	case ManagedProcedureSymbol:
		if d.Name != nil {
			return *d.Name, true
		}
	case ThreadStorageSymbol:
		return d.Name, true
	case UsingNamespaceSymbol:
		return d.Name, true
	case ProcedureReferenceSymbol:
		if d.Name != nil {
			return *d.Name, true
		}
	case DataReferenceSymbol:
		if d.Name != nil {
			return *d.Name, true
		}
	case AnnotationReferenceSymbol:
		return d.Name, true
	case TokenReferenceSymbol:
		return d.Name, true
	case ExportSymbol:
		return d.Name, true
	case LocalSymbol:
		return d.Name, true
	case ManagedSlotSymbol:
		return d.Name, true
	case LabelSymbol:
		return d.Name, true
	case BlockSymbol:
		return d.Name, true
	case RegisterVariableSymbol:
		return d.Name, true
	case RegisterRelativeSymbol:
		return d.Name, true
	case ThunkSymbol:
		return d.Name, true
	case SectionSymbol:
		return d.Name, true
	case CoffGroupSymbol:
		return d.Name, true
	case BasePointerRelativeSymbol:
		return d.Name, true
	}
	return "", false
}

// ScopeEnd marks the end of a scope, such as a procedure or block.
type ScopeEnd struct{}

// ProcedureEnd marks the end of an ID-stream procedure.
type ProcedureEnd struct{}

// InlineSiteEnd marks the end of an inline call site.
type InlineSiteEnd struct{}

func (ScopeEnd) symbolData()      {}
func (ProcedureEnd) symbolData()  {}
func (InlineSiteEnd) symbolData() {}

// sniffSlot probes for the undocumented trailing parameter-slot extension
// some compilers append after the name: a 0x24 marker byte at a fixed
// family-specific offset past the name, followed by a signed 32-bit slot.
// The probe is best effort; any length mismatch reads as "no slot".
func sniffSlot(payload []byte, nameLen, fixed int) *int32 {
	if len(payload)-nameLen-fixed < 6 {
		return nil
	}
	marker := nameLen + fixed + 3
	if marker+5 > len(payload) || payload[marker] != 0x24 {
		return nil
	}
	v := int32(binary.LittleEndian.Uint32(payload[marker+1:]))
	return &v
}

// ObjNameSymbol names the object file of a module.
//
// Kinds S_OBJNAME and S_OBJNAME_ST.
type ObjNameSymbol struct {
	Signature uint32
	Name      string
}

func (ObjNameSymbol) symbolData() {}

func decodeObjName(payload []byte, kind SymbolKind) (ObjNameSymbol, error) {
	c := cursor.New(payload)
	sig, err := c.Uint32()
	if err != nil {
		return ObjNameSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return ObjNameSymbol{}, err
	}
	return ObjNameSymbol{Signature: sig, Name: name}, nil
}

// RegisterVariableSymbol is a variable stored in a register.
//
// Kinds S_REGISTER and S_REGISTER_ST.
type RegisterVariableSymbol struct {
	TypeIndex TypeIndex
	Register  Register
	Name      string
	// Slot is the sniffed parameter slot, if present.
	Slot *int32
}

func (RegisterVariableSymbol) symbolData() {}

func decodeRegisterVariable(payload []byte, kind SymbolKind) (RegisterVariableSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return RegisterVariableSymbol{}, err
	}
	reg, err := c.Uint16()
	if err != nil {
		return RegisterVariableSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return RegisterVariableSymbol{}, err
	}
	return RegisterVariableSymbol{
		TypeIndex: TypeIndex(ti),
		Register:  Register(reg),
		Name:      name,
		Slot:      sniffSlot(payload, len(name), 8),
	}, nil
}

// MultiRegisterVariableSymbol is a variable spanning multiple registers,
// most significant register first.
//
// Kinds S_MANYREG, S_MANYREG_ST, S_MANYREG2 and S_MANYREG2_ST.
type MultiRegisterVariableSymbol struct {
	TypeIndex TypeIndex
	Registers []NamedRegister
}

// NamedRegister is one register of a multi-register variable.
type NamedRegister struct {
	Register Register
	Name     string
}

func (MultiRegisterVariableSymbol) symbolData() {}

func decodeMultiRegisterVariable(payload []byte, kind SymbolKind) (MultiRegisterVariableSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return MultiRegisterVariableSymbol{}, err
	}

	var count uint16
	if kind == S_MANYREG2 || kind == S_MANYREG2_ST {
		count, err = c.Uint16()
	} else {
		var n uint8
		n, err = c.Uint8()
		count = uint16(n)
	}
	if err != nil {
		return MultiRegisterVariableSymbol{}, err
	}

	regs := make([]NamedRegister, 0, count)
	for i := uint16(0); i < count; i++ {
		reg, err := c.Uint16()
		if err != nil {
			return MultiRegisterVariableSymbol{}, err
		}
		name, err := readName(c, kind)
		if err != nil {
			return MultiRegisterVariableSymbol{}, err
		}
		regs = append(regs, NamedRegister{Register: Register(reg), Name: name})
	}

	return MultiRegisterVariableSymbol{TypeIndex: TypeIndex(ti), Registers: regs}, nil
}

// ConstantSymbol is a named constant value.
//
// Kinds S_CONSTANT, S_CONSTANT_ST and S_MANCONSTANT.
type ConstantSymbol struct {
	// Managed reports whether the constant has metadata type information.
	Managed   bool
	TypeIndex TypeIndex
	Value     Variant
	Name      string
}

func (ConstantSymbol) symbolData() {}

func decodeConstant(payload []byte, kind SymbolKind) (ConstantSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return ConstantSymbol{}, err
	}
	value, err := readVariant(c)
	if err != nil {
		return ConstantSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return ConstantSymbol{}, err
	}
	return ConstantSymbol{
		Managed:   kind == S_MANCONSTANT,
		TypeIndex: TypeIndex(ti),
		Value:     value,
		Name:      name,
	}, nil
}

// UserDefinedTypeSymbol names a user defined type.
//
// Kinds S_UDT, S_UDT_ST, S_COBOLUDT and S_COBOLUDT_ST.
type UserDefinedTypeSymbol struct {
	TypeIndex TypeIndex
	Name      string
}

func (UserDefinedTypeSymbol) symbolData() {}

func decodeUserDefinedType(payload []byte, kind SymbolKind) (UserDefinedTypeSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return UserDefinedTypeSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return UserDefinedTypeSymbol{}, err
	}
	return UserDefinedTypeSymbol{TypeIndex: TypeIndex(ti), Name: name}, nil
}

// DataSymbol is static data, such as a global variable.
//
// Kinds S_LDATA32, S_GDATA32, S_LMANDATA, S_GMANDATA and their _ST forms.
type DataSymbol struct {
	Global    bool
	Managed   bool
	TypeIndex TypeIndex
	Offset    SectionOffset
	Name      string
}

func (DataSymbol) symbolData() {}

func decodeData(payload []byte, kind SymbolKind) (DataSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return DataSymbol{}, err
	}
	off, err := readSectionOffset(c)
	if err != nil {
		return DataSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return DataSymbol{}, err
	}

	global := kind == S_GDATA32 || kind == S_GDATA32_ST || kind == S_GMANDATA || kind == S_GMANDATA_ST
	managed := kind == S_LMANDATA || kind == S_LMANDATA_ST || kind == S_GMANDATA || kind == S_GMANDATA_ST
	return DataSymbol{
		Global:    global,
		Managed:   managed,
		TypeIndex: TypeIndex(ti),
		Offset:    off,
		Name:      name,
	}, nil
}

// PublicSymbol is a public symbol with a mangled name.
//
// Kinds S_PUB32 and S_PUB32_ST.
type PublicSymbol struct {
	// Code reports whether the symbol refers to executable code.
	Code bool
	// Function reports whether the symbol is a function.
	Function bool
	// Managed reports whether the symbol is in managed code.
	Managed bool
	// MSIL reports whether the symbol is managed IL code.
	MSIL   bool
	Offset SectionOffset
	Name   string
}

func (PublicSymbol) symbolData() {}

func decodePublic(payload []byte, kind SymbolKind) (PublicSymbol, error) {
	c := cursor.New(payload)
	flags, err := c.Uint32()
	if err != nil {
		return PublicSymbol{}, err
	}
	off, err := readSectionOffset(c)
	if err != nil {
		return PublicSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return PublicSymbol{}, err
	}
	return PublicSymbol{
		Code:     flags&pubCode != 0,
		Function: flags&pubFunction != 0,
		Managed:  flags&pubManaged != 0,
		MSIL:     flags&pubMSIL != 0,
		Offset:   off,
		Name:     name,
	}, nil
}

// ThreadStorageSymbol is a thread local variable.
//
// Kinds S_LTHREAD32, S_GTHREAD32 and their _ST forms.
type ThreadStorageSymbol struct {
	Global    bool
	TypeIndex TypeIndex
	Offset    SectionOffset
	Name      string
}

func (ThreadStorageSymbol) symbolData() {}

func decodeThreadStorage(payload []byte, kind SymbolKind) (ThreadStorageSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return ThreadStorageSymbol{}, err
	}
	off, err := readSectionOffset(c)
	if err != nil {
		return ThreadStorageSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return ThreadStorageSymbol{}, err
	}
	return ThreadStorageSymbol{
		Global:    kind == S_GTHREAD32 || kind == S_GTHREAD32_ST,
		TypeIndex: TypeIndex(ti),
		Offset:    off,
		Name:      name,
	}, nil
}

// CompilerVersion is a frontend or backend version number in a compile-flags
// record. QFE is only present in v3 records.
type CompilerVersion struct {
	Major uint16
	Minor uint16
	Build uint16
	QFE   *uint16
}

func readCompilerVersion(c *cursor.Cursor, hasQFE bool) (CompilerVersion, error) {
	var v CompilerVersion
	var err error
	if v.Major, err = c.Uint16(); err != nil {
		return v, err
	}
	if v.Minor, err = c.Uint16(); err != nil {
		return v, err
	}
	if v.Build, err = c.Uint16(); err != nil {
		return v, err
	}
	if hasQFE {
		qfe, err := c.Uint16()
		if err != nil {
			return v, err
		}
		v.QFE = &qfe
	}
	return v, nil
}

// CompileFlagsSymbol records how a module was compiled.
//
// Kinds S_COMPILE2, S_COMPILE2_ST and S_COMPILE3.
type CompileFlagsSymbol struct {
	Language        SourceLanguage
	Flags           CompileFlags
	CPUType         CPUType
	FrontendVersion CompilerVersion
	BackendVersion  CompilerVersion
	VersionString   string
}

func (CompileFlagsSymbol) symbolData() {}

func decodeCompileFlags(payload []byte, kind SymbolKind) (CompileFlagsSymbol, error) {
	c := cursor.New(payload)
	lang, err := c.Uint8()
	if err != nil {
		return CompileFlagsSymbol{}, err
	}
	flags, err := readCompileFlags(c, kind)
	if err != nil {
		return CompileFlagsSymbol{}, err
	}
	cpu, err := c.Uint16()
	if err != nil {
		return CompileFlagsSymbol{}, err
	}

	hasQFE := kind == S_COMPILE3
	frontend, err := readCompilerVersion(c, hasQFE)
	if err != nil {
		return CompileFlagsSymbol{}, err
	}
	backend, err := readCompilerVersion(c, hasQFE)
	if err != nil {
		return CompileFlagsSymbol{}, err
	}
	version, err := readName(c, kind)
	if err != nil {
		return CompileFlagsSymbol{}, err
	}

	return CompileFlagsSymbol{
		Language:        SourceLanguage(lang),
		Flags:           flags,
		CPUType:         CPUType(cpu),
		FrontendVersion: frontend,
		BackendVersion:  backend,
		VersionString:   version,
	}, nil
}

// UsingNamespaceSymbol is a using-namespace directive.
//
// Kinds S_UNAMESPACE and S_UNAMESPACE_ST.
type UsingNamespaceSymbol struct {
	Name string
}

func (UsingNamespaceSymbol) symbolData() {}

func decodeUsingNamespace(payload []byte, kind SymbolKind) (UsingNamespaceSymbol, error) {
	c := cursor.New(payload)
	name, err := readName(c, kind)
	if err != nil {
		return UsingNamespaceSymbol{}, err
	}
	return UsingNamespaceSymbol{Name: name}, nil
}

// ProcedureReferenceSymbol references a procedure, possibly in another
// module.
//
// Kinds S_PROCREF, S_LPROCREF and their _ST forms.
type ProcedureReferenceSymbol struct {
	Global bool
	// SumName is the checksum of the referenced name.
	SumName     uint32
	SymbolIndex SymbolIndex
	// Module is the zero-based index of the module holding the actual
	// symbol; nil when the record does not name one.
	Module *uint16
	Name   *string
}

func (ProcedureReferenceSymbol) symbolData() {}

func decodeProcedureReference(payload []byte, kind SymbolKind) (ProcedureReferenceSymbol, error) {
	c := cursor.New(payload)
	sum, err := c.Uint32()
	if err != nil {
		return ProcedureReferenceSymbol{}, err
	}
	idx, err := c.Uint32()
	if err != nil {
		return ProcedureReferenceSymbol{}, err
	}
	module, err := readModuleIndex(c)
	if err != nil {
		return ProcedureReferenceSymbol{}, err
	}
	name, err := readOptionalName(c, kind)
	if err != nil {
		return ProcedureReferenceSymbol{}, err
	}
	return ProcedureReferenceSymbol{
		Global:      kind == S_PROCREF || kind == S_PROCREF_ST,
		SumName:     sum,
		SymbolIndex: SymbolIndex(idx),
		Module:      module,
		Name:        name,
	}, nil
}

// DataReferenceSymbol references an imported variable.
//
// Kinds S_DATAREF and S_DATAREF_ST.
type DataReferenceSymbol struct {
	SumName     uint32
	SymbolIndex SymbolIndex
	Module      *uint16
	Name        *string
}

func (DataReferenceSymbol) symbolData() {}

func decodeDataReference(payload []byte, kind SymbolKind) (DataReferenceSymbol, error) {
	c := cursor.New(payload)
	sum, err := c.Uint32()
	if err != nil {
		return DataReferenceSymbol{}, err
	}
	idx, err := c.Uint32()
	if err != nil {
		return DataReferenceSymbol{}, err
	}
	module, err := readModuleIndex(c)
	if err != nil {
		return DataReferenceSymbol{}, err
	}
	name, err := readOptionalName(c, kind)
	if err != nil {
		return DataReferenceSymbol{}, err
	}
	return DataReferenceSymbol{
		SumName:     sum,
		SymbolIndex: SymbolIndex(idx),
		Module:      module,
		Name:        name,
	}, nil
}

// AnnotationReferenceSymbol references an annotation.
//
// Kind S_ANNOTATIONREF.
type AnnotationReferenceSymbol struct {
	SumName     uint32
	SymbolIndex SymbolIndex
	Module      *uint16
	Name        string
}

func (AnnotationReferenceSymbol) symbolData() {}

func decodeAnnotationReference(payload []byte, kind SymbolKind) (AnnotationReferenceSymbol, error) {
	c := cursor.New(payload)
	sum, err := c.Uint32()
	if err != nil {
		return AnnotationReferenceSymbol{}, err
	}
	idx, err := c.Uint32()
	if err != nil {
		return AnnotationReferenceSymbol{}, err
	}
	module, err := readModuleIndex(c)
	if err != nil {
		return AnnotationReferenceSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return AnnotationReferenceSymbol{}, err
	}
	return AnnotationReferenceSymbol{
		SumName:     sum,
		SymbolIndex: SymbolIndex(idx),
		Module:      module,
		Name:        name,
	}, nil
}

// TokenReferenceSymbol references a managed procedure.
//
// Kind S_TOKENREF.
type TokenReferenceSymbol struct {
	SumName     uint32
	SymbolIndex SymbolIndex
	Module      *uint16
	Name        string
}

func (TokenReferenceSymbol) symbolData() {}

func decodeTokenReference(payload []byte, kind SymbolKind) (TokenReferenceSymbol, error) {
	c := cursor.New(payload)
	sum, err := c.Uint32()
	if err != nil {
		return TokenReferenceSymbol{}, err
	}
	idx, err := c.Uint32()
	if err != nil {
		return TokenReferenceSymbol{}, err
	}
	module, err := readModuleIndex(c)
	if err != nil {
		return TokenReferenceSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return TokenReferenceSymbol{}, err
	}
	return TokenReferenceSymbol{
		SumName:     sum,
		SymbolIndex: SymbolIndex(idx),
		Module:      module,
		Name:        name,
	}, nil
}

// TrampolineType is the subtype of a trampoline thunk.
type TrampolineType uint16

// Trampoline subtypes.
const (
	TrampolineIncremental  TrampolineType = 0
	TrampolineBranchIsland TrampolineType = 1
	TrampolineUnknown      TrampolineType = 0xffff
)

// TrampolineSymbol is a trampoline thunk.
//
// Kind S_TRAMPOLINE.
type TrampolineSymbol struct {
	TrampType TrampolineType
	Size      uint16
	Thunk     SectionOffset
	Target    SectionOffset
}

func (TrampolineSymbol) symbolData() {}

func decodeTrampoline(payload []byte, _ SymbolKind) (TrampolineSymbol, error) {
	c := cursor.New(payload)
	rawType, err := c.Uint16()
	if err != nil {
		return TrampolineSymbol{}, err
	}
	trampType := TrampolineUnknown
	switch rawType {
	case 0x00:
		trampType = TrampolineIncremental
	case 0x01:
		trampType = TrampolineBranchIsland
	}

	size, err := c.Uint16()
	if err != nil {
		return TrampolineSymbol{}, err
	}
	thunkOff, err := c.Uint32()
	if err != nil {
		return TrampolineSymbol{}, err
	}
	targetOff, err := c.Uint32()
	if err != nil {
		return TrampolineSymbol{}, err
	}
	thunkSec, err := c.Uint16()
	if err != nil {
		return TrampolineSymbol{}, err
	}
	targetSec, err := c.Uint16()
	if err != nil {
		return TrampolineSymbol{}, err
	}

	return TrampolineSymbol{
		TrampType: trampType,
		Size:      size,
		Thunk:     SectionOffset{Offset: thunkOff, Section: thunkSec},
		Target:    SectionOffset{Offset: targetOff, Section: targetSec},
	}, nil
}

// ExportSymbol is an exported symbol.
//
// Kind S_EXPORT.
type ExportSymbol struct {
	Ordinal uint16
	Flags   ExportFlags
	Name    string
}

func (ExportSymbol) symbolData() {}

func decodeExport(payload []byte, kind SymbolKind) (ExportSymbol, error) {
	c := cursor.New(payload)
	ordinal, err := c.Uint16()
	if err != nil {
		return ExportSymbol{}, err
	}
	flags, err := readExportFlags(c)
	if err != nil {
		return ExportSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return ExportSymbol{}, err
	}
	return ExportSymbol{Ordinal: ordinal, Flags: flags, Name: name}, nil
}

// LocalSymbol is a local variable in optimized code.
//
// Kind S_LOCAL.
type LocalSymbol struct {
	TypeIndex TypeIndex
	Flags     LocalVariableFlags
	Name      string
	// Slot is the sniffed parameter slot, if present.
	Slot *int32
}

func (LocalSymbol) symbolData() {}

func decodeLocal(payload []byte, kind SymbolKind) (LocalSymbol, error) {
	c := cursor.New(payload)
	ti, err := c.Uint32()
	if err != nil {
		return LocalSymbol{}, err
	}
	flags, err := readLocalVariableFlags(c)
	if err != nil {
		return LocalSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return LocalSymbol{}, err
	}
	return LocalSymbol{
		TypeIndex: TypeIndex(ti),
		Flags:     flags,
		Name:      name,
		Slot:      sniffSlot(payload, len(name), 8),
	}, nil
}

// ManagedSlotSymbol is a managed local variable slot.
//
// Kinds S_MANSLOT and S_MANSLOT_ST.
type ManagedSlotSymbol struct {
	Slot      uint32
	TypeIndex TypeIndex
	Offset    SectionOffset
	Flags     LocalVariableFlags
	Name      string
}

func (ManagedSlotSymbol) symbolData() {}

func decodeManagedSlot(payload []byte, kind SymbolKind) (ManagedSlotSymbol, error) {
	c := cursor.New(payload)
	slot, err := c.Uint32()
	if err != nil {
		return ManagedSlotSymbol{}, err
	}
	ti, err := c.Uint32()
	if err != nil {
		return ManagedSlotSymbol{}, err
	}
	off, err := readSectionOffset(c)
	if err != nil {
		return ManagedSlotSymbol{}, err
	}
	flags, err := readLocalVariableFlags(c)
	if err != nil {
		return ManagedSlotSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return ManagedSlotSymbol{}, err
	}
	return ManagedSlotSymbol{
		Slot:      slot,
		TypeIndex: TypeIndex(ti),
		Offset:    off,
		Flags:     flags,
		Name:      name,
	}, nil
}

// BuildInfoSymbol references the build information record of a module.
//
// Kind S_BUILDINFO.
type BuildInfoSymbol struct {
	ID IdIndex
}

func (BuildInfoSymbol) symbolData() {}

func decodeBuildInfo(payload []byte, _ SymbolKind) (BuildInfoSymbol, error) {
	c := cursor.New(payload)
	id, err := c.Uint32()
	if err != nil {
		return BuildInfoSymbol{}, err
	}
	return BuildInfoSymbol{ID: IdIndex(id)}, nil
}

// LabelSymbol is a code label.
//
// Kinds S_LABEL32 and S_LABEL32_ST.
type LabelSymbol struct {
	Offset SectionOffset
	Flags  ProcedureFlags
	Name   string
}

func (LabelSymbol) symbolData() {}

func decodeLabel(payload []byte, kind SymbolKind) (LabelSymbol, error) {
	c := cursor.New(payload)
	off, err := readSectionOffset(c)
	if err != nil {
		return LabelSymbol{}, err
	}
	flags, err := readProcedureFlags(c)
	if err != nil {
		return LabelSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return LabelSymbol{}, err
	}
	return LabelSymbol{Offset: off, Flags: flags, Name: name}, nil
}

// RegisterRelativeSymbol is a variable addressed relative to a register,
// e.g. EBP+8.
//
// Kind S_REGREL32.
type RegisterRelativeSymbol struct {
	Offset    int32
	TypeIndex TypeIndex
	Register  Register
	Name      string
	// Slot is the sniffed parameter slot, if present.
	Slot *int32
}

func (RegisterRelativeSymbol) symbolData() {}

func decodeRegisterRelative(payload []byte, kind SymbolKind) (RegisterRelativeSymbol, error) {
	c := cursor.New(payload)
	off, err := c.Int32()
	if err != nil {
		return RegisterRelativeSymbol{}, err
	}
	ti, err := c.Uint32()
	if err != nil {
		return RegisterRelativeSymbol{}, err
	}
	reg, err := c.Uint16()
	if err != nil {
		return RegisterRelativeSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return RegisterRelativeSymbol{}, err
	}
	return RegisterRelativeSymbol{
		Offset:    off,
		TypeIndex: TypeIndex(ti),
		Register:  Register(reg),
		Name:      name,
		Slot:      sniffSlot(payload, len(name), 0xc),
	}, nil
}

// BasePointerRelativeSymbol is a variable addressed relative to the frame
// base pointer.
//
// Kinds S_BPREL32, S_BPREL32_ST and S_BPREL32_16T.
type BasePointerRelativeSymbol struct {
	Offset    int32
	TypeIndex TypeIndex
	Name      string
	// Slot is the sniffed parameter slot, if present.
	Slot *int32
}

func (BasePointerRelativeSymbol) symbolData() {}

func decodeBasePointerRelative(payload []byte, kind SymbolKind) (BasePointerRelativeSymbol, error) {
	c := cursor.New(payload)
	off, err := c.Int32()
	if err != nil {
		return BasePointerRelativeSymbol{}, err
	}

	var ti TypeIndex
	if kind == S_BPREL32_16T {
		// 16-bit type index generation
		v, err := c.Uint16()
		if err != nil {
			return BasePointerRelativeSymbol{}, err
		}
		ti = TypeIndex(v)
	} else {
		v, err := c.Uint32()
		if err != nil {
			return BasePointerRelativeSymbol{}, err
		}
		ti = TypeIndex(v)
	}

	name, err := readName(c, kind)
	if err != nil {
		return BasePointerRelativeSymbol{}, err
	}
	return BasePointerRelativeSymbol{
		Offset:    off,
		TypeIndex: ti,
		Name:      name,
		Slot:      sniffSlot(payload, len(name), 0xa),
	}, nil
}

// OemSymbol carries OEM-specific data.
//
// Kind S_OEM.
type OemSymbol struct {
	// IDOem is the OEM's identifier.
	IDOem     string
	TypeIndex TypeIndex
	// Rgl is the first 4 bytes of the OEM user data.
	Rgl uint32
}

func (OemSymbol) symbolData() {}

func decodeOem(payload []byte, _ SymbolKind) (OemSymbol, error) {
	c := cursor.New(payload)
	id, err := c.CString()
	if err != nil {
		return OemSymbol{}, err
	}
	ti, err := c.Uint32()
	if err != nil {
		return OemSymbol{}, err
	}
	rgl, err := c.Uint32()
	if err != nil {
		return OemSymbol{}, err
	}
	return OemSymbol{IDOem: id, TypeIndex: TypeIndex(ti), Rgl: rgl}, nil
}

// EnvBlockSymbol is the environment block split off from a compile record.
//
// Kind S_ENVBLOCK.
type EnvBlockSymbol struct {
	EditAndContinue bool
	// Rgsz is the sequence of command strings.
	Rgsz []string
}

func (EnvBlockSymbol) symbolData() {}

func decodeEnvBlock(payload []byte, kind SymbolKind) (EnvBlockSymbol, error) {
	c := cursor.New(payload)
	flags, err := c.Uint8()
	if err != nil {
		return EnvBlockSymbol{}, err
	}

	var strings []string
	for !c.Empty() {
		s, err := readName(c, kind)
		if err != nil {
			return EnvBlockSymbol{}, err
		}
		strings = append(strings, s)
	}
	return EnvBlockSymbol{EditAndContinue: flags&1 != 0, Rgsz: strings}, nil
}

// SectionSymbol describes a COFF section of a PE executable.
//
// Kind S_SECTION.
type SectionSymbol struct {
	// ISec is the section number.
	ISec uint16
	// Align is the section alignment as a power of two.
	Align    uint8
	Reserved uint8
	RVA      uint32
	// CB is the section size in bytes.
	CB              uint32
	Characteristics uint32
	Name            string
}

func (SectionSymbol) symbolData() {}

func decodeSection(payload []byte, kind SymbolKind) (SectionSymbol, error) {
	c := cursor.New(payload)
	var s SectionSymbol
	var err error
	if s.ISec, err = c.Uint16(); err != nil {
		return s, err
	}
	if s.Align, err = c.Uint8(); err != nil {
		return s, err
	}
	if s.Reserved, err = c.Uint8(); err != nil {
		return s, err
	}
	if s.RVA, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.CB, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.Characteristics, err = c.Uint32(); err != nil {
		return s, err
	}
	if s.Name, err = readName(c, kind); err != nil {
		return s, err
	}
	return s, nil
}

// CoffGroupSymbol describes a COFF group.
//
// Kind S_COFFGROUP.
type CoffGroupSymbol struct {
	// CB is the group size in bytes.
	CB              uint32
	Characteristics uint32
	Offset          SectionOffset
	Name            string
}

func (CoffGroupSymbol) symbolData() {}

func decodeCoffGroup(payload []byte, kind SymbolKind) (CoffGroupSymbol, error) {
	c := cursor.New(payload)
	cb, err := c.Uint32()
	if err != nil {
		return CoffGroupSymbol{}, err
	}
	characteristics, err := c.Uint32()
	if err != nil {
		return CoffGroupSymbol{}, err
	}
	off, err := readSectionOffset(c)
	if err != nil {
		return CoffGroupSymbol{}, err
	}
	name, err := readName(c, kind)
	if err != nil {
		return CoffGroupSymbol{}, err
	}
	return CoffGroupSymbol{
		CB:              cb,
		Characteristics: characteristics,
		Offset:          off,
		Name:            name,
	}, nil
}
