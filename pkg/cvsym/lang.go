package cvsym

import "fmt"

// SourceLanguage identifies the language a module was compiled from, as
// recorded in compile-flags records (CV_CFL_LANG).
type SourceLanguage uint8

// Known source languages.
const (
	LanguageC       SourceLanguage = 0x00
	LanguageCpp     SourceLanguage = 0x01
	LanguageFortran SourceLanguage = 0x02
	LanguageMasm    SourceLanguage = 0x03
	LanguagePascal  SourceLanguage = 0x04
	LanguageBasic   SourceLanguage = 0x05
	LanguageCobol   SourceLanguage = 0x06
	LanguageLink    SourceLanguage = 0x07
	LanguageCvtres  SourceLanguage = 0x08
	LanguageCvtpgd  SourceLanguage = 0x09
	LanguageCSharp  SourceLanguage = 0x0a
	LanguageVB      SourceLanguage = 0x0b
	LanguageILAsm   SourceLanguage = 0x0c
	LanguageJava    SourceLanguage = 0x0d
	LanguageJScript SourceLanguage = 0x0e
	LanguageMSIL    SourceLanguage = 0x0f
	LanguageHLSL    SourceLanguage = 0x10
	LanguageObjC    SourceLanguage = 0x11
	LanguageObjCpp  SourceLanguage = 0x12
	LanguageSwift   SourceLanguage = 0x13
	LanguageRust    SourceLanguage = 0x15
)

var languageNames = map[SourceLanguage]string{
	LanguageC:       "C",
	LanguageCpp:     "C++",
	LanguageFortran: "FORTRAN",
	LanguageMasm:    "MASM",
	LanguagePascal:  "Pascal",
	LanguageBasic:   "Basic",
	LanguageCobol:   "COBOL",
	LanguageLink:    "LINK",
	LanguageCvtres:  "CVTRES",
	LanguageCvtpgd:  "CVTPGD",
	LanguageCSharp:  "C#",
	LanguageVB:      "Visual Basic",
	LanguageILAsm:   "ILASM",
	LanguageJava:    "Java",
	LanguageJScript: "JScript",
	LanguageMSIL:    "MSIL",
	LanguageHLSL:    "HLSL",
	LanguageObjC:    "Objective-C",
	LanguageObjCpp:  "Objective-C++",
	LanguageSwift:   "Swift",
	LanguageRust:    "Rust",
}

// String returns a human-readable language name. Unknown raw values are
// preserved in hex form.
func (l SourceLanguage) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language(0x%02x)", uint8(l))
}

// CPUType identifies the machine a module targets (CV_CPU_TYPE_e).
type CPUType uint16

// Known target machines.
const (
	CPUIntel8080   CPUType = 0x00
	CPUIntel8086   CPUType = 0x01
	CPUIntel80286  CPUType = 0x02
	CPUIntel80386  CPUType = 0x03
	CPUIntel80486  CPUType = 0x04
	CPUPentium     CPUType = 0x05
	CPUPentiumPro  CPUType = 0x06
	CPUPentium3    CPUType = 0x07
	CPUMIPS        CPUType = 0x10
	CPUMIPS16      CPUType = 0x11
	CPUMIPS32      CPUType = 0x12
	CPUMIPS64      CPUType = 0x13
	CPUM68000      CPUType = 0x20
	CPUAlpha       CPUType = 0x30
	CPUPPC601      CPUType = 0x40
	CPUPPC603      CPUType = 0x41
	CPUPPC604      CPUType = 0x42
	CPUPPC620      CPUType = 0x43
	CPUPPCFP       CPUType = 0x44
	CPUPPCBE       CPUType = 0x45
	CPUSH3         CPUType = 0x50
	CPUSH4         CPUType = 0x53
	CPUARM3        CPUType = 0x60
	CPUARM4        CPUType = 0x61
	CPUARM4T       CPUType = 0x62
	CPUARM5        CPUType = 0x63
	CPUARM5T       CPUType = 0x64
	CPUARM6        CPUType = 0x65
	CPUARM7        CPUType = 0x68
	CPUOmni        CPUType = 0x70
	CPUIa64        CPUType = 0x80
	CPUCEE         CPUType = 0x90
	CPUAM33        CPUType = 0xa0
	CPUM32R        CPUType = 0xb0
	CPUTriCore     CPUType = 0xc0
	CPUX64         CPUType = 0xd0
	CPUEBC         CPUType = 0xe0
	CPUThumb       CPUType = 0xf0
	CPUARMNT       CPUType = 0xf4
	CPUARM64       CPUType = 0xf6
	CPUD3D11Shader CPUType = 0x100
)

var cpuNames = map[CPUType]string{
	CPUIntel8080:   "8080",
	CPUIntel8086:   "8086",
	CPUIntel80286:  "80286",
	CPUIntel80386:  "80386",
	CPUIntel80486:  "80486",
	CPUPentium:     "Pentium",
	CPUPentiumPro:  "Pentium Pro",
	CPUPentium3:    "Pentium III",
	CPUMIPS:        "MIPS",
	CPUMIPS16:      "MIPS16",
	CPUMIPS32:      "MIPS32",
	CPUMIPS64:      "MIPS64",
	CPUM68000:      "M68000",
	CPUAlpha:       "Alpha",
	CPUPPC601:      "PPC 601",
	CPUPPC603:      "PPC 603",
	CPUPPC604:      "PPC 604",
	CPUPPC620:      "PPC 620",
	CPUPPCFP:       "PPC w/FP",
	CPUPPCBE:       "PPC (Big Endian)",
	CPUSH3:         "SH3",
	CPUSH4:         "SH4",
	CPUARM3:        "ARM3",
	CPUARM4:        "ARM4",
	CPUARM4T:       "ARM4T",
	CPUARM5:        "ARM5",
	CPUARM5T:       "ARM5T",
	CPUARM6:        "ARM6",
	CPUARM7:        "ARM7",
	CPUOmni:        "Omni",
	CPUIa64:        "Itanium",
	CPUCEE:         "CEE",
	CPUAM33:        "AM33",
	CPUM32R:        "M32R",
	CPUTriCore:     "TriCore",
	CPUX64:         "x64",
	CPUEBC:         "EBC",
	CPUThumb:       "Thumb",
	CPUARMNT:       "ARMNT",
	CPUARM64:       "ARM64",
	CPUD3D11Shader: "D3D11 Shader",
}

// String returns a human-readable machine name. Unknown raw values are
// preserved in hex form.
func (c CPUType) String() string {
	if name, ok := cpuNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cpu(0x%04x)", uint16(c))
}
