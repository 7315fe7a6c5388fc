// Package spirv emits a SPIR-V fragment shader module from a Hydra chain
// IR graph (package ir). It owns the module builder, type cache, uniform
// interface block, input/output variables and GLSL.std.450 handle
// (component C of the specification), a library of scalar/vector
// primitives (component D), source and color-op emitters (components E-F),
// the coordinate-threading IR evaluator (component G) and the final
// auto-exposure/tone-map/entry-point assembly (component H).
package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_5 = Version{1, 5}
)

// SPIR-V magic number and generator id.
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // unregistered generator
)

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes used by this module's emitted modules.
const (
	OpExtInstImport      OpCode = 11
	OpExtInst            OpCode = 12
	OpName               OpCode = 5
	OpMemberName         OpCode = 6
	OpMemoryModel        OpCode = 14
	OpEntryPoint         OpCode = 15
	OpExecutionMode      OpCode = 16
	OpCapability         OpCode = 17
	OpTypeVoid           OpCode = 19
	OpTypeBool           OpCode = 20
	OpTypeInt            OpCode = 21
	OpTypeFloat          OpCode = 22
	OpTypeVector         OpCode = 23
	OpTypeStruct         OpCode = 30
	OpTypePointer        OpCode = 32
	OpTypeFunction       OpCode = 33
	OpConstant           OpCode = 43
	OpConstantComposite  OpCode = 44
	OpFunction           OpCode = 54
	OpFunctionParameter  OpCode = 55
	OpFunctionEnd        OpCode = 56
	OpVariable           OpCode = 59
	OpLoad               OpCode = 61
	OpStore              OpCode = 62
	OpAccessChain        OpCode = 65
	OpDecorate           OpCode = 71
	OpMemberDecorate     OpCode = 72
	OpCompositeConstruct OpCode = 80
	OpCompositeExtract   OpCode = 81
	OpFNegate            OpCode = 127
	OpFAdd               OpCode = 129
	OpFSub               OpCode = 131
	OpFMul               OpCode = 133
	OpFDiv               OpCode = 136
	OpFOrdLessThan        OpCode = 184
	OpSelect             OpCode = 169
	OpLabel              OpCode = 248
	OpReturn             OpCode = 253
	OpReturnValue        OpCode = 254
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

const (
	DecorationBlock         Decoration = 2
	DecorationBuiltIn       Decoration = 11
	DecorationLocation      Decoration = 30
	DecorationBinding       Decoration = 33
	DecorationDescriptorSet Decoration = 34
	DecorationOffset        Decoration = 35
)

// BuiltIn represents a SPIR-V built-in decoration value.
type BuiltIn uint32

const (
	BuiltInFragCoord BuiltIn = 15
)

// ExecutionModel represents a SPIR-V execution model.
type ExecutionModel uint32

const (
	ExecutionModelFragment ExecutionModel = 4
)

// ExecutionMode represents a SPIR-V execution mode.
type ExecutionMode uint32

const (
	ExecutionModeOriginUpperLeft ExecutionMode = 7
)

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassFunction        StorageClass = 7
)

// AddressingModel represents a SPIR-V addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical AddressingModel = 0
)

// MemoryModel represents a SPIR-V memory model.
type MemoryModel uint32

const (
	MemoryModelGLSL450 MemoryModel = 1
)

// FunctionControl represents a SPIR-V function control mask.
type FunctionControl uint32

const (
	FunctionControlNone FunctionControl = 0x0
)

// Capability represents a SPIR-V capability.
type Capability uint32

const (
	CapabilityShader Capability = 1
)

// GLSL.std.450 extended instruction opcodes used by the primitive library.
// Sin, Cos, Floor, FAbs, Atan2 and Pow use the canonical registry values.
// Sqrt, FMax and FMin follow the reference implementation this module is
// grounded on (original_source/src/backend/hydra_sources.rs), which emits
// ext_inst 32/42/39 for sqrt and the clamp-style min/max helpers rather
// than the registry's 31/40/37 — see SPEC_FULL.md §4.
const (
	GLSLstd450Floor      uint32 = 8
	GLSLstd450FAbs       uint32 = 4
	GLSLstd450Sin        uint32 = 13
	GLSLstd450Cos        uint32 = 14
	GLSLstd450Atan2      uint32 = 25
	GLSLstd450Pow        uint32 = 26
	GLSLstd450Sqrt       uint32 = 32
	GLSLstd450FMin       uint32 = 39
	GLSLstd450FMax       uint32 = 42
	GLSLstd450FMix       uint32 = 46
	GLSLstd450Step       uint32 = 48
	GLSLstd450SmoothStep uint32 = 49
	GLSLstd450Fract      uint32 = 10
)
