package spirv

import (
	"encoding/binary"
	"math"
)

// Instruction is one SPIR-V instruction: an opcode plus its operand words
// (result type id and result id, where applicable, come first).
type Instruction struct {
	Opcode OpCode
	Words  []uint32
}

// Encode returns the instruction's binary word stream, including its
// leading (word-count<<16)|opcode header word.
func (i Instruction) Encode() []uint32 {
	out := make([]uint32, 0, len(i.Words)+1)
	out = append(out, (uint32(len(i.Words)+1)<<16)|uint32(i.Opcode))
	out = append(out, i.Words...)
	return out
}

// instBuilder accumulates the operand words of a single instruction.
type instBuilder struct {
	words []uint32
}

func newInst() *instBuilder {
	return &instBuilder{words: make([]uint32, 0, 8)}
}

func (b *instBuilder) word(w uint32) *instBuilder {
	b.words = append(b.words, w)
	return b
}

func (b *instBuilder) str(s string) *instBuilder {
	raw := []byte(s)
	raw = append(raw, 0)
	for len(raw)%4 != 0 {
		raw = append(raw, 0)
	}
	for i := 0; i < len(raw); i += 4 {
		b.words = append(b.words, uint32(raw[i])|uint32(raw[i+1])<<8|uint32(raw[i+2])<<16|uint32(raw[i+3])<<24)
	}
	return b
}

func (b *instBuilder) build(op OpCode) Instruction {
	return Instruction{Opcode: op, Words: b.words}
}

// ModuleBuilder assembles a complete SPIR-V module section by section, in
// the order the spec mandates (capabilities, ext-inst imports, memory
// model, entry points, execution modes, debug names, annotations, types
// and constants, global variables, functions), then serializes the whole
// thing to a little-endian byte stream.
type ModuleBuilder struct {
	version Version

	capabilities   []Instruction
	extInstImports []Instruction
	memoryModel    *Instruction
	entryPoints    []Instruction
	executionModes []Instruction
	debugNames     []Instruction
	annotations    []Instruction
	types          []Instruction
	globalVars     []Instruction
	functions      []Instruction

	nextID uint32
}

// NewModuleBuilder creates an empty builder targeting the given SPIR-V
// version. IDs start at 1, as the SPIR-V spec requires (id 0 is reserved).
func NewModuleBuilder(version Version) *ModuleBuilder {
	return &ModuleBuilder{version: version, nextID: 1}
}

// AllocID reserves and returns the next free SPIR-V id.
func (b *ModuleBuilder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

func (b *ModuleBuilder) AddCapability(c Capability) {
	b.capabilities = append(b.capabilities, newInst().word(uint32(c)).build(OpCapability))
}

func (b *ModuleBuilder) AddExtInstImport(name string) uint32 {
	id := b.AllocID()
	b.extInstImports = append(b.extInstImports, newInst().word(id).str(name).build(OpExtInstImport))
	return id
}

func (b *ModuleBuilder) SetMemoryModel(addressing AddressingModel, memory MemoryModel) {
	inst := newInst().word(uint32(addressing)).word(uint32(memory)).build(OpMemoryModel)
	b.memoryModel = &inst
}

func (b *ModuleBuilder) AddEntryPoint(model ExecutionModel, funcID uint32, name string, interfaces []uint32) {
	ib := newInst().word(uint32(model)).word(funcID).str(name)
	for _, iface := range interfaces {
		ib.word(iface)
	}
	b.entryPoints = append(b.entryPoints, ib.build(OpEntryPoint))
}

func (b *ModuleBuilder) AddExecutionMode(entryPoint uint32, mode ExecutionMode, params ...uint32) {
	ib := newInst().word(entryPoint).word(uint32(mode))
	for _, p := range params {
		ib.word(p)
	}
	b.executionModes = append(b.executionModes, ib.build(OpExecutionMode))
}

func (b *ModuleBuilder) AddName(id uint32, name string) {
	b.debugNames = append(b.debugNames, newInst().word(id).str(name).build(OpName))
}

func (b *ModuleBuilder) AddMemberName(structID, member uint32, name string) {
	b.debugNames = append(b.debugNames, newInst().word(structID).word(member).str(name).build(OpMemberName))
}

func (b *ModuleBuilder) AddDecorate(id uint32, decoration Decoration, params ...uint32) {
	ib := newInst().word(id).word(uint32(decoration))
	for _, p := range params {
		ib.word(p)
	}
	b.annotations = append(b.annotations, ib.build(OpDecorate))
}

func (b *ModuleBuilder) AddMemberDecorate(structID, member uint32, decoration Decoration, params ...uint32) {
	ib := newInst().word(structID).word(member).word(uint32(decoration))
	for _, p := range params {
		ib.word(p)
	}
	b.annotations = append(b.annotations, ib.build(OpMemberDecorate))
}

func (b *ModuleBuilder) AddTypeVoid() uint32 {
	id := b.AllocID()
	b.types = append(b.types, newInst().word(id).build(OpTypeVoid))
	return id
}

func (b *ModuleBuilder) AddTypeBool() uint32 {
	id := b.AllocID()
	b.types = append(b.types, newInst().word(id).build(OpTypeBool))
	return id
}

func (b *ModuleBuilder) AddTypeFloat(width uint32) uint32 {
	id := b.AllocID()
	b.types = append(b.types, newInst().word(id).word(width).build(OpTypeFloat))
	return id
}

func (b *ModuleBuilder) AddTypeInt(width uint32, signed bool) uint32 {
	id := b.AllocID()
	s := uint32(0)
	if signed {
		s = 1
	}
	b.types = append(b.types, newInst().word(id).word(width).word(s).build(OpTypeInt))
	return id
}

func (b *ModuleBuilder) AddTypeVector(component uint32, count uint32) uint32 {
	id := b.AllocID()
	b.types = append(b.types, newInst().word(id).word(component).word(count).build(OpTypeVector))
	return id
}

func (b *ModuleBuilder) AddTypePointer(storageClass StorageClass, base uint32) uint32 {
	id := b.AllocID()
	b.types = append(b.types, newInst().word(id).word(uint32(storageClass)).word(base).build(OpTypePointer))
	return id
}

func (b *ModuleBuilder) AddTypeFunction(returnType uint32, paramTypes ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(id).word(returnType)
	for _, p := range paramTypes {
		ib.word(p)
	}
	b.types = append(b.types, ib.build(OpTypeFunction))
	return id
}

func (b *ModuleBuilder) AddTypeStruct(memberTypes ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(id)
	for _, m := range memberTypes {
		ib.word(m)
	}
	b.types = append(b.types, ib.build(OpTypeStruct))
	return id
}

func (b *ModuleBuilder) AddConstant(typeID uint32, values ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(typeID).word(id)
	for _, v := range values {
		ib.word(v)
	}
	b.types = append(b.types, ib.build(OpConstant))
	return id
}

func (b *ModuleBuilder) AddConstantFloat32(typeID uint32, value float32) uint32 {
	return b.AddConstant(typeID, math.Float32bits(value))
}

func (b *ModuleBuilder) AddConstantComposite(typeID uint32, constituents ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(typeID).word(id)
	for _, c := range constituents {
		ib.word(c)
	}
	b.types = append(b.types, ib.build(OpConstantComposite))
	return id
}

func (b *ModuleBuilder) AddVariable(pointerType uint32, storageClass StorageClass) uint32 {
	id := b.AllocID()
	b.globalVars = append(b.globalVars, newInst().word(pointerType).word(id).word(uint32(storageClass)).build(OpVariable))
	return id
}

func (b *ModuleBuilder) AddFunction(funcType, returnType uint32, control FunctionControl) uint32 {
	id := b.AllocID()
	b.functions = append(b.functions, newInst().word(returnType).word(id).word(uint32(control)).word(funcType).build(OpFunction))
	return id
}

func (b *ModuleBuilder) AddLabel() uint32 {
	id := b.AllocID()
	b.functions = append(b.functions, newInst().word(id).build(OpLabel))
	return id
}

func (b *ModuleBuilder) AddReturn() {
	b.functions = append(b.functions, newInst().build(OpReturn))
}

func (b *ModuleBuilder) AddFunctionEnd() {
	b.functions = append(b.functions, newInst().build(OpFunctionEnd))
}

func (b *ModuleBuilder) AddBinaryOp(opcode OpCode, resultType, left, right uint32) uint32 {
	id := b.AllocID()
	b.functions = append(b.functions, newInst().word(resultType).word(id).word(left).word(right).build(opcode))
	return id
}

func (b *ModuleBuilder) AddUnaryOp(opcode OpCode, resultType, operand uint32) uint32 {
	id := b.AllocID()
	b.functions = append(b.functions, newInst().word(resultType).word(id).word(operand).build(opcode))
	return id
}

func (b *ModuleBuilder) AddLoad(resultType, pointer uint32) uint32 {
	id := b.AllocID()
	b.functions = append(b.functions, newInst().word(resultType).word(id).word(pointer).build(OpLoad))
	return id
}

func (b *ModuleBuilder) AddStore(pointer, value uint32) {
	b.functions = append(b.functions, newInst().word(pointer).word(value).build(OpStore))
}

func (b *ModuleBuilder) AddAccessChain(resultType, base uint32, indices ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(resultType).word(id).word(base)
	for _, ix := range indices {
		ib.word(ix)
	}
	b.functions = append(b.functions, ib.build(OpAccessChain))
	return id
}

func (b *ModuleBuilder) AddCompositeConstruct(resultType uint32, constituents ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(resultType).word(id)
	for _, c := range constituents {
		ib.word(c)
	}
	b.functions = append(b.functions, ib.build(OpCompositeConstruct))
	return id
}

func (b *ModuleBuilder) AddCompositeExtract(resultType, composite uint32, indices ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(resultType).word(id).word(composite)
	for _, ix := range indices {
		ib.word(ix)
	}
	b.functions = append(b.functions, ib.build(OpCompositeExtract))
	return id
}

func (b *ModuleBuilder) AddSelect(resultType, condition, accept, reject uint32) uint32 {
	id := b.AllocID()
	b.functions = append(b.functions, newInst().word(resultType).word(id).word(condition).word(accept).word(reject).build(OpSelect))
	return id
}

func (b *ModuleBuilder) AddExtInst(resultType, extSet, instruction uint32, operands ...uint32) uint32 {
	id := b.AllocID()
	ib := newInst().word(resultType).word(id).word(extSet).word(instruction)
	for _, o := range operands {
		ib.word(o)
	}
	b.functions = append(b.functions, ib.build(OpExtInst))
	return id
}

// Build serializes the module to a little-endian SPIR-V binary.
func (b *ModuleBuilder) Build() []byte {
	bound := b.nextID

	sections := [][]Instruction{
		b.capabilities, b.extInstImports, b.entryPoints, b.executionModes,
		b.debugNames, b.annotations, b.types, b.globalVars, b.functions,
	}
	total := 5
	for _, s := range sections {
		total += countWords(s)
	}
	if b.memoryModel != nil {
		total += len(b.memoryModel.Encode())
	}

	buf := make([]byte, total*4)
	off := 0
	putWord := func(w uint32) {
		binary.LittleEndian.PutUint32(buf[off:], w)
		off += 4
	}
	putWord(MagicNumber)
	putWord(versionWord(b.version))
	putWord(GeneratorID)
	putWord(bound)
	putWord(0) // schema

	off = writeAll(buf, off, b.capabilities)
	off = writeAll(buf, off, b.extInstImports)
	if b.memoryModel != nil {
		off = writeOne(buf, off, *b.memoryModel)
	}
	off = writeAll(buf, off, b.entryPoints)
	off = writeAll(buf, off, b.executionModes)
	off = writeAll(buf, off, b.debugNames)
	off = writeAll(buf, off, b.annotations)
	off = writeAll(buf, off, b.types)
	off = writeAll(buf, off, b.globalVars)
	_ = writeAll(buf, off, b.functions)

	return buf
}

func countWords(insts []Instruction) int {
	n := 0
	for _, i := range insts {
		n += len(i.Encode())
	}
	return n
}

func writeAll(buf []byte, off int, insts []Instruction) int {
	for _, i := range insts {
		off = writeOne(buf, off, i)
	}
	return off
}

func writeOne(buf []byte, off int, i Instruction) int {
	for _, w := range i.Encode() {
		binary.LittleEndian.PutUint32(buf[off:], w)
		off += 4
	}
	return off
}

func versionWord(v Version) uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}
