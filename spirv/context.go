package spirv

// Context owns the module builder, cached type/constant ids, the uniform
// interface block and the FragCoord/FragColor variables for a single
// compile. Nothing here is shared across compiles — EmitPipeline
// constructs and consumes its own Context (§5 of the specification).
type Context struct {
	b       *ModuleBuilder
	glslExt uint32

	voidType  uint32
	boolType  uint32
	floatType uint32
	uintType  uint32
	vec2Type  uint32
	vec4Type  uint32

	globalsStructType uint32
	globalsPtrType    uint32
	globalsVar        uint32

	fragCoordVar uint32
	fragColorVar uint32

	floatConsts map[float32]uint32
	uintConsts  map[uint32]uint32

	// buffers maps an out(i) index to the color id most recently stored
	// into it. Populated by the evaluator's Output handling, read by the
	// Src source emitter.
	buffers map[uint32]uint32
}

// NewContext builds the fixed shader interface shared by every compile:
// capability Shader, Logical/GLSL450, a GLSL.std.450 import, the scalar and
// vector type cache, the Globals uniform block and the FragCoord/FragColor
// variables.
func NewContext(version Version) *Context {
	b := NewModuleBuilder(version)
	b.AddCapability(CapabilityShader)
	glslExt := b.AddExtInstImport("GLSL.std.450")
	b.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	c := &Context{
		b:           b,
		glslExt:     glslExt,
		floatConsts: make(map[float32]uint32),
		uintConsts:  make(map[uint32]uint32),
		buffers:     make(map[uint32]uint32),
	}

	c.voidType = b.AddTypeVoid()
	c.boolType = b.AddTypeBool()
	c.floatType = b.AddTypeFloat(32)
	c.uintType = b.AddTypeInt(32, false)
	c.vec2Type = b.AddTypeVector(c.floatType, 2)
	c.vec4Type = b.AddTypeVector(c.floatType, 4)

	// Globals uniform block: struct { vec4 data; } at offset 0, bound at
	// (set=0, binding=0).
	c.globalsStructType = b.AddTypeStruct(c.vec4Type)
	b.AddDecorate(c.globalsStructType, DecorationBlock)
	b.AddMemberDecorate(c.globalsStructType, 0, DecorationOffset, 0)
	c.globalsPtrType = b.AddTypePointer(StorageClassUniform, c.globalsStructType)
	c.globalsVar = b.AddVariable(c.globalsPtrType, StorageClassUniform)
	b.AddDecorate(c.globalsVar, DecorationDescriptorSet, 0)
	b.AddDecorate(c.globalsVar, DecorationBinding, 0)

	fragCoordPtrType := b.AddTypePointer(StorageClassInput, c.vec4Type)
	c.fragCoordVar = b.AddVariable(fragCoordPtrType, StorageClassInput)
	b.AddDecorate(c.fragCoordVar, DecorationBuiltIn, uint32(BuiltInFragCoord))

	fragColorPtrType := b.AddTypePointer(StorageClassOutput, c.vec4Type)
	c.fragColorVar = b.AddVariable(fragColorPtrType, StorageClassOutput)
	b.AddDecorate(c.fragColorVar, DecorationLocation, 0)

	return c
}

// Builder exposes the underlying ModuleBuilder for callers (the evaluator,
// entry assembly) that need to emit raw instructions.
func (c *Context) Builder() *ModuleBuilder { return c.b }

func (c *Context) VoidType() uint32  { return c.voidType }
func (c *Context) FloatType() uint32 { return c.floatType }
func (c *Context) Vec2Type() uint32  { return c.vec2Type }
func (c *Context) Vec4Type() uint32  { return c.vec4Type }

// Const returns a cached float constant id, creating it on first use.
func (c *Context) Const(v float32) uint32 {
	if id, ok := c.floatConsts[v]; ok {
		return id
	}
	id := c.b.AddConstantFloat32(c.floatType, v)
	c.floatConsts[v] = id
	return id
}

// ConstU returns a cached unsigned integer constant id.
func (c *Context) ConstU(v uint32) uint32 {
	if id, ok := c.uintConsts[v]; ok {
		return id
	}
	id := c.b.AddConstant(c.uintType, v)
	c.uintConsts[v] = id
	return id
}

// Vec2 constructs a vec2 from two float ids.
func (c *Context) Vec2(x, y uint32) uint32 {
	return c.b.AddCompositeConstruct(c.vec2Type, x, y)
}

// Vec4 constructs a vec4 from four float ids.
func (c *Context) Vec4(x, y, z, w uint32) uint32 {
	return c.b.AddCompositeConstruct(c.vec4Type, x, y, z, w)
}

// Extract returns the index-th scalar float component of a vector id.
func (c *Context) Extract(vec uint32, index uint32) uint32 {
	return c.b.AddCompositeExtract(c.floatType, vec, index)
}

// LoadTime returns Globals.data.x, the elapsed time in seconds.
func (c *Context) LoadTime() uint32 {
	globals := c.loadGlobalsData()
	return c.Extract(globals, 0)
}

// ComputeUV loads gl_FragCoord.xy and divides it by the viewport size
// carried in Globals.data.yz, producing a normalized [0,1]^2 coordinate.
func (c *Context) ComputeUV() uint32 {
	globals := c.loadGlobalsData()
	width := c.Extract(globals, 1)
	height := c.Extract(globals, 2)
	sizeVec := c.Vec2(width, height)

	fragCoord := c.b.AddLoad(c.vec4Type, c.fragCoordVar)
	fx := c.b.AddCompositeExtract(c.floatType, fragCoord, 0)
	fy := c.b.AddCompositeExtract(c.floatType, fragCoord, 1)
	fragXY := c.Vec2(fx, fy)

	return c.b.AddBinaryOp(OpFDiv, c.vec2Type, fragXY, sizeVec)
}

func (c *Context) loadGlobalsData() uint32 {
	ptrType := c.b.AddTypePointer(StorageClassUniform, c.vec4Type)
	member0 := c.ConstU(0)
	ptr := c.b.AddAccessChain(ptrType, c.globalsVar, member0)
	return c.b.AddLoad(c.vec4Type, ptr)
}

// StoreBuffer records color as the value of out(index), for later retrieval
// by Source{Kind: ir.Src}.
func (c *Context) StoreBuffer(index uint32, color uint32) {
	c.buffers[index] = color
}

// LoadBuffer returns the color stored for index and true, or (0, false) if
// no Output node has populated it yet in this compile.
func (c *Context) LoadBuffer(index uint32) (uint32, bool) {
	id, ok := c.buffers[index]
	return id, ok
}

// StoreFragColor writes the final color to the FragColor output variable.
func (c *Context) StoreFragColor(color uint32) {
	c.b.AddStore(c.fragColorVar, color)
}

// FragCoordVar, FragColorVar and GlobalsVar expose the interface variable
// ids, needed by entry assembly to declare the entry point's interface
// list as (FragCoord, FragColor, Globals).
func (c *Context) FragCoordVar() uint32 { return c.fragCoordVar }
func (c *Context) FragColorVar() uint32 { return c.fragColorVar }
func (c *Context) GlobalsVar() uint32   { return c.globalsVar }

// EnableDebugNames emits OpName entries for the fixed shader interface
// (the Globals struct/variable, FragCoord, FragColor). It's what
// Options.Debug gates: Hydra chains have no surface-level names to
// recover for individual emitter results, unlike a textual shader
// source's local variables, so only the interface gets named.
func (c *Context) EnableDebugNames() {
	c.b.AddName(c.globalsStructType, "Globals")
	c.b.AddMemberName(c.globalsStructType, 0, "data")
	c.b.AddName(c.globalsVar, "globals")
	c.b.AddName(c.fragCoordVar, "gl_FragCoord")
	c.b.AddName(c.fragColorVar, "fragColor")
}
