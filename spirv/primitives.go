package spirv

// This file is the Primitive Library (component D): scalar and small
// vector helpers shared by every source and color-op emitter. Each
// function takes and returns SPIR-V float ids; none retain state beyond
// the Context they're given.

func (c *Context) sin(x uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450Sin, x)
}

func (c *Context) cos(x uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450Cos, x)
}

func (c *Context) floor(x uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450Floor, x)
}

func (c *Context) sqrt(x uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450Sqrt, x)
}

func (c *Context) abs(x uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450FAbs, x)
}

func (c *Context) atan2(y, x uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450Atan2, y, x)
}

func (c *Context) pow(x, y uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450Pow, x, y)
}

func (c *Context) fmax(a, b uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450FMax, a, b)
}

func (c *Context) fmin(a, b uint32) uint32 {
	return c.b.AddExtInst(c.floatType, c.glslExt, GLSLstd450FMin, a, b)
}

func (c *Context) add(a, b uint32) uint32 { return c.b.AddBinaryOp(OpFAdd, c.floatType, a, b) }
func (c *Context) sub(a, b uint32) uint32 { return c.b.AddBinaryOp(OpFSub, c.floatType, a, b) }
func (c *Context) mul(a, b uint32) uint32 { return c.b.AddBinaryOp(OpFMul, c.floatType, a, b) }
func (c *Context) div(a, b uint32) uint32 { return c.b.AddBinaryOp(OpFDiv, c.floatType, a, b) }

// mix computes a*(1-t) + b*t.
func (c *Context) mix(a, b, t uint32) uint32 {
	one := c.Const(1)
	oneMinusT := c.sub(one, t)
	return c.add(c.mul(a, oneMinusT), c.mul(b, t))
}

// clamp01 computes min(max(x,0),1).
func (c *Context) clamp01(x uint32) uint32 {
	return c.fmin(c.fmax(x, c.Const(0)), c.Const(1))
}

// smoothstep is the GLSL definition: t = clamp01((x-e0)/(e1-e0)); t*t*(3-2t).
func (c *Context) smoothstep(e0, e1, x uint32) uint32 {
	t := c.clamp01(c.div(c.sub(x, e0), c.sub(e1, e0)))
	three := c.Const(3)
	two := c.Const(2)
	return c.mul(c.mul(t, t), c.sub(three, c.mul(two, t)))
}

// fract computes x - floor(x).
func (c *Context) fract(x uint32) uint32 {
	return c.sub(x, c.floor(x))
}

// modf computes x - y*floor(x/y).
func (c *Context) modf(x, y uint32) uint32 {
	return c.sub(x, c.mul(y, c.floor(c.div(x, y))))
}

// step computes x < edge ? 0 : 1, via select on a comparison.
func (c *Context) step(edge, x uint32) uint32 {
	cmp := c.b.AddBinaryOp(OpFOrdLessThan, c.boolType, x, edge)
	return c.b.AddSelect(c.floatType, cmp, c.Const(0), c.Const(1))
}

// quantize computes floor(x*levels)/levels.
func (c *Context) quantize(x, levels uint32) uint32 {
	return c.div(c.floor(c.mul(x, levels)), levels)
}

// safePow computes pow(clamp01(x), y).
func (c *Context) safePow(x, y uint32) uint32 {
	return c.pow(c.clamp01(x), y)
}

// luma computes 0.299*r + 0.587*g + 0.114*b from a vec4 color id.
func (c *Context) luma(color uint32) uint32 {
	r := c.Extract(color, 0)
	g := c.Extract(color, 1)
	b := c.Extract(color, 2)
	return c.add(
		c.add(c.mul(r, c.Const(0.299)), c.mul(g, c.Const(0.587))),
		c.mul(b, c.Const(0.114)),
	)
}

// length2 computes sqrt(x*x + y*y) from a vec2 id.
func (c *Context) length2(v uint32) uint32 {
	x := c.Extract(v, 0)
	y := c.Extract(v, 1)
	return c.sqrt(c.add(c.mul(x, x), c.mul(y, y)))
}

// applyRGB applies f to each of a color's RGB channels, preserving alpha.
func (c *Context) applyRGB(color uint32, f func(uint32) uint32) uint32 {
	r := c.Extract(color, 0)
	g := c.Extract(color, 1)
	b := c.Extract(color, 2)
	a := c.Extract(color, 3)
	return c.Vec4(f(r), f(g), f(b), a)
}
