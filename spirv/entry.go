package spirv

import "github.com/gogpu/hydraspv/ir"

// AssembleModule is component H: it evaluates every statement root in
// order (sharing ctx's buffer map across them, per the multi-statement
// pipeline semantics), applies auto-exposure and an ACES tonemap to the
// last statement's color, stores the result to FragColor, and serializes
// the finished module.
//
// statementRoots must be non-empty; EmitPipeline is responsible for
// rejecting an empty chain list before calling this.
func AssembleModule(ctx *Context, graph *ir.Graph, statementRoots []ir.NodeID) []byte {
	b := ctx.Builder()

	voidFuncType := b.AddTypeFunction(ctx.VoidType())
	mainID := b.AddFunction(voidFuncType, ctx.VoidType(), FunctionControlNone)
	b.AddName(mainID, "main")
	b.AddLabel()

	var final uint32
	for _, root := range statementRoots {
		uv := ctx.ComputeUV()
		final = Evaluate(ctx, graph, root, uv)
	}

	exposed := ctx.autoExposure(final)
	toned := ctx.applyRGB(exposed, ctx.acesFilmic)
	clamped := ctx.clamp01Vec4(toned)
	ctx.StoreFragColor(clamped)

	b.AddReturn()
	b.AddFunctionEnd()

	b.AddEntryPoint(ExecutionModelFragment, mainID, "main", []uint32{ctx.FragCoordVar(), ctx.FragColorVar(), ctx.GlobalsVar()})
	b.AddExecutionMode(mainID, ExecutionModeOriginUpperLeft)

	return b.Build()
}

// autoExposure implements the auto-exposure gain: gain = min(6,
// 1/(luma(rgb)+0.02)), multiplied into RGB only — alpha passes through
// applyRGB untouched.
func (c *Context) autoExposure(color uint32) uint32 {
	l := c.luma(color)
	denom := c.add(l, c.Const(0.02))
	gain := c.fmin(c.Const(6), c.div(c.Const(1), denom))
	return c.applyRGB(color, func(x uint32) uint32 {
		return c.mul(x, gain)
	})
}

// acesFilmic evaluates (x*(a*x+b))/(x*(c*x+d)+e) with the standard
// Narkowicz ACES approximation constants, so out-of-range HDR values from
// additive blends (add, layer) compress gracefully instead of clipping.
func (c *Context) acesFilmic(x uint32) uint32 {
	a := c.Const(2.51)
	bConst := c.Const(0.03)
	cConst := c.Const(2.43)
	d := c.Const(0.59)
	e := c.Const(0.14)

	num := c.mul(x, c.add(c.mul(a, x), bConst))
	den := c.add(c.mul(x, c.add(c.mul(cConst, x), d)), e)
	return c.div(num, den)
}

// clamp01Vec4 clamps all four channels of a color id to [0,1], including
// alpha — the final step of the tone-mapping pipeline.
func (c *Context) clamp01Vec4(color uint32) uint32 {
	r := c.clamp01(c.Extract(color, 0))
	g := c.clamp01(c.Extract(color, 1))
	b := c.clamp01(c.Extract(color, 2))
	a := c.clamp01(c.Extract(color, 3))
	return c.Vec4(r, g, b, a)
}
