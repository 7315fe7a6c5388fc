package spirv

import "github.com/gogpu/hydraspv/ir"

// Evaluate walks graph from node id, threading coord as the current
// sampling coordinate, and returns the resulting vec4 color id (component
// G of the specification). coord is passed explicitly rather than held as
// mutable state so that a Modulate/ModulateScale binary can re-evaluate
// its left subtree under a transformed coordinate without disturbing the
// coordinate any sibling subtree sees.
//
// Output nodes are the one place evaluation has a side effect: they record
// their child's color into ctx's buffer map before returning it unchanged,
// so a later Src node (in this statement or a later one in the same
// pipeline) can read it back.
func Evaluate(ctx *Context, g *ir.Graph, id ir.NodeID, coord uint32) uint32 {
	n := g.At(id)
	switch k := n.Kind.(type) {
	case ir.Source:
		return ctx.emitSource(k, coord)

	case ir.Spatial:
		newCoord := ctx.emitSpatial(k, coord)
		return Evaluate(ctx, g, k.Child, newCoord)

	case ir.UnaryColor:
		childColor := Evaluate(ctx, g, k.Child, coord)
		return ctx.emitUnaryColor(k, childColor)

	case ir.Binary:
		return evaluateBinary(ctx, g, k, coord)

	case ir.Output:
		color := Evaluate(ctx, g, k.Child, coord)
		ctx.StoreBuffer(k.Index, color)
		return color

	default:
		return ctx.emitSolid(nil)
	}
}

// evaluateBinary handles both plain color combinators and the
// coordinate-modulating kinds. Modulate/ModulateScale never call
// emitBinary — there is no right-hand color to combine, only a
// right-derived coordinate to re-sample Left at.
func evaluateBinary(ctx *Context, g *ir.Graph, bin ir.Binary, coord uint32) uint32 {
	if bin.Kind.Modulating() {
		modColor := Evaluate(ctx, g, bin.Right, coord)
		newCoord := ctx.modulateCoord(bin, modColor, coord)
		return Evaluate(ctx, g, bin.Left, newCoord)
	}

	left := Evaluate(ctx, g, bin.Left, coord)
	right := Evaluate(ctx, g, bin.Right, coord)
	return ctx.emitBinary(bin, left, right)
}

// modulateCoord implements the two coordinate-modulating binaries:
//
//   - modulate(amount=1): new_x = clamp01(x + (r-0.5)*amount),
//     new_y = clamp01(y + (g-0.5)*amount), reading the modulator's
//     red/green channels as an independent x/y displacement.
//   - modulateScale(amount=1): factor = 1 + luma(mod)*amount, applied
//     by dividing the centered coordinate by factor uniformly on both
//     axes rather than displacing x and y independently.
//
// amount defaults to 1, not canonical Hydra's 0.1, since both kinds take
// an amount and the missing-second-argument law applies to them the same
// as every other amount-taking binary.
func (c *Context) modulateCoord(bin ir.Binary, modColor, coord uint32) uint32 {
	amount := c.arg(bin.Args, 0, 1)

	if bin.Kind == ir.ModulateScale {
		factor := c.add(c.Const(1), c.mul(c.luma(modColor), amount))
		safeFactor := c.fmax(factor, c.Const(1e-5))
		cx, cy := c.centered(coord)
		nx := c.add(c.div(cx, safeFactor), c.Const(0.5))
		ny := c.add(c.div(cy, safeFactor), c.Const(0.5))
		return c.Vec2(nx, ny)
	}

	x := c.Extract(coord, 0)
	y := c.Extract(coord, 1)
	r := c.Extract(modColor, 0)
	g := c.Extract(modColor, 1)
	half := c.Const(0.5)

	nx := c.clamp01(c.add(x, c.mul(c.sub(r, half), amount)))
	ny := c.clamp01(c.add(y, c.mul(c.sub(g, half), amount)))
	return c.Vec2(nx, ny)
}
