package spirv

import "github.com/gogpu/hydraspv/ir"

// emitSpatial transforms a coordinate (component E' of the specification)
// and returns the new vec2 to evaluate the child subtree at. Spatial ops
// never touch color — they're purely a coordinate rewrite consumed by the
// evaluator before it recurses into the child.
func (c *Context) emitSpatial(sp ir.Spatial, uv uint32) uint32 {
	switch sp.Kind {
	case ir.Scale:
		return c.spatialScale(sp.Args, uv)
	case ir.Rotate:
		return c.spatialRotate(sp.Args, uv)
	case ir.Kaleid:
		return c.spatialKaleid(sp.Args, uv)
	case ir.Scroll:
		return c.spatialScroll(sp.Args, uv)
	case ir.ScrollX:
		return c.spatialScrollAxis(sp.Args, uv, 0)
	case ir.ScrollY:
		return c.spatialScrollAxis(sp.Args, uv, 1)
	case ir.Repeat:
		return c.spatialRepeat(sp.Args, uv)
	case ir.RepeatX:
		return c.spatialRepeatAxis(sp.Args, uv, 0)
	case ir.RepeatY:
		return c.spatialRepeatAxis(sp.Args, uv, 1)
	case ir.Pixelate:
		return c.spatialPixelate(sp.Args, uv)
	default:
		return uv
	}
}

func (c *Context) centered(uv uint32) (x, y uint32) {
	x = c.sub(c.Extract(uv, 0), c.Const(0.5))
	y = c.sub(c.Extract(uv, 1), c.Const(0.5))
	return
}

// spatialScale implements scale(sx, sy=sx): divides the centered
// coordinate by (sx,sy), each floored at a small epsilon so a zero or
// negative scale argument can't divide by zero.
func (c *Context) spatialScale(args []float32, uv uint32) uint32 {
	sx := c.arg(args, 0, 1.5)
	sy := c.argOr(args, 1, sx)
	eps := c.Const(1e-5)
	sxSafe := c.fmax(sx, eps)
	sySafe := c.fmax(sy, eps)

	x, y := c.centered(uv)
	nx := c.add(c.div(x, sxSafe), c.Const(0.5))
	ny := c.add(c.div(y, sySafe), c.Const(0.5))
	return c.Vec2(nx, ny)
}

// spatialRotate implements rotate(angle, speed=0): theta = angle +
// time*speed, rotated about the coordinate's center.
func (c *Context) spatialRotate(args []float32, uv uint32) uint32 {
	angle := c.arg(args, 0, 10)
	speed := c.arg(args, 1, 0)
	theta := c.add(angle, c.mul(c.LoadTime(), speed))
	s := c.sin(theta)
	cosT := c.cos(theta)

	x, y := c.centered(uv)
	rx := c.sub(c.mul(x, cosT), c.mul(y, s))
	ry := c.add(c.mul(x, s), c.mul(y, cosT))
	return c.Vec2(c.add(rx, c.Const(0.5)), c.add(ry, c.Const(0.5)))
}

// spatialKaleid implements kaleid(sides): converts the centered coordinate
// to polar form, folds theta into a single wedge of width 2*pi/sides,
// mirrors it about the wedge's midline, and converts back to Cartesian.
// Sides is clamped to at least 1.
func (c *Context) spatialKaleid(args []float32, uv uint32) uint32 {
	sides := c.fmax(c.arg(args, 0, 4), c.Const(1))
	x, y := c.centered(uv)
	r := c.length2(c.Vec2(x, y))
	theta := c.atan2(y, x)

	tau := c.Const(6.28318530718)
	sector := c.div(tau, sides)
	folded := c.modf(theta, sector)
	half := c.div(sector, c.Const(2))
	mirrored := c.abs(c.sub(folded, half))

	nx := c.mul(r, c.cos(mirrored))
	ny := c.mul(r, c.sin(mirrored))
	return c.Vec2(c.add(nx, c.Const(0.5)), c.add(ny, c.Const(0.5)))
}

// spatialScroll implements scroll(ax=0.5, ay=0.5, sx=0, sy=0): adds a
// constant offset plus a time-driven drift to each axis, wrapping with
// fract so the sampled coordinate stays periodic.
func (c *Context) spatialScroll(args []float32, uv uint32) uint32 {
	ax := c.arg(args, 0, 0.5)
	ay := c.arg(args, 1, 0.5)
	sx := c.arg(args, 2, 0)
	sy := c.arg(args, 3, 0)
	t := c.LoadTime()

	x := c.fract(c.add(c.Extract(uv, 0), c.add(ax, c.mul(t, sx))))
	y := c.fract(c.add(c.Extract(uv, 1), c.add(ay, c.mul(t, sy))))
	return c.Vec2(x, y)
}

// spatialScrollAxis implements scrollX(ax=0.5, sx=0) / scrollY(ay=0.5,
// sy=0): scroll restricted to a single axis, leaving the other untouched.
func (c *Context) spatialScrollAxis(args []float32, uv uint32, axis int) uint32 {
	offsetArg := c.arg(args, 0, 0.5)
	speed := c.arg(args, 1, 0)
	offset := c.add(offsetArg, c.mul(c.LoadTime(), speed))

	x := c.Extract(uv, 0)
	y := c.Extract(uv, 1)
	if axis == 0 {
		x = c.fract(c.add(x, offset))
	} else {
		y = c.fract(c.add(y, offset))
	}
	return c.Vec2(x, y)
}

// spatialRepeat implements repeat(rx=3, ry=rx): tiles the unit square by
// scaling each axis and wrapping with fract.
func (c *Context) spatialRepeat(args []float32, uv uint32) uint32 {
	rx := c.arg(args, 0, 3)
	ry := c.argOr(args, 1, rx)
	x := c.fract(c.mul(c.Extract(uv, 0), rx))
	y := c.fract(c.mul(c.Extract(uv, 1), ry))
	return c.Vec2(x, y)
}

// spatialRepeatAxis implements repeatX(rx=3) / repeatY(ry=3): tiling
// restricted to one axis, defaulting the other axis's factor to 1 (a
// no-op on an already-normalized coordinate).
func (c *Context) spatialRepeatAxis(args []float32, uv uint32, axis int) uint32 {
	amount := c.arg(args, 0, 3)
	x := c.Extract(uv, 0)
	y := c.Extract(uv, 1)
	if axis == 0 {
		x = c.fract(c.mul(x, amount))
	} else {
		y = c.fract(c.mul(y, amount))
	}
	return c.Vec2(x, y)
}

// spatialPixelate implements pixelate(sx=20, sy=sx): snaps each axis onto
// a coarse grid, sampling each cell's center — floor(x*sx)/sx + 0.5/sx —
// so the child is evaluated once per visible block.
func (c *Context) spatialPixelate(args []float32, uv uint32) uint32 {
	sx := c.arg(args, 0, 20)
	sy := c.argOr(args, 1, sx)

	x := c.Extract(uv, 0)
	y := c.Extract(uv, 1)
	px := c.add(c.div(c.floor(c.mul(x, sx)), sx), c.div(c.Const(0.5), sx))
	py := c.add(c.div(c.floor(c.mul(y, sy)), sy), c.div(c.Const(0.5), sy))
	return c.Vec2(px, py)
}
