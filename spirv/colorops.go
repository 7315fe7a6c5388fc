package spirv

import "github.com/gogpu/hydraspv/ir"

// emitUnaryColor applies a single-input color transform (component F) to
// an already-evaluated color id and returns the transformed color id.
func (c *Context) emitUnaryColor(u ir.UnaryColor, color uint32) uint32 {
	switch u.Kind {
	case ir.Invert:
		return c.colorInvert(u.Args, color)
	case ir.Color:
		return c.colorColor(u.Args, color)
	case ir.Brightness:
		return c.colorBrightness(u.Args, color)
	case ir.Contrast:
		return c.colorContrast(u.Args, color)
	case ir.Saturate:
		return c.colorSaturate(u.Args, color)
	case ir.Posterize:
		return c.colorPosterize(u.Args, color)
	case ir.Thresh:
		return c.colorThresh(u.Args, color)
	case ir.Hue:
		return c.colorHue(u.Args, color)
	case ir.Colorama:
		return c.colorColorama(u.Args, color)
	case ir.Luma:
		return c.colorLumaOp(color)
	case ir.Shift:
		return c.colorShift(u.Args, color)
	default:
		return color
	}
}

// colorInvert implements invert(amount=1): mix(ch, 1-ch, amount) on RGB.
func (c *Context) colorInvert(args []float32, color uint32) uint32 {
	amount := c.arg(args, 0, 1)
	return c.applyRGB(color, func(x uint32) uint32 {
		return c.mix(x, c.sub(c.Const(1), x), amount)
	})
}

// colorColor implements color(r=1,g=1,b=1,a=1): a per-channel multiply,
// alpha included.
func (c *Context) colorColor(args []float32, color uint32) uint32 {
	r := c.arg(args, 0, 1)
	g := c.arg(args, 1, 1)
	b := c.arg(args, 2, 1)
	a := c.arg(args, 3, 1)
	cr := c.mul(c.Extract(color, 0), r)
	cg := c.mul(c.Extract(color, 1), g)
	cb := c.mul(c.Extract(color, 2), b)
	ca := c.mul(c.Extract(color, 3), a)
	return c.Vec4(cr, cg, cb, ca)
}

// colorBrightness implements brightness(amount=1): RGB*amount.
func (c *Context) colorBrightness(args []float32, color uint32) uint32 {
	amount := c.arg(args, 0, 1)
	return c.applyRGB(color, func(x uint32) uint32 { return c.mul(x, amount) })
}

// colorContrast implements contrast(amount=1): (ch-0.5)*amount+0.5 on RGB.
func (c *Context) colorContrast(args []float32, color uint32) uint32 {
	amount := c.arg(args, 0, 1)
	half := c.Const(0.5)
	return c.applyRGB(color, func(x uint32) uint32 {
		return c.add(c.mul(c.sub(x, half), amount), half)
	})
}

// colorSaturate implements saturate(amount=1): mix(luma, ch, amount) on
// RGB.
func (c *Context) colorSaturate(args []float32, color uint32) uint32 {
	amount := c.arg(args, 0, 1)
	gray := c.luma(color)
	return c.applyRGB(color, func(x uint32) uint32 {
		return c.mix(gray, x, amount)
	})
}

// colorPosterize implements posterize(levels=4, gamma=0.6): lifts each
// channel by 1/gamma, quantizes to levels steps, then reapplies gamma.
func (c *Context) colorPosterize(args []float32, color uint32) uint32 {
	levels := c.arg(args, 0, 4)
	gamma := c.arg(args, 1, 0.6)
	invGamma := c.div(c.Const(1), gamma)
	return c.applyRGB(color, func(x uint32) uint32 {
		lifted := c.safePow(x, invGamma)
		quantized := c.quantize(lifted, levels)
		return c.safePow(quantized, gamma)
	})
}

// colorThresh implements thresh(t=0.5, a=1): mix(ch, step(t,ch), a) on
// each RGB channel independently.
func (c *Context) colorThresh(args []float32, color uint32) uint32 {
	threshold := c.arg(args, 0, 0.5)
	amount := c.arg(args, 1, 1)
	return c.applyRGB(color, func(x uint32) uint32 {
		stepped := c.step(threshold, x)
		return c.mix(x, stepped, amount)
	})
}

// hueRotate implements the YIQ hue rotation shared by hue() and
// colorama(): convert RGB to YIQ, rotate the chroma plane (I,Q) by theta,
// convert back to RGB using the canonical NTSC matrices.
func (c *Context) hueRotate(theta, color uint32) uint32 {
	r := c.Extract(color, 0)
	g := c.Extract(color, 1)
	b := c.Extract(color, 2)

	y := c.add(c.add(c.mul(r, c.Const(0.299)), c.mul(g, c.Const(0.587))), c.mul(b, c.Const(0.114)))
	i := c.sub(c.sub(c.mul(r, c.Const(0.596)), c.mul(g, c.Const(0.274))), c.mul(b, c.Const(0.322)))
	q := c.add(c.sub(c.mul(r, c.Const(0.211)), c.mul(g, c.Const(0.523))), c.mul(b, c.Const(0.312)))

	cosT := c.cos(theta)
	sinT := c.sin(theta)
	iRot := c.sub(c.mul(i, cosT), c.mul(q, sinT))
	qRot := c.add(c.mul(i, sinT), c.mul(q, cosT))

	nr := c.add(c.add(y, c.mul(iRot, c.Const(0.956))), c.mul(qRot, c.Const(0.621)))
	ng := c.sub(c.sub(y, c.mul(iRot, c.Const(0.272))), c.mul(qRot, c.Const(0.647)))
	nb := c.add(c.sub(y, c.mul(iRot, c.Const(1.106))), c.mul(qRot, c.Const(1.703)))

	return c.Vec4(nr, ng, nb, c.Extract(color, 3))
}

// colorHue implements hue(theta): a YIQ hue rotation by a fixed angle.
func (c *Context) colorHue(args []float32, color uint32) uint32 {
	theta := c.arg(args, 0, 0.4)
	return c.hueRotate(theta, color)
}

// colorColorama implements colorama(speed=0.005): a YIQ hue rotation by
// time*speed, continuously cycling color over the shader's lifetime.
func (c *Context) colorColorama(args []float32, color uint32) uint32 {
	speed := c.arg(args, 0, 0.005)
	theta := c.mul(c.LoadTime(), speed)
	return c.hueRotate(theta, color)
}

// colorLumaOp implements luma(): replaces color with its own luma value,
// replicated across RGB, alpha unchanged.
func (c *Context) colorLumaOp(color uint32) uint32 {
	v := c.luma(color)
	return c.Vec4(v, v, v, c.Extract(color, 3))
}

// colorShift implements shift(dr=0,dg=0,db=0,da=0): adds a per-channel
// offset and clamps to [0,1].
func (c *Context) colorShift(args []float32, color uint32) uint32 {
	dr := c.arg(args, 0, 0)
	dg := c.arg(args, 1, 0)
	db := c.arg(args, 2, 0)
	da := c.arg(args, 3, 0)
	nr := c.clamp01(c.add(c.Extract(color, 0), dr))
	ng := c.clamp01(c.add(c.Extract(color, 1), dg))
	nb := c.clamp01(c.add(c.Extract(color, 2), db))
	na := c.clamp01(c.add(c.Extract(color, 3), da))
	return c.Vec4(nr, ng, nb, na)
}

// emitBinary combines two already-evaluated colors (component F). Modulate
// and ModulateScale are coordinate transforms, not color combinators, and
// are handled entirely by the evaluator (component G) before it reaches
// here — Binary.Modulating() tells the evaluator to re-sample the left
// subtree at a transformed coordinate instead of calling this function.
func (c *Context) emitBinary(bin ir.Binary, left, right uint32) uint32 {
	switch bin.Kind {
	case ir.Add:
		return c.binaryAdd(bin.Args, left, right)
	case ir.Sub:
		return c.binarySub(bin.Args, left, right)
	case ir.Mult:
		return c.binaryMult(bin.Args, left, right)
	case ir.Blend:
		return c.binaryBlend(bin.Args, left, right)
	case ir.Diff:
		return c.binaryDiff(left, right)
	case ir.Layer:
		return c.binaryLayer(left, right)
	case ir.Mask:
		return c.binaryMask(left, right)
	default:
		return left
	}
}

// blendChannels computes mix(l, op(l,r), amount) independently for each of
// the four channels — the shared shape behind add/sub/mult.
func (c *Context) blendChannels(left, right, amount uint32, op func(a, b uint32) uint32) uint32 {
	var channels [4]uint32
	for idx := uint32(0); idx < 4; idx++ {
		l := c.Extract(left, idx)
		r := c.Extract(right, idx)
		channels[idx] = c.mix(l, op(l, r), amount)
	}
	return c.Vec4(channels[0], channels[1], channels[2], channels[3])
}

// binaryAdd implements add(amount=1): mix(left, left+right, amount).
func (c *Context) binaryAdd(args []float32, left, right uint32) uint32 {
	amount := c.arg(args, 0, 1)
	return c.blendChannels(left, right, amount, c.add)
}

// binarySub implements sub(amount=1): mix(left, left-right, amount).
func (c *Context) binarySub(args []float32, left, right uint32) uint32 {
	amount := c.arg(args, 0, 1)
	return c.blendChannels(left, right, amount, c.sub)
}

// binaryMult implements mult(amount=1): mix(left, left*right, amount).
func (c *Context) binaryMult(args []float32, left, right uint32) uint32 {
	amount := c.arg(args, 0, 1)
	return c.blendChannels(left, right, amount, c.mul)
}

// binaryBlend implements blend(amount=1): lerps each channel (including
// alpha) between left and right. A missing amount defaults to 1, so a
// bare blend() returns the right operand unchanged.
func (c *Context) binaryBlend(args []float32, left, right uint32) uint32 {
	amount := c.arg(args, 0, 1)
	return c.Vec4(
		c.mix(c.Extract(left, 0), c.Extract(right, 0), amount),
		c.mix(c.Extract(left, 1), c.Extract(right, 1), amount),
		c.mix(c.Extract(left, 2), c.Extract(right, 2), amount),
		c.mix(c.Extract(left, 3), c.Extract(right, 3), amount),
	)
}

// binaryDiff implements diff(): |left-right| per RGB channel, computed as
// sqrt((l-r)^2). Alpha is forced to 1 rather than |left.a-right.a| — a
// deliberate deviation from the literal "per channel" wording, kept so a
// diff result is always fully opaque per invariant (ii) (every emitted
// color must carry a usable alpha for the compositing stages downstream).
func (c *Context) binaryDiff(left, right uint32) uint32 {
	return c.Vec4(
		c.diffChannel(left, right, 0),
		c.diffChannel(left, right, 1),
		c.diffChannel(left, right, 2),
		c.Const(1),
	)
}

func (c *Context) diffChannel(left, right uint32, idx uint32) uint32 {
	d := c.sub(c.Extract(left, idx), c.Extract(right, idx))
	return c.sqrt(c.mul(d, d))
}

// binaryLayer implements layer(): a premultiplied-alpha over of right onto
// left, using right's own alpha channel for both the RGB and alpha terms —
// right.rgb + left.rgb*(1-right.a), outA = right.a + left.a*(1-right.a).
func (c *Context) binaryLayer(left, right uint32) uint32 {
	alpha := c.Extract(right, 3)
	oneMinusAlpha := c.sub(c.Const(1), alpha)
	outAlpha := c.add(alpha, c.mul(c.Extract(left, 3), oneMinusAlpha))
	over := func(idx uint32) uint32 {
		return c.add(c.Extract(right, idx), c.mul(c.Extract(left, idx), oneMinusAlpha))
	}
	return c.Vec4(over(0), over(1), over(2), outAlpha)
}

// binaryMask implements mask(): multiplies left's RGB and alpha by
// right's luma.
func (c *Context) binaryMask(left, right uint32) uint32 {
	m := c.luma(right)
	return c.Vec4(
		c.mul(c.Extract(left, 0), m),
		c.mul(c.Extract(left, 1), m),
		c.mul(c.Extract(left, 2), m),
		c.mul(c.Extract(left, 3), m),
	)
}
