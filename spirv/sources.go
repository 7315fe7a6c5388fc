package spirv

import "github.com/gogpu/hydraspv/ir"

// emitSource lowers an ir.Source node at the given uv coordinate (a vec2
// id) into a vec4 color id. This is component E of the specification: the
// source library. uv is always the coordinate the evaluator has threaded
// down to this point in the tree — a source never reads ComputeUV itself,
// so that modulated re-evaluation (component G) can resample it under a
// transformed coordinate.
func (c *Context) emitSource(src ir.Source, uv uint32) uint32 {
	switch src.Kind {
	case ir.Osc:
		return c.emitOsc(src.Args, uv)
	case ir.Noise:
		return c.emitNoise(src.Args, uv)
	case ir.Solid:
		return c.emitSolid(src.Args)
	case ir.Gradient:
		return c.emitGradient(uv)
	case ir.Shape:
		return c.emitShape(src.Args, uv)
	case ir.Voronoi:
		return c.emitVoronoi(src.Args, uv)
	case ir.Src:
		return c.emitSrc(src.Args)
	default:
		return c.emitSolid(nil)
	}
}

func (c *Context) arg(args []float32, i int, fallback float32) uint32 {
	if i < len(args) {
		return c.Const(args[i])
	}
	return c.Const(fallback)
}

// argOr behaves like arg but falls back to an already-computed id rather
// than a literal, for parameters like scale(sx, sy=sx) whose default is
// another argument's value.
func (c *Context) argOr(args []float32, i int, fallback uint32) uint32 {
	if i < len(args) {
		return c.Const(args[i])
	}
	return fallback
}

// emitOsc implements osc(freq=60, sync=0.1, offset=0): for each channel
// c in {R,G,B} with per-channel offset multipliers (-2,0,1)/60, angle =
// (uv.x + time*sync + offset*mult)*freq, channel = sin(angle)*0.5+0.5.
func (c *Context) emitOsc(args []float32, uv uint32) uint32 {
	freq := c.arg(args, 0, 60)
	sync := c.arg(args, 1, 0.1)
	offset := c.arg(args, 2, 0)

	x := c.Extract(uv, 0)
	base := c.add(x, c.mul(c.LoadTime(), sync))
	half := c.Const(0.5)

	channel := func(mult float32) uint32 {
		angle := c.mul(c.add(base, c.mul(offset, c.Const(mult))), freq)
		return c.add(c.mul(c.sin(angle), half), half)
	}

	r := channel(-2.0 / 60.0)
	g := channel(0)
	b := channel(1.0 / 60.0)
	return c.Vec4(r, g, b, c.Const(1))
}

// emitNoise implements noise(freq=10, speed=0, octaves=1): up to 4 octaves
// of value noise masked by step(i+0.5, octaves), amplitudes 1, 0.5, 0.25,
// 0.125, normalized by the active amplitude sum.
func (c *Context) emitNoise(args []float32, uv uint32) uint32 {
	freq := c.arg(args, 0, 10)
	speed := c.arg(args, 1, 0)
	octaves := c.arg(args, 2, 1)

	t := c.mul(c.LoadTime(), speed)
	x0 := c.add(c.mul(c.Extract(uv, 0), freq), t)
	y0 := c.mul(c.Extract(uv, 1), freq)

	amplitudes := [4]float32{1, 0.5, 0.25, 0.125}
	sum := c.Const(0)
	weightSum := c.Const(0)
	for i, amp := range amplitudes {
		mask := c.step(c.Const(float32(i)+0.5), octaves)
		lacunarity := c.Const(float32(int(1) << uint(i)))
		val := c.valueNoise2D(c.mul(x0, lacunarity), c.mul(y0, lacunarity))
		weight := c.mul(c.Const(amp), mask)
		sum = c.add(sum, c.mul(val, weight))
		weightSum = c.add(weightSum, weight)
	}

	v := c.div(sum, c.fmax(weightSum, c.Const(1e-5)))
	return c.Vec4(v, v, v, c.Const(1))
}

// valueNoise2D bilinearly interpolates hashed lattice corners, smoothed
// with the standard t^2(3-2t) weighting.
func (c *Context) valueNoise2D(x, y uint32) uint32 {
	cellX := c.floor(x)
	cellY := c.floor(y)
	fx := c.sub(x, cellX)
	fy := c.sub(y, cellY)
	one := c.Const(1)

	h00 := c.hash21(cellX, cellY)
	h10 := c.hash21(c.add(cellX, one), cellY)
	h01 := c.hash21(cellX, c.add(cellY, one))
	h11 := c.hash21(c.add(cellX, one), c.add(cellY, one))

	ux := c.smoothstep(c.Const(0), c.Const(1), fx)
	uy := c.smoothstep(c.Const(0), c.Const(1), fy)

	top := c.mix(h00, h10, ux)
	bottom := c.mix(h01, h11, ux)
	return c.mix(top, bottom, uy)
}

// hash21 computes a pseudo-random scalar in [0,1) from an (x,y) pair:
// fract(sin(dot((x*127.1, y*311.7)))*43758.5453), matching
// original_source/src/backend/hydra_sources.rs.
func (c *Context) hash21(x, y uint32) uint32 {
	dot := c.add(c.mul(x, c.Const(127.1)), c.mul(y, c.Const(311.7)))
	return c.fract(c.mul(c.sin(dot), c.Const(43758.5453)))
}

// emitSolid implements solid(r=0,g=0,b=0,a=1): a flat color ignoring the
// coordinate entirely.
func (c *Context) emitSolid(args []float32) uint32 {
	r := c.arg(args, 0, 0)
	g := c.arg(args, 1, 0)
	b := c.arg(args, 2, 0)
	a := c.arg(args, 3, 1)
	return c.Vec4(r, g, b, a)
}

// emitGradient implements gradient(): vec4(uv.x, uv.y, sin(time), 1).
func (c *Context) emitGradient(uv uint32) uint32 {
	x := c.Extract(uv, 0)
	y := c.Extract(uv, 1)
	return c.Vec4(x, y, c.sin(c.LoadTime()), c.Const(1))
}

// emitShape implements shape(sides=3, radius=0.5, smoothing=0.01): a
// regular polygon mask centered at (0.5,0.5), built from the angular
// distance to the polygon boundary and anti-aliased with smoothstep.
// Sides is clamped to at least 3.
func (c *Context) emitShape(args []float32, uv uint32) uint32 {
	sides := c.fmax(c.arg(args, 0, 3), c.Const(3))
	radius := c.arg(args, 1, 0.5)
	smoothing := c.arg(args, 2, 0.01)

	half := c.Const(0.5)
	x := c.sub(c.Extract(uv, 0), half)
	y := c.sub(c.Extract(uv, 1), half)
	r := c.length2(c.Vec2(x, y))
	theta := c.atan2(y, x)

	pi := c.Const(3.14159265)
	two := c.Const(2)
	sector := c.div(c.mul(two, pi), sides)
	folded := c.modf(theta, sector)
	centered := c.sub(folded, c.div(sector, two))

	boundary := c.div(c.mul(radius, c.cos(c.div(pi, sides))), c.fmax(c.abs(c.cos(centered)), c.Const(1e-4)))
	mask := c.smoothstep(c.Const(0), smoothing, c.sub(boundary, r))
	return c.Vec4(mask, mask, mask, mask)
}

// emitVoronoi implements voronoi(freq=5, jitter=0.8): cell shading from
// the nearest of a 3x3 jittered-grid neighborhood.
func (c *Context) emitVoronoi(args []float32, uv uint32) uint32 {
	freq := c.arg(args, 0, 5)
	jitter := c.arg(args, 1, 0.8)
	half := c.Const(0.5)

	x := c.mul(c.Extract(uv, 0), freq)
	y := c.mul(c.Extract(uv, 1), freq)
	cellX := c.floor(x)
	cellY := c.floor(y)
	fracX := c.sub(x, cellX)
	fracY := c.sub(y, cellY)

	minDist2 := c.Const(8)
	for oy := float32(-1); oy <= 1; oy++ {
		for ox := float32(-1); ox <= 1; ox++ {
			neighborX := c.add(cellX, c.Const(ox))
			neighborY := c.add(cellY, c.Const(oy))
			h1 := c.hash21(neighborX, neighborY)
			h2 := c.hash21(neighborY, neighborX)
			pointX := c.add(c.Const(ox), c.mul(jitter, c.sub(h1, half)))
			pointY := c.add(c.Const(oy), c.mul(jitter, c.sub(h2, half)))
			dx := c.sub(pointX, fracX)
			dy := c.sub(pointY, fracY)
			d2 := c.add(c.mul(dx, dx), c.mul(dy, dy))
			minDist2 = c.fmin(minDist2, d2)
		}
	}
	v := c.sub(c.Const(1), c.sqrt(minDist2))
	return c.Vec4(v, v, v, c.Const(1))
}

// emitSrc implements src(i=0): reads a previously stored out(i) buffer,
// falling back to solid() (opaque black, alpha 1) when the buffer
// hasn't been populated yet in this compile.
func (c *Context) emitSrc(args []float32) uint32 {
	index := uint32(0)
	if len(args) > 0 {
		index = uint32(args[0])
	}
	if color, ok := c.LoadBuffer(index); ok {
		return color
	}
	return c.emitSolid(nil)
}
