package spirv

import "testing"

func TestConstCaching(t *testing.T) {
	ctx := NewContext(Version1_3)
	a := ctx.Const(0.5)
	b := ctx.Const(0.5)
	if a != b {
		t.Fatalf("Const(0.5) returned different ids: %d, %d", a, b)
	}
	c := ctx.Const(0.25)
	if c == a {
		t.Fatal("distinct float values must get distinct ids")
	}
}

func TestConstUCaching(t *testing.T) {
	ctx := NewContext(Version1_3)
	a := ctx.ConstU(3)
	b := ctx.ConstU(3)
	if a != b {
		t.Fatalf("ConstU(3) returned different ids: %d, %d", a, b)
	}
}

func TestClamp01EmitsInstructions(t *testing.T) {
	ctx := NewContext(Version1_3)
	before := len(ctx.b.functions)
	x := ctx.Const(2)
	_ = ctx.clamp01(x)
	// clamp01 emits into whichever instruction stream is active; here it's
	// the builder's shared functions slice since no function body has been
	// opened. Assert that it appended its FMax/FMin instructions there.
	if len(ctx.b.functions) <= before {
		t.Fatal("clamp01 should emit instructions")
	}
}

func TestMixIdentity(t *testing.T) {
	ctx := NewContext(Version1_3)
	a := ctx.Const(1)
	b := ctx.Const(2)
	t0 := ctx.Const(0)
	// mix(a, b, 0) should be built from a, not fail to compile the graph.
	result := ctx.mix(a, b, t0)
	if result == 0 {
		t.Fatal("mix returned invalid id")
	}
}

func TestLumaWeights(t *testing.T) {
	ctx := NewContext(Version1_3)
	color := ctx.Vec4(ctx.Const(1), ctx.Const(1), ctx.Const(1), ctx.Const(1))
	result := ctx.luma(color)
	if result == 0 {
		t.Fatal("luma returned invalid id")
	}
}

func TestApplyRGBPreservesAlpha(t *testing.T) {
	ctx := NewContext(Version1_3)
	color := ctx.Vec4(ctx.Const(0.1), ctx.Const(0.2), ctx.Const(0.3), ctx.Const(0.9))
	result := ctx.applyRGB(color, func(x uint32) uint32 { return ctx.abs(x) })
	if result == 0 {
		t.Fatal("applyRGB returned invalid id")
	}
}
