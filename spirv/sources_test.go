package spirv

import (
	"testing"

	"github.com/gogpu/hydraspv/ir"
)

func TestEmitOscProducesVec4(t *testing.T) {
	ctx := NewContext(Version1_3)
	uv := ctx.Vec2(ctx.Const(0.5), ctx.Const(0.5))
	color := ctx.emitSource(ir.Source{Kind: ir.Osc, Args: []float32{60, 0.1, 0}}, uv)
	if color == 0 {
		t.Fatal("emitSource(Osc) returned invalid id")
	}
}

func TestEmitSolidDefaultsOpaqueBlack(t *testing.T) {
	ctx := NewContext(Version1_3)
	// solid() with no args is opaque black: r=g=b=0, a=1. Const caches by
	// value, so on a fresh context the float constant pool gains exactly
	// two entries: 0 (shared by r, g and b) and 1 (alpha).
	before := len(ctx.floatConsts)
	color := ctx.emitSolid(nil)
	if color == 0 {
		t.Fatal("solid default color invalid")
	}
	if _, ok := ctx.floatConsts[1]; !ok {
		t.Fatal("solid() default alpha should be Const(1)")
	}
	if _, ok := ctx.floatConsts[0]; !ok {
		t.Fatal("solid() default rgb should be Const(0)")
	}
	if got := len(ctx.floatConsts); got != before+2 {
		t.Fatalf("expected exactly 2 new float constants (0 and 1), got %d new", got-before)
	}
}

func TestEmitSrcFallsBackWhenBufferEmpty(t *testing.T) {
	ctx := NewContext(Version1_3)
	color := ctx.emitSrc([]float32{3})
	fallback := ctx.emitSolid(nil)
	// Both calls build fresh instructions (no caching for composite
	// construction), but both must succeed and produce a valid id.
	if color == 0 || fallback == 0 {
		t.Fatal("expected valid fallback ids")
	}
}

func TestEmitSrcReadsStoredBuffer(t *testing.T) {
	ctx := NewContext(Version1_3)
	stored := ctx.Vec4(ctx.Const(1), ctx.Const(0), ctx.Const(0), ctx.Const(1))
	ctx.StoreBuffer(2, stored)
	got := ctx.emitSrc([]float32{2})
	if got != stored {
		t.Fatalf("emitSrc(2) = %d, want stored buffer id %d", got, stored)
	}
}

func TestEmitUnknownSourceKindFallsBackToSolid(t *testing.T) {
	ctx := NewContext(Version1_3)
	color := ctx.emitSource(ir.Source{Kind: ir.SourceKind(99)}, ctx.Vec2(ctx.Const(0), ctx.Const(0)))
	if color == 0 {
		t.Fatal("expected a valid fallback id for an unknown source kind")
	}
}
