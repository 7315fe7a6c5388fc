package spirv

import (
	"testing"

	"github.com/gogpu/hydraspv/ir"
)

func TestSpatialScaleIdentityStillProducesCoord(t *testing.T) {
	ctx := NewContext(Version1_3)
	uv := ctx.Vec2(ctx.Const(0.2), ctx.Const(0.8))
	out := ctx.emitSpatial(ir.Spatial{Kind: ir.Scale, Args: []float32{1}}, uv)
	if out == 0 {
		t.Fatal("emitSpatial(Scale) returned invalid id")
	}
}

func TestSpatialRotateZeroAngle(t *testing.T) {
	ctx := NewContext(Version1_3)
	uv := ctx.Vec2(ctx.Const(0.3), ctx.Const(0.7))
	out := ctx.emitSpatial(ir.Spatial{Kind: ir.Rotate, Args: []float32{0}}, uv)
	if out == 0 {
		t.Fatal("emitSpatial(Rotate) returned invalid id")
	}
}

func TestSpatialAllKindsHandled(t *testing.T) {
	ctx := NewContext(Version1_3)
	uv := ctx.Vec2(ctx.Const(0.4), ctx.Const(0.6))
	kinds := []ir.SpatialKind{
		ir.Scale, ir.Rotate, ir.Kaleid, ir.Scroll, ir.ScrollX, ir.ScrollY,
		ir.Repeat, ir.RepeatX, ir.RepeatY, ir.Pixelate,
	}
	for _, k := range kinds {
		out := ctx.emitSpatial(ir.Spatial{Kind: k}, uv)
		if out == 0 {
			t.Fatalf("emitSpatial(%v) returned invalid id", k)
		}
	}
}

func TestSpatialUnknownKindPassesCoordThrough(t *testing.T) {
	ctx := NewContext(Version1_3)
	uv := ctx.Vec2(ctx.Const(0.1), ctx.Const(0.9))
	out := ctx.emitSpatial(ir.Spatial{Kind: ir.SpatialKind(99)}, uv)
	if out != uv {
		t.Fatalf("unknown spatial kind should pass uv through unchanged, got %d want %d", out, uv)
	}
}
