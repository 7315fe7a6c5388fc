package spirv

import (
	"encoding/binary"
	"testing"

	"github.com/gogpu/hydraspv/ir"
)

func TestAssembleModuleMagicNumber(t *testing.T) {
	ctx := NewContext(Version1_3)
	g := buildGraph(ir.Source{Kind: ir.Solid, Args: []float32{0, 0, 0, 1}})
	bin := AssembleModule(ctx, g, []ir.NodeID{0})

	if len(bin) < 20 {
		t.Fatalf("module too short: %d bytes", len(bin))
	}
	magic := binary.LittleEndian.Uint32(bin[0:4])
	if magic != MagicNumber {
		t.Fatalf("magic number = 0x%08x, want 0x%08x", magic, MagicNumber)
	}
}

func TestAssembleModuleWordAligned(t *testing.T) {
	ctx := NewContext(Version1_3)
	g := buildGraph(ir.Source{Kind: ir.Osc})
	bin := AssembleModule(ctx, g, []ir.NodeID{0})
	if len(bin)%4 != 0 {
		t.Fatalf("module length %d is not a multiple of 4", len(bin))
	}
}

func TestAssembleModuleSingleEntryPoint(t *testing.T) {
	ctx := NewContext(Version1_3)
	g := buildGraph(ir.Source{Kind: ir.Solid})
	AssembleModule(ctx, g, []ir.NodeID{0})

	if len(ctx.b.entryPoints) != 1 {
		t.Fatalf("entry point count = %d, want 1", len(ctx.b.entryPoints))
	}
}

func TestAssembleModuleMultipleStatementsShareBuffers(t *testing.T) {
	ctx := NewContext(Version1_3)
	g := buildGraph(
		ir.Source{Kind: ir.Solid, Args: []float32{1, 0, 0, 1}}, // id 0
		ir.Output{Child: 0, Index: 0},                          // id 1: out(0)
		ir.Source{Kind: ir.Src, Args: []float32{0}},            // id 2: src(0)
		ir.Output{Child: 2, Index: 1},                          // id 3: out(1)
	)
	bin := AssembleModule(ctx, g, []ir.NodeID{1, 3})
	if len(bin) == 0 {
		t.Fatal("expected non-empty module")
	}
	if _, ok := ctx.LoadBuffer(0); !ok {
		t.Fatal("expected buffer 0 to have been populated by the first statement")
	}
}

func TestAutoExposureThenAcesProducesValidID(t *testing.T) {
	ctx := NewContext(Version1_3)
	color := ctx.Vec4(ctx.Const(2), ctx.Const(0.5), ctx.Const(0.1), ctx.Const(1))
	exposed := ctx.autoExposure(color)
	toned := ctx.applyRGB(exposed, ctx.acesFilmic)
	if toned == 0 {
		t.Fatal("tonemap pipeline returned invalid id")
	}
}

func TestClamp01Vec4ClampsAllFourChannels(t *testing.T) {
	ctx := NewContext(Version1_3)
	color := ctx.Vec4(ctx.Const(2), ctx.Const(-1), ctx.Const(0.5), ctx.Const(1.5))
	clamped := ctx.clamp01Vec4(color)
	if clamped == 0 {
		t.Fatal("clamp01Vec4 returned invalid id")
	}
}
