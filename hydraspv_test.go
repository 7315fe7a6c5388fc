package hydraspv

import (
	"encoding/binary"
	"testing"

	"github.com/gogpu/hydraspv/ast"
)

func TestCompileSimpleChainProducesValidModule(t *testing.T) {
	expr := ast.Source("osc", ast.Numbers(60, 0.1, 0)...).
		Then("rotate", ast.Number(0.5)).
		Then("out", ast.Number(0))

	bin, err := Compile(expr)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(bin) < 20 {
		t.Fatalf("module too short: %d bytes", len(bin))
	}
	magic := binary.LittleEndian.Uint32(bin[0:4])
	if magic != 0x07230203 {
		t.Fatalf("magic number = 0x%08x", magic)
	}
}

func TestEmitPipelineRejectsEmptyInput(t *testing.T) {
	_, err := EmitPipeline(nil, DefaultOptions())
	if err != ErrEmptyPipeline {
		t.Fatalf("err = %v, want ErrEmptyPipeline", err)
	}
}

func TestEmitPipelineMultiStatementSharesBuffers(t *testing.T) {
	first := ast.Source("solid", ast.Numbers(1, 0, 0, 1)...).Then("out", ast.Number(0))
	second := ast.Source("osc").
		Then("modulate", ast.Call{Expr: ast.Source("src", ast.Number(0))}, ast.Number(0.2)).
		Then("out", ast.Number(1))

	bin, err := EmitPipeline([]*ast.Expr{first, second}, DefaultOptions())
	if err != nil {
		t.Fatalf("EmitPipeline: %v", err)
	}
	if len(bin) == 0 {
		t.Fatal("expected a non-empty module")
	}
}

func TestCompileWithOptionsUsesRequestedVersion(t *testing.T) {
	expr := ast.Source("solid")
	opts := DefaultOptions()
	opts.SPIRVVersion.Minor = 5

	bin, err := CompileWithOptions(expr, opts)
	if err != nil {
		t.Fatalf("CompileWithOptions: %v", err)
	}
	versionWord := binary.LittleEndian.Uint32(bin[4:8])
	if versionWord != uint32(1)<<16|uint32(5)<<8 {
		t.Fatalf("version word = 0x%08x, want SPIR-V 1.5", versionWord)
	}
}

func TestEmitPipelineRejectsNilStatement(t *testing.T) {
	_, err := EmitPipeline([]*ast.Expr{nil}, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a nil statement")
	}
}

func TestEmitPipelineDebugNamesProduceLargerModule(t *testing.T) {
	expr := ast.Source("solid")
	opts := DefaultOptions()
	plain, err := CompileWithOptions(expr, opts)
	if err != nil {
		t.Fatalf("Compile (plain): %v", err)
	}
	opts.Debug = true
	withNames, err := CompileWithOptions(expr, opts)
	if err != nil {
		t.Fatalf("Compile (debug): %v", err)
	}
	if len(withNames) <= len(plain) {
		t.Fatalf("expected debug names to grow the module: plain=%d debug=%d", len(plain), len(withNames))
	}
}

func TestEmitPipelineValidateOffSkipsSelfCheck(t *testing.T) {
	opts := DefaultOptions()
	opts.Validate = false
	expr := ast.Source("osc").Then("out")
	if _, err := CompileWithOptions(expr, opts); err != nil {
		t.Fatalf("CompileWithOptions with Validate=false: %v", err)
	}
}
