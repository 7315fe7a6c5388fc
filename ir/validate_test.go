package ir

import (
	"testing"

	"github.com/gogpu/hydraspv/ast"
)

func TestValidateAcceptsBuildOutput(t *testing.T) {
	expr := ast.Source("osc").Then("rotate", ast.Number(0.5)).Then("out", ast.Number(1))
	g, _, _ := Build(expr)
	if err := Validate(g); err != nil {
		t.Fatalf("Validate rejected well-formed graph: %v", err)
	}
}

func TestValidateRejectsForwardReference(t *testing.T) {
	g := &Graph{Nodes: []Node{
		{Kind: Spatial{Kind: Rotate, Child: 1}}, // id 0, points forward to id 1
		{Kind: Source{Kind: Osc}},                // id 1
	}}
	if err := Validate(g); err == nil {
		t.Fatal("expected Validate to reject a forward reference")
	}
}

func TestValidateRejectsOutOfRangeChild(t *testing.T) {
	g := &Graph{Nodes: []Node{
		{Kind: Output{Child: 5, Index: 0}},
	}}
	if err := Validate(g); err == nil {
		t.Fatal("expected Validate to reject an out-of-range child")
	}
}
