package ast

import (
	"reflect"
	"testing"
)

func TestThenChaining(t *testing.T) {
	e := Source("osc", Numbers(60, 0.1, 0)...).
		Then("rotate", Number(0.5)).
		Then("out", Number(0))

	if e.Op != "out" {
		t.Fatalf("root op = %q, want out", e.Op)
	}
	if e.Receiver == nil || e.Receiver.Op != "rotate" {
		t.Fatalf("expected rotate receiver, got %+v", e.Receiver)
	}
	if e.Receiver.Receiver == nil || e.Receiver.Receiver.Op != "osc" {
		t.Fatalf("expected osc at chain root, got %+v", e.Receiver.Receiver)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := Source("osc", Numbers(30, 0.1, 0)...).
		Then("modulate", Call{Expr: Source("noise", Number(3))}, Number(0.5)).
		Then("out", Number(0))

	data, err := EncodeJSON(orig)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if !reflect.DeepEqual(orig, decoded) {
		t.Fatalf("round trip mismatch:\norig=%#v\ndecoded=%#v", orig, decoded)
	}
}

func TestDecodeJSONSkipsNonLiteralArgs(t *testing.T) {
	data := []byte(`{"op":"osc","args":[60,"not-a-number",0.1]}`)
	e, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if len(e.Args) != 2 {
		t.Fatalf("expected 2 surviving numeric args, got %d: %+v", len(e.Args), e.Args)
	}
	if e.Args[0].(Number) != 60 || e.Args[1].(Number) != 0.1 {
		t.Fatalf("unexpected surviving args: %+v", e.Args)
	}
}
