package luabridge

import "testing"

func TestCompileSingleChain(t *testing.T) {
	exprs, err := Compile(`return osc(60, 0.1, 0):rotate(0.5):out(0)`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(exprs))
	}
	root := exprs[0]
	if root.Op != "out" {
		t.Fatalf("root op = %q, want out", root.Op)
	}
	if root.Receiver == nil || root.Receiver.Op != "rotate" {
		t.Fatalf("receiver = %+v, want rotate", root.Receiver)
	}
}

func TestCompileMultiStatement(t *testing.T) {
	exprs, err := Compile(`
		a = solid(1, 0, 0, 1):out(0)
		b = osc(30):modulate(src(0), 0.2):out(1)
		return a, b
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(exprs) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(exprs))
	}
	if exprs[1].Receiver.Op != "modulate" {
		t.Fatalf("second statement receiver = %q, want modulate", exprs[1].Receiver.Op)
	}
}

func TestCompileRejectsNoReturn(t *testing.T) {
	_, err := Compile(`local x = osc(60)`)
	if err == nil {
		t.Fatal("expected error for script with no return value")
	}
}

func TestCompileNestedCallArgument(t *testing.T) {
	exprs, err := Compile(`return osc(10):blend(noise(4, 1), 0.3):out(0)`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	blend := exprs[0].Receiver
	if blend.Op != "blend" {
		t.Fatalf("op = %q, want blend", blend.Op)
	}
	if len(blend.Args) != 2 {
		t.Fatalf("blend args = %d, want 2 (call, amount)", len(blend.Args))
	}
}
