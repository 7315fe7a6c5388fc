// Package ast defines the opaque chain-expression AST that the surface-syntax
// parser (an external collaborator, out of scope for this module) hands to
// the IR builder.
//
// The grammar accepted is the restricted functional-chain subset described
// by the specification: a bare source call, `osc(60, 0.1, 0)`, or a
// member-call chain, `osc(60,0.1,0).rotate(0.5).out(0)`, where the receiver
// of a member call recursively matches the same grammar. Arguments are
// either numeric literals or, for the handful of binary operators that take
// a second chain as an operand, nested call expressions.
package ast

// Expr is one call node in a chain: either a bare source call (Receiver is
// nil) or a member call applied to Receiver.
type Expr struct {
	// Op is the method/function name, matched case-sensitively against the
	// operator tables in package ir.
	Op string

	// Receiver is the left-hand side of a member call (`Receiver.Op(Args)`).
	// Nil for a bare call (`Op(Args)`).
	Receiver *Expr

	// Args are the call's positional arguments, in source order.
	Args []Arg
}

// Arg is one positional call argument. It is either a Number or a Call (a
// nested chain expression, only meaningful as the first argument of a
// binary operator).
type Arg interface {
	argNode()
}

// Number is a numeric literal argument.
type Number float64

func (Number) argNode() {}

// Call wraps a nested chain expression used as an argument, e.g. the first
// argument to `modulate(noise(3), 0.5)`.
type Call struct {
	Expr *Expr
}

func (Call) argNode() {}

// Source constructs a bare (receiver-less) call.
func Source(op string, args ...Arg) *Expr {
	return &Expr{Op: op, Args: args}
}

// Then constructs a member call applying op to the receiver e, in the order
// the surface syntax chains them: `e.Then("rotate", Number(0.5))`.
func (e *Expr) Then(op string, args ...Arg) *Expr {
	return &Expr{Op: op, Receiver: e, Args: args}
}

// Numbers converts a slice of float64 into positional Number arguments.
func Numbers(vs ...float64) []Arg {
	args := make([]Arg, len(vs))
	for i, v := range vs {
		args[i] = Number(v)
	}
	return args
}
