// Package luabridge is an optional front end that lets a Hydra chain be
// written in Lua's native `:`-chain syntax instead of constructed directly
// with package ast's Go constructors or decoded from JSON:
//
//	return osc(60, 0.1, 0):rotate(0.5):modulate(noise(3), 0.1):out(0)
//
// It is not imported by hydraspv.Compile/EmitPipeline; only cmd/hydrac's
// -lua flag uses it, keeping the core compiler free of a scripting
// dependency.
package luabridge

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/hydraspv/ast"
)

const exprMetatableName = "hydraspv.Expr"

// sourceOps lists the bare (receiver-less) call names exposed as Lua
// globals. Every other chain operator (spatial, color, binary, out) is
// reached only through the `:method(...)` metamethod, matching how they
// can only ever appear as a receiver-having call in package ast.
var sourceOps = []string{"osc", "noise", "solid", "gradient", "shape", "voronoi", "src"}

// Compile runs a Lua chunk and returns the chain expressions it returns.
// A script ending in `return chain` yields a single-statement pipeline;
// `return a, b` yields a two-statement one, evaluated in that order by
// hydraspv.EmitPipeline.
func Compile(src string) ([]*ast.Expr, error) {
	L := lua.NewState()
	defer L.Close()
	registerBuiltins(L)

	fn, err := L.LoadString(src)
	if err != nil {
		return nil, fmt.Errorf("luabridge: parse: %w", err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, fmt.Errorf("luabridge: run: %w", err)
	}

	n := L.GetTop()
	if n == 0 {
		return nil, fmt.Errorf("luabridge: script returned no chain expressions")
	}
	exprs := make([]*ast.Expr, 0, n)
	for i := 1; i <= n; i++ {
		e, err := toExpr(L.Get(i))
		if err != nil {
			return nil, fmt.Errorf("luabridge: return value %d: %w", i, err)
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func registerBuiltins(L *lua.LState) {
	mt := L.NewTypeMetatable(exprMetatableName)
	L.SetField(mt, "__index", L.NewFunction(exprIndex))

	for _, op := range sourceOps {
		op := op
		L.SetGlobal(op, L.NewFunction(func(L *lua.LState) int {
			return pushExpr(L, ast.Source(op, collectArgs(L, 1)...))
		}))
	}
}

// exprIndex backs the `:method(...)` metamethod: Lua desugars obj:m(a,b)
// into obj.m(obj,a,b), so __index first returns a function, and that
// function's own first argument is the receiver.
func exprIndex(L *lua.LState) int {
	method := L.CheckString(2)
	L.Push(L.NewFunction(func(L *lua.LState) int {
		self, err := toExpr(L.Get(1))
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		return pushExpr(L, self.Then(method, collectArgs(L, 2)...))
	}))
	return 1
}

// collectArgs gathers numeric literals and chain-expression userdata from
// the Lua stack starting at index from, in the argument grammar package
// ast and package ir expect: numbers become ast.Number, nested chains
// become ast.Call. Anything else is skipped, mirroring ast's own
// non-literal-argument handling.
func collectArgs(L *lua.LState, from int) []ast.Arg {
	top := L.GetTop()
	var args []ast.Arg
	for i := from; i <= top; i++ {
		switch v := L.Get(i).(type) {
		case lua.LNumber:
			args = append(args, ast.Number(float64(v)))
		case *lua.LUserData:
			if inner, err := toExpr(v); err == nil {
				args = append(args, ast.Call{Expr: inner})
			}
		}
	}
	return args
}

func pushExpr(L *lua.LState, e *ast.Expr) int {
	ud := L.NewUserData()
	ud.Value = e
	L.SetMetatable(ud, L.GetTypeMetatable(exprMetatableName))
	L.Push(ud)
	return 1
}

func toExpr(v lua.LValue) (*ast.Expr, error) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, fmt.Errorf("value is not a chain expression: %s", v.Type())
	}
	e, ok := ud.Value.(*ast.Expr)
	if !ok {
		return nil, fmt.Errorf("userdata does not hold a chain expression")
	}
	return e, nil
}
