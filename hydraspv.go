// Package hydraspv compiles a sequence of Hydra-style chain expressions
// (osc(60,0.1,0).rotate(0.5).out(0), and friends) into a SPIR-V fragment
// shader binary. See package ast for the chain grammar, package ir for the
// intermediate graph it lowers to, and package spirv for the code
// generator.
package hydraspv

import (
	"errors"
	"fmt"

	"github.com/gogpu/hydraspv/ast"
	"github.com/gogpu/hydraspv/ir"
	"github.com/gogpu/hydraspv/spirv"
)

// Options configures a compile. The zero value is not valid; use
// DefaultOptions to get one.
type Options struct {
	// SPIRVVersion is the target SPIR-V version. Defaults to 1.3, the
	// version Vulkan 1.1 requires.
	SPIRVVersion spirv.Version

	// Debug emits OpName entries for the fixed shader interface, for
	// readability under a disassembler. It never changes the module's
	// behavior.
	Debug bool

	// Validate runs the IR's internal structural self-check (every child
	// id precedes its parent's) before assembly. This is not a SPIR-V
	// validator — that's an external tool, per the compiler's error model
	// — it only catches a Graph that didn't come from ir.Build.
	Validate bool
}

// DefaultOptions returns the Options EmitPipeline uses when none are
// given: SPIR-V 1.3, validation on, debug names off.
func DefaultOptions() Options {
	return Options{SPIRVVersion: spirv.Version1_3, Validate: true}
}

// ErrEmptyPipeline is returned when EmitPipeline is given no statements.
var ErrEmptyPipeline = errors.New("hydraspv: pipeline has no statements")

// ErrBuilderFailed wraps an internal IR invariant violation caught by
// Options.Validate — a compiler bug, not a malformed chain expression.
// Callers can distinguish the two with errors.Is(err, ErrBuilderFailed).
var ErrBuilderFailed = errors.New("hydraspv: internal builder invariant violated")

// Compile lowers a single chain expression into a SPIR-V module, using
// DefaultOptions.
func Compile(expr *ast.Expr) ([]byte, error) {
	return EmitPipeline([]*ast.Expr{expr}, DefaultOptions())
}

// CompileWithOptions lowers a single chain expression using the given
// Options.
func CompileWithOptions(expr *ast.Expr, opts Options) ([]byte, error) {
	return EmitPipeline([]*ast.Expr{expr}, opts)
}

// EmitPipeline lowers a sequence of chain-expression statements into one
// SPIR-V fragment shader module. Statements run in order and share a
// single set of out(i) buffers: an earlier statement's out(i) is visible
// to a later statement's src(i). The module's FragColor is the last
// statement's evaluated color, after auto-exposure and tone mapping.
//
// This shape resolves the single-root-expression reading of the chain
// grammar against the buffer semantics, which only make sense across more
// than one statement — see DESIGN.md's Open Questions.
func EmitPipeline(exprs []*ast.Expr, opts Options) ([]byte, error) {
	if len(exprs) == 0 {
		return nil, ErrEmptyPipeline
	}

	ctx := spirv.NewContext(opts.SPIRVVersion)
	graph := &ir.Graph{}
	roots := make([]ir.NodeID, 0, len(exprs))

	for i, expr := range exprs {
		stmtGraph, root, ok := ir.Build(expr)
		if !ok {
			return nil, fmt.Errorf("hydraspv: statement %d: empty expression", i)
		}
		offset := ir.NodeID(len(graph.Nodes))
		appendGraph(graph, stmtGraph, offset)
		roots = append(roots, root+offset)
	}

	if opts.Validate {
		if err := ir.Validate(graph); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBuilderFailed, err)
		}
	}

	if opts.Debug {
		ctx.EnableDebugNames()
	}

	return spirv.AssembleModule(ctx, graph, roots), nil
}

// appendGraph copies src's nodes onto the end of dst, rewriting every
// internal NodeID reference by offset so cross-statement ids keep pointing
// at the right node in the combined arena.
func appendGraph(dst, src *ir.Graph, offset ir.NodeID) {
	for _, n := range src.Nodes {
		dst.Nodes = append(dst.Nodes, ir.Node{Kind: rebase(n.Kind, offset)})
	}
}

func rebase(kind ir.NodeKind, offset ir.NodeID) ir.NodeKind {
	switch k := kind.(type) {
	case ir.Source:
		return k
	case ir.Spatial:
		k.Child += offset
		return k
	case ir.UnaryColor:
		k.Child += offset
		return k
	case ir.Binary:
		k.Left += offset
		k.Right += offset
		return k
	case ir.Output:
		k.Child += offset
		return k
	default:
		return kind
	}
}
