package ir

import "github.com/gogpu/hydraspv/ast"

var sourceTable = map[string]SourceKind{
	"osc":      Osc,
	"noise":    Noise,
	"solid":    Solid,
	"gradient": Gradient,
	"shape":    Shape,
	"voronoi":  Voronoi,
	"src":      Src,
}

var spatialTable = map[string]SpatialKind{
	"scale":    Scale,
	"rotate":   Rotate,
	"kaleid":   Kaleid,
	"scroll":   Scroll,
	"scrollX":  ScrollX,
	"scrollY":  ScrollY,
	"repeat":   Repeat,
	"repeatX":  RepeatX,
	"repeatY":  RepeatY,
	"pixelate": Pixelate,
}

var unaryColorTable = map[string]UnaryColorKind{
	"invert":     Invert,
	"color":      Color,
	"brightness": Brightness,
	"contrast":   Contrast,
	"saturate":   Saturate,
	"posterize":  Posterize,
	"thresh":     Thresh,
	"hue":        Hue,
	"colorama":   Colorama,
	"luma":       Luma,
	"shift":      Shift,
}

// binaryTable classifies the canonical binary operator names. Accepted
// synonyms (modulateRotate, modulateRepeat, modulatePixelate, modulateHue,
// modulateKaleid, modulateScrollX, modulateScrollY) are all folded onto
// plain Modulate by binaryKindFor — none of them get any further
// specialization anywhere downstream.
var binaryTable = map[string]BinaryKind{
	"add":           Add,
	"sub":           Sub,
	"mult":          Mult,
	"blend":         Blend,
	"diff":          Diff,
	"layer":         Layer,
	"mask":          Mask,
	"modulate":      Modulate,
	"modulateScale": ModulateScale,
}

var modulateSynonyms = map[string]bool{
	"modulateRotate":   true,
	"modulateRepeat":   true,
	"modulatePixelate": true,
	"modulateHue":      true,
	"modulateKaleid":   true,
	"modulateScrollX":  true,
	"modulateScrollY":  true,
}

func binaryKindFor(op string) (BinaryKind, bool) {
	if k, ok := binaryTable[op]; ok {
		return k, true
	}
	if modulateSynonyms[op] {
		return Modulate, true
	}
	return 0, false
}

// builder accumulates a Graph while walking an ast.Expr chain bottom-up.
type builder struct {
	graph Graph
}

// Build lowers a chain expression into a Graph, returning the id of the
// root node. ok is false only when expr is nil (the AST adapter found no
// chain at all).
func Build(expr *ast.Expr) (*Graph, NodeID, bool) {
	if expr == nil {
		return &Graph{}, 0, false
	}
	b := &builder{}
	root := b.buildExpr(expr)
	return &b.graph, root, true
}

func (b *builder) buildExpr(e *ast.Expr) NodeID {
	if e.Receiver == nil {
		return b.buildSource(e)
	}

	base := b.buildExpr(e.Receiver)

	if e.Op == "out" {
		index := uint32(0)
		if n, ok := firstNumber(e.Args); ok {
			index = uint32(n)
		}
		return b.graph.push(Output{Child: base, Index: index})
	}

	if kind, ok := spatialTable[e.Op]; ok {
		return b.graph.push(Spatial{Kind: kind, Args: numericArgs(e.Args), Child: base})
	}

	if kind, ok := binaryKindFor(e.Op); ok {
		callArg, amount, hasCall := firstCallAndAmount(e.Args)
		if !hasCall {
			// No call-typed first argument: per the reference
			// implementation this binary is skipped entirely and the
			// receiver passes through unchanged, the same as an unknown
			// method name (see Open Question #2 in SPEC_FULL.md).
			return base
		}
		right := b.buildExpr(callArg)
		var args []float32
		if amount != nil {
			args = []float32{float32(*amount)}
		}
		return b.graph.push(Binary{Kind: kind, Args: args, Left: base, Right: right})
	}

	if kind, ok := unaryColorTable[e.Op]; ok {
		return b.graph.push(UnaryColor{Kind: kind, Args: numericArgs(e.Args), Child: base})
	}

	// Unknown method name: pass the receiver through unchanged.
	return base
}

func (b *builder) buildSource(e *ast.Expr) NodeID {
	kind, ok := sourceTable[e.Op]
	if !ok {
		// Unrecognized bare call: no receiver to pass through to, so fall
		// back to the documented solid() default, black with alpha 1 (Open Question
		// #3 in SPEC_FULL.md), mirroring the src(i)-undefined fallback.
		return b.graph.push(Source{Kind: Solid, Args: nil})
	}
	return b.graph.push(Source{Kind: kind, Args: numericArgs(e.Args)})
}

// numericArgs collects the numeric literals from args in positional order,
// silently skipping anything else (§3: "non-numeric argument expressions
// are ignored and treated as missing").
func numericArgs(args []ast.Arg) []float32 {
	var out []float32
	for _, a := range args {
		if n, ok := a.(ast.Number); ok {
			out = append(out, float32(n))
		}
	}
	return out
}

func firstNumber(args []ast.Arg) (float64, bool) {
	for _, a := range args {
		if n, ok := a.(ast.Number); ok {
			return float64(n), true
		}
	}
	return 0, false
}

// firstCallAndAmount implements the binary-argument grammar: the first
// positional argument must be a call expression (the right subtree); the
// second, if present and numeric, is the amount.
func firstCallAndAmount(args []ast.Arg) (*ast.Expr, *float64, bool) {
	if len(args) == 0 {
		return nil, nil, false
	}
	call, ok := args[0].(ast.Call)
	if !ok {
		return nil, nil, false
	}
	var amount *float64
	if len(args) > 1 {
		if n, ok := args[1].(ast.Number); ok {
			v := float64(n)
			amount = &v
		}
	}
	return call.Expr, amount, true
}
