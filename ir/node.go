package ir

// NodeID addresses a node in a Graph's arena. The zero value is a valid
// reference to the first node pushed, so callers that need an "absent"
// sentinel use a separate bool (as Build does for its root result).
type NodeID uint32

// Node is one arena entry. Kind carries the actual variant and is one of
// Source, Spatial, UnaryColor, Binary or Output.
type Node struct {
	Kind NodeKind
}

// NodeKind is the closed set of tagged node variants. Dispatch over it is a
// type switch in the evaluator (package spirv); this interface exists only
// to let Graph.Nodes hold a single slice type.
type NodeKind interface {
	nodeKind()
}

// SourceKind enumerates the operators that produce a color from the current
// coordinate and time, with no color input of their own.
type SourceKind uint8

const (
	Osc SourceKind = iota
	Noise
	Solid
	Gradient
	Shape
	Voronoi
	Src
)

// Source is a leaf node: it samples the current coordinate directly.
type Source struct {
	Kind SourceKind
	Args []float32
}

func (Source) nodeKind() {}

// SpatialKind enumerates operators that transform the incoming coordinate
// before evaluating a single child at the transformed coordinate.
type SpatialKind uint8

const (
	Scale SpatialKind = iota
	Rotate
	Kaleid
	Scroll
	ScrollX
	ScrollY
	Repeat
	RepeatX
	RepeatY
	Pixelate
)

// Spatial transforms the coordinate, then defers to Child.
type Spatial struct {
	Kind  SpatialKind
	Args  []float32
	Child NodeID
}

func (Spatial) nodeKind() {}

// UnaryColorKind enumerates operators that transform a sampled color without
// changing where it was sampled from.
type UnaryColorKind uint8

const (
	Invert UnaryColorKind = iota
	Color
	Brightness
	Contrast
	Saturate
	Posterize
	Thresh
	Hue
	Colorama
	Luma
	Shift
)

// UnaryColor evaluates Child at the current coordinate, then transforms the
// resulting color.
type UnaryColor struct {
	Kind  UnaryColorKind
	Args  []float32
	Child NodeID
}

func (UnaryColor) nodeKind() {}

// BinaryKind enumerates operators that combine two subtree colors. The
// coord-modulating kinds (Modulate, ModulateScale) additionally re-sample
// Left under a coordinate derived from Right; see the evaluator.
type BinaryKind uint8

const (
	Add BinaryKind = iota
	Sub
	Mult
	Blend
	Diff
	Layer
	Mask
	Modulate
	ModulateScale
)

// Modulating reports whether k re-samples its left operand under
// transformed coordinates rather than simply combining two same-coordinate
// colors.
func (k BinaryKind) Modulating() bool {
	return k == Modulate || k == ModulateScale
}

// Binary combines Left and Right.
type Binary struct {
	Kind  BinaryKind
	Args  []float32
	Left  NodeID
	Right NodeID
}

func (Binary) nodeKind() {}

// Output records Child's evaluated color into buffer Index for later
// retrieval by Source{Kind: Src}, and passes the color through unchanged.
type Output struct {
	Child NodeID
	Index uint32
}

func (Output) nodeKind() {}
