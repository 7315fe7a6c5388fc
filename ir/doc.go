// Package ir defines the typed dataflow graph that a Hydra-style chain
// expression lowers into: an arena of nodes classified into four disjoint
// kinds (Source, Spatial, UnaryColor, Binary) plus a terminal Output kind,
// addressed by integer NodeID rather than pointer.
//
// The graph is a DAG rooted at the top-level expression. Cycles are
// impossible by construction: Build walks the AST bottom-up and a node's
// children always have strictly smaller ids than the node itself.
package ir
