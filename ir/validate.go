package ir

import "fmt"

// Validate checks the child-precedes-parent invariant Build guarantees by
// construction (every Spatial/UnaryColor/Output child and every Binary
// operand has a strictly smaller id than the node referencing it) and that
// every referenced id is in range. EmitPipeline runs this when
// Options.Validate is set; it exists as a defense against a Graph
// assembled by hand rather than through Build, since Build itself cannot
// produce a violation.
func Validate(g *Graph) error {
	n := len(g.Nodes)
	for id, node := range g.Nodes {
		switch k := node.Kind.(type) {
		case Spatial:
			if err := checkChild(id, uint32(k.Child), n); err != nil {
				return err
			}
		case UnaryColor:
			if err := checkChild(id, uint32(k.Child), n); err != nil {
				return err
			}
		case Output:
			if err := checkChild(id, uint32(k.Child), n); err != nil {
				return err
			}
		case Binary:
			if err := checkChild(id, uint32(k.Left), n); err != nil {
				return err
			}
			if err := checkChild(id, uint32(k.Right), n); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkChild(parent int, child uint32, total int) error {
	if int(child) >= total {
		return fmt.Errorf("ir: node %d references out-of-range child %d", parent, child)
	}
	if int(child) >= parent {
		return fmt.Errorf("ir: node %d references child %d, which does not precede it", parent, child)
	}
	return nil
}
