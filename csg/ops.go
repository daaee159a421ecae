package csg

import "fmt"

// NewTree builds a fresh BSP tree from an input polygon list (the "tree(x)"
// helper referenced throughout spec.md §4.H). Polygons with fewer than 3
// vertices are silently dropped (spec.md §4.B failure policy).
func NewTree(polys []Polygon) *Node {
	return buildTree(fromInput(polys))
}

// asTree accepts either a polygon list or a previously built tree, per the
// "polygon list or built tree" contract of spec.md §6.
func asTree(in any) *Node {
	switch v := in.(type) {
	case *Node:
		return v
	case []Polygon:
		return NewTree(v)
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("csg: unsupported operand type %T (want []Polygon or *Node)", in))
	}
}

// union2 realizes the two-tree union body of spec.md §4.H: strip the
// overlapping boundary from both solids, then strip b's interior coplanar
// faces that coincide with a's boundary via flip+clip+flip, and merge.
// It mutates and consumes both a and b, as the core's resource model
// allows (spec.md §5).
func union2(a, b *Node) *Node {
	ClipTo(a, b)
	ClipTo(b, a)
	Flip(b)
	ClipTo(b, a)
	Flip(b)
	return AddTree(a, b)
}

// Union composes the pairwise union left-to-right over all inputs, each of
// which may be a []Polygon or a *Node (spec.md §4.H, "Unions of many
// inputs fold left-to-right using the pairwise union").
func Union(inputs ...any) *Node {
	if len(inputs) == 0 {
		return nil
	}
	result := asTree(inputs[0])
	for _, in := range inputs[1:] {
		result = union2(result, asTree(in))
	}
	return result
}

// Subtract computes a - b: flip a, union with b, flip a back (spec.md §4.H).
func Subtract(a, b any) *Node {
	ta := asTree(a)
	tb := asTree(b)
	Flip(ta)
	ta = union2(ta, tb)
	Flip(ta)
	return ta
}

// Intersect computes a ∩ b (spec.md §4.H).
func Intersect(a, b any) *Node {
	ta := asTree(a)
	Flip(ta)
	tb := asTree(b)
	ClipTo(tb, ta)
	Flip(tb)
	ClipTo(ta, tb)
	ClipTo(tb, ta)
	ta = AddTree(ta, tb)
	Flip(ta)
	return ta
}
