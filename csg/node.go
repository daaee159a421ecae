package csg

// Node is a BSP tree node: a plane together with the bundle of polygons
// coplanar with it, and optional front/back child subtrees holding the
// polygons strictly in front of / behind the plane (spec.md §3).
//
// Generalized from the teacher's 2D collision tree (bsp.BSPBuilder, whose
// nodes held a single splitting Line and a front/back pair of child
// indices into a flat, protobuf-serialized array) to 3D planes with an
// explicit polygon bundle per node and plain pointers for children, since
// the CSG core has no wire format to serialize through (spec.md §6).
type Node struct {
	Plane    Plane
	Polygons []*polygon
	Front    *Node
	Back     *Node
}

// buildTree incrementally inserts polygons into a fresh tree (spec.md §4.C).
// The first inserted polygon sets the root plane, giving a construction-
// order-dependent but deterministic tree; no rebalancing is attempted.
func buildTree(polys []*polygon) *Node {
	var root *Node
	for _, p := range polys {
		root = insert(root, p)
	}
	return root
}

// insert inserts a single polygon into the (possibly nil) tree rooted at
// node, returning the (possibly new) root.
func insert(node *Node, p *polygon) *Node {
	if node == nil {
		return &Node{Plane: p.plane, Polygons: []*polygon{p}}
	}

	front, back, coplanar := splitPolygon(p, node.Plane)
	if coplanar {
		node.Polygons = append(node.Polygons, p)
		return node
	}
	if front != nil {
		node.Front = insert(node.Front, front)
	}
	if back != nil {
		node.Back = insert(node.Back, back)
	}
	return node
}

// Traverse walks the tree in pre-order, applying fn to every node: the
// node itself, then its front subtree, then its back subtree (spec.md
// §4.D). It is not re-entrant against structural mutation of the subtree
// being walked, other than fn mutating the very node it was just handed
// (Flip relies on exactly that).
func Traverse(node *Node, fn func(*Node)) {
	if node == nil {
		return
	}
	fn(node)
	Traverse(node.Front, fn)
	Traverse(node.Back, fn)
}

// Flip inverts the solid/empty interpretation of the whole tree in place:
// every polygon's flipped bit toggles, every plane negates, and every
// node's front/back children swap (spec.md §4.E). Implemented as a single
// Traverse pass — the swap happens inside fn before Traverse descends into
// node.Front/node.Back, so the recursive calls already see the new
// children.
func Flip(root *Node) {
	Traverse(root, func(n *Node) {
		for _, p := range n.Polygons {
			p.flipped = !p.flipped
		}
		n.Plane = n.Plane.Flip()
		n.Front, n.Back = n.Back, n.Front
	})
}

// ClipTo removes from root every piece of its polygons that lies inside
// the solid represented by bsp (spec.md §4.F).
func ClipTo(root, bsp *Node) {
	if root == nil {
		return
	}
	root.Polygons = clipPolygons(root.Polygons, bsp)
	ClipTo(root.Front, bsp)
	ClipTo(root.Back, bsp)
}

// clipPolygons clips every polygon in polys against the bsp tree and
// returns the survivors.
func clipPolygons(polys []*polygon, bsp *Node) []*polygon {
	var survivors []*polygon
	for _, p := range polys {
		survivors = append(survivors, clipPolygon(p, bsp)...)
	}
	return survivors
}

// clipPolygon clips a single polygon against the bsp subtree rooted at
// node. A nil node clips nothing away (everything reaching an empty
// subtree is, by definition, strictly outside the clipping solid).
func clipPolygon(p *polygon, node *Node) []*polygon {
	if node == nil {
		return []*polygon{p}
	}

	front, back, coplanar := splitPolygon(p, node.Plane)
	if coplanar {
		// Coplanar tie-break (spec.md §4.F step 2): a polygon facing the
		// same way as the bsp node's plane is routed as front (outside
		// the clipping solid); facing the opposite way, as back (inside).
		// A flipped polygon faces opposite to its stored plane.
		facing := p.plane.Normal
		if p.flipped {
			facing = facing.Negate()
		}
		if node.Plane.Normal.Dot(facing) > 0 {
			front, back = p, nil
		} else {
			front, back = nil, p
		}
	}

	var out []*polygon
	if front != nil {
		if node.Front != nil {
			out = append(out, clipPolygon(front, node.Front)...)
		} else {
			out = append(out, front)
		}
	}
	if back != nil {
		if node.Back != nil {
			out = append(out, clipPolygon(back, node.Back)...)
		}
		// No back child: back is strictly inside the clipping solid and
		// is discarded.
	}
	return out
}

// AddTree inserts every polygon of source into target, visiting source in
// pre-order, and returns the (possibly new) target root (spec.md §4.G).
// It merges source's polygons into target's existing BSP without
// rebuilding target's plane selections.
func AddTree(target, source *Node) *Node {
	if source == nil {
		return target
	}
	for _, p := range source.Polygons {
		target = insert(target, p)
	}
	target = AddTree(target, source.Front)
	target = AddTree(target, source.Back)
	return target
}
