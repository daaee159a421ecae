package csg

// cube returns the 6 quad faces of an axis-aligned cube of the given size
// centered at center, each face outward-wound per the right-hand rule, one
// distinct color per face (colorBase..colorBase+5 in -Z,+Z,-X,+X,-Y,+Y
// order).
func cube(center Vector3, size float64, colorBase int32) []Polygon {
	h := size / 2
	corner := func(dx, dy, dz float64) Vector3 {
		return Vector3{center.X + dx*h, center.Y + dy*h, center.Z + dz*h}
	}

	p000 := corner(-1, -1, -1)
	p100 := corner(1, -1, -1)
	p110 := corner(1, 1, -1)
	p010 := corner(-1, 1, -1)
	p001 := corner(-1, -1, 1)
	p101 := corner(1, -1, 1)
	p111 := corner(1, 1, 1)
	p011 := corner(-1, 1, 1)

	return []Polygon{
		{Color: colorBase + 0, Vertices: []Vector3{p000, p010, p110, p100}}, // -Z
		{Color: colorBase + 1, Vertices: []Vector3{p001, p101, p111, p011}}, // +Z
		{Color: colorBase + 2, Vertices: []Vector3{p000, p001, p011, p010}}, // -X
		{Color: colorBase + 3, Vertices: []Vector3{p100, p110, p111, p101}}, // +X
		{Color: colorBase + 4, Vertices: []Vector3{p000, p100, p101, p001}}, // -Y
		{Color: colorBase + 5, Vertices: []Vector3{p010, p011, p111, p110}}, // +Y
	}
}

func clonePolygons(polys []Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		verts := make([]Vector3, len(p.Vertices))
		copy(verts, p.Vertices)
		out[i] = Polygon{Color: p.Color, Vertices: verts}
	}
	return out
}
