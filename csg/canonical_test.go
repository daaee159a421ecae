package csg

import "sort"

// compareVector3 orders two points lexicographically by (X, Y, Z).
func compareVector3(a, b Vector3) int {
	switch {
	case a.X != b.X:
		return cmpFloat(a.X, b.X)
	case a.Y != b.Y:
		return cmpFloat(a.Y, b.Y)
	default:
		return cmpFloat(a.Z, b.Z)
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// rotateToLexMin returns a copy of verts rotated so the lexicographically
// smallest vertex comes first, preserving cyclic order.
func rotateToLexMin(verts []Vector3) []Vector3 {
	minIdx := 0
	for i := 1; i < len(verts); i++ {
		if compareVector3(verts[i], verts[minIdx]) < 0 {
			minIdx = i
		}
	}
	out := make([]Vector3, len(verts))
	for i := range verts {
		out[i] = verts[(minIdx+i)%len(verts)]
	}
	return out
}

// compareVertexList lexicographically compares two rotated vertex lists.
func compareVertexList(a, b []Vector3) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if c := compareVector3(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// canonicalize sorts polygons by color, then by lexicographic vertex list
// after rotating each to start at its lex-min vertex (spec.md §8).
func canonicalize(polys []Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = Polygon{Color: p.Color, Vertices: rotateToLexMin(p.Vertices)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Color != out[j].Color {
			return out[i].Color < out[j].Color
		}
		return compareVertexList(out[i].Vertices, out[j].Vertices) < 0
	})
	return out
}

func canonicallyEqual(a, b []Polygon) bool {
	ca, cb := canonicalize(a), canonicalize(b)
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if ca[i].Color != cb[i].Color {
			return false
		}
		if len(ca[i].Vertices) != len(cb[i].Vertices) {
			return false
		}
		for j := range ca[i].Vertices {
			if compareVector3(ca[i].Vertices[j], cb[i].Vertices[j]) != 0 {
				return false
			}
		}
	}
	return true
}
