package csg

import "testing"

func quad(z float64) *polygon {
	return newPolygon(1, []Vector3{
		{0, 0, z}, {1, 0, z}, {1, 1, z}, {0, 1, z},
	})
}

func TestSplitPolygonCoplanar(t *testing.T) {
	p := quad(0)
	splitPlane := Plane{Normal: Vector3{0, 0, 1}, W: 0}

	front, back, coplanar := splitPolygon(p, splitPlane)
	if !coplanar {
		t.Fatalf("expected coplanar classification")
	}
	if front != nil || back != nil {
		t.Fatalf("expected no fragments for coplanar polygon, got front=%v back=%v", front, back)
	}
}

func TestSplitPolygonFrontOnly(t *testing.T) {
	p := quad(5)
	splitPlane := Plane{Normal: Vector3{0, 0, 1}, W: 0}

	front, back, coplanar := splitPolygon(p, splitPlane)
	if coplanar {
		t.Fatalf("did not expect coplanar classification")
	}
	if front != p {
		t.Fatalf("expected front fragment to be the input polygon unchanged")
	}
	if back != nil {
		t.Fatalf("expected no back fragment, got %v", back)
	}
}

func TestSplitPolygonBackOnly(t *testing.T) {
	p := quad(-5)
	splitPlane := Plane{Normal: Vector3{0, 0, 1}, W: 0}

	front, back, coplanar := splitPolygon(p, splitPlane)
	if coplanar {
		t.Fatalf("did not expect coplanar classification")
	}
	if back != p {
		t.Fatalf("expected back fragment to be the input polygon unchanged")
	}
	if front != nil {
		t.Fatalf("expected no front fragment, got %v", front)
	}
}

// TestSplitPolygonSpanning exercises spec.md §8 scenario 6: a triangle with
// two vertices at +2ε and one at -2ε must split into a back-side triangle
// and a front-side quadrilateral, with the two new vertices lying on the
// plane within ε.
func TestSplitPolygonSpanning(t *testing.T) {
	splitPlane := Plane{Normal: Vector3{0, 0, 1}, W: 0}
	eps := PlaneEpsilon
	p := newPolygon(1, []Vector3{
		{0, 0, 2 * eps},
		{1, 0, 2 * eps},
		{0.5, 1, -2 * eps},
	})

	front, back, coplanar := splitPolygon(p, splitPlane)
	if coplanar {
		t.Fatalf("did not expect coplanar classification")
	}
	if front == nil || back == nil {
		t.Fatalf("expected both fragments, got front=%v back=%v", front, back)
	}
	if len(front.vertices) != 4 {
		t.Errorf("front fragment vertex count = %d, want 4", len(front.vertices))
	}
	if len(back.vertices) != 3 {
		t.Errorf("back fragment vertex count = %d, want 3", len(back.vertices))
	}
	for _, v := range front.vertices {
		if d := splitPlane.SignedDistance(v); d < -eps {
			t.Errorf("front vertex %v has signed distance %v below plane", v, d)
		}
	}
	for _, v := range back.vertices {
		if v == p.vertices[2] {
			continue
		}
		if d := splitPlane.SignedDistance(v); d < -eps || d > eps {
			t.Errorf("new vertex %v is %v from the plane, want within epsilon", v, d)
		}
	}
	if front.parent != p || back.parent != p {
		t.Errorf("expected both fragments to point back to the input polygon as parent")
	}
	if front.color != p.color || back.color != p.color {
		t.Errorf("expected fragments to inherit color from parent")
	}
}

// TestSplitPolygonVertexCount checks the combined fragment vertex count
// for a spanning split (spec.md §8 Boundary behaviors): the two new
// intersection points are each shared by both fragments, so summing the
// two fragments' vertex list lengths counts every original vertex once
// and each of the 2 new intersection points twice — original+4 when (as
// here) a convex polygon crosses the plane along exactly two edges with
// no vertex landing exactly on the plane.
func TestSplitPolygonVertexCount(t *testing.T) {
	splitPlane := Plane{Normal: Vector3{1, 0, 0}, W: 0.5}
	p := quad(0) // unit square from (0,0) to (1,1), straddles x=0.5

	front, back, coplanar := splitPolygon(p, splitPlane)
	if coplanar || front == nil || back == nil {
		t.Fatalf("expected a spanning split, got front=%v back=%v coplanar=%v", front, back, coplanar)
	}
	total := len(front.vertices) + len(back.vertices)
	if total != len(p.vertices)+4 {
		t.Errorf("combined fragment vertex count = %d, want %d", total, len(p.vertices)+4)
	}
}

func TestSplitPolygonDropsDegenerateFragments(t *testing.T) {
	// A triangle just touching the plane at one vertex (coplanar) and
	// strictly front everywhere else must not produce a back fragment.
	splitPlane := Plane{Normal: Vector3{0, 0, 1}, W: 0}
	p := newPolygon(1, []Vector3{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 1},
	})
	front, back, coplanar := splitPolygon(p, splitPlane)
	if coplanar {
		t.Fatalf("did not expect coplanar classification")
	}
	if back != nil {
		t.Errorf("expected no back fragment, got %v", back)
	}
	if front != p {
		t.Errorf("expected the input polygon unchanged on the front side")
	}
}
