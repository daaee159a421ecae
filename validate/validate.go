// Package validate lints scene files for malformed geometry. This is
// advisory tooling layered on top of the csg core, which performs no input
// validation of its own (spec.md §3 "no validation" / §7).
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bloodmagesoftware/csgforge/csg"
	"github.com/bloodmagesoftware/csgforge/scene"
)

// Violation describes one malformed polygon found in a scene file.
type Violation struct {
	Path   string
	Solid  string
	Color  int32
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("  [ERROR] %s\n    Solid: %s (color %d)\n    Reason: %s", v.Path, v.Solid, v.Color, v.Reason)
}

// Dir walks dir for *.yaml scene files and lints every leaf solid's
// polygons. Composed solids (Op set) are not geometrically checked here;
// resolve the scene first with scene.Resolve if the composed output also
// needs linting.
func Dir(dir string) ([]Violation, error) {
	var violations []Violation

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		s := scene.New()
		if err := s.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		for _, solid := range s.Solids {
			if len(solid.Op) != 0 {
				continue
			}
			violations = append(violations, lintSolid(path, solid.Name, solid.Polygons)...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}

	return violations, nil
}

func lintSolid(path, name string, polys []csg.Polygon) []Violation {
	var out []Violation
	for _, p := range polys {
		if len(p.Vertices) < 3 {
			out = append(out, Violation{
				Path: path, Solid: name, Color: p.Color,
				Reason: fmt.Sprintf("polygon has %d vertices, need at least 3", len(p.Vertices)),
			})
			continue
		}

		normal := csg.PolygonNormal(p.Vertices[0], p.Vertices[1], p.Vertices[2])
		if normal.Length() < csg.PlaneEpsilon {
			out = append(out, Violation{
				Path: path, Solid: name, Color: p.Color,
				Reason: "polygon vertices are collinear or coincident (zero-length normal)",
			})
			continue
		}

		if reason, bad := checkPlanarity(p.Vertices, normal); bad {
			out = append(out, Violation{Path: path, Solid: name, Color: p.Color, Reason: reason})
		}
	}
	return out
}

// checkPlanarity verifies every vertex lies within PlaneEpsilon of the
// plane defined by the first three vertices and the polygon's normal.
func checkPlanarity(verts []csg.Vector3, normal csg.Vector3) (string, bool) {
	w := csg.Dot(normal, verts[0])

	for i, v := range verts {
		d := csg.Dot(normal, v) - w
		if d < -csg.PlaneEpsilon || d > csg.PlaneEpsilon {
			return fmt.Sprintf("vertex %d is non-planar (off by %.6g, tolerance %.6g)", i, d, csg.PlaneEpsilon), true
		}
	}
	return "", false
}
