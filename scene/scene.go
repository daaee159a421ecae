// Package scene loads and saves scene files: the YAML documents that name
// and compose solids for the csg core, which has no file format of its own
// (spec.md §3 "no persistence, no file format").
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/csgforge/csg"
)

type (
	// Scene is the top-level YAML document: a flat, named list of solids.
	// Later solids may reference earlier ones by name as operands.
	Scene struct {
		Solids []Solid `yaml:"solids"`
	}

	// Solid is either a leaf (Polygons set directly) or a composed solid
	// (Op + Operands referencing other solids by name). Resolve rejects a
	// solid carrying both forms; a solid with neither resolves to an empty
	// polygon list.
	Solid struct {
		Name     string        `yaml:"name"`
		Polygons []csg.Polygon `yaml:"polygons,omitempty"`
		Op       string        `yaml:"op,omitempty"`
		Operands []string      `yaml:"operands,omitempty"`
	}
)

// New returns an empty scene, mirroring the teacher's level.New constructor.
func New() *Scene {
	return &Scene{Solids: make([]Solid, 0)}
}

// Save writes the scene as indented YAML to path, creating parent
// directories as needed.
func (s *Scene) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating scene directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating scene file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(4)

	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("encoding scene file: %w", err)
	}
	return nil
}

// Load reads a scene file from path.
func (s *Scene) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("decoding scene file: %w", err)
	}
	return nil
}

// Resolve evaluates the named solid to its final polygon list, recursively
// resolving operand solids and applying the named boolean operation. It
// rejects cycles and unknown names/operations, none of which the csg core
// itself guards against (spec.md §3 "no validation").
func (s *Scene) Resolve(name string) ([]csg.Polygon, error) {
	byName := make(map[string]*Solid, len(s.Solids))
	for i := range s.Solids {
		byName[s.Solids[i].Name] = &s.Solids[i]
	}

	return resolve(name, byName, make(map[string]bool))
}

func resolve(name string, byName map[string]*Solid, visiting map[string]bool) ([]csg.Polygon, error) {
	solid, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("solid %q not found in scene", name)
	}

	if len(solid.Op) == 0 {
		if len(solid.Operands) != 0 {
			return nil, fmt.Errorf("solid %q has operands but no op", name)
		}
		return solid.Polygons, nil
	}
	if len(solid.Polygons) != 0 {
		return nil, fmt.Errorf("solid %q has both polygons and an op", name)
	}

	if visiting[name] {
		return nil, fmt.Errorf("solid %q participates in a dependency cycle", name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	if len(solid.Operands) == 0 {
		return nil, fmt.Errorf("solid %q has op %q but no operands", name, solid.Op)
	}

	operands := make([]any, 0, len(solid.Operands))
	for _, operand := range solid.Operands {
		polys, err := resolve(operand, byName, visiting)
		if err != nil {
			return nil, fmt.Errorf("resolving operand %q of %q: %w", operand, name, err)
		}
		operands = append(operands, []csg.Polygon(polys))
	}

	switch solid.Op {
	case "union":
		return csg.Polygons(csg.Union(operands...)), nil
	case "subtract":
		if len(operands) != 2 {
			return nil, fmt.Errorf("solid %q: subtract requires exactly 2 operands, got %d", name, len(operands))
		}
		return csg.Polygons(csg.Subtract(operands[0], operands[1])), nil
	case "intersect":
		if len(operands) != 2 {
			return nil, fmt.Errorf("solid %q: intersect requires exactly 2 operands, got %d", name, len(operands))
		}
		return csg.Polygons(csg.Intersect(operands[0], operands[1])), nil
	default:
		return nil, fmt.Errorf("solid %q: unknown op %q", name, solid.Op)
	}
}
