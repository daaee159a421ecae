package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/csgforge/csg"
	"github.com/bloodmagesoftware/csgforge/scene"
	"github.com/bloodmagesoftware/csgforge/sceneproj"
)

// resolveScenePath resolves a scene argument to a concrete file path. A
// path that exists on disk is used as-is; otherwise it's treated as a bare
// scene name and resolved against the current project's scenes directory,
// discovered via sceneproj.FindProjectRoot/LoadConfig the way the teacher's
// build/lint/run subcommands resolve paths relative to getProjectRoot().
func resolveScenePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	root, err := getProjectRoot()
	if err != nil {
		return "", fmt.Errorf("resolving scene %q: %w", path, err)
	}
	config, err := sceneproj.LoadConfig(root)
	if err != nil {
		return "", fmt.Errorf("resolving scene %q: %w", path, err)
	}

	candidate := path
	if filepath.Ext(candidate) == "" {
		candidate += ".yaml"
	}
	return filepath.Join(sceneproj.ScenesPath(root, config), candidate), nil
}

// loadScene resolves and loads a scene file, wrapping any error with the
// path for context, the way the rest of the CLI wraps its I/O errors. It
// returns the resolved path alongside the scene so callers can write
// results back to the same file.
func loadScene(path string) (*scene.Scene, string, error) {
	resolved, err := resolveScenePath(path)
	if err != nil {
		return nil, "", err
	}

	s := scene.New()
	if err := s.Load(resolved); err != nil {
		return nil, "", fmt.Errorf("loading scene %s: %w", resolved, err)
	}
	return s, resolved, nil
}

// writeResult appends or replaces a named result solid in s and either
// writes the scene back to its own file, writes to --out, or writes the
// bare polygon list to stdout when out is "-".
func writeResult(s *scene.Scene, scenePath, out, name string, polys []csg.Polygon) error {
	if out == "-" {
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		encoder.SetIndent(4)
		return encoder.Encode(polys)
	}

	replaced := false
	for i := range s.Solids {
		if s.Solids[i].Name == name {
			s.Solids[i] = scene.Solid{Name: name, Polygons: polys}
			replaced = true
			break
		}
	}
	if !replaced {
		s.Solids = append(s.Solids, scene.Solid{Name: name, Polygons: polys})
	}

	destination := scenePath
	if out != "" {
		destination = out
	}
	if err := s.Save(destination); err != nil {
		return fmt.Errorf("saving scene %s: %w", destination, err)
	}
	return nil
}

// resolveOperands resolves each solid name against s, in order.
func resolveOperands(s *scene.Scene, names []string) ([]any, error) {
	operands := make([]any, 0, len(names))
	for _, name := range names {
		polys, err := s.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", name, err)
		}
		operands = append(operands, []csg.Polygon(polys))
	}
	return operands, nil
}
