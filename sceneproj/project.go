// Package sceneproj locates and loads the csgforge.yaml project file that
// anchors a directory tree of scene files, the way the teacher's project
// package anchored a directory tree of levels and assets.
package sceneproj

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "csgforge.yaml"

// Config is the project configuration read from csgforge.yaml.
type Config struct {
	Name      string `yaml:"name"`
	ScenesDir string `yaml:"scenes_dir"`
}

// FindProjectRoot walks up from the current working directory looking for
// csgforge.yaml, returning the directory that contains it.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return findProjectRootFrom(cwd)
}

func findProjectRootFrom(start string) (string, error) {
	dir := start
	for {
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory of %s", configFileName, start)
		}
		dir = parent
	}
}

// LoadConfig loads and validates csgforge.yaml from projectRoot.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("'name' field is required in %s", configFileName)
	}
	if config.ScenesDir == "" {
		config.ScenesDir = "scenes"
	}

	return &config, nil
}

// ScenesPath returns the project's scenes directory: config.ScenesDir joined
// onto projectRoot (absolute when projectRoot is).
func ScenesPath(projectRoot string, config *Config) string {
	return filepath.Join(projectRoot, config.ScenesDir)
}
