package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/csgforge/sceneproj"
)

var (
	initName      string
	initScenesDir string
)

var initCmd = &cobra.Command{
	Use:   "init <directory>",
	Short: "Scaffold a new csgforge project",
	Long:  `Creates a csgforge.yaml project file and an empty scenes directory, the way a new project is bootstrapped before any scene files exist.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		if err := os.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("creating project directory: %w", err)
		}

		name := initName
		if name == "" {
			name = filepath.Base(root)
		}
		config := sceneproj.Config{Name: name, ScenesDir: initScenesDir}

		if err := os.MkdirAll(sceneproj.ScenesPath(root, &config), 0755); err != nil {
			return fmt.Errorf("creating scenes directory: %w", err)
		}

		configPath := filepath.Join(root, "csgforge.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists", configPath)
		}

		f, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", configPath, err)
		}
		defer f.Close()

		encoder := yaml.NewEncoder(f)
		defer encoder.Close()
		encoder.SetIndent(4)
		if err := encoder.Encode(config); err != nil {
			return fmt.Errorf("writing %s: %w", configPath, err)
		}

		fmt.Printf("initialized csgforge project %q in %s\n", config.Name, root)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "project name (default: directory basename)")
	initCmd.Flags().StringVar(&initScenesDir, "scenes-dir", "scenes", "directory for scene files, relative to the project root")
	rootCmd.AddCommand(initCmd)
}
