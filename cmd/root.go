package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/sceneproj"
)

var rootCmd = &cobra.Command{
	Use:   "csgforge",
	Short: "csgforge - a command-line CSG solid modeling tool",
	Long: `csgforge builds solids out of convex polygon meshes using boolean set
operations (union, subtract, intersect) over a BSP tree, and persists the
results as named solids in YAML scene files.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getProjectRoot returns the project root directory by looking for
// csgforge.yaml, for subcommands that resolve a bare scene name against
// the project's scenes directory rather than an explicit file path.
func getProjectRoot() (string, error) {
	return sceneproj.FindProjectRoot()
}
