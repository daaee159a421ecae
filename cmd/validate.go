package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene.yaml>",
	Short: "Lint a scene file's leaf solids for malformed geometry",
	Long:  `Scans a scene file for polygons with fewer than 3 vertices, non-planar vertices, or degenerate (zero-length) normals.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveScenePath(args[0])
		if err != nil {
			return err
		}

		violations, err := validate.Dir(path)
		if err != nil {
			return err
		}

		if len(violations) == 0 {
			fmt.Println("validate: no violations found")
			return nil
		}

		for _, v := range violations {
			fmt.Println(v.String())
		}
		return fmt.Errorf("validate: found %d violations", len(violations))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
