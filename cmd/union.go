package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/csg"
)

var (
	unionName string
	unionOut  string
)

var unionCmd = &cobra.Command{
	Use:   "union <scene.yaml> <solid...>",
	Short: "Union two or more named solids",
	Long:  `Folds the given solids left-to-right through the pairwise union operation and stores the result as a new named solid.`,
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args[1:]

		s, scenePath, err := loadScene(args[0])
		if err != nil {
			return err
		}

		operands, err := resolveOperands(s, names)
		if err != nil {
			return err
		}

		result := csg.Polygons(csg.Union(operands...))
		fmt.Printf("union of %d solids -> %d polygons\n", len(names), len(result))

		return writeResult(s, scenePath, unionOut, unionName, result)
	},
}

func init() {
	unionCmd.Flags().StringVar(&unionName, "name", "result", "name of the solid to store the union result as")
	unionCmd.Flags().StringVar(&unionOut, "out", "", `output scene path ("-" for stdout, default: overwrite input)`)
	rootCmd.AddCommand(unionCmd)
}
