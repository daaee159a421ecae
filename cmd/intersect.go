package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/csg"
)

var (
	intersectName string
	intersectOut  string
)

var intersectCmd = &cobra.Command{
	Use:   "intersect <scene.yaml> <a> <b>",
	Short: "Intersect two named solids",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		aName, bName := args[1], args[2]

		s, scenePath, err := loadScene(args[0])
		if err != nil {
			return err
		}

		operands, err := resolveOperands(s, []string{aName, bName})
		if err != nil {
			return err
		}

		result := csg.Polygons(csg.Intersect(operands[0], operands[1]))
		fmt.Printf("intersect %s, %s -> %d polygons\n", aName, bName, len(result))

		return writeResult(s, scenePath, intersectOut, intersectName, result)
	},
}

func init() {
	intersectCmd.Flags().StringVar(&intersectName, "name", "result", "name of the solid to store the intersection result as")
	intersectCmd.Flags().StringVar(&intersectOut, "out", "", `output scene path ("-" for stdout, default: overwrite input)`)
	rootCmd.AddCommand(intersectCmd)
}
