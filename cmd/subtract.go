package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/csg"
)

var (
	subtractName string
	subtractOut  string
)

var subtractCmd = &cobra.Command{
	Use:   "subtract <scene.yaml> <a> <b>",
	Short: "Subtract solid b from solid a",
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

		result := csg.Polygons(csg.Subtract(operands[0], operands[1]))
		fmt.Printf("subtract %s - %s -> %d polygons\n", aName, bName, len(result))

		return writeResult(s, scenePath, subtractOut, subtractName, result)
	},
}

func init() {
	subtractCmd.Flags().StringVar(&subtractName, "name", "result", "name of the solid to store the subtraction result as")
	subtractCmd.Flags().StringVar(&subtractOut, "out", "", `output scene path ("-" for stdout, default: overwrite input)`)
	rootCmd.AddCommand(subtractCmd)
}
