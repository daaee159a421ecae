package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/csg"
)

var statsCmd = &cobra.Command{
	Use:   "stats <scene.yaml> <solid>",
	Short: "Print polygon and vertex counts for a named solid",
	Long:  `Resolves a named solid and prints its polygon count and total vertex count, useful for eyeballing how many fragments a boolean op's split-parent coalescence leaves behind.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[1]

		s, _, err := loadScene(args[0])
		if err != nil {
			return err
		}

		polys, err := s.Resolve(name)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", name, err)
		}

		vertexCount := 0
		for _, p := range polys {
			vertexCount += len(p.Vertices)
		}

		fmt.Printf("solid %q: %d polygons, %d vertices, %.2f average vertices per polygon\n",
			name, len(polys), vertexCount, averagePerPolygon(polys, vertexCount))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func averagePerPolygon(polys []csg.Polygon, vertexCount int) float64 {
	if len(polys) == 0 {
		return 0
	}
	return float64(vertexCount) / float64(len(polys))
}
