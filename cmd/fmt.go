package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/csgforge/scene"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <scene.yaml...>",
	Short: "Re-save scene files through the canonical YAML encoder",
	Long:  `Loads and re-saves each scene file, normalizing indentation and field order. With --check, reports which files would change without writing them.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirty := false
		for _, arg := range args {
			path, err := resolveScenePath(arg)
			if err != nil {
				return err
			}

			changed, err := formatScene(path, fmtCheck)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", path, err)
			}
			if changed {
				dirty = true
				if fmtCheck {
					fmt.Printf("would reformat %s\n", path)
				} else {
					fmt.Printf("reformatted %s\n", path)
				}
			}
		}
		if fmtCheck && dirty {
			return fmt.Errorf("fmt --check: one or more scene files are not canonically formatted")
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "report files that would change without writing them")
	rootCmd.AddCommand(fmtCmd)
}

// formatScene loads the scene at path, re-encodes it in canonical form, and
// reports whether the bytes differ from what's currently on disk. It only
// writes the file when check is false.
func formatScene(path string, check bool) (bool, error) {
	before, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	s := scene.New()
	if err := s.Load(path); err != nil {
		return false, err
	}

	tmp := path + ".fmttmp"
	if err := s.Save(tmp); err != nil {
		return false, err
	}
	after, err := os.ReadFile(tmp)
	if err != nil {
		os.Remove(tmp)
		return false, err
	}

	if bytes.Equal(before, after) {
		os.Remove(tmp)
		return false, nil
	}

	if check {
		os.Remove(tmp)
		return true, nil
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return false, err
	}
	return true, nil
}
