package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/jamesbehr/shipshape/pkg"
	"github.com/spf13/cobra"
)

var force bool

func confirmClear(paths []string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Recursively delete %d path(s)? This cannot be undone", len(paths)),
	}

	var confirmed bool
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}

	return confirmed, nil
}

var clearCmd = &cobra.Command{
	Use:   "clear [paths...]",
	Short: "Recursively delete directory trees without following symlinks",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatal("provide at least one path")
		}

		if !force {
			confirmed, err := confirmClear(args)
			if err != nil {
				log.Fatal(err)
			}

			if !confirmed {
				return
			}
		}

		for _, arg := range args {
			path, err := filepath.Abs(arg)
			if err != nil {
				log.Fatal(err)
			}

			if err := pkg.DeleteTree(filesystem.MakePath(path)); err != nil {
				log.Fatal(err)
			}
		}
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
}
