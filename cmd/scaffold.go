package cmd

import (
	"log"
	"path/filepath"

	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/jamesbehr/shipshape/pkg"
	"github.com/spf13/cobra"
)

var forFile bool
var manifest string

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [paths...]",
	Short: "Create directory trees, parents first",
	Run: func(cmd *cobra.Command, args []string) {
		if manifest == "" && len(args) == 0 {
			log.Fatal("provide at least one path or a manifest")
		}

		for _, arg := range args {
			path := filesystem.Path(arg)

			var err error
			if forFile {
				err = pkg.EnsureDirsForFile(path)
			} else {
				err = pkg.EnsureDirs(path)
			}

			if err != nil {
				log.Fatal(err)
			}
		}

		if manifest != "" {
			path, err := filepath.Abs(manifest)
			if err != nil {
				log.Fatal(err)
			}

			layout, err := pkg.LoadLayout(filesystem.MakePath(path))
			if err != nil {
				log.Fatal(err)
			}

			// Layout entries are relative to the manifest's own directory.
			root := filesystem.MakePath(filepath.Dir(path))
			if err := layout.Apply(root); err != nil {
				log.Fatal(err)
			}
		}
	},
}

func init() {
	scaffoldCmd.Flags().BoolVarP(&forFile, "for-file", "f", false, "treat arguments as file paths and create only their parent directories")
	scaffoldCmd.Flags().StringVarP(&manifest, "manifest", "m", "", "apply a TOML layout manifest")
}
