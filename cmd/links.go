package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/spf13/cobra"
)

var prefix string

var linksCmd = &cobra.Command{
	Use:   "links [dir]",
	Short: "List symlinks in a directory and their targets",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := os.Getwd()
		if err != nil {
			log.Fatal(err)
		}

		if len(args) > 0 {
			dir, err = filepath.Abs(args[0])
			if err != nil {
				log.Fatal(err)
			}
		}

		root := filesystem.MakePath(dir)

		entries, err := root.ReadDir()
		if err != nil {
			log.Fatal(err)
		}

		if prefix != "" {
			prefix, err = filepath.Abs(prefix)
			if err != nil {
				log.Fatal(err)
			}
		}

		for _, entry := range entries {
			path := root.Join(entry.Name())

			kind, err := path.Kind()
			if err != nil {
				log.Fatal(err)
			}

			if kind != filesystem.KindSymlink {
				continue
			}

			target, err := path.Readlink()
			if err != nil {
				log.Fatal(err)
			}

			if prefix == "" || strings.HasPrefix(target.String(), prefix) {
				fmt.Printf("%s -> %s\n", path.Basename(), target)
			}
		}
	},
}

func init() {
	linksCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only list links whose target starts with this")
}
