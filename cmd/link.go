package cmd

import (
	"log"
	"path/filepath"

	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/jamesbehr/shipshape/pkg"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link LINK TARGET",
	Short: "Create or replace a directory symlink",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		link, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatal(err)
		}

		target, err := filepath.Abs(args[1])
		if err != nil {
			log.Fatal(err)
		}

		if err := pkg.LinkDirectory(filesystem.MakePath(link), filesystem.MakePath(target)); err != nil {
			log.Fatal(err)
		}
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink LINK",
	Short: "Remove a directory symlink",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		link, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatal(err)
		}

		if err := pkg.UnlinkDirectory(filesystem.MakePath(link)); err != nil {
			log.Fatal(err)
		}
	},
}
