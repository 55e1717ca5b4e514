package cmd

import (
	"fmt"
	"os"

	"github.com/jamesbehr/shipshape/pkg"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "shipshape",
	Short: "Directory tree scaffolding and symlink manager",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			pkg.SetLogger(pkg.DefaultLogger())
			return nil
		}

		level, err := pkg.LogLevelFromString(logLevel)
		if err != nil {
			return err
		}

		pkg.SetLogger(pkg.NewLogger(os.Stderr, level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error; defaults to warn)")
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(clearCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
