package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/casecmd"
	"namefully/src/cmd/namefully/cli"
	"namefully/src/cmd/namefully/exportcmd"
	"namefully/src/cmd/namefully/flattencmd"
	"namefully/src/cmd/namefully/formatcmd"
	"namefully/src/cmd/namefully/importcmd"
	"namefully/src/cmd/namefully/showcmd"
)

var rootCmd = &cobra.Command{
	Use:           "namefully",
	Short:         "Parse, format and convert personal names",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func execute() error {
	cli.RegisterFlags(rootCmd)
	rootCmd.AddCommand(showcmd.New())
	rootCmd.AddCommand(formatcmd.New())
	rootCmd.AddCommand(flattencmd.New())
	rootCmd.AddCommand(casecmd.New())
	rootCmd.AddCommand(exportcmd.New())
	rootCmd.AddCommand(importcmd.New())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
