package main

import (
	"os"

	"github.com/ecadlabs/xbuf/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(
		cmd.NewConvertCommand(),
		cmd.NewRandomCommand(),
		cmd.NewXorCommand(),
		cmd.NewConcatCommand(),
		cmd.NewEqualCommand(),
		cmd.NewVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
