package main

import (
	"os"

	"go.uber.org/dig"
)

func main() {
	container := dig.New()
	rootCmd := newRootCmd(container)
	rootCmd.AddCommand(newTCPServerCmd(container))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
