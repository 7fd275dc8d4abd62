package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{
		Use:   "oracle",
		Short: "Strategic planning orchestrator",
	}

	root.AddCommand(serveCMD(), planCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
