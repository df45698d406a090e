package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the synthdrive version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("synthdrive %s\n", version)
	},
}
