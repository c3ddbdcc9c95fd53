package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	changelog "github.com/tomavic/conventional-changelog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of conventional-changelog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("conventional-changelog version %s\n", strings.TrimSpace(changelog.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
