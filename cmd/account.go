package cmd

import (
	"lever/pkg/id"

	"github.com/spf13/cobra"
)

// convenience for creating test accounts
var genAccountCmd = &cobra.Command{
	Use:   "gen-account",
	Short: "generate a new account id",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(id.GenUUIDString())
	},
}

func init() {
	rootCmd.AddCommand(genAccountCmd)
}
