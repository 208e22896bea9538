package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "show an account's aggregate position",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		userID, e := cmd.Flags().GetString("user")
		if e != nil || userID == "" {
			panic("invalid user")
		}

		database := provideDatabase()
		defer database.Close()

		summary, err := provideAccountService(database).GetUserPosition(ctx, userID)
		if err != nil {
			cmd.PrintErrln("get user position error:", err)
			return
		}

		bs, _ := json.MarshalIndent(summary, "", "    ")
		cmd.Println(string(bs))
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "show an account's health factor",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		userID, e := cmd.Flags().GetString("user")
		if e != nil || userID == "" {
			panic("invalid user")
		}

		database := provideDatabase()
		defer database.Close()

		// cached value first, compute on miss
		if hf, err := provideAccountStore().FindHealthFactor(ctx, userID); err == nil {
			cmd.Println(hf)
			return
		}

		hf, err := provideAccountService(database).CalculateHealthFactor(ctx, userID)
		if err != nil {
			cmd.PrintErrln("calculate health factor error:", err)
			return
		}

		cmd.Println(hf)
	},
}

func init() {
	rootCmd.AddCommand(positionCmd)
	rootCmd.AddCommand(healthCmd)

	positionCmd.Flags().StringP("user", "u", "", "account id")
	healthCmd.Flags().StringP("user", "u", "", "account id")
}
