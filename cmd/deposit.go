package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "deposit collateral into a market",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		userID, assetID, amount := ledgerArgs(cmd)

		database := provideDatabase()
		defer database.Close()

		if err := provideLedgerService(database).Deposit(ctx, userID, assetID, amount); err != nil {
			cmd.PrintErrln("deposit error:", err)
			return
		}
	},
}

var borrowCmd = &cobra.Command{
	Use:   "borrow",
	Short: "borrow against deposited collateral",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		userID, assetID, amount := ledgerArgs(cmd)

		database := provideDatabase()
		defer database.Close()

		if err := provideLedgerService(database).Borrow(ctx, userID, assetID, amount); err != nil {
			cmd.PrintErrln("borrow error:", err)
			return
		}
	},
}

func ledgerArgs(cmd *cobra.Command) (string, string, decimal.Decimal) {
	userID, e := cmd.Flags().GetString("user")
	if e != nil || userID == "" {
		panic("invalid user")
	}

	assetID, e := cmd.Flags().GetString("asset")
	if e != nil || assetID == "" {
		panic("invalid asset")
	}

	amountStr, e := cmd.Flags().GetString("amount")
	if e != nil {
		panic(e)
	}
	amount, e := decimal.NewFromString(amountStr)
	if e != nil || !amount.IsPositive() {
		panic("invalid amount")
	}

	return userID, assetID, amount
}

func init() {
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(borrowCmd)

	for _, c := range []*cobra.Command{depositCmd, borrowCmd} {
		c.Flags().StringP("user", "u", "", "account id")
		c.Flags().StringP("asset", "a", "", "asset id")
		c.Flags().StringP("amount", "q", "", "amount")
	}
}
