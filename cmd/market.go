package cmd

import (
	"encoding/json"

	"lever/core"
	"lever/pkg/id"

	"github.com/spf13/cobra"
)

var addMarketCmd = &cobra.Command{
	Use:     "add-market",
	Aliases: []string{"am"},
	Short:   "add or update a market",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetID, _ := cmd.Flags().GetString("asset")
		if assetID == "" {
			// derive a stable id from the symbol so re-running the
			// command targets the same market
			if symbol, _ := cmd.Flags().GetString("symbol"); symbol != "" {
				assetID = id.UUIDFromString(symbol)
			}
		}
		if assetID == "" {
			panic("invalid asset")
		}

		authority, e := cmd.Flags().GetString("authority")
		if e != nil || authority == "" {
			panic("invalid authority")
		}

		depositRate, _ := cmd.Flags().GetUint64("deposit-rate")
		borrowRate, _ := cmd.Flags().GetUint64("borrow-rate")
		ltv, _ := cmd.Flags().GetInt64("ltv")
		threshold, _ := cmd.Flags().GetInt64("liquidation-threshold")

		database := provideDatabase()
		defer database.Close()

		market := &core.Market{
			AssetID:              assetID,
			DepositRate:          depositRate,
			BorrowRate:           borrowRate,
			LoanToValue:          ltv,
			LiquidationThreshold: threshold,
		}

		if err := provideMarketService(database).CreateOrUpdate(ctx, authority, market); err != nil {
			cmd.PrintErrln("add market error:", err)
			return
		}

		bs, _ := json.MarshalIndent(market, "", "    ")
		cmd.Println(string(bs))
	},
}

var listMarketsCmd = &cobra.Command{
	Use:     "markets",
	Aliases: []string{"lm"},
	Short:   "list all markets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		markets, err := provideMarketStore(database).All(ctx)
		if err != nil {
			cmd.PrintErrln("list markets error:", err)
			return
		}

		bs, _ := json.MarshalIndent(markets, "", "    ")
		cmd.Println(string(bs))
	},
}

func init() {
	rootCmd.AddCommand(addMarketCmd)
	rootCmd.AddCommand(listMarketsCmd)

	addMarketCmd.Flags().StringP("asset", "a", "", "asset id")
	addMarketCmd.Flags().StringP("symbol", "s", "", "asset symbol, used to derive the asset id when --asset is absent")
	addMarketCmd.Flags().String("authority", "", "verified caller identity")
	addMarketCmd.Flags().Uint64("deposit-rate", 0, "deposit interest rate, stored only")
	addMarketCmd.Flags().Uint64("borrow-rate", 0, "borrow interest rate, stored only")
	addMarketCmd.Flags().Int64("ltv", 0, "loan to value, permille")
	addMarketCmd.Flags().Int64("liquidation-threshold", 0, "liquidation threshold, permille")
}
