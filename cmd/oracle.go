package cmd

import (
	"lever/core"
	"lever/pkg/number"
	"lever/pkg/sysconfig"

	"github.com/spf13/cobra"
)

var setPriceCmd = &cobra.Command{
	Use:   "set-price",
	Short: "register or overwrite a price source",
	Long:  "a fixed source takes --price; a delegated source takes --ref, the provider handle to resolve against",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid asset")
		}

		authority, e := cmd.Flags().GetString("authority")
		if e != nil || authority == "" {
			panic("invalid authority")
		}

		provider, _ := cmd.Flags().GetString("provider")
		if provider == "" {
			provider = core.RootPriceProvider
		}

		source := &core.PriceSource{
			Provider: provider,
			AssetID:  assetID,
		}

		if ref, _ := cmd.Flags().GetString("ref"); ref != "" {
			source.Type = core.PriceSourceTypeProvider
			source.Reference = ref
		} else {
			price, _ := cmd.Flags().GetString("price")
			source.Type = core.PriceSourceTypeFixed
			source.Price = number.Decimal(price)
		}

		database := provideDatabase()
		defer database.Close()

		if err := providePriceService(database).SetPriceSource(ctx, authority, source); err != nil {
			cmd.PrintErrln("set price source error:", err)
			return
		}
	},
}

var getPriceCmd = &cobra.Command{
	Use:   "get-price",
	Short: "resolve the current price of an asset",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid asset")
		}

		database := provideDatabase()
		defer database.Close()

		price, err := providePriceService(database).GetPrice(ctx, assetID)
		if err != nil {
			cmd.PrintErrln("get price error:", err)
			return
		}

		cmd.Println(price)
	},
}

var setOracleProviderCmd = &cobra.Command{
	Use:   "set-oracle-provider <provider>",
	Short: "set the active price provider",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		if err := sysconfig.WriteOracleProvider(ctx, providePropertyStore(database), args[0]); err != nil {
			cmd.PrintErrln("set oracle provider error:", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(setPriceCmd)
	rootCmd.AddCommand(getPriceCmd)
	rootCmd.AddCommand(setOracleProviderCmd)

	setPriceCmd.Flags().StringP("asset", "a", "", "asset id")
	setPriceCmd.Flags().String("authority", "", "verified caller identity")
	setPriceCmd.Flags().String("provider", "", "provider namespace to register in")
	setPriceCmd.Flags().StringP("price", "p", "0", "fixed price")
	setPriceCmd.Flags().String("ref", "", "delegated provider handle")

	getPriceCmd.Flags().StringP("asset", "a", "", "asset id")
}
