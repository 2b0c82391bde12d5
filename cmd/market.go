package cmd

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var marketsCmd = &cobra.Command{
	Use:     "markets",
	Aliases: []string{"m"},
	Short:   "show markets, assets and funding pool status",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := provideEthClient()
		defer client.Close()

		protocolReader := provideProtocolReader(client)
		assets := provideAssetService(client)
		auctions := provideAuctionService(protocolReader, nil, assets, nil)
		reports := provideReportService(protocolReader, assets, auctions)

		status, err := reports.MarketStatus(ctx)
		if err != nil {
			cmd.PrintErrln("market status error:", err)
			return
		}

		cmd.Printf("%d markets, %d assets\n", len(status.Markets), len(status.Assets))
		printJSON(cmd, status)
	},
}

var accountCmd = &cobra.Command{
	Use:     "account <address>",
	Aliases: []string{"acc"},
	Short:   "show balances of an account",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !common.IsHexAddress(args[0]) {
			cmd.PrintErrln("invalid address", args[0])
			return
		}

		ctx := cmd.Context()
		client := provideEthClient()
		defer client.Close()

		protocolReader := provideProtocolReader(client)
		assets := provideAssetService(client)
		auctions := provideAuctionService(protocolReader, nil, assets, nil)
		reports := provideReportService(protocolReader, assets, auctions)

		status, err := reports.AccountStatus(ctx, common.HexToAddress(args[0]))
		if err != nil {
			cmd.PrintErrln("account status error:", err)
			return
		}

		printJSON(cmd, status)
	},
}

func init() {
	rootCmd.AddCommand(marketsCmd)
	rootCmd.AddCommand(accountCmd)
}
