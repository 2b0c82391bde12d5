package cmd

import (
	"strconv"

	"hydro/core"

	"github.com/spf13/cobra"
)

var auctionsCmd = &cobra.Command{
	Use:   "auctions",
	Short: "show in-progress auctions",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := provideEthClient()
		defer client.Close()

		protocolReader := provideProtocolReader(client)
		assets := provideAssetService(client)
		auctions := provideAuctionService(protocolReader, nil, assets, nil)
		reports := provideReportService(protocolReader, assets, auctions)

		status, err := reports.AuctionStatus(ctx)
		if err != nil {
			cmd.PrintErrln("auction status error:", err)
			return
		}

		cmd.Printf("%d auctions happened in the past, %d in progress\n", status.Finished, len(status.InProgress))
		for _, view := range status.Orders {
			cmd.Printf("\nauction #%d\n", view.AuctionID)
			printFields(cmd, view)
		}

		for _, id := range status.Degenerate {
			cmd.Printf("\nauction #%d has no collateral left\n", id)
		}
	},
}

var auctionCmd = &cobra.Command{
	Use:   "auction <id>",
	Short: "show an auction as a limit order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseAuctionID(args[0])
		if err != nil {
			cmd.PrintErrln("invalid auction id", args[0])
			return
		}

		ctx := cmd.Context()
		client := provideEthClient()
		defer client.Close()

		protocolReader := provideProtocolReader(client)
		auctions := provideAuctionService(protocolReader, nil, provideAssetService(client), nil)

		view, err := auctions.ProjectByID(ctx, id)
		if err != nil {
			cmd.PrintErrln("project auction error:", err)
			return
		}

		printFields(cmd, view)
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill <id>",
	Short: "fill an auction with an amount of its debt asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseAuctionID(args[0])
		if err != nil {
			cmd.PrintErrln("invalid auction id", args[0])
			return
		}

		amount, _ := cmd.Flags().GetString("amount")

		ctx := cmd.Context()
		client := provideEthClient()
		defer client.Close()

		auth := provideTransactOpts()
		protocolReader := provideProtocolReader(client)
		assets := provideAssetService(client)
		auctions := provideAuctionService(protocolReader, provideProtocolTransactor(client, auth), assets, provideFillStore())

		a, err := protocolReader.Auction(ctx, id)
		if err != nil {
			cmd.PrintErrln("read auction error:", err)
			return
		}

		raw, err := rawAmount(ctx, assets, a.DebtAsset, amount)
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		result, err := auctions.Fill(ctx, auth.From, id, raw)
		if err != nil {
			if result != nil {
				cmd.PrintErrf("tx %s %s\n", result.TxHash.Hex(), result.Status)
			}

			cmd.PrintErrln("fill error:", err)
			return
		}

		cmd.Printf("tx %s %s\n", result.TxHash.Hex(), result.Status)
		if result.Status == core.FillStatusFilled {
			cmd.Printf("filled debt %s, got collateral %s\n",
				humanAmount(ctx, assets, a.DebtAsset, result.FilledDebt),
				humanAmount(ctx, assets, a.CollateralAsset, result.FilledCollateral))
		}
	},
}

func parseAuctionID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint32(id), err
}

func init() {
	rootCmd.AddCommand(auctionsCmd)
	rootCmd.AddCommand(auctionCmd)
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().StringP("amount", "q", "", "debt amount in human units")
}
