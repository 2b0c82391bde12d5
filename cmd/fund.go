package cmd

import (
	"context"
	"math/big"
	"strings"

	"hydro/core"
	"hydro/service/fund"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
)

type fundFlags struct {
	asset  common.Address
	amount *big.Int
	market uint16
}

// submitFund resolve the common fund flags and submit with the configured wallet
func submitFund(cmd *cobra.Command, submit func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error)) {
	ctx := cmd.Context()

	asset, _ := cmd.Flags().GetString("asset")
	if !common.IsHexAddress(asset) {
		cmd.PrintErrln("invalid asset", asset)
		return
	}

	client := provideEthClient()
	defer client.Close()

	auth := provideTransactOpts()
	assets := provideAssetService(client)
	funds := provideFundService(provideProtocolTransactor(client, auth))

	f := fundFlags{asset: common.HexToAddress(asset)}
	f.market, _ = cmd.Flags().GetUint16("market")

	amount, _ := cmd.Flags().GetString("amount")
	raw, err := rawAmount(ctx, assets, f.asset, amount)
	if err != nil {
		cmd.PrintErrln(err)
		return
	}
	f.amount = raw

	receipt, err := submit(ctx, funds, &core.TxOptions{From: auth.From}, f)
	if err != nil {
		cmd.PrintErrln("submit error:", err)
		return
	}

	printReceipt(cmd, receipt)
}

func newFundCmd(use, short string, withMarket bool, submit func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			submitFund(cmd, submit)
		},
	}

	cmd.Flags().StringP("asset", "a", "", "asset address, 0x000000000000000000000000000000000000000E for ether")
	cmd.Flags().StringP("amount", "q", "", "amount in human units")
	if withMarket {
		cmd.Flags().Uint16P("market", "m", 0, "market id")
	}

	return cmd
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "transfer between trading and margin balances",
	Run: func(cmd *cobra.Command, args []string) {
		from, err := balancePathFlag(cmd, "from")
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		to, err := balancePathFlag(cmd, "to")
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		submitFund(cmd, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			fromPath, err := core.NewBalancePath(opts.From, from.category, from.market)
			if err != nil {
				return nil, err
			}

			toPath, err := core.NewBalancePath(opts.From, to.category, to.market)
			if err != nil {
				return nil, err
			}

			return funds.Transfer(ctx, opts, f.asset, fromPath, toPath, f.amount)
		})
	},
}

type pathFlag struct {
	category core.BalancePathCategory
	market   uint16
}

func balancePathFlag(cmd *cobra.Command, name string) (pathFlag, error) {
	category, _ := cmd.Flags().GetString(name)
	c, err := parseCategory(category)
	if err != nil {
		return pathFlag{}, err
	}

	market, _ := cmd.Flags().GetUint16(name + "-market")
	return pathFlag{category: c, market: market}, nil
}

var batchCmd = &cobra.Command{
	Use:   "batch <scenario>",
	Short: "run a multi-action batch: " + strings.Join(fund.ScenarioNames(), ", "),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, ok := fund.Scenarios[args[0]]
		if !ok {
			cmd.PrintErrln("unknown scenario", args[0])
			return
		}

		submitFund(cmd, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			actions, value, err := scenario(opts.From, f.market, f.asset, f.amount)
			if err != nil {
				return nil, err
			}

			opts.Value = value
			return funds.Batch(ctx, opts, actions...)
		})
	},
}

func init() {
	rootCmd.AddCommand(
		newFundCmd("deposit", "deposit from wallet into trading balance", false, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			return funds.Deposit(ctx, opts, f.asset, f.amount)
		}),
		newFundCmd("withdraw", "withdraw from trading balance into wallet", false, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			return funds.Withdraw(ctx, opts, f.asset, f.amount)
		}),
		newFundCmd("supply", "supply trading balance into funding pool", false, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			return funds.Supply(ctx, opts, f.asset, f.amount)
		}),
		newFundCmd("pool-withdraw", "withdraw from funding pool into trading balance", false, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			return funds.PoolWithdraw(ctx, opts, f.asset, f.amount)
		}),
		newFundCmd("borrow", "borrow from funding pool into margin balance", true, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			return funds.Borrow(ctx, opts, f.market, f.asset, f.amount)
		}),
		newFundCmd("repay", "repay margin debt into funding pool", true, func(ctx context.Context, funds core.IFundService, opts *core.TxOptions, f fundFlags) (*types.Receipt, error) {
			return funds.Repay(ctx, opts, f.market, f.asset, f.amount)
		}),
	)

	rootCmd.AddCommand(transferCmd)
	transferCmd.Flags().StringP("asset", "a", "", "asset address")
	transferCmd.Flags().StringP("amount", "q", "", "amount in human units")
	transferCmd.Flags().String("from", "trading", "source category, trading or margin")
	transferCmd.Flags().Uint16("from-market", 0, "source market id of a margin balance")
	transferCmd.Flags().String("to", "margin", "destination category, trading or margin")
	transferCmd.Flags().Uint16("to-market", 0, "destination market id of a margin balance")

	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringP("asset", "a", "", "asset address")
	batchCmd.Flags().StringP("amount", "q", "", "amount in human units")
	batchCmd.Flags().Uint16P("market", "m", 0, "market id")
}
