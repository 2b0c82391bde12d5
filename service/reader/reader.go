package reader

import (
	"context"
	"errors"
	"math/big"

	"hydro/core"
	"hydro/pkg/concurrency"
	"hydro/pkg/number"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
)

type service struct {
	protocol core.IProtocolReader
	assets   core.IAssetService
	auctions core.IAuctionService
}

// New new report service
func New(
	protocol core.IProtocolReader,
	assets core.IAssetService,
	auctions core.IAuctionService,
) core.IReportService {
	return &service{
		protocol: protocol,
		assets:   assets,
		auctions: auctions,
	}
}

func (s *service) markets(ctx context.Context) ([]*core.Market, error) {
	count, err := s.protocol.MarketsCount(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint16, count)
	for idx := range ids {
		ids[idx] = uint16(idx)
	}

	return concurrency.Map(ctx, concurrency.DefaultMax, ids, s.protocol.Market)
}

// marketAssets base and quote assets of all markets, in order of first appearance
func marketAssets(markets []*core.Market) []common.Address {
	var (
		assets []common.Address
		seen   = map[common.Address]bool{}
	)

	for _, market := range markets {
		for _, asset := range market.Assets() {
			if !seen[asset] {
				seen[asset] = true
				assets = append(assets, asset)
			}
		}
	}

	return assets
}

func (s *service) MarketStatus(ctx context.Context) (*core.MarketStatus, error) {
	markets, err := s.markets(ctx)
	if err != nil {
		return nil, err
	}

	assets, err := concurrency.Map(ctx, concurrency.DefaultMax, marketAssets(markets), s.assetStatus)
	if err != nil {
		return nil, err
	}

	return &core.MarketStatus{
		Markets: markets,
		Assets:  assets,
	}, nil
}

func (s *service) assetStatus(ctx context.Context, address common.Address) (*core.AssetStatus, error) {
	var (
		asset                                   *core.Asset
		info                                    *core.AssetInfo
		rates                                   *core.InterestRates
		price, supply, borrow, insurance, stock *big.Int
	)

	err := concurrency.Await(ctx, concurrency.DefaultMax,
		func(ctx context.Context) (err error) {
			asset, err = s.assets.Find(ctx, address)
			return
		},
		func(ctx context.Context) (err error) {
			info, err = s.protocol.Asset(ctx, address)
			return
		},
		func(ctx context.Context) (err error) {
			price, err = s.protocol.AssetOraclePrice(ctx, address)
			return
		},
		func(ctx context.Context) (err error) {
			supply, err = s.protocol.TotalSupply(ctx, address)
			return
		},
		func(ctx context.Context) (err error) {
			borrow, err = s.protocol.TotalBorrow(ctx, address)
			return
		},
		func(ctx context.Context) (err error) {
			rates, err = s.protocol.InterestRates(ctx, address, new(big.Int))
			return
		},
		func(ctx context.Context) (err error) {
			insurance, err = s.protocol.InsuranceBalance(ctx, address)
			return
		},
		func(ctx context.Context) (err error) {
			stock, err = s.assets.BalanceOf(ctx, address, s.protocol.Address())
			return
		},
	)
	if err != nil {
		return nil, err
	}

	return &core.AssetStatus{
		Asset:            *asset,
		Info:             info,
		OraclePrice:      core.OraclePrice(price, asset.Decimals),
		TotalSupply:      number.ToHuman(supply, asset.Decimals),
		TotalBorrow:      number.ToHuman(borrow, asset.Decimals),
		BorrowRate:       number.Percentage(rates.Borrow),
		SupplyRate:       number.Percentage(rates.Supply),
		InsuranceBalance: number.ToHuman(insurance, asset.Decimals),
		ContractBalance:  number.ToHuman(stock, asset.Decimals),
	}, nil
}

func (s *service) AccountStatus(ctx context.Context, user common.Address) (*core.AccountStatus, error) {
	markets, err := s.markets(ctx)
	if err != nil {
		return nil, err
	}

	list, err := concurrency.Map(ctx, concurrency.DefaultMax, marketAssets(markets), s.assets.Find)
	if err != nil {
		return nil, err
	}

	assets := make(map[common.Address]*core.Asset, len(list))
	for _, asset := range list {
		assets[asset.Address] = asset
	}

	status := &core.AccountStatus{User: user}
	err = concurrency.Await(ctx, 3,
		func(ctx context.Context) (err error) {
			status.Margins, err = concurrency.Map(ctx, concurrency.DefaultMax, markets, func(ctx context.Context, market *core.Market) (*core.MarginStatus, error) {
				return s.marginStatus(ctx, user, market, assets)
			})
			return
		},
		func(ctx context.Context) (err error) {
			status.Trading, err = concurrency.Map(ctx, concurrency.DefaultMax, list, func(ctx context.Context, asset *core.Asset) (*core.AssetAmount, error) {
				return amountOf(asset)(s.protocol.BalanceOf(ctx, asset.Address, user))
			})
			return
		},
		func(ctx context.Context) (err error) {
			status.Supplied, err = concurrency.Map(ctx, concurrency.DefaultMax, list, func(ctx context.Context, asset *core.Asset) (*core.AssetAmount, error) {
				return amountOf(asset)(s.protocol.AmountSupplied(ctx, asset.Address, user))
			})
			return
		},
	)
	if err != nil {
		return nil, err
	}

	return status, nil
}

func amountOf(asset *core.Asset) func(raw *big.Int, err error) (*core.AssetAmount, error) {
	return func(raw *big.Int, err error) (*core.AssetAmount, error) {
		if err != nil {
			return nil, err
		}

		return &core.AssetAmount{Asset: *asset, Amount: number.ToHuman(raw, asset.Decimals)}, nil
	}
}

func (s *service) marginStatus(ctx context.Context, user common.Address, market *core.Market, assets map[common.Address]*core.Asset) (*core.MarginStatus, error) {
	status := &core.MarginStatus{MarketID: market.ID}
	base, quote := assets[market.BaseAsset], assets[market.QuoteAsset]

	amount := func(dst *core.AssetAmount, asset *core.Asset, load func(ctx context.Context) (*big.Int, error)) concurrency.Task {
		return func(ctx context.Context) error {
			v, err := amountOf(asset)(load(ctx))
			if err != nil {
				return err
			}

			*dst = *v
			return nil
		}
	}

	err := concurrency.Await(ctx, concurrency.DefaultMax,
		func(ctx context.Context) (err error) {
			status.Liquidatable, err = s.protocol.IsAccountLiquidatable(ctx, user, market.ID)
			return
		},
		func(ctx context.Context) (err error) {
			status.Details, err = s.protocol.AccountDetails(ctx, user, market.ID)
			return
		},
		amount(&status.BaseBalance, base, func(ctx context.Context) (*big.Int, error) {
			return s.protocol.MarketBalanceOf(ctx, market.ID, base.Address, user)
		}),
		amount(&status.QuoteBalance, quote, func(ctx context.Context) (*big.Int, error) {
			return s.protocol.MarketBalanceOf(ctx, market.ID, quote.Address, user)
		}),
		amount(&status.BaseDebt, base, func(ctx context.Context) (*big.Int, error) {
			return s.protocol.AmountBorrowed(ctx, base.Address, user, market.ID)
		}),
		amount(&status.QuoteDebt, quote, func(ctx context.Context) (*big.Int, error) {
			return s.protocol.AmountBorrowed(ctx, quote.Address, user, market.ID)
		}),
	)
	if err != nil {
		return nil, err
	}

	return status, nil
}

func (s *service) AuctionStatus(ctx context.Context) (*core.AuctionStatus, error) {
	status := &core.AuctionStatus{}
	err := concurrency.Await(ctx, 2,
		func(ctx context.Context) (err error) {
			status.Total, err = s.protocol.AuctionsCount(ctx)
			return
		},
		func(ctx context.Context) (err error) {
			status.InProgress, err = s.protocol.CurrentAuctions(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	if n := uint32(len(status.InProgress)); status.Total > n {
		status.Finished = status.Total - n
	}

	views, err := concurrency.Map(ctx, concurrency.DefaultMax, status.InProgress, s.projectAuction)
	if err != nil {
		return nil, err
	}

	status.Orders = make([]*core.OrderView, 0, len(views))
	for idx, view := range views {
		if view == nil {
			status.Degenerate = append(status.Degenerate, status.InProgress[idx])
			continue
		}

		status.Orders = append(status.Orders, view)
	}

	return status, nil
}

// projectAuction nil view for a degenerate auction
func (s *service) projectAuction(ctx context.Context, id uint32) (*core.OrderView, error) {
	view, err := s.auctions.ProjectByID(ctx, id)
	if errors.Is(err, core.ErrDegenerateAuction) {
		logger.FromContext(ctx).WithField("auction", id).Warnln("degenerate auction, no collateral left")
		return nil, nil
	}

	return view, err
}
