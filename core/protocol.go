package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// IProtocolReader read-only protocol state
type IProtocolReader interface {
	Address() common.Address

	MarketsCount(ctx context.Context) (uint16, error)
	Market(ctx context.Context, id uint16) (*Market, error)

	Asset(ctx context.Context, address common.Address) (*AssetInfo, error)
	AssetOraclePrice(ctx context.Context, address common.Address) (*big.Int, error)

	TotalBorrow(ctx context.Context, asset common.Address) (*big.Int, error)
	TotalSupply(ctx context.Context, asset common.Address) (*big.Int, error)
	InterestRates(ctx context.Context, asset common.Address, extraBorrowAmount *big.Int) (*InterestRates, error)
	InsuranceBalance(ctx context.Context, asset common.Address) (*big.Int, error)

	AuctionsCount(ctx context.Context) (uint32, error)
	CurrentAuctions(ctx context.Context) ([]uint32, error)
	Auction(ctx context.Context, id uint32) (*Auction, error)

	IsAccountLiquidatable(ctx context.Context, user common.Address, marketID uint16) (bool, error)
	AccountDetails(ctx context.Context, user common.Address, marketID uint16) (*AccountDetails, error)
	BalanceOf(ctx context.Context, asset, user common.Address) (*big.Int, error)
	MarketBalanceOf(ctx context.Context, marketID uint16, asset, user common.Address) (*big.Int, error)
	AmountSupplied(ctx context.Context, asset, user common.Address) (*big.Int, error)
	AmountBorrowed(ctx context.Context, asset, user common.Address, marketID uint16) (*big.Int, error)
}

// IProtocolTransactor transaction submission
//
// both calls block until the receipt is available
type IProtocolTransactor interface {
	Batch(ctx context.Context, opts *TxOptions, actions Batch) (*types.Receipt, error)
	FillAuctionWithAmount(ctx context.Context, opts *TxOptions, auctionID uint32, amount *big.Int) (*types.Receipt, error)
}
