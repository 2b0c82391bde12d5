package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Auction in-progress liquidation, amounts are raw integers
type Auction struct {
	ID                   uint32         `json:"id"`
	MarketID             uint16         `json:"market_id"`
	Borrower             common.Address `json:"borrower"`
	DebtAsset            common.Address `json:"debt_asset"`
	CollateralAsset      common.Address `json:"collateral_asset"`
	LeftDebtAmount       *big.Int       `json:"left_debt_amount"`
	LeftCollateralAmount *big.Int       `json:"left_collateral_amount"`
	// Ratio grows by the market's AuctionRatioPerBlock every block, scaled by 1e18
	Ratio    *big.Int `json:"ratio"`
	Price    *big.Int `json:"price"`
	Finished bool     `json:"finished"`
}

// OrderView an auction seen as a limit order selling collateral for debt
type OrderView struct {
	AuctionID       uint32         `json:"auction_id"`
	DebtAsset       common.Address `json:"debt_asset"`
	CollateralAsset common.Address `json:"collateral_asset"`
	// Price debt per collateral, zero while PriceUnbounded
	Price                    decimal.Decimal `json:"price"`
	PriceUnbounded           bool            `json:"price_unbounded,omitempty"`
	MaxFillableDebt          decimal.Decimal `json:"max_fillable_debt"`
	PriceNextBlock           decimal.Decimal `json:"price_next_block"`
	PriceNextBlockUnbounded  bool            `json:"price_next_block_unbounded,omitempty"`
	MaxFillableDebtNextBlock decimal.Decimal `json:"max_fillable_debt_next_block"`
	Ratio                    decimal.Decimal `json:"ratio"`
	RatioNextBlock           decimal.Decimal `json:"ratio_next_block"`
	RatioPerBlock            decimal.Decimal `json:"ratio_per_block"`
}

// FillStatus outcome of a fill submission
type FillStatus int

const (
	// FillStatusFilled AuctionFilled event decoded
	FillStatusFilled FillStatus = iota
	// FillStatusReverted receipt reports failure
	FillStatusReverted
	// FillStatusEventNotFound receipt succeeded without an AuctionFilled event
	FillStatusEventNotFound
	// FillStatusMalformedEvent receipt succeeded, the AuctionFilled data can not be decoded
	FillStatusMalformedEvent
)

func (s FillStatus) String() string {
	switch s {
	case FillStatusFilled:
		return "filled"
	case FillStatusReverted:
		return "reverted"
	case FillStatusEventNotFound:
		return "event_not_found"
	case FillStatusMalformedEvent:
		return "malformed_event"
	default:
		return "unknown"
	}
}

// FilledResult raw amounts settled by a fill
type FilledResult struct {
	TxHash           common.Hash `json:"tx_hash"`
	Status           FillStatus  `json:"status"`
	FilledDebt       *big.Int    `json:"filled_debt"`
	FilledCollateral *big.Int    `json:"filled_collateral"`
}

// IAuctionService auction valuation and fill interface
type IAuctionService interface {
	Project(ctx context.Context, auction *Auction, market *Market) (*OrderView, error)
	ProjectByID(ctx context.Context, auctionID uint32) (*OrderView, error)
	Fill(ctx context.Context, bidder common.Address, auctionID uint32, fillAmount *big.Int) (*FilledResult, error)
}
