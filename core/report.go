package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type (
	// AssetStatus asset metadata with its funding pool state, amounts are human scale
	AssetStatus struct {
		Asset
		Info             *AssetInfo      `json:"info,omitempty"`
		OraclePrice      decimal.Decimal `json:"oracle_price"`
		TotalSupply      decimal.Decimal `json:"total_supply"`
		TotalBorrow      decimal.Decimal `json:"total_borrow"`
		BorrowRate       decimal.Decimal `json:"borrow_rate"`
		SupplyRate       decimal.Decimal `json:"supply_rate"`
		InsuranceBalance decimal.Decimal `json:"insurance_balance"`
		// ContractBalance amount held by the protocol contract
		ContractBalance decimal.Decimal `json:"contract_balance"`
	}

	// MarketStatus global protocol status
	MarketStatus struct {
		Markets []*Market      `json:"markets"`
		Assets  []*AssetStatus `json:"assets"`
	}

	// AssetAmount human scale amount of one asset
	AssetAmount struct {
		Asset
		Amount decimal.Decimal `json:"amount"`
	}

	// MarginStatus a user's margin account in one market
	MarginStatus struct {
		MarketID     uint16          `json:"market_id"`
		Liquidatable bool            `json:"liquidatable"`
		Details      *AccountDetails `json:"details,omitempty"`
		BaseBalance  AssetAmount     `json:"base_balance"`
		QuoteBalance AssetAmount     `json:"quote_balance"`
		BaseDebt     AssetAmount     `json:"base_debt"`
		QuoteDebt    AssetAmount     `json:"quote_debt"`
	}

	// AccountStatus a user's balances across the protocol
	AccountStatus struct {
		User     common.Address  `json:"user"`
		Margins  []*MarginStatus `json:"margins"`
		Trading  []*AssetAmount  `json:"trading"`
		Supplied []*AssetAmount  `json:"supplied"`
	}

	// AuctionStatus auctions overview
	//
	// in-progress auctions with no collateral left have no order view and are listed in Degenerate
	AuctionStatus struct {
		Total      uint32       `json:"total"`
		InProgress []uint32     `json:"in_progress"`
		Finished   uint32       `json:"finished"`
		Orders     []*OrderView `json:"orders"`
		Degenerate []uint32     `json:"degenerate,omitempty"`
	}

	// IReportService status reports
	IReportService interface {
		MarketStatus(ctx context.Context) (*MarketStatus, error)
		AccountStatus(ctx context.Context, user common.Address) (*AccountStatus, error)
		AuctionStatus(ctx context.Context) (*AuctionStatus, error)
	}
)
