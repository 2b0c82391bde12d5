package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Fill fill history record
type Fill struct {
	ID               int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	TxHash           string          `sql:"size:66" json:"tx_hash,omitempty"`
	AuctionID        uint32          `json:"auction_id,omitempty"`
	Bidder           string          `sql:"size:42" json:"bidder,omitempty"`
	Status           FillStatus      `json:"status"`
	FillAmount       decimal.Decimal `sql:"type:decimal(78,0)" json:"fill_amount,omitempty"`
	FilledDebt       decimal.Decimal `sql:"type:decimal(78,0)" json:"filled_debt,omitempty"`
	FilledCollateral decimal.Decimal `sql:"type:decimal(78,0)" json:"filled_collateral,omitempty"`
	CreatedAt        time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

// IFillStore fill store interface
type IFillStore interface {
	Create(ctx context.Context, fill *Fill) error
	FindByTxHash(ctx context.Context, txHash string) (*Fill, bool, error)
	ListByAuction(ctx context.Context, auctionID uint32) ([]*Fill, error)
	List(ctx context.Context, fromID int64, limit int) ([]*Fill, error)
}
