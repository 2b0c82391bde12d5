package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Market margin market info
//
// rates are fixed point numbers scaled by 1e18
type Market struct {
	ID                   uint16         `json:"id"`
	BaseAsset            common.Address `json:"base_asset"`
	QuoteAsset           common.Address `json:"quote_asset"`
	LiquidateRate        *big.Int       `json:"liquidate_rate"`
	WithdrawRate         *big.Int       `json:"withdraw_rate"`
	AuctionRatioStart    *big.Int       `json:"auction_ratio_start"`
	AuctionRatioPerBlock *big.Int       `json:"auction_ratio_per_block"`
	BorrowEnable         bool           `json:"borrow_enable"`
}

// Assets base and quote asset of the market
func (m *Market) Assets() []common.Address {
	return []common.Address{m.BaseAsset, m.QuoteAsset}
}

// InterestRates funding pool interest rates, scaled by 1e18
type InterestRates struct {
	Borrow *big.Int `json:"borrow"`
	Supply *big.Int `json:"supply"`
}

// AccountDetails margin account summary
type AccountDetails struct {
	Liquidatable          bool     `json:"liquidatable"`
	Status                uint8    `json:"status"`
	DebtsTotalUSDValue    *big.Int `json:"debts_total_usd_value"`
	BalancesTotalUSDValue *big.Int `json:"balances_total_usd_value"`
}
