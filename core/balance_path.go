package core

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// BalancePathCategory where funds live inside the protocol
type BalancePathCategory uint8

const (
	// BalancePathCategoryTrading trading balance, withdrawable any time
	BalancePathCategoryTrading BalancePathCategory = iota
	// BalancePathCategoryMargin margin balance of a single market
	BalancePathCategoryMargin
)

func (c BalancePathCategory) String() string {
	switch c {
	case BalancePathCategoryTrading:
		return "trading"
	case BalancePathCategoryMargin:
		return "margin"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Valid check the category is trading or margin
func (c BalancePathCategory) Valid() bool {
	return c == BalancePathCategoryTrading || c == BalancePathCategoryMargin
}

// BalancePath address of a balance inside the protocol
//
// the wallet itself has no balance path, it is reached by deposit and withdraw
type BalancePath struct {
	Category BalancePathCategory `json:"category"`
	MarketID uint16              `json:"market_id"`
	User     common.Address      `json:"user"`
}

// NewBalancePath resolve a balance path
//
// marketID is forced to 0 for the trading category whatever the caller passed
func NewBalancePath(user common.Address, category BalancePathCategory, marketID uint16) (BalancePath, error) {
	switch category {
	case BalancePathCategoryTrading:
		return BalancePath{Category: category, MarketID: 0, User: user}, nil
	case BalancePathCategoryMargin:
		return BalancePath{Category: category, MarketID: marketID, User: user}, nil
	default:
		return BalancePath{}, fmt.Errorf("%w: %d", ErrInvalidCategory, uint8(category))
	}
}

// TradingPath trading balance of user
func TradingPath(user common.Address) BalancePath {
	return BalancePath{Category: BalancePathCategoryTrading, User: user}
}

// MarginPath margin balance of user in market
func MarginPath(user common.Address, marketID uint16) BalancePath {
	return BalancePath{Category: BalancePathCategoryMargin, MarketID: marketID, User: user}
}

func (p BalancePath) String() string {
	if p.Category == BalancePathCategoryMargin {
		return fmt.Sprintf("%s:%d:%s", p.Category, p.MarketID, p.User.Hex())
	}

	return fmt.Sprintf("%s:%s", p.Category, p.User.Hex())
}
