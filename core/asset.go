package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	// EtherAddress placeholder address of the native asset
	EtherAddress = common.HexToAddress("0x000000000000000000000000000000000000000E")
	// DaiAddress DAI token, its symbol() returns bytes32
	DaiAddress = common.HexToAddress("0x89d24a6b4ccb1b6faa2625fe562bdd9a23260359")
)

const (
	// EtherDecimals decimals of the native asset
	EtherDecimals uint8 = 18
	// EtherSymbol symbol of the native asset
	EtherSymbol = "ETH"
	// DaiSymbol symbol of DAI
	DaiSymbol = "DAI"
)

// IsEther check if the address is the native asset placeholder
func IsEther(address common.Address) bool {
	return address == EtherAddress
}

// Asset asset struct
type Asset struct {
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol,omitempty"`
	Decimals uint8          `json:"decimals"`
}

// AssetInfo asset config registered in the protocol
type AssetInfo struct {
	LendingPoolToken common.Address `json:"lending_pool_token"`
	PriceOracle      common.Address `json:"price_oracle"`
	InterestModel    common.Address `json:"interest_model"`
}

// IAssetService asset metadata interface
//
// implementations may cache, every lookup is idempotent
type IAssetService interface {
	Decimals(ctx context.Context, address common.Address) (uint8, error)
	Symbol(ctx context.Context, address common.Address) (string, error)
	Find(ctx context.Context, address common.Address) (*Asset, error)
	// BalanceOf on-chain wallet balance of holder, native balance for ether
	BalanceOf(ctx context.Context, address, holder common.Address) (*big.Int, error)
}

// OraclePrice convert the raw oracle price to USD per whole token
//
// the oracle quotes 1e18 USD per smallest unit scaled by 1e18
func OraclePrice(raw *big.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -int32(36-int(decimals)))
}
