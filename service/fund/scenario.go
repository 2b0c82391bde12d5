package fund

import (
	"math/big"
	"sort"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/ethereum/go-ethereum/common"
)

// Scenario build a multi-action batch moving amount of asset for user,
// value is the ether to attach, nil when nothing leaves the wallet as ether
type Scenario func(user common.Address, marketID uint16, asset common.Address, amount *big.Int) (actions []core.FundAction, value *big.Int, err error)

// Scenarios named batches
var Scenarios = map[string]Scenario{
	"wallet-to-pool":   WalletToPool,
	"pool-to-margin":   PoolToMargin,
	"margin-to-wallet": MarginToWallet,
}

// ScenarioNames sorted scenario names
func ScenarioNames() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func collect(actions ...func() (core.FundAction, error)) ([]core.FundAction, error) {
	list := make([]core.FundAction, 0, len(actions))
	for _, fn := range actions {
		action, err := fn()
		if err != nil {
			return nil, err
		}

		list = append(list, action)
	}

	return list, nil
}

// WalletToPool deposit then supply, the funds end up in the funding pool
func WalletToPool(user common.Address, marketID uint16, asset common.Address, amount *big.Int) ([]core.FundAction, *big.Int, error) {
	actions, err := collect(
		func() (core.FundAction, error) { return hydro.DepositAction(asset, amount) },
		func() (core.FundAction, error) { return hydro.SupplyAction(asset, amount) },
	)
	if err != nil {
		return nil, nil, err
	}

	var value *big.Int
	if core.IsEther(asset) {
		value = amount
	}

	return actions, value, nil
}

// PoolToMargin take funds out of the pool and use them as collateral in market
func PoolToMargin(user common.Address, marketID uint16, asset common.Address, amount *big.Int) ([]core.FundAction, *big.Int, error) {
	actions, err := collect(
		func() (core.FundAction, error) { return hydro.UnsupplyAction(asset, amount) },
		func() (core.FundAction, error) {
			return hydro.TransferAction(asset, core.TradingPath(user), core.MarginPath(user, marketID), amount)
		},
	)

	return actions, nil, err
}

// MarginToWallet move collateral of market back to the wallet
func MarginToWallet(user common.Address, marketID uint16, asset common.Address, amount *big.Int) ([]core.FundAction, *big.Int, error) {
	actions, err := collect(
		func() (core.FundAction, error) {
			return hydro.TransferAction(asset, core.MarginPath(user, marketID), core.TradingPath(user), amount)
		},
		func() (core.FundAction, error) { return hydro.WithdrawAction(asset, amount) },
	)

	return actions, nil, err
}
