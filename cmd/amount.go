package cmd

import (
	"context"
	"fmt"
	"math/big"

	"hydro/core"
	"hydro/pkg/number"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// rawAmount convert a human amount of asset to its raw integer
func rawAmount(ctx context.Context, assets core.IAssetService, asset common.Address, amount string) (*big.Int, error) {
	human, err := decimal.NewFromString(amount)
	if err != nil || !human.IsPositive() {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidAmount, amount)
	}

	decimals, err := assets.Decimals(ctx, asset)
	if err != nil {
		return nil, err
	}

	raw := number.ToRaw(human, decimals)
	if raw.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q is below the precision of %d decimals", core.ErrInvalidAmount, amount, decimals)
	}

	return raw, nil
}

// humanAmount falls back to the raw amount when decimals are unavailable
func humanAmount(ctx context.Context, assets core.IAssetService, asset common.Address, raw *big.Int) string {
	decimals, err := assets.Decimals(ctx, asset)
	if err != nil {
		return raw.String()
	}

	return number.ToHuman(raw, decimals).String()
}

func parseCategory(s string) (core.BalancePathCategory, error) {
	for _, c := range []core.BalancePathCategory{core.BalancePathCategoryTrading, core.BalancePathCategoryMargin} {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", core.ErrInvalidCategory, s)
}
