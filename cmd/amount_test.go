package cmd

import (
	"context"
	"errors"
	"testing"

	"hydro/core"

	"github.com/bmizerany/assert"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type fakeAssets struct {
	core.IAssetService
}

func (f *fakeAssets) Decimals(ctx context.Context, address common.Address) (uint8, error) {
	if core.IsEther(address) {
		return 18, nil
	}

	return 6, nil
}

func TestRawAmount(t *testing.T) {
	usdc := common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	ctx := context.Background()

	raw, err := rawAmount(ctx, &fakeAssets{}, usdc, "1.5")
	require.Nil(t, err)
	assert.Equal(t, "1500000", raw.String())

	raw, err = rawAmount(ctx, &fakeAssets{}, core.EtherAddress, "0.01")
	require.Nil(t, err)
	assert.Equal(t, "10000000000000000", raw.String())

	for _, amount := range []string{"", "abc", "0", "-1", "0.0000001"} {
		_, err := rawAmount(ctx, &fakeAssets{}, usdc, amount)
		assert.Equal(t, true, errors.Is(err, core.ErrInvalidAmount))
	}
}

func TestParseCategory(t *testing.T) {
	c, err := parseCategory("margin")
	require.Nil(t, err)
	assert.Equal(t, core.BalancePathCategoryMargin, c)

	c, err = parseCategory("trading")
	require.Nil(t, err)
	assert.Equal(t, core.BalancePathCategoryTrading, c)

	_, err = parseCategory("wallet")
	assert.Equal(t, true, errors.Is(err, core.ErrInvalidCategory))
}
