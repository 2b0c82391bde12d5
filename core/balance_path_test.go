package core

import (
	"errors"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestNewBalancePath(t *testing.T) {
	user := common.HexToAddress("0x31ebd457b999bf99759602f5ece5aa5033cb56b3")

	cases := map[string]struct {
		category BalancePathCategory
		marketID uint16
		want     BalancePath
	}{
		"trading": {
			category: BalancePathCategoryTrading,
			want:     BalancePath{Category: BalancePathCategoryTrading, User: user},
		},
		"trading ignores market": {
			category: BalancePathCategoryTrading,
			marketID: 7,
			want:     BalancePath{Category: BalancePathCategoryTrading, User: user},
		},
		"margin": {
			category: BalancePathCategoryMargin,
			marketID: 1,
			want:     BalancePath{Category: BalancePathCategoryMargin, MarketID: 1, User: user},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			path, err := NewBalancePath(user, c.category, c.marketID)
			require.Nil(t, err)
			assert.Equal(t, c.want, path)
		})
	}

	t.Run("invalid category", func(t *testing.T) {
		_, err := NewBalancePath(user, BalancePathCategory(2), 1)
		require.True(t, errors.Is(err, ErrInvalidCategory))
	})

	t.Run("helpers", func(t *testing.T) {
		assert.Equal(t, BalancePath{Category: BalancePathCategoryTrading, User: user}, TradingPath(user))
		assert.Equal(t, BalancePath{Category: BalancePathCategoryMargin, MarketID: 3, User: user}, MarginPath(user, 3))
	})
}
