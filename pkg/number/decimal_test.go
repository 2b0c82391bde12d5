package number

import (
	"math/big"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToHuman(t *testing.T) {
	data := []struct {
		raw      string
		decimals uint8
		human    string
	}{
		{"1000000000000000000", 18, "1"},
		{"500000000000000000", 18, "0.5"},
		{"1234567", 6, "1.234567"},
		{"1", 18, "0.000000000000000001"},
		{"42", 0, "42"},
		{"0", 8, "0"},
	}

	for _, d := range data {
		t.Run(d.raw, func(t *testing.T) {
			raw, ok := new(big.Int).SetString(d.raw, 10)
			require.True(t, ok)
			assert.Equal(t, d.human, ToHuman(raw, d.decimals).String())
		})
	}
}

func TestToHumanMaxUint256(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	human := ToHuman(max, 18)
	assert.Equal(t, max.String(), ToRaw(human, 18).String())
}

func TestToRawTruncates(t *testing.T) {
	data := map[string]string{
		"1.9999999": "1999999",
		"0.0000001": "0",
		"-1.5000009": "-1500000",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, v, ToRaw(decimal.RequireFromString(k), 6).String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{"0", "1", "999", "123456789012345678901234567890", "100000000000000000000"}
	for _, v := range values {
		raw, _ := new(big.Int).SetString(v, 10)
		for d := uint8(0); d <= 18; d++ {
			require.Equal(t, raw.String(), ToRaw(ToHuman(raw, d), d).String(), "decimals %d", d)
		}
	}
}

func TestPercentage(t *testing.T) {
	raw, _ := new(big.Int).SetString("50000000000000000", 10)
	assert.Equal(t, "5", Percentage(raw).String())
	assert.Equal(t, true, Ratio(raw).Equal(decimal.RequireFromString("0.05")))
}
