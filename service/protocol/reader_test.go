package protocol

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/bmizerany/assert"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	hydroAddress = common.HexToAddress("0x241e82c79452f51fbfc89fac6d912e021db1a3b7")
	borrower     = common.HexToAddress("0x1A671e90dB05AF4B128Ac4faEF01F5A36De468ad")
	dai          = core.DaiAddress
)

// fakeCaller answers eth_call with pre-packed outputs keyed by method name
type fakeCaller struct {
	outputs map[string][]byte
	err     error
	calls   int
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	method, err := hydro.Hydro.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}

	return f.outputs[method.Name], nil
}

func pack(t *testing.T, method string, values ...interface{}) []byte {
	out, err := hydro.Hydro.Methods[method].Outputs.Pack(values...)
	require.Nil(t, err)
	return out
}

func TestReaderMarket(t *testing.T) {
	caller := &fakeCaller{outputs: map[string][]byte{
		"getMarket": pack(t, "getMarket", marketTuple{
			BaseAsset:            core.EtherAddress,
			QuoteAsset:           dai,
			LiquidateRate:        big.NewInt(1100),
			WithdrawRate:         big.NewInt(2000),
			AuctionRatioStart:    big.NewInt(1e16),
			AuctionRatioPerBlock: big.NewInt(1e16),
			BorrowEnable:         true,
		}),
	}}

	market, err := NewReader(hydroAddress, caller).Market(context.Background(), 0)
	require.Nil(t, err)
	assert.Equal(t, core.EtherAddress, market.BaseAsset)
	assert.Equal(t, dai, market.QuoteAsset)
	assert.Equal(t, "10000000000000000", market.AuctionRatioPerBlock.String())
	assert.Equal(t, true, market.BorrowEnable)
}

func TestReaderMarketNotFound(t *testing.T) {
	caller := &fakeCaller{outputs: map[string][]byte{
		"getMarket": pack(t, "getMarket", marketTuple{
			LiquidateRate:        new(big.Int),
			WithdrawRate:         new(big.Int),
			AuctionRatioStart:    new(big.Int),
			AuctionRatioPerBlock: new(big.Int),
		}),
	}}

	_, err := NewReader(hydroAddress, caller).Market(context.Background(), 9)
	require.True(t, errors.Is(err, core.ErrMarketNotFound))
}

func TestReaderAuction(t *testing.T) {
	caller := &fakeCaller{outputs: map[string][]byte{
		"getAuctionDetails": pack(t, "getAuctionDetails", auctionTuple{
			Borrower:             borrower,
			MarketID:             1,
			DebtAsset:            dai,
			CollateralAsset:      core.EtherAddress,
			LeftDebtAmount:       big.NewInt(100),
			LeftCollateralAmount: big.NewInt(200),
			Ratio:                big.NewInt(5e17),
			Price:                big.NewInt(0),
		}),
	}}

	auction, err := NewReader(hydroAddress, caller).Auction(context.Background(), 3)
	require.Nil(t, err)
	assert.Equal(t, uint32(3), auction.ID)
	assert.Equal(t, uint16(1), auction.MarketID)
	assert.Equal(t, borrower, auction.Borrower)
	assert.Equal(t, "200", auction.LeftCollateralAmount.String())
	assert.Equal(t, false, auction.Finished)
}

func TestReaderDecodeError(t *testing.T) {
	caller := &fakeCaller{outputs: map[string][]byte{}}

	_, err := NewReader(hydroAddress, caller).Auction(context.Background(), 3)
	require.True(t, errors.Is(err, core.ErrDecodeResult))
}

func TestReaderTransportErrorUnchanged(t *testing.T) {
	boom := errors.New("connection refused")
	caller := &fakeCaller{err: boom}

	_, err := NewReader(hydroAddress, caller).TotalSupply(context.Background(), dai)
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, caller.calls)
}

func TestReaderScalars(t *testing.T) {
	caller := &fakeCaller{outputs: map[string][]byte{
		"getAllMarketsCount": pack(t, "getAllMarketsCount", big.NewInt(2)),
		"getCurrentAuctions": pack(t, "getCurrentAuctions", []uint32{4, 7}),
		"getAuctionsCount":   pack(t, "getAuctionsCount", uint32(9)),
		"getInterestRates":   pack(t, "getInterestRates", big.NewInt(3), big.NewInt(2)),
	}}
	r := NewReader(hydroAddress, caller)
	ctx := context.Background()

	count, err := r.MarketsCount(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint16(2), count)

	ids, err := r.CurrentAuctions(ctx)
	require.Nil(t, err)
	assert.Equal(t, []uint32{4, 7}, ids)

	total, err := r.AuctionsCount(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint32(9), total)

	rates, err := r.InterestRates(ctx, dai, nil)
	require.Nil(t, err)
	assert.Equal(t, "3", rates.Borrow.String())
	assert.Equal(t, "2", rates.Supply.String())
}
