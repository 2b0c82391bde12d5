package auction

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/bmizerany/assert"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	usdc   = common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	bidder = common.HexToAddress("0x0000000000000000000000000000000000000b1d")
)

func e18(v int64, shift int32) *big.Int {
	return decimal.NewFromInt(v).Shift(18 - shift).BigInt()
}

type fakeReader struct {
	core.IProtocolReader
	auctions map[uint32]*core.Auction
	markets  map[uint16]*core.Market
}

func (f *fakeReader) Auction(ctx context.Context, id uint32) (*core.Auction, error) {
	a, ok := f.auctions[id]
	if !ok {
		return nil, core.ErrAuctionNotFound
	}

	return a, nil
}

func (f *fakeReader) Market(ctx context.Context, id uint16) (*core.Market, error) {
	m, ok := f.markets[id]
	if !ok {
		return nil, core.ErrMarketNotFound
	}

	return m, nil
}

type fakeAssets struct {
	core.IAssetService
	decimals map[common.Address]uint8
}

func (f *fakeAssets) Decimals(ctx context.Context, address common.Address) (uint8, error) {
	d, ok := f.decimals[address]
	if !ok {
		return 0, errors.New("unknown asset")
	}

	return d, nil
}

type fakeTransactor struct {
	core.IProtocolTransactor
	receipt *types.Receipt
	err     error

	opts   *core.TxOptions
	amount *big.Int
}

func (f *fakeTransactor) FillAuctionWithAmount(ctx context.Context, opts *core.TxOptions, auctionID uint32, amount *big.Int) (*types.Receipt, error) {
	f.opts = opts
	f.amount = amount
	return f.receipt, f.err
}

type fakeFills struct {
	core.IFillStore
	fills []*core.Fill
	err   error
}

func (f *fakeFills) Create(ctx context.Context, fill *core.Fill) error {
	if f.err != nil {
		return f.err
	}

	f.fills = append(f.fills, fill)
	return nil
}

func word(v int64) []byte {
	return common.LeftPadBytes(big.NewInt(v).Bytes(), 32)
}

func filledReceipt(debt, collateral int64) *types.Receipt {
	var data []byte
	for _, w := range [][]byte{word(1), word(0), word(debt), word(collateral), word(0)} {
		data = append(data, w...)
	}

	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		TxHash: common.HexToHash("0xf111"),
		Logs:   []*types.Log{{Topics: []common.Hash{hydro.AuctionFilledTopic}, Data: data}},
	}
}

func newReader() *fakeReader {
	return &fakeReader{
		auctions: map[uint32]*core.Auction{
			3: {
				ID:                   3,
				MarketID:             1,
				DebtAsset:            usdc,
				CollateralAsset:      core.EtherAddress,
				LeftDebtAmount:       big.NewInt(100_000_000),
				LeftCollateralAmount: e18(200, 0),
				Ratio:                e18(50, 2),
			},
		},
		markets: map[uint16]*core.Market{
			1: {ID: 1, BaseAsset: core.EtherAddress, QuoteAsset: usdc, AuctionRatioPerBlock: e18(1, 2)},
		},
	}
}

func newAssets() *fakeAssets {
	return &fakeAssets{decimals: map[common.Address]uint8{usdc: 6, core.EtherAddress: 18}}
}

func TestProjectByID(t *testing.T) {
	s := New(newReader(), nil, newAssets(), nil)

	view, err := s.ProjectByID(context.Background(), 3)
	require.Nil(t, err)
	assert.Equal(t, uint32(3), view.AuctionID)
	assert.Equal(t, "1", view.Price.String())
	assert.Equal(t, "100", view.MaxFillableDebt.String())
	assert.Equal(t, "0.5", view.Ratio.String())
	assert.Equal(t, "0.51", view.RatioNextBlock.String())
}

func TestProjectByIDErrors(t *testing.T) {
	reader := newReader()
	reader.auctions[4] = &core.Auction{ID: 4, MarketID: 9}

	cases := map[string]struct {
		id     uint32
		assets *fakeAssets
		err    error
	}{
		"auction not found": {id: 5, assets: newAssets(), err: core.ErrAuctionNotFound},
		"market not found":  {id: 4, assets: newAssets(), err: core.ErrMarketNotFound},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			s := New(reader, nil, c.assets, nil)
			_, err := s.ProjectByID(context.Background(), c.id)
			assert.Equal(t, true, errors.Is(err, c.err))
		})
	}
}

func TestProjectUnknownDecimals(t *testing.T) {
	reader := newReader()
	s := New(reader, nil, &fakeAssets{decimals: map[common.Address]uint8{}}, nil)

	_, err := s.Project(context.Background(), reader.auctions[3], reader.markets[1])
	require.NotNil(t, err)
}

func TestFill(t *testing.T) {
	transactor := &fakeTransactor{receipt: filledReceipt(30, 60)}
	fills := &fakeFills{}
	s := New(newReader(), transactor, newAssets(), fills)

	result, err := s.Fill(context.Background(), bidder, 3, big.NewInt(30))
	require.Nil(t, err)
	assert.Equal(t, core.FillStatusFilled, result.Status)
	assert.Equal(t, "30", result.FilledDebt.String())
	assert.Equal(t, "60", result.FilledCollateral.String())

	assert.Equal(t, bidder, transactor.opts.From)
	assert.Equal(t, "30", transactor.amount.String())

	require.Len(t, fills.fills, 1)
	assert.Equal(t, result.TxHash.Hex(), fills.fills[0].TxHash)
	assert.Equal(t, uint32(3), fills.fills[0].AuctionID)
	assert.Equal(t, "60", fills.fills[0].FilledCollateral.String())
}

func TestFillStatuses(t *testing.T) {
	cases := map[string]struct {
		receipt *types.Receipt
		status  core.FillStatus
	}{
		"reverted": {
			receipt: &types.Receipt{Status: types.ReceiptStatusFailed},
			status:  core.FillStatusReverted,
		},
		"event not found": {
			receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful},
			status:  core.FillStatusEventNotFound,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			s := New(newReader(), &fakeTransactor{receipt: c.receipt}, newAssets(), nil)
			result, err := s.Fill(context.Background(), bidder, 3, big.NewInt(1))
			require.Nil(t, err)
			assert.Equal(t, c.status, result.Status)
			assert.Equal(t, 0, result.FilledDebt.Sign())
			assert.Equal(t, 0, result.FilledCollateral.Sign())
		})
	}
}

func TestFillMalformedEventKeepsTxHash(t *testing.T) {
	receipt := filledReceipt(1, 2)
	receipt.Logs[0].Data = receipt.Logs[0].Data[:100]
	fills := &fakeFills{}
	s := New(newReader(), &fakeTransactor{receipt: receipt}, newAssets(), fills)

	result, err := s.Fill(context.Background(), bidder, 3, big.NewInt(1))
	require.True(t, errors.Is(err, core.ErrMalformedEvent))
	require.NotNil(t, result)
	assert.Equal(t, receipt.TxHash, result.TxHash)
	assert.Equal(t, core.FillStatusMalformedEvent, result.Status)

	require.Len(t, fills.fills, 1)
	assert.Equal(t, receipt.TxHash.Hex(), fills.fills[0].TxHash)
	assert.Equal(t, core.FillStatusMalformedEvent, fills.fills[0].Status)
}

func TestFillInvalidAmount(t *testing.T) {
	transactor := &fakeTransactor{}
	s := New(newReader(), transactor, newAssets(), nil)

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1)} {
		_, err := s.Fill(context.Background(), bidder, 3, amount)
		assert.Equal(t, true, errors.Is(err, core.ErrInvalidAmount))
	}

	assert.Equal(t, (*core.TxOptions)(nil), transactor.opts)
}

func TestFillTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	s := New(newReader(), &fakeTransactor{err: boom}, newAssets(), nil)

	_, err := s.Fill(context.Background(), bidder, 3, big.NewInt(1))
	assert.Equal(t, boom, err)
}

func TestFillStoreErrorIgnored(t *testing.T) {
	fills := &fakeFills{err: errors.New("db down")}
	s := New(newReader(), &fakeTransactor{receipt: filledReceipt(1, 2)}, newAssets(), fills)

	result, err := s.Fill(context.Background(), bidder, 3, big.NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, core.FillStatusFilled, result.Status)
}
