package asset

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/bmizerany/assert"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var usdc = common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")

type fakeBackend struct {
	mux   sync.Mutex
	calls map[string]int
	err   error
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	method, err := hydro.ERC20.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}

	f.mux.Lock()
	f.calls[method.Name]++
	f.mux.Unlock()

	switch method.Name {
	case "decimals":
		return method.Outputs.Pack(uint8(6))
	case "symbol":
		return method.Outputs.Pack("USDC")
	default:
		return method.Outputs.Pack(big.NewInt(42))
	}
}

func (f *fakeBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return big.NewInt(7), nil
}

func newFake() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}}
}

func TestEtherIsHardCoded(t *testing.T) {
	backend := newFake()
	s := New(backend, time.Minute)
	ctx := context.Background()

	decimals, err := s.Decimals(ctx, core.EtherAddress)
	require.Nil(t, err)
	assert.Equal(t, uint8(18), decimals)

	symbol, err := s.Symbol(ctx, core.EtherAddress)
	require.Nil(t, err)
	assert.Equal(t, "ETH", symbol)

	balance, err := s.BalanceOf(ctx, core.EtherAddress, usdc)
	require.Nil(t, err)
	assert.Equal(t, "7", balance.String())
	assert.Equal(t, 0, len(backend.calls))
}

func TestDaiSymbol(t *testing.T) {
	backend := newFake()
	symbol, err := New(backend, time.Minute).Symbol(context.Background(), core.DaiAddress)
	require.Nil(t, err)
	assert.Equal(t, "DAI", symbol)
	assert.Equal(t, 0, backend.calls["symbol"])
}

func TestDecimalsCached(t *testing.T) {
	backend := newFake()
	s := New(backend, time.Minute)
	ctx := context.Background()

	results := make(chan uint8, 10)
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decimals, _ := s.Decimals(ctx, usdc)
			results <- decimals
		}()
	}
	wg.Wait()
	close(results)

	for decimals := range results {
		assert.Equal(t, uint8(6), decimals)
	}

	asset, err := s.Find(ctx, usdc)
	require.Nil(t, err)
	assert.Equal(t, "USDC", asset.Symbol)
	assert.Equal(t, uint8(6), asset.Decimals)

	backend.mux.Lock()
	defer backend.mux.Unlock()
	require.True(t, backend.calls["decimals"] >= 1 && backend.calls["decimals"] <= 10)
	assert.Equal(t, 1, backend.calls["symbol"])
}

func TestErrorNotCached(t *testing.T) {
	boom := errors.New("timeout")
	backend := newFake()
	backend.err = boom
	s := New(backend, time.Minute)

	_, err := s.Decimals(context.Background(), usdc)
	assert.Equal(t, boom, err)

	backend.err = nil
	decimals, err := s.Decimals(context.Background(), usdc)
	require.Nil(t, err)
	assert.Equal(t, uint8(6), decimals)
}
