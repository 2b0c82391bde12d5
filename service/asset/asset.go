package asset

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/bluele/gcache"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/singleflight"
)

// Backend erc20 calls and native balances
type Backend interface {
	bind.ContractCaller
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type service struct {
	backend Backend
	cache   gcache.Cache
	sf      *singleflight.Group
}

// New new asset service, decimals and symbols are cached for exp
func New(backend Backend, exp time.Duration) core.IAssetService {
	return &service{
		backend: backend,
		cache:   gcache.New(1024).LRU().Expiration(exp).Build(),
		sf:      &singleflight.Group{},
	}
}

func (s *service) Decimals(ctx context.Context, address common.Address) (uint8, error) {
	if core.IsEther(address) {
		return core.EtherDecimals, nil
	}

	v, err := s.cached(ctx, decimalsKey(address), func() (interface{}, error) {
		var decimals uint8
		if err := s.call(ctx, address, &decimals, "decimals"); err != nil {
			return nil, err
		}

		return decimals, nil
	})
	if err != nil {
		return 0, err
	}

	return v.(uint8), nil
}

func (s *service) Symbol(ctx context.Context, address common.Address) (string, error) {
	switch address {
	case core.EtherAddress:
		return core.EtherSymbol, nil
	case core.DaiAddress:
		return core.DaiSymbol, nil
	}

	v, err := s.cached(ctx, symbolKey(address), func() (interface{}, error) {
		var symbol string
		if err := s.call(ctx, address, &symbol, "symbol"); err != nil {
			return nil, err
		}

		return symbol, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (s *service) Find(ctx context.Context, address common.Address) (*core.Asset, error) {
	decimals, err := s.Decimals(ctx, address)
	if err != nil {
		return nil, err
	}

	symbol, err := s.Symbol(ctx, address)
	if err != nil {
		return nil, err
	}

	return &core.Asset{
		Address:  address,
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}

func (s *service) BalanceOf(ctx context.Context, address, holder common.Address) (*big.Int, error) {
	if core.IsEther(address) {
		return s.backend.BalanceAt(ctx, holder, nil)
	}

	var balance *big.Int
	if err := s.call(ctx, address, &balance, "balanceOf", holder); err != nil {
		return nil, err
	}

	return balance, nil
}

func (s *service) cached(ctx context.Context, key string, load func() (interface{}, error)) (interface{}, error) {
	if v, err := s.cache.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		v, err := load()
		if err != nil {
			return nil, err
		}

		_ = s.cache.Set(key, v)
		return v, nil
	})

	return v, err
}

func (s *service) call(ctx context.Context, token common.Address, out interface{}, method string, args ...interface{}) error {
	input, err := hydro.ERC20.Pack(method, args...)
	if err != nil {
		return err
	}

	output, err := s.backend.CallContract(ctx, ethereum.CallMsg{To: &token, Data: input}, nil)
	if err != nil {
		return err
	}

	if err := hydro.ERC20.UnpackIntoInterface(out, method, output); err != nil {
		return fmt.Errorf("%w: %s of %s: %v", core.ErrDecodeResult, method, token.Hex(), err)
	}

	return nil
}

func decimalsKey(address common.Address) string {
	return fmt.Sprintf("asset:decimals:%s", address.Hex())
}

func symbolKey(address common.Address) string {
	return fmt.Sprintf("asset:symbol:%s", address.Hex())
}
