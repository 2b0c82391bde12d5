package fund

import (
	"context"
	"math/big"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fox-one/pkg/logger"
)

type service struct {
	transactor core.IProtocolTransactor
}

// New new fund service
func New(transactor core.IProtocolTransactor) core.IFundService {
	return &service{transactor: transactor}
}

// Batch submit the actions as one atomic protocol batch, in order
func (s *service) Batch(ctx context.Context, opts *core.TxOptions, actions ...core.FundAction) (*types.Receipt, error) {
	if opts == nil {
		opts = &core.TxOptions{}
	}

	batch, err := hydro.NewBatch(actions...)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).WithField("from", opts.From.Hex())
	receipt, err := s.transactor.Batch(ctx, opts, batch)
	if err != nil {
		log.WithError(err).Errorf("batch %d actions", len(batch))
		return nil, err
	}

	log.WithField("tx", receipt.TxHash.Hex()).Debugf("batch %d actions, status %d", len(batch), receipt.Status)
	return receipt, nil
}

func (s *service) single(ctx context.Context, opts *core.TxOptions, action core.FundAction, err error) (*types.Receipt, error) {
	if err != nil {
		return nil, err
	}

	return s.Batch(ctx, opts, action)
}

// Deposit the native asset has to be attached as value, it is filled in from amount when unset
func (s *service) Deposit(ctx context.Context, opts *core.TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error) {
	if opts == nil {
		opts = &core.TxOptions{}
	}

	action, err := hydro.DepositAction(asset, amount)
	if err == nil && core.IsEther(asset) && opts.Value == nil {
		o := *opts
		o.Value = amount
		opts = &o
	}

	return s.single(ctx, opts, action, err)
}

func (s *service) Withdraw(ctx context.Context, opts *core.TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error) {
	action, err := hydro.WithdrawAction(asset, amount)
	return s.single(ctx, opts, action, err)
}

func (s *service) Transfer(ctx context.Context, opts *core.TxOptions, asset common.Address, from, to core.BalancePath, amount *big.Int) (*types.Receipt, error) {
	action, err := hydro.TransferAction(asset, from, to, amount)
	return s.single(ctx, opts, action, err)
}

func (s *service) Borrow(ctx context.Context, opts *core.TxOptions, marketID uint16, asset common.Address, amount *big.Int) (*types.Receipt, error) {
	action, err := hydro.BorrowAction(marketID, asset, amount)
	return s.single(ctx, opts, action, err)
}

func (s *service) Repay(ctx context.Context, opts *core.TxOptions, marketID uint16, asset common.Address, amount *big.Int) (*types.Receipt, error) {
	action, err := hydro.RepayAction(marketID, asset, amount)
	return s.single(ctx, opts, action, err)
}

func (s *service) Supply(ctx context.Context, opts *core.TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error) {
	action, err := hydro.SupplyAction(asset, amount)
	return s.single(ctx, opts, action, err)
}

// PoolWithdraw take supplied funds back from the funding pool
func (s *service) PoolWithdraw(ctx context.Context, opts *core.TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error) {
	action, err := hydro.UnsupplyAction(asset, amount)
	return s.single(ctx, opts, action, err)
}
