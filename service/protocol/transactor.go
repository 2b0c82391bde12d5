package protocol

import (
	"context"
	"fmt"
	"math/big"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fox-one/pkg/logger"
)

// Backend node connection used to submit and wait transactions
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

type transactor struct {
	backend  Backend
	contract *bind.BoundContract
	auth     *bind.TransactOpts
}

// NewTransactor new protocol transactor signing with auth
func NewTransactor(address common.Address, backend Backend, auth *bind.TransactOpts) core.IProtocolTransactor {
	return &transactor{
		backend:  backend,
		contract: bind.NewBoundContract(address, hydro.Hydro, backend, backend, backend),
		auth:     auth,
	}
}

// transact submits once and waits for the receipt, nothing is retried
func (t *transactor) transact(ctx context.Context, opts *core.TxOptions, method string, args ...interface{}) (*types.Receipt, error) {
	auth := *t.auth
	auth.Context = ctx
	if opts != nil {
		if opts.From != (common.Address{}) && opts.From != auth.From {
			return nil, fmt.Errorf("%w: %s", core.ErrSenderMismatch, opts.From.Hex())
		}

		auth.Value = opts.Value
	}

	tx, err := t.contract.Transact(&auth, method, args...)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).WithField("tx", tx.Hash().Hex())
	log.Infoln("submitted", method)

	receipt, err := bind.WaitMined(ctx, t.backend, tx)
	if err != nil {
		return nil, err
	}

	log.WithField("status", receipt.Status).Debugln("mined", method)
	return receipt, nil
}

func (t *transactor) Batch(ctx context.Context, opts *core.TxOptions, actions core.Batch) (*types.Receipt, error) {
	if len(actions) == 0 {
		return nil, core.ErrEmptyBatch
	}

	return t.transact(ctx, opts, "batch", hydro.BatchArgs(actions))
}

func (t *transactor) FillAuctionWithAmount(ctx context.Context, opts *core.TxOptions, auctionID uint32, amount *big.Int) (*types.Receipt, error) {
	return t.transact(ctx, opts, "fillAuctionWithAmount", auctionID, amount)
}
