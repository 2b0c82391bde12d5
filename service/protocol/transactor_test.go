package protocol

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"hydro/core"
	"hydro/internal/hydro"

	"github.com/bmizerany/assert"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	Backend
	sent []*types.Transaction
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: txHash}, nil
}

func newAuth(t *testing.T) *bind.TransactOpts {
	key, err := crypto.GenerateKey()
	require.Nil(t, err)

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	require.Nil(t, err)

	auth.GasPrice = big.NewInt(1)
	auth.GasLimit = 300000
	return auth
}

func TestTransactorBatch(t *testing.T) {
	backend := &fakeBackend{}
	auth := newAuth(t)
	transactor := NewTransactor(hydroAddress, backend, auth)

	deposit, err := hydro.DepositAction(core.EtherAddress, big.NewInt(5))
	require.Nil(t, err)

	receipt, err := transactor.Batch(context.Background(), &core.TxOptions{From: auth.From, Value: big.NewInt(5)}, core.Batch{deposit})
	require.Nil(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, tx.Hash(), receipt.TxHash)
	assert.Equal(t, hydroAddress, *tx.To())
	assert.Equal(t, "5", tx.Value().String())

	method, err := hydro.Hydro.MethodById(tx.Data()[:4])
	require.Nil(t, err)
	assert.Equal(t, "batch", method.Name)

	// the shared auth is never mutated
	assert.Equal(t, (*big.Int)(nil), auth.Value)
}

func TestTransactorFill(t *testing.T) {
	backend := &fakeBackend{}
	auth := newAuth(t)
	transactor := NewTransactor(hydroAddress, backend, auth)

	_, err := transactor.FillAuctionWithAmount(context.Background(), &core.TxOptions{From: auth.From}, 3, big.NewInt(30))
	require.Nil(t, err)
	require.Len(t, backend.sent, 1)

	data := backend.sent[0].Data()
	method, err := hydro.Hydro.MethodById(data[:4])
	require.Nil(t, err)
	assert.Equal(t, "fillAuctionWithAmount", method.Name)

	args, err := method.Inputs.Unpack(data[4:])
	require.Nil(t, err)
	assert.Equal(t, uint32(3), args[0])
	assert.Equal(t, "30", args[1].(*big.Int).String())
	assert.Equal(t, 0, backend.sent[0].Value().Sign())
}

func TestTransactorRejects(t *testing.T) {
	backend := &fakeBackend{}
	transactor := NewTransactor(hydroAddress, backend, newAuth(t))

	_, err := transactor.Batch(context.Background(), &core.TxOptions{}, nil)
	assert.Equal(t, true, errors.Is(err, core.ErrEmptyBatch))

	stranger := common.HexToAddress("0x0000000000000000000000000000000000000bad")
	_, err = transactor.FillAuctionWithAmount(context.Background(), &core.TxOptions{From: stranger}, 1, big.NewInt(1))
	assert.Equal(t, true, errors.Is(err, core.ErrSenderMismatch))
	var code core.ErrorCode
	require.True(t, errors.As(err, &code))
	assert.Equal(t, core.ErrorCode(100107), code)

	assert.Equal(t, 0, len(backend.sent))
}
