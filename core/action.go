package core

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ActionType fund action type, values are fixed by the protocol
type ActionType uint8

const (
	// ActionTypeDeposit wallet -> trading balance
	ActionTypeDeposit ActionType = iota
	// ActionTypeWithdraw trading balance -> wallet
	ActionTypeWithdraw
	// ActionTypeTransfer trading <-> margin, margin <-> margin
	ActionTypeTransfer
	// ActionTypeBorrow funding pool -> margin balance
	ActionTypeBorrow
	// ActionTypeRepay margin balance -> funding pool
	ActionTypeRepay
	// ActionTypeSupply trading balance -> funding pool
	ActionTypeSupply
	// ActionTypeUnsupply funding pool -> trading balance
	ActionTypeUnsupply
)

var actionTypeNames = [...]string{
	ActionTypeDeposit:  "deposit",
	ActionTypeWithdraw: "withdraw",
	ActionTypeTransfer: "transfer",
	ActionTypeBorrow:   "borrow",
	ActionTypeRepay:    "repay",
	ActionTypeSupply:   "supply",
	ActionTypeUnsupply: "unsupply",
}

// Valid check action type is known
func (a ActionType) Valid() bool {
	return int(a) < len(actionTypeNames)
}

func (a ActionType) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", uint8(a))
	}

	return actionTypeNames[a]
}

// FundAction one encoded fund movement
type FundAction struct {
	ActionType    ActionType `json:"action_type"`
	EncodedParams []byte     `json:"encoded_params"`
}

// Batch ordered fund actions executed atomically by the protocol
type Batch []FundAction

// TxOptions transaction options of a submission
type TxOptions struct {
	From common.Address
	// Value ether attached, required when depositing the native asset
	Value *big.Int
}

// IFundService fund movement interface
type IFundService interface {
	Batch(ctx context.Context, opts *TxOptions, actions ...FundAction) (*types.Receipt, error)
	Deposit(ctx context.Context, opts *TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error)
	Withdraw(ctx context.Context, opts *TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error)
	Transfer(ctx context.Context, opts *TxOptions, asset common.Address, from, to BalancePath, amount *big.Int) (*types.Receipt, error)
	Borrow(ctx context.Context, opts *TxOptions, marketID uint16, asset common.Address, amount *big.Int) (*types.Receipt, error)
	Repay(ctx context.Context, opts *TxOptions, marketID uint16, asset common.Address, amount *big.Int) (*types.Receipt, error)
	Supply(ctx context.Context, opts *TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error)
	PoolWithdraw(ctx context.Context, opts *TxOptions, asset common.Address, amount *big.Int) (*types.Receipt, error)
}
