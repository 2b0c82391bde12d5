package hydro

import (
	"fmt"
	"math/big"

	"hydro/core"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	uint8Type   = mustType("uint8", nil)
	uint16Type  = mustType("uint16", nil)
	addressType = mustType("address", nil)
	uint256Type = mustType("uint256", nil)
	pathType    = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "category", Type: "uint8"},
		{Name: "marketID", Type: "uint16"},
		{Name: "user", Type: "address"},
	})

	// (address asset, uint256 amount)
	assetAmountArgs = abi.Arguments{{Type: addressType}, {Type: uint256Type}}
	// (uint16 marketID, address asset, uint256 amount)
	marketAssetAmountArgs = abi.Arguments{{Type: uint16Type}, {Type: addressType}, {Type: uint256Type}}
	// (address asset, path from, path to, uint256 amount)
	transferArgs = abi.Arguments{{Type: addressType}, {Type: pathType}, {Type: pathType}, {Type: uint256Type}}

	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(err)
	}

	return typ
}

// balancePathTuple abi view of core.BalancePath, fields follow the tuple component names
type balancePathTuple struct {
	Category uint8
	MarketID uint16
	User     common.Address
}

// BatchAction abi view of core.FundAction
type BatchAction struct {
	ActionType    uint8
	EncodedParams []byte
}

func validateAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 || amount.Cmp(maxUint256) > 0 {
		return fmt.Errorf("%w: %v", core.ErrInvalidAmount, amount)
	}

	return nil
}

func assetAmountAction(actionType core.ActionType, asset common.Address, amount *big.Int) (core.FundAction, error) {
	if err := validateAmount(amount); err != nil {
		return core.FundAction{}, err
	}

	params, err := assetAmountArgs.Pack(asset, amount)
	if err != nil {
		return core.FundAction{}, err
	}

	return core.FundAction{ActionType: actionType, EncodedParams: params}, nil
}

func marketAssetAmountAction(actionType core.ActionType, marketID uint16, asset common.Address, amount *big.Int) (core.FundAction, error) {
	if err := validateAmount(amount); err != nil {
		return core.FundAction{}, err
	}

	params, err := marketAssetAmountArgs.Pack(marketID, asset, amount)
	if err != nil {
		return core.FundAction{}, err
	}

	return core.FundAction{ActionType: actionType, EncodedParams: params}, nil
}

// DepositAction wallet -> trading balance
func DepositAction(asset common.Address, amount *big.Int) (core.FundAction, error) {
	return assetAmountAction(core.ActionTypeDeposit, asset, amount)
}

// WithdrawAction trading balance -> wallet
func WithdrawAction(asset common.Address, amount *big.Int) (core.FundAction, error) {
	return assetAmountAction(core.ActionTypeWithdraw, asset, amount)
}

// SupplyAction trading balance -> funding pool
func SupplyAction(asset common.Address, amount *big.Int) (core.FundAction, error) {
	return assetAmountAction(core.ActionTypeSupply, asset, amount)
}

// UnsupplyAction funding pool -> trading balance
func UnsupplyAction(asset common.Address, amount *big.Int) (core.FundAction, error) {
	return assetAmountAction(core.ActionTypeUnsupply, asset, amount)
}

// BorrowAction funding pool -> margin balance of market
func BorrowAction(marketID uint16, asset common.Address, amount *big.Int) (core.FundAction, error) {
	return marketAssetAmountAction(core.ActionTypeBorrow, marketID, asset, amount)
}

// RepayAction margin balance of market -> funding pool
func RepayAction(marketID uint16, asset common.Address, amount *big.Int) (core.FundAction, error) {
	return marketAssetAmountAction(core.ActionTypeRepay, marketID, asset, amount)
}

// TransferAction move asset between two balance paths
func TransferAction(asset common.Address, from, to core.BalancePath, amount *big.Int) (core.FundAction, error) {
	if err := validateAmount(amount); err != nil {
		return core.FundAction{}, err
	}

	// re-resolve so hand built paths keep the trading => market 0 invariant
	from, err := core.NewBalancePath(from.User, from.Category, from.MarketID)
	if err != nil {
		return core.FundAction{}, err
	}

	to, err = core.NewBalancePath(to.User, to.Category, to.MarketID)
	if err != nil {
		return core.FundAction{}, err
	}

	params, err := transferArgs.Pack(asset, pathTuple(from), pathTuple(to), amount)
	if err != nil {
		return core.FundAction{}, err
	}

	return core.FundAction{ActionType: core.ActionTypeTransfer, EncodedParams: params}, nil
}

func pathTuple(p core.BalancePath) balancePathTuple {
	return balancePathTuple{
		Category: uint8(p.Category),
		MarketID: p.MarketID,
		User:     p.User,
	}
}

// NewBatch validate actions and keep them in the given order
func NewBatch(actions ...core.FundAction) (core.Batch, error) {
	if len(actions) == 0 {
		return nil, core.ErrEmptyBatch
	}

	batch := make(core.Batch, len(actions))
	for idx, action := range actions {
		if !action.ActionType.Valid() {
			return nil, fmt.Errorf("%w: index %d, %s", core.ErrUnknownActionType, idx, action.ActionType)
		}

		batch[idx] = action
	}

	return batch, nil
}

// BatchArgs abi argument of the batch call
func BatchArgs(batch core.Batch) []BatchAction {
	args := make([]BatchAction, len(batch))
	for idx, action := range batch {
		args[idx] = BatchAction{
			ActionType:    uint8(action.ActionType),
			EncodedParams: action.EncodedParams,
		}
	}

	return args
}

// PackBatch calldata of batch(actions)
func PackBatch(batch core.Batch) ([]byte, error) {
	if len(batch) == 0 {
		return nil, core.ErrEmptyBatch
	}

	return Hydro.Pack("batch", BatchArgs(batch))
}
