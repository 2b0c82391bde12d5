package protocol

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"hydro/core"
	"hydro/internal/hydro"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type reader struct {
	address common.Address
	caller  bind.ContractCaller
}

// NewReader new protocol state reader
func NewReader(address common.Address, caller bind.ContractCaller) core.IProtocolReader {
	return &reader{
		address: address,
		caller:  caller,
	}
}

// call errors from the caller are returned untouched, decoding errors wrap ErrDecodeResult
func (r *reader) call(ctx context.Context, out interface{}, method string, args ...interface{}) error {
	input, err := hydro.Hydro.Pack(method, args...)
	if err != nil {
		return err
	}

	output, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: input}, nil)
	if err != nil {
		return err
	}

	if err := hydro.Hydro.UnpackIntoInterface(out, method, output); err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrDecodeResult, method, err)
	}

	return nil
}

func (r *reader) callAmount(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	var amount *big.Int
	if err := r.call(ctx, &amount, method, args...); err != nil {
		return nil, err
	}

	if amount == nil {
		return nil, fmt.Errorf("%w: %s: empty amount", core.ErrDecodeResult, method)
	}

	return amount, nil
}

func (r *reader) Address() common.Address {
	return r.address
}

func (r *reader) MarketsCount(ctx context.Context) (uint16, error) {
	count, err := r.callAmount(ctx, "getAllMarketsCount")
	if err != nil {
		return 0, err
	}

	if !count.IsUint64() || count.Uint64() > math.MaxUint16 {
		return 0, fmt.Errorf("%w: markets count %s", core.ErrDecodeResult, count)
	}

	return uint16(count.Uint64()), nil
}

type marketTuple struct {
	BaseAsset            common.Address
	QuoteAsset           common.Address
	LiquidateRate        *big.Int
	WithdrawRate         *big.Int
	AuctionRatioStart    *big.Int
	AuctionRatioPerBlock *big.Int
	BorrowEnable         bool
}

func (r *reader) Market(ctx context.Context, id uint16) (*core.Market, error) {
	var out struct{ Market marketTuple }
	if err := r.call(ctx, &out, "getMarket", id); err != nil {
		return nil, err
	}

	m := out.Market
	if m.BaseAsset == (common.Address{}) && m.QuoteAsset == (common.Address{}) {
		return nil, fmt.Errorf("%w: %d", core.ErrMarketNotFound, id)
	}

	return &core.Market{
		ID:                   id,
		BaseAsset:            m.BaseAsset,
		QuoteAsset:           m.QuoteAsset,
		LiquidateRate:        m.LiquidateRate,
		WithdrawRate:         m.WithdrawRate,
		AuctionRatioStart:    m.AuctionRatioStart,
		AuctionRatioPerBlock: m.AuctionRatioPerBlock,
		BorrowEnable:         m.BorrowEnable,
	}, nil
}

type assetTuple struct {
	LendingPoolToken common.Address
	PriceOracle      common.Address
	InterestModel    common.Address
}

func (r *reader) Asset(ctx context.Context, address common.Address) (*core.AssetInfo, error) {
	var out struct{ Asset assetTuple }
	if err := r.call(ctx, &out, "getAsset", address); err != nil {
		return nil, err
	}

	return &core.AssetInfo{
		LendingPoolToken: out.Asset.LendingPoolToken,
		PriceOracle:      out.Asset.PriceOracle,
		InterestModel:    out.Asset.InterestModel,
	}, nil
}

func (r *reader) AssetOraclePrice(ctx context.Context, address common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "getAssetOraclePrice", address)
}

func (r *reader) TotalBorrow(ctx context.Context, asset common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "getTotalBorrow", asset)
}

func (r *reader) TotalSupply(ctx context.Context, asset common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "getTotalSupply", asset)
}

func (r *reader) InterestRates(ctx context.Context, asset common.Address, extraBorrowAmount *big.Int) (*core.InterestRates, error) {
	if extraBorrowAmount == nil {
		extraBorrowAmount = new(big.Int)
	}

	var out struct {
		BorrowInterestRate *big.Int
		SupplyInterestRate *big.Int
	}
	if err := r.call(ctx, &out, "getInterestRates", asset, extraBorrowAmount); err != nil {
		return nil, err
	}

	return &core.InterestRates{
		Borrow: out.BorrowInterestRate,
		Supply: out.SupplyInterestRate,
	}, nil
}

func (r *reader) InsuranceBalance(ctx context.Context, asset common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "getInsuranceBalance", asset)
}

func (r *reader) AuctionsCount(ctx context.Context) (uint32, error) {
	var count uint32
	if err := r.call(ctx, &count, "getAuctionsCount"); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *reader) CurrentAuctions(ctx context.Context) ([]uint32, error) {
	var ids []uint32
	if err := r.call(ctx, &ids, "getCurrentAuctions"); err != nil {
		return nil, err
	}

	return ids, nil
}

type auctionTuple struct {
	Borrower             common.Address
	MarketID             uint16
	DebtAsset            common.Address
	CollateralAsset      common.Address
	LeftDebtAmount       *big.Int
	LeftCollateralAmount *big.Int
	Ratio                *big.Int
	Price                *big.Int
	Finished             bool
}

func (r *reader) Auction(ctx context.Context, id uint32) (*core.Auction, error) {
	var out struct{ Details auctionTuple }
	if err := r.call(ctx, &out, "getAuctionDetails", id); err != nil {
		return nil, err
	}

	d := out.Details
	if d.Borrower == (common.Address{}) {
		return nil, fmt.Errorf("%w: %d", core.ErrAuctionNotFound, id)
	}

	if d.LeftDebtAmount == nil || d.LeftCollateralAmount == nil || d.Ratio == nil {
		return nil, fmt.Errorf("%w: auction %d missing amounts", core.ErrDecodeResult, id)
	}

	return &core.Auction{
		ID:                   id,
		MarketID:             d.MarketID,
		Borrower:             d.Borrower,
		DebtAsset:            d.DebtAsset,
		CollateralAsset:      d.CollateralAsset,
		LeftDebtAmount:       d.LeftDebtAmount,
		LeftCollateralAmount: d.LeftCollateralAmount,
		Ratio:                d.Ratio,
		Price:                d.Price,
		Finished:             d.Finished,
	}, nil
}

func (r *reader) IsAccountLiquidatable(ctx context.Context, user common.Address, marketID uint16) (bool, error) {
	var liquidatable bool
	if err := r.call(ctx, &liquidatable, "isAccountLiquidatable", user, marketID); err != nil {
		return false, err
	}

	return liquidatable, nil
}

type accountTuple struct {
	Liquidatable          bool
	Status                uint8
	DebtsTotalUSDValue    *big.Int
	BalancesTotalUSDValue *big.Int
}

func (r *reader) AccountDetails(ctx context.Context, user common.Address, marketID uint16) (*core.AccountDetails, error) {
	var out struct{ Details accountTuple }
	if err := r.call(ctx, &out, "getAccountDetails", user, marketID); err != nil {
		return nil, err
	}

	return &core.AccountDetails{
		Liquidatable:          out.Details.Liquidatable,
		Status:                out.Details.Status,
		DebtsTotalUSDValue:    out.Details.DebtsTotalUSDValue,
		BalancesTotalUSDValue: out.Details.BalancesTotalUSDValue,
	}, nil
}

func (r *reader) BalanceOf(ctx context.Context, asset, user common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "balanceOf", asset, user)
}

func (r *reader) MarketBalanceOf(ctx context.Context, marketID uint16, asset, user common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "marketBalanceOf", marketID, asset, user)
}

func (r *reader) AmountSupplied(ctx context.Context, asset, user common.Address) (*big.Int, error) {
	return r.callAmount(ctx, "getAmountSupplied", asset, user)
}

func (r *reader) AmountBorrowed(ctx context.Context, asset, user common.Address, marketID uint16) (*big.Int, error) {
	return r.callAmount(ctx, "getAmountBorrowed", asset, user, marketID)
}
