package hydro

import (
	"fmt"

	"hydro/core"
	"hydro/pkg/number"

	"github.com/shopspring/decimal"
)

var (
	// DivisionPrecision digits kept by auction divisions
	DivisionPrecision int32 = 18

	one = decimal.NewFromInt(1)
)

// ProjectAuction treat the auction as a limit order selling collateral for debt
//
// price = leftDebt / leftCollateral / ratio
// maxFillableDebt = leftDebt / ratio when ratio > 1, leftDebt otherwise
func ProjectAuction(auction *core.Auction, market *core.Market, debtDecimals, collateralDecimals uint8) (*core.OrderView, error) {
	leftCollateral := number.ToHuman(auction.LeftCollateralAmount, collateralDecimals)
	if !leftCollateral.IsPositive() {
		return nil, fmt.Errorf("%w: auction %d has no collateral left", core.ErrDegenerateAuction, auction.ID)
	}

	leftDebt := number.ToHuman(auction.LeftDebtAmount, debtDecimals)
	ratio := number.Ratio(auction.Ratio)
	ratioPerBlock := number.Ratio(market.AuctionRatioPerBlock)
	ratioNextBlock := ratio.Add(ratioPerBlock)

	view := &core.OrderView{
		AuctionID:                auction.ID,
		DebtAsset:                auction.DebtAsset,
		CollateralAsset:          auction.CollateralAsset,
		MaxFillableDebt:          MaxFillableDebt(leftDebt, ratio),
		MaxFillableDebtNextBlock: MaxFillableDebt(leftDebt, ratioNextBlock),
		Ratio:                    ratio,
		RatioNextBlock:           ratioNextBlock,
		RatioPerBlock:            ratioPerBlock,
	}

	view.Price, view.PriceUnbounded = price(leftDebt, leftCollateral, ratio)
	view.PriceNextBlock, view.PriceNextBlockUnbounded = price(leftDebt, leftCollateral, ratioNextBlock)

	return view, nil
}

// MaxFillableDebt the whole debt is fillable until the ratio passes 1
//
// the comparison is strict, ratio == 1 keeps the whole debt fillable
func MaxFillableDebt(leftDebt, ratio decimal.Decimal) decimal.Decimal {
	if ratio.GreaterThan(one) {
		return leftDebt.DivRound(ratio, DivisionPrecision)
	}

	return leftDebt
}

// price has no finite value while the ratio is still zero
func price(leftDebt, leftCollateral, ratio decimal.Decimal) (decimal.Decimal, bool) {
	if !ratio.IsPositive() {
		return decimal.Zero, true
	}

	return leftDebt.DivRound(leftCollateral.Mul(ratio), DivisionPrecision), false
}
