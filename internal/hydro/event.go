package hydro

import (
	"fmt"
	"math/big"

	"hydro/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// AuctionFilledTopic topic0 of the AuctionFilled event
var AuctionFilledTopic = common.HexToHash("0x42a553656a0da7239e70a4a3c864c1ac7d46d7968bfe2e1fb14f42dbb67135e8")

const (
	// word offsets of filledDebt and filledCollateral in the AuctionFilled data
	filledDebtOffset       = 64
	filledCollateralOffset = 96
	wordSize               = 32
)

// ParseFillReceipt recover the amounts settled by a fill
//
// a failed receipt is a reverted fill, a successful receipt without the
// AuctionFilled event is reported as FillStatusEventNotFound, both with zero amounts.
// A malformed event returns ErrMalformedEvent together with the result so the tx hash is kept.
func ParseFillReceipt(receipt *types.Receipt) (*core.FilledResult, error) {
	result := &core.FilledResult{
		TxHash:           receipt.TxHash,
		Status:           core.FillStatusReverted,
		FilledDebt:       new(big.Int),
		FilledCollateral: new(big.Int),
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return result, nil
	}

	result.Status = core.FillStatusEventNotFound
	for _, log := range receipt.Logs {
		if len(log.Topics) == 0 || log.Topics[0] != AuctionFilledTopic {
			continue
		}

		debt, collateral, err := decodeAuctionFilled(log.Data)
		if err != nil {
			result.Status = core.FillStatusMalformedEvent
			result.FilledDebt = new(big.Int)
			result.FilledCollateral = new(big.Int)
			return result, err
		}

		result.Status = core.FillStatusFilled
		result.FilledDebt = debt
		result.FilledCollateral = collateral
	}

	return result, nil
}

func decodeAuctionFilled(data []byte) (*big.Int, *big.Int, error) {
	if len(data) < filledCollateralOffset+wordSize {
		return nil, nil, fmt.Errorf("%w: AuctionFilled data has %d bytes", core.ErrMalformedEvent, len(data))
	}

	debt := new(big.Int).SetBytes(data[filledDebtOffset : filledDebtOffset+wordSize])
	collateral := new(big.Int).SetBytes(data[filledCollateralOffset : filledCollateralOffset+wordSize])
	return debt, collateral, nil
}
