package auction

import (
	"context"
	"fmt"
	"math/big"

	"hydro/core"
	"hydro/internal/hydro"
	"hydro/pkg/concurrency"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type service struct {
	reader     core.IProtocolReader
	transactor core.IProtocolTransactor
	assets     core.IAssetService
	fills      core.IFillStore
}

// New new auction service, fills may be nil when fill history is disabled
func New(
	reader core.IProtocolReader,
	transactor core.IProtocolTransactor,
	assets core.IAssetService,
	fills core.IFillStore,
) core.IAuctionService {
	return &service{
		reader:     reader,
		transactor: transactor,
		assets:     assets,
		fills:      fills,
	}
}

func (s *service) Project(ctx context.Context, auction *core.Auction, market *core.Market) (*core.OrderView, error) {
	var debtDecimals, collateralDecimals uint8
	err := concurrency.Await(ctx, 2,
		func(ctx context.Context) (err error) {
			debtDecimals, err = s.assets.Decimals(ctx, auction.DebtAsset)
			return
		},
		func(ctx context.Context) (err error) {
			collateralDecimals, err = s.assets.Decimals(ctx, auction.CollateralAsset)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	return hydro.ProjectAuction(auction, market, debtDecimals, collateralDecimals)
}

func (s *service) ProjectByID(ctx context.Context, auctionID uint32) (*core.OrderView, error) {
	auction, err := s.reader.Auction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	market, err := s.reader.Market(ctx, auction.MarketID)
	if err != nil {
		return nil, err
	}

	return s.Project(ctx, auction, market)
}

// Fill fillAmount is a raw amount of the debt asset, no scaling is applied
func (s *service) Fill(ctx context.Context, bidder common.Address, auctionID uint32, fillAmount *big.Int) (*core.FilledResult, error) {
	if fillAmount == nil || fillAmount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidAmount, fillAmount)
	}

	log := logger.FromContext(ctx).WithField("auction", auctionID)

	receipt, err := s.transactor.FillAuctionWithAmount(ctx, &core.TxOptions{From: bidder}, auctionID, fillAmount)
	if err != nil {
		return nil, err
	}

	result, err := hydro.ParseFillReceipt(receipt)
	if err != nil {
		if result != nil {
			log.WithError(err).WithField("tx", result.TxHash.Hex()).Errorln("parse fill receipt")
			s.record(ctx, bidder, auctionID, fillAmount, result)
		}

		return result, err
	}

	log = log.WithField("tx", result.TxHash.Hex())
	switch result.Status {
	case core.FillStatusReverted:
		log.Infoln("fill reverted")
	case core.FillStatusEventNotFound:
		log.Warnln("fill succeeded without AuctionFilled event, abi mismatch?")
	default:
		log.Infof("filled debt %s collateral %s", result.FilledDebt, result.FilledCollateral)
	}

	s.record(ctx, bidder, auctionID, fillAmount, result)
	return result, nil
}

func (s *service) record(ctx context.Context, bidder common.Address, auctionID uint32, fillAmount *big.Int, result *core.FilledResult) {
	if s.fills == nil {
		return
	}

	fill := &core.Fill{
		TxHash:           result.TxHash.Hex(),
		AuctionID:        auctionID,
		Bidder:           bidder.Hex(),
		Status:           result.Status,
		FillAmount:       decimal.NewFromBigInt(fillAmount, 0),
		FilledDebt:       decimal.NewFromBigInt(result.FilledDebt, 0),
		FilledCollateral: decimal.NewFromBigInt(result.FilledCollateral, 0),
	}

	if err := s.fills.Create(ctx, fill); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("save fill")
	}
}
