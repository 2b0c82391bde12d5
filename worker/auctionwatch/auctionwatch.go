package auctionwatch

import (
	"context"
	"errors"
	"time"

	"hydro/core"
	"hydro/pkg/concurrency"
	"hydro/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

const checkpointKey = "auctions_checkpoint"

// Watcher log the order view of every in-progress auction
type Watcher struct {
	*worker.BaseJob
	reader   core.IProtocolReader
	auctions core.IAuctionService
	property property.Store
}

// New new auction watcher
func New(
	location string,
	interval time.Duration,
	reader core.IProtocolReader,
	auctions core.IAuctionService,
	property property.Store,
) (*Watcher, error) {
	w := &Watcher{
		reader:   reader,
		auctions: auctions,
		property: property,
	}

	job, err := worker.NewBaseJob("auctionwatch", location, interval, w.onWork)
	if err != nil {
		return nil, err
	}

	w.BaseJob = job
	return w, nil
}

func (w *Watcher) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	v, err := w.property.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get", checkpointKey)
		return err
	}

	total, err := w.reader.AuctionsCount(ctx)
	if err != nil {
		log.WithError(err).Errorln("AuctionsCount")
		return err
	}

	if seen := v.Int64(); int64(total) > seen {
		log.Infof("%d new auctions since last round", int64(total)-seen)
	}

	ids, err := w.reader.CurrentAuctions(ctx)
	if err != nil {
		log.WithError(err).Errorln("CurrentAuctions")
		return err
	}

	views, err := concurrency.Map(ctx, concurrency.DefaultMax, ids, w.project)
	if err != nil {
		log.WithError(err).Errorln("ProjectByID")
		return err
	}

	for idx, view := range views {
		entry := log.WithField("auction", ids[idx])
		if view == nil {
			entry.Warnln("degenerate auction, no collateral left")
			continue
		}

		if view.PriceUnbounded {
			entry.Infof("ratio 0, max fillable debt %s", view.MaxFillableDebt)
			continue
		}

		entry.Infof("price %s, max fillable debt %s, next block price %s",
			view.Price, view.MaxFillableDebt, view.PriceNextBlock)
	}

	if err := w.property.Save(ctx, checkpointKey, total); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}

// project nil view for a degenerate auction
func (w *Watcher) project(ctx context.Context, id uint32) (*core.OrderView, error) {
	view, err := w.auctions.ProjectByID(ctx, id)
	if errors.Is(err, core.ErrDegenerateAuction) {
		return nil, nil
	}

	return view, err
}
