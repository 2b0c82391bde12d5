package cmd

import (
	"hydro/worker"
	"hydro/worker/auctionwatch"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run hydro auction watcher",
	Run: func(cmd *cobra.Command, args []string) {
		if !cfg.HasDB() {
			cmd.PrintErrln("worker requires db config for its checkpoint")
			return
		}

		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		client := provideEthClient()
		defer client.Close()

		protocolReader := provideProtocolReader(client)
		assets := provideAssetService(client)
		auctions := provideAuctionService(protocolReader, nil, assets, nil)

		watcher, err := auctionwatch.New(cfg.App.Location, cfg.Watcher.Interval, protocolReader, auctions, providePropertyStore(database))
		if err != nil {
			cmd.PrintErrln("new auction watcher error:", err)
			return
		}

		workers := []worker.Worker{
			watcher,
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("worker exit")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
