package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hydro/handler"

	"github.com/drone/signal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run hydro read api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := provideEthClient()
		defer client.Close()

		protocolReader := provideProtocolReader(client)
		assets := provideAssetService(client)
		auctions := provideAuctionService(protocolReader, nil, assets, nil)
		reports := provideReportService(protocolReader, assets, auctions)

		srv := handler.New(rootCmd.Version, protocolReader.Address().Hex(), auctions, reports, provideFillStore())

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: srv.Handler(),
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 0, "server port, default from config")
}
