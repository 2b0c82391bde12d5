package handler

import (
	"net/http"

	"hydro/core"
	"hydro/handler/hc"
	"hydro/handler/rest"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
)

// Server server
type Server struct {
	version  string
	contract string
	auctions core.IAuctionService
	reports  core.IReportService
	fills    core.IFillStore
}

// New new server, fills may be nil
func New(
	version string,
	contract string,
	auctions core.IAuctionService,
	reports core.IReportService,
	fills core.IFillStore,
) Server {
	return Server{
		version:  version,
		contract: contract,
		auctions: auctions,
		reports:  reports,
		fills:    fills,
	}
}

// Handler hc and restful apis
func (s Server) Handler() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)
	mux.Use(middleware.NewCompressor(5).Handler)

	mux.Mount("/hc", hc.Handle(s.version, s.contract))
	mux.Mount("/api", s.HandleRestAPI())
	return mux
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	return rest.Handle(s.auctions, s.reports, s.fills)
}
