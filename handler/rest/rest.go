package rest

import (
	"errors"
	"net/http"

	"hydro/core"
	"hydro/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request, fills may be nil when fill history is disabled
func Handle(auctions core.IAuctionService, reports core.IReportService, fills core.IFillStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFound(w, errors.New("not found"))
	})

	router.Get("/markets", marketsHandler(reports))
	router.Get("/accounts/{address}", accountHandler(reports))
	router.Get("/auctions", auctionsHandler(reports))
	router.Get("/auctions/{id}", auctionHandler(auctions))

	if fills != nil {
		router.Get("/auctions/{id}/fills", auctionFillsHandler(fills))
		router.Get("/fills", fillsHandler(fills))
		router.Get("/fills/{hash}", fillHandler(fills))
	}

	return router
}

func renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrAuctionNotFound), errors.Is(err, core.ErrMarketNotFound):
		render.NotFound(w, err)
	case errors.Is(err, core.ErrDegenerateAuction), errors.Is(err, core.ErrInvalidAmount):
		render.BadRequest(w, err)
	default:
		render.Error(w, http.StatusInternalServerError, err)
	}
}
