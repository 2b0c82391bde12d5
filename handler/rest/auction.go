package rest

import (
	"net/http"
	"strconv"

	"hydro/core"
	"hydro/handler/render"

	"github.com/go-chi/chi"
)

func auctionID(r *http.Request) (uint32, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	return uint32(id), err
}

func auctionsHandler(reports core.IReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := reports.AuctionStatus(r.Context())
		if err != nil {
			renderError(w, err)
			return
		}

		render.JSON(w, status)
	}
}

func auctionHandler(auctions core.IAuctionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := auctionID(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		view, err := auctions.ProjectByID(r.Context(), id)
		if err != nil {
			renderError(w, err)
			return
		}

		render.JSON(w, view)
	}
}
