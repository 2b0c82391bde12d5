package rest

import (
	"errors"
	"net/http"

	"hydro/core"
	"hydro/handler/render"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
)

func marketsHandler(reports core.IReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := reports.MarketStatus(r.Context())
		if err != nil {
			renderError(w, err)
			return
		}

		render.JSON(w, status)
	}
}

func accountHandler(reports core.IReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := chi.URLParam(r, "address")
		if !common.IsHexAddress(address) {
			render.BadRequest(w, errors.New("invalid address"))
			return
		}

		status, err := reports.AccountStatus(r.Context(), common.HexToAddress(address))
		if err != nil {
			renderError(w, err)
			return
		}

		render.JSON(w, status)
	}
}
