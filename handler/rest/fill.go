package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"hydro/core"
	"hydro/handler/render"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
)

const defaultLimit = 100

func auctionFillsHandler(fills core.IFillStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := auctionID(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		list, err := fills.ListByAuction(r.Context(), id)
		if err != nil {
			renderError(w, err)
			return
		}

		render.JSON(w, list)
	}
}

func fillsHandler(fills core.IFillStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var from int64
		if v := query.Get("offset"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			from = n
		}

		limit := defaultLimit
		if v := query.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				render.BadRequest(w, fmt.Errorf("invalid limit %q", v))
				return
			}

			limit = n
		}

		list, err := fills.List(r.Context(), from, limit)
		if err != nil {
			renderError(w, err)
			return
		}

		var pagination render.Pagination
		if n := len(list); n > 0 && n >= limit {
			pagination.HasNext = true
			pagination.NextCursor = strconv.FormatInt(list[n-1].ID, 10)
		}

		render.List(w, list, pagination)
	}
}

func fillHandler(fills core.IFillStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fill, ok, err := fills.FindByTxHash(r.Context(), common.HexToHash(chi.URLParam(r, "hash")).Hex())
		if err != nil {
			renderError(w, err)
			return
		}

		if !ok {
			render.NotFound(w, errors.New("fill not found"))
			return
		}

		render.JSON(w, fill)
	}
}
