package hc

import (
	"net/http"
	"time"

	"hydro/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Handle handle hc request, contract is the protocol address served
func Handle(version, contract string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(version, contract))
	return r
}

func handle(version, contract string) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(b).Truncate(time.Millisecond)
		render.JSON(w, render.H{
			"uptime":   uptime.String(),
			"version":  version,
			"contract": contract,
		})
	}
}
