package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 60 * time.Second

// NewRouter monta as rotas da API de cobranças
func NewRouter(h *ChargeHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", HealthCheck)

	r.Route("/api/charges", func(r chi.Router) {
		r.Post("/", h.CreateCharge)
		r.Post("/scheduled", h.CreateScheduledCharge)
		r.Get("/{txid}", h.GetCharge)
		r.Put("/{txid}", h.UpdateCharge)
		r.Delete("/{txid}", h.CancelCharge)
		r.Get("/{txid}/qrcode", h.GetQRCode)
		r.Get("/{txid}/cancellation", h.GetCancellation)
	})

	return r
}
