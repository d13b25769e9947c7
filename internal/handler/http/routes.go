package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Post("/", h.submitRecord)

			r.Route("/{id}", func(r chi.Router) {
				r.Post("/verify", h.verifyRecord)
				r.Post("/reject", h.rejectRecord)
				r.Post("/decrypt", h.decryptRecord)
			})
		})

		r.Get("/stats/", h.getStats)
		r.Get("/history/", h.getHistory)
		r.Get("/version/", h.getServerVersion)
	})

	return router
}
