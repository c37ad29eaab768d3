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
	router.Use(withGZip)

	router.Group(func(r chi.Router) {
		r.Post("/api/payload/encode", h.encodePayload)
		r.Post("/api/qr/render", h.renderQR)

		r.Post("/api/protect", h.createProtected)
		r.Post("/api/protect/verify", h.verifyProtected)

		r.Post("/api/media/sign", h.signMediaURL)
		r.Get("/media/{token}", h.serveMedia)

		r.Post("/api/bulk/csv", h.bulkCSV)

		r.Get("/api/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
