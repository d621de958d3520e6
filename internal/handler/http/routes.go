package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	tokenURLParam  = "token"
	bookIDURLParam = "bookID"

	koboPrefix = "/api/kobo/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/info/", h.getServerInfo)
	})

	// device routes, the token in the path authenticates the user
	router.Route(koboPrefix+"{"+tokenURLParam+"}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/v1/library/sync", h.syncLibrary)
		r.Get("/v1/library/{"+bookIDURLParam+"}/state", h.getReadingState)
		r.Put("/v1/library/{"+bookIDURLParam+"}/state", h.updateReadingState)
		r.Get("/v1/books/{"+bookIDURLParam+"}/download", h.bookDownload)

		// everything not implemented locally goes to the vendor
		r.HandleFunc("/*", h.proxy)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
