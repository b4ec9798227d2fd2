package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.GetHead)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
		r.Get("/privacy", h.privacyPage)
		r.Get("/api/version", h.getServerVersion)

		if h.uploadsDir != "" {
			r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))
		}
	})

	// pages: unauthenticated visitors are sent to /login
	router.Group(func(r chi.Router) {
		r.Use(h.auth(redirectToLogin))

		r.Get("/", h.feedPage)
		r.Get("/{category}", h.categoryPage)
		r.Post("/save_{category}", h.saveRecord)
		r.Post("/delete_{category}/{id}", h.deleteRecord)
	})

	// JSON: unauthenticated callers get 401
	router.Group(func(r chi.Router) {
		r.Use(h.auth(respondUnauthorized))

		r.Get("/{category}/{id}", h.recordDetail)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
