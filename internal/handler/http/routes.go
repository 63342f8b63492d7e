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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/params", h.authParams)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/messages", h.insertMessage)
		r.Get("/api/messages/{id}", h.getMessage)

		r.Post("/api/conversations", h.ensureConversation)
		r.Get("/api/conversations/{id}/next-seq", h.nextSequenceNumber)
		r.Put("/api/conversations/{id}/last-message-at", h.updateLastMessageAt)

		r.Put("/api/keys", h.upsertKeyRecord)
		r.Get("/api/keys/{userID}", h.getKeyRecord)

		r.Get("/api/users/{id}/welcome-flag", h.welcomeSent)
		r.Put("/api/users/{id}/welcome-flag", h.markWelcomeSent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
