package accounts

import (
	"github.com/go-chi/chi/v5"
	"github.com/harborview/accounts-backend/internal/middleware"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	sessionFetcher := SessionInfo{Sessions: h.sessions}

	r.Post("/users", h.RegisterHandler)
	r.Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Get("/dashboard", h.DashboardHandler)
	})
}
