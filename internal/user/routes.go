package user

import (
	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the account endpoints. Register/login/google are public;
// everything else requires a valid token.
func Routes(h *Handler, logout *auth.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/google", h.GoogleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/logout", logout.Logout)
		r.Get("/me", h.Me)
		r.Put("/update", h.Update)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(RoleAdmin, RoleSuperadmin))

			r.Get("/users", h.List)
			r.Get("/users/{uid}", h.Get)
		})
	})
	return r
}
