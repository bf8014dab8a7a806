package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func StudyRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Study)
	return r
}

func MentorRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Mentor)
	return r
}
