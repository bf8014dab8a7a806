package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/file", h.File)
	r.Post("/profile", h.Profile)
	r.Post("/background", h.Background)
	r.Delete("/file/{fileId}", h.Delete)
	return r
}
