package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/mentor", h.ListMentor)
	r.Get("/subject", h.ListStudy)
	r.Get("/mentor/session/{id}", h.GetSession)
	r.Get("/subject/session/{id}", h.GetSession)
	return r
}
