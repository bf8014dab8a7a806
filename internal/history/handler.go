package history

import (
	"errors"
	"net/http"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/chat"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListMentor(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, chat.KindMentor)
}

// ListStudy serves the subject-help listing; study sessions are filed
// per subject on the client side.
func (h *Handler) ListStudy(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, chat.KindStudy)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, kind string) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := h.service.ListSessions(r.Context(), userID, kind)
	switch {
	case errors.Is(err, ErrUnknownKind):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.WithError(err).Error("Failed to list session history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"sessions": sessions,
	})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.GetUserClaimsFromContext(r.Context()); err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	fileID := chi.URLParam(r, "id")
	if fileID == "" {
		http.Error(w, "session id required", http.StatusBadRequest)
		return
	}

	view := h.service.GetSession(r.Context(), fileID)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"session": view,
	})
}
