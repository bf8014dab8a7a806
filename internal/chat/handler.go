package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Study(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.StudyTurn)
}

func (h *Handler) Mentor(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.MentorTurn)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, turn func(context.Context, uuid.UUID, TurnRequest) (*TurnResult, error)) {
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

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := turn(r.Context(), userID, req)
	switch {
	case errors.Is(err, ErrMessageRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.WithError(err).Error("Chat turn failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"reply":     result.Reply,
		"sessionId": result.SessionID,
	})
}
