package exam

import (
	"encoding/json"
	"net/http"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type submitResponse struct {
	OK        bool            `json:"ok"`
	AttemptID *string         `json:"attemptId"`
	Score     Score           `json:"score"`
	Details   []GradingResult `json:"details"`
	Warning   string          `json:"warning,omitempty"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated for exam submit")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for exam submit")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Questions == nil {
		http.Error(w, "questions required", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		log.WithError(err).Error("Failed to submit exam attempt")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, submitResponse{
		OK:        true,
		AttemptID: result.AttemptID,
		Score:     result.Score,
		Details:   result.Details,
		Warning:   result.Warning,
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
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

	attempts, err := h.service.History(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list exam history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"attempts": attempts,
	})
}
