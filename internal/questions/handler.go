package questions

import (
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

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	list, err := h.service.Generate(r.Context(), req)
	switch {
	case errors.Is(err, ErrSubjectRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrBadModelOutput):
		log.WithError(err).Error("Model returned an unparsable question paper")
		http.Error(w, "model returned invalid output, please retry", http.StatusBadGateway)
		return
	case err != nil:
		log.WithError(err).Error("Question generation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"questions": list,
	})
}

// Raw serves the unauthenticated prompt endpoint. No user is attached
// to the prompt log.
func (h *Handler) Raw(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	text, err := h.service.Raw(r.Context(), nil, req)
	switch {
	case errors.Is(err, ErrPromptRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.WithError(err).Error("Raw Gemini generation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"text": text,
	})
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var userID *uuid.UUID
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		if id, err := uuid.Parse(claims.UserID); err == nil {
			userID = &id
		}
	}

	text, err := h.service.Raw(r.Context(), userID, req)
	switch {
	case errors.Is(err, ErrPromptRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.WithError(err).Error("Raw Gemini chat failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"text": text,
	})
}
