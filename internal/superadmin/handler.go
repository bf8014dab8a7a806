package superadmin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/user"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	admin, err := h.service.CreateAdmin(r.Context(), claims.UserID, req)
	switch {
	case errors.Is(err, ErrFieldsRequired), errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, user.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		log.WithError(err).Error("Failed to create admin")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"ok":    true,
		"admin": admin,
	})
}

func (h *Handler) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	uid := chi.URLParam(r, "uid")
	err = h.service.RevokeAdmin(r.Context(), claims.UserID, uid)
	switch {
	case errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, user.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		log.WithError(err).Error("Failed to revoke admin")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":  true,
		"uid": uid,
	})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.RequireRole(user.RoleSuperadmin))
	r.Post("/create-admin", h.CreateAdmin)
	r.Post("/revoke-admin/{uid}", h.RevokeAdmin)
	return r
}
