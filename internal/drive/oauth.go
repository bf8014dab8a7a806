package drive

import (
	"net/http"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/go-chi/chi/v5"
	"golang.org/x/oauth2"
)

// OAuthHandler drives the one-time consent flow that captures the Drive
// token used by the whole backend.
type OAuthHandler struct {
	oauthConfig *oauth2.Config
}

func NewOAuthHandler() *OAuthHandler {
	return &OAuthHandler{oauthConfig: OAuthConfigFromEnv()}
}

func (h *OAuthHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
	http.Redirect(w, r, url, http.StatusFound)
}

func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange authorization code")
		http.Error(w, "failed to get tokens", http.StatusInternalServerError)
		return
	}

	if err := saveToken(token); err != nil {
		log.WithError(err).Error("Failed to persist Drive token")
		http.Error(w, "failed to save token", http.StatusInternalServerError)
		return
	}

	log.Info("Drive authorized, token saved")
	w.Write([]byte("Drive authorized. You can close this tab now."))
}

// OAuthRoutes are registered at the router root, not under /api, so the
// callback URL registered with Google stays short.
func OAuthRoutes(r chi.Router, h *OAuthHandler) {
	r.Get("/auth/google", h.Authorize)
	r.Get("/oauth2callback", h.Callback)
}
