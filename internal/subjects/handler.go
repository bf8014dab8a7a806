package subjects

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	exam, list := ForExam(chi.URLParam(r, "exam"))

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"exam":     exam,
		"subjects": list,
	})
}

type practiceRequest struct {
	Exam       string `json:"exam"`
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

func (h *Handler) Practice(w http.ResponseWriter, r *http.Request) {
	var req practiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		http.Error(w, "subject required", http.StatusBadRequest)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "Easy"
	}

	text := Practice(req.Subject, req.Difficulty, req.Count)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"questions": text,
	})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{exam}/subjects", h.ListSubjects)
	r.Post("/practice", h.Practice)
	return r
}
