package upload

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes caps multipart bodies at 25 MB.
const maxUploadBytes = 25 << 20

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	h.store(w, r, h.service.StoreFile, "File uploaded")
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.store(w, r, h.service.StoreProfileImage, "Profile uploaded")
}

func (h *Handler) Background(w http.ResponseWriter, r *http.Request) {
	h.store(w, r, h.service.StoreBackgroundImage, "Background uploaded")
}

func (h *Handler) store(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, Incoming) (*Result, error), message string) {
	log := config.WithContext(r.Context())

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	in, err := readMultipartFile(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := fn(r.Context(), userID, *in)
	switch {
	case errors.Is(err, ErrNoFile):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.WithError(err).Error("Upload failed")
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": message,
		"fileId":  result.FileID,
		"url":     result.URL,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	fileID := chi.URLParam(r, "fileId")
	err := h.service.DeleteFile(r.Context(), userID, fileID)
	switch {
	case errors.Is(err, ErrMissingFileID):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.WithError(err).Error("File delete failed")
		http.Error(w, "failed to delete file", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"fileId": fileID,
	})
}

func readMultipartFile(w http.ResponseWriter, r *http.Request) (*Incoming, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errors.New("file too large or malformed form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, ErrNoFile
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("failed to read file")
	}

	return &Incoming{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Data:     data,
	}, nil
}

func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
