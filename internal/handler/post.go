package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clinicapires/backend/internal/service"
)

// maxUploadBytes caps how much of a multipart body is held in memory.
const maxUploadBytes = 32 << 20

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List()
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		RespondError(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	RespondJSON(w, http.StatusOK, posts)
}

type createPostResponse struct {
	Success bool `json:"success"`
	Post    any  `json:"post"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	text := r.FormValue("texto")

	file, header, err := r.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		RespondError(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if file != nil {
		defer file.Close()
	}

	post, err := h.postService.Create(text, file, header)
	if err != nil {
		slog.Error("failed to create post", "error", err)
		RespondError(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	RespondJSON(w, http.StatusOK, createPostResponse{Success: true, Post: post})
}
