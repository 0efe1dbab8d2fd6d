package handler

import (
	"net/http"

	"github.com/clinicapires/backend/web"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomePage serves the embedded static landing page. The page itself is
// maintained by the frontend; this backend only hosts it.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	data, err := web.StaticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
