package routes

import (
	"net/http"

	"github.com/clinicapires/backend/internal/app"
	"github.com/clinicapires/backend/internal/handler"
	"github.com/clinicapires/backend/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	post := handler.NewPostHandler(app.PostService)

	mux := http.NewServeMux()

	// Landing page and uploaded assets
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.Cfg.UploadDir))))

	// Auth
	mux.HandleFunc("POST /api/cadastro", auth.Register)
	mux.HandleFunc("POST /api/login", auth.Login)
	mux.HandleFunc("POST /api/esqueci-senha", auth.ForgotPassword)
	mux.HandleFunc("POST /api/redefinir-senha", auth.ResetPassword)

	// Posts (listing is public, creation needs a session token)
	requireToken := middleware.RequireToken(app.AuthService)
	mux.HandleFunc("GET /api/posts", post.List)
	mux.HandleFunc("POST /api/posts", requireToken(post.Create))

	// 404
	mux.HandleFunc("/{path...}", home.NotFound)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
