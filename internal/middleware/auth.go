package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/clinicapires/backend/internal/ctxkeys"
	"github.com/clinicapires/backend/internal/handler"
	"github.com/clinicapires/backend/internal/service"
)

// RequireToken guards a route behind a valid session token. The
// Authorization header is compared by equality against stored session
// tokens; a "Bearer " prefix is accepted but the deployed frontend sends
// the raw token.
func RequireToken(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

			email, err := authService.Authorize(token)
			if err != nil {
				handler.RespondError(w, http.StatusUnauthorized, "Não autorizado")
				return
			}

			slog.Debug("request authorized", "email", email, "path", r.URL.Path)
			next.ServeHTTP(w, r.WithContext(ctxkeys.WithAccountEmail(r.Context(), email)))
		}
	}
}
