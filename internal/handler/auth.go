package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/clinicapires/backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "Preencha todos os campos!")
		return
	}

	err = h.authService.Register(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		RespondError(w, http.StatusBadRequest, "Preencha todos os campos!")
	case errors.Is(err, service.ErrEmailTaken):
		RespondError(w, http.StatusBadRequest, "E-mail já cadastrado!")
	case err != nil:
		slog.Error("registration failed", "error", err)
		RespondError(w, http.StatusInternalServerError, "Erro interno do servidor")
	default:
		RespondJSON(w, http.StatusOK, Response{Success: true, Message: "Cadastro realizado com sucesso!"})
	}
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		RespondError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(w, http.StatusUnauthorized, "Credenciais inválidas")
	case err != nil:
		slog.Error("login failed", "error", err)
		RespondError(w, http.StatusInternalServerError, "Erro interno do servidor")
	default:
		RespondJSON(w, http.StatusOK, loginResponse{Success: true, Token: token, Email: req.Email})
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		RespondError(w, http.StatusNotFound, "E-mail não encontrado.")
		return
	}

	err = h.authService.ForgotPassword(req.Email)
	switch {
	case errors.Is(err, service.ErrEmailNotFound):
		RespondError(w, http.StatusNotFound, "E-mail não encontrado.")
	case errors.Is(err, service.ErrMailSend):
		RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Erro no e-mail: %s", err))
	case err != nil:
		slog.Error("forgot password failed", "error", err)
		RespondError(w, http.StatusInternalServerError, "Erro interno do servidor")
	default:
		RespondJSON(w, http.StatusOK, Response{Success: true, Message: "E-mail enviado!"})
	}
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"nova_senha"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "Token inválido")
		return
	}

	err = h.authService.ResetPassword(req.Email, req.Token, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrInvalidRecoveryToken):
		RespondError(w, http.StatusBadRequest, "Token inválido")
	case err != nil:
		slog.Error("password reset failed", "error", err)
		RespondError(w, http.StatusInternalServerError, "Erro interno do servidor")
	default:
		RespondJSON(w, http.StatusOK, Response{Success: true})
	}
}
