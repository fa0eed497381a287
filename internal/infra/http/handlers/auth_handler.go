package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xcampos9/imovelhub/internal/usecase"
)

type AuthHandler struct {
	LoginUC    *usecase.LoginUseCase
	RegisterUC *usecase.RegisterClienteUseCase

	rateLimiter *RateLimiter
}

func NewAuthHandler(loginUC *usecase.LoginUseCase, registerUC *usecase.RegisterClienteUseCase) *AuthHandler {
	return &AuthHandler{
		LoginUC:     loginUC,
		RegisterUC:  registerUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// Login (POST /auth/login) autentica corretor, cliente ou superadmin.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Register (POST /auth/register) cria conta de cliente. Corretores são
// criados só pelo superadmin.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.RegisterClienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	cliente, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cliente)
}
