package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

// PerfilHandler cuida do perfil do corretor logado: os dados exibidos na
// página pública dele.
type PerfilHandler struct {
	UsuarioRepo usecase.UsuarioRepositoryInterface
}

func NewPerfilHandler(usuarioRepo usecase.UsuarioRepositoryInterface) *PerfilHandler {
	return &PerfilHandler{UsuarioRepo: usuarioRepo}
}

// Me (GET /admin/perfil) devolve o próprio usuário, sem o hash de senha.
func (h *PerfilHandler) Me(w http.ResponseWriter, r *http.Request) {
	usuario, err := h.UsuarioRepo.FindByID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usuario)
}

// UpdatePersonalizacao (PUT /admin/perfil/personalizacao) troca logo,
// whatsapp e cor da página pública do corretor.
func (h *PerfilHandler) UpdatePersonalizacao(w http.ResponseWriter, r *http.Request) {
	var p entity.Personalizacao
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UsuarioRepo.UpdatePersonalizacao(r.Context(), middleware.UserID(r.Context()), p); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}
