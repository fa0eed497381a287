package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

// SuperAdminHandler concentra a gestão da plataforma: ciclo de vida dos
// corretores, moderação de anúncios e números globais.
type SuperAdminHandler struct {
	CreateCorretorUC *usecase.CreateCorretorUseCase
	UsuarioRepo      usecase.UsuarioRepositoryInterface
	ImovelRepo       usecase.ImovelRepositoryInterface
}

func NewSuperAdminHandler(
	createCorretorUC *usecase.CreateCorretorUseCase,
	usuarioRepo usecase.UsuarioRepositoryInterface,
	imovelRepo usecase.ImovelRepositoryInterface,
) *SuperAdminHandler {
	return &SuperAdminHandler{
		CreateCorretorUC: createCorretorUC,
		UsuarioRepo:      usuarioRepo,
		ImovelRepo:       imovelRepo,
	}
}

// CreateCorretor (POST /superadmin/corretores) cadastra o corretor e
// dispara o email de boas-vindas.
func (h *SuperAdminHandler) CreateCorretor(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCorretorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.CreateCorretorUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *SuperAdminHandler) ListCorretores(w http.ResponseWriter, r *http.Request) {
	corretores, err := h.UsuarioRepo.ListCorretores(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, corretores)
}

type ToggleStatusRequest struct {
	Status string `json:"status"`
}

// ToggleStatus (PATCH /superadmin/corretores/{id}/status) ativa ou
// inativa o corretor. Inativo é barrado no login mas mantém os dados.
func (h *SuperAdminHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	var req ToggleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Status != entity.StatusAtivo && req.Status != entity.StatusInativo {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: "status deve ser 'ativo' ou 'inativo'",
			Code:  "STATUS_INVALIDO",
		})
		return
	}

	if err := h.UsuarioRepo.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SuperAdminHandler) DeleteCorretor(w http.ResponseWriter, r *http.Request) {
	if err := h.UsuarioRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteImovel (DELETE /superadmin/imoveis/{id}) remove qualquer
// anúncio, ignorando o dono. Moderação de conteúdo.
func (h *SuperAdminHandler) DeleteImovel(w http.ResponseWriter, r *http.Request) {
	if err := h.ImovelRepo.DeleteAny(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats (GET /superadmin/stats) devolve os números do dashboard: total
// de corretores, total de imóveis e preço médio dos anúncios de venda.
func (h *SuperAdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	totalCorretores, err := h.UsuarioRepo.CountCorretores(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	totalImoveis, precoMedio, err := h.ImovelRepo.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, usecase.PlatformStats{
		TotalCorretores:         totalCorretores,
		TotalImoveis:            totalImoveis,
		PrecoMedioVendaCentavos: precoMedio,
	})
}
