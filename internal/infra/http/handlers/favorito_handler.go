package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

type FavoritoHandler struct {
	MarcarUC *usecase.MarcarFavoritoUseCase
}

func NewFavoritoHandler(marcarUC *usecase.MarcarFavoritoUseCase) *FavoritoHandler {
	return &FavoritoHandler{MarcarUC: marcarUC}
}

type MarcarFavoritoRequest struct {
	ImovelID string `json:"imovel_id"`
}

// Marcar (POST /cliente/favoritos) grava o favorito e dispara o evento
// de lead para o corretor dono do imóvel.
func (h *FavoritoHandler) Marcar(w http.ResponseWriter, r *http.Request) {
	var req MarcarFavoritoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ImovelID == "" {
		http.Error(w, "imovel_id é obrigatório", http.StatusBadRequest)
		return
	}

	favorito, err := h.MarcarUC.Execute(r.Context(), middleware.UserID(r.Context()), req.ImovelID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, favorito)
}

// Desmarcar (DELETE /cliente/favoritos/{imovelId}) remove sem disparar
// nada; desfavoritar não gera evento.
func (h *FavoritoHandler) Desmarcar(w http.ResponseWriter, r *http.Request) {
	err := h.MarcarUC.Desmarcar(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "imovelId"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FavoritoHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	favoritos, err := h.MarcarUC.ListarDoCliente(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoritos)
}
