package handlers

import (
	"net/http"

	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

type LeadHandler struct {
	AggregateUC *usecase.AggregateLeadsUseCase
}

func NewLeadHandler(aggregateUC *usecase.AggregateLeadsUseCase) *LeadHandler {
	return &LeadHandler{AggregateUC: aggregateUC}
}

// List (GET /admin/leads) agrupa os favoritos da carteira do corretor
// por cliente, do contato mais quente para o mais frio.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.AggregateUC.Execute(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
