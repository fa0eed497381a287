package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xcampos9/imovelhub/internal/checklist"
	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

type TransacaoHandler struct {
	CreateUC   *usecase.CreateTransacaoUseCase
	PipelineUC *usecase.TransacaoPipelineUseCase
}

func NewTransacaoHandler(createUC *usecase.CreateTransacaoUseCase, pipelineUC *usecase.TransacaoPipelineUseCase) *TransacaoHandler {
	return &TransacaoHandler{
		CreateUC:   createUC,
		PipelineUC: pipelineUC,
	}
}

// Create (POST /admin/transacoes) abre um processo com o checklist do
// modelo escolhido.
func (h *TransacaoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTransacaoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	transacao, err := h.CreateUC.Execute(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordTransacaoCreated(transacao.TipoProcesso)
	writeJSON(w, http.StatusCreated, transacao)
}

func (h *TransacaoHandler) List(w http.ResponseWriter, r *http.Request) {
	transacoes, err := h.PipelineUC.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transacoes)
}

// Board (GET /admin/transacoes/board) projeta as transações nas quatro
// colunas fixas do kanban.
func (h *TransacaoHandler) Board(w http.ResponseWriter, r *http.Request) {
	transacoes, err := h.PipelineUC.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usecase.ProjectBoard(transacoes))
}

// Modelos (GET /admin/transacoes/modelos) lista os tipos de processo
// disponíveis para o formulário de criação.
func (h *TransacaoHandler) Modelos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checklist.Modelos())
}

func (h *TransacaoHandler) Get(w http.ResponseWriter, r *http.Request) {
	transacao, err := h.PipelineUC.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transacao)
}

type MoveStatusRequest struct {
	Status string `json:"status"`
}

// MoveStatus (PATCH /admin/transacoes/{id}/status) arrasta o card para
// outra coluna.
func (h *TransacaoHandler) MoveStatus(w http.ResponseWriter, r *http.Request) {
	var req MoveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.PipelineUC.MoveStatus(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"), req.Status); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleEtapa (PATCH /admin/transacoes/{id}/etapas/{index}) alterna uma
// etapa do checklist e devolve a transação atualizada.
func (h *TransacaoHandler) ToggleEtapa(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "índice de etapa inválido", http.StatusBadRequest)
		return
	}

	transacao, err := h.PipelineUC.ToggleEtapa(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"), index)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transacao)
}

// AddDocumento (POST /admin/transacoes/{id}/documentos) recebe o arquivo
// via multipart, sobe no host de mídia e anexa o metadado.
func (h *TransacaoHandler) AddDocumento(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "multipart inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "campo 'arquivo' é obrigatório", http.StatusBadRequest)
		return
	}
	defer file.Close()

	corretorID := middleware.UserID(r.Context())
	doc, err := h.PipelineUC.AddDocumento(r.Context(), corretorID, chi.URLParam(r, "id"), file, usecase.AddDocumentoInput{
		NomeArquivo: header.Filename,
		EnviadoPor:  corretorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (h *TransacaoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.PipelineUC.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TransacaoHandler) RemoveDocumento(w http.ResponseWriter, r *http.Request) {
	err := h.PipelineUC.RemoveDocumento(
		r.Context(),
		middleware.UserID(r.Context()),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "documentoId"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
