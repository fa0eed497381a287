package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError traduz os erros das camadas internas para status HTTP.
// Erro de domínio vira 4xx com o código exposto; erro técnico vira 5xx
// sem vazar detalhes de infraestrutura.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, domainStatus(domainErr.Code), ErrorResponse{
			Error: domainErr.Message,
			Code:  domainErr.Code,
		})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		log.Printf("❌ Erro técnico [%s]: %v", techErr.Code, techErr)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "erro interno, tente novamente",
			Code:  techErr.Code,
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrUsuarioNotFound),
		errors.Is(err, entity.ErrImovelNotFound),
		errors.Is(err, entity.ErrTransacaoNotFound),
		errors.Is(err, entity.ErrFavoritoNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrFavoritoDuplicado):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("❌ Erro não mapeado: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "erro interno"})
	}
}

func domainStatus(code string) int {
	switch code {
	case "IMOVEL_NOT_FOUND", "TRANSACAO_NOT_FOUND", "USUARIO_NOT_FOUND":
		return http.StatusNotFound
	case "EMAIL_ALREADY_EXISTS", "FAVORITO_DUPLICADO":
		return http.StatusConflict
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "USUARIO_INATIVO":
		return http.StatusForbidden
	case "TEMPLATE_DESCONHECIDO", "STATUS_INVALIDO", "ETAPA_INVALIDA":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
