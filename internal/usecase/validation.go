package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func joinValidationErrors(errs []ValidationError) *DomainError {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(msgs, ", "),
	}
}

func ValidateCreateTransacaoInput(input CreateTransacaoInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.NomeCliente) == "" {
		errors = append(errors, ValidationError{"nome_cliente", "is required"})
	} else if len(input.NomeCliente) > 200 {
		errors = append(errors, ValidationError{"nome_cliente", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.ImovelID) == "" {
		errors = append(errors, ValidationError{"imovel_id", "is required"})
	}

	if strings.TrimSpace(input.TipoProcesso) == "" {
		errors = append(errors, ValidationError{"tipo_processo", "is required"})
	}

	return errors
}

func ValidateCreateCorretorInput(input CreateCorretorInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "is required"})
	} else if len(input.Nome) < 3 {
		errors = append(errors, ValidationError{"nome", "must have at least 3 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.Senha) < 8 {
		errors = append(errors, ValidationError{"senha", "must have at least 8 characters"})
	}

	return errors
}

func ValidateRegisterClienteInput(input RegisterClienteInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.Senha) < 8 {
		errors = append(errors, ValidationError{"senha", "must have at least 8 characters"})
	}

	return errors
}

func ValidateImovel(i *entity.Imovel) []ValidationError {
	var errors []ValidationError

	if err := i.Validate(); err != nil {
		errors = append(errors, ValidationError{"imovel", err.Error()})
	}
	if len(i.Titulo) > 200 {
		errors = append(errors, ValidationError{"titulo", "must not exceed 200 characters"})
	}

	return errors
}
