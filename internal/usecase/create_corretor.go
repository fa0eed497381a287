package usecase

import (
	"context"
	"log"

	"github.com/xcampos9/imovelhub/internal/auth"
	"github.com/xcampos9/imovelhub/internal/entity"
)

// CreateCorretorUseCase é acionado pelo superadmin para dar acesso a um
// novo corretor na plataforma.
type CreateCorretorUseCase struct {
	UsuarioRepo  UsuarioRepositoryInterface
	EmailService EmailService
}

func NewCreateCorretorUseCase(usuarioRepo UsuarioRepositoryInterface, emailService EmailService) *CreateCorretorUseCase {
	return &CreateCorretorUseCase{
		UsuarioRepo:  usuarioRepo,
		EmailService: emailService,
	}
}

func (uc *CreateCorretorUseCase) Execute(ctx context.Context, input CreateCorretorInput) (*CreateCorretorOutput, error) {
	if errs := ValidateCreateCorretorInput(input); len(errs) > 0 {
		return nil, joinValidationErrors(errs)
	}

	senhaHash, err := auth.HashPassword(input.Senha)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "HASH_ERROR",
			Message: "failed to hash senha: " + err.Error(),
			Err:     err,
		}
	}

	corretor, err := entity.NewCorretor(input.Nome, input.Email, senhaHash)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error(), Err: err}
	}
	corretor.Telefone = input.Telefone

	if err := uc.UsuarioRepo.Create(ctx, corretor); err != nil {
		if err == entity.ErrEmailAlreadyExists {
			return nil, &DomainError{
				Code:    "EMAIL_ALREADY_EXISTS",
				Message: "email já cadastrado: " + input.Email,
				Err:     err,
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist corretor: " + err.Error(),
			Err:     err,
		}
	}

	// Boas-vindas fora do caminho crítico do cadastro.
	go func() {
		if uc.EmailService != nil {
			if err := uc.EmailService.SendBoasVindasCorretor(corretor.Email, corretor.Nome); err != nil {
				log.Printf("⚠️ Email de boas-vindas para %s falhou: %v", corretor.Email, err)
			}
		}
	}()

	return &CreateCorretorOutput{
		ID:     corretor.ID,
		Nome:   corretor.Nome,
		Email:  corretor.Email,
		Status: corretor.Status,
	}, nil
}
