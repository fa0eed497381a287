package usecase

import (
	"context"

	"github.com/xcampos9/imovelhub/internal/auth"
	"github.com/xcampos9/imovelhub/internal/entity"
)

type TokenIssuer interface {
	Generate(userID, role string) (string, error)
}

type LoginUseCase struct {
	UsuarioRepo UsuarioRepositoryInterface
	Tokens      TokenIssuer
}

func NewLoginUseCase(usuarioRepo UsuarioRepositoryInterface, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{
		UsuarioRepo: usuarioRepo,
		Tokens:      tokens,
	}
}

// Execute autentica qualquer papel. Corretor inativado pelo superadmin é
// barrado aqui, mesmo com a senha certa.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	usuario, err := uc.UsuarioRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, &DomainError{
			Code:    "INVALID_CREDENTIALS",
			Message: "email ou senha inválidos",
			Err:     entity.ErrUsuarioNotFound,
		}
	}

	if !auth.CheckPassword(input.Senha, usuario.SenhaHash) {
		return nil, &DomainError{
			Code:    "INVALID_CREDENTIALS",
			Message: "email ou senha inválidos",
		}
	}

	if !usuario.Ativo() {
		return nil, &DomainError{
			Code:    "USUARIO_INATIVO",
			Message: "acesso desativado, fale com o administrador",
		}
	}

	token, err := uc.Tokens.Generate(usuario.ID, usuario.Role)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "TOKEN_ERROR",
			Message: "failed to issue token: " + err.Error(),
			Err:     err,
		}
	}

	return &LoginOutput{
		Token: token,
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Role:  usuario.Role,
	}, nil
}

type RegisterClienteUseCase struct {
	UsuarioRepo UsuarioRepositoryInterface
}

func NewRegisterClienteUseCase(usuarioRepo UsuarioRepositoryInterface) *RegisterClienteUseCase {
	return &RegisterClienteUseCase{UsuarioRepo: usuarioRepo}
}

func (uc *RegisterClienteUseCase) Execute(ctx context.Context, input RegisterClienteInput) (*entity.Usuario, error) {
	if errs := ValidateRegisterClienteInput(input); len(errs) > 0 {
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

	cliente, err := entity.NewCliente(input.Nome, input.Email, senhaHash)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error(), Err: err}
	}

	if err := uc.UsuarioRepo.Create(ctx, cliente); err != nil {
		if err == entity.ErrEmailAlreadyExists {
			return nil, &DomainError{
				Code:    "EMAIL_ALREADY_EXISTS",
				Message: "email já cadastrado: " + input.Email,
				Err:     err,
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist cliente: " + err.Error(),
			Err:     err,
		}
	}

	return cliente, nil
}
