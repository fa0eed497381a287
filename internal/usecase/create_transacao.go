package usecase

import (
	"context"

	"github.com/xcampos9/imovelhub/internal/checklist"
	"github.com/xcampos9/imovelhub/internal/entity"
)

type CreateTransacaoUseCase struct {
	TransacaoRepo TransacaoRepositoryInterface
	ImovelRepo    ImovelRepositoryInterface
}

func NewCreateTransacaoUseCase(transacaoRepo TransacaoRepositoryInterface, imovelRepo ImovelRepositoryInterface) *CreateTransacaoUseCase {
	return &CreateTransacaoUseCase{
		TransacaoRepo: transacaoRepo,
		ImovelRepo:    imovelRepo,
	}
}

// Execute abre uma transação: resolve o modelo de checklist, tira o
// snapshot do título do imóvel e persiste com status Novo. Modelo
// desconhecido ou imóvel de outro corretor falham antes de qualquer
// escrita no banco.
func (uc *CreateTransacaoUseCase) Execute(ctx context.Context, corretorID string, input CreateTransacaoInput) (*entity.Transacao, error) {
	if errs := ValidateCreateTransacaoInput(input); len(errs) > 0 {
		return nil, joinValidationErrors(errs)
	}

	etapas, ok := checklist.StepsFor(input.TipoProcesso)
	if !ok {
		return nil, &DomainError{
			Code:    "TEMPLATE_DESCONHECIDO",
			Message: "modelo de processo desconhecido: " + input.TipoProcesso,
			Err:     entity.ErrTemplateDesconhecido,
		}
	}

	imovel, err := uc.ImovelRepo.FindByID(ctx, input.ImovelID)
	if err != nil {
		return nil, &DomainError{
			Code:    "IMOVEL_NOT_FOUND",
			Message: "imóvel não encontrado: " + input.ImovelID,
			Err:     entity.ErrImovelNotFound,
		}
	}
	// O corretor só abre transações sobre os próprios imóveis.
	if imovel.CorretorID != corretorID {
		return nil, &DomainError{
			Code:    "IMOVEL_NOT_FOUND",
			Message: "imóvel não encontrado: " + input.ImovelID,
			Err:     entity.ErrImovelNotFound,
		}
	}

	transacao := entity.NewTransacao(corretorID, input.NomeCliente, imovel.ID, imovel.Titulo, input.TipoProcesso, etapas)

	if err := uc.TransacaoRepo.Create(ctx, transacao); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist transacao: " + err.Error(),
			Err:     err,
		}
	}

	return transacao, nil
}
