package usecase

import (
	"context"

	"github.com/xcampos9/imovelhub/internal/entity"
)

// GenerateDescricaoUseCase é o copiloto de anúncios: manda os dados do
// imóvel para o serviço de texto generativo e devolve a copy pronta.
// Totalmente desacoplado do pipeline de transações.
type GenerateDescricaoUseCase struct {
	ImovelRepo ImovelRepositoryInterface
	Generator  TextGenerator
}

func NewGenerateDescricaoUseCase(imovelRepo ImovelRepositoryInterface, generator TextGenerator) *GenerateDescricaoUseCase {
	return &GenerateDescricaoUseCase{
		ImovelRepo: imovelRepo,
		Generator:  generator,
	}
}

func (uc *GenerateDescricaoUseCase) Execute(ctx context.Context, corretorID, imovelID string) (string, error) {
	imovel, err := uc.ImovelRepo.FindByID(ctx, imovelID)
	if err != nil || imovel.CorretorID != corretorID {
		return "", &DomainError{
			Code:    "IMOVEL_NOT_FOUND",
			Message: "imóvel não encontrado: " + imovelID,
			Err:     entity.ErrImovelNotFound,
		}
	}

	texto, err := uc.Generator.GerarDescricao(ctx, imovel)
	if err != nil {
		return "", &TechnicalError{
			Code:    "AI_ERROR",
			Message: "falha ao gerar descrição: " + err.Error(),
			Err:     err,
		}
	}

	return texto, nil
}
