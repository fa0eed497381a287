package usecase

import (
	"context"
	"errors"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/queue"
)

type MarcarFavoritoUseCase struct {
	FavoritoRepo FavoritoRepositoryInterface
	ImovelRepo   ImovelRepositoryInterface
	UsuarioRepo  UsuarioRepositoryInterface
	Producer     LeadProducerInterface
}

func NewMarcarFavoritoUseCase(
	favoritoRepo FavoritoRepositoryInterface,
	imovelRepo ImovelRepositoryInterface,
	usuarioRepo UsuarioRepositoryInterface,
	producer LeadProducerInterface,
) *MarcarFavoritoUseCase {
	return &MarcarFavoritoUseCase{
		FavoritoRepo: favoritoRepo,
		ImovelRepo:   imovelRepo,
		UsuarioRepo:  usuarioRepo,
		Producer:     producer,
	}
}

// Execute grava o favorito e publica o evento de lead em duas fases:
// se a publicação falhar, o favorito recém-criado é removido e o erro
// sobe para o cliente. Nada de estado meio-aplicado.
func (uc *MarcarFavoritoUseCase) Execute(ctx context.Context, clienteID, imovelID string) (*entity.Favorito, error) {
	imovel, err := uc.ImovelRepo.FindByID(ctx, imovelID)
	if err != nil {
		return nil, &DomainError{
			Code:    "IMOVEL_NOT_FOUND",
			Message: "imóvel não encontrado: " + imovelID,
			Err:     entity.ErrImovelNotFound,
		}
	}

	cliente, err := uc.UsuarioRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, &DomainError{
			Code:    "CLIENTE_NOT_FOUND",
			Message: "cliente não encontrado",
			Err:     entity.ErrUsuarioNotFound,
		}
	}

	favorito := entity.NewFavorito(clienteID, imovel)

	saga := NewSaga()

	saga.AddOperation("create_favorito", func(ctx context.Context) error {
		return uc.FavoritoRepo.Create(ctx, favorito)
	})
	saga.AddCompensation("delete_favorito", func(ctx context.Context) error {
		return uc.FavoritoRepo.DeleteByID(ctx, favorito.ID)
	})

	saga.AddOperation("publish_novo_lead", func(ctx context.Context) error {
		return uc.Producer.PublishNovoLead(ctx, queue.LeadEventPayload{
			CorretorID:      imovel.CorretorID,
			ClienteID:       cliente.ID,
			ClienteNome:     cliente.Nome,
			ClienteEmail:    cliente.Email,
			ClienteTelefone: cliente.Telefone,
			ImovelID:        imovel.ID,
			ImovelTitulo:    imovel.Titulo,
			FavoritadoEm:    favorito.FavoritadoEm,
		})
	})

	if err := saga.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrFavoritoDuplicado) {
			return nil, entity.ErrFavoritoDuplicado
		}
		return nil, &TechnicalError{
			Code:    "REMOTE_WRITE_FAILED",
			Message: "failed to persist favorito: " + err.Error(),
			Err:     err,
		}
	}

	return favorito, nil
}

// Desmarcar remove o favorito do cliente para o imóvel.
func (uc *MarcarFavoritoUseCase) Desmarcar(ctx context.Context, clienteID, imovelID string) error {
	return uc.FavoritoRepo.Delete(ctx, clienteID, imovelID)
}

// ListarDoCliente devolve os favoritos do próprio cliente, mais recentes
// primeiro.
func (uc *MarcarFavoritoUseCase) ListarDoCliente(ctx context.Context, clienteID string) ([]*entity.Favorito, error) {
	return uc.FavoritoRepo.ListByCliente(ctx, clienteID)
}
