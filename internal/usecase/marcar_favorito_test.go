package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/queue"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

func TestMarcarFavorito(t *testing.T) {
	imovel := &entity.Imovel{
		ID:            "imovel-1",
		CorretorID:    "corretor-1",
		Titulo:        "Casa no Centro",
		PrecoCentavos: 45000000,
		Fotos:         []string{"https://res.cloudinary.com/demo/casa.jpg"},
	}
	cliente := &entity.Usuario{
		ID:    "cliente-1",
		Nome:  "Ana",
		Email: "ana@example.com",
		Role:  entity.RoleCliente,
	}

	t.Run("Sucesso grava o favorito e publica o evento de lead", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockImovelRepo := new(MockImovelRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		mockProducer := new(MockLeadProducer)
		uc := usecase.NewMarcarFavoritoUseCase(mockFavoritoRepo, mockImovelRepo, mockUsuarioRepo, mockProducer)

		mockImovelRepo.On("FindByID", mock.Anything, "imovel-1").Return(imovel, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-1").Return(cliente, nil)
		mockFavoritoRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockProducer.On("PublishNovoLead", mock.Anything, mock.MatchedBy(func(p queue.LeadEventPayload) bool {
			return p.CorretorID == "corretor-1" && p.ClienteNome == "Ana" && p.ImovelTitulo == "Casa no Centro"
		})).Return(nil)

		favorito, err := uc.Execute(context.Background(), "cliente-1", "imovel-1")

		assert.NoError(t, err)
		assert.Equal(t, "corretor-1", favorito.CorretorID,
			"CorretorID deve ser desnormalizado do imóvel")
		assert.Equal(t, "Casa no Centro", favorito.Titulo)
		mockProducer.AssertExpectations(t)
	})

	t.Run("Falha na publicação desfaz o favorito recém-criado", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockImovelRepo := new(MockImovelRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		mockProducer := new(MockLeadProducer)
		uc := usecase.NewMarcarFavoritoUseCase(mockFavoritoRepo, mockImovelRepo, mockUsuarioRepo, mockProducer)

		mockImovelRepo.On("FindByID", mock.Anything, "imovel-1").Return(imovel, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-1").Return(cliente, nil)
		mockFavoritoRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockProducer.On("PublishNovoLead", mock.Anything, mock.Anything).Return(errors.New("broker down"))
		mockFavoritoRepo.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

		favorito, err := uc.Execute(context.Background(), "cliente-1", "imovel-1")

		assert.Nil(t, favorito)
		assert.True(t, usecase.IsTechnicalError(err))
		mockFavoritoRepo.AssertCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Favorito duplicado sobe como conflito de domínio", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockImovelRepo := new(MockImovelRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		mockProducer := new(MockLeadProducer)
		uc := usecase.NewMarcarFavoritoUseCase(mockFavoritoRepo, mockImovelRepo, mockUsuarioRepo, mockProducer)

		mockImovelRepo.On("FindByID", mock.Anything, "imovel-1").Return(imovel, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-1").Return(cliente, nil)
		mockFavoritoRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrFavoritoDuplicado)

		_, err := uc.Execute(context.Background(), "cliente-1", "imovel-1")

		assert.ErrorIs(t, err, entity.ErrFavoritoDuplicado)
		mockProducer.AssertNotCalled(t, "PublishNovoLead", mock.Anything, mock.Anything)
	})

	t.Run("Imóvel inexistente falha antes de criar qualquer coisa", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockImovelRepo := new(MockImovelRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		mockProducer := new(MockLeadProducer)
		uc := usecase.NewMarcarFavoritoUseCase(mockFavoritoRepo, mockImovelRepo, mockUsuarioRepo, mockProducer)

		mockImovelRepo.On("FindByID", mock.Anything, "imovel-sumido").Return(nil, entity.ErrImovelNotFound)

		_, err := uc.Execute(context.Background(), "cliente-1", "imovel-sumido")

		assert.ErrorIs(t, err, entity.ErrImovelNotFound)
		mockFavoritoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
