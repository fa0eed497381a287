package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xcampos9/imovelhub/internal/checklist"
	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

func TestCreateTransacao(t *testing.T) {
	corretorID := "corretor-1"
	imovel := &entity.Imovel{
		ID:         "imovel-1",
		CorretorID: corretorID,
		Titulo:     "Casa no Centro",
	}

	t.Run("Sucesso cria com checklist do modelo e status Novo", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		uc := usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo)

		mockImovelRepo.On("FindByID", mock.Anything, "imovel-1").Return(imovel, nil)
		mockTransacaoRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		transacao, err := uc.Execute(context.Background(), corretorID, usecase.CreateTransacaoInput{
			NomeCliente:  "Maria Souza",
			ImovelID:     "imovel-1",
			TipoProcesso: checklist.FinanciamentoCaixa,
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusNovo, transacao.Status)
		assert.Equal(t, "Casa no Centro", transacao.ImovelTitulo,
			"Título do imóvel deve ser copiado na criação")

		esperadas, _ := checklist.StepsFor(checklist.FinanciamentoCaixa)
		assert.Equal(t, esperadas, transacao.Etapas,
			"Checklist deve vir do modelo escolhido, todas pendentes")

		mockTransacaoRepo.AssertExpectations(t)
	})

	t.Run("Modelo desconhecido falha antes de qualquer acesso ao banco", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		uc := usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo)

		transacao, err := uc.Execute(context.Background(), corretorID, usecase.CreateTransacaoInput{
			NomeCliente:  "Maria Souza",
			ImovelID:     "imovel-1",
			TipoProcesso: "Modelo Que Nao Existe",
		})

		assert.Nil(t, transacao)
		assert.ErrorIs(t, err, entity.ErrTemplateDesconhecido)
		mockImovelRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		mockTransacaoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Imóvel de outro corretor é tratado como não encontrado", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		uc := usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo)

		alheio := &entity.Imovel{ID: "imovel-2", CorretorID: "corretor-2", Titulo: "Apartamento"}
		mockImovelRepo.On("FindByID", mock.Anything, "imovel-2").Return(alheio, nil)

		transacao, err := uc.Execute(context.Background(), corretorID, usecase.CreateTransacaoInput{
			NomeCliente:  "Maria Souza",
			ImovelID:     "imovel-2",
			TipoProcesso: checklist.VendaTerreno,
		})

		assert.Nil(t, transacao)
		assert.ErrorIs(t, err, entity.ErrImovelNotFound)
		mockTransacaoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Falha do banco vira erro técnico", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		uc := usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo)

		mockImovelRepo.On("FindByID", mock.Anything, "imovel-1").Return(imovel, nil)
		mockTransacaoRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := uc.Execute(context.Background(), corretorID, usecase.CreateTransacaoInput{
			NomeCliente:  "Maria Souza",
			ImovelID:     "imovel-1",
			TipoProcesso: checklist.LocacaoFiador,
		})

		assert.True(t, usecase.IsTechnicalError(err))
	})

	t.Run("Entrada vazia falha na validação", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		uc := usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo)

		_, err := uc.Execute(context.Background(), corretorID, usecase.CreateTransacaoInput{})

		assert.True(t, usecase.IsDomainError(err))
		mockImovelRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
