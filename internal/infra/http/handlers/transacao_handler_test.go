package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xcampos9/imovelhub/internal/checklist"
	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/http/handlers"
	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

// MockTransacaoRepository - Mock para TransacaoRepositoryInterface
type MockTransacaoRepository struct {
	mock.Mock
}

func (m *MockTransacaoRepository) Create(ctx context.Context, t *entity.Transacao) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransacaoRepository) FindByID(ctx context.Context, corretorID, id string) (*entity.Transacao, error) {
	args := m.Called(ctx, corretorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transacao), args.Error(1)
}

func (m *MockTransacaoRepository) ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Transacao, error) {
	args := m.Called(ctx, corretorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transacao), args.Error(1)
}

func (m *MockTransacaoRepository) UpdateStatus(ctx context.Context, corretorID, id, status string) error {
	args := m.Called(ctx, corretorID, id, status)
	return args.Error(0)
}

func (m *MockTransacaoRepository) UpdateEtapas(ctx context.Context, corretorID, id string, etapas []entity.Etapa) error {
	args := m.Called(ctx, corretorID, id, etapas)
	return args.Error(0)
}

func (m *MockTransacaoRepository) AddDocumento(ctx context.Context, corretorID, id string, doc entity.Documento) error {
	args := m.Called(ctx, corretorID, id, doc)
	return args.Error(0)
}

func (m *MockTransacaoRepository) RemoveDocumento(ctx context.Context, corretorID, id, documentoID string) error {
	args := m.Called(ctx, corretorID, id, documentoID)
	return args.Error(0)
}

func (m *MockTransacaoRepository) Delete(ctx context.Context, corretorID, id string) error {
	args := m.Called(ctx, corretorID, id)
	return args.Error(0)
}

// MockImovelRepository - Mock para ImovelRepositoryInterface
type MockImovelRepository struct {
	mock.Mock
}

func (m *MockImovelRepository) Create(ctx context.Context, i *entity.Imovel) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockImovelRepository) FindByID(ctx context.Context, id string) (*entity.Imovel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Imovel), args.Error(1)
}

func (m *MockImovelRepository) ListAll(ctx context.Context) ([]*entity.Imovel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Imovel), args.Error(1)
}

func (m *MockImovelRepository) ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Imovel, error) {
	args := m.Called(ctx, corretorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Imovel), args.Error(1)
}

func (m *MockImovelRepository) Update(ctx context.Context, i *entity.Imovel) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockImovelRepository) Delete(ctx context.Context, corretorID, id string) error {
	args := m.Called(ctx, corretorID, id)
	return args.Error(0)
}

func (m *MockImovelRepository) DeleteAny(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImovelRepository) Stats(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func newTransacaoRouter(h *handlers.TransacaoHandler, corretorID string) http.Handler {
	r := chi.NewRouter()
	// Injeta o usuário no contexto como o middleware de auth faria.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), middleware.UserIDKey, corretorID)
			ctx = context.WithValue(ctx, middleware.RoleKey, entity.RoleCorretor)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/admin/transacoes", h.Create)
	r.Get("/admin/transacoes/board", h.Board)
	r.Patch("/admin/transacoes/{id}/status", h.MoveStatus)
	return r
}

func TestTransacaoHandler(t *testing.T) {
	corretorID := "corretor-1"

	t.Run("POST cria transação com o checklist do modelo", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		handler := handlers.NewTransacaoHandler(
			usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo),
			usecase.NewTransacaoPipelineUseCase(mockTransacaoRepo, nil),
		)

		imovel := &entity.Imovel{ID: "imovel-1", CorretorID: corretorID, Titulo: "Casa no Centro"}
		mockImovelRepo.On("FindByID", mock.Anything, "imovel-1").Return(imovel, nil)
		mockTransacaoRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		body, _ := json.Marshal(usecase.CreateTransacaoInput{
			NomeCliente:  "Maria Souza",
			ImovelID:     "imovel-1",
			TipoProcesso: checklist.FinanciamentoCaixa,
		})

		req := httptest.NewRequest("POST", "/admin/transacoes", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newTransacaoRouter(handler, corretorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var criada entity.Transacao
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &criada))
		assert.Equal(t, entity.StatusNovo, criada.Status)
		assert.Len(t, criada.Etapas, 6)
	})

	t.Run("POST com modelo desconhecido retorna 422", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		handler := handlers.NewTransacaoHandler(
			usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo),
			usecase.NewTransacaoPipelineUseCase(mockTransacaoRepo, nil),
		)

		body, _ := json.Marshal(usecase.CreateTransacaoInput{
			NomeCliente:  "Maria Souza",
			ImovelID:     "imovel-1",
			TipoProcesso: "Modelo Que Nao Existe",
		})

		req := httptest.NewRequest("POST", "/admin/transacoes", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newTransacaoRouter(handler, corretorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockImovelRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("GET board projeta as quatro colunas", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		handler := handlers.NewTransacaoHandler(
			usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo),
			usecase.NewTransacaoPipelineUseCase(mockTransacaoRepo, nil),
		)

		mockTransacaoRepo.On("ListByCorretor", mock.Anything, corretorID).Return([]*entity.Transacao{
			{ID: "tx-1", Status: entity.StatusNovo},
			{ID: "tx-2", Status: entity.StatusConcluido},
		}, nil)

		req := httptest.NewRequest("GET", "/admin/transacoes/board", nil)
		w := httptest.NewRecorder()
		newTransacaoRouter(handler, corretorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var board map[string][]*entity.Transacao
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
		assert.Len(t, board, 4)
		assert.Len(t, board[entity.StatusNovo], 1)
		assert.Empty(t, board[entity.StatusEmAndamento])
	})

	t.Run("PATCH status inválido retorna 422 sem tocar o banco", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		handler := handlers.NewTransacaoHandler(
			usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo),
			usecase.NewTransacaoPipelineUseCase(mockTransacaoRepo, nil),
		)

		body := []byte(`{"status":"Arquivado"}`)
		req := httptest.NewRequest("PATCH", "/admin/transacoes/tx-1/status", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newTransacaoRouter(handler, corretorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockTransacaoRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PATCH status válido retorna 204", func(t *testing.T) {
		mockTransacaoRepo := new(MockTransacaoRepository)
		mockImovelRepo := new(MockImovelRepository)
		handler := handlers.NewTransacaoHandler(
			usecase.NewCreateTransacaoUseCase(mockTransacaoRepo, mockImovelRepo),
			usecase.NewTransacaoPipelineUseCase(mockTransacaoRepo, nil),
		)

		mockTransacaoRepo.On("UpdateStatus", mock.Anything, corretorID, "tx-1", entity.StatusEmAndamento).Return(nil)

		body := []byte(`{"status":"Em Andamento"}`)
		req := httptest.NewRequest("PATCH", "/admin/transacoes/tx-1/status", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newTransacaoRouter(handler, corretorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockTransacaoRepo.AssertExpectations(t)
	})
}
