package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/queue"
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

// MockUsuarioRepository - Mock para UsuarioRepositoryInterface
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) ListCorretores(ctx context.Context) ([]*entity.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) CountCorretores(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsuarioRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUsuarioRepository) UpdatePersonalizacao(ctx context.Context, id string, p entity.Personalizacao) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFavoritoRepository - Mock para FavoritoRepositoryInterface
type MockFavoritoRepository struct {
	mock.Mock
}

func (m *MockFavoritoRepository) Create(ctx context.Context, f *entity.Favorito) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFavoritoRepository) Delete(ctx context.Context, clienteID, imovelID string) error {
	args := m.Called(ctx, clienteID, imovelID)
	return args.Error(0)
}

func (m *MockFavoritoRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoritoRepository) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Favorito, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Favorito), args.Error(1)
}

func (m *MockFavoritoRepository) ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Favorito, error) {
	args := m.Called(ctx, corretorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Favorito), args.Error(1)
}

// MockLeadProducer - Mock para LeadProducerInterface
type MockLeadProducer struct {
	mock.Mock
}

func (m *MockLeadProducer) PublishNovoLead(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockUploader - Mock para MediaUploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	args := m.Called(ctx, file, filename)
	return args.String(0), args.Error(1)
}

// MockEmailService - Mock para EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBoasVindasCorretor(to, nome string) error {
	args := m.Called(to, nome)
	return args.Error(0)
}
