package usecase

import (
	"context"
	"io"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/queue"
)

type UsuarioRepositoryInterface interface {
	Create(ctx context.Context, u *entity.Usuario) error
	FindByID(ctx context.Context, id string) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	ListCorretores(ctx context.Context) ([]*entity.Usuario, error)
	CountCorretores(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePersonalizacao(ctx context.Context, id string, p entity.Personalizacao) error
	Delete(ctx context.Context, id string) error
}

type ImovelRepositoryInterface interface {
	Create(ctx context.Context, i *entity.Imovel) error
	FindByID(ctx context.Context, id string) (*entity.Imovel, error)
	ListAll(ctx context.Context) ([]*entity.Imovel, error)
	ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Imovel, error)
	Update(ctx context.Context, i *entity.Imovel) error
	Delete(ctx context.Context, corretorID, id string) error
	// DeleteAny ignora o dono; uso exclusivo do superadmin.
	DeleteAny(ctx context.Context, id string) error
	Stats(ctx context.Context) (total int64, precoMedioVendaCentavos int64, err error)
}

type TransacaoRepositoryInterface interface {
	Create(ctx context.Context, t *entity.Transacao) error
	FindByID(ctx context.Context, corretorID, id string) (*entity.Transacao, error)
	ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Transacao, error)
	UpdateStatus(ctx context.Context, corretorID, id, status string) error
	UpdateEtapas(ctx context.Context, corretorID, id string, etapas []entity.Etapa) error
	AddDocumento(ctx context.Context, corretorID, id string, doc entity.Documento) error
	RemoveDocumento(ctx context.Context, corretorID, id, documentoID string) error
	Delete(ctx context.Context, corretorID, id string) error
}

type FavoritoRepositoryInterface interface {
	Create(ctx context.Context, f *entity.Favorito) error
	Delete(ctx context.Context, clienteID, imovelID string) error
	DeleteByID(ctx context.Context, id string) error
	ListByCliente(ctx context.Context, clienteID string) ([]*entity.Favorito, error)
	// ListByCorretor é a varredura "collection-group": favoritos de todos
	// os clientes filtrados pelo corretorId desnormalizado.
	ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Favorito, error)
}

type LeadProducerInterface interface {
	PublishNovoLead(ctx context.Context, payload queue.LeadEventPayload) error
}

type EmailService interface {
	SendBoasVindasCorretor(to, nome string) error
}

type TextGenerator interface {
	GerarDescricao(ctx context.Context, imovel *entity.Imovel) (string, error)
}

type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}
