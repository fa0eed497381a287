package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/xcampos9/imovelhub/internal/entity"
)

// TransacaoPipelineUseCase cobre as mutações do kanban: mover de coluna,
// alternar etapas do checklist e anexar documentos.
type TransacaoPipelineUseCase struct {
	Repo     TransacaoRepositoryInterface
	Uploader MediaUploader
}

func NewTransacaoPipelineUseCase(repo TransacaoRepositoryInterface, uploader MediaUploader) *TransacaoPipelineUseCase {
	return &TransacaoPipelineUseCase{
		Repo:     repo,
		Uploader: uploader,
	}
}

func (uc *TransacaoPipelineUseCase) List(ctx context.Context, corretorID string) ([]*entity.Transacao, error) {
	return uc.Repo.ListByCorretor(ctx, corretorID)
}

func (uc *TransacaoPipelineUseCase) Get(ctx context.Context, corretorID, transacaoID string) (*entity.Transacao, error) {
	return uc.Repo.FindByID(ctx, corretorID, transacaoID)
}

// MoveStatus sobrescreve o status sem tabela de transições: qualquer
// coluna alcança qualquer outra. As etapas não são tocadas.
func (uc *TransacaoPipelineUseCase) MoveStatus(ctx context.Context, corretorID, transacaoID, novoStatus string) error {
	if !entity.StatusValido(novoStatus) {
		return &DomainError{
			Code:    "STATUS_INVALIDO",
			Message: "status de transação inválido: " + novoStatus,
			Err:     entity.ErrStatusInvalido,
		}
	}
	return uc.Repo.UpdateStatus(ctx, corretorID, transacaoID, novoStatus)
}

// ToggleEtapa alterna pendente/concluido de uma etapa e persiste o
// checklist inteiro, como o documento é gravado no banco. Última escrita
// vence em toggles concorrentes na mesma transação.
func (uc *TransacaoPipelineUseCase) ToggleEtapa(ctx context.Context, corretorID, transacaoID string, etapaIndex int) (*entity.Transacao, error) {
	transacao, err := uc.Repo.FindByID(ctx, corretorID, transacaoID)
	if err != nil {
		return nil, err
	}

	if err := transacao.ToggleEtapa(etapaIndex); err != nil {
		return nil, &DomainError{
			Code:    "ETAPA_INVALIDA",
			Message: "etapa inválida",
			Err:     err,
		}
	}

	if err := uc.Repo.UpdateEtapas(ctx, corretorID, transacaoID, transacao.Etapas); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist etapas: " + err.Error(),
			Err:     err,
		}
	}

	return transacao, nil
}

type AddDocumentoInput struct {
	NomeArquivo string
	EnviadoPor  string
}

// AddDocumento sobe o arquivo no host de mídia e grava o metadado na
// transação. Upload sem URL utilizável é terminal; nada é persistido.
func (uc *TransacaoPipelineUseCase) AddDocumento(ctx context.Context, corretorID, transacaoID string, file io.Reader, input AddDocumentoInput) (*entity.Documento, error) {
	if _, err := uc.Repo.FindByID(ctx, corretorID, transacaoID); err != nil {
		return nil, err
	}

	url, err := uc.Uploader.Upload(ctx, file, input.NomeArquivo)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "UPLOAD_FAILED",
			Message: "falha no upload do arquivo: " + err.Error(),
			Err:     entity.ErrUploadFalhou,
		}
	}

	doc := entity.Documento{
		ID:          uuid.New().String(),
		NomeArquivo: input.NomeArquivo,
		URL:         url,
		EnviadoPor:  input.EnviadoPor,
		CreatedAt:   time.Now(),
	}

	if err := uc.Repo.AddDocumento(ctx, corretorID, transacaoID, doc); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist documento: " + err.Error(),
			Err:     err,
		}
	}

	return &doc, nil
}

func (uc *TransacaoPipelineUseCase) RemoveDocumento(ctx context.Context, corretorID, transacaoID, documentoID string) error {
	return uc.Repo.RemoveDocumento(ctx, corretorID, transacaoID, documentoID)
}

// Delete remove a transação do pipeline. Os documentos ficam no host de
// mídia; só o metadado some junto.
func (uc *TransacaoPipelineUseCase) Delete(ctx context.Context, corretorID, transacaoID string) error {
	return uc.Repo.Delete(ctx, corretorID, transacaoID)
}
