package entity

import (
	"time"

	"github.com/google/uuid"
)

// Colunas fixas do kanban de transações. A ordem aqui é a ordem de
// exibição do board.
const (
	StatusNovo        = "Novo"
	StatusEmAndamento = "Em Andamento"
	StatusConcluido   = "Concluído"
	StatusCancelado   = "Cancelado"
)

const (
	EtapaPendente  = "pendente"
	EtapaConcluida = "concluido"
)

// StatusValido aceita apenas os quatro status do pipeline.
func StatusValido(s string) bool {
	switch s {
	case StatusNovo, StatusEmAndamento, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// Etapa é um passo do checklist de uma transação. Nome e posição são
// fixados na criação; só o Status muda depois.
type Etapa struct {
	Nome   string `json:"nome" bson:"nome"`
	Status string `json:"status" bson:"status"`
}

// Documento é um arquivo enviado durante o processo (contrato, matrícula,
// comprovantes). A URL vem do host de mídia, aqui só fica o metadado.
type Documento struct {
	ID          string    `json:"id" bson:"id"`
	NomeArquivo string    `json:"nome_arquivo" bson:"nomeArquivo"`
	URL         string    `json:"url" bson:"url"`
	EnviadoPor  string    `json:"enviado_por" bson:"enviadoPor"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
}

// Transacao é um processo de venda/locação em andamento: um cliente, um
// imóvel e um checklist com status de pipeline.
type Transacao struct {
	ID          string `json:"id" bson:"_id"`
	CorretorID  string `json:"corretor_id" bson:"corretorId"`
	NomeCliente string `json:"nome_cliente" bson:"nomeCliente"`
	ImovelID    string `json:"imovel_id" bson:"imovelId"`
	// ImovelTitulo é um snapshot do título na criação; edições posteriores
	// do imóvel não são propagadas.
	ImovelTitulo string      `json:"imovel_titulo" bson:"imovelTitulo"`
	TipoProcesso string      `json:"tipo_processo" bson:"tipoProcesso"`
	Status       string      `json:"status" bson:"status"`
	Etapas       []Etapa     `json:"etapas" bson:"etapas"`
	Documentos   []Documento `json:"documentos" bson:"documentos"`
	CreatedAt    time.Time   `json:"created_at" bson:"createdAt"`
}

func NewTransacao(corretorID, nomeCliente, imovelID, imovelTitulo, tipoProcesso string, etapas []Etapa) *Transacao {
	return &Transacao{
		ID:           uuid.New().String(),
		CorretorID:   corretorID,
		NomeCliente:  nomeCliente,
		ImovelID:     imovelID,
		ImovelTitulo: imovelTitulo,
		TipoProcesso: tipoProcesso,
		Status:       StatusNovo,
		Etapas:       etapas,
		Documentos:   []Documento{},
		CreatedAt:    time.Now(),
	}
}

// ToggleEtapa alterna pendente/concluido da etapa indicada. As demais
// etapas não são tocadas.
func (t *Transacao) ToggleEtapa(index int) error {
	if index < 0 || index >= len(t.Etapas) {
		return ErrEtapaInvalida
	}
	if t.Etapas[index].Status == EtapaConcluida {
		t.Etapas[index].Status = EtapaPendente
	} else {
		t.Etapas[index].Status = EtapaConcluida
	}
	return nil
}

// Progresso retorna o percentual de etapas concluídas (0 a 100).
func (t *Transacao) Progresso() float64 {
	if len(t.Etapas) == 0 {
		return 0
	}
	concluidas := 0
	for _, e := range t.Etapas {
		if e.Status == EtapaConcluida {
			concluidas++
		}
	}
	return float64(concluidas) / float64(len(t.Etapas)) * 100
}
