package usecase

import "github.com/xcampos9/imovelhub/internal/entity"

// Board é a projeção kanban: cada um dos quatro status fixos mapeado
// para a sub-sequência de transações naquela coluna.
type Board map[string][]*entity.Transacao

// BoardColumns devolve as colunas na ordem de exibição.
func BoardColumns() []string {
	return []string{
		entity.StatusNovo,
		entity.StatusEmAndamento,
		entity.StatusConcluido,
		entity.StatusCancelado,
	}
}

// ProjectBoard particiona as transações nas quatro colunas preservando a
// ordem de entrada. Toda transação cai em exatamente uma coluna (status é
// obrigatório e único). A projeção é derivada e sem estado: recalculada
// inteira a cada mudança, nunca cacheada.
func ProjectBoard(transacoes []*entity.Transacao) Board {
	board := Board{}
	for _, col := range BoardColumns() {
		board[col] = []*entity.Transacao{}
	}

	for _, t := range transacoes {
		board[t.Status] = append(board[t.Status], t)
	}

	return board
}
