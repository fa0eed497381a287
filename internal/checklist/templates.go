// Package checklist mantém os modelos fixos de processo. A tabela é
// compilada no binário; não existe edição de modelo em runtime.
package checklist

import "github.com/xcampos9/imovelhub/internal/entity"

const (
	FinanciamentoCaixa = "Financiamento Caixa - MCMV"
	VendaTerreno       = "Venda de Terreno"
	LocacaoFiador      = "Locação com Fiador"
)

var modelos = map[string][]string{
	FinanciamentoCaixa: {
		"Simulação de Financiamento",
		"Coleta de Documentos do Cliente",
		"Análise de Crédito na Caixa",
		"Avaliação do Imóvel",
		"Emissão do Contrato",
		"Assinatura e Registro",
	},
	VendaTerreno: {
		"Verificação de Matrícula",
		"Coleta de Documentos (Vendedor/Comprador)",
		"Elaboração do Contrato de Compra e Venda",
		"Assinatura do Contrato",
		"Escritura e Registro",
	},
	LocacaoFiador: {
		"Coleta de Documentos (Locatário/Fiador)",
		"Análise Cadastral",
		"Elaboração do Contrato de Locação",
		"Vistoria do Imóvel",
		"Assinatura do Contrato",
	},
}

// ordem de exibição nos selects da UI
var ordem = []string{FinanciamentoCaixa, VendaTerreno, LocacaoFiador}

// StepsFor devolve uma cópia nova das etapas do modelo, todas pendentes.
// O segundo retorno é false para modelo desconhecido; o chamador deve
// tratar isso como erro de entrada, nunca seguir com checklist vazio.
func StepsFor(tipoProcesso string) ([]entity.Etapa, bool) {
	nomes, ok := modelos[tipoProcesso]
	if !ok {
		return nil, false
	}
	etapas := make([]entity.Etapa, 0, len(nomes))
	for _, nome := range nomes {
		etapas = append(etapas, entity.Etapa{Nome: nome, Status: entity.EtapaPendente})
	}
	return etapas, true
}

// Modelos lista os nomes de modelo na ordem fixa de exibição.
func Modelos() []string {
	out := make([]string, len(ordem))
	copy(out, ordem)
	return out
}
