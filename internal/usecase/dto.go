package usecase

import "github.com/xcampos9/imovelhub/internal/entity"

type CreateTransacaoInput struct {
	NomeCliente  string `json:"nome_cliente"`
	ImovelID     string `json:"imovel_id"`
	TipoProcesso string `json:"tipo_processo"`
}

type CreateCorretorInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Telefone string `json:"telefone,omitempty"`
}

type CreateCorretorOutput struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type RegisterClienteInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginOutput struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Role  string `json:"role"`
}

// LeadResult carrega os leads agregados e os clientes pulados por perfil
// irresolvível. A agregação nunca aborta por causa de um perfil ausente;
// quem chama decide o que fazer com os ignorados.
type LeadResult struct {
	Leads     []*entity.Lead `json:"leads"`
	Ignorados []string       `json:"ignorados,omitempty"`
}

type PlatformStats struct {
	TotalCorretores         int64 `json:"total_corretores"`
	TotalImoveis            int64 `json:"total_imoveis"`
	PrecoMedioVendaCentavos int64 `json:"preco_medio_venda_centavos"`
}
