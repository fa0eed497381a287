package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/xcampos9/imovelhub/internal/entity"
)

const defaultModel = "gemini-2.5-flash"

// Client gera a copy de anúncio de um imóvel via Gemini.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

func (c *Client) GerarDescricao(ctx context.Context, imovel *entity.Imovel) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(buildPrompt(imovel)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	texto := result.Text()
	if texto == "" {
		return "", fmt.Errorf("gemini: resposta vazia")
	}
	return texto, nil
}

func buildPrompt(imovel *entity.Imovel) string {
	return fmt.Sprintf(`Aja como um corretor de imóveis especialista em marketing digital.
Sua tarefa é criar uma descrição de anúncio de imóvel que seja profissional, atraente e otimizada para vendas.

**Instruções:**
- Use um tom vendedor e convidativo.
- Destaque os principais benefícios e o estilo de vida que o imóvel proporciona.
- Organize o texto em parágrafos curtos e fáceis de ler.
- Inicie com um título chamativo.
- Finalize com uma chamada para ação (call to action), convidando o leitor a agendar uma visita.
- **NÃO** inclua informações de contato como telefone ou email.

**Dados do Imóvel:**
- Título: %s
- Tipo: %s
- Finalidade: %s
- Preço: R$ %.2f
- Endereço: %s, %s
- Características Principais: %d quartos, %d suítes, %d banheiros, %d vagas de garagem.
- Área Total: %d m².
- Descrição do Corretor: %s

Agora, gere a descrição do anúncio.`,
		imovel.Titulo,
		imovel.Tipo,
		imovel.Finalidade,
		float64(imovel.PrecoCentavos)/100,
		imovel.Endereco.Bairro,
		imovel.Endereco.Cidade,
		imovel.Caracteristicas.Quartos,
		imovel.Caracteristicas.Suites,
		imovel.Caracteristicas.Banheiros,
		imovel.Caracteristicas.VagasGaragem,
		imovel.Caracteristicas.AreaTotal,
		imovel.Descricao,
	)
}
