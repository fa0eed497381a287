package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TipoCasa        = "casa"
	TipoApartamento = "apartamento"
	TipoTerreno     = "terreno"
)

const (
	FinalidadeVenda   = "venda"
	FinalidadeAluguel = "aluguel"
)

const (
	ImovelDisponivel = "disponivel"
	ImovelVendido    = "vendido"
	ImovelAlugado    = "alugado"
)

// Value Object: Endereco
type Endereco struct {
	Rua    string `json:"rua" bson:"rua"`
	Numero string `json:"numero" bson:"numero"`
	Bairro string `json:"bairro" bson:"bairro"`
	Cidade string `json:"cidade" bson:"cidade"`
	CEP    string `json:"cep" bson:"cep"`
}

type Caracteristicas struct {
	Quartos      int `json:"quartos" bson:"quartos"`
	Suites       int `json:"suites" bson:"suites"`
	Banheiros    int `json:"banheiros" bson:"banheiros"`
	VagasGaragem int `json:"vagas_garagem" bson:"vagasGaragem"`
	AreaTotal    int `json:"area_total" bson:"areaTotal"`
}

type Imovel struct {
	ID              string          `json:"id" bson:"_id"`
	CorretorID      string          `json:"corretor_id" bson:"corretorId"`
	Titulo          string          `json:"titulo" bson:"titulo"`
	Descricao       string          `json:"descricao" bson:"descricao"`
	Tipo            string          `json:"tipo" bson:"tipo"`
	Finalidade      string          `json:"finalidade" bson:"finalidade"`
	PrecoCentavos   int64           `json:"preco_centavos" bson:"precoCentavos"`
	Status          string          `json:"status" bson:"status"`
	Endereco        Endereco        `json:"endereco" bson:"endereco"`
	Caracteristicas Caracteristicas `json:"caracteristicas" bson:"caracteristicas"`
	Fotos           []string        `json:"fotos" bson:"fotos"`
	VideoURL        string          `json:"video_url,omitempty" bson:"videoUrl,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"createdAt"`
}

func NewImovel(corretorID string) *Imovel {
	return &Imovel{
		ID:         uuid.New().String(),
		CorretorID: corretorID,
		Tipo:       TipoCasa,
		Finalidade: FinalidadeVenda,
		Status:     ImovelDisponivel,
		Fotos:      []string{},
		CreatedAt:  time.Now(),
	}
}

func (i *Imovel) Validate() error {
	if i.Titulo == "" {
		return errors.New("titulo is required")
	}
	if i.CorretorID == "" {
		return errors.New("corretor is required")
	}
	if i.PrecoCentavos < 0 {
		return errors.New("preco must not be negative")
	}
	switch i.Tipo {
	case TipoCasa, TipoApartamento, TipoTerreno:
	default:
		return errors.New("tipo inválido")
	}
	switch i.Finalidade {
	case FinalidadeVenda, FinalidadeAluguel:
	default:
		return errors.New("finalidade inválida")
	}
	return nil
}
