package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorito marca um imóvel na lista de um cliente. Os campos de exibição
// são snapshots: se o imóvel for apagado depois, o card do favorito
// continua renderizável. CorretorID é desnormalizado para permitir a
// varredura de favoritos de todos os clientes de um corretor.
type Favorito struct {
	ID            string    `json:"id" bson:"_id"`
	ClienteID     string    `json:"cliente_id" bson:"clienteId"`
	ImovelID      string    `json:"imovel_id" bson:"imovelId"`
	CorretorID    string    `json:"corretor_id" bson:"corretorId"`
	Titulo        string    `json:"titulo" bson:"titulo"`
	PrecoCentavos int64     `json:"preco_centavos" bson:"precoCentavos"`
	FotoURL       string    `json:"foto_url,omitempty" bson:"fotoUrl,omitempty"`
	FavoritadoEm  time.Time `json:"favoritado_em" bson:"favoritadoEm"`
}

func NewFavorito(clienteID string, imovel *Imovel) *Favorito {
	foto := ""
	if len(imovel.Fotos) > 0 {
		foto = imovel.Fotos[0]
	}
	return &Favorito{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		ImovelID:      imovel.ID,
		CorretorID:    imovel.CorretorID,
		Titulo:        imovel.Titulo,
		PrecoCentavos: imovel.PrecoCentavos,
		FotoURL:       foto,
		FavoritadoEm:  time.Now(),
	}
}
