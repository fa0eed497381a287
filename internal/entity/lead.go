package entity

import "time"

// Lead é uma projeção de leitura: um cliente que favoritou imóveis do
// corretor, com os favoritos do mais recente para o mais antigo. Não é
// persistido; é remontado a cada consulta a partir dos favoritos.
type Lead struct {
	ClienteID string      `json:"cliente_id"`
	Nome      string      `json:"nome"`
	Email     string      `json:"email"`
	Telefone  string      `json:"telefone,omitempty"`
	FotoURL   string      `json:"foto_url,omitempty"`
	Favoritos []*Favorito `json:"favoritos"`
}

// UltimaAtividade é o favorito mais recente do lead. Assume Favoritos
// já ordenados do mais novo para o mais antigo.
func (l *Lead) UltimaAtividade() time.Time {
	if len(l.Favoritos) == 0 {
		return time.Time{}
	}
	return l.Favoritos[0].FavoritadoEm
}
