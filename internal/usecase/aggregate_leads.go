package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type AggregateLeadsUseCase struct {
	FavoritoRepo FavoritoRepositoryInterface
	UsuarioRepo  UsuarioRepositoryInterface
}

func NewAggregateLeadsUseCase(favoritoRepo FavoritoRepositoryInterface, usuarioRepo UsuarioRepositoryInterface) *AggregateLeadsUseCase {
	return &AggregateLeadsUseCase{
		FavoritoRepo: favoritoRepo,
		UsuarioRepo:  usuarioRepo,
	}
}

// Execute monta os leads do corretor a partir dos favoritos de todos os
// clientes. Agrupa por cliente, resolve o perfil uma vez por cliente,
// ordena os favoritos de cada grupo do mais recente para o mais antigo e
// os grupos pelo favorito mais recente de cada um. Perfil irresolvível
// não aborta a agregação: o grupo é pulado e reportado em Ignorados.
func (uc *AggregateLeadsUseCase) Execute(ctx context.Context, corretorID string) (*LeadResult, error) {
	favoritos, err := uc.FavoritoRepo.ListByCorretor(ctx, corretorID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list favoritos: " + err.Error(),
			Err:     err,
		}
	}

	// Agrupa preservando a ordem de primeira aparição; em empate de
	// timestamp máximo a ordem fica estável por inserção.
	grupos := map[string][]*entity.Favorito{}
	var ordem []string
	for _, f := range favoritos {
		if _, visto := grupos[f.ClienteID]; !visto {
			ordem = append(ordem, f.ClienteID)
		}
		grupos[f.ClienteID] = append(grupos[f.ClienteID], f)
	}

	result := &LeadResult{Leads: []*entity.Lead{}}

	for _, clienteID := range ordem {
		cliente, err := uc.UsuarioRepo.FindByID(ctx, clienteID)
		if err != nil {
			log.Printf("⚠️ Lead ignorado: perfil do cliente %s não resolvido: %v", clienteID, err)
			result.Ignorados = append(result.Ignorados, clienteID)
			continue
		}

		favs := grupos[clienteID]
		sort.SliceStable(favs, func(i, j int) bool {
			return favs[i].FavoritadoEm.After(favs[j].FavoritadoEm)
		})

		result.Leads = append(result.Leads, &entity.Lead{
			ClienteID: cliente.ID,
			Nome:      cliente.Nome,
			Email:     cliente.Email,
			Telefone:  cliente.Telefone,
			FotoURL:   cliente.FotoURL,
			Favoritos: favs,
		})
	}

	sort.SliceStable(result.Leads, func(i, j int) bool {
		return result.Leads[i].UltimaAtividade().After(result.Leads[j].UltimaAtividade())
	})

	return result, nil
}
