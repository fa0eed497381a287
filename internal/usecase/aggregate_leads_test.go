package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

func TestAggregateLeads(t *testing.T) {
	corretorID := "corretor-1"
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	clienteA := &entity.Usuario{ID: "cliente-a", Nome: "Ana", Email: "ana@example.com", Role: entity.RoleCliente}
	clienteB := &entity.Usuario{ID: "cliente-b", Nome: "Bruno", Email: "bruno@example.com", Role: entity.RoleCliente}

	t.Run("Agrupa por cliente e ordena pelo favorito mais recente", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		uc := usecase.NewAggregateLeadsUseCase(mockFavoritoRepo, mockUsuarioRepo)

		// Ana favoritou em t+10 e t+30, Bruno em t+20: Ana vem primeiro
		// (máximo t+30) e os favoritos dela ficam do mais novo para o mais
		// antigo.
		favoritos := []*entity.Favorito{
			{ID: "f1", ClienteID: "cliente-a", ImovelID: "im-1", FavoritadoEm: base.Add(10 * time.Minute)},
			{ID: "f2", ClienteID: "cliente-a", ImovelID: "im-2", FavoritadoEm: base.Add(30 * time.Minute)},
			{ID: "f3", ClienteID: "cliente-b", ImovelID: "im-3", FavoritadoEm: base.Add(20 * time.Minute)},
		}
		mockFavoritoRepo.On("ListByCorretor", mock.Anything, corretorID).Return(favoritos, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-a").Return(clienteA, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-b").Return(clienteB, nil)

		result, err := uc.Execute(context.Background(), corretorID)

		assert.NoError(t, err)
		assert.Len(t, result.Leads, 2)
		assert.Empty(t, result.Ignorados)

		assert.Equal(t, "cliente-a", result.Leads[0].ClienteID)
		assert.Equal(t, "cliente-b", result.Leads[1].ClienteID)

		assert.Equal(t, "f2", result.Leads[0].Favoritos[0].ID,
			"Favoritos do grupo devem vir do mais recente para o mais antigo")
		assert.Equal(t, "f1", result.Leads[0].Favoritos[1].ID)
	})

	t.Run("Perfil irresolvível não aborta, vai para Ignorados", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		uc := usecase.NewAggregateLeadsUseCase(mockFavoritoRepo, mockUsuarioRepo)

		favoritos := []*entity.Favorito{
			{ID: "f1", ClienteID: "cliente-fantasma", ImovelID: "im-1", FavoritadoEm: base.Add(time.Hour)},
			{ID: "f2", ClienteID: "cliente-b", ImovelID: "im-2", FavoritadoEm: base},
		}
		mockFavoritoRepo.On("ListByCorretor", mock.Anything, corretorID).Return(favoritos, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-fantasma").Return(nil, entity.ErrUsuarioNotFound)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-b").Return(clienteB, nil)

		result, err := uc.Execute(context.Background(), corretorID)

		assert.NoError(t, err)
		assert.Len(t, result.Leads, 1)
		assert.Equal(t, "cliente-b", result.Leads[0].ClienteID)
		assert.Equal(t, []string{"cliente-fantasma"}, result.Ignorados)
	})

	t.Run("Perfil resolvido uma única vez por cliente", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		uc := usecase.NewAggregateLeadsUseCase(mockFavoritoRepo, mockUsuarioRepo)

		favoritos := []*entity.Favorito{
			{ID: "f1", ClienteID: "cliente-a", ImovelID: "im-1", FavoritadoEm: base},
			{ID: "f2", ClienteID: "cliente-a", ImovelID: "im-2", FavoritadoEm: base.Add(time.Minute)},
			{ID: "f3", ClienteID: "cliente-a", ImovelID: "im-3", FavoritadoEm: base.Add(2 * time.Minute)},
		}
		mockFavoritoRepo.On("ListByCorretor", mock.Anything, corretorID).Return(favoritos, nil)
		mockUsuarioRepo.On("FindByID", mock.Anything, "cliente-a").Return(clienteA, nil)

		result, err := uc.Execute(context.Background(), corretorID)

		assert.NoError(t, err)
		assert.Len(t, result.Leads, 1)
		mockUsuarioRepo.AssertNumberOfCalls(t, "FindByID", 1)
	})

	t.Run("Sem favoritos devolve lista vazia", func(t *testing.T) {
		mockFavoritoRepo := new(MockFavoritoRepository)
		mockUsuarioRepo := new(MockUsuarioRepository)
		uc := usecase.NewAggregateLeadsUseCase(mockFavoritoRepo, mockUsuarioRepo)

		mockFavoritoRepo.On("ListByCorretor", mock.Anything, corretorID).Return([]*entity.Favorito{}, nil)

		result, err := uc.Execute(context.Background(), corretorID)

		assert.NoError(t, err)
		assert.NotNil(t, result.Leads)
		assert.Empty(t, result.Leads)
	})
}
