package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/cache"
	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/infra/integration/whatsapp"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

type ImovelHandler struct {
	ImovelRepo   usecase.ImovelRepositoryInterface
	UsuarioRepo  usecase.UsuarioRepositoryInterface
	ListingCache *cache.ListingCache
	DescricaoUC  *usecase.GenerateDescricaoUseCase
}

func NewImovelHandler(
	imovelRepo usecase.ImovelRepositoryInterface,
	usuarioRepo usecase.UsuarioRepositoryInterface,
	listingCache *cache.ListingCache,
	descricaoUC *usecase.GenerateDescricaoUseCase,
) *ImovelHandler {
	return &ImovelHandler{
		ImovelRepo:   imovelRepo,
		UsuarioRepo:  usuarioRepo,
		ListingCache: listingCache,
		DescricaoUC:  descricaoUC,
	}
}

// ListPublic (GET /imoveis) serve a vitrine com cache-aside no Redis.
// Cache fora do ar não derruba a vitrine; cai direto no banco.
func (h *ImovelHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.ListingCache != nil {
		cached, err := h.ListingCache.Get(ctx)
		if err != nil {
			log.Printf("⚠️ Falha ao ler cache de imóveis: %v", err)
		}
		if cached != nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	imoveis, err := h.ImovelRepo.ListAll(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.ListingCache != nil {
		if err := h.ListingCache.Set(ctx, imoveis); err != nil {
			log.Printf("⚠️ Falha ao popular cache de imóveis: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, imoveis)
}

type ImovelDetalheResponse struct {
	Imovel       *entity.Imovel `json:"imovel"`
	Corretor     *CorretorCard  `json:"corretor,omitempty"`
	WhatsappLink string         `json:"whatsapp_link,omitempty"`
}

// CorretorCard é o recorte público do perfil do corretor; nada de email
// ou status vaza para a vitrine.
type CorretorCard struct {
	ID             string                `json:"id"`
	Nome           string                `json:"nome"`
	FotoURL        string                `json:"foto_url,omitempty"`
	Personalizacao entity.Personalizacao `json:"personalizacao"`
}

// GetPublic (GET /imoveis/{id}) devolve o anúncio com o cartão do
// corretor e o link wa.me pré-preenchido com o título do imóvel.
func (h *ImovelHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}

	imovel, err := h.ImovelRepo.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ImovelDetalheResponse{Imovel: imovel}

	corretor, err := h.UsuarioRepo.FindByID(r.Context(), imovel.CorretorID)
	if err != nil {
		log.Printf("⚠️ Corretor %s do imóvel %s não encontrado: %v", imovel.CorretorID, id, err)
	} else {
		resp.Corretor = &CorretorCard{
			ID:             corretor.ID,
			Nome:           corretor.Nome,
			FotoURL:        corretor.FotoURL,
			Personalizacao: corretor.Personalizacao,
		}
		if corretor.Personalizacao.Whatsapp != "" {
			resp.WhatsappLink = whatsapp.ContactLink(corretor.Personalizacao.Whatsapp, imovel.Titulo)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type PaginaCorretorResponse struct {
	Corretor *CorretorCard    `json:"corretor"`
	Imoveis  []*entity.Imovel `json:"imoveis"`
}

// PaginaCorretor (GET /corretores/{id}) monta a página pública do
// corretor: perfil personalizado mais os anúncios dele.
func (h *ImovelHandler) PaginaCorretor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	corretor, err := h.UsuarioRepo.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if corretor.Role != entity.RoleCorretor {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "corretor não encontrado"})
		return
	}

	imoveis, err := h.ImovelRepo.ListByCorretor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PaginaCorretorResponse{
		Corretor: &CorretorCard{
			ID:             corretor.ID,
			Nome:           corretor.Nome,
			FotoURL:        corretor.FotoURL,
			Personalizacao: corretor.Personalizacao,
		},
		Imoveis: imoveis,
	})
}

// Create (POST /admin/imoveis) cadastra anúncio do corretor logado.
func (h *ImovelHandler) Create(w http.ResponseWriter, r *http.Request) {
	corretorID := middleware.UserID(r.Context())

	imovel := entity.NewImovel(corretorID)
	if err := json.NewDecoder(r.Body).Decode(imovel); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	// O dono vem do token, nunca do corpo.
	imovel.CorretorID = corretorID

	if errs := usecase.ValidateImovel(imovel); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errs[0].Error(), Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.ImovelRepo.Create(r.Context(), imovel); err != nil {
		writeError(w, err)
		return
	}

	h.invalidateListing(r)
	writeJSON(w, http.StatusCreated, imovel)
}

// ListMine (GET /admin/imoveis) lista só os anúncios do corretor logado.
func (h *ImovelHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	imoveis, err := h.ImovelRepo.ListByCorretor(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imoveis)
}

// Update (PUT /admin/imoveis/{id}) substitui o anúncio inteiro, sempre
// com o dono preso ao token.
func (h *ImovelHandler) Update(w http.ResponseWriter, r *http.Request) {
	corretorID := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	atual, err := h.ImovelRepo.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if atual.CorretorID != corretorID {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "imóvel não encontrado"})
		return
	}

	imovel := *atual
	if err := json.NewDecoder(r.Body).Decode(&imovel); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	imovel.ID = id
	imovel.CorretorID = corretorID

	if errs := usecase.ValidateImovel(&imovel); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errs[0].Error(), Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.ImovelRepo.Update(r.Context(), &imovel); err != nil {
		writeError(w, err)
		return
	}

	h.invalidateListing(r)
	writeJSON(w, http.StatusOK, &imovel)
}

func (h *ImovelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	corretorID := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.ImovelRepo.Delete(r.Context(), corretorID, id); err != nil {
		writeError(w, err)
		return
	}

	h.invalidateListing(r)
	w.WriteHeader(http.StatusNoContent)
}

type DescricaoResponse struct {
	Descricao string `json:"descricao"`
}

// GerarDescricao (POST /admin/imoveis/{id}/descricao) pede ao serviço
// generativo um texto de marketing para o anúncio. O texto não é salvo;
// o corretor revisa e submete via Update.
func (h *ImovelHandler) GerarDescricao(w http.ResponseWriter, r *http.Request) {
	corretorID := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	descricao, err := h.DescricaoUC.Execute(r.Context(), corretorID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DescricaoResponse{Descricao: descricao})
}

func (h *ImovelHandler) invalidateListing(r *http.Request) {
	if h.ListingCache != nil {
		h.ListingCache.Invalidate(r.Context())
	}
}
