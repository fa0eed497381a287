package worker

import (
	"context"
	"log"
	"time"

	"github.com/xcampos9/imovelhub/internal/infra/cache"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

// CacheWarmer renova a listagem pública de imóveis no Redis antes do TTL
// vencer, para a vitrine não pagar o custo do banco no primeiro acesso
// após a expiração.
type CacheWarmer struct {
	imovelRepo   usecase.ImovelRepositoryInterface
	listingCache *cache.ListingCache
	tickInterval time.Duration
}

func NewCacheWarmer(imovelRepo usecase.ImovelRepositoryInterface, listingCache *cache.ListingCache) *CacheWarmer {
	return &CacheWarmer{
		imovelRepo:   imovelRepo,
		listingCache: listingCache,
		tickInterval: 5 * time.Minute,
	}
}

func (w *CacheWarmer) Start(ctx context.Context) {
	log.Println("🕒 Cache warmer iniciado (5min)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Cache warmer encerrado")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheWarmer) refresh(ctx context.Context) {
	imoveis, err := w.imovelRepo.ListAll(ctx)
	if err != nil {
		log.Printf("❌ Cache warmer: erro ao listar imóveis: %v", err)
		return
	}

	if err := w.listingCache.Set(ctx, imoveis); err != nil {
		log.Printf("❌ Cache warmer: erro ao gravar cache: %v", err)
		return
	}

	log.Printf("♻️ Cache de imóveis renovado (%d anúncios)", len(imoveis))
}
