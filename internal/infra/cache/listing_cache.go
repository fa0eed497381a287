package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xcampos9/imovelhub/internal/entity"
)

const listagemKey = "imoveis:public"

// ListingCache guarda a vitrine pública de imóveis no Redis. Só a
// listagem pública passa por aqui; o board do corretor é sempre
// recalculado direto do banco.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl}
}

func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// Get devolve (nil, nil) em cache miss.
func (c *ListingCache) Get(ctx context.Context) ([]*entity.Imovel, error) {
	data, err := c.rdb.Get(ctx, listagemKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var imoveis []*entity.Imovel
	if err := json.Unmarshal([]byte(data), &imoveis); err != nil {
		return nil, err
	}
	return imoveis, nil
}

func (c *ListingCache) Set(ctx context.Context, imoveis []*entity.Imovel) error {
	data, err := json.Marshal(imoveis)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listagemKey, data, c.ttl).Err()
}

// Invalidate apaga a listagem cacheada. Chamado após qualquer escrita em
// imóveis; falha aqui é só log, a verdade está no banco.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, listagemKey).Err(); err != nil {
		log.Printf("⚠️ Falha ao invalidar cache de imóveis: %v", err)
	}
}
