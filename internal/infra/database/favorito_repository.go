package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type FavoritoRepository struct {
	col *mongo.Collection
}

func NewFavoritoRepository(db *mongo.Database) *FavoritoRepository {
	return &FavoritoRepository{col: db.Collection("favoritos")}
}

func (r *FavoritoRepository) Create(ctx context.Context, f *entity.Favorito) error {
	err := r.col.FindOne(ctx, bson.M{"clienteId": f.ClienteID, "imovelId": f.ImovelID}).Err()
	if err == nil {
		return entity.ErrFavoritoDuplicado
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("❌ Erro ao checar favorito duplicado: %v", err)
		return err
	}

	_, err = r.col.InsertOne(ctx, f)
	if err != nil {
		log.Printf("❌ Erro crítico no banco: %v", err)
	}
	return err
}

func (r *FavoritoRepository) Delete(ctx context.Context, clienteID, imovelID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"clienteId": clienteID, "imovelId": imovelID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrFavoritoNotFound
	}
	return nil
}

func (r *FavoritoRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrFavoritoNotFound
	}
	return nil
}

func (r *FavoritoRepository) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Favorito, error) {
	return r.list(ctx, bson.M{"clienteId": clienteID})
}

// ListByCorretor varre os favoritos de todos os clientes pelo corretorId
// desnormalizado. É o insumo da agregação de leads.
func (r *FavoritoRepository) ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Favorito, error) {
	return r.list(ctx, bson.M{"corretorId": corretorID})
}

func (r *FavoritoRepository) list(ctx context.Context, filter bson.M) ([]*entity.Favorito, error) {
	opts := options.Find().SetSort(bson.D{{Key: "favoritadoEm", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favoritos []*entity.Favorito
	if err := cursor.All(ctx, &favoritos); err != nil {
		return nil, err
	}
	return favoritos, nil
}
