package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type ImovelRepository struct {
	col *mongo.Collection
}

func NewImovelRepository(db *mongo.Database) *ImovelRepository {
	return &ImovelRepository{col: db.Collection("imoveis")}
}

func (r *ImovelRepository) Create(ctx context.Context, i *entity.Imovel) error {
	_, err := r.col.InsertOne(ctx, i)
	if err != nil {
		log.Printf("❌ Erro crítico no banco: %v", err)
	}
	return err
}

func (r *ImovelRepository) FindByID(ctx context.Context, id string) (*entity.Imovel, error) {
	var i entity.Imovel
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	if err == mongo.ErrNoDocuments {
		return nil, entity.ErrImovelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ImovelRepository) ListAll(ctx context.Context) ([]*entity.Imovel, error) {
	return r.list(ctx, bson.M{})
}

func (r *ImovelRepository) ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Imovel, error) {
	return r.list(ctx, bson.M{"corretorId": corretorID})
}

func (r *ImovelRepository) list(ctx context.Context, filter bson.M) ([]*entity.Imovel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var imoveis []*entity.Imovel
	if err := cursor.All(ctx, &imoveis); err != nil {
		return nil, err
	}
	return imoveis, nil
}

// Update substitui o documento inteiro, mas só se o imóvel pertencer ao
// corretor que está editando.
func (r *ImovelRepository) Update(ctx context.Context, i *entity.Imovel) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": i.ID, "corretorId": i.CorretorID}, i)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrImovelNotFound
	}
	return nil
}

func (r *ImovelRepository) Delete(ctx context.Context, corretorID, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "corretorId": corretorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrImovelNotFound
	}
	return nil
}

func (r *ImovelRepository) DeleteAny(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrImovelNotFound
	}
	return nil
}

// Stats agrega o total de imóveis e o preço médio dos anúncios de venda.
func (r *ImovelRepository) Stats(ctx context.Context) (int64, int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}

	pipeline := mongo.Pipeline{
		{
			{Key: "$match", Value: bson.M{
				"finalidade":    entity.FinalidadeVenda,
				"precoCentavos": bson.M{"$gt": 0},
			}},
		},
		{
			{Key: "$group", Value: bson.M{
				"_id":        nil,
				"precoMedio": bson.M{"$avg": "$precoCentavos"},
			}},
		},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var resultado []struct {
		PrecoMedio float64 `bson:"precoMedio"`
	}
	if err := cursor.All(ctx, &resultado); err != nil {
		return 0, 0, err
	}

	var precoMedio int64
	if len(resultado) > 0 {
		precoMedio = int64(resultado[0].PrecoMedio)
	}
	return total, precoMedio, nil
}
