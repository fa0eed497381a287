package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type TransacaoRepository struct {
	col *mongo.Collection
}

func NewTransacaoRepository(db *mongo.Database) *TransacaoRepository {
	return &TransacaoRepository{col: db.Collection("transacoes")}
}

func (r *TransacaoRepository) Create(ctx context.Context, t *entity.Transacao) error {
	_, err := r.col.InsertOne(ctx, t)
	if err != nil {
		log.Printf("❌ Erro crítico no banco: %v", err)
	}
	return err
}

// FindByID sempre filtra pelo corretor dono: o escopo de acesso está no
// filtro, não em checagem posterior.
func (r *TransacaoRepository) FindByID(ctx context.Context, corretorID, id string) (*entity.Transacao, error) {
	var t entity.Transacao
	err := r.col.FindOne(ctx, bson.M{"_id": id, "corretorId": corretorID}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, entity.ErrTransacaoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransacaoRepository) ListByCorretor(ctx context.Context, corretorID string) ([]*entity.Transacao, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"corretorId": corretorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transacoes []*entity.Transacao
	if err := cursor.All(ctx, &transacoes); err != nil {
		return nil, err
	}
	return transacoes, nil
}

func (r *TransacaoRepository) UpdateStatus(ctx context.Context, corretorID, id, status string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "corretorId": corretorID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrTransacaoNotFound
	}
	return nil
}

func (r *TransacaoRepository) UpdateEtapas(ctx context.Context, corretorID, id string, etapas []entity.Etapa) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "corretorId": corretorID},
		bson.M{"$set": bson.M{"etapas": etapas}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrTransacaoNotFound
	}
	return nil
}

func (r *TransacaoRepository) AddDocumento(ctx context.Context, corretorID, id string, doc entity.Documento) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "corretorId": corretorID},
		bson.M{"$push": bson.M{"documentos": bson.M{
			"$each":     bson.A{doc},
			"$position": 0, // mais recente primeiro
		}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrTransacaoNotFound
	}
	return nil
}

func (r *TransacaoRepository) RemoveDocumento(ctx context.Context, corretorID, id, documentoID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "corretorId": corretorID},
		bson.M{"$pull": bson.M{"documentos": bson.M{"id": documentoID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrTransacaoNotFound
	}
	if res.ModifiedCount == 0 {
		return entity.ErrTransacaoNotFound
	}
	return nil
}

func (r *TransacaoRepository) Delete(ctx context.Context, corretorID, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "corretorId": corretorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrTransacaoNotFound
	}
	return nil
}
