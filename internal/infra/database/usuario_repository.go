package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type UsuarioRepository struct {
	col *mongo.Collection
}

func NewUsuarioRepository(db *mongo.Database) *UsuarioRepository {
	return &UsuarioRepository{col: db.Collection("usuarios")}
}

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	err := r.col.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return entity.ErrEmailAlreadyExists
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("❌ Erro ao checar email duplicado: %v", err)
		return err
	}

	_, err = r.col.InsertOne(ctx, u)
	if err != nil {
		log.Printf("❌ Erro crítico no banco: %v", err)
	}
	return err
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, entity.ErrUsuarioNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, entity.ErrUsuarioNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListCorretores devolve todos os corretores ordenados por nome, como a
// tela do superadmin exibe.
func (r *UsuarioRepository) ListCorretores(ctx context.Context) ([]*entity.Usuario, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nome", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"role": entity.RoleCorretor}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var corretores []*entity.Usuario
	if err := cursor.All(ctx, &corretores); err != nil {
		return nil, err
	}
	return corretores, nil
}

func (r *UsuarioRepository) CountCorretores(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"role": entity.RoleCorretor})
}

func (r *UsuarioRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrUsuarioNotFound
	}
	return nil
}

func (r *UsuarioRepository) UpdatePersonalizacao(ctx context.Context, id string, p entity.Personalizacao) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"personalizacao": p}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrUsuarioNotFound
	}
	return nil
}

func (r *UsuarioRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrUsuarioNotFound
	}
	return nil
}
