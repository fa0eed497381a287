package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Papéis de acesso. Cada rota da API é liberada para um subconjunto deles.
const (
	RoleCorretor   = "corretor"
	RoleSuperAdmin = "superadmin"
	RoleCliente    = "cliente"
)

const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// Personalizacao são os dados da página pública do corretor.
type Personalizacao struct {
	LogoURL     string `json:"logo_url,omitempty" bson:"logoUrl,omitempty"`
	Whatsapp    string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	CorPrimaria string `json:"cor_primaria,omitempty" bson:"corPrimaria,omitempty"`
}

type Usuario struct {
	ID             string         `json:"id" bson:"_id"`
	Nome           string         `json:"nome" bson:"nome"`
	Email          string         `json:"email" bson:"email"`
	SenhaHash      string         `json:"-" bson:"senhaHash"`
	Role           string         `json:"role" bson:"role"`
	Status         string         `json:"status" bson:"status"`
	Telefone       string         `json:"telefone,omitempty" bson:"telefone,omitempty"`
	FotoURL        string         `json:"foto_url,omitempty" bson:"fotoUrl,omitempty"`
	Personalizacao Personalizacao `json:"personalizacao" bson:"personalizacao"`
	CreatedAt      time.Time      `json:"created_at" bson:"createdAt"`
}

// Factory
func NewCorretor(nome, email, senhaHash string) (*Usuario, error) {
	u := &Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     email,
		SenhaHash: senhaHash,
		Role:      RoleCorretor,
		Status:    StatusAtivo,
		CreatedAt: time.Now(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func NewCliente(nome, email, senhaHash string) (*Usuario, error) {
	u := &Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     email,
		SenhaHash: senhaHash,
		Role:      RoleCliente,
		Status:    StatusAtivo,
		CreatedAt: time.Now(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Usuario) Validate() error {
	if u.Nome == "" {
		return errors.New("nome is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.SenhaHash == "" {
		return errors.New("senha is required")
	}
	return nil
}

// Ativo diz se o usuário pode autenticar. Corretores inativados pelo
// superadmin continuam no banco mas perdem o acesso.
func (u *Usuario) Ativo() bool {
	return u.Status != StatusInativo
}
