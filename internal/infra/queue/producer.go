package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadEventPayload é publicado quando um cliente favorita um imóvel.
// Carrega tudo que o worker de notificação precisa para avisar o
// corretor sem voltar ao banco pelos dados do cliente.
type LeadEventPayload struct {
	CorretorID string `json:"corretor_id"`

	ClienteID       string `json:"cliente_id"`
	ClienteNome     string `json:"cliente_nome"`
	ClienteEmail    string `json:"cliente_email"`
	ClienteTelefone string `json:"cliente_telefone,omitempty"`

	ImovelID     string    `json:"imovel_id"`
	ImovelTitulo string    `json:"imovel_titulo"`
	FavoritadoEm time.Time `json:"favoritado_em"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishNovoLead(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
