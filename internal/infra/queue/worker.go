package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xcampos9/imovelhub/internal/entity"
)

type CorretorFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Usuario, error)
}

type LeadMailer interface {
	SendNovoLead(to, corretorNome, clienteNome, imovelTitulo string) error
}

type LeadMessenger interface {
	NotifyNovoLead(phone, clienteNome, imovelTitulo string) error
}

// NotificationWorker consome os eventos de lead e avisa o corretor por
// email e WhatsApp. Notificação é melhor-esforço por canal: a mensagem só
// vai para a DLQ se nenhum canal funcionar.
type NotificationWorker struct {
	Channel    *amqp.Channel
	Corretores CorretorFinder
	Mailer     LeadMailer
	Messenger  LeadMessenger
}

func NewNotificationWorker(ch *amqp.Channel, corretores CorretorFinder, mailer LeadMailer, messenger LeadMessenger) *NotificationWorker {
	return &NotificationWorker{
		Channel:    ch,
		Corretores: corretores,
		Mailer:     mailer,
		Messenger:  messenger,
	}
}

func (w *NotificationWorker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Novo lead para corretor %s (cliente %s)", payload.CorretorID, payload.ClienteNome)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Falha na notificação: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de notificações aguardando na fila '%s'", queueName)
	<-forever
}

func (w *NotificationWorker) processMessage(ctx context.Context, payload LeadEventPayload) error {
	corretor, err := w.Corretores.FindByID(ctx, payload.CorretorID)
	if err != nil {
		return err
	}

	var mailErr, msgErr error

	if w.Mailer != nil && corretor.Email != "" {
		mailErr = w.Mailer.SendNovoLead(corretor.Email, corretor.Nome, payload.ClienteNome, payload.ImovelTitulo)
		if mailErr != nil {
			log.Printf("⚠️ [WORKER] Email para %s falhou: %v", corretor.Email, mailErr)
		}
	}

	phone := corretor.Personalizacao.Whatsapp
	if w.Messenger != nil && phone != "" {
		msgErr = w.Messenger.NotifyNovoLead(phone, payload.ClienteNome, payload.ImovelTitulo)
		if msgErr != nil {
			log.Printf("⚠️ [WORKER] WhatsApp para %s falhou: %v", phone, msgErr)
		}
	}

	if mailErr != nil && msgErr != nil {
		return mailErr
	}
	return nil
}
