package consumer

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/dto"
	"github.com/Eursukkul/meetapp-service/internal/mail"
	amqp "github.com/rabbitmq/amqp091-go"
)

const sendTimeout = 10 * time.Second

type SubscriptionConsumer struct {
	mailer mail.Mailer
}

func NewSubscriptionConsumer(mailer mail.Mailer) *SubscriptionConsumer {
	return &SubscriptionConsumer{mailer: mailer}
}

// Start mails the organizer of every subscription notification received.
func (sc *SubscriptionConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			sc.handleMessage(msg)
		}
		log.Println("[SubscriptionConsumer] channel closed, stopping consumer")
	}()
}

func (sc *SubscriptionConsumer) handleMessage(msg amqp.Delivery) {
	var n dto.SubscriptionNotification
	if err := json.Unmarshal(msg.Body, &n); err != nil {
		log.Printf("[SubscriptionConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	m, err := mail.SubscriptionMail(n)
	if err != nil {
		log.Printf("[SubscriptionConsumer] subscription %d: %v", n.SubscriptionID, err)
		msg.Nack(false, false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := sc.mailer.Send(ctx, m); err != nil {
		log.Printf("[SubscriptionConsumer] failed to mail organizer of subscription %d: %v", n.SubscriptionID, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[SubscriptionConsumer] mailed %s about subscription %d", n.Organizer.Email, n.SubscriptionID)
	msg.Ack(false)
}
