package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/helpdesk-ph/ticketdesk/internal/config"
)

const (
	AccountApprovedQueue = "account.approved"
	TicketApprovedQueue  = "ticket.approved"
)

// PublishAccountApproved publishes an AccountApprovedEvent. Errors are
// logged and returned so callers can ignore them without interrupting the
// request flow.
func PublishAccountApproved(ctx context.Context, event AccountApprovedEvent) error {
	return publish(ctx, AccountApprovedQueue, event)
}

// PublishTicketApproved publishes a TicketApprovedEvent.
func PublishTicketApproved(ctx context.Context, event TicketApprovedEvent) error {
	return publish(ctx, TicketApprovedQueue, event)
}

func publish(ctx context.Context, queueName string, event any) error {
	if !config.EventsEnable {
		return nil
	}

	conn, err := amqp.Dial(config.AmqpURL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
