// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/cinema-showcase/internal/queue"
)

// Publisher sends events to the broker at URL.  A connection is opened per
// publish; checkout completions are rare enough that pooling is not needed.
type Publisher struct {
	URL string
}

// New returns a Publisher for the given AMQP URL.
func New(url string) *Publisher {
	return &Publisher{URL: url}
}

// PublishCheckoutCompleted publishes a CheckoutCompletedEvent to the
// "checkout.completed" queue.  The function never panics; any error is
// logged and returned so the caller can choose to ignore it.  Messages are
// marked as persistent.
func (p *Publisher) PublishCheckoutCompleted(ctx context.Context, event q.CheckoutCompletedEvent) error {
	conn, err := amqp.Dial(p.URL)
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

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.CheckoutQueueName, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	pub, err := Message(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		q.CheckoutQueueName, // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}

// Message builds the persistent AMQP message for event.
func Message(event q.CheckoutCompletedEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		MessageId:    event.Reference,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}
