package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	publishBuffer  = 100
	publishTimeout = 5 * time.Second
)

// Publisher sends reservation events to RabbitMQ from a background
// worker, so a slow or dead broker never stalls a request. Enqueueing
// never blocks: when the buffer is full the event is dropped and
// logged.
type Publisher struct {
	url   string
	queue chan envelope
}

type envelope struct {
	routingKey string
	event      ReservationEvent
}

func NewPublisher(url string) *Publisher {
	p := &Publisher{
		url:   url,
		queue: make(chan envelope, publishBuffer),
	}

	go p.worker()
	return p
}

func (p *Publisher) Publish(routingKey string, event ReservationEvent) {
	select {
	case p.queue <- envelope{routingKey: routingKey, event: event}:
	default:
		log.Println("event queue full, dropping", routingKey)
	}
}

func (p *Publisher) worker() {
	for ev := range p.queue {
		if err := p.send(ev); err != nil {
			log.Printf("rabbitmq: publish %s failed: %v", ev.routingKey, err)
		}
	}
}

func (p *Publisher) send(ev envelope) error {
	// DefaultDial also bounds the AMQP handshake, so a peer that
	// accepts TCP but never answers cannot hold the worker.
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Dial: amqp.DefaultDial(publishTimeout),
	})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(ev.routingKey, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(ev.event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return ch.PublishWithContext(ctx, "", ev.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}
