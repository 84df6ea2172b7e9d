package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"TasteTrail-Backend/internal/utils"

	"github.com/ThreeDotsLabs/watermill"
	amqp "github.com/ThreeDotsLabs/watermill-amqp/v2/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
)

const publishTimeout = 3 * time.Second

type (
	// Publisher is fire and forget: failures are logged, never returned,
	// and a publish never blocks the caller longer than publishTimeout.
	Publisher interface {
		PublishTasteCreate(msg TasteCreateMessage)
		PublishDishCollect(msg DishCollectMessage)
		PublishMediaCreate(msg MediaCreateMessage)
		PublishTasteAddDish(msg TasteAddDishMessage)
		Close() error
	}

	amqpPublisher struct {
		publisher message.Publisher
		timeout   time.Duration
	}

	noopPublisher struct{}
)

// NewPublisher connects to RabbitMQ. With no RABBITMQ_URI configured the
// broker is disabled and a no-op publisher is returned.
func NewPublisher() (Publisher, error) {
	uri := utils.GetConfig("RABBITMQ_URI")
	if uri == "" {
		log.Println("RABBITMQ_URI not configured, message publishing disabled")
		return &noopPublisher{}, nil
	}

	cfg := amqp.NewDurableQueueConfig(uri)
	pub, err := amqp.NewPublisher(cfg, watermill.NewStdLogger(false, false))
	if err != nil {
		return nil, err
	}

	return &amqpPublisher{publisher: pub, timeout: publishTimeout}, nil
}

func (p *amqpPublisher) publish(topic string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal message for %s: %v", topic, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		msg := message.NewMessage(watermill.NewUUID(), body)
		msg.SetContext(ctx)

		done := make(chan error, 1)
		go func() {
			done <- p.publisher.Publish(topic, msg)
		}()

		select {
		case err := <-done:
			if err != nil {
				log.Printf("failed to publish to %s: %v", topic, err)
			}
		case <-ctx.Done():
			// The message context is canceled on the way out so a
			// transport that honors it aborts the blocked publish;
			// otherwise the inner goroutine is held only until the
			// client's own connection timeout fires.
			log.Printf("publish to %s timed out after %s", topic, p.timeout)
		}
	}()
}

func (p *amqpPublisher) PublishTasteCreate(msg TasteCreateMessage) {
	p.publish(TopicTasteCreate, msg)
}

func (p *amqpPublisher) PublishDishCollect(msg DishCollectMessage) {
	p.publish(TopicDishCollect, msg)
}

func (p *amqpPublisher) PublishMediaCreate(msg MediaCreateMessage) {
	p.publish(TopicMediaCreate, msg)
}

func (p *amqpPublisher) PublishTasteAddDish(msg TasteAddDishMessage) {
	p.publish(TopicTasteAddDish, msg)
}

func (p *amqpPublisher) Close() error {
	return p.publisher.Close()
}

func (n *noopPublisher) PublishTasteCreate(TasteCreateMessage)   {}
func (n *noopPublisher) PublishDishCollect(DishCollectMessage)   {}
func (n *noopPublisher) PublishMediaCreate(MediaCreateMessage)   {}
func (n *noopPublisher) PublishTasteAddDish(TasteAddDishMessage) {}
func (n *noopPublisher) Close() error                            { return nil }
