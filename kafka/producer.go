package kafka

import (
	"context"
	"encoding/json"
	"log"

	"ticketing-service/models"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishOrderPlaced emits one order.placed event. Callers treat failures as
// best-effort; the error is logged here and returned for bookkeeping.
func (p *Producer) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.BuyerID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("failed to send Kafka message: %v", err)
		return err
	}
	return nil
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
