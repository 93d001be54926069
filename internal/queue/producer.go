package queue

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer wraps the kafka writer for the notification topic. Messages are
// keyed by order number so events for one order land on one partition.
type Producer struct {
	w *kafka.Writer
}

// NewProducer creates new Producer instance. RequireAll waits for in-sync
// replicas so an acknowledged notification event is not lost with a broker.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Close releases the writer.
func (p *Producer) Close() error { return p.w.Close() }

// Publish writes one message synchronously.
func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}
