package events

import (
	"context"
	"encoding/json"
	"fmt"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used for publishing.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher appends plan events to a Kafka topic keyed by plan id.
type KafkaPublisher struct {
	w MessageWriter
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt ports.PlanEvent) (err error) {
	defer obs.Time(ctx, "events.kafka.Publish")(&err)

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("kafka publish: encode event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.PlanID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish plan_id=%s: %w", evt.PlanID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }
