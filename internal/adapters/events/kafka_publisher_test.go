package events

import (
	"context"
	"encoding/json"
	"errors"
	"route-optimization-service/internal/ports"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w)

	evt := ports.PlanEvent{Type: ports.EventRoutePlanned, PlanID: "plan-7", Stops: []string{"A", "B"}}
	if err := p.Publish(context.Background(), evt); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "plan-7" {
		t.Errorf("key = %q", msg.Key)
	}
	if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != ports.EventRoutePlanned {
		t.Errorf("headers = %+v", msg.Headers)
	}

	var decoded ports.PlanEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	if decoded.PlanID != "plan-7" || len(decoded.Stops) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Errorf("close err=%v closed=%v", err, w.closed)
	}
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	boom := errors.New("broker unavailable")
	p := NewKafkaPublisher(&fakeWriter{err: boom})

	err := p.Publish(context.Background(), ports.PlanEvent{PlanID: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestNewKafkaWriterConfig(t *testing.T) {
	w := NewKafkaWriter([]string{"k1:9092"}, "route-events")
	defer w.Close()

	if w.Topic != "route-events" {
		t.Errorf("topic = %q", w.Topic)
	}
	if w.Addr.String() != "k1:9092" {
		t.Errorf("addr = %q", w.Addr.String())
	}
}
