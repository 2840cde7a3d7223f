package events

import (
	"context"
	"route-optimization-service/internal/ports"
	"sync"
)

const subscriberBuffer = 16

// Broker is an in-process fan-out of plan events. Slow subscribers miss
// events rather than blocking publishers.
type Broker struct {
	mu   sync.Mutex
	subs map[chan ports.PlanEvent]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: map[chan ports.PlanEvent]struct{}{}}
}

func (b *Broker) Subscribe(_ context.Context) (<-chan ports.PlanEvent, func(), error) {
	ch := make(chan ports.PlanEvent, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel, nil
}

func (b *Broker) Publish(_ context.Context, evt ports.PlanEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	return nil
}

// Subscribers reports the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
