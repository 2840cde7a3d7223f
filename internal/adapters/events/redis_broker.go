package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"sync"

	redis "github.com/redis/go-redis/v9"
)

// RedisBroker carries plan events over Redis Pub/Sub so that every API
// replica sees plans computed by the others.
type RedisBroker struct {
	rdb     *redis.Client
	channel string
}

func NewRedisBroker(url, channel string) (*RedisBroker, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("new redis broker: parse url: %w", err)
	}
	return NewRedisBrokerFromClient(redis.NewClient(opt), channel), nil
}

func NewRedisBrokerFromClient(rdb *redis.Client, channel string) *RedisBroker {
	return &RedisBroker{rdb: rdb, channel: channel}
}

func (b *RedisBroker) Ping(ctx context.Context) error {
	if err := b.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis broker: ping: %w", err)
	}
	return nil
}

func (b *RedisBroker) Publish(ctx context.Context, evt ports.PlanEvent) (err error) {
	defer obs.Time(ctx, "events.redis.Publish")(&err)

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("redis publish: encode event: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish channel=%s: %w", b.channel, err)
	}
	return nil
}

// Subscribe returns once the subscription is confirmed by the server.
func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan ports.PlanEvent, func(), error) {
	ps := b.rdb.Subscribe(ctx, b.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("redis subscribe channel=%s: %w", b.channel, err)
	}

	out := make(chan ports.PlanEvent, subscriberBuffer)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			var evt ports.PlanEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("redis subscribe: drop malformed event channel=%s err=%v", b.channel, err)
				continue
			}
			select {
			case out <- evt:
			default:
			}
		}
	}()

	var once sync.Once
	cancel := func() { once.Do(func() { _ = ps.Close() }) }

	return out, cancel, nil
}

func (b *RedisBroker) Close() error { return b.rdb.Close() }
