package broadcast

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout    = 2 * time.Second
	publishTimeout = 250 * time.Millisecond
)

// RedisLayer bridges group sends across processes through redis
// pub/sub. Local membership still lives in a MemoryLayer; GroupSend
// publishes to redis and the per-group subscription feeds received
// payloads back to local members. Every broker failure is logged and
// swallowed: a dead redis turns this layer into a no-op, never into an
// error on the publishing request.
type RedisLayer struct {
	client *redis.Client
	local  *MemoryLayer

	mu     sync.Mutex
	subs   map[string]*redis.PubSub
	closed bool
}

// NewRedisLayer connects to redis and verifies it with a ping, so a
// misconfigured broker is caught at startup. The caller falls back to
// a MemoryLayer when this fails.
func NewRedisLayer(redisURL string) (*RedisLayer, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisLayer{
		client: client,
		local:  NewMemoryLayer(),
		subs:   make(map[string]*redis.PubSub),
	}, nil
}

func (l *RedisLayer) GroupAdd(group string, sub Subscriber) {
	l.local.GroupAdd(group, sub)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	if _, ok := l.subs[group]; ok {
		return
	}

	// First member of the group: open the redis subscription that
	// fans remote publishes back into local delivery. Subscribe does
	// not fail synchronously; if redis is down the channel simply
	// stays silent until go-redis reconnects.
	pubsub := l.client.Subscribe(context.Background(), group)
	l.subs[group] = pubsub

	go func() {
		for msg := range pubsub.Channel() {
			l.local.GroupSend(context.Background(), group, []byte(msg.Payload))
		}
	}()
}

func (l *RedisLayer) GroupDiscard(group string, sub Subscriber) {
	l.local.GroupDiscard(group, sub)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.local.GroupSize(group) > 0 {
		return
	}
	if pubsub, ok := l.subs[group]; ok {
		delete(l.subs, group)
		if err := pubsub.Close(); err != nil {
			log.Printf("broadcast: closing subscription for %s: %v", group, err)
		}
	}
}

func (l *RedisLayer) GroupSend(ctx context.Context, group string, payload []byte) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := l.client.Publish(ctx, group, payload).Err(); err != nil {
		log.Printf("broadcast: publish to %s failed: %v", group, err)
		// The subscription loop is silent while the broker is down,
		// so deliver to local members directly. Remote processes miss
		// this payload.
		l.local.GroupSend(ctx, group, payload)
	}
}

func (l *RedisLayer) Close() error {
	l.mu.Lock()
	l.closed = true
	subs := l.subs
	l.subs = make(map[string]*redis.PubSub)
	l.mu.Unlock()

	for _, pubsub := range subs {
		pubsub.Close()
	}
	return l.client.Close()
}
