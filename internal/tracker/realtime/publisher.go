package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/state"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultChannel = "tracker:snapshots"
	publishTimeout = 2 * time.Second
	queueSize      = 64
)

// Event is one snapshot as published on the Redis channel.
type Event struct {
	Projects    []domain.Project `json:"projects"`
	PublishedAt time.Time        `json:"published_at"`
}

// Publisher forwards store snapshots to a Redis Pub/Sub channel. The store
// listener only enqueues; Run does the network work so a slow Redis never
// holds up the store.
type Publisher struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
	queue   chan Event
}

func NewPublisher(client *redis.Client, channel string, log *zap.Logger) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		client:  client,
		channel: channel,
		log:     log,
		queue:   make(chan Event, queueSize),
	}
}

func (p *Publisher) Channel() string { return p.channel }

// Attach registers the publisher as a store listener.
func (p *Publisher) Attach(store *state.Store) *state.Subscription {
	return store.AddListener(p.enqueue)
}

func (p *Publisher) enqueue(projects []domain.Project) {
	ev := Event{Projects: projects, PublishedAt: time.Now().UTC()}
	select {
	case p.queue <- ev:
	default:
		p.log.Warn("snapshot queue full, dropping event",
			zap.String("channel", p.channel),
			zap.Int("projects", len(projects)))
	}
}

// Run publishes queued snapshots until ctx is done.
func (p *Publisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-p.queue:
			if err := p.Publish(ctx, ev); err != nil {
				p.log.Error("publish snapshot", zap.String("channel", p.channel), zap.Error(err))
			}
		}
	}
}

// Publish sends one event immediately.
func (p *Publisher) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.client.Publish(pctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

// Subscribe delivers every well-formed event on channel to fn until ctx is
// done. Malformed messages are skipped.
func Subscribe(ctx context.Context, client *redis.Client, channel string, fn func(Event)) error {
	if channel == "" {
		channel = DefaultChannel
	}

	pubsub := client.Subscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				continue
			}
			fn(ev)
		}
	}
}
