package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/teamsync/internal/domain/repositories"
	"github.com/johnquangdev/teamsync/pkg/jobcontext"
)

// Bus is an in-process topic bus. Every delivery runs as an independent
// unit of work: its own goroutine, its own deadline, panic recovery, and
// bounded retries for transient failures. Delivery is at-least-once with
// unspecified ordering between subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]repositories.EventHandler
	logger      *zap.Logger
	sync        bool
	wg          sync.WaitGroup
}

// Option configures a Bus
type Option func(*Bus)

// WithSyncDispatch delivers events inline on the publishing goroutine.
// Used by tests that need deterministic completion.
func WithSyncDispatch() Option {
	return func(b *Bus) {
		b.sync = true
	}
}

// New creates an event bus
func New(logger *zap.Logger, opts ...Option) *Bus {
	b := &Bus{
		subscribers: make(map[string][]repositories.EventHandler),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for a topic
func (b *Bus) Subscribe(topic string, handler repositories.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[topic] = append(b.subscribers[topic], handler)
}

// Publish delivers the payload to every subscriber of the topic. A failing
// subscriber never affects the publisher or other subscribers; terminal
// failures are logged for the host's retry policy to act on.
func (b *Bus) Publish(ctx context.Context, topic string, payload interface{}) error {
	b.mu.RLock()
	handlers := make([]repositories.EventHandler, len(b.subscribers[topic]))
	copy(handlers, b.subscribers[topic])
	b.mu.RUnlock()

	eventID := uuid.NewString()

	b.logger.Info("event published",
		zap.String("topic", topic),
		zap.String("event_id", eventID),
		zap.Int("subscribers", len(handlers)),
	)

	for _, handler := range handlers {
		if b.sync {
			b.deliver(topic, eventID, handler, payload)
			continue
		}

		b.wg.Add(1)
		go func(h repositories.EventHandler) {
			defer b.wg.Done()
			b.deliver(topic, eventID, h, payload)
		}(handler)
	}

	return nil
}

// Wait blocks until all in-flight deliveries complete
func (b *Bus) Wait() {
	b.wg.Wait()
}

func (b *Bus) deliver(topic, eventID string, handler repositories.EventHandler, payload interface{}) {
	ctx, cancel := jobcontext.EventBegin(context.Background(), topic, eventID)
	defer cancel()

	err := jobcontext.Run(ctx, func(ctx context.Context) error {
		return handler(ctx, payload)
	})
	if err != nil {
		meta := jobcontext.GetMetadata(ctx)
		b.logger.Error("event delivery failed",
			zap.String("topic", meta.Topic),
			zap.String("event_id", meta.EventID),
			zap.Int("max_retries", meta.MaxRetries),
			zap.Duration("elapsed", time.Since(meta.StartTime)),
			zap.Error(err),
		)
	}
}
