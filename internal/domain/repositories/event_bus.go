package repositories

import "context"

// EventHandler processes one delivery of an event payload
type EventHandler func(ctx context.Context, payload interface{}) error

// EventPublisher publishes domain events to a topic
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
}

// EventBus is the host's event-emission primitive: at-least-once delivery to
// every subscriber of a topic, ordering unspecified. Each delivery runs as an
// independent unit of work.
type EventBus interface {
	EventPublisher

	// Subscribe registers a handler for a topic
	Subscribe(topic string, handler EventHandler)
}
