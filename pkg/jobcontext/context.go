package jobcontext

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type KeyContext string

var (
	keyTopic        KeyContext = "topic"
	keyEventID      KeyContext = "event_id"
	keyRetryAttempt KeyContext = "retry_attempt"
	keyStartTime    KeyContext = "start_time"
	keyMaxRetries   KeyContext = "max_retries"
)

// EventMetadata holds metadata for one event reaction
type EventMetadata struct {
	Topic        string
	EventID      string
	RetryAttempt int
	MaxRetries   int
	StartTime    time.Time
}

// EventBegin initializes a unit-of-work context for one event delivery.
// Each reaction gets its own deadline so a stuck handler cannot wedge the bus.
func EventBegin(parentCtx context.Context, topic, eventID string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, 2*time.Minute)

	ctx = context.WithValue(ctx, keyTopic, topic)
	ctx = context.WithValue(ctx, keyEventID, eventID)
	ctx = context.WithValue(ctx, keyRetryAttempt, 0)
	ctx = context.WithValue(ctx, keyMaxRetries, 3)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// Run executes the reaction with panic recovery and retry for transient
// failures. The reaction either completes or fails atomically at the boundary
// of one event.
func Run(ctx context.Context, reaction func(context.Context) error) error {
	var (
		err        error
		maxRetries = GetMaxRetries(ctx)
		attempt    = GetRetryAttempt(ctx)
	)

	for attempt < maxRetries {
		ctx = SetRetryAttempt(ctx, attempt)

		func(ctx context.Context) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("panic recovered: %v", p)
				}
			}()

			if ctx.Err() != nil {
				err = fmt.Errorf("context cancelled before reaction: %w", ctx.Err())
				return
			}

			err = reaction(ctx)
		}(ctx)

		if err == nil {
			return nil
		}

		if !IsRetryableError(err) {
			return err
		}

		attempt++
		if attempt >= maxRetries {
			return fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, err)
		}

		if ctx.Err() != nil {
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}

		time.Sleep(CalculateBackoff(attempt, time.Second))
	}

	return fmt.Errorf("reaction failed after %d attempts: %w", maxRetries, err)
}

func getTopic(ctx context.Context) (string, bool) {
	topic, ok := ctx.Value(keyTopic).(string)
	return topic, ok
}

func getEventID(ctx context.Context) (string, bool) {
	eventID, ok := ctx.Value(keyEventID).(string)
	return eventID, ok
}

// GetRetryAttempt extracts current retry attempt from context
func GetRetryAttempt(ctx context.Context) int {
	attempt, ok := ctx.Value(keyRetryAttempt).(int)
	if !ok {
		return 0
	}
	return attempt
}

// SetRetryAttempt updates retry attempt in context
func SetRetryAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, keyRetryAttempt, attempt)
}

// GetMaxRetries extracts max retries from context
func GetMaxRetries(ctx context.Context) int {
	maxRetries, ok := ctx.Value(keyMaxRetries).(int)
	if !ok {
		return 3 // default
	}
	return maxRetries
}

// GetMetadata extracts all event metadata from context
func GetMetadata(ctx context.Context) *EventMetadata {
	topic, _ := getTopic(ctx)
	eventID, _ := getEventID(ctx)
	startTime, _ := ctx.Value(keyStartTime).(time.Time)

	return &EventMetadata{
		Topic:        topic,
		EventID:      eventID,
		RetryAttempt: GetRetryAttempt(ctx),
		MaxRetries:   GetMaxRetries(ctx),
		StartTime:    startTime,
	}
}

// IsRetryableError checks if an error should trigger a redelivery.
// Retryable errors include: network errors, timeouts, rate limits, 5xx.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Context errors (timeout, cancelled)
	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	return false
}

// CalculateBackoff calculates exponential backoff duration
func CalculateBackoff(attempt int, baseDelay time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	// 2^attempt * baseDelay, max 60 seconds
	backoff := time.Duration(1<<uint(attempt)) * baseDelay

	maxBackoff := 60 * time.Second
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}
