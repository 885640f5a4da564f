package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator mints globally unique entity IDs. It is injected as a capability
// so ID schemes stay out of business code and tests can use deterministic IDs.
type Generator interface {
	MeetingID() string
	ActionID() string
	ReminderID() string
}

type uuidGenerator struct{}

// NewGenerator returns a UUID-backed generator. UUIDv4 carries enough entropy
// that rapid successive calls cannot collide, unlike a millisecond timestamp.
func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) MeetingID() string {
	return fmt.Sprintf("meeting_%s", uuid.NewString())
}

func (uuidGenerator) ActionID() string {
	return fmt.Sprintf("action_%s", uuid.NewString())
}

func (uuidGenerator) ReminderID() string {
	return fmt.Sprintf("reminder_%s", uuid.NewString())
}
