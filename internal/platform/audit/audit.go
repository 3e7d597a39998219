// Package audit emits security-relevant auth events to an external sink.
// Events carry the subject and outcome only; secrets and tokens never
// appear in them.
package audit

import (
	"context"
	"time"
)

// Event records one auth action.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Outcome   string    `json:"outcome"`
}

// Publisher fans events out to a sink. Implementations must be safe for
// concurrent use; emission is best-effort and never blocks a request on
// sink availability.
type Publisher interface {
	Emit(ctx context.Context, e Event) error
}

// Nop discards events. Used when no broker is configured.
type Nop struct{}

func (Nop) Emit(context.Context, Event) error {
	return nil
}
