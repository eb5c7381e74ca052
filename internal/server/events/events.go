// Package events announces identity lifecycle changes to other services.
package events

import (
	"context"
	"time"
)

// Event types, also used as AMQP routing keys.
const (
	TypeSignedUp         = "identity.signed_up"
	TypeProfileSubmitted = "identity.profile_submitted"
)

// Event is the JSON body of a published message. It never carries
// credentials.
type Event struct {
	Type       string    `json:"type"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email,omitempty"`
	JobTitle   string    `json:"job_title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
