// Package events defines roster-change event payloads and publishers.
package events

import (
	"context"
	"time"
)

// Actions recorded on RosterChanged events.
const (
	ActionSignup     = "signup"
	ActionUnregister = "unregister"
)

// RosterChanged is emitted after a roster mutation is applied.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	Capacity   int       `json:"capacity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers roster-change events to interested consumers.
type Publisher interface {
	PublishRosterChanged(ctx context.Context, ev RosterChanged) error
	Close() error
}

// NopPublisher discards events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishRosterChanged(context.Context, RosterChanged) error { return nil }

func (NopPublisher) Close() error { return nil }
