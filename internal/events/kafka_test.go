package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	ev := RosterChanged{
		EventID:    "ev-1",
		Action:     ActionSignup,
		Activity:   "Drama Club",
		Email:      "alex@mergington.edu",
		RosterSize: 3,
		Capacity:   20,
		OccurredAt: time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
	}

	msg, err := newMessage(ev)
	require.NoError(t, err)

	// Keyed by activity so one roster's mutations stay ordered per partition.
	require.Equal(t, []byte("Drama Club"), msg.Key)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, "roster.signup", headers["event_type"])
	require.Equal(t, "ev-1", headers["event_id"])

	var decoded RosterChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, ev, decoded)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	require.NoError(t, p.PublishRosterChanged(context.Background(), RosterChanged{}))
	require.NoError(t, p.Close())
}

func TestKafkaPublisherCloseWithoutPublish(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "activity_roster_events", time.Second)
	require.NoError(t, p.Close())
}
