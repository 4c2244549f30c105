// Package catalog holds the in-memory activity table.
package catalog

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// InMemoryCatalog stores activities in memory for the process lifetime.
// A restart resets the table to its seed. The activity set is fixed at
// construction; only rosters mutate afterwards.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryCatalog constructs a catalog populated from the seed.
func NewInMemoryCatalog(seed Seed) (*InMemoryCatalog, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	c := &InMemoryCatalog{activities: make(map[string]domain.Activity, len(seed.Activities))}
	for _, entry := range seed.Activities {
		c.activities[entry.Name] = domain.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    append([]string(nil), entry.Participants...),
		}
	}
	return c, nil
}

// List returns a snapshot of the whole table. Rosters are copied so callers
// never alias live state.
func (c *InMemoryCatalog) List(ctx context.Context) (map[string]domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.Activity, len(c.activities))
	for name, activity := range c.activities {
		out[name] = snapshot(activity)
	}
	return out, nil
}

// Get returns a snapshot of one activity, or nil when the name is unknown.
func (c *InMemoryCatalog) Get(ctx context.Context, name string) (*domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, nil
	}
	copied := snapshot(activity)
	return &copied, nil
}

// Signup appends the email to the named activity's roster. The membership
// and capacity checks happen under the lock, so the roster invariants hold
// under concurrent requests.
func (c *InMemoryCatalog) Signup(ctx context.Context, name, email string) (domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if activity.Enrolled(email) {
		return domain.Activity{}, domain.ErrAlreadySignedUp
	}
	if activity.Full() {
		return domain.Activity{}, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	c.activities[name] = activity
	return snapshot(activity), nil
}

// Unregister removes the single occurrence of email from the roster,
// preserving the relative order of the remaining entries.
func (c *InMemoryCatalog) Unregister(ctx context.Context, name, email string) (domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}

	idx := -1
	for i, p := range activity.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Activity{}, domain.ErrNotRegistered
	}

	roster := make([]string, 0, len(activity.Participants)-1)
	roster = append(roster, activity.Participants[:idx]...)
	roster = append(roster, activity.Participants[idx+1:]...)
	activity.Participants = roster
	c.activities[name] = activity
	return snapshot(activity), nil
}

func snapshot(activity domain.Activity) domain.Activity {
	activity.Participants = append([]string(nil), activity.Participants...)
	return activity
}
