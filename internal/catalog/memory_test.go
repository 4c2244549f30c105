package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func newTestCatalog(t *testing.T) *InMemoryCatalog {
	t.Helper()
	c, err := NewInMemoryCatalog(DefaultSeed())
	require.NoError(t, err)
	return c
}

func TestDefaultSeedContents(t *testing.T) {
	c := newTestCatalog(t)

	catalog, err := c.List(context.Background())
	require.NoError(t, err)

	require.Contains(t, catalog, "Basketball")
	require.Contains(t, catalog, "Tennis Club")
	require.Contains(t, catalog, "Art Studio")
	require.Contains(t, catalog, "Drama Club")

	basketball := catalog["Basketball"]
	require.Equal(t, 15, basketball.MaxParticipants)
	require.Equal(t, []string{"james@mergington.edu"}, basketball.Participants)
	require.NotEmpty(t, basketball.Description)
	require.NotEmpty(t, basketball.Schedule)

	drama := catalog["Drama Club"]
	require.Equal(t, []string{"alex@mergington.edu", "jordan@mergington.edu"}, drama.Participants)
}

func TestSignupAppendsInOrder(t *testing.T) {
	c := newTestCatalog(t)

	activity, err := c.Signup(context.Background(), "Basketball", "new@x.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"james@mergington.edu", "new@x.edu"}, activity.Participants)
}

func TestSignupUnknownActivity(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Signup(context.Background(), "Chess Club", "new@x.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupDuplicateLeavesRosterUnchanged(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Signup(context.Background(), "Basketball", "james@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	activity, err := c.Get(context.Background(), "Basketball")
	require.NoError(t, err)
	require.Equal(t, []string{"james@mergington.edu"}, activity.Participants)
}

func TestSignupFull(t *testing.T) {
	seed := Seed{Activities: []SeedActivity{{
		Name:            "Tennis Club",
		Description:     "Learn tennis techniques",
		Schedule:        "Tuesdays, 4:00 PM",
		MaxParticipants: 1,
		Participants:    []string{"sophia@mergington.edu"},
	}}}
	c, err := NewInMemoryCatalog(seed)
	require.NoError(t, err)

	_, err = c.Signup(context.Background(), "Tennis Club", "new@x.edu")
	require.ErrorIs(t, err, domain.ErrActivityFull)

	activity, err := c.Get(context.Background(), "Tennis Club")
	require.NoError(t, err)
	require.Equal(t, []string{"sophia@mergington.edu"}, activity.Participants)
}

func TestUnregisterPreservesOrder(t *testing.T) {
	c := newTestCatalog(t)

	activity, err := c.Unregister(context.Background(), "Drama Club", "alex@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"jordan@mergington.edu"}, activity.Participants)
}

func TestUnregisterNotRegistered(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Unregister(context.Background(), "Basketball", "nobody@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Unregister(context.Background(), "Chess Club", "james@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupThenUnregisterRoundTrip(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	before, err := c.Get(ctx, "Drama Club")
	require.NoError(t, err)

	_, err = c.Signup(ctx, "Drama Club", "temp@mergington.edu")
	require.NoError(t, err)
	_, err = c.Unregister(ctx, "Drama Club", "temp@mergington.edu")
	require.NoError(t, err)

	after, err := c.Get(ctx, "Drama Club")
	require.NoError(t, err)
	require.Equal(t, before.Participants, after.Participants)
}

func TestListReturnsCopies(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	catalog, err := c.List(ctx)
	require.NoError(t, err)

	basketball := catalog["Basketball"]
	basketball.Participants[0] = "mutated@x.edu"

	fresh, err := c.Get(ctx, "Basketball")
	require.NoError(t, err)
	require.Equal(t, []string{"james@mergington.edu"}, fresh.Participants)
}

func TestConcurrentSignupsRespectCapacity(t *testing.T) {
	seed := Seed{Activities: []SeedActivity{{
		Name:            "Robotics",
		Description:     "Build robots",
		Schedule:        "Thursdays, 4:00 PM",
		MaxParticipants: 5,
	}}}
	c, err := NewInMemoryCatalog(seed)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := string(rune('a'+i)) + "@mergington.edu"
			_, _ = c.Signup(context.Background(), "Robotics", email)
		}(i)
	}
	wg.Wait()

	activity, err := c.Get(context.Background(), "Robotics")
	require.NoError(t, err)
	require.Len(t, activity.Participants, 5)
}
