// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"example.com/activities/internal/events"
	"example.com/activities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the student is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")
	// ErrActivityFull is returned when the roster is at capacity.
	ErrActivityFull = errors.New("activity is full")
	// ErrNotRegistered is returned when unregistering a student who is not enrolled.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrInvalidEmail is returned when the email parameter is blank.
	ErrInvalidEmail = errors.New("email is required")
)

// Catalog captures the storage operations for the activity table. Mutations
// are atomic: the membership and capacity checks happen under the store's
// lock together with the roster update.
type Catalog interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, name, email string) (Activity, error)
	Unregister(ctx context.Context, name, email string) (Activity, error)
}

// Service orchestrates signup workflows over the catalog.
type Service struct {
	catalog   Catalog
	publisher events.Publisher
	logger    *slog.Logger
}

// NewService constructs a Service. The publisher may be events.NopPublisher
// when no broker is configured.
func NewService(catalog Catalog, publisher events.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, publisher: publisher, logger: logger}
}

// List returns the full catalog keyed by activity name.
func (s *Service) List(ctx context.Context) (map[string]Activity, error) {
	return s.catalog.List(ctx)
}

// Signup enrolls the email in the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) (Activity, error) {
	if strings.TrimSpace(email) == "" {
		return Activity{}, ErrInvalidEmail
	}

	activity, err := s.catalog.Signup(ctx, name, email)
	if err != nil {
		observability.RecordSignup(metricLabel(name, err), outcomeFor(err))
		return Activity{}, err
	}

	observability.RecordSignup(activity.Name, observability.OutcomeAccepted)
	observability.SetRosterSize(activity.Name, len(activity.Participants))
	s.publish(ctx, events.ActionSignup, activity, email)
	return activity, nil
}

// Unregister removes the email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (Activity, error) {
	if strings.TrimSpace(email) == "" {
		return Activity{}, ErrInvalidEmail
	}

	activity, err := s.catalog.Unregister(ctx, name, email)
	if err != nil {
		observability.RecordUnregister(metricLabel(name, err), outcomeFor(err))
		return Activity{}, err
	}

	observability.RecordUnregister(activity.Name, observability.OutcomeAccepted)
	observability.SetRosterSize(activity.Name, len(activity.Participants))
	s.publish(ctx, events.ActionUnregister, activity, email)
	return activity, nil
}

// publish emits a roster-change event. Delivery is best-effort: a publish
// failure is logged and never surfaces to the caller.
func (s *Service) publish(ctx context.Context, action string, activity Activity, email string) {
	ev := events.RosterChanged{
		Action:     action,
		Activity:   activity.Name,
		Email:      email,
		RosterSize: len(activity.Participants),
		Capacity:   activity.MaxParticipants,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishRosterChanged(ctx, ev); err != nil {
		s.logger.Error("roster event publish failed",
			"action", action, "activity", activity.Name, "error", err)
	}
}

// metricLabel keeps label cardinality bounded: arbitrary unknown names all
// land on one series.
func metricLabel(name string, err error) string {
	if errors.Is(err, ErrActivityNotFound) {
		return "unknown"
	}
	return name
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, ErrAlreadySignedUp):
		return observability.OutcomeDuplicate
	case errors.Is(err, ErrActivityFull):
		return observability.OutcomeFull
	case errors.Is(err, ErrNotRegistered):
		return observability.OutcomeNotRegistered
	default:
		return observability.OutcomeError
	}
}
