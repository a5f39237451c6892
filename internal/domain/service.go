// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity name has no record.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")
	// ErrNotRegistered is returned when the email is not on the roster.
	ErrNotRegistered = errors.New("student not registered for this activity")
)

// Roster captures the store operations the service needs.
type Roster interface {
	All(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, activity, email string) error
	RemoveParticipant(ctx context.Context, activity, email string) error
}

// Service orchestrates roster reads and mutations.
type Service struct {
	roster Roster
}

// NewService constructs a Service.
func NewService(roster Roster) *Service {
	return &Service{roster: roster}
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.roster.All(ctx)
}

// Signup registers the email for the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	return s.roster.AddParticipant(ctx, activity, email)
}

// Unregister removes the email from the named activity.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	return s.roster.RemoveParticipant(ctx, activity, email)
}
