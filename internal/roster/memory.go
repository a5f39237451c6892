// Package roster stores the in-memory activity records for the service.
package roster

import (
	"context"
	"sync"

	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/observability"
)

// Repository holds every activity for the lifetime of the process. The map is
// guarded with a mutex so concurrent requests cannot corrupt a participant
// list; no cross-request transactional contract is promised beyond that.
type Repository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewRepository constructs a repository populated with the built-in seed.
func NewRepository() *Repository {
	return NewRepositoryWithSeed(defaultSeed())
}

// NewRepositoryWithSeed constructs a repository from the given seed. The seed
// is copied; callers keep no references into the store.
func NewRepositoryWithSeed(seed map[string]domain.Activity) *Repository {
	repo := &Repository{activities: make(map[string]domain.Activity, len(seed))}
	for name, activity := range seed {
		activity.Participants = append([]string{}, activity.Participants...)
		repo.activities[name] = activity
		observability.SetRosterSize(name, len(activity.Participants))
	}
	return repo
}

// All returns a deep copy of every activity keyed by name.
func (r *Repository) All(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = append([]string{}, activity.Participants...)
		out[name] = activity
	}
	return out, nil
}

// AddParticipant appends the email to the activity's roster.
func (r *Repository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, existing := range activity.Participants {
		if existing == email {
			return domain.ErrAlreadySignedUp
		}
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity

	observability.RecordSignup(name)
	observability.SetRosterSize(name, len(activity.Participants))
	return nil
}

// RemoveParticipant removes the email from the activity's roster, preserving
// the order of the remaining participants.
func (r *Repository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := -1
	for i, existing := range activity.Participants {
		if existing == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	r.activities[name] = activity

	observability.RecordUnregister(name)
	observability.SetRosterSize(name, len(activity.Participants))
	return nil
}
