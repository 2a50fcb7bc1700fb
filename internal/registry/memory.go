// Package registry holds the in-memory activity directory for the process
// lifetime. Entries are fixed at construction; only rosters mutate.
package registry

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// Option adjusts registry behaviour at construction time.
type Option func(*InMemory)

// WithCapacityEnforcement makes Enroll reject signups once a roster reaches
// the activity's MaxParticipants. Off by default: the advertised capacity is
// otherwise informational only.
func WithCapacityEnforcement() Option {
	return func(r *InMemory) {
		r.enforceCapacity = true
	}
}

// InMemory implements domain.Directory over a mutex-guarded map.
type InMemory struct {
	mu              sync.RWMutex
	activities      map[string]*domain.Activity
	enforceCapacity bool
}

// New constructs the registry from the given activities. The slice and its
// rosters are copied; later mutation of the caller's values has no effect.
func New(activities []domain.Activity, opts ...Option) *InMemory {
	r := &InMemory{
		activities: make(map[string]*domain.Activity, len(activities)),
	}
	for _, activity := range activities {
		cloned := activity.Clone()
		r.activities[cloned.Name] = &cloned
		setRosterSize(cloned.Name, len(cloned.Participants))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot implements domain.Directory.
func (r *InMemory) Snapshot(ctx context.Context) map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Enroll implements domain.Directory. The duplicate and capacity checks run
// under the write lock, so two concurrent calls for the same pair cannot both
// succeed.
func (r *InMemory) Enroll(ctx context.Context, activityName, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		recordSignup(outcomeActivityNotFound)
		return nil, domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			recordSignup(outcomeAlreadySignedUp)
			return nil, domain.ErrAlreadySignedUp
		}
	}
	if r.enforceCapacity && len(activity.Participants) >= activity.MaxParticipants {
		recordSignup(outcomeFull)
		return nil, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	recordSignup(outcomeSuccess)
	setRosterSize(activity.Name, len(activity.Participants))

	updated := activity.Clone()
	return &updated, nil
}

// Withdraw implements domain.Directory.
func (r *InMemory) Withdraw(ctx context.Context, activityName, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		recordWithdrawal(outcomeActivityNotFound)
		return nil, domain.ErrActivityNotFound
	}

	index := -1
	for i, participant := range activity.Participants {
		if participant == email {
			index = i
			break
		}
	}
	if index < 0 {
		recordWithdrawal(outcomeStudentNotFound)
		return nil, domain.ErrStudentNotFound
	}

	activity.Participants = append(activity.Participants[:index], activity.Participants[index+1:]...)
	recordWithdrawal(outcomeSuccess)
	setRosterSize(activity.Name, len(activity.Participants))

	updated := activity.Clone()
	return &updated, nil
}
