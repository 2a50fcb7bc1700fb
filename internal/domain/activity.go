// Package domain defines the activity directory contract and its types.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the student already appears on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")
	// ErrStudentNotFound is returned when a withdrawal names a student not on the roster.
	ErrStudentNotFound = errors.New("student not found in this activity")
	// ErrActivityFull is returned when capacity enforcement rejects a signup.
	ErrActivityFull = errors.New("activity is full")
)

// Activity is one extracurricular offering and its roster. Participants holds
// student emails in enrollment order, each at most once.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone returns a copy whose roster shares no memory with the receiver.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// Directory captures the registry operations consumed by the HTTP layer.
// Activity names are compared exactly; callers decode any transport escaping
// before lookup.
type Directory interface {
	// Snapshot returns a consistent deep copy of the full directory state.
	Snapshot(ctx context.Context) map[string]Activity
	// Enroll appends email to the named activity's roster and returns the
	// updated activity.
	Enroll(ctx context.Context, activityName, email string) (*Activity, error)
	// Withdraw removes email from the named activity's roster, preserving the
	// relative order of the remaining participants.
	Withdraw(ctx context.Context, activityName, email string) (*Activity, error)
}
