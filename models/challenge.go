package models

import "time"

type ChallengeStatus string

const (
	ChallengeStatusPending   ChallengeStatus = "pending"
	ChallengeStatusAccepted  ChallengeStatus = "accepted"
	ChallengeStatusRejected  ChallengeStatus = "rejected"
	ChallengeStatusCompleted ChallengeStatus = "completed"
	ChallengeStatusCancelled ChallengeStatus = "cancelled"
)

func (s ChallengeStatus) Valid() bool {
	switch s {
	case ChallengeStatusPending, ChallengeStatusAccepted, ChallengeStatusRejected,
		ChallengeStatusCompleted, ChallengeStatusCancelled:
		return true
	}
	return false
}

// Active reports whether the status blocks a new challenge between the same
// unordered pair of teams.
func (s ChallengeStatus) Active() bool {
	return s == ChallengeStatusPending || s == ChallengeStatusAccepted
}

// Terminal statuses are never revived; a new challenge must be created instead.
func (s ChallengeStatus) Terminal() bool {
	switch s {
	case ChallengeStatusRejected, ChallengeStatusCompleted, ChallengeStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo encodes the challenge lifecycle:
// pending -> accepted | rejected | cancelled, accepted -> completed | cancelled.
func (s ChallengeStatus) CanTransitionTo(next ChallengeStatus) bool {
	switch s {
	case ChallengeStatusPending:
		return next == ChallengeStatusAccepted || next == ChallengeStatusRejected ||
			next == ChallengeStatusCancelled
	case ChallengeStatusAccepted:
		return next == ChallengeStatusCompleted || next == ChallengeStatusCancelled
	}
	return false
}

// Challenge is a proposed match between two teams outside any league or
// tournament. For any unordered pair of teams at most one challenge with an
// active status may exist at a time.
type Challenge struct {
	ID            string          `json:"id" db:"id"`
	ChallengerID  string          `json:"challenger_id" db:"challenger_id"`
	ChallengedID  string          `json:"challenged_id" db:"challenged_id"`
	Status        ChallengeStatus `json:"status" db:"status"`
	ScheduledDate *time.Time      `json:"scheduled_date,omitempty" db:"scheduled_date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
