package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChallengeStatusValid(t *testing.T) {
	for _, status := range []ChallengeStatus{
		ChallengeStatusPending, ChallengeStatusAccepted, ChallengeStatusRejected,
		ChallengeStatusCompleted, ChallengeStatusCancelled,
	} {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}

	assert.False(t, ChallengeStatus("open").Valid())
	assert.False(t, ChallengeStatus("").Valid())
}

func TestChallengeStatusActive(t *testing.T) {
	assert.True(t, ChallengeStatusPending.Active())
	assert.True(t, ChallengeStatusAccepted.Active())
	assert.False(t, ChallengeStatusRejected.Active())
	assert.False(t, ChallengeStatusCompleted.Active())
	assert.False(t, ChallengeStatusCancelled.Active())
}

func TestChallengeStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ChallengeStatus
		to      ChallengeStatus
		allowed bool
	}{
		{ChallengeStatusPending, ChallengeStatusAccepted, true},
		{ChallengeStatusPending, ChallengeStatusRejected, true},
		{ChallengeStatusPending, ChallengeStatusCancelled, true},
		{ChallengeStatusPending, ChallengeStatusCompleted, false},
		{ChallengeStatusAccepted, ChallengeStatusCompleted, true},
		{ChallengeStatusAccepted, ChallengeStatusCancelled, true},
		{ChallengeStatusAccepted, ChallengeStatusRejected, false},
		{ChallengeStatusAccepted, ChallengeStatusPending, false},
		// terminal states are never revived
		{ChallengeStatusRejected, ChallengeStatusPending, false},
		{ChallengeStatusCompleted, ChallengeStatusPending, false},
		{ChallengeStatusCancelled, ChallengeStatusAccepted, false},
		{ChallengeStatusCompleted, ChallengeStatusCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestChallengeStatusTerminal(t *testing.T) {
	assert.False(t, ChallengeStatusPending.Terminal())
	assert.False(t, ChallengeStatusAccepted.Terminal())
	assert.True(t, ChallengeStatusRejected.Terminal())
	assert.True(t, ChallengeStatusCompleted.Terminal())
	assert.True(t, ChallengeStatusCancelled.Terminal())
}

func TestLeagueEntryGoalDifference(t *testing.T) {
	entry := &LeagueEntry{GoalsFor: 7, GoalsAgainst: 3}
	assert.Equal(t, 4, entry.GoalDifference())
}

func TestLeagueEntryUpdateEmpty(t *testing.T) {
	assert.True(t, LeagueEntryUpdate{}.Empty())

	points := 10
	assert.False(t, LeagueEntryUpdate{Points: &points}.Empty())
}
