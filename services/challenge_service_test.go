package services

import (
	"context"
	"testing"
	"time"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallenge(t *testing.T) {
	repo := repositories.NewMockChallengeRepository()
	svc := NewChallengeService(repo)

	challenge, err := svc.Create(context.Background(), CreateChallengeInput{
		ChallengerID: "team-a",
		ChallengedID: "team-b",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, challenge.ID)
	assert.Equal(t, "team-a", challenge.ChallengerID)
	assert.Equal(t, "team-b", challenge.ChallengedID)
	assert.Equal(t, models.ChallengeStatusPending, challenge.Status)
	assert.Nil(t, challenge.ScheduledDate)
	require.Len(t, repo.CreateCalls, 1)
}

func TestCreateChallengeRejectsSelf(t *testing.T) {
	repo := repositories.NewMockChallengeRepository()
	svc := NewChallengeService(repo)

	_, err := svc.Create(context.Background(), CreateChallengeInput{
		ChallengerID: "team-a",
		ChallengedID: "team-a",
	})
	assert.ErrorIs(t, err, ErrSelfChallenge)
	assert.Empty(t, repo.CreateCalls, "no row must be written on a self-challenge")
}

func TestCreateChallengeRequiresBothTeams(t *testing.T) {
	svc := NewChallengeService(repositories.NewMockChallengeRepository())

	_, err := svc.Create(context.Background(), CreateChallengeInput{ChallengerID: "team-a"})
	assert.ErrorIs(t, err, ErrChallengeTeamsRequired)

	_, err = svc.Create(context.Background(), CreateChallengeInput{ChallengedID: "team-b"})
	assert.ErrorIs(t, err, ErrChallengeTeamsRequired)
}

// A pending A->B challenge blocks B->A too: the pair is unordered.
func TestCreateChallengeBlocksActivePairBothDirections(t *testing.T) {
	pending := &models.Challenge{
		ID:           "existing",
		ChallengerID: "team-a",
		ChallengedID: "team-b",
		Status:       models.ChallengeStatusPending,
	}

	repo := repositories.NewMockChallengeRepository()
	repo.FindActiveByPairFunc = func(teamA, teamB string) (*models.Challenge, error) {
		return pending, nil
	}
	svc := NewChallengeService(repo)

	_, err := svc.Create(context.Background(), CreateChallengeInput{
		ChallengerID: "team-b",
		ChallengedID: "team-a",
	})
	assert.ErrorIs(t, err, ErrChallengeActiveConflict)
	assert.Empty(t, repo.CreateCalls)
}

// Once the earlier challenge reached a terminal status, a new one may open.
func TestCreateChallengeAllowedAfterTerminal(t *testing.T) {
	repo := repositories.NewMockChallengeRepository()
	repo.FindActiveByPairFunc = func(teamA, teamB string) (*models.Challenge, error) {
		return nil, repositories.ErrChallengeNotFound
	}
	svc := NewChallengeService(repo)

	challenge, err := svc.Create(context.Background(), CreateChallengeInput{
		ChallengerID: "team-b",
		ChallengedID: "team-a",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusPending, challenge.Status)
}

func TestCreateChallengeMapsIndexConflict(t *testing.T) {
	repo := repositories.NewMockChallengeRepository()
	repo.CreateFunc = func(challenge *models.Challenge) error {
		// the partial unique index caught a racing create
		return repositories.ErrChallengePairConflict
	}
	svc := NewChallengeService(repo)

	_, err := svc.Create(context.Background(), CreateChallengeInput{
		ChallengerID: "team-a",
		ChallengedID: "team-b",
	})
	assert.ErrorIs(t, err, ErrChallengeActiveConflict)
}

func TestSetStatusEnforcesStateMachine(t *testing.T) {
	tests := []struct {
		name    string
		from    models.ChallengeStatus
		to      models.ChallengeStatus
		wantErr error
	}{
		{"pending accepted", models.ChallengeStatusPending, models.ChallengeStatusAccepted, nil},
		{"pending rejected", models.ChallengeStatusPending, models.ChallengeStatusRejected, nil},
		{"pending cancelled", models.ChallengeStatusPending, models.ChallengeStatusCancelled, nil},
		{"pending completed", models.ChallengeStatusPending, models.ChallengeStatusCompleted, ErrChallengeInvalidTransition},
		{"accepted completed", models.ChallengeStatusAccepted, models.ChallengeStatusCompleted, nil},
		{"accepted cancelled", models.ChallengeStatusAccepted, models.ChallengeStatusCancelled, nil},
		{"accepted rejected", models.ChallengeStatusAccepted, models.ChallengeStatusRejected, ErrChallengeInvalidTransition},
		{"completed pending", models.ChallengeStatusCompleted, models.ChallengeStatusPending, ErrChallengeInvalidTransition},
		{"rejected accepted", models.ChallengeStatusRejected, models.ChallengeStatusAccepted, ErrChallengeInvalidTransition},
		{"cancelled completed", models.ChallengeStatusCancelled, models.ChallengeStatusCompleted, ErrChallengeInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repositories.NewMockChallengeRepository()
			repo.GetByIDFunc = func(id string) (*models.Challenge, error) {
				return &models.Challenge{ID: id, Status: tt.from}, nil
			}
			svc := NewChallengeService(repo)

			challenge, err := svc.SetStatus(context.Background(), "challenge-1", tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.UpdateStatusCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, challenge.Status)
			require.Len(t, repo.UpdateStatusCalls, 1)
			assert.Equal(t, tt.to, repo.UpdateStatusCalls[0].Status)
		})
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := NewChallengeService(repositories.NewMockChallengeRepository())

	_, err := svc.SetStatus(context.Background(), "challenge-1", models.ChallengeStatus("postponed"))
	assert.ErrorIs(t, err, ErrInvalidChallengeStatus)
}

func TestSetStatusUnknownChallenge(t *testing.T) {
	svc := NewChallengeService(repositories.NewMockChallengeRepository())

	_, err := svc.SetStatus(context.Background(), "missing", models.ChallengeStatusAccepted)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

// The scheduled date is a free-standing field: it may be set or cleared at any
// status, including terminal ones.
func TestSetScheduledDatePermissive(t *testing.T) {
	repo := repositories.NewMockChallengeRepository()
	repo.GetByIDFunc = func(id string) (*models.Challenge, error) {
		return &models.Challenge{ID: id, Status: models.ChallengeStatusCompleted}, nil
	}
	svc := NewChallengeService(repo)

	when := time.Date(2026, time.September, 12, 18, 0, 0, 0, time.UTC)
	challenge, err := svc.SetScheduledDate(context.Background(), "challenge-1", &when)
	require.NoError(t, err)
	require.NotNil(t, challenge.ScheduledDate)
	assert.True(t, when.Equal(*challenge.ScheduledDate))

	challenge, err = svc.SetScheduledDate(context.Background(), "challenge-1", nil)
	require.NoError(t, err)
	assert.Nil(t, challenge.ScheduledDate)
}

func TestListByTeamRequiresTeam(t *testing.T) {
	svc := NewChallengeService(repositories.NewMockChallengeRepository())

	_, err := svc.ListByTeam(context.Background(), "")
	assert.ErrorIs(t, err, ErrTeamIDRequired)
}

func TestDeleteChallengeMapsNotFound(t *testing.T) {
	repo := repositories.NewMockChallengeRepository()
	repo.DeleteFunc = func(id string) error {
		return repositories.ErrChallengeNotFound
	}
	svc := NewChallengeService(repo)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}
