package services

import (
	"context"
	"testing"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentRegisterDefaults(t *testing.T) {
	repo := repositories.NewMockTournamentEntryRepository()
	svc := NewTournamentEntryService(repo)

	entry, err := svc.Register(context.Background(), "tournament-1", "team-a")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, models.TournamentEntryStatusRegistered, entry.Status)
	assert.Nil(t, entry.SeedPosition)
	assert.Nil(t, entry.FinalPosition)
	assert.Zero(t, entry.MatchesPlayed)
	assert.Zero(t, entry.PointsEarned)
	require.Len(t, repo.CreateCalls, 1)
}

func TestTournamentRegisterRequiresIDs(t *testing.T) {
	svc := NewTournamentEntryService(repositories.NewMockTournamentEntryRepository())

	_, err := svc.Register(context.Background(), "", "team-a")
	assert.ErrorIs(t, err, ErrTournamentIDRequired)

	_, err = svc.Register(context.Background(), "tournament-1", "")
	assert.ErrorIs(t, err, ErrTeamIDRequired)
}

func TestTournamentRegisterRejectsDuplicatePair(t *testing.T) {
	repo := repositories.NewMockTournamentEntryRepository()
	repo.GetByTournamentAndTeamFunc = func(tournamentID, teamID string) (*models.TournamentEntry, error) {
		return &models.TournamentEntry{ID: "existing"}, nil
	}
	svc := NewTournamentEntryService(repo)

	_, err := svc.Register(context.Background(), "tournament-1", "team-a")
	assert.ErrorIs(t, err, ErrTournamentRegistrationConflict)
	assert.Empty(t, repo.CreateCalls)
}

func TestTournamentRegisterMapsConstraintConflict(t *testing.T) {
	repo := repositories.NewMockTournamentEntryRepository()
	repo.CreateFunc = func(entry *models.TournamentEntry) error {
		return repositories.ErrTournamentEntryConflict
	}
	svc := NewTournamentEntryService(repo)

	_, err := svc.Register(context.Background(), "tournament-1", "team-a")
	assert.ErrorIs(t, err, ErrTournamentRegistrationConflict)
}

func TestTournamentUpdateValidation(t *testing.T) {
	repo := repositories.NewMockTournamentEntryRepository()
	svc := NewTournamentEntryService(repo)

	bad := models.TournamentEntryStatus("eliminated")
	_, err := svc.Update(context.Background(), "entry-1", models.TournamentEntryUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidEntryStatus)

	negative := -2
	_, err = svc.Update(context.Background(), "entry-1", models.TournamentEntryUpdate{PointsEarned: &negative})
	assert.ErrorIs(t, err, ErrNegativeStatValue)

	zero := 0
	_, err = svc.Update(context.Background(), "entry-1", models.TournamentEntryUpdate{SeedPosition: &zero})
	assert.ErrorIs(t, err, ErrInvalidPositionValue)

	assert.Empty(t, repo.UpdateCalls)
}

func TestTournamentUpdatePassesOnlyProvidedFields(t *testing.T) {
	repo := repositories.NewMockTournamentEntryRepository()
	repo.GetByIDFunc = func(id string) (*models.TournamentEntry, error) {
		return &models.TournamentEntry{ID: id, Status: models.TournamentEntryStatusConfirmed, MatchesWon: 3}, nil
	}
	svc := NewTournamentEntryService(repo)

	seed := 4
	entry, err := svc.Update(context.Background(), "entry-1", models.TournamentEntryUpdate{SeedPosition: &seed})
	require.NoError(t, err)

	require.Len(t, repo.UpdateCalls, 1)
	applied := repo.UpdateCalls[0]
	require.NotNil(t, applied.SeedPosition)
	assert.Equal(t, 4, *applied.SeedPosition)
	assert.Nil(t, applied.Status)
	assert.Nil(t, applied.FinalPosition)
	assert.Nil(t, applied.MatchesWon)

	assert.Equal(t, 3, entry.MatchesWon)
}

func TestTournamentStatsTotalsByStatus(t *testing.T) {
	repo := repositories.NewMockTournamentEntryRepository()
	repo.CountByStatusFunc = func(tournamentID string) (map[string]int, error) {
		return map[string]int{
			"registered":   5,
			"confirmed":    9,
			"disqualified": 1,
			"withdrawn":    2,
		}, nil
	}
	svc := NewTournamentEntryService(repo)

	stats, err := svc.Stats(context.Background(), "tournament-1")
	require.NoError(t, err)

	assert.Equal(t, 17, stats.TotalEntries)
	assert.Equal(t, 9, stats.ByStatus["confirmed"])
}

func TestTournamentGetMapsNotFound(t *testing.T) {
	svc := NewTournamentEntryService(repositories.NewMockTournamentEntryRepository())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTournamentEntryNotFound)

	_, err = svc.GetByTournamentAndTeam(context.Background(), "tournament-1", "team-a")
	assert.ErrorIs(t, err, ErrTournamentEntryNotFound)
}

func TestTournamentDeleteByPairRequiresIDs(t *testing.T) {
	svc := NewTournamentEntryService(repositories.NewMockTournamentEntryRepository())

	assert.ErrorIs(t, svc.DeleteByTournamentAndTeam(context.Background(), "", "team-a"), ErrTournamentIDRequired)
	assert.ErrorIs(t, svc.DeleteByTournamentAndTeam(context.Background(), "tournament-1", ""), ErrTeamIDRequired)
}
