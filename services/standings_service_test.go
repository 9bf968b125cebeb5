package services

import (
	"context"
	"testing"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeagueEntry(id string, points, goalsFor, goalsAgainst int) *models.LeagueEntry {
	return &models.LeagueEntry{
		ID:           id,
		LeagueID:     "league-1",
		Status:       models.LeagueEntryStatusActive,
		Points:       points,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
	}
}

func TestRegisterCreatesActiveEntryWithZeroCounters(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	svc := NewStandingsService(nil, repo)

	entry, err := svc.Register(context.Background(), "league-1", "team-a")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "league-1", entry.LeagueID)
	assert.Equal(t, "team-a", entry.TeamID)
	assert.Equal(t, models.LeagueEntryStatusActive, entry.Status)
	assert.Zero(t, entry.MatchesPlayed)
	assert.Zero(t, entry.Points)
	assert.Nil(t, entry.CurrentPosition)
	require.Len(t, repo.CreateCalls, 1)
}

func TestRegisterRequiresLeagueAndTeam(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	svc := NewStandingsService(nil, repo)

	_, err := svc.Register(context.Background(), "", "team-a")
	assert.ErrorIs(t, err, ErrLeagueIDRequired)

	_, err = svc.Register(context.Background(), "league-1", "")
	assert.ErrorIs(t, err, ErrTeamIDRequired)

	assert.Empty(t, repo.CreateCalls)
}

func TestRegisterRejectsDuplicatePair(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	repo.GetByLeagueAndTeamFunc = func(leagueID, teamID string) (*models.LeagueEntry, error) {
		return newLeagueEntry("existing", 0, 0, 0), nil
	}
	svc := NewStandingsService(nil, repo)

	_, err := svc.Register(context.Background(), "league-1", "team-a")
	assert.ErrorIs(t, err, ErrLeagueRegistrationConflict)
	assert.Empty(t, repo.CreateCalls)
}

func TestRegisterMapsConstraintConflict(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	repo.CreateFunc = func(entry *models.LeagueEntry) error {
		return repositories.ErrLeagueEntryConflict
	}
	svc := NewStandingsService(nil, repo)

	_, err := svc.Register(context.Background(), "league-1", "team-a")
	assert.ErrorIs(t, err, ErrLeagueRegistrationConflict)
}

func TestRankEntriesOrdering(t *testing.T) {
	// A and B tie on points and goal difference; A scores more. C trails on
	// points despite the best difference.
	a := newLeagueEntry("a", 10, 6, 4)
	b := newLeagueEntry("b", 10, 5, 3)
	c := newLeagueEntry("c", 7, 9, 1)

	ranked := rankEntries([]*models.LeagueEntry{c, b, a})

	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)
	assert.Equal(t, "c", ranked[2].ID)
}

func TestRankEntriesFullTieBreaksByID(t *testing.T) {
	x := newLeagueEntry("x", 10, 5, 3)
	y := newLeagueEntry("y", 10, 5, 3)

	ranked := rankEntries([]*models.LeagueEntry{y, x})
	assert.Equal(t, "x", ranked[0].ID)
	assert.Equal(t, "y", ranked[1].ID)
}

func TestRankEntriesDeterministic(t *testing.T) {
	entries := []*models.LeagueEntry{
		newLeagueEntry("d", 4, 2, 2),
		newLeagueEntry("a", 10, 6, 4),
		newLeagueEntry("c", 10, 6, 4),
		newLeagueEntry("b", 7, 9, 1),
	}

	first := rankEntries(entries)
	second := rankEntries(entries)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "rank %d differs between runs", i+1)
	}
}

func TestRankEntriesDoesNotMutateInput(t *testing.T) {
	entries := []*models.LeagueEntry{
		newLeagueEntry("b", 1, 0, 0),
		newLeagueEntry("a", 5, 0, 0),
	}

	_ = rankEntries(entries)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}

func TestUpdateValidatesStatusAndCounters(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	svc := NewStandingsService(nil, repo)

	bad := models.LeagueEntryStatus("benched")
	_, err := svc.Update(context.Background(), "entry-1", models.LeagueEntryUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidEntryStatus)

	negative := -1
	_, err = svc.Update(context.Background(), "entry-1", models.LeagueEntryUpdate{Points: &negative})
	assert.ErrorIs(t, err, ErrNegativeStatValue)

	zero := 0
	_, err = svc.Update(context.Background(), "entry-1", models.LeagueEntryUpdate{CurrentPosition: &zero})
	assert.ErrorIs(t, err, ErrInvalidPositionValue)

	assert.Empty(t, repo.UpdateCalls)
}

func TestUpdatePassesOnlyProvidedFields(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	repo.GetByIDFunc = func(id string) (*models.LeagueEntry, error) {
		e := newLeagueEntry(id, 15, 6, 4)
		e.MatchesPlayed = 8
		return e, nil
	}
	svc := NewStandingsService(nil, repo)

	points := 15
	entry, err := svc.Update(context.Background(), "entry-1", models.LeagueEntryUpdate{Points: &points})
	require.NoError(t, err)

	require.Len(t, repo.UpdateCalls, 1)
	applied := repo.UpdateCalls[0]
	require.NotNil(t, applied.Points)
	assert.Equal(t, 15, *applied.Points)
	assert.Nil(t, applied.Status)
	assert.Nil(t, applied.MatchesPlayed)
	assert.Nil(t, applied.GoalsFor)
	assert.Nil(t, applied.GoalsAgainst)

	// prior values survive a points-only update
	assert.Equal(t, 8, entry.MatchesPlayed)
	assert.Equal(t, 6, entry.GoalsFor)
}

func TestUpdateUnknownEntry(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	repo.UpdateFunc = func(id string, update models.LeagueEntryUpdate) error {
		return repositories.ErrLeagueEntryNotFound
	}
	svc := NewStandingsService(nil, repo)

	points := 3
	_, err := svc.Update(context.Background(), "missing", models.LeagueEntryUpdate{Points: &points})
	assert.ErrorIs(t, err, ErrLeagueEntryNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	svc := NewStandingsService(nil, repo)

	require.NoError(t, svc.Delete(context.Background(), "absent"))
	require.NoError(t, svc.Delete(context.Background(), "absent"))
	assert.Len(t, repo.DeleteCalls, 2)
}

func TestStatsAggregates(t *testing.T) {
	repo := repositories.NewMockLeagueEntryRepository()
	repo.CountTotalsFunc = func(leagueID string) (int, int, int, error) {
		return 4, 22, 31, nil
	}
	repo.CountByStatusFunc = func(leagueID string) (map[string]int, error) {
		return map[string]int{"active": 3, "suspended": 1}, nil
	}
	svc := NewStandingsService(nil, repo)

	stats, err := svc.Stats(context.Background(), "league-1")
	require.NoError(t, err)

	assert.Equal(t, "league-1", stats.LeagueID)
	assert.Equal(t, 4, stats.TotalEntries)
	assert.Equal(t, 22, stats.MatchesPlayed)
	assert.Equal(t, 31, stats.GoalsFor)
	assert.Equal(t, map[string]int{"active": 3, "suspended": 1}, stats.ByStatus)
}

func TestStatsRequiresLeague(t *testing.T) {
	svc := NewStandingsService(nil, repositories.NewMockLeagueEntryRepository())

	_, err := svc.Stats(context.Background(), "")
	assert.ErrorIs(t, err, ErrLeagueIDRequired)
}

func TestGetMapsNotFound(t *testing.T) {
	svc := NewStandingsService(nil, repositories.NewMockLeagueEntryRepository())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrLeagueEntryNotFound)
}
