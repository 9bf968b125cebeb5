package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/repositories"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// StandingsService owns per-league competitive records and the ranking that
// orders them into table positions.
type StandingsService struct {
	db      *sql.DB // transaction management for position recomputes
	entries repositories.LeagueEntryRepository
}

func NewStandingsService(db *sql.DB, entries repositories.LeagueEntryRepository) *StandingsService {
	return &StandingsService{
		db:      db,
		entries: entries,
	}
}

// Register creates a league entry with zeroed counters and status "active".
// The read-before-write check gives a clean conflict message; the unique
// (league_id, team_id) constraint backs it up when two registrations race.
func (s *StandingsService) Register(ctx context.Context, leagueID, teamID string) (*models.LeagueEntry, error) {
	if leagueID == "" {
		return nil, ErrLeagueIDRequired
	}
	if teamID == "" {
		return nil, ErrTeamIDRequired
	}

	existing, err := s.entries.GetByLeagueAndTeam(ctx, nil, leagueID, teamID)
	if err != nil && !errors.Is(err, repositories.ErrLeagueEntryNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return nil, ErrLeagueRegistrationConflict
	}

	entry := &models.LeagueEntry{
		ID:       uuid.NewString(),
		LeagueID: leagueID,
		TeamID:   teamID,
		Status:   models.LeagueEntryStatusActive,
	}
	if err := s.entries.Create(ctx, nil, entry); err != nil {
		if errors.Is(err, repositories.ErrLeagueEntryConflict) {
			return nil, ErrLeagueRegistrationConflict
		}
		return nil, err
	}
	return entry, nil
}

func (s *StandingsService) Get(ctx context.Context, entryID string) (*models.LeagueEntry, error) {
	entry, err := s.entries.GetByID(ctx, nil, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueEntryNotFound) {
			return nil, ErrLeagueEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// ListByLeague returns the league table in ranking order:
// points desc, goal difference desc, goals scored desc.
func (s *StandingsService) ListByLeague(ctx context.Context, leagueID string) ([]*models.LeagueEntry, error) {
	return s.entries.ListByLeague(ctx, nil, leagueID)
}

func (s *StandingsService) ListByTeam(ctx context.Context, teamID string) ([]*models.LeagueEntry, error) {
	return s.entries.ListByTeam(ctx, nil, teamID)
}

// Update applies a partial update. Unset fields keep their stored values.
// matches_played is intentionally not checked against won+drawn+lost: keeping
// the four counters consistent is the caller's contract.
func (s *StandingsService) Update(ctx context.Context, entryID string, update models.LeagueEntryUpdate) (*models.LeagueEntry, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, ErrInvalidEntryStatus
	}
	for _, v := range []*int{
		update.MatchesPlayed, update.MatchesWon, update.MatchesDrawn, update.MatchesLost,
		update.GoalsFor, update.GoalsAgainst, update.Points,
	} {
		if v != nil && *v < 0 {
			return nil, ErrNegativeStatValue
		}
	}
	if update.CurrentPosition != nil && *update.CurrentPosition < 1 {
		return nil, ErrInvalidPositionValue
	}

	if !update.Empty() {
		if err := s.entries.Update(ctx, nil, entryID, update); err != nil {
			if errors.Is(err, repositories.ErrLeagueEntryNotFound) {
				return nil, ErrLeagueEntryNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, entryID)
}

// Delete removes an entry. Absence is not an error, so retries are safe.
func (s *StandingsService) Delete(ctx context.Context, entryID string) error {
	return s.entries.Delete(ctx, nil, entryID)
}

func (s *StandingsService) DeleteByLeagueAndTeam(ctx context.Context, leagueID, teamID string) error {
	if leagueID == "" {
		return ErrLeagueIDRequired
	}
	if teamID == "" {
		return ErrTeamIDRequired
	}
	return s.entries.DeleteByLeagueAndTeam(ctx, nil, leagueID, teamID)
}

// RecomputePositions reranks the active entries of a league and writes the
// 1-based positions back, all inside one transaction so concurrent readers
// never observe a partially renumbered table. Entries that are not active are
// skipped entirely and keep their last known position. The fixed id tiebreak
// makes the operation idempotent for a given snapshot.
func (s *StandingsService) RecomputePositions(ctx context.Context, leagueID string) ([]*models.LeagueEntry, error) {
	if leagueID == "" {
		return nil, ErrLeagueIDRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin recompute transaction: %w", err)
	}
	defer tx.Rollback()

	active, err := s.entries.ListActiveByLeagueForUpdate(ctx, tx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active entries: %w", err)
	}

	ranked := rankEntries(active)
	positions := make(map[string]int, len(ranked))
	for i, entry := range ranked {
		position := i + 1
		positions[entry.ID] = position
		p := position
		entry.CurrentPosition = &p
	}

	if err := s.entries.UpdatePositions(ctx, tx, positions); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recompute transaction: %w", err)
	}
	return ranked, nil
}

// RecomputeAllLeagues sweeps every league that has at least one entry. Used by
// the background scheduler; individual league failures abort the sweep.
func (s *StandingsService) RecomputeAllLeagues(ctx context.Context) error {
	leagueIDs, err := s.entries.ListLeagueIDs(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list leagues: %w", err)
	}
	for _, leagueID := range leagueIDs {
		if _, err := s.RecomputePositions(ctx, leagueID); err != nil {
			return fmt.Errorf("recompute failed for league %s: %w", leagueID, err)
		}
	}
	return nil
}

// Stats aggregates a league's entries. The two aggregate queries are
// independent, so they run concurrently.
func (s *StandingsService) Stats(ctx context.Context, leagueID string) (*models.LeagueStats, error) {
	if leagueID == "" {
		return nil, ErrLeagueIDRequired
	}

	stats := &models.LeagueStats{LeagueID: leagueID}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, matchesPlayed, goalsFor, err := s.entries.CountTotals(gCtx, nil, leagueID)
		if err != nil {
			return err
		}
		stats.TotalEntries = total
		stats.MatchesPlayed = matchesPlayed
		stats.GoalsFor = goalsFor
		return nil
	})
	g.Go(func() error {
		byStatus, err := s.entries.CountByStatus(gCtx, nil, leagueID)
		if err != nil {
			return err
		}
		stats.ByStatus = byStatus
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// rankEntries sorts a copy of entries by points desc, goal difference desc,
// goals scored desc, with entry id as the final deterministic tiebreak.
func rankEntries(entries []*models.LeagueEntry) []*models.LeagueEntry {
	ranked := make([]*models.LeagueEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.ID < b.ID
	})
	return ranked
}
