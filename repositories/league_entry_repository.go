package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/esportsarena/competition-core/models"
	"github.com/lib/pq"
)

var (
	ErrLeagueEntryNotFound = errors.New("league entry not found")
	ErrLeagueEntryConflict = errors.New("team is already registered in this league")
)

const leagueEntryColumns = `id, league_id, team_id, status, matches_played, matches_won,
	matches_drawn, matches_lost, goals_for, goals_against, points, current_position,
	created_at, updated_at`

type LeagueEntryRepository interface {
	Create(ctx context.Context, exec SQLExecutor, entry *models.LeagueEntry) error
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.LeagueEntry, error)
	GetByLeagueAndTeam(ctx context.Context, exec SQLExecutor, leagueID, teamID string) (*models.LeagueEntry, error)
	ListByLeague(ctx context.Context, exec SQLExecutor, leagueID string) ([]*models.LeagueEntry, error)
	ListByTeam(ctx context.Context, exec SQLExecutor, teamID string) ([]*models.LeagueEntry, error)
	ListActiveByLeagueForUpdate(ctx context.Context, exec SQLExecutor, leagueID string) ([]*models.LeagueEntry, error)
	ListLeagueIDs(ctx context.Context, exec SQLExecutor) ([]string, error)
	Update(ctx context.Context, exec SQLExecutor, id string, update models.LeagueEntryUpdate) error
	UpdatePositions(ctx context.Context, exec SQLExecutor, positions map[string]int) error
	Delete(ctx context.Context, exec SQLExecutor, id string) error
	DeleteByLeagueAndTeam(ctx context.Context, exec SQLExecutor, leagueID, teamID string) error
	CountTotals(ctx context.Context, exec SQLExecutor, leagueID string) (total, matchesPlayed, goalsFor int, err error)
	CountByStatus(ctx context.Context, exec SQLExecutor, leagueID string) (map[string]int, error)
}

type postgresLeagueEntryRepository struct {
	db *sql.DB // fallback when no explicit executor is supplied
}

func NewPostgresLeagueEntryRepository(db *sql.DB) LeagueEntryRepository {
	return &postgresLeagueEntryRepository{db: db}
}

func (r *postgresLeagueEntryRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresLeagueEntryRepository) Create(ctx context.Context, exec SQLExecutor, entry *models.LeagueEntry) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO league_entries
			(id, league_id, team_id, status, matches_played, matches_won, matches_drawn,
			 matches_lost, goals_for, goals_against, points, current_position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	err := executor.QueryRowContext(ctx, query,
		entry.ID, entry.LeagueID, entry.TeamID, entry.Status,
		entry.MatchesPlayed, entry.MatchesWon, entry.MatchesDrawn, entry.MatchesLost,
		entry.GoalsFor, entry.GoalsAgainst, entry.Points, entry.CurrentPosition,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "league_entries_league_id_team_id_key" {
				return ErrLeagueEntryConflict
			}
		}
		return fmt.Errorf("failed to create league entry: %w", err)
	}
	return nil
}

func (r *postgresLeagueEntryRepository) scanEntry(rowScanner interface{ Scan(...interface{}) error }) (*models.LeagueEntry, error) {
	var e models.LeagueEntry
	err := rowScanner.Scan(
		&e.ID, &e.LeagueID, &e.TeamID, &e.Status,
		&e.MatchesPlayed, &e.MatchesWon, &e.MatchesDrawn, &e.MatchesLost,
		&e.GoalsFor, &e.GoalsAgainst, &e.Points, &e.CurrentPosition,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *postgresLeagueEntryRepository) findOne(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (*models.LeagueEntry, error) {
	row := r.getExecutor(exec).QueryRowContext(ctx, query, args...)
	return r.scanEntry(row)
}

func (r *postgresLeagueEntryRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.LeagueEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM league_entries WHERE id = $1`, leagueEntryColumns)
	return r.findOne(ctx, exec, query, id)
}

func (r *postgresLeagueEntryRepository) GetByLeagueAndTeam(ctx context.Context, exec SQLExecutor, leagueID, teamID string) (*models.LeagueEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM league_entries WHERE league_id = $1 AND team_id = $2`, leagueEntryColumns)
	return r.findOne(ctx, exec, query, leagueID, teamID)
}

func (r *postgresLeagueEntryRepository) list(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]*models.LeagueEntry, error) {
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list league entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.LeagueEntry, 0)
	for rows.Next() {
		e, errScan := r.scanEntry(rows)
		if errScan != nil {
			return nil, errScan
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByLeague returns the league table in ranking order. The order is applied
// at read time and does not depend on current_position being fresh.
func (r *postgresLeagueEntryRepository) ListByLeague(ctx context.Context, exec SQLExecutor, leagueID string) ([]*models.LeagueEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM league_entries
		WHERE league_id = $1
		ORDER BY points DESC, (goals_for - goals_against) DESC, goals_for DESC, id ASC`,
		leagueEntryColumns)
	return r.list(ctx, exec, query, leagueID)
}

func (r *postgresLeagueEntryRepository) ListByTeam(ctx context.Context, exec SQLExecutor, teamID string) ([]*models.LeagueEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM league_entries
		WHERE team_id = $1
		ORDER BY created_at ASC, id ASC`, leagueEntryColumns)
	return r.list(ctx, exec, query, teamID)
}

// ListActiveByLeagueForUpdate locks the active entries of a league for the
// duration of the surrounding transaction, so a position recompute works on a
// consistent snapshot.
func (r *postgresLeagueEntryRepository) ListActiveByLeagueForUpdate(ctx context.Context, exec SQLExecutor, leagueID string) ([]*models.LeagueEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM league_entries
		WHERE league_id = $1 AND status = $2
		ORDER BY id ASC
		FOR UPDATE`, leagueEntryColumns)
	return r.list(ctx, exec, query, leagueID, models.LeagueEntryStatusActive)
}

func (r *postgresLeagueEntryRepository) ListLeagueIDs(ctx context.Context, exec SQLExecutor) ([]string, error) {
	rows, err := r.getExecutor(exec).QueryContext(ctx,
		`SELECT DISTINCT league_id FROM league_entries ORDER BY league_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list league ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresLeagueEntryRepository) Update(ctx context.Context, exec SQLExecutor, id string, update models.LeagueEntryUpdate) error {
	var b updateBuilder
	if update.Status != nil {
		b.set("status", *update.Status)
	}
	if update.MatchesPlayed != nil {
		b.set("matches_played", *update.MatchesPlayed)
	}
	if update.MatchesWon != nil {
		b.set("matches_won", *update.MatchesWon)
	}
	if update.MatchesDrawn != nil {
		b.set("matches_drawn", *update.MatchesDrawn)
	}
	if update.MatchesLost != nil {
		b.set("matches_lost", *update.MatchesLost)
	}
	if update.GoalsFor != nil {
		b.set("goals_for", *update.GoalsFor)
	}
	if update.GoalsAgainst != nil {
		b.set("goals_against", *update.GoalsAgainst)
	}
	if update.Points != nil {
		b.set("points", *update.Points)
	}
	if update.CurrentPosition != nil {
		b.set("current_position", *update.CurrentPosition)
	}
	if b.empty() {
		return nil
	}
	b.set("updated_at", time.Now().UTC())

	query, args := b.query("league_entries", "id", id)
	result, err := r.getExecutor(exec).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update league entry: %w", err)
	}
	return checkAffectedRows(result, ErrLeagueEntryNotFound)
}

// UpdatePositions writes the recomputed 1-based positions back in one batch.
// Callers run it inside the same transaction that read the snapshot.
func (r *postgresLeagueEntryRepository) UpdatePositions(ctx context.Context, exec SQLExecutor, positions map[string]int) error {
	if len(positions) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	stmt, err := executor.PrepareContext(ctx,
		`UPDATE league_entries SET current_position = $1, updated_at = $2 WHERE id = $3`)
	if err != nil {
		return fmt.Errorf("failed to prepare position update: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for id, position := range positions {
		if _, err := stmt.ExecContext(ctx, position, now, id); err != nil {
			return fmt.Errorf("failed to update position for entry %s: %w", id, err)
		}
	}
	return nil
}

// Delete is idempotent: removing an absent entry is not an error.
func (r *postgresLeagueEntryRepository) Delete(ctx context.Context, exec SQLExecutor, id string) error {
	_, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM league_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete league entry: %w", err)
	}
	return nil
}

func (r *postgresLeagueEntryRepository) DeleteByLeagueAndTeam(ctx context.Context, exec SQLExecutor, leagueID, teamID string) error {
	_, err := r.getExecutor(exec).ExecContext(ctx,
		`DELETE FROM league_entries WHERE league_id = $1 AND team_id = $2`, leagueID, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete league entry by pair: %w", err)
	}
	return nil
}

func (r *postgresLeagueEntryRepository) CountTotals(ctx context.Context, exec SQLExecutor, leagueID string) (int, int, int, error) {
	var total, matchesPlayed, goalsFor int
	err := r.getExecutor(exec).QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(matches_played), 0), COALESCE(SUM(goals_for), 0)
		FROM league_entries WHERE league_id = $1`, leagueID,
	).Scan(&total, &matchesPlayed, &goalsFor)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to aggregate league totals: %w", err)
	}
	return total, matchesPlayed, goalsFor, nil
}

func (r *postgresLeagueEntryRepository) CountByStatus(ctx context.Context, exec SQLExecutor, leagueID string) (map[string]int, error) {
	rows, err := r.getExecutor(exec).QueryContext(ctx, `
		SELECT status, COUNT(*) FROM league_entries
		WHERE league_id = $1 GROUP BY status`, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to count league entries by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
