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
	ErrTournamentEntryNotFound = errors.New("tournament entry not found")
	ErrTournamentEntryConflict = errors.New("team is already registered for this tournament")
)

const tournamentEntryColumns = `id, tournament_id, team_id, status, seed_position,
	final_position, matches_played, matches_won, matches_lost, matches_drawn,
	points_earned, created_at, updated_at`

type TournamentEntryRepository interface {
	Create(ctx context.Context, entry *models.TournamentEntry) error
	GetByID(ctx context.Context, id string) (*models.TournamentEntry, error)
	GetByTournamentAndTeam(ctx context.Context, tournamentID, teamID string) (*models.TournamentEntry, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.TournamentEntry, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.TournamentEntry, error)
	Update(ctx context.Context, id string, update models.TournamentEntryUpdate) error
	Delete(ctx context.Context, id string) error
	DeleteByTournamentAndTeam(ctx context.Context, tournamentID, teamID string) error
	CountByStatus(ctx context.Context, tournamentID string) (map[string]int, error)
}

type postgresTournamentEntryRepository struct {
	db *sql.DB
}

func NewPostgresTournamentEntryRepository(db *sql.DB) TournamentEntryRepository {
	return &postgresTournamentEntryRepository{db: db}
}

func (r *postgresTournamentEntryRepository) Create(ctx context.Context, entry *models.TournamentEntry) error {
	query := `
		INSERT INTO tournament_entries
			(id, tournament_id, team_id, status, seed_position, final_position,
			 matches_played, matches_won, matches_lost, matches_drawn, points_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.TournamentID, entry.TeamID, entry.Status,
		entry.SeedPosition, entry.FinalPosition,
		entry.MatchesPlayed, entry.MatchesWon, entry.MatchesLost, entry.MatchesDrawn,
		entry.PointsEarned,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "tournament_entries_tournament_id_team_id_key" {
				return ErrTournamentEntryConflict
			}
		}
		return fmt.Errorf("failed to create tournament entry: %w", err)
	}
	return nil
}

func (r *postgresTournamentEntryRepository) scanEntry(rowScanner interface{ Scan(...interface{}) error }) (*models.TournamentEntry, error) {
	var e models.TournamentEntry
	err := rowScanner.Scan(
		&e.ID, &e.TournamentID, &e.TeamID, &e.Status, &e.SeedPosition, &e.FinalPosition,
		&e.MatchesPlayed, &e.MatchesWon, &e.MatchesLost, &e.MatchesDrawn,
		&e.PointsEarned, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *postgresTournamentEntryRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.TournamentEntry, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	return r.scanEntry(row)
}

func (r *postgresTournamentEntryRepository) GetByID(ctx context.Context, id string) (*models.TournamentEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournament_entries WHERE id = $1`, tournamentEntryColumns)
	return r.findOne(ctx, query, id)
}

func (r *postgresTournamentEntryRepository) GetByTournamentAndTeam(ctx context.Context, tournamentID, teamID string) (*models.TournamentEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournament_entries WHERE tournament_id = $1 AND team_id = $2`, tournamentEntryColumns)
	return r.findOne(ctx, query, tournamentID, teamID)
}

func (r *postgresTournamentEntryRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.TournamentEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.TournamentEntry, 0)
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

// ListByTournament orders by seed for display, unseeded entries last in
// registration order. This is not a computed ranking.
func (r *postgresTournamentEntryRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.TournamentEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tournament_entries
		WHERE tournament_id = $1
		ORDER BY seed_position ASC NULLS LAST, created_at ASC, id ASC`, tournamentEntryColumns)
	return r.list(ctx, query, tournamentID)
}

func (r *postgresTournamentEntryRepository) ListByTeam(ctx context.Context, teamID string) ([]*models.TournamentEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tournament_entries
		WHERE team_id = $1
		ORDER BY created_at ASC, id ASC`, tournamentEntryColumns)
	return r.list(ctx, query, teamID)
}

func (r *postgresTournamentEntryRepository) Update(ctx context.Context, id string, update models.TournamentEntryUpdate) error {
	var b updateBuilder
	if update.Status != nil {
		b.set("status", *update.Status)
	}
	if update.SeedPosition != nil {
		b.set("seed_position", *update.SeedPosition)
	}
	if update.FinalPosition != nil {
		b.set("final_position", *update.FinalPosition)
	}
	if update.MatchesPlayed != nil {
		b.set("matches_played", *update.MatchesPlayed)
	}
	if update.MatchesWon != nil {
		b.set("matches_won", *update.MatchesWon)
	}
	if update.MatchesLost != nil {
		b.set("matches_lost", *update.MatchesLost)
	}
	if update.MatchesDrawn != nil {
		b.set("matches_drawn", *update.MatchesDrawn)
	}
	if update.PointsEarned != nil {
		b.set("points_earned", *update.PointsEarned)
	}
	if b.empty() {
		return nil
	}
	b.set("updated_at", time.Now().UTC())

	query, args := b.query("tournament_entries", "id", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update tournament entry: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentEntryNotFound)
}

// Delete is idempotent: removing an absent entry is not an error.
func (r *postgresTournamentEntryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tournament_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament entry: %w", err)
	}
	return nil
}

func (r *postgresTournamentEntryRepository) DeleteByTournamentAndTeam(ctx context.Context, tournamentID, teamID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM tournament_entries WHERE tournament_id = $1 AND team_id = $2`, tournamentID, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete tournament entry by pair: %w", err)
	}
	return nil
}

func (r *postgresTournamentEntryRepository) CountByStatus(ctx context.Context, tournamentID string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM tournament_entries
		WHERE tournament_id = $1 GROUP BY status`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tournament entries by status: %w", err)
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
