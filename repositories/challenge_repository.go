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
	ErrChallengeNotFound     = errors.New("challenge not found")
	ErrChallengePairConflict = errors.New("a challenge is already active between these teams")
)

const challengeColumns = `id, challenger_id, challenged_id, status, scheduled_date, created_at, updated_at`

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	GetByID(ctx context.Context, id string) (*models.Challenge, error)
	FindActiveByPair(ctx context.Context, teamA, teamB string) (*models.Challenge, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.Challenge, error)
	UpdateStatus(ctx context.Context, id string, status models.ChallengeStatus) error
	UpdateScheduledDate(ctx context.Context, id string, scheduledDate *time.Time) error
	Delete(ctx context.Context, id string) error
}

type postgresChallengeRepository struct {
	db *sql.DB
}

func NewPostgresChallengeRepository(db *sql.DB) ChallengeRepository {
	return &postgresChallengeRepository{db: db}
}

// Create inserts a pending challenge. The partial unique index on the
// canonical (least, greatest) team pair is the authoritative guard against two
// simultaneously active challenges between the same teams; a violation of it
// surfaces as ErrChallengePairConflict even when two creates race.
func (r *postgresChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	query := `
		INSERT INTO challenges (id, challenger_id, challenged_id, status, scheduled_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		challenge.ID, challenge.ChallengerID, challenge.ChallengedID,
		challenge.Status, challenge.ScheduledDate,
	).Scan(&challenge.CreatedAt, &challenge.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "challenges_active_pair_key" {
				return ErrChallengePairConflict
			}
		}
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

func (r *postgresChallengeRepository) scanChallenge(rowScanner interface{ Scan(...interface{}) error }) (*models.Challenge, error) {
	var c models.Challenge
	err := rowScanner.Scan(
		&c.ID, &c.ChallengerID, &c.ChallengedID, &c.Status,
		&c.ScheduledDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresChallengeRepository) GetByID(ctx context.Context, id string) (*models.Challenge, error) {
	query := fmt.Sprintf(`SELECT %s FROM challenges WHERE id = $1`, challengeColumns)
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanChallenge(row)
}

// FindActiveByPair matches the unordered pair: an A->B challenge blocks B->A too.
func (r *postgresChallengeRepository) FindActiveByPair(ctx context.Context, teamA, teamB string) (*models.Challenge, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM challenges
		WHERE ((challenger_id = $1 AND challenged_id = $2)
		    OR (challenger_id = $2 AND challenged_id = $1))
		  AND status IN ($3, $4)
		LIMIT 1`, challengeColumns)
	row := r.db.QueryRowContext(ctx, query, teamA, teamB,
		models.ChallengeStatusPending, models.ChallengeStatusAccepted)
	return r.scanChallenge(row)
}

func (r *postgresChallengeRepository) ListByTeam(ctx context.Context, teamID string) ([]*models.Challenge, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM challenges
		WHERE challenger_id = $1 OR challenged_id = $1
		ORDER BY created_at DESC, id DESC`, challengeColumns)

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges by team: %w", err)
	}
	defer rows.Close()

	challenges := make([]*models.Challenge, 0)
	for rows.Next() {
		c, errScan := r.scanChallenge(rows)
		if errScan != nil {
			return nil, errScan
		}
		challenges = append(challenges, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *postgresChallengeRepository) UpdateStatus(ctx context.Context, id string, status models.ChallengeStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE challenges SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update challenge status: %w", err)
	}
	return checkAffectedRows(result, ErrChallengeNotFound)
}

func (r *postgresChallengeRepository) UpdateScheduledDate(ctx context.Context, id string, scheduledDate *time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE challenges SET scheduled_date = $1, updated_at = $2 WHERE id = $3`,
		scheduledDate, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update challenge scheduled date: %w", err)
	}
	return checkAffectedRows(result, ErrChallengeNotFound)
}

func (r *postgresChallengeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM challenges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return checkAffectedRows(result, ErrChallengeNotFound)
}
