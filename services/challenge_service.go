package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/repositories"
	"github.com/google/uuid"
)

// ChallengeService coordinates inter-team match proposals outside any league
// or tournament.
type ChallengeService struct {
	challenges repositories.ChallengeRepository
}

func NewChallengeService(challenges repositories.ChallengeRepository) *ChallengeService {
	return &ChallengeService{challenges: challenges}
}

type CreateChallengeInput struct {
	ChallengerID  string     `json:"challenger_id"`
	ChallengedID  string     `json:"challenged_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

// Create opens a pending challenge. The pair lookup rejects a duplicate with a
// clean error; the partial unique index on the canonical pair closes the
// remaining check-then-insert window, so two racing creates cannot both land.
func (s *ChallengeService) Create(ctx context.Context, input CreateChallengeInput) (*models.Challenge, error) {
	if input.ChallengerID == "" || input.ChallengedID == "" {
		return nil, ErrChallengeTeamsRequired
	}
	if input.ChallengerID == input.ChallengedID {
		return nil, ErrSelfChallenge
	}

	existing, err := s.challenges.FindActiveByPair(ctx, input.ChallengerID, input.ChallengedID)
	if err != nil && !errors.Is(err, repositories.ErrChallengeNotFound) {
		return nil, fmt.Errorf("failed to check for active challenge: %w", err)
	}
	if existing != nil {
		return nil, ErrChallengeActiveConflict
	}

	challenge := &models.Challenge{
		ID:            uuid.NewString(),
		ChallengerID:  input.ChallengerID,
		ChallengedID:  input.ChallengedID,
		Status:        models.ChallengeStatusPending,
		ScheduledDate: input.ScheduledDate,
	}
	if err := s.challenges.Create(ctx, challenge); err != nil {
		if errors.Is(err, repositories.ErrChallengePairConflict) {
			return nil, ErrChallengeActiveConflict
		}
		return nil, err
	}
	return challenge, nil
}

func (s *ChallengeService) GetByID(ctx context.Context, id string) (*models.Challenge, error) {
	challenge, err := s.challenges.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChallengeNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return challenge, nil
}

// ListByTeam returns every challenge where the team appears on either side,
// newest first.
func (s *ChallengeService) ListByTeam(ctx context.Context, teamID string) ([]*models.Challenge, error) {
	if teamID == "" {
		return nil, ErrTeamIDRequired
	}
	return s.challenges.ListByTeam(ctx, teamID)
}

// SetStatus enforces the challenge lifecycle: pending may become accepted,
// rejected or cancelled; accepted may become completed or cancelled. Terminal
// statuses are never revived, a new challenge must be created instead.
func (s *ChallengeService) SetStatus(ctx context.Context, id string, status models.ChallengeStatus) (*models.Challenge, error) {
	if !status.Valid() {
		return nil, ErrInvalidChallengeStatus
	}

	challenge, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !challenge.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrChallengeInvalidTransition, challenge.Status, status)
	}

	if err := s.challenges.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrChallengeNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	challenge.Status = status
	challenge.UpdatedAt = time.Now().UTC()
	return challenge, nil
}

// SetScheduledDate is deliberately permissive: the date may be set or cleared
// at any status.
func (s *ChallengeService) SetScheduledDate(ctx context.Context, id string, scheduledDate *time.Time) (*models.Challenge, error) {
	challenge, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.challenges.UpdateScheduledDate(ctx, id, scheduledDate); err != nil {
		if errors.Is(err, repositories.ErrChallengeNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	challenge.ScheduledDate = scheduledDate
	challenge.UpdatedAt = time.Now().UTC()
	return challenge, nil
}

// Delete removes a challenge regardless of status.
func (s *ChallengeService) Delete(ctx context.Context, id string) error {
	if err := s.challenges.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrChallengeNotFound) {
			return ErrChallengeNotFound
		}
		return err
	}
	return nil
}
