package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/repositories"
	"github.com/google/uuid"
)

// TournamentEntryService keeps per-tournament registration bookkeeping.
// Structurally a sibling of StandingsService, but final positions come from
// bracket progression elsewhere, so there is no ranking recompute here.
type TournamentEntryService struct {
	entries repositories.TournamentEntryRepository
}

func NewTournamentEntryService(entries repositories.TournamentEntryRepository) *TournamentEntryService {
	return &TournamentEntryService{entries: entries}
}

// Register creates an entry with status "registered" and zeroed counters.
func (s *TournamentEntryService) Register(ctx context.Context, tournamentID, teamID string) (*models.TournamentEntry, error) {
	if tournamentID == "" {
		return nil, ErrTournamentIDRequired
	}
	if teamID == "" {
		return nil, ErrTeamIDRequired
	}

	existing, err := s.entries.GetByTournamentAndTeam(ctx, tournamentID, teamID)
	if err != nil && !errors.Is(err, repositories.ErrTournamentEntryNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return nil, ErrTournamentRegistrationConflict
	}

	entry := &models.TournamentEntry{
		ID:           uuid.NewString(),
		TournamentID: tournamentID,
		TeamID:       teamID,
		Status:       models.TournamentEntryStatusRegistered,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrTournamentEntryConflict) {
			return nil, ErrTournamentRegistrationConflict
		}
		return nil, err
	}
	return entry, nil
}

func (s *TournamentEntryService) Get(ctx context.Context, entryID string) (*models.TournamentEntry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentEntryNotFound) {
			return nil, ErrTournamentEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *TournamentEntryService) GetByTournamentAndTeam(ctx context.Context, tournamentID, teamID string) (*models.TournamentEntry, error) {
	entry, err := s.entries.GetByTournamentAndTeam(ctx, tournamentID, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentEntryNotFound) {
			return nil, ErrTournamentEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *TournamentEntryService) ListByTournament(ctx context.Context, tournamentID string) ([]*models.TournamentEntry, error) {
	return s.entries.ListByTournament(ctx, tournamentID)
}

func (s *TournamentEntryService) ListByTeam(ctx context.Context, teamID string) ([]*models.TournamentEntry, error) {
	return s.entries.ListByTeam(ctx, teamID)
}

// Update applies a partial update over the ledger field set.
func (s *TournamentEntryService) Update(ctx context.Context, entryID string, update models.TournamentEntryUpdate) (*models.TournamentEntry, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, ErrInvalidEntryStatus
	}
	for _, v := range []*int{
		update.MatchesPlayed, update.MatchesWon, update.MatchesLost, update.MatchesDrawn,
		update.PointsEarned,
	} {
		if v != nil && *v < 0 {
			return nil, ErrNegativeStatValue
		}
	}
	for _, v := range []*int{update.SeedPosition, update.FinalPosition} {
		if v != nil && *v < 1 {
			return nil, ErrInvalidPositionValue
		}
	}

	if !update.Empty() {
		if err := s.entries.Update(ctx, entryID, update); err != nil {
			if errors.Is(err, repositories.ErrTournamentEntryNotFound) {
				return nil, ErrTournamentEntryNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, entryID)
}

// Delete removes an entry. Absence is not an error, so retries are safe.
func (s *TournamentEntryService) Delete(ctx context.Context, entryID string) error {
	return s.entries.Delete(ctx, entryID)
}

func (s *TournamentEntryService) DeleteByTournamentAndTeam(ctx context.Context, tournamentID, teamID string) error {
	if tournamentID == "" {
		return ErrTournamentIDRequired
	}
	if teamID == "" {
		return ErrTeamIDRequired
	}
	return s.entries.DeleteByTournamentAndTeam(ctx, tournamentID, teamID)
}

func (s *TournamentEntryService) Stats(ctx context.Context, tournamentID string) (*models.TournamentStats, error) {
	if tournamentID == "" {
		return nil, ErrTournamentIDRequired
	}
	byStatus, err := s.entries.CountByStatus(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, count := range byStatus {
		total += count
	}
	return &models.TournamentStats{
		TournamentID: tournamentID,
		TotalEntries: total,
		ByStatus:     byStatus,
	}, nil
}
