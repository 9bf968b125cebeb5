package repositories

import (
	"context"
	"time"

	"github.com/esportsarena/competition-core/models"
)

// Hand-written mocks in the Func-hook style: each method records its call and
// delegates to the corresponding Func field when set, returning zero values
// otherwise. Shared by the service tests.

type MockLeagueEntryRepository struct {
	CreateFunc                      func(entry *models.LeagueEntry) error
	GetByIDFunc                     func(id string) (*models.LeagueEntry, error)
	GetByLeagueAndTeamFunc          func(leagueID, teamID string) (*models.LeagueEntry, error)
	ListByLeagueFunc                func(leagueID string) ([]*models.LeagueEntry, error)
	ListByTeamFunc                  func(teamID string) ([]*models.LeagueEntry, error)
	ListActiveByLeagueForUpdateFunc func(leagueID string) ([]*models.LeagueEntry, error)
	ListLeagueIDsFunc               func() ([]string, error)
	UpdateFunc                      func(id string, update models.LeagueEntryUpdate) error
	UpdatePositionsFunc             func(positions map[string]int) error
	DeleteFunc                      func(id string) error
	DeleteByLeagueAndTeamFunc       func(leagueID, teamID string) error
	CountTotalsFunc                 func(leagueID string) (int, int, int, error)
	CountByStatusFunc               func(leagueID string) (map[string]int, error)

	CreateCalls          []*models.LeagueEntry
	UpdateCalls          []models.LeagueEntryUpdate
	UpdatePositionsCalls []map[string]int
	DeleteCalls          []string
}

func NewMockLeagueEntryRepository() *MockLeagueEntryRepository {
	return &MockLeagueEntryRepository{}
}

func (m *MockLeagueEntryRepository) Create(_ context.Context, _ SQLExecutor, entry *models.LeagueEntry) error {
	m.CreateCalls = append(m.CreateCalls, entry)
	if m.CreateFunc != nil {
		return m.CreateFunc(entry)
	}
	return nil
}

func (m *MockLeagueEntryRepository) GetByID(_ context.Context, _ SQLExecutor, id string) (*models.LeagueEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrLeagueEntryNotFound
}

func (m *MockLeagueEntryRepository) GetByLeagueAndTeam(_ context.Context, _ SQLExecutor, leagueID, teamID string) (*models.LeagueEntry, error) {
	if m.GetByLeagueAndTeamFunc != nil {
		return m.GetByLeagueAndTeamFunc(leagueID, teamID)
	}
	return nil, ErrLeagueEntryNotFound
}

func (m *MockLeagueEntryRepository) ListByLeague(_ context.Context, _ SQLExecutor, leagueID string) ([]*models.LeagueEntry, error) {
	if m.ListByLeagueFunc != nil {
		return m.ListByLeagueFunc(leagueID)
	}
	return nil, nil
}

func (m *MockLeagueEntryRepository) ListByTeam(_ context.Context, _ SQLExecutor, teamID string) ([]*models.LeagueEntry, error) {
	if m.ListByTeamFunc != nil {
		return m.ListByTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockLeagueEntryRepository) ListActiveByLeagueForUpdate(_ context.Context, _ SQLExecutor, leagueID string) ([]*models.LeagueEntry, error) {
	if m.ListActiveByLeagueForUpdateFunc != nil {
		return m.ListActiveByLeagueForUpdateFunc(leagueID)
	}
	return nil, nil
}

func (m *MockLeagueEntryRepository) ListLeagueIDs(_ context.Context, _ SQLExecutor) ([]string, error) {
	if m.ListLeagueIDsFunc != nil {
		return m.ListLeagueIDsFunc()
	}
	return nil, nil
}

func (m *MockLeagueEntryRepository) Update(_ context.Context, _ SQLExecutor, id string, update models.LeagueEntryUpdate) error {
	m.UpdateCalls = append(m.UpdateCalls, update)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, update)
	}
	return nil
}

func (m *MockLeagueEntryRepository) UpdatePositions(_ context.Context, _ SQLExecutor, positions map[string]int) error {
	m.UpdatePositionsCalls = append(m.UpdatePositionsCalls, positions)
	if m.UpdatePositionsFunc != nil {
		return m.UpdatePositionsFunc(positions)
	}
	return nil
}

func (m *MockLeagueEntryRepository) Delete(_ context.Context, _ SQLExecutor, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *MockLeagueEntryRepository) DeleteByLeagueAndTeam(_ context.Context, _ SQLExecutor, leagueID, teamID string) error {
	if m.DeleteByLeagueAndTeamFunc != nil {
		return m.DeleteByLeagueAndTeamFunc(leagueID, teamID)
	}
	return nil
}

func (m *MockLeagueEntryRepository) CountTotals(_ context.Context, _ SQLExecutor, leagueID string) (int, int, int, error) {
	if m.CountTotalsFunc != nil {
		return m.CountTotalsFunc(leagueID)
	}
	return 0, 0, 0, nil
}

func (m *MockLeagueEntryRepository) CountByStatus(_ context.Context, _ SQLExecutor, leagueID string) (map[string]int, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(leagueID)
	}
	return map[string]int{}, nil
}

type MockTournamentEntryRepository struct {
	CreateFunc                    func(entry *models.TournamentEntry) error
	GetByIDFunc                   func(id string) (*models.TournamentEntry, error)
	GetByTournamentAndTeamFunc    func(tournamentID, teamID string) (*models.TournamentEntry, error)
	ListByTournamentFunc          func(tournamentID string) ([]*models.TournamentEntry, error)
	ListByTeamFunc                func(teamID string) ([]*models.TournamentEntry, error)
	UpdateFunc                    func(id string, update models.TournamentEntryUpdate) error
	DeleteFunc                    func(id string) error
	DeleteByTournamentAndTeamFunc func(tournamentID, teamID string) error
	CountByStatusFunc             func(tournamentID string) (map[string]int, error)

	CreateCalls []*models.TournamentEntry
	UpdateCalls []models.TournamentEntryUpdate
}

func NewMockTournamentEntryRepository() *MockTournamentEntryRepository {
	return &MockTournamentEntryRepository{}
}

func (m *MockTournamentEntryRepository) Create(_ context.Context, entry *models.TournamentEntry) error {
	m.CreateCalls = append(m.CreateCalls, entry)
	if m.CreateFunc != nil {
		return m.CreateFunc(entry)
	}
	return nil
}

func (m *MockTournamentEntryRepository) GetByID(_ context.Context, id string) (*models.TournamentEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrTournamentEntryNotFound
}

func (m *MockTournamentEntryRepository) GetByTournamentAndTeam(_ context.Context, tournamentID, teamID string) (*models.TournamentEntry, error) {
	if m.GetByTournamentAndTeamFunc != nil {
		return m.GetByTournamentAndTeamFunc(tournamentID, teamID)
	}
	return nil, ErrTournamentEntryNotFound
}

func (m *MockTournamentEntryRepository) ListByTournament(_ context.Context, tournamentID string) ([]*models.TournamentEntry, error) {
	if m.ListByTournamentFunc != nil {
		return m.ListByTournamentFunc(tournamentID)
	}
	return nil, nil
}

func (m *MockTournamentEntryRepository) ListByTeam(_ context.Context, teamID string) ([]*models.TournamentEntry, error) {
	if m.ListByTeamFunc != nil {
		return m.ListByTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockTournamentEntryRepository) Update(_ context.Context, id string, update models.TournamentEntryUpdate) error {
	m.UpdateCalls = append(m.UpdateCalls, update)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, update)
	}
	return nil
}

func (m *MockTournamentEntryRepository) Delete(_ context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *MockTournamentEntryRepository) DeleteByTournamentAndTeam(_ context.Context, tournamentID, teamID string) error {
	if m.DeleteByTournamentAndTeamFunc != nil {
		return m.DeleteByTournamentAndTeamFunc(tournamentID, teamID)
	}
	return nil
}

func (m *MockTournamentEntryRepository) CountByStatus(_ context.Context, tournamentID string) (map[string]int, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(tournamentID)
	}
	return map[string]int{}, nil
}

type MockChallengeRepository struct {
	CreateFunc              func(challenge *models.Challenge) error
	GetByIDFunc             func(id string) (*models.Challenge, error)
	FindActiveByPairFunc    func(teamA, teamB string) (*models.Challenge, error)
	ListByTeamFunc          func(teamID string) ([]*models.Challenge, error)
	UpdateStatusFunc        func(id string, status models.ChallengeStatus) error
	UpdateScheduledDateFunc func(id string, scheduledDate *time.Time) error
	DeleteFunc              func(id string) error

	CreateCalls       []*models.Challenge
	UpdateStatusCalls []struct {
		ID     string
		Status models.ChallengeStatus
	}
}

func NewMockChallengeRepository() *MockChallengeRepository {
	return &MockChallengeRepository{}
}

func (m *MockChallengeRepository) Create(_ context.Context, challenge *models.Challenge) error {
	m.CreateCalls = append(m.CreateCalls, challenge)
	if m.CreateFunc != nil {
		return m.CreateFunc(challenge)
	}
	return nil
}

func (m *MockChallengeRepository) GetByID(_ context.Context, id string) (*models.Challenge, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrChallengeNotFound
}

func (m *MockChallengeRepository) FindActiveByPair(_ context.Context, teamA, teamB string) (*models.Challenge, error) {
	if m.FindActiveByPairFunc != nil {
		return m.FindActiveByPairFunc(teamA, teamB)
	}
	return nil, ErrChallengeNotFound
}

func (m *MockChallengeRepository) ListByTeam(_ context.Context, teamID string) ([]*models.Challenge, error) {
	if m.ListByTeamFunc != nil {
		return m.ListByTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockChallengeRepository) UpdateStatus(_ context.Context, id string, status models.ChallengeStatus) error {
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, struct {
		ID     string
		Status models.ChallengeStatus
	}{id, status})
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(id, status)
	}
	return nil
}

func (m *MockChallengeRepository) UpdateScheduledDate(_ context.Context, id string, scheduledDate *time.Time) error {
	if m.UpdateScheduledDateFunc != nil {
		return m.UpdateScheduledDateFunc(id, scheduledDate)
	}
	return nil
}

func (m *MockChallengeRepository) Delete(_ context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
