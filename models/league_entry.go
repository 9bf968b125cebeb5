package models

import "time"

type LeagueEntryStatus string

const (
	LeagueEntryStatusActive    LeagueEntryStatus = "active"
	LeagueEntryStatusInactive  LeagueEntryStatus = "inactive"
	LeagueEntryStatusSuspended LeagueEntryStatus = "suspended"
)

func (s LeagueEntryStatus) Valid() bool {
	switch s {
	case LeagueEntryStatusActive, LeagueEntryStatusInactive, LeagueEntryStatusSuspended:
		return true
	}
	return false
}

// LeagueEntry is a team's participation record in one league.
// At most one entry exists per (league, team) pair.
type LeagueEntry struct {
	ID              string            `json:"id" db:"id"`
	LeagueID        string            `json:"league_id" db:"league_id"`
	TeamID          string            `json:"team_id" db:"team_id"`
	Status          LeagueEntryStatus `json:"status" db:"status"`
	MatchesPlayed   int               `json:"matches_played" db:"matches_played"`
	MatchesWon      int               `json:"matches_won" db:"matches_won"`
	MatchesDrawn    int               `json:"matches_drawn" db:"matches_drawn"`
	MatchesLost     int               `json:"matches_lost" db:"matches_lost"`
	GoalsFor        int               `json:"goals_for" db:"goals_for"`
	GoalsAgainst    int               `json:"goals_against" db:"goals_against"`
	Points          int               `json:"points" db:"points"`
	CurrentPosition *int              `json:"current_position,omitempty" db:"current_position"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}

// GoalDifference is the second ranking key after points.
func (e *LeagueEntry) GoalDifference() int {
	return e.GoalsFor - e.GoalsAgainst
}

// LeagueEntryUpdate carries a partial update. Nil fields are left untouched.
// matches_played is NOT validated against won+drawn+lost; keeping the four
// counters consistent is a caller contract.
type LeagueEntryUpdate struct {
	Status          *LeagueEntryStatus `json:"status"`
	MatchesPlayed   *int               `json:"matches_played"`
	MatchesWon      *int               `json:"matches_won"`
	MatchesDrawn    *int               `json:"matches_drawn"`
	MatchesLost     *int               `json:"matches_lost"`
	GoalsFor        *int               `json:"goals_for"`
	GoalsAgainst    *int               `json:"goals_against"`
	Points          *int               `json:"points"`
	CurrentPosition *int               `json:"current_position"`
}

// Empty reports whether the update would touch no columns.
func (u LeagueEntryUpdate) Empty() bool {
	return u.Status == nil && u.MatchesPlayed == nil && u.MatchesWon == nil &&
		u.MatchesDrawn == nil && u.MatchesLost == nil && u.GoalsFor == nil &&
		u.GoalsAgainst == nil && u.Points == nil && u.CurrentPosition == nil
}

// LeagueStats aggregates a league's entries for the stats endpoint.
type LeagueStats struct {
	LeagueID      string         `json:"league_id"`
	TotalEntries  int            `json:"total_entries"`
	ByStatus      map[string]int `json:"by_status"`
	MatchesPlayed int            `json:"matches_played"`
	GoalsFor      int            `json:"goals_for"`
}
