package models

import "time"

type TournamentEntryStatus string

const (
	TournamentEntryStatusRegistered   TournamentEntryStatus = "registered"
	TournamentEntryStatusConfirmed    TournamentEntryStatus = "confirmed"
	TournamentEntryStatusDisqualified TournamentEntryStatus = "disqualified"
	TournamentEntryStatusWithdrawn    TournamentEntryStatus = "withdrawn"
)

func (s TournamentEntryStatus) Valid() bool {
	switch s {
	case TournamentEntryStatusRegistered, TournamentEntryStatusConfirmed,
		TournamentEntryStatusDisqualified, TournamentEntryStatusWithdrawn:
		return true
	}
	return false
}

// TournamentEntry is a team's participation record in one tournament.
// Unlike LeagueEntry there is no derived ranking: final_position comes from
// bracket progression, which is owned elsewhere, and is written explicitly.
type TournamentEntry struct {
	ID            string                `json:"id" db:"id"`
	TournamentID  string                `json:"tournament_id" db:"tournament_id"`
	TeamID        string                `json:"team_id" db:"team_id"`
	Status        TournamentEntryStatus `json:"status" db:"status"`
	SeedPosition  *int                  `json:"seed_position,omitempty" db:"seed_position"`
	FinalPosition *int                  `json:"final_position,omitempty" db:"final_position"`
	MatchesPlayed int                   `json:"matches_played" db:"matches_played"`
	MatchesWon    int                   `json:"matches_won" db:"matches_won"`
	MatchesLost   int                   `json:"matches_lost" db:"matches_lost"`
	MatchesDrawn  int                   `json:"matches_drawn" db:"matches_drawn"`
	PointsEarned  int                   `json:"points_earned" db:"points_earned"`
	CreatedAt     time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at" db:"updated_at"`
}

// TournamentEntryUpdate carries a partial update. Nil fields are left untouched.
type TournamentEntryUpdate struct {
	Status        *TournamentEntryStatus `json:"status"`
	SeedPosition  *int                   `json:"seed_position"`
	FinalPosition *int                   `json:"final_position"`
	MatchesPlayed *int                   `json:"matches_played"`
	MatchesWon    *int                   `json:"matches_won"`
	MatchesLost   *int                   `json:"matches_lost"`
	MatchesDrawn  *int                   `json:"matches_drawn"`
	PointsEarned  *int                   `json:"points_earned"`
}

func (u TournamentEntryUpdate) Empty() bool {
	return u.Status == nil && u.SeedPosition == nil && u.FinalPosition == nil &&
		u.MatchesPlayed == nil && u.MatchesWon == nil && u.MatchesLost == nil &&
		u.MatchesDrawn == nil && u.PointsEarned == nil
}

// TournamentStats counts a tournament's entries by registration status.
type TournamentStats struct {
	TournamentID string         `json:"tournament_id"`
	TotalEntries int            `json:"total_entries"`
	ByStatus     map[string]int `json:"by_status"`
}
