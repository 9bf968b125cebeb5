package services

import "errors"

// Sentinel errors shared across services and the HTTP error mapping.
var (
	// Not found
	ErrNotFound                = errors.New("requested resource not found")
	ErrLeagueEntryNotFound     = errors.New("league entry not found")
	ErrTournamentEntryNotFound = errors.New("tournament entry not found")
	ErrChallengeNotFound       = errors.New("challenge not found")

	// Validation
	ErrLeagueIDRequired       = errors.New("league id is required")
	ErrTournamentIDRequired   = errors.New("tournament id is required")
	ErrTeamIDRequired         = errors.New("team id is required")
	ErrChallengeTeamsRequired = errors.New("challenger and challenged team ids are required")
	ErrSelfChallenge          = errors.New("a team cannot challenge itself")
	ErrInvalidEntryStatus     = errors.New("invalid entry status provided")
	ErrInvalidChallengeStatus = errors.New("invalid challenge status provided")
	ErrNegativeStatValue      = errors.New("stat counters must not be negative")
	ErrInvalidPositionValue   = errors.New("positions must be positive")

	// Conflicts
	ErrLeagueRegistrationConflict     = errors.New("team is already registered in this league")
	ErrTournamentRegistrationConflict = errors.New("team is already registered for this tournament")
	ErrChallengeActiveConflict        = errors.New("a challenge is already active between these teams")

	// Illegal state transitions
	ErrChallengeInvalidTransition = errors.New("invalid challenge status transition")
)
