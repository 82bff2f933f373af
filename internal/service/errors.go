package service

import "errors"

// Sentinel errors shared by the services and the HTTP mapping.
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrMatchNotFound      = errors.New("match not found")

	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrPlayerNameRequired     = errors.New("player name is required")
	ErrInvalidFormat          = errors.New("unknown tournament format")

	// Pairing generation
	ErrInsufficientTeams = errors.New("at least 2 teams are required to generate matches")

	// Regeneration is destructive, so the caller has to confirm it explicitly.
	ErrMatchesAlreadyGenerated = errors.New("matches already generated")

	ErrIndividualMatchIndex = errors.New("individual match index out of range")
)
