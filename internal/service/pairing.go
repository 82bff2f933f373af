package service

import "github.com/petarvukov/ttliga/internal/league"

// GeneratePairings produces the round-robin schedule for the given teams:
// one match per unordered pair, nested ascending-index order. That order is
// what the standings and the match list display rely on. Each match starts
// unplayed with no individual matches recorded.
func GeneratePairings(teams []league.Team, newID func() string) ([]league.TeamMatch, error) {
	if len(teams) < 2 {
		return nil, ErrInsufficientTeams
	}

	matches := make([]league.TeamMatch, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			matches = append(matches, league.TeamMatch{
				ID:                newID(),
				Team1ID:           teams[i].ID,
				Team2ID:           teams[j].ID,
				IndividualMatches: []league.IndividualMatch{},
			})
		}
	}
	return matches, nil
}
