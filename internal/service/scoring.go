package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/petarvukov/ttliga/internal/league"
)

// ParseSetScore parses one set entered as "<points>:<points>", e.g. "11:9".
// An empty string or "na" (any case) means the set was not played. Anything
// malformed is treated the same way rather than surfaced as an error.
func ParseSetScore(raw string) (s1, s2 int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "na") {
		return 0, 0, false
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	s1, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	s2, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || s1 < 0 || s2 < 0 {
		return 0, 0, false
	}
	return s1, s2, true
}

// ParseQuickSets parses the quick-entry format "11-8, 6-11, 11-7". Malformed
// pairs are dropped, not padded, and at most five sets are kept. The returned
// slices are index-aligned and equally long.
func ParseQuickSets(input string) (p1Sets, p2Sets []*int) {
	for _, part := range strings.Split(input, ",") {
		halves := strings.Split(strings.TrimSpace(part), "-")
		if len(halves) != 2 {
			continue
		}
		s1, err1 := strconv.Atoi(strings.TrimSpace(halves[0]))
		s2, err2 := strconv.Atoi(strings.TrimSpace(halves[1]))
		if err1 != nil || err2 != nil || s1 < 0 || s2 < 0 {
			continue
		}
		p1Sets = append(p1Sets, &s1)
		p2Sets = append(p2Sets, &s2)
		if len(p1Sets) == league.MaxSets {
			break
		}
	}
	return p1Sets, p2Sets
}

// ScoreIndividualMatch derives the winner of an individual match from its set
// scores. A slot counts only when both sides are present; equal scores count
// for neither. Every slot is tallied, there is no early exit once a player
// reaches three set wins, so trailing sets still contribute to the counts.
func ScoreIndividualMatch(p1Sets, p2Sets []*int) league.Winner {
	p1Wins, p2Wins := 0, 0

	n := len(p1Sets)
	if len(p2Sets) < n {
		n = len(p2Sets)
	}
	for i := 0; i < n; i++ {
		if p1Sets[i] == nil || p2Sets[i] == nil {
			continue
		}
		switch {
		case *p1Sets[i] > *p2Sets[i]:
			p1Wins++
		case *p2Sets[i] > *p1Sets[i]:
			p2Wins++
		}
	}

	if p1Wins >= 3 {
		return league.WinnerPlayer1
	}
	if p2Wins >= 3 {
		return league.WinnerPlayer2
	}
	return league.WinnerUndecided
}

// AggregateTeamMatch counts decided individual matches per side. The team
// match is played once either side reaches three individual wins.
func AggregateTeamMatch(individualMatches []league.IndividualMatch) (team1Sets, team2Sets int, played bool) {
	for _, im := range individualMatches {
		switch im.Winner {
		case league.WinnerPlayer1:
			team1Sets++
		case league.WinnerPlayer2:
			team2Sets++
		}
	}
	return team1Sets, team2Sets, team1Sets >= 3 || team2Sets >= 3
}

// RecalculateTeamMatch is the only place the derived team-match fields are
// written. It recomputes them in full from the individual matches; nothing is
// ever patched incrementally.
func RecalculateTeamMatch(m *league.TeamMatch) {
	m.Team1Sets, m.Team2Sets, m.Played = AggregateTeamMatch(m.IndividualMatches)
}

// ComputeStandings builds the table over played matches only. Teams are
// ordered by wins descending; equal-win teams keep their tournament order.
// Losses are deliberately not a tiebreaker.
func ComputeStandings(teams []league.Team, matches []league.TeamMatch) []league.Standing {
	standings := make([]league.Standing, 0, len(teams))
	for _, team := range teams {
		row := league.Standing{TeamID: team.ID, Name: team.Name}
		for _, m := range matches {
			if !m.Played || !m.Participates(team.ID) {
				continue
			}
			if m.WonBy(team.ID) {
				row.Wins++
			} else {
				row.Losses++
			}
		}
		row.Played = row.Wins + row.Losses
		standings = append(standings, row)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})
	return standings
}
