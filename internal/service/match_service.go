package service

import (
	"context"
	"strings"

	"github.com/petarvukov/ttliga/internal/league"
)

// MatchService covers the result-recording flows of a single team match. It
// shares the TournamentService's store and write lock.
type MatchService struct {
	tournaments *TournamentService
}

func NewMatchService(tournaments *TournamentService) *MatchService {
	return &MatchService{tournaments: tournaments}
}

// MatchEditorData is what the result editor renders: the padded five-slot
// match plus both rosters to pick players from.
type MatchEditorData struct {
	TournamentID string           `json:"tournamentId"`
	Match        league.TeamMatch `json:"match"`
	Team1        league.Team      `json:"team1"`
	Team2        league.Team      `json:"team2"`
}

// IndividualResultInput is one editor row: the selected player names and up
// to five raw set entries in the "11:9" format.
type IndividualResultInput struct {
	Player1Name string   `json:"player1Name"`
	Player2Name string   `json:"player2Name"`
	Sets        []string `json:"sets"`
}

// Editor returns a padded copy of the match. The padding itself is only
// persisted once results are saved, matching how the original editor worked.
func (s *MatchService) Editor(ctx context.Context, tournamentID, matchID string) (*MatchEditorData, error) {
	tournament, err := s.tournaments.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	match := tournament.Match(matchID)
	if match == nil {
		return nil, ErrMatchNotFound
	}
	team1 := tournament.Team(match.Team1ID)
	team2 := tournament.Team(match.Team2ID)
	if team1 == nil || team2 == nil {
		return nil, ErrTeamNotFound
	}

	padded := *match
	padded.IndividualMatches = append([]league.IndividualMatch(nil), match.IndividualMatches...)
	padded.PadIndividualMatches()

	return &MatchEditorData{
		TournamentID: tournament.ID,
		Match:        padded,
		Team1:        *team1,
		Team2:        *team2,
	}, nil
}

// SaveResults overwrites the individual matches of a team match with the
// submitted editor rows, rescores each row from its raw set entries and then
// recomputes the team-match aggregate. Unparseable set entries count as "not
// played" for both sides.
func (s *MatchService) SaveResults(ctx context.Context, tournamentID, matchID string, rows []IndividualResultInput) (*league.TeamMatch, error) {
	var saved league.TeamMatch
	err := s.tournaments.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		tournament, err := findTournament(tournaments, tournamentID)
		if err != nil {
			return nil, err
		}
		match := tournament.Match(matchID)
		if match == nil {
			return nil, ErrMatchNotFound
		}
		team1 := tournament.Team(match.Team1ID)
		team2 := tournament.Team(match.Team2ID)
		if team1 == nil || team2 == nil {
			return nil, ErrTeamNotFound
		}

		match.PadIndividualMatches()
		for i := range match.IndividualMatches {
			if i >= len(rows) {
				break
			}
			applyResultRow(&match.IndividualMatches[i], rows[i], team1, team2)
		}

		RecalculateTeamMatch(match)
		saved = *match
		return tournaments, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// applyResultRow rewrites one individual match from an editor row. The player
// names are free text from the roster dropdowns; ids are resolved where a
// name still matches the roster and left empty otherwise.
func applyResultRow(im *league.IndividualMatch, row IndividualResultInput, team1, team2 *league.Team) {
	im.Player1Name = row.Player1Name
	im.Player2Name = row.Player2Name
	im.Player1ID = ""
	im.Player2ID = ""
	if p := team1.PlayerByName(row.Player1Name); p != nil {
		im.Player1ID = p.ID
	}
	if p := team2.PlayerByName(row.Player2Name); p != nil {
		im.Player2ID = p.ID
	}

	im.Player1Sets = make([]*int, league.MaxSets)
	im.Player2Sets = make([]*int, league.MaxSets)
	for i := 0; i < league.MaxSets && i < len(row.Sets); i++ {
		s1, s2, ok := ParseSetScore(row.Sets[i])
		if !ok {
			continue
		}
		v1, v2 := s1, s2
		im.Player1Sets[i] = &v1
		im.Player2Sets[i] = &v2
	}

	im.Winner = ScoreIndividualMatch(im.Player1Sets, im.Player2Sets)
}

// EnterSets is the quick-entry path: one individual match, all sets in a
// single "11-8, 6-11, 11-7" string. The owning tournament is found by
// scanning every tournament for the match id. An empty entry means the
// prompt was cancelled; nothing is recorded or persisted.
func (s *MatchService) EnterSets(ctx context.Context, matchID string, matchIndex int, input string) (*league.TeamMatch, error) {
	if strings.TrimSpace(input) == "" {
		tournaments, err := s.tournaments.load(ctx)
		if err != nil {
			return nil, err
		}
		for i := range tournaments {
			if m := tournaments[i].Match(matchID); m != nil {
				saved := *m
				return &saved, nil
			}
		}
		return nil, ErrMatchNotFound
	}

	var saved league.TeamMatch
	err := s.tournaments.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		var match *league.TeamMatch
		for i := range tournaments {
			if m := tournaments[i].Match(matchID); m != nil {
				match = m
				break
			}
		}
		if match == nil {
			return nil, ErrMatchNotFound
		}

		match.PadIndividualMatches()
		if matchIndex < 0 || matchIndex >= len(match.IndividualMatches) {
			return nil, ErrIndividualMatchIndex
		}

		im := &match.IndividualMatches[matchIndex]
		im.Player1Sets, im.Player2Sets = ParseQuickSets(input)
		im.Winner = ScoreIndividualMatch(im.Player1Sets, im.Player2Sets)
		RecalculateTeamMatch(match)

		saved = *match
		return tournaments, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
