package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/petarvukov/ttliga/internal/league"
	"github.com/petarvukov/ttliga/internal/store"
)

// TournamentService orchestrates every user action as one full
// load-mutate-save cycle against the blob store. The mutex serializes those
// cycles; the store itself has no read-modify-write protection.
type TournamentService struct {
	mu    sync.Mutex
	store store.Store
	newID func() string
}

func NewTournamentService(st store.Store) *TournamentService {
	return &TournamentService{
		store: st,
		newID: uuid.NewString,
	}
}

// load reads the full state and back-fills stable player references on legacy
// name-keyed records.
func (s *TournamentService) load(ctx context.Context) ([]league.Tournament, error) {
	tournaments, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		tournaments[i].ResolvePlayerIDs()
	}
	return tournaments, nil
}

// update runs fn against a fresh copy of the state and persists the result.
// When fn or the save fails the mutated copy is discarded, so the persisted
// state is never left half-applied.
func (s *TournamentService) update(ctx context.Context, fn func(tournaments []league.Tournament) ([]league.Tournament, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tournaments, err := s.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(tournaments)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, updated)
}

func findTournament(tournaments []league.Tournament, id string) (*league.Tournament, error) {
	for i := range tournaments {
		if tournaments[i].ID == id {
			return &tournaments[i], nil
		}
	}
	return nil, ErrTournamentNotFound
}

func (s *TournamentService) List(ctx context.Context) ([]league.Tournament, error) {
	return s.load(ctx)
}

func (s *TournamentService) Get(ctx context.Context, id string) (*league.Tournament, error) {
	tournaments, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return findTournament(tournaments, id)
}

// GetBySlug resolves the name-based address used by detail URLs. With
// duplicate names the first match wins, same as the original lookup.
func (s *TournamentService) GetBySlug(ctx context.Context, slug string) (*league.Tournament, error) {
	tournaments, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		if tournaments[i].Slug() == slug {
			return &tournaments[i], nil
		}
	}
	return nil, ErrTournamentNotFound
}

func (s *TournamentService) Create(ctx context.Context, name string, format league.Format) (*league.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if format == "" {
		format = league.RoundRobin
	}
	if format != league.RoundRobin && format != league.Groups {
		return nil, ErrInvalidFormat
	}

	tournament := league.Tournament{
		ID:      s.newID(),
		Name:    name,
		Format:  format,
		Teams:   []league.Team{},
		Matches: []league.TeamMatch{},
	}

	err := s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		return append(tournaments, tournament), nil
	})
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentService) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		for i := range tournaments {
			if tournaments[i].ID == id {
				return append(tournaments[:i], tournaments[i+1:]...), nil
			}
		}
		return nil, ErrTournamentNotFound
	})
}

func (s *TournamentService) AddTeam(ctx context.Context, tournamentID, name string) (*league.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := league.Team{
		ID:      s.newID(),
		Name:    name,
		Players: []league.Player{},
	}

	err := s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		tournament, err := findTournament(tournaments, tournamentID)
		if err != nil {
			return nil, err
		}
		tournament.Teams = append(tournament.Teams, team)
		return tournaments, nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteTeam removes the team and every team match it takes part in, so the
// schedule never references a missing side.
func (s *TournamentService) DeleteTeam(ctx context.Context, tournamentID, teamID string) error {
	return s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		tournament, err := findTournament(tournaments, tournamentID)
		if err != nil {
			return nil, err
		}
		if tournament.Team(teamID) == nil {
			return nil, ErrTeamNotFound
		}

		teams := tournament.Teams[:0]
		for _, t := range tournament.Teams {
			if t.ID != teamID {
				teams = append(teams, t)
			}
		}
		tournament.Teams = teams

		matches := tournament.Matches[:0]
		for _, m := range tournament.Matches {
			if !m.Participates(teamID) {
				matches = append(matches, m)
			}
		}
		tournament.Matches = matches
		return tournaments, nil
	})
}

func (s *TournamentService) AddPlayer(ctx context.Context, tournamentID, teamID, name string) (*league.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := league.Player{ID: s.newID(), Name: name}

	err := s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		tournament, err := findTournament(tournaments, tournamentID)
		if err != nil {
			return nil, err
		}
		team := tournament.Team(teamID)
		if team == nil {
			return nil, ErrTeamNotFound
		}
		team.Players = append(team.Players, player)
		return tournaments, nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *TournamentService) DeletePlayer(ctx context.Context, tournamentID, teamID, playerID string) error {
	return s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		tournament, err := findTournament(tournaments, tournamentID)
		if err != nil {
			return nil, err
		}
		team := tournament.Team(teamID)
		if team == nil {
			return nil, ErrTeamNotFound
		}
		if team.Player(playerID) == nil {
			return nil, ErrPlayerNotFound
		}

		players := team.Players[:0]
		for _, p := range team.Players {
			if p.ID != playerID {
				players = append(players, p)
			}
		}
		team.Players = players
		return tournaments, nil
	})
}

// GenerateMatches builds the round-robin schedule. When matches already exist
// it refuses unless regenerate is set; regeneration replaces the whole
// schedule and discards all recorded results.
func (s *TournamentService) GenerateMatches(ctx context.Context, tournamentID string, regenerate bool) ([]league.TeamMatch, error) {
	var generated []league.TeamMatch
	err := s.update(ctx, func(tournaments []league.Tournament) ([]league.Tournament, error) {
		tournament, err := findTournament(tournaments, tournamentID)
		if err != nil {
			return nil, err
		}
		if len(tournament.Matches) > 0 && !regenerate {
			return nil, ErrMatchesAlreadyGenerated
		}

		matches, err := GeneratePairings(tournament.Teams, s.newID)
		if err != nil {
			return nil, err
		}
		tournament.Matches = matches
		generated = matches
		return tournaments, nil
	})
	if err != nil {
		return nil, err
	}
	return generated, nil
}

func (s *TournamentService) Standings(ctx context.Context, tournamentID string) ([]league.Standing, error) {
	tournament, err := s.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return ComputeStandings(tournament.Teams, tournament.Matches), nil
}
