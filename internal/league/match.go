package league

// A team match is decided by best-of-5 individual matches, each of which is
// decided by best-of-5 sets.
const (
	IndividualMatchSlots = 5
	MaxSets              = 5
)

type Winner int

const (
	WinnerUndecided Winner = 0
	WinnerPlayer1   Winner = 1
	WinnerPlayer2   Winner = 2
)

// TeamMatch references the two teams by id within the owning tournament.
// Played, Team1Sets and Team2Sets are derived from the individual matches and
// are only ever written by the aggregation entry point; they are persisted so
// the stored blob stays self-describing.
type TeamMatch struct {
	ID                string            `json:"id"`
	Team1ID           string            `json:"team1Id"`
	Team2ID           string            `json:"team2Id"`
	Played            bool              `json:"played"`
	Team1Sets         int               `json:"team1Sets"`
	Team2Sets         int               `json:"team2Sets"`
	IndividualMatches []IndividualMatch `json:"individualMatches"`
}

// IndividualMatch historically referenced players by display name only.
// Player1ID/Player2ID are the stable references; the names are kept as the
// display and legacy wire fields. Set slots are index-aligned pairs, nil
// meaning "slot not played".
type IndividualMatch struct {
	Player1ID   string `json:"player1Id,omitempty"`
	Player2ID   string `json:"player2Id,omitempty"`
	Player1Name string `json:"player1Name"`
	Player2Name string `json:"player2Name"`
	Player1Sets []*int `json:"player1Sets"`
	Player2Sets []*int `json:"player2Sets"`
	Winner      Winner `json:"winner"`
}

// PadIndividualMatches tops the list up to the five slots the match editor
// shows. Existing entries keep their position, nothing is ever truncated.
func (m *TeamMatch) PadIndividualMatches() {
	for len(m.IndividualMatches) < IndividualMatchSlots {
		m.IndividualMatches = append(m.IndividualMatches, IndividualMatch{
			Player1Sets: make([]*int, MaxSets),
			Player2Sets: make([]*int, MaxSets),
		})
	}
}

func (m *TeamMatch) Participates(teamID string) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// WonBy reports whether the given side took the match. Only meaningful once
// the match is played.
func (m *TeamMatch) WonBy(teamID string) bool {
	if m.Team1ID == teamID {
		return m.Team1Sets > m.Team2Sets
	}
	if m.Team2ID == teamID {
		return m.Team2Sets > m.Team1Sets
	}
	return false
}

// ResolvePlayerIDs back-fills stable player references on records that only
// carry names, matching each name against the current roster of the side's
// team. Records whose name no longer resolves are left untouched.
func (t *Tournament) ResolvePlayerIDs() {
	for i := range t.Matches {
		m := &t.Matches[i]
		team1 := t.Team(m.Team1ID)
		team2 := t.Team(m.Team2ID)
		for j := range m.IndividualMatches {
			im := &m.IndividualMatches[j]
			if im.Player1ID == "" && team1 != nil {
				if p := team1.PlayerByName(im.Player1Name); p != nil {
					im.Player1ID = p.ID
				}
			}
			if im.Player2ID == "" && team2 != nil {
				if p := team2.PlayerByName(im.Player2Name); p != nil {
					im.Player2ID = p.ID
				}
			}
		}
	}
}
