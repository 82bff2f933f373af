package league

import "strings"

type Format string

const (
	RoundRobin Format = "roundRobin"
	// Groups is accepted and stored, but no pairing generator exists for it yet.
	Groups Format = "groups"
)

// Tournament is the root of the persisted object graph. It owns its teams and
// team matches outright: deleting a tournament deletes all of them.
type Tournament struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Format  Format      `json:"format"`
	Teams   []Team      `json:"teams"`
	Matches []TeamMatch `json:"matches"`
}

func (t *Tournament) Team(id string) *Team {
	for i := range t.Teams {
		if t.Teams[i].ID == id {
			return &t.Teams[i]
		}
	}
	return nil
}

func (t *Tournament) Match(id string) *TeamMatch {
	for i := range t.Matches {
		if t.Matches[i].ID == id {
			return &t.Matches[i]
		}
	}
	return nil
}

// Slug is the name-based address used by tournament detail URLs,
// lowercased with spaces turned into underscores. Renames change it.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func (t *Tournament) Slug() string {
	return Slug(t.Name)
}
