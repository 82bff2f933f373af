package league

// Team ids are unique within their tournament only.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t *Team) Player(id string) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// PlayerByName resolves a roster entry by display name. Used to migrate
// legacy records that referenced players by name instead of id.
func (t *Team) PlayerByName(name string) *Player {
	if name == "" {
		return nil
	}
	for i := range t.Players {
		if t.Players[i].Name == name {
			return &t.Players[i]
		}
	}
	return nil
}
