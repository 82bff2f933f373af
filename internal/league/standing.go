package league

// Standing is one row of the tournament table.
type Standing struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Played int    `json:"played"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}
