// Package types contains read models shared by the service and the API.
package types

import "time"

// RatingEntry is one row of a match leaderboard.
type RatingEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Side     string  `json:"side"`
	TeamID   string  `json:"team_id"`
	Position string  `json:"position,omitempty"`
	Presence string  `json:"presence"`
	Rating   float64 `json:"rating"`
}

// TeamScore is one side of a scoreline.
type TeamScore struct {
	Side   string `json:"side"`
	TeamID string `json:"team_id"`
	Goals  int    `json:"goals"`
}

// PlayerTally counts the scoring contributions of one player.
type PlayerTally struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Side     string `json:"side"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}

// Summary is the result view of a match.
type Summary struct {
	MatchID  string        `json:"match_id"`
	GroupID  string        `json:"group_id"`
	PlayedAt time.Time     `json:"played_at"`
	TeamA    TeamScore     `json:"team_a"`
	TeamB    TeamScore     `json:"team_b"`
	Players  []PlayerTally `json:"players"`
	Events   int           `json:"events"`

	// Winner is the side with more goals, or "" for a draw.
	Winner string `json:"winner"`
}

// PlayerView is a roster member as shown to clients.
type PlayerView struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Position string  `json:"position,omitempty"`
	Presence string  `json:"presence"`
	Rating   float64 `json:"rating"`
}

// TeamView is one side of a match.
type TeamView struct {
	Side    string       `json:"side"`
	TeamID  string       `json:"team_id"`
	Players []PlayerView `json:"players"`
}

// Effect is one stored event record with the rating it left behind.
type Effect struct {
	PlayerID string   `json:"player_id"`
	StatType string   `json:"stat_type"`
	Impact   string   `json:"impact"`
	Weight   float64  `json:"weight"`
	Delta    float64  `json:"delta"`
	Rating   *float64 `json:"rating,omitempty"`
}

// MatchView is the full read model of a match.
type MatchView struct {
	MatchID  string    `json:"match_id"`
	GroupID  string    `json:"group_id"`
	PlayedAt time.Time `json:"played_at"`
	TeamA    TeamView  `json:"team_a"`
	TeamB    TeamView  `json:"team_b"`
	Records  []Effect  `json:"records"`
}
