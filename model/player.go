package model

import "time"

type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	PhotoURL string    `json:"photo_url,omitempty"`
	TeamID   string    `json:"team_id,omitempty"` // empty for legionnaires
	Created  time.Time `json:"created"`
}

// A legionnaire has no fixed team and only plays as a substitute.
func (p *Player) IsLegionnaire() bool {
	return p.TeamID == ""
}

// PlayerStat is a single player's contribution to one match.
type PlayerStat struct {
	ID          string    `json:"id"`
	MatchID     string    `json:"match_id"`
	PlayerID    string    `json:"player_id"`
	Goals       int       `json:"goals"`
	OwnGoals    int       `json:"own_goals"`
	Assists     int       `json:"assists"`
	YellowCards int       `json:"yellow_cards"`
	RedCards    int       `json:"red_cards"`
	Created     time.Time `json:"created"`

	// Filled in by joins when reading, never written.
	TourID       string `json:"tour_id,omitempty"`
	PlayerName   string `json:"player_name,omitempty"`
	PlayerTeamID string `json:"player_team_id,omitempty"`
}

const (
	MaxGoals       = 2
	MaxOwnGoals    = 2
	MaxYellowCards = 2
	MaxRedCards    = 1
)

// TourSubstitution records that a legionnaire played in place of a rostered
// player for a whole tour.
type TourSubstitution struct {
	ID                 string    `json:"id"`
	TourID             string    `json:"tour_id"`
	OriginalPlayerID   string    `json:"original_player_id"`
	SubstitutePlayerID string    `json:"substitute_player_id"`
	Created            time.Time `json:"created"`

	OriginalTeamID string `json:"original_team_id,omitempty"` // Not persisted
}

// PlayerTotals is one row of a leaderboard.
type PlayerTotals struct {
	PlayerID       string    `json:"player_id"`
	PlayerName     string    `json:"player_name"`
	TeamID         string    `json:"team_id,omitempty"`
	TeamName       string    `json:"team_name"`
	TeamColor      TeamColor `json:"team_color,omitempty"`
	Games          int       `json:"games"`
	Goals          int       `json:"goals"`
	Assists        int       `json:"assists"`
	OwnGoals       int       `json:"own_goals"`
	YellowCards    int       `json:"yellow_cards"`
	RedCards       int       `json:"red_cards"`
	DreamTeamCount int       `json:"dream_team_count"`
	MVPCount       int       `json:"mvp_count"`
}

func (p *PlayerTotals) GoalsAndAssists() int {
	return p.Goals + p.Assists
}

// PlayerProfile is everything shown on a player's page.
type PlayerProfile struct {
	Player   Player       `json:"player"`
	Team     *Team        `json:"team,omitempty"`
	Totals   PlayerTotals `json:"totals"`
	MVPTours []Tour       `json:"mvp_tours"`
}
