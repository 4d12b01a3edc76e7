package model

import "time"

type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsCurrent bool      `json:"is_current"`
	Created   time.Time `json:"created"`
}

// Tour is one match day within a season.
type Tour struct {
	ID          string    `json:"id"`
	SeasonID    string    `json:"season_id"`
	Number      int       `json:"number"`
	VideoURL    string    `json:"video_url,omitempty"`
	MVPPlayerID string    `json:"mvp_player_id,omitempty"`
	Created     time.Time `json:"created"`
}

type Match struct {
	ID         string    `json:"id"`
	TourID     string    `json:"tour_id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	Created    time.Time `json:"created"`
}

// Involves returns true if the team played either side of the match.
func (m *Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

type TeamStanding struct {
	TeamID       string    `json:"team_id"`
	TeamName     string    `json:"team_name"`
	Color        TeamColor `json:"color"`
	Played       int       `json:"played"`
	Wins         int       `json:"wins"`
	Draws        int       `json:"draws"`
	Losses       int       `json:"losses"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	GoalDiff     int       `json:"goal_diff"`
	Points       int       `json:"points"`
}
