package model

import (
	"strings"
	"time"
)

type TeamColor string

const (
	COLOR_UNKNOWN TeamColor = ""
	COLOR_RED     TeamColor = "red"
	COLOR_BLUE    TeamColor = "blue"
	COLOR_GREEN   TeamColor = "green"
	COLOR_BLACK   TeamColor = "black"
)

// Labels used in tables for players that do not resolve to a known team.
const (
	TeamNameLegionnaire = "Legionnaire"
	TeamNameUnknown     = "Unknown"
)

var AllTeamColors = []TeamColor{COLOR_RED, COLOR_BLUE, COLOR_GREEN, COLOR_BLACK}

// ParseTeamColor converts user input into a TeamColor. An empty string yields
// the default color (black), anything unrecognized yields COLOR_UNKNOWN.
func ParseTeamColor(c string) TeamColor {
	c = strings.ToLower(strings.TrimSpace(c))
	switch c {
	case "":
		return COLOR_BLACK
	case "red":
		return COLOR_RED
	case "blue":
		return COLOR_BLUE
	case "green":
		return COLOR_GREEN
	case "black":
		return COLOR_BLACK
	default:
		return COLOR_UNKNOWN
	}
}

type Team struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Color   TeamColor `json:"color"`
	Created time.Time `json:"created"`
}

// TourTeam is a team's participation in a single tour, with the color it
// played in that day.
type TourTeam struct {
	ID       string    `json:"id"`
	TourID   string    `json:"tour_id"`
	TeamID   string    `json:"team_id"`
	Color    TeamColor `json:"color"`
	TeamName string    `json:"team_name,omitempty"` // Not persisted
}
