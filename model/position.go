package model

import (
	"strings"
	"time"
)

// Position is a slot in a five player lineup. The number is the 1-based slot
// index, the label is only a display convention.
type Position int

const (
	POS_GOALKEEPER Position = 1
	POS_DEFENDER_1 Position = 2
	POS_DEFENDER_2 Position = 3
	POS_FORWARD_1  Position = 4
	POS_FORWARD_2  Position = 5

	DreamTeamSize = 5
)

func (p Position) Valid() bool {
	return p >= POS_GOALKEEPER && p <= POS_FORWARD_2
}

func (p Position) Label() string {
	switch p {
	case POS_GOALKEEPER:
		return "goalkeeper"
	case POS_DEFENDER_1, POS_DEFENDER_2:
		return "defender"
	case POS_FORWARD_1, POS_FORWARD_2:
		return "forward"
	default:
		return "unknown"
	}
}

type DreamTeamScope string

const (
	SCOPE_UNKNOWN DreamTeamScope = ""
	SCOPE_TOUR    DreamTeamScope = "tour"
	SCOPE_SEASON  DreamTeamScope = "season"
)

func ParseDreamTeamScope(s string) DreamTeamScope {
	switch strings.ToLower(s) {
	case "tour":
		return SCOPE_TOUR
	case "season":
		return SCOPE_SEASON
	default:
		return SCOPE_UNKNOWN
	}
}

type DreamTeamType string

const (
	TEAM_TYPE_UNKNOWN DreamTeamType = ""
	TEAM_TYPE_DREAM   DreamTeamType = "dream"
	TEAM_TYPE_ANTI    DreamTeamType = "anti"
)

func ParseDreamTeamType(s string) DreamTeamType {
	switch strings.ToLower(s) {
	case "dream":
		return TEAM_TYPE_DREAM
	case "anti":
		return TEAM_TYPE_ANTI
	default:
		return TEAM_TYPE_UNKNOWN
	}
}

type DreamTeamEntry struct {
	ID       string         `json:"id"`
	Scope    DreamTeamScope `json:"scope"`
	ScopeID  string         `json:"scope_id"`
	PlayerID string         `json:"player_id"`
	TeamType DreamTeamType  `json:"team_type"`
	Position Position       `json:"position"`
	Created  time.Time      `json:"created"`
}
