// Package stats turns raw match events into scores, standings and
// leaderboards. Everything here is a pure fold over data that was already
// loaded from the database.
package stats

import "github.com/HFC06Atyrau/HFC/model"

// Reason explains how a player was (or wasn't) attributed to a team.
type Reason int

const (
	Unattributed Reason = iota
	OwnTeam
	Substitution
)

func (r Reason) String() string {
	switch r {
	case OwnTeam:
		return "own team"
	case Substitution:
		return "substitution"
	default:
		return "unattributed"
	}
}

type Attribution struct {
	TeamID string
	Reason Reason
}

func (a Attribution) Attributed() bool {
	return a.Reason != Unattributed && a.TeamID != ""
}

type subKey struct {
	tourID   string
	playerID string
}

// Resolver answers which team a player played for in a tour.
type Resolver struct {
	teams map[string]string
	subs  map[subKey]string
}

// NewResolver indexes players by team and substitutes by the team of the
// player they replaced. A substitution only counts when the original player
// has a team of their own; substitute-for-a-substitute chains are not
// followed. If a substitute appears twice in the same tour the last row wins.
func NewResolver(players []model.Player, subs []model.TourSubstitution) *Resolver {
	r := &Resolver{
		teams: make(map[string]string, len(players)),
		subs:  make(map[subKey]string, len(subs)),
	}
	for _, p := range players {
		if p.TeamID != "" {
			r.teams[p.ID] = p.TeamID
		}
	}

	for _, s := range subs {
		team := s.OriginalTeamID
		if team == "" {
			team = r.teams[s.OriginalPlayerID]
		}
		if team == "" {
			continue
		}
		r.subs[subKey{tourID: s.TourID, playerID: s.SubstitutePlayerID}] = team
	}
	return r
}

// EffectiveTeamOf resolves the player's own team first, then a substitution
// in the given tour.
func (r *Resolver) EffectiveTeamOf(playerID, tourID string) Attribution {
	return r.resolve(playerID, r.teams[playerID], tourID)
}

func (r *Resolver) resolve(playerID, ownTeamID, tourID string) Attribution {
	if ownTeamID != "" {
		return Attribution{TeamID: ownTeamID, Reason: OwnTeam}
	}
	if team, found := r.subs[subKey{tourID: tourID, playerID: playerID}]; found {
		return Attribution{TeamID: team, Reason: Substitution}
	}
	return Attribution{Reason: Unattributed}
}
