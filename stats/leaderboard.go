package stats

import (
	"slices"

	"github.com/HFC06Atyrau/HFC/model"
)

// LeaderboardInput is the raw data a leaderboard is folded from. Stats must
// carry the tour id of their match. Everything should already be filtered to
// the scope of the leaderboard (a season, or nothing for all-time).
type LeaderboardInput struct {
	Stats         []model.PlayerStat
	Substitutions []model.TourSubstitution
	Matches       []model.Match
	Players       []model.Player
	Teams         []model.Team
	DreamTeam     []model.DreamTeamEntry
	Tours         []model.Tour
}

type playerTour struct {
	playerID string
	tourID   string
}

// ComputeLeaderboard sums per player stats across all matches in the input.
//
// A player substituted out of a tour gets nothing from that tour, not even
// from stat rows that were left behind. Rostered players are credited with a
// game for every match their team played outside their skipped tours. A
// substitute is credited with every match the replaced player's team played
// in that tour.
//
// Every player in the input gets a row. Stat rows for unknown players are
// kept under the name carried on the row.
func ComputeLeaderboard(in LeaderboardInput, sortBy model.SortColumn) []model.PlayerTotals {
	players := make(map[string]*model.Player, len(in.Players))
	for i := range in.Players {
		players[in.Players[i].ID] = &in.Players[i]
	}
	teams := teamsByID(in.Teams)

	skipped := make(map[playerTour]bool, len(in.Substitutions))
	for _, s := range in.Substitutions {
		skipped[playerTour{playerID: s.OriginalPlayerID, tourID: s.TourID}] = true
	}

	rows := make([]*model.PlayerTotals, 0, len(in.Players))
	byPlayer := make(map[string]*model.PlayerTotals, len(in.Players))
	addRow := func(id string, r *model.PlayerTotals) *model.PlayerTotals {
		rows = append(rows, r)
		byPlayer[id] = r
		return r
	}

	for i := range in.Players {
		p := &in.Players[i]
		if _, found := byPlayer[p.ID]; found {
			continue
		}
		addRow(p.ID, newTotals(p, teams))
	}

	for _, s := range in.Stats {
		if s.TourID != "" && skipped[playerTour{playerID: s.PlayerID, tourID: s.TourID}] {
			continue
		}

		r, found := byPlayer[s.PlayerID]
		if !found {
			name := s.PlayerName
			if name == "" {
				name = model.TeamNameUnknown
			}
			r = addRow(s.PlayerID, &model.PlayerTotals{
				PlayerID:   s.PlayerID,
				PlayerName: name,
				TeamName:   model.TeamNameUnknown,
			})
		}

		r.Goals += s.Goals
		r.Assists += s.Assists
		r.OwnGoals += s.OwnGoals
		r.YellowCards += s.YellowCards
		r.RedCards += s.RedCards
	}

	for id, games := range gamesPlayed(in, players, skipped) {
		if r, found := byPlayer[id]; found {
			r.Games = games
		}
	}

	for _, e := range in.DreamTeam {
		if e.TeamType != model.TEAM_TYPE_DREAM {
			continue
		}
		if r, found := byPlayer[e.PlayerID]; found {
			r.DreamTeamCount++
		}
	}

	for _, t := range in.Tours {
		if t.MVPPlayerID == "" {
			continue
		}
		if r, found := byPlayer[t.MVPPlayerID]; found {
			r.MVPCount++
		}
	}

	result := make([]model.PlayerTotals, len(rows))
	for i, r := range rows {
		result[i] = *r
	}
	SortLeaderboard(result, sortBy)
	return result
}

// SortLeaderboard orders rows by the requested column, descending. Ties are
// broken by goals and then assists. The default column ranks by goals plus
// assists with goals as the only tie-break. Rows still tied keep their order.
func SortLeaderboard(rows []model.PlayerTotals, sortBy model.SortColumn) {
	slices.SortStableFunc(rows, func(a, b model.PlayerTotals) int {
		if d := sortBy.Value(&b) - sortBy.Value(&a); d != 0 {
			return d
		}
		if d := b.Goals - a.Goals; d != 0 {
			return d
		}
		if sortBy == model.SORT_POINTS {
			return 0
		}
		return b.Assists - a.Assists
	})
}

func newTotals(p *model.Player, teams map[string]*model.Team) *model.PlayerTotals {
	r := &model.PlayerTotals{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		TeamID:     p.TeamID,
	}
	switch t, found := teams[p.TeamID]; {
	case p.IsLegionnaire():
		r.TeamName = model.TeamNameLegionnaire
	case found:
		r.TeamName = t.Name
		r.TeamColor = t.Color
	default:
		r.TeamName = model.TeamNameUnknown
	}
	return r
}

func gamesPlayed(in LeaderboardInput, players map[string]*model.Player, skipped map[playerTour]bool) map[string]int {
	games := make(map[string]int, len(players))

	for _, p := range in.Players {
		if p.IsLegionnaire() {
			continue
		}
		n := 0
		for _, m := range in.Matches {
			if m.Involves(p.TeamID) && !skipped[playerTour{playerID: p.ID, tourID: m.TourID}] {
				n++
			}
		}
		games[p.ID] = n
	}

	for _, s := range in.Substitutions {
		team := s.OriginalTeamID
		if team == "" {
			if p, found := players[s.OriginalPlayerID]; found {
				team = p.TeamID
			}
		}
		if team == "" {
			continue
		}
		for _, m := range in.Matches {
			if m.TourID == s.TourID && m.Involves(team) {
				games[s.SubstitutePlayerID]++
			}
		}
	}
	return games
}
