package stats

import "github.com/HFC06Atyrau/HFC/model"

type Side int

const (
	SideNone Side = iota
	SideHome
	SideAway
)

// RowAttribution records what a single stat row contributed to a score.
type RowAttribution struct {
	StatID      string
	PlayerID    string
	Attribution Attribution
	Side        Side
	HomeGoals   int
	AwayGoals   int
}

// Counted reports whether the row changed the score or could have.
func (r RowAttribution) Counted() bool {
	return r.Side != SideNone
}

type Score struct {
	Home int
	Away int
	Rows []RowAttribution
}

// CalculateScore derives a match score from the stat rows recorded for it.
// A row's player team comes from PlayerTeamID on the row, falling back to the
// resolver for legionnaires. Goals go to the player's side, own goals to the
// other side. Rows that resolve to neither team add nothing.
func CalculateScore(m *model.Match, rows []model.PlayerStat, r *Resolver) Score {
	score := Score{Rows: make([]RowAttribution, 0, len(rows))}
	for _, row := range rows {
		a := r.resolve(row.PlayerID, row.PlayerTeamID, m.TourID)
		ra := RowAttribution{
			StatID:      row.ID,
			PlayerID:    row.PlayerID,
			Attribution: a,
		}

		switch {
		case !a.Attributed():
		case a.TeamID == m.HomeTeamID:
			ra.Side = SideHome
			ra.HomeGoals = row.Goals
			ra.AwayGoals = row.OwnGoals
		case a.TeamID == m.AwayTeamID:
			ra.Side = SideAway
			ra.HomeGoals = row.OwnGoals
			ra.AwayGoals = row.Goals
		}

		score.Home += ra.HomeGoals
		score.Away += ra.AwayGoals
		score.Rows = append(score.Rows, ra)
	}
	return score
}
