package stats

import (
	"slices"

	"github.com/HFC06Atyrau/HFC/model"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// ComputeStandings folds the matches the team played into a standings row.
// Matches not involving the team are ignored.
func ComputeStandings(teamID string, matches []model.Match) model.TeamStanding {
	s := model.TeamStanding{TeamID: teamID}
	for _, m := range matches {
		var gf, ga int
		switch teamID {
		case m.HomeTeamID:
			gf, ga = m.HomeScore, m.AwayScore
		case m.AwayTeamID:
			gf, ga = m.AwayScore, m.HomeScore
		default:
			continue
		}

		s.GoalsFor += gf
		s.GoalsAgainst += ga
		switch {
		case gf > ga:
			s.Wins++
		case gf == ga:
			s.Draws++
		default:
			s.Losses++
		}
	}

	s.Played = s.Wins + s.Draws + s.Losses
	s.GoalDiff = s.GoalsFor - s.GoalsAgainst
	s.Points = s.Wins*pointsForWin + s.Draws*pointsForDraw
	return s
}

// SortStandings orders by points then goal difference, both descending.
// Teams still tied keep their input order.
func SortStandings(standings []model.TeamStanding) {
	slices.SortStableFunc(standings, func(a, b model.TeamStanding) int {
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		return b.GoalDiff - a.GoalDiff
	})
}

// TourTable builds the sorted table for one tour. Every team registered for
// the tour gets a row even if it has not played yet. When no teams were
// registered the teams are taken from the matches themselves.
func TourTable(tourTeams []model.TourTeam, teams []model.Team, matches []model.Match) []model.TeamStanding {
	byID := teamsByID(teams)

	if len(tourTeams) == 0 {
		tourTeams = tourTeamsFromMatches(matches)
	}

	table := make([]model.TeamStanding, 0, len(tourTeams))
	for _, tt := range tourTeams {
		s := ComputeStandings(tt.TeamID, matches)
		s.TeamName = tt.TeamName
		s.Color = tt.Color
		if t, found := byID[tt.TeamID]; found {
			s.TeamName = t.Name
			if s.Color == model.COLOR_UNKNOWN {
				s.Color = t.Color
			}
		}
		table = append(table, s)
	}

	SortStandings(table)
	return table
}

// SeasonTable builds the sorted overall table. Teams without a single match
// in scope are left out.
func SeasonTable(teams []model.Team, matches []model.Match) []model.TeamStanding {
	table := make([]model.TeamStanding, 0, len(teams))
	for _, t := range teams {
		s := ComputeStandings(t.ID, matches)
		if s.Played == 0 {
			continue
		}
		s.TeamName = t.Name
		s.Color = t.Color
		table = append(table, s)
	}

	SortStandings(table)
	return table
}

func teamsByID(teams []model.Team) map[string]*model.Team {
	byID := make(map[string]*model.Team, len(teams))
	for i := range teams {
		byID[teams[i].ID] = &teams[i]
	}
	return byID
}

func tourTeamsFromMatches(matches []model.Match) []model.TourTeam {
	seen := make(map[string]bool)
	result := make([]model.TourTeam, 0, 4)
	for _, m := range matches {
		for _, id := range []string{m.HomeTeamID, m.AwayTeamID} {
			if !seen[id] {
				seen[id] = true
				result = append(result, model.TourTeam{TourID: m.TourID, TeamID: id})
			}
		}
	}
	return result
}
