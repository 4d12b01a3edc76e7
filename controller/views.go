package controller

import (
	"context"
	"errors"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/HFC06Atyrau/HFC/stats"
)

func (c *controller) TourStandings(ctx context.Context, tourID string) ([]model.TeamStanding, error) {
	if _, err := c.db.GetTour(ctx, tourID); err != nil {
		return nil, err
	}

	tourTeams, err := c.db.ListTourTeams(ctx, tourID)
	if err != nil {
		return nil, err
	}
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := c.db.ListMatches(ctx, db.MatchFilter{TourID: tourID})
	if err != nil {
		return nil, err
	}
	return stats.TourTable(tourTeams, teams, matches), nil
}

func (c *controller) SeasonStandings(ctx context.Context, seasonID string) ([]model.TeamStanding, error) {
	if _, err := c.db.GetSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := c.db.ListMatches(ctx, db.MatchFilter{SeasonID: seasonID})
	if err != nil {
		return nil, err
	}
	return stats.SeasonTable(teams, matches), nil
}

func (c *controller) Leaderboard(ctx context.Context, seasonID string, sortBy model.SortColumn) ([]model.PlayerTotals, error) {
	in, err := c.leaderboardInput(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	return stats.ComputeLeaderboard(*in, sortBy), nil
}

// leaderboardInput loads everything the leaderboard needs for one season, or
// for all of them if seasonID is empty.
func (c *controller) leaderboardInput(ctx context.Context, seasonID string) (*stats.LeaderboardInput, error) {
	if seasonID != "" {
		if _, err := c.db.GetSeason(ctx, seasonID); err != nil {
			return nil, err
		}
	}

	var in stats.LeaderboardInput
	var err error
	if in.Tours, err = c.db.ListTours(ctx, seasonID); err != nil {
		return nil, err
	}
	if in.Stats, err = c.db.ListPlayerStats(ctx, db.StatFilter{SeasonID: seasonID}); err != nil {
		return nil, err
	}
	if in.Matches, err = c.db.ListMatches(ctx, db.MatchFilter{SeasonID: seasonID}); err != nil {
		return nil, err
	}
	if in.Players, err = c.db.ListPlayers(ctx); err != nil {
		return nil, err
	}
	if in.Teams, err = c.db.ListTeams(ctx); err != nil {
		return nil, err
	}
	if in.DreamTeam, err = c.db.ListTourDreamTeams(ctx, seasonID); err != nil {
		return nil, err
	}

	subs, err := c.db.ListSubstitutions(ctx, "")
	if err != nil {
		return nil, err
	}
	inSeason := make(map[string]bool, len(in.Tours))
	for _, t := range in.Tours {
		inSeason[t.ID] = true
	}
	for _, s := range subs {
		if inSeason[s.TourID] {
			in.Substitutions = append(in.Substitutions, s)
		}
	}
	return &in, nil
}

func (c *controller) TourPlayerStats(ctx context.Context, tourID string) ([]model.PlayerStat, error) {
	if _, err := c.db.GetTour(ctx, tourID); err != nil {
		return nil, err
	}
	return c.db.ListPlayerStats(ctx, db.StatFilter{TourID: tourID})
}

func (c *controller) PlayerProfile(ctx context.Context, playerID string) (*model.PlayerProfile, error) {
	p, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	profile := &model.PlayerProfile{Player: *p, MVPTours: []model.Tour{}}

	if !p.IsLegionnaire() {
		team, err := c.db.GetTeam(ctx, p.TeamID)
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
		profile.Team = team
	}

	in, err := c.leaderboardInput(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, row := range stats.ComputeLeaderboard(*in, model.SORT_POINTS) {
		if row.PlayerID == p.ID {
			profile.Totals = row
			break
		}
	}
	for _, t := range in.Tours {
		if t.MVPPlayerID == p.ID {
			profile.MVPTours = append(profile.MVPTours, t)
		}
	}
	return profile, nil
}
