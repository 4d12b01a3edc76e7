package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
)

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) CreateTeam(ctx context.Context, name string, color model.TeamColor) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalid)
	}
	if color == model.COLOR_UNKNOWN {
		color = model.COLOR_BLACK
	}

	t := &model.Team{Name: name, Color: color}
	if err := c.db.AddTeam(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *controller) UpdateTeam(ctx context.Context, t *model.Team) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return fmt.Errorf("%w: team name is required", ErrInvalid)
	}
	if t.Color == model.COLOR_UNKNOWN {
		return fmt.Errorf("%w: unknown team color", ErrInvalid)
	}
	return c.db.UpdateTeam(ctx, t)
}

func (c *controller) DeleteTeam(ctx context.Context, id string) error {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return err
	}
	var members []string
	for _, p := range players {
		if p.TeamID == id {
			members = append(members, p.ID)
		}
	}

	// The team's own matches go with it, but its players may have stats or
	// substitutes in other teams' matches whose scores now change.
	affected, err := c.affectedMatches(ctx, members...)
	if err != nil {
		return err
	}

	if err := c.db.DeleteTeam(ctx, id); err != nil {
		return err
	}
	return c.recomputeMatches(ctx, affected)
}

// affectedMatches returns the ids of every match whose score depends on the
// given players: matches they have stats in and every match of a tour where
// they were substituted.
func (c *controller) affectedMatches(ctx context.Context, playerIDs ...string) ([]string, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}
	wanted := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = true
	}

	seen := make(map[string]bool)
	var result []string
	add := func(matchID string) {
		if !seen[matchID] {
			seen[matchID] = true
			result = append(result, matchID)
		}
	}

	for _, id := range playerIDs {
		stats, err := c.db.ListPlayerStats(ctx, db.StatFilter{PlayerID: id})
		if err != nil {
			return nil, err
		}
		for _, s := range stats {
			add(s.MatchID)
		}
	}

	subs, err := c.db.ListSubstitutions(ctx, "")
	if err != nil {
		return nil, err
	}
	tours := make(map[string]bool)
	for _, s := range subs {
		if wanted[s.OriginalPlayerID] || wanted[s.SubstitutePlayerID] {
			tours[s.TourID] = true
		}
	}
	for tourID := range tours {
		matches, err := c.db.ListMatches(ctx, db.MatchFilter{TourID: tourID})
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m.ID)
		}
	}
	return result, nil
}
