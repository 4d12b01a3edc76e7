package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
)

func (c *controller) ListSeasons(ctx context.Context) ([]model.Season, error) {
	return c.db.ListSeasons(ctx)
}

func (c *controller) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	return c.db.GetSeason(ctx, id)
}

func (c *controller) CurrentSeason(ctx context.Context) (*model.Season, error) {
	return c.db.GetCurrentSeason(ctx)
}

func (c *controller) CreateSeason(ctx context.Context, name string) (*model.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: season name is required", ErrInvalid)
	}

	s := &model.Season{Name: name, IsCurrent: true}
	if err := c.db.AddSeason(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *controller) RenameSeason(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: season name is required", ErrInvalid)
	}
	return c.db.RenameSeason(ctx, id, name)
}

func (c *controller) SetCurrentSeason(ctx context.Context, id string) error {
	return c.db.SetCurrentSeason(ctx, id)
}

func (c *controller) DeleteSeason(ctx context.Context, id string) error {
	return c.db.DeleteSeason(ctx, id)
}

func (c *controller) ListTours(ctx context.Context, seasonID string) ([]model.Tour, error) {
	return c.db.ListTours(ctx, seasonID)
}

func (c *controller) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	return c.db.GetTour(ctx, id)
}

func (c *controller) CurrentTour(ctx context.Context) (*model.Tour, error) {
	season, err := c.db.GetCurrentSeason(ctx)
	if err != nil {
		return nil, err
	}
	tours, err := c.db.ListTours(ctx, season.ID)
	if err != nil {
		return nil, err
	}

	var current *model.Tour
	for i := range tours {
		if current == nil || tours[i].Number > current.Number {
			current = &tours[i]
		}
	}
	if current == nil {
		return nil, fmt.Errorf("season %s has no tours: %w", season.Name, db.ErrNotFound)
	}
	return current, nil
}

func (c *controller) CreateTour(ctx context.Context, seasonID string) (*model.Tour, error) {
	return c.db.AddTour(ctx, seasonID)
}

func (c *controller) SetTourMVP(ctx context.Context, tourID, playerID string) error {
	t, err := c.db.GetTour(ctx, tourID)
	if err != nil {
		return err
	}
	if playerID != "" {
		if _, err := c.db.GetPlayer(ctx, playerID); err != nil {
			return err
		}
	}
	t.MVPPlayerID = playerID
	return c.db.UpdateTour(ctx, t)
}

func (c *controller) SetTourVideo(ctx context.Context, tourID, videoURL string) error {
	t, err := c.db.GetTour(ctx, tourID)
	if err != nil {
		return err
	}
	t.VideoURL = strings.TrimSpace(videoURL)
	return c.db.UpdateTour(ctx, t)
}

func (c *controller) DeleteTour(ctx context.Context, id string) error {
	return c.db.DeleteTour(ctx, id)
}

func (c *controller) ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error) {
	return c.db.ListTourTeams(ctx, tourID)
}

func (c *controller) AddTourTeam(ctx context.Context, tourID, teamID string, color model.TeamColor) (*model.TourTeam, error) {
	team, err := c.db.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if color == model.COLOR_UNKNOWN {
		color = team.Color
	}

	tt := &model.TourTeam{TourID: tourID, TeamID: teamID, Color: color, TeamName: team.Name}
	if err := c.db.AddTourTeam(ctx, tt); err != nil {
		return nil, err
	}
	return tt, nil
}

func (c *controller) SetTourTeamColor(ctx context.Context, id string, color model.TeamColor) error {
	if color == model.COLOR_UNKNOWN {
		return fmt.Errorf("%w: unknown team color", ErrInvalid)
	}
	return c.db.UpdateTourTeamColor(ctx, id, color)
}

func (c *controller) RemoveTourTeam(ctx context.Context, id string) error {
	return c.db.DeleteTourTeam(ctx, id)
}
