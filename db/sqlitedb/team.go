package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
)

func (s *sqliteDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	var rows []teamRow
	if err := s.conn(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	result := make([]model.Team, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	var row teamRow
	if err := s.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, convertError(err)
	}
	t := row.toModel()
	return &t, nil
}

func (s *sqliteDB) AddTeam(ctx context.Context, t *model.Team) error {
	row := teamRow{
		ID:      newID(),
		Name:    t.Name,
		Color:   colorOrDefault(t.Color),
		Created: s.now(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error inserting team: %w", convertError(err))
	}
	*t = row.toModel()
	return nil
}

func (s *sqliteDB) UpdateTeam(ctx context.Context, t *model.Team) error {
	res := s.conn(ctx).Model(&teamRow{}).Where("id = ?", t.ID).Updates(map[string]any{
		"name":  t.Name,
		"color": colorOrDefault(t.Color),
	})
	return affectedOne(res)
}

func (s *sqliteDB) DeleteTeam(ctx context.Context, id string) error {
	return affectedOne(s.conn(ctx).Where("id = ?", id).Delete(&teamRow{}))
}

type tourTeamView struct {
	ID       string
	TourID   string
	TeamID   string
	Color    string
	TeamName string
}

func (s *sqliteDB) ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error) {
	var views []tourTeamView
	err := s.conn(ctx).Table("tour_teams tt").
		Select("tt.id, tt.tour_id, tt.team_id, tt.color, t.name AS team_name").
		Joins("JOIN teams t ON t.id = tt.team_id").
		Where("tt.tour_id = ?", tourID).
		Order("t.name").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("error listing tour teams: %w", err)
	}

	result := make([]model.TourTeam, 0, len(views))
	for _, v := range views {
		result = append(result, model.TourTeam{
			ID:       v.ID,
			TourID:   v.TourID,
			TeamID:   v.TeamID,
			Color:    model.ParseTeamColor(v.Color),
			TeamName: v.TeamName,
		})
	}
	return result, nil
}

func (s *sqliteDB) AddTourTeam(ctx context.Context, tt *model.TourTeam) error {
	row := tourTeamRow{
		ID:     newID(),
		TourID: tt.TourID,
		TeamID: tt.TeamID,
		Color:  colorOrDefault(tt.Color),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error inserting tour team: %w", convertError(err))
	}
	tt.ID = row.ID
	return nil
}

func (s *sqliteDB) UpdateTourTeamColor(ctx context.Context, id string, color model.TeamColor) error {
	res := s.conn(ctx).Model(&tourTeamRow{}).Where("id = ?", id).Update("color", colorOrDefault(color))
	return affectedOne(res)
}

func (s *sqliteDB) DeleteTourTeam(ctx context.Context, id string) error {
	return affectedOne(s.conn(ctx).Where("id = ?", id).Delete(&tourTeamRow{}))
}
