package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
)

func (s *sqliteDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var rows []playerRow
	if err := s.conn(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	result := make([]model.Player, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	var row playerRow
	if err := s.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, convertError(err)
	}
	p := row.toModel()
	return &p, nil
}

func (s *sqliteDB) AddPlayer(ctx context.Context, p *model.Player) error {
	row := playerRow{
		ID:       newID(),
		Name:     p.Name,
		PhotoURL: ptr(p.PhotoURL),
		TeamID:   ptr(p.TeamID),
		Created:  s.now(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error inserting player: %w", convertError(err))
	}
	p.ID = row.ID
	p.Created = row.Created
	return nil
}

func (s *sqliteDB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	res := s.conn(ctx).Model(&playerRow{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":      p.Name,
		"photo_url": ptr(p.PhotoURL),
		"team_id":   ptr(p.TeamID),
	})
	return affectedOne(res)
}

func (s *sqliteDB) DeletePlayer(ctx context.Context, id string) error {
	return affectedOne(s.conn(ctx).Where("id = ?", id).Delete(&playerRow{}))
}
