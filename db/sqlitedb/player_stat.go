package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"gorm.io/gorm"
)

func (s *sqliteDB) statQuery(ctx context.Context) *gorm.DB {
	return s.conn(ctx).Table("player_stats s").
		Select(`s.id, s.match_id, s.player_id, s.goals, s.own_goals, s.assists,
			s.yellow_cards, s.red_cards, s.created,
			m.tour_id, p.name AS player_name, p.team_id AS player_team_id`).
		Joins("JOIN matches m ON m.id = s.match_id").
		Joins("JOIN tours t ON t.id = m.tour_id").
		Joins("JOIN players p ON p.id = s.player_id")
}

func (s *sqliteDB) ListPlayerStats(ctx context.Context, f db.StatFilter) ([]model.PlayerStat, error) {
	q := s.statQuery(ctx).Order("t.number, m.created, m.rowid, s.created, s.rowid")
	if f.MatchID != "" {
		q = q.Where("s.match_id = ?", f.MatchID)
	}
	if f.TourID != "" {
		q = q.Where("m.tour_id = ?", f.TourID)
	}
	if f.SeasonID != "" {
		q = q.Where("t.season_id = ?", f.SeasonID)
	}
	if f.PlayerID != "" {
		q = q.Where("s.player_id = ?", f.PlayerID)
	}

	var views []statView
	if err := q.Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("error listing player stats: %w", err)
	}
	result := make([]model.PlayerStat, 0, len(views))
	for i := range views {
		result = append(result, views[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetPlayerStat(ctx context.Context, id string) (*model.PlayerStat, error) {
	var views []statView
	if err := s.statQuery(ctx).Where("s.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, convertError(err)
	}
	if len(views) == 0 {
		return nil, db.ErrNotFound
	}
	stat := views[0].toModel()
	return &stat, nil
}

func (s *sqliteDB) AddPlayerStat(ctx context.Context, stat *model.PlayerStat) error {
	row := playerStatRow{
		ID:          newID(),
		MatchID:     stat.MatchID,
		PlayerID:    stat.PlayerID,
		Goals:       stat.Goals,
		OwnGoals:    stat.OwnGoals,
		Assists:     stat.Assists,
		YellowCards: stat.YellowCards,
		RedCards:    stat.RedCards,
		Created:     s.now(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error inserting player stat: %w", convertError(err))
	}
	stat.ID = row.ID
	stat.Created = row.Created
	return nil
}

func (s *sqliteDB) UpdatePlayerStat(ctx context.Context, stat *model.PlayerStat) error {
	res := s.conn(ctx).Model(&playerStatRow{}).Where("id = ?", stat.ID).Updates(map[string]any{
		"goals":        stat.Goals,
		"own_goals":    stat.OwnGoals,
		"assists":      stat.Assists,
		"yellow_cards": stat.YellowCards,
		"red_cards":    stat.RedCards,
	})
	return affectedOne(res)
}

func (s *sqliteDB) DeletePlayerStat(ctx context.Context, id string) error {
	return affectedOne(s.conn(ctx).Where("id = ?", id).Delete(&playerStatRow{}))
}
