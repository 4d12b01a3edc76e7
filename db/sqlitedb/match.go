package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
)

func (s *sqliteDB) ListMatches(ctx context.Context, f db.MatchFilter) ([]model.Match, error) {
	q := s.conn(ctx).Table("matches m").
		Select("m.*").
		Joins("JOIN tours t ON t.id = m.tour_id").
		Order("t.number, m.created, m.rowid")
	if f.TourID != "" {
		q = q.Where("m.tour_id = ?", f.TourID)
	}
	if f.SeasonID != "" {
		q = q.Where("t.season_id = ?", f.SeasonID)
	}

	var rows []matchRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing matches: %w", err)
	}
	result := make([]model.Match, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	var row matchRow
	if err := s.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, convertError(err)
	}
	m := row.toModel()
	return &m, nil
}

func (s *sqliteDB) AddMatch(ctx context.Context, m *model.Match) error {
	row := matchRow{
		ID:         newID(),
		TourID:     m.TourID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Created:    s.now(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error inserting match: %w", convertError(err))
	}
	m.ID = row.ID
	m.Created = row.Created
	return nil
}

func (s *sqliteDB) UpdateMatchScore(ctx context.Context, id string, home, away int) error {
	res := s.conn(ctx).Model(&matchRow{}).Where("id = ?", id).Updates(map[string]any{
		"home_score": home,
		"away_score": away,
	})
	return affectedOne(res)
}

func (s *sqliteDB) DeleteMatch(ctx context.Context, id string) error {
	return affectedOne(s.conn(ctx).Where("id = ?", id).Delete(&matchRow{}))
}
