package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"gorm.io/gorm"
)

func (s *sqliteDB) substitutionQuery(ctx context.Context) *gorm.DB {
	return s.conn(ctx).Table("tour_substitutions s").
		Select("s.id, s.tour_id, s.original_player_id, s.substitute_player_id, s.created, p.team_id AS original_team_id").
		Joins("JOIN players p ON p.id = s.original_player_id")
}

func (s *sqliteDB) ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error) {
	q := s.substitutionQuery(ctx).Order("s.created, s.rowid")
	if tourID != "" {
		q = q.Where("s.tour_id = ?", tourID)
	}

	var views []substitutionView
	if err := q.Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("error listing substitutions: %w", err)
	}
	result := make([]model.TourSubstitution, 0, len(views))
	for i := range views {
		result = append(result, views[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetSubstitution(ctx context.Context, id string) (*model.TourSubstitution, error) {
	var views []substitutionView
	if err := s.substitutionQuery(ctx).Where("s.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, convertError(err)
	}
	if len(views) == 0 {
		return nil, db.ErrNotFound
	}
	sub := views[0].toModel()
	return &sub, nil
}

func (s *sqliteDB) AddSubstitution(ctx context.Context, sub *model.TourSubstitution) error {
	row := substitutionRow{
		ID:                 newID(),
		TourID:             sub.TourID,
		OriginalPlayerID:   sub.OriginalPlayerID,
		SubstitutePlayerID: sub.SubstitutePlayerID,
		Created:            s.now(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error inserting substitution: %w", convertError(err))
	}
	sub.ID = row.ID
	sub.Created = row.Created
	return nil
}

func (s *sqliteDB) DeleteSubstitution(ctx context.Context, id string) error {
	return affectedOne(s.conn(ctx).Where("id = ?", id).Delete(&substitutionRow{}))
}
