package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"gorm.io/gorm"
)

func (s *sqliteDB) ListTours(ctx context.Context, seasonID string) ([]model.Tour, error) {
	q := s.conn(ctx).Order("number DESC, created DESC")
	if seasonID != "" {
		q = q.Where("season_id = ?", seasonID)
	}

	var rows []tourRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing tours: %w", err)
	}
	result := make([]model.Tour, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	var row tourRow
	if err := s.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, convertError(err)
	}
	t := row.toModel()
	return &t, nil
}

func (s *sqliteDB) AddTour(ctx context.Context, seasonID string) (*model.Tour, error) {
	row := tourRow{
		ID:       newID(),
		SeasonID: seasonID,
		Created:  s.now(),
	}

	// SQLite has a single writer, so reading the max and inserting inside
	// one transaction can't race with another tour.
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var season seasonRow
		if err := tx.Select("id").Where("id = ?", seasonID).First(&season).Error; err != nil {
			return convertError(err)
		}

		var max int
		err := tx.Model(&tourRow{}).
			Select("COALESCE(MAX(number), 0)").
			Where("season_id = ?", seasonID).
			Scan(&max).Error
		if err != nil {
			return fmt.Errorf("error finding last tour number: %w", err)
		}

		row.Number = max + 1
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("error inserting tour: %w", convertError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t := row.toModel()
	return &t, nil
}

func (s *sqliteDB) UpdateTour(ctx context.Context, t *model.Tour) error {
	res := s.conn(ctx).Model(&tourRow{}).Where("id = ?", t.ID).Updates(map[string]any{
		"video_url":     ptr(t.VideoURL),
		"mvp_player_id": ptr(t.MVPPlayerID),
	})
	return affectedOne(res)
}

func (s *sqliteDB) DeleteTour(ctx context.Context, id string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("scope = ? AND scope_id = ?", string(model.SCOPE_TOUR), id).Delete(&dreamTeamRow{}).Error
		if err != nil {
			return fmt.Errorf("error deleting tour dream teams: %w", err)
		}
		return affectedOne(tx.Where("id = ?", id).Delete(&tourRow{}))
	})
}
