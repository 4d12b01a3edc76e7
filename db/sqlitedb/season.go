package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"gorm.io/gorm"
)

func (s *sqliteDB) ListSeasons(ctx context.Context) ([]model.Season, error) {
	var rows []seasonRow
	if err := s.conn(ctx).Order("created DESC, rowid DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing seasons: %w", err)
	}
	result := make([]model.Season, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

func (s *sqliteDB) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	var row seasonRow
	if err := s.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, convertError(err)
	}
	season := row.toModel()
	return &season, nil
}

func (s *sqliteDB) GetCurrentSeason(ctx context.Context) (*model.Season, error) {
	var row seasonRow
	if err := s.conn(ctx).Where("is_current = ?", true).First(&row).Error; err != nil {
		return nil, convertError(err)
	}
	season := row.toModel()
	return &season, nil
}

func (s *sqliteDB) AddSeason(ctx context.Context, season *model.Season) error {
	row := seasonRow{
		ID:        newID(),
		Name:      season.Name,
		IsCurrent: season.IsCurrent,
		Created:   s.now(),
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if season.IsCurrent {
			if err := clearCurrent(tx, ""); err != nil {
				return err
			}
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("error inserting season: %w", convertError(err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	season.ID = row.ID
	season.Created = row.Created
	return nil
}

func (s *sqliteDB) RenameSeason(ctx context.Context, id, name string) error {
	return affectedOne(s.conn(ctx).Model(&seasonRow{}).Where("id = ?", id).Update("name", name))
}

func (s *sqliteDB) SetCurrentSeason(ctx context.Context, id string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearCurrent(tx, id); err != nil {
			return err
		}
		return affectedOne(tx.Model(&seasonRow{}).Where("id = ?", id).Update("is_current", true))
	})
}

// clearCurrent drops the current flag from every season except keep.
func clearCurrent(tx *gorm.DB, keep string) error {
	err := tx.Model(&seasonRow{}).
		Where("is_current = ? AND id <> ?", true, keep).
		Update("is_current", false).Error
	if err != nil {
		return fmt.Errorf("error clearing current season: %w", err)
	}
	return nil
}

func (s *sqliteDB) DeleteSeason(ctx context.Context, id string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		tours := tx.Model(&tourRow{}).Select("id").Where("season_id = ?", id)
		err := tx.Where("(scope = ? AND scope_id = ?) OR (scope = ? AND scope_id IN (?))",
			string(model.SCOPE_SEASON), id, string(model.SCOPE_TOUR), tours).
			Delete(&dreamTeamRow{}).Error
		if err != nil {
			return fmt.Errorf("error deleting season dream teams: %w", err)
		}
		return affectedOne(tx.Where("id = ?", id).Delete(&seasonRow{}))
	})
}

var _ db.DB = (*sqliteDB)(nil)
