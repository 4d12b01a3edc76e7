package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
)

func (s *sqliteDB) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	var rows []roleRow
	if err := s.conn(ctx).Order("created, rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing roles: %w", err)
	}
	result := make([]model.UserRole, 0, len(rows))
	for _, r := range rows {
		result = append(result, model.UserRole{
			ID:      r.ID,
			UserID:  r.UserID,
			Role:    model.ParseRole(r.Role),
			Created: r.Created,
		})
	}
	return result, nil
}

func (s *sqliteDB) GetUserRoles(ctx context.Context, userID string) ([]model.Role, error) {
	var names []string
	err := s.conn(ctx).Model(&roleRow{}).Where("user_id = ?", userID).Order("role").Pluck("role", &names).Error
	if err != nil {
		return nil, fmt.Errorf("error looking up roles for %s: %w", userID, err)
	}
	result := make([]model.Role, 0, len(names))
	for _, n := range names {
		result = append(result, model.ParseRole(n))
	}
	return result, nil
}

func (s *sqliteDB) AddRole(ctx context.Context, userID string, role model.Role) error {
	row := roleRow{
		ID:      newID(),
		UserID:  userID,
		Role:    string(role),
		Created: s.now(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error adding role: %w", convertError(err))
	}
	return nil
}

func (s *sqliteDB) DeleteRole(ctx context.Context, userID string, role model.Role) error {
	return affectedOne(s.conn(ctx).Where("user_id = ? AND role = ?", userID, string(role)).Delete(&roleRow{}))
}
