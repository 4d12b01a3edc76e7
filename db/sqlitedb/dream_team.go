package sqlitedb

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"gorm.io/gorm"
)

func (s *sqliteDB) ListDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error) {
	var rows []dreamTeamRow
	err := s.conn(ctx).
		Where("scope = ? AND scope_id = ? AND team_type = ?", string(scope), scopeID, string(teamType)).
		Order("position").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing dream team: %w", err)
	}
	return dreamTeamEntries(rows), nil
}

func (s *sqliteDB) ListTourDreamTeams(ctx context.Context, seasonID string) ([]model.DreamTeamEntry, error) {
	q := s.conn(ctx).Table("dream_team_entries d").
		Select("d.*").
		Joins("JOIN tours t ON t.id = d.scope_id").
		Where("d.scope = ?", string(model.SCOPE_TOUR)).
		Order("t.number, d.team_type, d.position")
	if seasonID != "" {
		q = q.Where("t.season_id = ?", seasonID)
	}

	var rows []dreamTeamRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing tour dream teams: %w", err)
	}
	return dreamTeamEntries(rows), nil
}

func (s *sqliteDB) SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error {
	created := s.now()
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("scope = ? AND scope_id = ? AND team_type = ?", string(scope), scopeID, string(teamType)).
			Delete(&dreamTeamRow{}).Error
		if err != nil {
			return fmt.Errorf("error clearing dream team: %w", err)
		}

		for i, playerID := range playerIDs {
			row := dreamTeamRow{
				ID:       newID(),
				Scope:    string(scope),
				ScopeID:  scopeID,
				TeamType: string(teamType),
				Position: i + 1,
				PlayerID: playerID,
				Created:  created,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("error inserting dream team position %d: %w", i+1, convertError(err))
			}
		}
		return nil
	})
}

func dreamTeamEntries(rows []dreamTeamRow) []model.DreamTeamEntry {
	result := make([]model.DreamTeamEntry, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result
}
