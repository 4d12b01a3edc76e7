package controller

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
)

func (c *controller) GetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error) {
	if err := c.checkDreamTeamScope(ctx, scope, scopeID, teamType); err != nil {
		return nil, err
	}
	return c.db.ListDreamTeam(ctx, scope, scopeID, teamType)
}

func (c *controller) SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error {
	if len(playerIDs) > model.DreamTeamSize {
		return fmt.Errorf("%w: a lineup has at most %d players", ErrInvalid, model.DreamTeamSize)
	}
	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if id == "" {
			return fmt.Errorf("%w: empty player id in lineup", ErrInvalid)
		}
		if seen[id] {
			return fmt.Errorf("%w: player %s appears twice in the lineup", ErrInvalid, id)
		}
		seen[id] = true
	}

	if err := c.checkDreamTeamScope(ctx, scope, scopeID, teamType); err != nil {
		return err
	}
	return c.db.SetDreamTeam(ctx, scope, scopeID, teamType, playerIDs)
}

// checkDreamTeamScope makes sure the tour or season the lineup belongs to
// exists, since entries only reference it by id.
func (c *controller) checkDreamTeamScope(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) error {
	if teamType == model.TEAM_TYPE_UNKNOWN {
		return fmt.Errorf("%w: unknown dream team type", ErrInvalid)
	}

	var err error
	switch scope {
	case model.SCOPE_TOUR:
		_, err = c.db.GetTour(ctx, scopeID)
	case model.SCOPE_SEASON:
		_, err = c.db.GetSeason(ctx, scopeID)
	default:
		return fmt.Errorf("%w: unknown dream team scope", ErrInvalid)
	}
	return err
}
