package controller

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
)

func (c *controller) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	return c.db.ListRoles(ctx)
}

func (c *controller) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return c.hasRole(ctx, userID, model.ROLE_ADMIN, model.ROLE_OWNER)
}

func (c *controller) IsOwner(ctx context.Context, userID string) (bool, error) {
	return c.hasRole(ctx, userID, model.ROLE_OWNER)
}

func (c *controller) hasRole(ctx context.Context, userID string, wanted ...model.Role) (bool, error) {
	if userID == "" {
		return false, nil
	}
	roles, err := c.db.GetUserRoles(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		for _, w := range wanted {
			if r == w {
				return true, nil
			}
		}
	}
	return false, nil
}

func (c *controller) AssignAdmin(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalid)
	}
	return c.db.AddRole(ctx, userID, model.ROLE_ADMIN)
}

func (c *controller) RevokeAdmin(ctx context.Context, userID string) error {
	return c.db.DeleteRole(ctx, userID, model.ROLE_ADMIN)
}
