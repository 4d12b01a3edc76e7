package db

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	const query = `SELECT id, user_id, role, created FROM user_roles ORDER BY created`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing roles: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*model.UserRole, error) {
		var r model.UserRole
		var role string
		var created pgtype.Timestamptz
		if err := row.Scan(&r.ID, &r.UserID, &role, &created); err != nil {
			return nil, err
		}
		r.Role = model.ParseRole(role)
		r.Created = created.Time
		return &r, nil
	})
}

func (db *postgresDB) GetUserRoles(ctx context.Context, userID string) ([]model.Role, error) {
	const query = `SELECT role FROM user_roles WHERE user_id=@userID ORDER BY role`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, fmt.Errorf("error looking up roles for %s: %w", userID, err)
	}
	return collect(rows, func(row pgx.Row) (*model.Role, error) {
		var role string
		if err := row.Scan(&role); err != nil {
			return nil, err
		}
		r := model.ParseRole(role)
		return &r, nil
	})
}

func (db *postgresDB) AddRole(ctx context.Context, userID string, role model.Role) error {
	const query = `INSERT INTO user_roles (id, user_id, role, created) VALUES (@id, @userID, @role, @created)`

	args := pgx.NamedArgs{
		"id":      newID(),
		"userID":  userID,
		"role":    string(role),
		"created": db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error adding role: %w", convertError(err))
	}
	return nil
}

func (db *postgresDB) DeleteRole(ctx context.Context, userID string, role model.Role) error {
	const query = `DELETE FROM user_roles WHERE user_id=@userID AND role=@role`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"userID": userID, "role": string(role)})
}
