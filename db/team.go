package db

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, name, color, created FROM teams ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	return collect(rows, scanTeam)
}

func (db *postgresDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	const query = `SELECT id, name, color, created FROM teams WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		return nil, convertError(err)
	}
	return t, nil
}

func (db *postgresDB) AddTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO teams (id, name, color, created) VALUES (@id, @name, @color, @created)`

	id := newID()
	created := db.now()
	args := pgx.NamedArgs{
		"id":      id,
		"name":    t.Name,
		"color":   &DBTeamColor{color: t.Color},
		"created": created,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting team: %w", convertError(err))
	}

	t.ID = id
	t.Created = created.Time
	if t.Color == model.COLOR_UNKNOWN {
		t.Color = model.COLOR_BLACK
	}
	return nil
}

func (db *postgresDB) UpdateTeam(ctx context.Context, t *model.Team) error {
	const query = `UPDATE teams SET name=@name, color=@color WHERE id=@id`

	args := pgx.NamedArgs{
		"id":    t.ID,
		"name":  t.Name,
		"color": &DBTeamColor{color: t.Color},
	}
	return execOne(ctx, db.pool, query, args)
}

func (db *postgresDB) DeleteTeam(ctx context.Context, id string) error {
	const query = `DELETE FROM teams WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id})
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var color DBTeamColor
	var created pgtype.Timestamptz
	err := row.Scan(&result.ID, &result.Name, &color, &created)
	if err != nil {
		return nil, err
	}
	result.Color = color.color
	result.Created = created.Time
	return &result, nil
}

func (db *postgresDB) ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error) {
	const query = `SELECT tt.id, tt.tour_id, tt.team_id, tt.color, t.name
					FROM tour_teams tt
					JOIN teams t ON t.id = tt.team_id
					WHERE tt.tour_id=@tourID
					ORDER BY t.name`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"tourID": tourID})
	if err != nil {
		return nil, fmt.Errorf("error listing tour teams: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*model.TourTeam, error) {
		var tt model.TourTeam
		var color DBTeamColor
		if err := row.Scan(&tt.ID, &tt.TourID, &tt.TeamID, &color, &tt.TeamName); err != nil {
			return nil, err
		}
		tt.Color = color.color
		return &tt, nil
	})
}

func (db *postgresDB) AddTourTeam(ctx context.Context, tt *model.TourTeam) error {
	const query = `INSERT INTO tour_teams (id, tour_id, team_id, color) VALUES (@id, @tourID, @teamID, @color)`

	id := newID()
	args := pgx.NamedArgs{
		"id":     id,
		"tourID": tt.TourID,
		"teamID": tt.TeamID,
		"color":  &DBTeamColor{color: tt.Color},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting tour team: %w", convertError(err))
	}
	tt.ID = id
	return nil
}

func (db *postgresDB) UpdateTourTeamColor(ctx context.Context, id string, color model.TeamColor) error {
	const query = `UPDATE tour_teams SET color=@color WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id, "color": &DBTeamColor{color: color}})
}

func (db *postgresDB) DeleteTourTeam(ctx context.Context, id string) error {
	const query = `DELETE FROM tour_teams WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id})
}
