package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const playerColumns = `id, name, photo_url, team_id, created`

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	return collect(rows, scanPlayer)
}

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		return nil, convertError(err)
	}
	return p, nil
}

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (id, name, photo_url, team_id, created)
					VALUES (@id, @name, @photoURL, @teamID, @created)`

	id := newID()
	created := db.now()
	args := namedArgsForPlayer(p)
	args["id"] = id
	args["created"] = created

	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting player: %w", convertError(err))
	}
	p.ID = id
	p.Created = created.Time
	return nil
}

func (db *postgresDB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	const query = `UPDATE players SET name=@name, photo_url=@photoURL, team_id=@teamID WHERE id=@id`

	args := namedArgsForPlayer(p)
	args["id"] = p.ID
	return execOne(ctx, db.pool, query, args)
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id string) error {
	const query = `DELETE FROM players WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id})
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var photoURL, teamID sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(&result.ID, &result.Name, &photoURL, &teamID, &created)
	if err != nil {
		return nil, err
	}

	result.PhotoURL = valueOrEmpty(photoURL)
	result.TeamID = valueOrEmpty(teamID)
	result.Created = created.Time
	return &result, nil
}

func namedArgsForPlayer(p *model.Player) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":     p.Name,
		"photoURL": nullString(p.PhotoURL),
		"teamID":   nullString(p.TeamID),
	}
}
