package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const substitutionSelect = `SELECT s.id, s.tour_id, s.original_player_id, s.substitute_player_id, s.created, p.team_id
							FROM tour_substitutions s
							JOIN players p ON p.id = s.original_player_id`

func (db *postgresDB) ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error) {
	const query = substitutionSelect + `
					WHERE (@tourID::text = '' OR s.tour_id = @tourID)
					ORDER BY s.created`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"tourID": tourID})
	if err != nil {
		return nil, fmt.Errorf("error listing substitutions: %w", err)
	}
	return collect(rows, scanSubstitution)
}

func (db *postgresDB) GetSubstitution(ctx context.Context, id string) (*model.TourSubstitution, error) {
	const query = substitutionSelect + ` WHERE s.id=@id`

	s, err := scanSubstitution(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, convertError(err)
	}
	return s, nil
}

func (db *postgresDB) AddSubstitution(ctx context.Context, s *model.TourSubstitution) error {
	const query = `INSERT INTO tour_substitutions (id, tour_id, original_player_id, substitute_player_id, created)
					VALUES (@id, @tourID, @originalID, @substituteID, @created)`

	id := newID()
	created := db.now()
	args := pgx.NamedArgs{
		"id":           id,
		"tourID":       s.TourID,
		"originalID":   s.OriginalPlayerID,
		"substituteID": s.SubstitutePlayerID,
		"created":      created,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting substitution: %w", convertError(err))
	}
	s.ID = id
	s.Created = created.Time
	return nil
}

func (db *postgresDB) DeleteSubstitution(ctx context.Context, id string) error {
	const query = `DELETE FROM tour_substitutions WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id})
}

func scanSubstitution(row pgx.Row) (*model.TourSubstitution, error) {
	var result model.TourSubstitution
	var teamID sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(&result.ID, &result.TourID, &result.OriginalPlayerID, &result.SubstitutePlayerID, &created, &teamID)
	if err != nil {
		return nil, err
	}
	result.Created = created.Time
	result.OriginalTeamID = valueOrEmpty(teamID)
	return &result, nil
}
