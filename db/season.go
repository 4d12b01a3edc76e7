package db

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const seasonColumns = `id, name, is_current, created`

func (db *postgresDB) ListSeasons(ctx context.Context) ([]model.Season, error) {
	const query = `SELECT ` + seasonColumns + ` FROM seasons ORDER BY created DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing seasons: %w", err)
	}
	return collect(rows, scanSeason)
}

func (db *postgresDB) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	const query = `SELECT ` + seasonColumns + ` FROM seasons WHERE id=@id`

	s, err := scanSeason(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, convertError(err)
	}
	return s, nil
}

func (db *postgresDB) GetCurrentSeason(ctx context.Context) (*model.Season, error) {
	const query = `SELECT ` + seasonColumns + ` FROM seasons WHERE is_current`

	s, err := scanSeason(db.pool.QueryRow(ctx, query))
	if err != nil {
		return nil, convertError(err)
	}
	return s, nil
}

func (db *postgresDB) AddSeason(ctx context.Context, s *model.Season) error {
	const clear = `UPDATE seasons SET is_current=false WHERE is_current`
	const insert = `INSERT INTO seasons (id, name, is_current, created) VALUES (@id, @name, @isCurrent, @created)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if s.IsCurrent {
		if _, err := tx.Exec(ctx, clear); err != nil {
			return fmt.Errorf("error clearing current season: %w", err)
		}
	}

	id := newID()
	created := db.now()
	args := pgx.NamedArgs{
		"id":        id,
		"name":      s.Name,
		"isCurrent": s.IsCurrent,
		"created":   created,
	}
	if _, err := tx.Exec(ctx, insert, args); err != nil {
		return fmt.Errorf("error inserting season: %w", convertError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting season transaction: %w", err)
	}

	s.ID = id
	s.Created = created.Time
	return nil
}

func (db *postgresDB) RenameSeason(ctx context.Context, id, name string) error {
	const query = `UPDATE seasons SET name=@name WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id, "name": name})
}

func (db *postgresDB) SetCurrentSeason(ctx context.Context, id string) error {
	const clear = `UPDATE seasons SET is_current=false WHERE is_current AND id<>@id`
	const set = `UPDATE seasons SET is_current=true WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, clear, args); err != nil {
		return fmt.Errorf("error clearing current season: %w", err)
	}
	if err := execOne(ctx, tx, set, args); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting current season transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) DeleteSeason(ctx context.Context, id string) error {
	const deleteDreamTeams = `DELETE FROM dream_team_entries
								WHERE (scope='season' AND scope_id=@id)
								   OR (scope='tour' AND scope_id IN (SELECT id FROM tours WHERE season_id=@id))`
	const deleteSeason = `DELETE FROM seasons WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, deleteDreamTeams, args); err != nil {
		return fmt.Errorf("error deleting season dream teams: %w", err)
	}
	if err := execOne(ctx, tx, deleteSeason, args); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanSeason(row pgx.Row) (*model.Season, error) {
	var result model.Season
	var created pgtype.Timestamptz
	if err := row.Scan(&result.ID, &result.Name, &result.IsCurrent, &created); err != nil {
		return nil, err
	}
	result.Created = created.Time
	return &result, nil
}
