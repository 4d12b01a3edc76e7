package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const tourColumns = `id, season_id, number, video_url, mvp_player_id, created`

func (db *postgresDB) ListTours(ctx context.Context, seasonID string) ([]model.Tour, error) {
	const all = `SELECT ` + tourColumns + ` FROM tours ORDER BY number DESC, created DESC`
	const bySeason = `SELECT ` + tourColumns + ` FROM tours WHERE season_id=@seasonID ORDER BY number DESC`

	var rows pgx.Rows
	var err error
	if seasonID == "" {
		rows, err = db.pool.Query(ctx, all)
	} else {
		rows, err = db.pool.Query(ctx, bySeason, pgx.NamedArgs{"seasonID": seasonID})
	}
	if err != nil {
		return nil, fmt.Errorf("error listing tours: %w", err)
	}
	return collect(rows, scanTour)
}

func (db *postgresDB) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	const query = `SELECT ` + tourColumns + ` FROM tours WHERE id=@id`

	t, err := scanTour(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, convertError(err)
	}
	return t, nil
}

func (db *postgresDB) AddTour(ctx context.Context, seasonID string) (*model.Tour, error) {
	// Locking the season row serializes tour creation within a season so two
	// admins can't race for the same number.
	const lock = `SELECT id FROM seasons WHERE id=@seasonID FOR UPDATE`
	const insert = `INSERT INTO tours (id, season_id, number, created)
					SELECT @id::text, @seasonID::text, COALESCE(MAX(number), 0) + 1, @created::timestamptz
					FROM tours WHERE season_id=@seasonID
					RETURNING ` + tourColumns

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"id":       newID(),
		"seasonID": seasonID,
		"created":  db.now(),
	}

	var locked string
	if err := tx.QueryRow(ctx, lock, args).Scan(&locked); err != nil {
		return nil, convertError(err)
	}

	t, err := scanTour(tx.QueryRow(ctx, insert, args))
	if err != nil {
		return nil, fmt.Errorf("error inserting tour: %w", convertError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error commiting tour transaction: %w", err)
	}
	return t, nil
}

func (db *postgresDB) UpdateTour(ctx context.Context, t *model.Tour) error {
	const query = `UPDATE tours SET video_url=@videoURL, mvp_player_id=@mvpPlayerID WHERE id=@id`

	args := pgx.NamedArgs{
		"id":          t.ID,
		"videoURL":    nullString(t.VideoURL),
		"mvpPlayerID": nullString(t.MVPPlayerID),
	}
	return execOne(ctx, db.pool, query, args)
}

func (db *postgresDB) DeleteTour(ctx context.Context, id string) error {
	const deleteDreamTeams = `DELETE FROM dream_team_entries WHERE scope='tour' AND scope_id=@id`
	const deleteTour = `DELETE FROM tours WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, deleteDreamTeams, args); err != nil {
		return fmt.Errorf("error deleting tour dream teams: %w", err)
	}
	if err := execOne(ctx, tx, deleteTour, args); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanTour(row pgx.Row) (*model.Tour, error) {
	var result model.Tour
	var videoURL, mvp sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(&result.ID, &result.SeasonID, &result.Number, &videoURL, &mvp, &created)
	if err != nil {
		return nil, err
	}
	result.VideoURL = valueOrEmpty(videoURL)
	result.MVPPlayerID = valueOrEmpty(mvp)
	result.Created = created.Time
	return &result, nil
}
