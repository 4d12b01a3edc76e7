package db

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const matchColumns = `m.id, m.tour_id, m.home_team_id, m.away_team_id, m.home_score, m.away_score, m.created`

func (db *postgresDB) ListMatches(ctx context.Context, f MatchFilter) ([]model.Match, error) {
	const query = `SELECT ` + matchColumns + `
					FROM matches m
					JOIN tours t ON t.id = m.tour_id
					WHERE (@tourID::text = '' OR m.tour_id = @tourID)
					  AND (@seasonID::text = '' OR t.season_id = @seasonID)
					ORDER BY t.number, m.created`

	args := pgx.NamedArgs{
		"tourID":   f.TourID,
		"seasonID": f.SeasonID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing matches: %w", err)
	}
	return collect(rows, scanMatch)
}

func (db *postgresDB) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches m WHERE m.id=@id`

	m, err := scanMatch(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, convertError(err)
	}
	return m, nil
}

func (db *postgresDB) AddMatch(ctx context.Context, m *model.Match) error {
	const query = `INSERT INTO matches (id, tour_id, home_team_id, away_team_id, home_score, away_score, created)
					VALUES (@id, @tourID, @homeTeamID, @awayTeamID, @homeScore, @awayScore, @created)`

	id := newID()
	created := db.now()
	args := pgx.NamedArgs{
		"id":         id,
		"tourID":     m.TourID,
		"homeTeamID": m.HomeTeamID,
		"awayTeamID": m.AwayTeamID,
		"homeScore":  m.HomeScore,
		"awayScore":  m.AwayScore,
		"created":    created,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting match: %w", convertError(err))
	}
	m.ID = id
	m.Created = created.Time
	return nil
}

func (db *postgresDB) UpdateMatchScore(ctx context.Context, id string, home, away int) error {
	const query = `UPDATE matches SET home_score=@home, away_score=@away WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id, "home": home, "away": away})
}

func (db *postgresDB) DeleteMatch(ctx context.Context, id string) error {
	const query = `DELETE FROM matches WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id})
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var result model.Match
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.TourID,
		&result.HomeTeamID,
		&result.AwayTeamID,
		&result.HomeScore,
		&result.AwayScore,
		&created)
	if err != nil {
		return nil, err
	}
	result.Created = created.Time
	return &result, nil
}
