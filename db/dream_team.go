package db

import (
	"context"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const dreamTeamColumns = `d.id, d.scope, d.scope_id, d.player_id, d.team_type, d.position, d.created`

func (db *postgresDB) ListDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error) {
	const query = `SELECT ` + dreamTeamColumns + ` FROM dream_team_entries d
					WHERE d.scope=@scope AND d.scope_id=@scopeID AND d.team_type=@teamType
					ORDER BY d.position`

	args := pgx.NamedArgs{
		"scope":    string(scope),
		"scopeID":  scopeID,
		"teamType": string(teamType),
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing dream team: %w", err)
	}
	return collect(rows, scanDreamTeamEntry)
}

func (db *postgresDB) ListTourDreamTeams(ctx context.Context, seasonID string) ([]model.DreamTeamEntry, error) {
	const query = `SELECT ` + dreamTeamColumns + ` FROM dream_team_entries d
					JOIN tours t ON t.id = d.scope_id
					WHERE d.scope='tour' AND (@seasonID::text = '' OR t.season_id = @seasonID)
					ORDER BY t.number, d.team_type, d.position`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"seasonID": seasonID})
	if err != nil {
		return nil, fmt.Errorf("error listing tour dream teams: %w", err)
	}
	return collect(rows, scanDreamTeamEntry)
}

func (db *postgresDB) SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error {
	const clear = `DELETE FROM dream_team_entries WHERE scope=@scope AND scope_id=@scopeID AND team_type=@teamType`
	const insert = `INSERT INTO dream_team_entries (id, scope, scope_id, player_id, team_type, position, created)
					VALUES (@id, @scope, @scopeID, @playerID, @teamType, @position, @created)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"scope":    string(scope),
		"scopeID":  scopeID,
		"teamType": string(teamType),
		"created":  db.now(),
	}
	if _, err := tx.Exec(ctx, clear, args); err != nil {
		return fmt.Errorf("error clearing dream team: %w", err)
	}

	for i, playerID := range playerIDs {
		args["id"] = newID()
		args["playerID"] = playerID
		args["position"] = i + 1
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting dream team position %d: %w", i+1, convertError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting dream team transaction: %w", err)
	}
	return nil
}

func scanDreamTeamEntry(row pgx.Row) (*model.DreamTeamEntry, error) {
	var result model.DreamTeamEntry
	var scope, teamType string
	var position int
	var created pgtype.Timestamptz
	err := row.Scan(&result.ID, &scope, &result.ScopeID, &result.PlayerID, &teamType, &position, &created)
	if err != nil {
		return nil, err
	}
	result.Scope = model.ParseDreamTeamScope(scope)
	result.TeamType = model.ParseDreamTeamType(teamType)
	result.Position = model.Position(position)
	result.Created = created.Time
	return &result, nil
}
