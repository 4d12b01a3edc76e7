package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Every stat read joins in the tour of the match and the player's name and
// team, since the aggregations need all three.
const statSelect = `SELECT s.id, s.match_id, s.player_id, s.goals, s.own_goals, s.assists,
						s.yellow_cards, s.red_cards, s.created, m.tour_id, p.name, p.team_id
					FROM player_stats s
					JOIN matches m ON m.id = s.match_id
					JOIN tours t ON t.id = m.tour_id
					JOIN players p ON p.id = s.player_id`

func (db *postgresDB) ListPlayerStats(ctx context.Context, f StatFilter) ([]model.PlayerStat, error) {
	const query = statSelect + `
					WHERE (@matchID::text = '' OR s.match_id = @matchID)
					  AND (@tourID::text = '' OR m.tour_id = @tourID)
					  AND (@seasonID::text = '' OR t.season_id = @seasonID)
					  AND (@playerID::text = '' OR s.player_id = @playerID)
					ORDER BY t.number, m.created, s.created`

	args := pgx.NamedArgs{
		"matchID":  f.MatchID,
		"tourID":   f.TourID,
		"seasonID": f.SeasonID,
		"playerID": f.PlayerID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing player stats: %w", err)
	}
	return collect(rows, scanPlayerStat)
}

func (db *postgresDB) GetPlayerStat(ctx context.Context, id string) (*model.PlayerStat, error) {
	const query = statSelect + ` WHERE s.id=@id`

	s, err := scanPlayerStat(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, convertError(err)
	}
	return s, nil
}

func (db *postgresDB) AddPlayerStat(ctx context.Context, s *model.PlayerStat) error {
	const query = `INSERT INTO player_stats (id, match_id, player_id, goals, own_goals, assists, yellow_cards, red_cards, created)
					VALUES (@id, @matchID, @playerID, @goals, @ownGoals, @assists, @yellowCards, @redCards, @created)`

	id := newID()
	created := db.now()
	args := namedArgsForPlayerStat(s)
	args["id"] = id
	args["matchID"] = s.MatchID
	args["playerID"] = s.PlayerID
	args["created"] = created

	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting player stat: %w", convertError(err))
	}
	s.ID = id
	s.Created = created.Time
	return nil
}

func (db *postgresDB) UpdatePlayerStat(ctx context.Context, s *model.PlayerStat) error {
	const query = `UPDATE player_stats SET goals=@goals, own_goals=@ownGoals, assists=@assists,
						yellow_cards=@yellowCards, red_cards=@redCards
					WHERE id=@id`

	args := namedArgsForPlayerStat(s)
	args["id"] = s.ID
	return execOne(ctx, db.pool, query, args)
}

func (db *postgresDB) DeletePlayerStat(ctx context.Context, id string) error {
	const query = `DELETE FROM player_stats WHERE id=@id`
	return execOne(ctx, db.pool, query, pgx.NamedArgs{"id": id})
}

func scanPlayerStat(row pgx.Row) (*model.PlayerStat, error) {
	var result model.PlayerStat
	var teamID sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.PlayerID,
		&result.Goals,
		&result.OwnGoals,
		&result.Assists,
		&result.YellowCards,
		&result.RedCards,
		&created,
		&result.TourID,
		&result.PlayerName,
		&teamID)
	if err != nil {
		return nil, err
	}
	result.Created = created.Time
	result.PlayerTeamID = valueOrEmpty(teamID)
	return &result, nil
}

func namedArgsForPlayerStat(s *model.PlayerStat) pgx.NamedArgs {
	return pgx.NamedArgs{
		"goals":       s.Goals,
		"ownGoals":    s.OwnGoals,
		"assists":     s.Assists,
		"yellowCards": s.YellowCards,
		"redCards":    s.RedCards,
	}
}
