package testutils

import (
	"context"
	"log"
	"time"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/db/sqlitedb"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/itbasis/go-clock"
)

// League is the seeded data every TestDB starts with: one current season with
// a single tour where Lions beat Sharks 2:1.
//
//	Lions: Alan (1 goal, 1 assist), Bek (1 goal)
//	Sharks: Dias (1 goal), Erlan (yellow card)
//	Legion: a legionnaire with no stats
type League struct {
	Season *model.Season
	Tour   *model.Tour
	Lions  *model.Team
	Sharks *model.Team
	Alan   *model.Player
	Bek    *model.Player
	Dias   *model.Player
	Erlan  *model.Player
	Legion *model.Player
	Match  *model.Match
}

type TestDB struct {
	DB     db.DB
	Clock  *clock.Mock
	League *League
}

// NewTestDB returns a fresh in-memory database seeded with a League.
func NewTestDB() *TestDB {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := clock.NewMock()
	clock.Add(24 * 365 * time.Hour)

	d, err := sqlitedb.NewInMemory(ctx, clock)
	if err != nil {
		log.Fatalf("error creating in-memory db: %v", err)
	}

	league, err := InsertTestLeague(ctx, d)
	if err != nil {
		log.Fatalf("error populating in-memory db: %v", err)
	}

	return &TestDB{
		DB:     d,
		Clock:  clock,
		League: league,
	}
}

func (db *TestDB) Shutdown() {}

func InsertTestLeague(ctx context.Context, d db.DB) (*League, error) {
	l := &League{
		Season: &model.Season{Name: "Season 2024", IsCurrent: true},
		Lions:  &model.Team{Name: "Lions", Color: model.COLOR_RED},
		Sharks: &model.Team{Name: "Sharks", Color: model.COLOR_BLUE},
	}

	if err := d.AddSeason(ctx, l.Season); err != nil {
		return nil, err
	}
	for _, t := range []*model.Team{l.Lions, l.Sharks} {
		if err := d.AddTeam(ctx, t); err != nil {
			return nil, err
		}
	}

	tour, err := d.AddTour(ctx, l.Season.ID)
	if err != nil {
		return nil, err
	}
	l.Tour = tour

	l.Alan = &model.Player{Name: "Alan", TeamID: l.Lions.ID}
	l.Bek = &model.Player{Name: "Bek", TeamID: l.Lions.ID}
	l.Dias = &model.Player{Name: "Dias", TeamID: l.Sharks.ID}
	l.Erlan = &model.Player{Name: "Erlan", TeamID: l.Sharks.ID}
	l.Legion = &model.Player{Name: "Legion"}
	for _, p := range []*model.Player{l.Alan, l.Bek, l.Dias, l.Erlan, l.Legion} {
		if err := d.AddPlayer(ctx, p); err != nil {
			return nil, err
		}
	}

	l.Match = &model.Match{TourID: tour.ID, HomeTeamID: l.Lions.ID, AwayTeamID: l.Sharks.ID, HomeScore: 2, AwayScore: 1}
	if err := d.AddMatch(ctx, l.Match); err != nil {
		return nil, err
	}

	stats := []*model.PlayerStat{
		{MatchID: l.Match.ID, PlayerID: l.Alan.ID, Goals: 1, Assists: 1},
		{MatchID: l.Match.ID, PlayerID: l.Bek.ID, Goals: 1},
		{MatchID: l.Match.ID, PlayerID: l.Dias.ID, Goals: 1},
		{MatchID: l.Match.ID, PlayerID: l.Erlan.ID, YellowCards: 1},
	}
	for _, s := range stats {
		if err := d.AddPlayerStat(ctx, s); err != nil {
			return nil, err
		}
	}

	return l, nil
}
