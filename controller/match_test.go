package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/db/mockdb"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/stretchr/testify/mock"
)

func assertScore(t *testing.T, d db.DB, matchID string, home, away int) {
	t.Helper()
	m, err := d.GetMatch(context.Background(), matchID)
	if err != nil {
		t.Fatalf("error loading match: %v", err)
	}
	if m.HomeScore != home || m.AwayScore != away {
		t.Errorf("expected score %d:%d, got %d:%d", home, away, m.HomeScore, m.AwayScore)
	}
}

func TestAddPlayerStat_recomputesScore(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	goal := &model.PlayerStat{MatchID: l.Match.ID, PlayerID: l.Dias.ID, Goals: 1}
	if err := ctrl.AddPlayerStat(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 2)

	// An own goal counts for the other side.
	ownGoal := &model.PlayerStat{MatchID: l.Match.ID, PlayerID: l.Alan.ID, OwnGoals: 1}
	if err := ctrl.AddPlayerStat(ctx, ownGoal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 3)

	goal.Goals = 2
	if err := ctrl.UpdatePlayerStat(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 4)
	if goal.MatchID != l.Match.ID || goal.PlayerID != l.Dias.ID {
		t.Errorf("expected the stat to keep its match and player, got %+v", goal)
	}

	if err := ctrl.DeletePlayerStat(ctx, ownGoal.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 3)

	if err := ctrl.DeletePlayerStat(ctx, ownGoal.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestAddPlayerStat_invalid(t *testing.T) {
	tests := map[string]model.PlayerStat{
		"too many goals":        {Goals: model.MaxGoals + 1},
		"negative goals":        {Goals: -1},
		"too many own goals":    {OwnGoals: model.MaxOwnGoals + 1},
		"negative assists":      {Assists: -1},
		"too many yellow cards": {YellowCards: model.MaxYellowCards + 1},
		"too many red cards":    {RedCards: model.MaxRedCards + 1},
	}

	for name, stat := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			ctrl, err := New(testDB.Clock, mockDB, nil)
			if err != nil {
				t.Fatalf("error constructing controller: %v", err)
			}

			stat.MatchID = "m1"
			stat.PlayerID = "p1"
			if err := ctrl.AddPlayerStat(context.Background(), &stat); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			mockDB.AssertNotCalled(t, "AddPlayerStat", mock.Anything, mock.Anything)
		})
	}
}

func TestAddPlayerStat_recomputesOnce(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl, err := New(testDB.Clock, mockDB, nil)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	match := &model.Match{ID: "m1", TourID: "t1", HomeTeamID: "home", AwayTeamID: "away"}
	stat := &model.PlayerStat{MatchID: "m1", PlayerID: "p1", Goals: 2}
	rows := []model.PlayerStat{
		{ID: "s1", MatchID: "m1", PlayerID: "p1", Goals: 2, TourID: "t1", PlayerTeamID: "home"},
	}

	mockDB.On("AddPlayerStat", mock.Anything, stat).Return(nil)
	mockDB.On("GetMatch", mock.Anything, "m1").Return(match, nil)
	mockDB.On("GetTeam", mock.Anything, "home").Return(&model.Team{ID: "home"}, nil)
	mockDB.On("GetTeam", mock.Anything, "away").Return(&model.Team{ID: "away"}, nil)
	mockDB.On("ListPlayerStats", mock.Anything, db.StatFilter{MatchID: "m1"}).Return(rows, nil)
	mockDB.On("ListSubstitutions", mock.Anything, "t1").Return(nil, nil)
	mockDB.On("UpdateMatchScore", mock.Anything, "m1", 2, 0).Return(nil)

	if err := ctrl.AddPlayerStat(context.Background(), stat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertExpectations(t)
	mockDB.AssertNumberOfCalls(t, "UpdateMatchScore", 1)
	mockDB.AssertNumberOfCalls(t, "ListPlayerStats", 1)
}

func TestRecomputeMatchScore_unchanged(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl, err := New(testDB.Clock, mockDB, nil)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	match := &model.Match{ID: "m1", TourID: "t1", HomeTeamID: "home", AwayTeamID: "away", HomeScore: 1}
	rows := []model.PlayerStat{
		{ID: "s1", MatchID: "m1", PlayerID: "p1", Goals: 1, TourID: "t1", PlayerTeamID: "home"},
	}
	mockDB.On("GetMatch", mock.Anything, "m1").Return(match, nil)
	mockDB.On("GetTeam", mock.Anything, "home").Return(&model.Team{ID: "home"}, nil)
	mockDB.On("GetTeam", mock.Anything, "away").Return(&model.Team{ID: "away"}, nil)
	mockDB.On("ListPlayerStats", mock.Anything, db.StatFilter{MatchID: "m1"}).Return(rows, nil)
	mockDB.On("ListSubstitutions", mock.Anything, "t1").Return(nil, nil)

	m, err := ctrl.RecomputeMatchScore(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HomeScore != 1 || m.AwayScore != 0 {
		t.Errorf("unexpected score %d:%d", m.HomeScore, m.AwayScore)
	}
	mockDB.AssertNotCalled(t, "UpdateMatchScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeMatchScore_notFound(t *testing.T) {
	tests := map[string]func(m *mockdb.DB){
		"unknown match": func(m *mockdb.DB) {
			m.On("GetMatch", mock.Anything, "m1").Return(nil, db.ErrNotFound)
		},
		"unknown home team": func(m *mockdb.DB) {
			m.On("GetMatch", mock.Anything, "m1").Return(&model.Match{ID: "m1", TourID: "t1", HomeTeamID: "gone", AwayTeamID: "away"}, nil)
			m.On("GetTeam", mock.Anything, "gone").Return(nil, db.ErrNotFound)
			m.On("GetTeam", mock.Anything, "away").Return(&model.Team{ID: "away"}, nil)
		},
		"unknown away team": func(m *mockdb.DB) {
			m.On("GetMatch", mock.Anything, "m1").Return(&model.Match{ID: "m1", TourID: "t1", HomeTeamID: "home", AwayTeamID: "gone"}, nil)
			m.On("GetTeam", mock.Anything, "home").Return(&model.Team{ID: "home"}, nil)
			m.On("GetTeam", mock.Anything, "gone").Return(nil, db.ErrNotFound)
		},
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			ctrl, err := New(testDB.Clock, mockDB, nil)
			if err != nil {
				t.Fatalf("error constructing controller: %v", err)
			}
			setup(mockDB)
			mockDB.On("ListPlayerStats", mock.Anything, mock.Anything).Return([]model.PlayerStat{
				{ID: "s1", MatchID: "m1", PlayerID: "p1", Goals: 2, TourID: "t1", PlayerTeamID: "home"},
			}, nil).Maybe()
			mockDB.On("ListSubstitutions", mock.Anything, "t1").Return(nil, nil).Maybe()
			mockDB.On("UpdateMatchScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

			m, err := ctrl.RecomputeMatchScore(context.Background(), "m1")
			if !errors.Is(err, db.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
			if m != nil {
				t.Errorf("expected no match, got %+v", m)
			}
			mockDB.AssertNotCalled(t, "UpdateMatchScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubstitutions(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	// Without a substitution the legionnaire's goal belongs to nobody.
	legionGoal := &model.PlayerStat{MatchID: l.Match.ID, PlayerID: l.Legion.ID, Goals: 1}
	if err := ctrl.AddPlayerStat(ctx, legionGoal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 1)

	sub, err := ctrl.AddSubstitution(ctx, l.Tour.ID, l.Bek.ID, l.Legion.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.OriginalTeamID != l.Lions.ID {
		t.Errorf("expected original team %s, got '%s'", l.Lions.ID, sub.OriginalTeamID)
	}
	assertScore(t, tdb.DB, l.Match.ID, 3, 1)

	if _, err := ctrl.AddSubstitution(ctx, l.Tour.ID, l.Bek.ID, l.Erlan.ID); !errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	if err := ctrl.DeleteSubstitution(ctx, sub.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 1)
}

func TestAddSubstitution_invalid(t *testing.T) {
	tests := map[string]struct {
		original   string
		substitute string
	}{
		"same player":        {original: "p1", substitute: "p1"},
		"missing original":   {original: "", substitute: "p1"},
		"missing substitute": {original: "p1", substitute: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			ctrl, err := New(testDB.Clock, mockDB, nil)
			if err != nil {
				t.Fatalf("error constructing controller: %v", err)
			}

			_, err = ctrl.AddSubstitution(context.Background(), "t1", tc.original, tc.substitute)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			mockDB.AssertNotCalled(t, "AddSubstitution", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateMatch(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	if _, err := ctrl.CreateMatch(ctx, l.Tour.ID, l.Lions.ID, l.Lions.ID); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	m, err := ctrl.CreateMatch(ctx, l.Tour.ID, l.Sharks.ID, l.Lions.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HomeScore != 0 || m.AwayScore != 0 {
		t.Errorf("expected a new match to be 0:0, got %d:%d", m.HomeScore, m.AwayScore)
	}

	matches, err := ctrl.ListMatches(ctx, l.Tour.ID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches in the tour, got %d", len(matches))
	}
}

func TestConcurrentStatUpdates(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	m, err := ctrl.CreateMatch(ctx, l.Tour.ID, l.Lions.ID, l.Sharks.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			player := l.Alan.ID
			if i%2 == 1 {
				player = l.Dias.ID
			}
			errs <- ctrl.AddPlayerStat(ctx, &model.PlayerStat{MatchID: m.ID, PlayerID: player, Goals: 1})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assertScore(t, tdb.DB, m.ID, writers/2, writers/2)
	if n := ctrl.matchLocks.size(); n != 0 {
		t.Errorf("expected every match lock to be released, %d held", n)
	}
}

func TestRecomputeSeasonScores(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	// Simulate a lost update.
	if err := tdb.DB.UpdateMatchScore(ctx, l.Match.ID, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changed, err := ctrl.RecomputeSeasonScores(ctx, l.Season.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 1 {
		t.Errorf("expected 1 changed score, got %d", changed)
	}
	assertScore(t, tdb.DB, l.Match.ID, 2, 1)

	changed, err = ctrl.RecomputeSeasonScores(ctx, l.Season.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 0 {
		t.Errorf("expected nothing to change the second time, got %d", changed)
	}
}

func TestRunPeriodicScoreRecompute_shutdown(t *testing.T) {
	ctrl, _ := newTestController(t)

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go ctrl.RunPeriodicScoreRecompute(time.Hour, shutdown, wg)

	close(shutdown)
	wg.Wait()
}
