package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
)

func TestTourStandings(t *testing.T) {
	ctrl, err := New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	l := testDB.League

	table, err := ctrl.TourStandings(context.Background(), l.Tour.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}

	lions, sharks := table[0], table[1]
	if lions.TeamID != l.Lions.ID || lions.Points != 3 || lions.Wins != 1 || lions.GoalDiff != 1 {
		t.Errorf("unexpected first row %+v", lions)
	}
	if lions.Color != model.COLOR_RED || lions.TeamName != "Lions" {
		t.Errorf("expected team details on the row, got %+v", lions)
	}
	if sharks.TeamID != l.Sharks.ID || sharks.Points != 0 || sharks.Losses != 1 {
		t.Errorf("unexpected second row %+v", sharks)
	}

	if _, err := ctrl.TourStandings(context.Background(), "no-such-tour"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSeasonStandings(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	// A team without matches is left out of the season table.
	if _, err := ctrl.CreateTeam(ctx, "Eagles", model.COLOR_GREEN); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table, err := ctrl.SeasonStandings(ctx, l.Season.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}
	if table[0].TeamID != l.Lions.ID || table[0].Played != 1 {
		t.Errorf("unexpected leader %+v", table[0])
	}
}

func TestLeaderboard(t *testing.T) {
	ctrl, err := New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	l := testDB.League
	ctx := context.Background()

	tests := map[string]struct {
		seasonID string
		sortBy   model.SortColumn
		first    string
	}{
		"season by points":  {seasonID: l.Season.ID, sortBy: model.SORT_POINTS, first: l.Alan.ID},
		"all time by cards": {seasonID: "", sortBy: model.SORT_YELLOW_CARDS, first: l.Erlan.ID},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rows, err := ctrl.Leaderboard(ctx, tc.seasonID, tc.sortBy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rows) != 5 {
				t.Fatalf("expected a row for all 5 players, got %d", len(rows))
			}
			if rows[0].PlayerID != tc.first {
				t.Errorf("expected %s first, got %+v", tc.first, rows[0])
			}
		})
	}

	rows, err := ctrl.Leaderboard(ctx, l.Season.ID, model.SORT_POINTS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range rows {
		switch r.PlayerID {
		case l.Alan.ID:
			if r.Games != 1 || r.GoalsAndAssists() != 2 || r.TeamName != "Lions" {
				t.Errorf("unexpected row for Alan %+v", r)
			}
		case l.Legion.ID:
			if r.Games != 0 || r.TeamName != model.TeamNameLegionnaire {
				t.Errorf("unexpected row for the legionnaire %+v", r)
			}
		}
	}

	if _, err := ctrl.Leaderboard(ctx, "no-such-season", model.SORT_POINTS); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLeaderboard_substitutesAndDreamTeam(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	if _, err := ctrl.AddSubstitution(ctx, l.Tour.ID, l.Bek.ID, l.Legion.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctrl.SetDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM, []string{l.Legion.ID, l.Alan.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Season lineups don't count towards dream team selections.
	if err := ctrl.SetDreamTeam(ctx, model.SCOPE_SEASON, l.Season.ID, model.TEAM_TYPE_DREAM, []string{l.Alan.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := ctrl.Leaderboard(ctx, l.Season.ID, model.SORT_DREAM_TEAM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range rows {
		switch r.PlayerID {
		case l.Bek.ID:
			// Bek's stat is left out for the tour he was replaced in.
			if r.Games != 0 || r.Goals != 0 {
				t.Errorf("unexpected row for Bek %+v", r)
			}
		case l.Legion.ID:
			if r.Games != 1 || r.DreamTeamCount != 1 {
				t.Errorf("unexpected row for the substitute %+v", r)
			}
		case l.Alan.ID:
			if r.DreamTeamCount != 1 {
				t.Errorf("expected one dream team selection for Alan, got %d", r.DreamTeamCount)
			}
		}
	}
}

func TestPlayerProfile(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	if err := ctrl.SetTourMVP(ctx, l.Tour.ID, l.Alan.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := ctrl.PlayerProfile(ctx, l.Alan.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Team == nil || profile.Team.ID != l.Lions.ID {
		t.Errorf("expected the Lions as team, got %+v", profile.Team)
	}
	if profile.Totals.Goals != 1 || profile.Totals.Assists != 1 || profile.Totals.MVPCount != 1 {
		t.Errorf("unexpected totals %+v", profile.Totals)
	}
	if len(profile.MVPTours) != 1 || profile.MVPTours[0].ID != l.Tour.ID {
		t.Errorf("unexpected MVP tours %+v", profile.MVPTours)
	}

	legion, err := ctrl.PlayerProfile(ctx, l.Legion.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if legion.Team != nil || legion.MVPTours == nil {
		t.Errorf("unexpected legionnaire profile %+v", legion)
	}

	if _, err := ctrl.PlayerProfile(ctx, "no-such-player"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTourPlayerStats(t *testing.T) {
	ctrl, err := New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	rows, err := ctrl.TourPlayerStats(context.Background(), testDB.League.Tour.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("expected the 4 seeded stats, got %d", len(rows))
	}
}
