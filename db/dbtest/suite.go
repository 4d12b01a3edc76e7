// Package dbtest holds behaviour tests shared by every db.DB implementation.
package dbtest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
)

var ctr = int32(0)

// unique returns a name that won't collide between tests sharing a database.
func unique(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, atomic.AddInt32(&ctr, 1))
}

// Run exercises the implementation. The database may be shared with other
// tests, so every test creates its own rows.
func Run(t *testing.T, d db.DB) {
	tests := map[string]func(*testing.T, db.DB){
		"teams":                  testTeams,
		"players":                testPlayers,
		"current season":         testCurrentSeason,
		"tour numbering":         testTourNumbering,
		"tour teams":             testTourTeams,
		"matches and stats":      testMatchesAndStats,
		"substitutions":          testSubstitutions,
		"dream teams":            testDreamTeams,
		"roles":                  testRoles,
		"delete season cascades": testDeleteSeasonCascades,
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			fn(t, d)
		})
	}
}

// League is a small set of rows most tests build on.
type League struct {
	Season  *model.Season
	Tour    *model.Tour
	Home    *model.Team
	Away    *model.Team
	HomeP   *model.Player
	AwayP   *model.Player
	Legion  *model.Player
	Match   *model.Match
}

func newLeague(t *testing.T, d db.DB) *League {
	t.Helper()
	ctx := context.Background()

	l := &League{
		Season: &model.Season{Name: unique("Season")},
		Home:   &model.Team{Name: unique("Home"), Color: model.COLOR_RED},
		Away:   &model.Team{Name: unique("Away"), Color: model.COLOR_BLUE},
	}
	must(t, d.AddSeason(ctx, l.Season))
	must(t, d.AddTeam(ctx, l.Home))
	must(t, d.AddTeam(ctx, l.Away))

	tour, err := d.AddTour(ctx, l.Season.ID)
	must(t, err)
	l.Tour = tour

	l.HomeP = &model.Player{Name: unique("Home player"), TeamID: l.Home.ID}
	l.AwayP = &model.Player{Name: unique("Away player"), TeamID: l.Away.ID}
	l.Legion = &model.Player{Name: unique("Legionnaire")}
	must(t, d.AddPlayer(ctx, l.HomeP))
	must(t, d.AddPlayer(ctx, l.AwayP))
	must(t, d.AddPlayer(ctx, l.Legion))

	l.Match = &model.Match{TourID: tour.ID, HomeTeamID: l.Home.ID, AwayTeamID: l.Away.ID}
	must(t, d.AddMatch(ctx, l.Match))
	return l
}

func testTeams(t *testing.T, d db.DB) {
	ctx := context.Background()

	team := &model.Team{Name: unique("Team")}
	must(t, d.AddTeam(ctx, team))
	if team.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if team.Created.IsZero() {
		t.Errorf("expected created time to be set")
	}

	got, err := d.GetTeam(ctx, team.ID)
	must(t, err)
	if got.Name != team.Name || got.Color != model.COLOR_BLACK {
		t.Errorf("unexpected team %+v", got)
	}

	team.Name = unique("Renamed")
	team.Color = model.COLOR_GREEN
	must(t, d.UpdateTeam(ctx, team))
	got, err = d.GetTeam(ctx, team.ID)
	must(t, err)
	if got.Name != team.Name || got.Color != model.COLOR_GREEN {
		t.Errorf("update not saved, got %+v", got)
	}

	teams, err := d.ListTeams(ctx)
	must(t, err)
	if !containsID(teams, team.ID, func(t model.Team) string { return t.ID }) {
		t.Errorf("team missing from list")
	}

	must(t, d.DeleteTeam(ctx, team.ID))
	if _, err := d.GetTeam(ctx, team.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := d.DeleteTeam(ctx, team.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
	if err := d.UpdateTeam(ctx, team); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating a missing team, got %v", err)
	}
}

func testPlayers(t *testing.T, d db.DB) {
	ctx := context.Background()

	team := &model.Team{Name: unique("Team")}
	must(t, d.AddTeam(ctx, team))

	p := &model.Player{Name: unique("Player"), TeamID: team.ID}
	must(t, d.AddPlayer(ctx, p))

	got, err := d.GetPlayer(ctx, p.ID)
	must(t, err)
	if got.Name != p.Name || got.TeamID != team.ID || got.PhotoURL != "" {
		t.Errorf("unexpected player %+v", got)
	}

	p.PhotoURL = "https://example.com/photo.jpg"
	must(t, d.UpdatePlayer(ctx, p))
	got, err = d.GetPlayer(ctx, p.ID)
	must(t, err)
	if got.PhotoURL != p.PhotoURL {
		t.Errorf("photo not saved, got '%s'", got.PhotoURL)
	}

	// Deleting the team turns the player into a legionnaire.
	must(t, d.DeleteTeam(ctx, team.ID))
	got, err = d.GetPlayer(ctx, p.ID)
	must(t, err)
	if !got.IsLegionnaire() {
		t.Errorf("expected player to lose their team, got %+v", got)
	}

	bad := &model.Player{Name: unique("Player"), TeamID: "no-such-team"}
	if err := d.AddPlayer(ctx, bad); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing team, got %v", err)
	}

	must(t, d.DeletePlayer(ctx, p.ID))
	if _, err := d.GetPlayer(ctx, p.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func testCurrentSeason(t *testing.T, d db.DB) {
	ctx := context.Background()

	s1 := &model.Season{Name: unique("Season"), IsCurrent: true}
	must(t, d.AddSeason(ctx, s1))
	s2 := &model.Season{Name: unique("Season"), IsCurrent: true}
	must(t, d.AddSeason(ctx, s2))

	cur, err := d.GetCurrentSeason(ctx)
	must(t, err)
	if cur.ID != s2.ID {
		t.Errorf("expected the newest season to be current, got %s", cur.Name)
	}

	must(t, d.SetCurrentSeason(ctx, s1.ID))
	cur, err = d.GetCurrentSeason(ctx)
	must(t, err)
	if cur.ID != s1.ID {
		t.Errorf("expected %s to be current, got %s", s1.Name, cur.Name)
	}

	seasons, err := d.ListSeasons(ctx)
	must(t, err)
	current := 0
	for _, s := range seasons {
		if s.IsCurrent {
			current++
		}
	}
	if current != 1 {
		t.Errorf("expected exactly one current season, found %d", current)
	}

	// A failed switch leaves the current season alone.
	if err := d.SetCurrentSeason(ctx, "no-such-season"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	cur, err = d.GetCurrentSeason(ctx)
	must(t, err)
	if cur.ID != s1.ID {
		t.Errorf("current season changed after a failed switch")
	}

	newName := unique("Renamed")
	must(t, d.RenameSeason(ctx, s2.ID, newName))
	got, err := d.GetSeason(ctx, s2.ID)
	must(t, err)
	if got.Name != newName || got.IsCurrent {
		t.Errorf("unexpected season after rename %+v", got)
	}
}

func testTourNumbering(t *testing.T, d db.DB) {
	ctx := context.Background()

	season := &model.Season{Name: unique("Season")}
	must(t, d.AddSeason(ctx, season))

	var tours []*model.Tour
	for i := 1; i <= 3; i++ {
		tour, err := d.AddTour(ctx, season.ID)
		must(t, err)
		if tour.Number != i {
			t.Errorf("expected tour number %d, got %d", i, tour.Number)
		}
		tours = append(tours, tour)
	}

	// Removing a tour in the middle doesn't free its number.
	must(t, d.DeleteTour(ctx, tours[1].ID))
	next, err := d.AddTour(ctx, season.ID)
	must(t, err)
	if next.Number != 4 {
		t.Errorf("expected tour number 4, got %d", next.Number)
	}

	list, err := d.ListTours(ctx, season.ID)
	must(t, err)
	want := []int{4, 3, 1}
	if len(list) != len(want) {
		t.Fatalf("expected %d tours, got %d", len(want), len(list))
	}
	for i, n := range want {
		if list[i].Number != n {
			t.Errorf("position %d: expected tour %d, got %d", i, n, list[i].Number)
		}
	}

	// Numbers follow the highest remaining tour, so removing the last one
	// hands its number to the next tour.
	must(t, d.DeleteTour(ctx, next.ID))
	again, err := d.AddTour(ctx, season.ID)
	must(t, err)
	if again.Number != 4 {
		t.Errorf("expected tour number 4 after deleting the last tour, got %d", again.Number)
	}

	// Another season starts from 1.
	other := &model.Season{Name: unique("Season")}
	must(t, d.AddSeason(ctx, other))
	first, err := d.AddTour(ctx, other.ID)
	must(t, err)
	if first.Number != 1 {
		t.Errorf("expected first tour of a new season to be 1, got %d", first.Number)
	}

	if _, err := d.AddTour(ctx, "no-such-season"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	first.VideoURL = "https://video.example.com/1"
	must(t, d.UpdateTour(ctx, first))
	got, err := d.GetTour(ctx, first.ID)
	must(t, err)
	if got.VideoURL != first.VideoURL || got.MVPPlayerID != "" {
		t.Errorf("unexpected tour after update %+v", got)
	}
}

func testTourTeams(t *testing.T, d db.DB) {
	ctx := context.Background()
	l := newLeague(t, d)

	tt := &model.TourTeam{TourID: l.Tour.ID, TeamID: l.Home.ID, Color: model.COLOR_GREEN}
	must(t, d.AddTourTeam(ctx, tt))

	dup := &model.TourTeam{TourID: l.Tour.ID, TeamID: l.Home.ID}
	if err := d.AddTourTeam(ctx, dup); !errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	must(t, d.UpdateTourTeamColor(ctx, tt.ID, model.COLOR_BLACK))
	list, err := d.ListTourTeams(ctx, l.Tour.ID)
	must(t, err)
	if len(list) != 1 {
		t.Fatalf("expected one tour team, got %d", len(list))
	}
	if list[0].Color != model.COLOR_BLACK || list[0].TeamName != l.Home.Name {
		t.Errorf("unexpected tour team %+v", list[0])
	}

	must(t, d.DeleteTourTeam(ctx, tt.ID))
	list, err = d.ListTourTeams(ctx, l.Tour.ID)
	must(t, err)
	if len(list) != 0 {
		t.Errorf("expected no tour teams, got %d", len(list))
	}
}

func testMatchesAndStats(t *testing.T, d db.DB) {
	ctx := context.Background()
	l := newLeague(t, d)

	s1 := &model.PlayerStat{MatchID: l.Match.ID, PlayerID: l.HomeP.ID, Goals: 2, Assists: 1}
	s2 := &model.PlayerStat{MatchID: l.Match.ID, PlayerID: l.Legion.ID, Goals: 1, YellowCards: 1}
	must(t, d.AddPlayerStat(ctx, s1))
	must(t, d.AddPlayerStat(ctx, s2))

	stats, err := d.ListPlayerStats(ctx, db.StatFilter{MatchID: l.Match.ID})
	must(t, err)
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	for _, s := range stats {
		if s.TourID != l.Tour.ID {
			t.Errorf("expected tour id to be joined, got '%s'", s.TourID)
		}
	}
	if stats[0].PlayerTeamID != l.Home.ID || stats[0].PlayerName != l.HomeP.Name {
		t.Errorf("expected player details to be joined, got %+v", stats[0])
	}
	if stats[1].PlayerTeamID != "" {
		t.Errorf("expected the legionnaire to have no team, got '%s'", stats[1].PlayerTeamID)
	}

	bySeason, err := d.ListPlayerStats(ctx, db.StatFilter{SeasonID: l.Season.ID})
	must(t, err)
	if len(bySeason) != 2 {
		t.Errorf("expected 2 stats in the season, got %d", len(bySeason))
	}
	byPlayer, err := d.ListPlayerStats(ctx, db.StatFilter{PlayerID: l.Legion.ID})
	must(t, err)
	if len(byPlayer) != 1 || byPlayer[0].ID != s2.ID {
		t.Errorf("expected only the legionnaire's stat, got %+v", byPlayer)
	}

	s1.Goals = 1
	s1.OwnGoals = 1
	must(t, d.UpdatePlayerStat(ctx, s1))
	got, err := d.GetPlayerStat(ctx, s1.ID)
	must(t, err)
	if got.Goals != 1 || got.OwnGoals != 1 || got.Assists != 1 || got.TourID != l.Tour.ID {
		t.Errorf("unexpected stat after update %+v", got)
	}

	must(t, d.UpdateMatchScore(ctx, l.Match.ID, 3, 1))
	m, err := d.GetMatch(ctx, l.Match.ID)
	must(t, err)
	if m.HomeScore != 3 || m.AwayScore != 1 {
		t.Errorf("expected 3:1, got %d:%d", m.HomeScore, m.AwayScore)
	}
	if err := d.UpdateMatchScore(ctx, "no-such-match", 1, 1); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	matches, err := d.ListMatches(ctx, db.MatchFilter{SeasonID: l.Season.ID})
	must(t, err)
	if len(matches) != 1 || matches[0].ID != l.Match.ID {
		t.Errorf("unexpected matches for season %+v", matches)
	}

	must(t, d.DeletePlayerStat(ctx, s2.ID))
	if _, err := d.GetPlayerStat(ctx, s2.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Deleting the match removes its stats.
	must(t, d.DeleteMatch(ctx, l.Match.ID))
	stats, err = d.ListPlayerStats(ctx, db.StatFilter{MatchID: l.Match.ID})
	must(t, err)
	if len(stats) != 0 {
		t.Errorf("expected stats to be removed with the match, got %d", len(stats))
	}
}

func testSubstitutions(t *testing.T, d db.DB) {
	ctx := context.Background()
	l := newLeague(t, d)

	sub := &model.TourSubstitution{TourID: l.Tour.ID, OriginalPlayerID: l.HomeP.ID, SubstitutePlayerID: l.Legion.ID}
	must(t, d.AddSubstitution(ctx, sub))

	dup := &model.TourSubstitution{TourID: l.Tour.ID, OriginalPlayerID: l.HomeP.ID, SubstitutePlayerID: l.AwayP.ID}
	if err := d.AddSubstitution(ctx, dup); !errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	subs, err := d.ListSubstitutions(ctx, l.Tour.ID)
	must(t, err)
	if len(subs) != 1 {
		t.Fatalf("expected one substitution, got %d", len(subs))
	}
	if subs[0].OriginalTeamID != l.Home.ID {
		t.Errorf("expected original team to be joined, got '%s'", subs[0].OriginalTeamID)
	}

	got, err := d.GetSubstitution(ctx, sub.ID)
	must(t, err)
	if got.SubstitutePlayerID != l.Legion.ID {
		t.Errorf("unexpected substitution %+v", got)
	}

	must(t, d.DeleteSubstitution(ctx, sub.ID))
	subs, err = d.ListSubstitutions(ctx, l.Tour.ID)
	must(t, err)
	if len(subs) != 0 {
		t.Errorf("expected no substitutions, got %d", len(subs))
	}
}

func testDreamTeams(t *testing.T, d db.DB) {
	ctx := context.Background()
	l := newLeague(t, d)

	lineup := []string{l.HomeP.ID, l.AwayP.ID, l.Legion.ID}
	must(t, d.SetDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM, lineup))
	must(t, d.SetDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_ANTI, []string{l.Legion.ID}))

	// Replace the lineup, it should not append.
	lineup = []string{l.AwayP.ID, l.HomeP.ID}
	must(t, d.SetDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM, lineup))

	got, err := d.ListDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM)
	must(t, err)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for i, e := range got {
		if e.PlayerID != lineup[i] || e.Position != model.Position(i+1) {
			t.Errorf("position %d: unexpected entry %+v", i+1, e)
		}
		if e.Scope != model.SCOPE_TOUR || e.TeamType != model.TEAM_TYPE_DREAM {
			t.Errorf("unexpected scope or type %+v", e)
		}
	}

	must(t, d.SetDreamTeam(ctx, model.SCOPE_SEASON, l.Season.ID, model.TEAM_TYPE_DREAM, []string{l.HomeP.ID}))

	all, err := d.ListTourDreamTeams(ctx, l.Season.ID)
	must(t, err)
	if len(all) != 3 {
		t.Errorf("expected the 3 tour scoped entries, got %d", len(all))
	}

	if err := d.SetDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM, []string{"no-such-player"}); err == nil {
		t.Errorf("expected an error for an unknown player")
	}
	got, err = d.ListDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM)
	must(t, err)
	if len(got) != 2 {
		t.Errorf("failed replace should keep the old lineup, got %d entries", len(got))
	}
}

func testRoles(t *testing.T, d db.DB) {
	ctx := context.Background()
	user := unique("user")

	must(t, d.AddRole(ctx, user, model.ROLE_ADMIN))
	if err := d.AddRole(ctx, user, model.ROLE_ADMIN); !errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	must(t, d.AddRole(ctx, user, model.ROLE_OWNER))

	roles, err := d.GetUserRoles(ctx, user)
	must(t, err)
	if len(roles) != 2 {
		t.Errorf("expected 2 roles, got %v", roles)
	}

	all, err := d.ListRoles(ctx)
	must(t, err)
	found := 0
	for _, r := range all {
		if r.UserID == user {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected 2 roles for user in list, got %d", found)
	}

	must(t, d.DeleteRole(ctx, user, model.ROLE_OWNER))
	if err := d.DeleteRole(ctx, user, model.ROLE_OWNER); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	roles, err = d.GetUserRoles(ctx, user)
	must(t, err)
	if len(roles) != 1 || roles[0] != model.ROLE_ADMIN {
		t.Errorf("expected only admin left, got %v", roles)
	}
}

func testDeleteSeasonCascades(t *testing.T, d db.DB) {
	ctx := context.Background()
	l := newLeague(t, d)

	must(t, d.AddPlayerStat(ctx, &model.PlayerStat{MatchID: l.Match.ID, PlayerID: l.HomeP.ID, Goals: 1}))
	must(t, d.SetDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM, []string{l.HomeP.ID}))

	must(t, d.DeleteSeason(ctx, l.Season.ID))

	if _, err := d.GetTour(ctx, l.Tour.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected tour to be deleted, got %v", err)
	}
	if _, err := d.GetMatch(ctx, l.Match.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected match to be deleted, got %v", err)
	}
	entries, err := d.ListDreamTeam(ctx, model.SCOPE_TOUR, l.Tour.ID, model.TEAM_TYPE_DREAM)
	must(t, err)
	if len(entries) != 0 {
		t.Errorf("expected dream team entries to be deleted, got %d", len(entries))
	}
	// Players and teams outlive the season.
	if _, err := d.GetPlayer(ctx, l.HomeP.ID); err != nil {
		t.Errorf("player should survive season deletion: %v", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func containsID[T any](items []T, id string, getID func(T) string) bool {
	for _, i := range items {
		if getID(i) == id {
			return true
		}
	}
	return false
}
