package stats

import (
	"testing"

	"github.com/HFC06Atyrau/HFC/model"
)

func TestEffectiveTeamOf(t *testing.T) {
	players := []model.Player{
		{ID: "a1", TeamID: "A"},
		{ID: "b1", TeamID: "B"},
		{ID: "leg1"},
		{ID: "leg2"},
		{ID: "leg3"},
	}
	subs := []model.TourSubstitution{
		{TourID: "t1", OriginalPlayerID: "a1", SubstitutePlayerID: "leg1"},
		{TourID: "t2", OriginalPlayerID: "b1", SubstitutePlayerID: "leg1"},
		// leg3 replaces leg1, who has no team of their own. Not followed.
		{TourID: "t1", OriginalPlayerID: "leg1", SubstitutePlayerID: "leg3"},
		// A rostered player listed as a substitute keeps their own team.
		{TourID: "t1", OriginalPlayerID: "a1", SubstitutePlayerID: "b1"},
	}
	r := NewResolver(players, subs)

	tests := map[string]struct {
		playerID string
		tourID   string
		want     Attribution
	}{
		"own team":                  {playerID: "a1", tourID: "t1", want: Attribution{TeamID: "A", Reason: OwnTeam}},
		"own team beats substitute": {playerID: "b1", tourID: "t1", want: Attribution{TeamID: "B", Reason: OwnTeam}},
		"substitute in t1":          {playerID: "leg1", tourID: "t1", want: Attribution{TeamID: "A", Reason: Substitution}},
		"substitute in t2":          {playerID: "leg1", tourID: "t2", want: Attribution{TeamID: "B", Reason: Substitution}},
		"no substitution in tour":   {playerID: "leg1", tourID: "t3", want: Attribution{Reason: Unattributed}},
		"orphan legionnaire":        {playerID: "leg2", tourID: "t1", want: Attribution{Reason: Unattributed}},
		"chained substitution":      {playerID: "leg3", tourID: "t1", want: Attribution{Reason: Unattributed}},
		"unknown player":            {playerID: "nobody", tourID: "t1", want: Attribution{Reason: Unattributed}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := r.EffectiveTeamOf(tc.playerID, tc.tourID)
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestEffectiveTeamOf_joinedOriginalTeam(t *testing.T) {
	// The original player is not in the players list, but the substitution
	// row carries the team from a join.
	subs := []model.TourSubstitution{
		{TourID: "t1", OriginalPlayerID: "x", SubstitutePlayerID: "leg", OriginalTeamID: "X"},
	}
	r := NewResolver(nil, subs)

	got := r.EffectiveTeamOf("leg", "t1")
	if got.TeamID != "X" || got.Reason != Substitution {
		t.Errorf("expected substitution to team X, got %+v", got)
	}
}

func TestEffectiveTeamOf_duplicateSubstituteLastWins(t *testing.T) {
	players := []model.Player{{ID: "a1", TeamID: "A"}, {ID: "b1", TeamID: "B"}, {ID: "leg"}}
	subs := []model.TourSubstitution{
		{TourID: "t1", OriginalPlayerID: "a1", SubstitutePlayerID: "leg"},
		{TourID: "t1", OriginalPlayerID: "b1", SubstitutePlayerID: "leg"},
	}
	r := NewResolver(players, subs)

	if got := r.EffectiveTeamOf("leg", "t1"); got.TeamID != "B" {
		t.Errorf("expected the last substitution to win, got %+v", got)
	}
}

func TestReasonString(t *testing.T) {
	tests := map[Reason]string{
		Unattributed: "unattributed",
		OwnTeam:      "own team",
		Substitution: "substitution",
	}
	for r, want := range tests {
		if r.String() != want {
			t.Errorf("expected '%s', got '%s'", want, r.String())
		}
	}
}
