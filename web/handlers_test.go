package web

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/HFC06Atyrau/HFC/controller/mockcontroller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/HFC06Atyrau/HFC/storage"
	"github.com/stretchr/testify/mock"
)

func TestStatHandlers_recomputeScore(t *testing.T) {
	s := newTestServer(t, false)
	l := s.tdb.League

	w := s.do(t, http.MethodPost, "/tours/"+l.Tour.ID+"/matches", adminUser, map[string]string{
		"home_team_id": l.Lions.ID,
		"away_team_id": l.Sharks.ID,
	})
	expectStatus(t, w, http.StatusCreated)
	match := decodeBody[model.Match](t, w)

	w = s.do(t, http.MethodPost, "/matches/"+match.ID+"/stats", adminUser, map[string]any{
		"player_id": l.Alan.ID,
		"goals":     2,
	})
	expectStatus(t, w, http.StatusCreated)

	w = s.do(t, http.MethodPost, "/matches/"+match.ID+"/stats", adminUser, map[string]any{
		"player_id": l.Dias.ID,
		"own_goals": 1,
	})
	expectStatus(t, w, http.StatusCreated)
	diasStat := decodeBody[model.PlayerStat](t, w)

	w = s.do(t, http.MethodGet, "/matches/"+match.ID, "", nil)
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[model.Match](t, w); got.HomeScore != 3 || got.AwayScore != 0 {
		t.Errorf("expected 3:0, got %d:%d", got.HomeScore, got.AwayScore)
	}

	// Turning the own goal into a real goal moves it to the away side.
	w = s.do(t, http.MethodPut, "/stats/"+diasStat.ID, adminUser, map[string]any{"goals": 1})
	expectStatus(t, w, http.StatusOK)
	w = s.do(t, http.MethodGet, "/matches/"+match.ID, "", nil)
	if got := decodeBody[model.Match](t, w); got.HomeScore != 2 || got.AwayScore != 1 {
		t.Errorf("expected 2:1, got %d:%d", got.HomeScore, got.AwayScore)
	}

	w = s.do(t, http.MethodDelete, "/stats/"+diasStat.ID, adminUser, nil)
	expectStatus(t, w, http.StatusNoContent)
	w = s.do(t, http.MethodPost, "/matches/"+match.ID+"/recompute", adminUser, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[model.Match](t, w); got.HomeScore != 2 || got.AwayScore != 0 {
		t.Errorf("expected 2:0, got %d:%d", got.HomeScore, got.AwayScore)
	}
}

func TestHandlers_validation(t *testing.T) {
	s := newTestServer(t, false)
	l := s.tdb.League

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{name: "too many goals", method: http.MethodPost, path: "/matches/" + l.Match.ID + "/stats",
			body: map[string]any{"player_id": l.Alan.ID, "goals": 3}, status: http.StatusBadRequest},
		{name: "two red cards", method: http.MethodPost, path: "/matches/" + l.Match.ID + "/stats",
			body: map[string]any{"player_id": l.Alan.ID, "red_cards": 2}, status: http.StatusBadRequest},
		{name: "negative assists", method: http.MethodPut, path: "/stats/any",
			body: map[string]any{"assists": -1}, status: http.StatusBadRequest},
		{name: "missing player", method: http.MethodPost, path: "/matches/" + l.Match.ID + "/stats",
			body: map[string]any{"goals": 1}, status: http.StatusBadRequest},
		{name: "unknown stat", method: http.MethodPut, path: "/stats/missing",
			body: map[string]any{"goals": 1}, status: http.StatusNotFound},
		{name: "recompute unknown match", method: http.MethodPost, path: "/matches/missing/recompute",
			status: http.StatusNotFound},
		{name: "same teams", method: http.MethodPost, path: "/tours/" + l.Tour.ID + "/matches",
			body: map[string]string{"home_team_id": l.Lions.ID, "away_team_id": l.Lions.ID}, status: http.StatusBadRequest},
		{name: "unknown color", method: http.MethodPost, path: "/teams",
			body: map[string]string{"name": "Eagles", "color": "pink"}, status: http.StatusBadRequest},
		{name: "empty name", method: http.MethodPost, path: "/players",
			body: map[string]string{"name": ""}, status: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: "/seasons",
			body: map[string]string{"name": "S", "year": "2025"}, status: http.StatusBadRequest},
		{name: "self substitution", method: http.MethodPost, path: "/tours/" + l.Tour.ID + "/substitutions",
			body: map[string]string{"original_player_id": l.Dias.ID, "substitute_player_id": l.Dias.ID}, status: http.StatusBadRequest},
		{name: "lineup too long", method: http.MethodPut, path: "/tours/" + l.Tour.ID + "/dream-team/dream",
			body: map[string][]string{"player_ids": {"a", "b", "c", "d", "e", "f"}}, status: http.StatusBadRequest},
		{name: "repeated lineup player", method: http.MethodPut, path: "/tours/" + l.Tour.ID + "/dream-team/dream",
			body: map[string][]string{"player_ids": {l.Alan.ID, l.Alan.ID}}, status: http.StatusBadRequest},
		{name: "unknown tour team color", method: http.MethodPatch, path: "/tours/" + l.Tour.ID + "/teams/x",
			body: map[string]string{"color": ""}, status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, tc.method, tc.path, adminUser, tc.body)
			expectStatus(t, w, tc.status)
			if !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("expected an error body, got %s", w.Body.String())
			}
		})
	}
}

func TestSubstitutionHandlers(t *testing.T) {
	s := newTestServer(t, false)
	l := s.tdb.League
	path := "/tours/" + l.Tour.ID + "/substitutions"
	body := map[string]string{"original_player_id": l.Dias.ID, "substitute_player_id": l.Legion.ID}

	w := s.do(t, http.MethodPost, path, adminUser, body)
	expectStatus(t, w, http.StatusCreated)
	sub := decodeBody[model.TourSubstitution](t, w)
	if sub.OriginalTeamID != l.Sharks.ID {
		t.Errorf("expected original team %s, got %s", l.Sharks.ID, sub.OriginalTeamID)
	}

	w = s.do(t, http.MethodPost, path, adminUser, body)
	expectStatus(t, w, http.StatusConflict)

	w = s.do(t, http.MethodGet, path, "", nil)
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[[]model.TourSubstitution](t, w); len(got) != 1 {
		t.Errorf("expected 1 substitution, got %d", len(got))
	}

	w = s.do(t, http.MethodDelete, path+"/"+sub.ID, adminUser, nil)
	expectStatus(t, w, http.StatusNoContent)
}

func TestTourHandlers(t *testing.T) {
	s := newTestServer(t, false)
	l := s.tdb.League

	w := s.do(t, http.MethodPost, "/tours/"+l.Tour.ID+"/teams", adminUser, map[string]string{"team_id": l.Lions.ID})
	expectStatus(t, w, http.StatusCreated)
	tt := decodeBody[model.TourTeam](t, w)
	if tt.Color != model.COLOR_RED {
		t.Errorf("expected the team color to be used, got %s", tt.Color)
	}

	w = s.do(t, http.MethodPatch, "/tours/"+l.Tour.ID+"/teams/"+tt.ID, adminUser, map[string]string{"color": "green"})
	expectStatus(t, w, http.StatusNoContent)

	w = s.do(t, http.MethodPost, "/tours/"+l.Tour.ID+"/teams", adminUser, map[string]string{"team_id": l.Lions.ID})
	expectStatus(t, w, http.StatusConflict)

	w = s.do(t, http.MethodPatch, "/tours/"+l.Tour.ID, adminUser, map[string]string{
		"mvp_player_id": l.Alan.ID,
		"video_url":     "https://video.example/tour-1",
	})
	expectStatus(t, w, http.StatusOK)
	tour := decodeBody[model.Tour](t, w)
	if tour.MVPPlayerID != l.Alan.ID || tour.VideoURL != "https://video.example/tour-1" {
		t.Errorf("tour was not updated: %+v", tour)
	}

	w = s.do(t, http.MethodPut, "/tours/"+l.Tour.ID+"/dream-team/dream", adminUser, map[string][]string{
		"player_ids": {l.Alan.ID, l.Dias.ID},
	})
	expectStatus(t, w, http.StatusOK)
	entries := decodeBody[[]model.DreamTeamEntry](t, w)
	if len(entries) != 2 || entries[0].PlayerID != l.Alan.ID || entries[0].Position != model.POS_GOALKEEPER {
		t.Errorf("unexpected lineup: %+v", entries)
	}

	w = s.do(t, http.MethodGet, "/players/"+l.Alan.ID, "", nil)
	expectStatus(t, w, http.StatusOK)
	profile := decodeBody[model.PlayerProfile](t, w)
	if profile.Totals.MVPCount != 1 || profile.Totals.DreamTeamCount != 1 {
		t.Errorf("expected one mvp and one dream team, got %+v", profile.Totals)
	}

	w = s.do(t, http.MethodPost, "/seasons/"+l.Season.ID+"/tours", adminUser, nil)
	expectStatus(t, w, http.StatusCreated)
	if next := decodeBody[model.Tour](t, w); next.Number != l.Tour.Number+1 {
		t.Errorf("expected tour number %d, got %d", l.Tour.Number+1, next.Number)
	}

	w = s.do(t, http.MethodDelete, "/tours/"+l.Tour.ID, adminUser, nil)
	expectStatus(t, w, http.StatusNoContent)
	w = s.do(t, http.MethodGet, "/matches/"+l.Match.ID, "", nil)
	expectStatus(t, w, http.StatusNotFound)
}

func TestSeasonHandlers(t *testing.T) {
	s := newTestServer(t, false)
	l := s.tdb.League

	w := s.do(t, http.MethodPost, "/seasons", adminUser, map[string]string{"name": "Season 2025"})
	expectStatus(t, w, http.StatusCreated)
	next := decodeBody[model.Season](t, w)
	if !next.IsCurrent {
		t.Errorf("expected a new season to become current")
	}

	w = s.do(t, http.MethodPatch, "/seasons/"+next.ID, adminUser, map[string]string{"name": "Season 2025/26"})
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[model.Season](t, w); got.Name != "Season 2025/26" {
		t.Errorf("expected the season to be renamed, got %s", got.Name)
	}

	w = s.do(t, http.MethodPost, "/seasons/"+l.Season.ID+"/current", adminUser, nil)
	expectStatus(t, w, http.StatusOK)
	w = s.do(t, http.MethodGet, "/seasons/current", "", nil)
	if got := decodeBody[model.Season](t, w); got.ID != l.Season.ID {
		t.Errorf("expected %s to be current, got %s", l.Season.ID, got.ID)
	}

	w = s.do(t, http.MethodPost, "/seasons/"+l.Season.ID+"/recompute", adminUser, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[map[string]int](t, w); got["changed"] != 0 {
		t.Errorf("expected no score changes, got %d", got["changed"])
	}

	w = s.do(t, http.MethodDelete, "/seasons/"+next.ID, adminUser, nil)
	expectStatus(t, w, http.StatusNoContent)
	w = s.do(t, http.MethodGet, "/seasons/"+next.ID, "", nil)
	expectStatus(t, w, http.StatusNotFound)
}

func TestPlayerHandlers(t *testing.T) {
	s := newTestServer(t, false)
	l := s.tdb.League

	w := s.do(t, http.MethodPost, "/players", adminUser, map[string]string{"name": "Farid"})
	expectStatus(t, w, http.StatusCreated)
	p := decodeBody[model.Player](t, w)
	if !p.IsLegionnaire() {
		t.Errorf("expected a player without a team to be a legionnaire")
	}

	w = s.do(t, http.MethodPatch, "/players/"+p.ID, adminUser, map[string]string{"team_id": l.Sharks.ID})
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[model.Player](t, w); got.TeamID != l.Sharks.ID || got.Name != "Farid" {
		t.Errorf("unexpected player after update: %+v", got)
	}

	w = s.do(t, http.MethodPatch, "/players/"+p.ID, adminUser, map[string]string{"team_id": "missing"})
	expectStatus(t, w, http.StatusNotFound)

	w = s.do(t, http.MethodDelete, "/players/"+p.ID, adminUser, nil)
	expectStatus(t, w, http.StatusNoContent)
}

func TestUploadPhotoHandler(t *testing.T) {
	tests := map[string]struct {
		storage     bool
		field       string
		contentType string
		status      int
	}{
		"success":          {storage: true, field: "photo", contentType: "image/png", status: http.StatusOK},
		"wrong field":      {storage: true, field: "file", contentType: "image/png", status: http.StatusBadRequest},
		"not an image":     {storage: true, field: "photo", contentType: "text/csv", status: http.StatusBadRequest},
		"storage disabled": {storage: false, field: "photo", contentType: "image/png", status: http.StatusServiceUnavailable},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t, tc.storage)
			alan := s.tdb.League.Alan

			req := newPhotoRequest(t, "/players/"+alan.ID+"/photo", tc.field, tc.contentType, []byte("image bytes"))
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, adminUser, time.Now().Add(time.Hour)))
			w := httptest.NewRecorder()
			s.handler.ServeHTTP(w, req)
			expectStatus(t, w, tc.status)

			if tc.status != http.StatusOK {
				return
			}
			p := decodeBody[model.Player](t, w)
			obj, ok := s.tc.Storage().Object(storage.DefaultBucket, storage.KeyFromURL(p.PhotoURL))
			if !ok {
				t.Fatalf("photo %s was not stored", p.PhotoURL)
			}
			if string(obj.Data) != "image bytes" {
				t.Errorf("unexpected stored data %q", obj.Data)
			}
		})
	}
}

func newPhotoRequest(t *testing.T, path, field, contentType string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="photo"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatalf("error creating part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("error writing part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("error closing writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandlers_internalError(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("ListTeams", mock.Anything).Return(nil, errors.New("connection refused"))
	h := getRouter(ctrl, newRender(), Config{})

	w := serve(t, h, http.MethodGet, "/teams", "", nil)
	expectStatus(t, w, http.StatusInternalServerError)

	// Internal details stay in the logs.
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("error details leaked: %s", w.Body.String())
	}
	ctrl.AssertExpectations(t)
}

func TestLeaderboardHandler_sort(t *testing.T) {
	tests := map[string]model.SortColumn{
		"":           model.SORT_POINTS,
		"goals":      model.SORT_GOALS,
		"ownGoals":   model.SORT_OWN_GOALS,
		"dream_team": model.SORT_DREAM_TEAM,
		"nonsense":   model.SORT_POINTS,
		"RED_CARDS":  model.SORT_RED_CARDS,
	}

	for sort, want := range tests {
		t.Run(sort, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("Leaderboard", mock.Anything, "s1", want).Return([]model.PlayerTotals{}, nil)
			h := getRouter(ctrl, newRender(), Config{})

			w := serve(t, h, http.MethodGet, "/seasons/s1/leaderboard?sort="+sort, "", nil)
			expectStatus(t, w, http.StatusOK)
			ctrl.AssertExpectations(t)
		})
	}
}
