package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HFC06Atyrau/HFC/controller"
)

func TestPublicRoutes(t *testing.T) {
	ctrl, err := controller.New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	h := getRouter(ctrl, newRender(), Config{JWTSecret: []byte(testSecret)})
	l := testDB.League

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{path: "/health", status: http.StatusOK, contains: `"ok"`},
		{path: "/teams", status: http.StatusOK, contains: "Lions"},
		{path: "/teams/" + l.Sharks.ID, status: http.StatusOK, contains: "Sharks"},
		{path: "/players", status: http.StatusOK, contains: "Legion"},
		{path: "/players/" + l.Alan.ID, status: http.StatusOK, contains: `"mvp_tours"`},
		{path: "/seasons", status: http.StatusOK, contains: "Season 2024"},
		{path: "/seasons/current", status: http.StatusOK, contains: l.Season.ID},
		{path: "/seasons/" + l.Season.ID + "/standings", status: http.StatusOK, contains: "Lions"},
		{path: "/seasons/" + l.Season.ID + "/leaderboard?sort=goals", status: http.StatusOK, contains: "Alan"},
		{path: "/seasons/" + l.Season.ID + "/dream-team/dream", status: http.StatusOK},
		{path: "/leaderboard?sort=yellowCards", status: http.StatusOK, contains: "Erlan"},
		{path: "/tours?season=" + l.Season.ID, status: http.StatusOK, contains: l.Tour.ID},
		{path: "/tours/current", status: http.StatusOK, contains: l.Tour.ID},
		{path: "/tours/" + l.Tour.ID + "/standings", status: http.StatusOK},
		{path: "/tours/" + l.Tour.ID + "/matches", status: http.StatusOK, contains: l.Match.ID},
		{path: "/tours/" + l.Tour.ID + "/player-stats", status: http.StatusOK, contains: "Dias"},
		{path: "/tours/" + l.Tour.ID + "/teams", status: http.StatusOK},
		{path: "/tours/" + l.Tour.ID + "/substitutions", status: http.StatusOK},
		{path: "/tours/" + l.Tour.ID + "/dream-team/anti", status: http.StatusOK},
		{path: "/matches/" + l.Match.ID, status: http.StatusOK, contains: `"home_score":2`},
		{path: "/matches/" + l.Match.ID + "/stats", status: http.StatusOK, contains: "Bek"},

		{path: "/players/missing", status: http.StatusNotFound},
		{path: "/seasons/missing/standings", status: http.StatusNotFound},
		{path: "/tours/missing/matches", status: http.StatusNotFound},
		{path: "/matches/missing/stats", status: http.StatusNotFound},
		{path: "/tours/" + l.Tour.ID + "/dream-team/worst", status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := serve(t, h, http.MethodGet, tc.path, "", nil)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.contains) {
				t.Errorf("expected body to contain %q, got %s", tc.contains, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("expected a json response, got content type %q", ct)
			}
		})
	}
}

func TestMCPMount(t *testing.T) {
	ctrl, err := controller.New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	called := false
	mcp := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
	})
	h := getRouter(ctrl, newRender(), Config{MCPHandler: mcp})

	w := serve(t, h, http.MethodPost, "/mcp", "", map[string]string{"jsonrpc": "2.0"})
	if !called || w.Code != http.StatusAccepted {
		t.Errorf("expected the mcp handler to serve /mcp, got status %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	ctrl, err := controller.New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	h := getRouter(ctrl, newRender(), Config{CORSOrigins: []string{"https://hfc.example"}})

	tests := map[string]struct {
		origin string
		want   string
	}{
		"allowed":    {origin: "https://hfc.example", want: "https://hfc.example"},
		"disallowed": {origin: "https://evil.example", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "/teams", nil)
			if err != nil {
				t.Fatalf("error creating request: %v", err)
			}
			req.Header.Set("Origin", tc.origin)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Errorf("expected allow origin %q, got %q", tc.want, got)
			}
		})
	}
}
