package web

import (
	"net/http"
	"time"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Mcp-Session-Id"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))

	if cfg.MCPHandler != nil {
		// MCP sessions stream, so they stay out of the request timeout.
		r.Handle("/mcp", cfg.MCPHandler)
		r.Handle("/mcp/*", cfg.MCPHandler)
	}

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(10 * time.Second))
		r.Use(authenticate(cfg.JWTSecret))

		r.Get("/health", healthHandler(render))
		r.Get("/leaderboard", leaderboardHandler(ctrl, render))

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", listTeamsHandler(ctrl, render))
			r.Get("/{teamID}", getTeamHandler(ctrl, render))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin(ctrl, render))
				r.Post("/", createTeamHandler(ctrl, render))
				r.Patch("/{teamID}", updateTeamHandler(ctrl, render))
				r.Delete("/{teamID}", deleteTeamHandler(ctrl, render))
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", listPlayersHandler(ctrl, render))
			r.Get("/{playerID}", playerProfileHandler(ctrl, render))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin(ctrl, render))
				r.Post("/", createPlayerHandler(ctrl, render))
				r.Patch("/{playerID}", updatePlayerHandler(ctrl, render))
				r.Delete("/{playerID}", deletePlayerHandler(ctrl, render))
				r.Post("/{playerID}/photo", uploadPhotoHandler(ctrl, render))
				r.Delete("/{playerID}/photo", deletePhotoHandler(ctrl, render))
			})
		})

		r.Route("/seasons", func(r chi.Router) {
			r.Get("/", listSeasonsHandler(ctrl, render))
			r.Get("/current", currentSeasonHandler(ctrl, render))
			r.Get("/{seasonID}", getSeasonHandler(ctrl, render))
			r.Get("/{seasonID}/standings", seasonStandingsHandler(ctrl, render))
			r.Get("/{seasonID}/leaderboard", leaderboardHandler(ctrl, render))
			r.Get("/{seasonID}/dream-team/{type}", getDreamTeamHandler(ctrl, render, seasonScope))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin(ctrl, render))
				r.Post("/", createSeasonHandler(ctrl, render))
				r.Patch("/{seasonID}", renameSeasonHandler(ctrl, render))
				r.Post("/{seasonID}/current", setCurrentSeasonHandler(ctrl, render))
				r.Delete("/{seasonID}", deleteSeasonHandler(ctrl, render))
				r.Post("/{seasonID}/tours", createTourHandler(ctrl, render))
				r.Put("/{seasonID}/dream-team/{type}", setDreamTeamHandler(ctrl, render, seasonScope))
				r.Post("/{seasonID}/recompute", recomputeSeasonHandler(ctrl, render))
			})
		})

		r.Route("/tours", func(r chi.Router) {
			r.Get("/", listToursHandler(ctrl, render))
			r.Get("/current", currentTourHandler(ctrl, render))
			r.Get("/{tourID}", getTourHandler(ctrl, render))
			r.Get("/{tourID}/standings", tourStandingsHandler(ctrl, render))
			r.Get("/{tourID}/matches", tourMatchesHandler(ctrl, render))
			r.Get("/{tourID}/player-stats", tourPlayerStatsHandler(ctrl, render))
			r.Get("/{tourID}/teams", listTourTeamsHandler(ctrl, render))
			r.Get("/{tourID}/substitutions", listSubstitutionsHandler(ctrl, render))
			r.Get("/{tourID}/dream-team/{type}", getDreamTeamHandler(ctrl, render, tourScope))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin(ctrl, render))
				r.Patch("/{tourID}", updateTourHandler(ctrl, render))
				r.Delete("/{tourID}", deleteTourHandler(ctrl, render))
				r.Post("/{tourID}/teams", addTourTeamHandler(ctrl, render))
				r.Patch("/{tourID}/teams/{tourTeamID}", updateTourTeamHandler(ctrl, render))
				r.Delete("/{tourID}/teams/{tourTeamID}", removeTourTeamHandler(ctrl, render))
				r.Post("/{tourID}/matches", createMatchHandler(ctrl, render))
				r.Post("/{tourID}/substitutions", addSubstitutionHandler(ctrl, render))
				r.Delete("/{tourID}/substitutions/{substitutionID}", deleteSubstitutionHandler(ctrl, render))
				r.Put("/{tourID}/dream-team/{type}", setDreamTeamHandler(ctrl, render, tourScope))
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/{matchID}", getMatchHandler(ctrl, render))
			r.Get("/{matchID}/stats", matchStatsHandler(ctrl, render))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin(ctrl, render))
				r.Delete("/{matchID}", deleteMatchHandler(ctrl, render))
				r.Post("/{matchID}/stats", addStatHandler(ctrl, render))
				r.Post("/{matchID}/recompute", recomputeMatchHandler(ctrl, render))
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Use(requireAdmin(ctrl, render))
			r.Put("/{statID}", updateStatHandler(ctrl, render))
			r.Delete("/{statID}", deleteStatHandler(ctrl, render))
		})

		r.Route("/admin/roles", func(r chi.Router) {
			r.Use(requireOwner(ctrl, render))
			r.Get("/", listRolesHandler(ctrl, render))
			r.Post("/", assignAdminHandler(ctrl, render))
			r.Delete("/{userID}", revokeAdminHandler(ctrl, render))
		})
	})

	return r
}

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
