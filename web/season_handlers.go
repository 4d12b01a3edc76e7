package web

import (
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func listSeasonsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasons, err := ctrl.ListSeasons(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, seasons)
	}
}

func currentSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ctrl.CurrentSeason(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func getSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ctrl.GetSeason(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func seasonStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.SeasonStandings(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

// leaderboardHandler serves both /leaderboard (all time) and
// /seasons/{seasonID}/leaderboard.
func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy := model.ParseSortColumn(r.URL.Query().Get("sort"))
		rows, err := ctrl.Leaderboard(r.Context(), chi.URLParam(r, "seasonID"), sortBy)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, rows)
	}
}

func createSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req seasonRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		s, err := ctrl.CreateSeason(r.Context(), req.Name)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, s)
	}
}

func renameSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req seasonRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		id := chi.URLParam(r, "seasonID")
		if err := ctrl.RenameSeason(r.Context(), id, req.Name); err != nil {
			renderError(render, w, err)
			return
		}
		s, err := ctrl.GetSeason(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func setCurrentSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "seasonID")
		if err := ctrl.SetCurrentSeason(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		s, err := ctrl.GetSeason(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func deleteSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteSeason(r.Context(), chi.URLParam(r, "seasonID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func createTourHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tour, err := ctrl.CreateTour(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, tour)
	}
}

func recomputeSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		changed, err := ctrl.RecomputeSeasonScores(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"changed": changed})
	}
}
