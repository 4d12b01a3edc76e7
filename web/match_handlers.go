package web

import (
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func getMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ctrl.GetMatch(r.Context(), chi.URLParam(r, "matchID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, m)
	}
}

func createMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		m, err := ctrl.CreateMatch(r.Context(), chi.URLParam(r, "tourID"), req.HomeTeamID, req.AwayTeamID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, m)
	}
}

func deleteMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteMatch(r.Context(), chi.URLParam(r, "matchID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func matchStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		if _, err := ctrl.GetMatch(r.Context(), matchID); err != nil {
			renderError(render, w, err)
			return
		}

		stats, err := ctrl.ListMatchStats(r.Context(), matchID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stats)
	}
}

func addStatHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		stat := req.toModel(chi.URLParam(r, "matchID"))
		if err := ctrl.AddPlayerStat(r.Context(), stat); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, stat)
	}
}

// updateStatHandler replaces every counter of the stat row.
func updateStatHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statUpdateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		stat := &model.PlayerStat{
			ID:          chi.URLParam(r, "statID"),
			Goals:       req.Goals,
			OwnGoals:    req.OwnGoals,
			Assists:     req.Assists,
			YellowCards: req.YellowCards,
			RedCards:    req.RedCards,
		}
		if err := ctrl.UpdatePlayerStat(r.Context(), stat); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stat)
	}
}

func deleteStatHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeletePlayerStat(r.Context(), chi.URLParam(r, "statID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func recomputeMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ctrl.RecomputeMatchScore(r.Context(), chi.URLParam(r, "matchID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, m)
	}
}
