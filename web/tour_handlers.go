package web

import (
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func listToursHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tours, err := ctrl.ListTours(r.Context(), r.URL.Query().Get("season"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, tours)
	}
}

func currentTourHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tour, err := ctrl.CurrentTour(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, tour)
	}
}

func getTourHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tour, err := ctrl.GetTour(r.Context(), chi.URLParam(r, "tourID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, tour)
	}
}

func tourStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.TourStandings(r.Context(), chi.URLParam(r, "tourID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func tourMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tourID := chi.URLParam(r, "tourID")
		if _, err := ctrl.GetTour(r.Context(), tourID); err != nil {
			renderError(render, w, err)
			return
		}

		matches, err := ctrl.ListMatches(r.Context(), tourID, "")
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, matches)
	}
}

func tourPlayerStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ctrl.TourPlayerStats(r.Context(), chi.URLParam(r, "tourID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stats)
	}
}

func updateTourHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tourPatchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		id := chi.URLParam(r, "tourID")
		if req.MVPPlayerID != nil {
			if err := ctrl.SetTourMVP(r.Context(), id, *req.MVPPlayerID); err != nil {
				renderError(render, w, err)
				return
			}
		}
		if req.VideoURL != nil {
			if err := ctrl.SetTourVideo(r.Context(), id, *req.VideoURL); err != nil {
				renderError(render, w, err)
				return
			}
		}

		tour, err := ctrl.GetTour(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, tour)
	}
}

func deleteTourHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteTour(r.Context(), chi.URLParam(r, "tourID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listTourTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTourTeams(r.Context(), chi.URLParam(r, "tourID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

// addTourTeamHandler falls back to the team's own color when the request
// leaves it out.
func addTourTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tourTeamRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		color := model.COLOR_UNKNOWN
		if req.Color != "" {
			color = model.ParseTeamColor(req.Color)
		}

		tt, err := ctrl.AddTourTeam(r.Context(), chi.URLParam(r, "tourID"), req.TeamID, color)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, tt)
	}
}

func updateTourTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tourTeamPatchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		if err := ctrl.SetTourTeamColor(r.Context(), chi.URLParam(r, "tourTeamID"), model.ParseTeamColor(req.Color)); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func removeTourTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RemoveTourTeam(r.Context(), chi.URLParam(r, "tourTeamID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listSubstitutionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := ctrl.ListSubstitutions(r.Context(), chi.URLParam(r, "tourID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, subs)
	}
}

func addSubstitutionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req substitutionRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		sub, err := ctrl.AddSubstitution(r.Context(), chi.URLParam(r, "tourID"), req.OriginalPlayerID, req.SubstitutePlayerID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, sub)
	}
}

func deleteSubstitutionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteSubstitution(r.Context(), chi.URLParam(r, "substitutionID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

const (
	tourScope   = model.SCOPE_TOUR
	seasonScope = model.SCOPE_SEASON
)

func scopeID(r *http.Request, scope model.DreamTeamScope) string {
	if scope == model.SCOPE_TOUR {
		return chi.URLParam(r, "tourID")
	}
	return chi.URLParam(r, "seasonID")
}

func getDreamTeamHandler(ctrl controller.C, render *render.Render, scope model.DreamTeamScope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamType := model.ParseDreamTeamType(chi.URLParam(r, "type"))
		entries, err := ctrl.GetDreamTeam(r.Context(), scope, scopeID(r, scope), teamType)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, entries)
	}
}

func setDreamTeamHandler(ctrl controller.C, render *render.Render, scope model.DreamTeamScope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dreamTeamRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		id := scopeID(r, scope)
		teamType := model.ParseDreamTeamType(chi.URLParam(r, "type"))
		if err := ctrl.SetDreamTeam(r.Context(), scope, id, teamType, req.PlayerIDs); err != nil {
			renderError(render, w, err)
			return
		}

		entries, err := ctrl.GetDreamTeam(r.Context(), scope, id, teamType)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, entries)
	}
}
