package web

import (
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := ctrl.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func createTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req teamRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		team, err := ctrl.CreateTeam(r.Context(), req.Name, model.ParseTeamColor(req.Color))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, team)
	}
}

func updateTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req teamPatchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		team, err := ctrl.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		if req.Name != nil {
			team.Name = *req.Name
		}
		if req.Color != nil {
			team.Color = model.ParseTeamColor(*req.Color)
		}

		if err := ctrl.UpdateTeam(r.Context(), team); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func deleteTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteTeam(r.Context(), chi.URLParam(r, "teamID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
