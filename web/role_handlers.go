package web

import (
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func listRolesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := ctrl.ListRoles(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, roles)
	}
}

func assignAdminHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roleRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		if err := ctrl.AssignAdmin(r.Context(), req.UserID); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func revokeAdminHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RevokeAdmin(r.Context(), chi.URLParam(r, "userID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
