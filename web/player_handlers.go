package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

const maxPhotoSize = 5 << 20 // 5 MB

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func playerProfileHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := ctrl.PlayerProfile(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, profile)
	}
}

func createPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		p, err := ctrl.CreatePlayer(r.Context(), req.Name, req.TeamID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, p)
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerPatchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		p, err := ctrl.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.TeamID != nil {
			p.TeamID = *req.TeamID
		}

		if err := ctrl.UpdatePlayer(r.Context(), p); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeletePlayer(r.Context(), chi.URLParam(r, "playerID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadPhotoHandler expects a multipart form with the image in the "photo"
// field.
func uploadPhotoHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+(64<<10))
		if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
			renderError(render, w, fmt.Errorf("%w: could not parse form: %v", controller.ErrInvalid, err))
			return
		}

		file, header, err := r.FormFile("photo")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				err = fmt.Errorf("%w: photo file is required", controller.ErrInvalid)
			}
			renderError(render, w, err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			renderError(render, w, fmt.Errorf("error reading photo: %w", err))
			return
		}

		p, err := ctrl.UploadPlayerPhoto(r.Context(), chi.URLParam(r, "playerID"), header.Header.Get("Content-Type"), data)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func deletePhotoHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeletePlayerPhoto(r.Context(), chi.URLParam(r, "playerID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
