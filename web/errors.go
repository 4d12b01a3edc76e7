package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/db"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

const maxBodySize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func statusForError(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, controller.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, controller.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		msg = "internal server error"
	}
	render.JSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into v and runs its validate tags.
// Failures wrap controller.ErrInvalid.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %v", controller.ErrInvalid, err)
	}
	if err := validate.StructCtx(r.Context(), v); err != nil {
		return fmt.Errorf("%w: validation failed: %v", controller.ErrInvalid, err)
	}
	return nil
}
