package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error            string            `json:"error"`
	InvalidOptionIDs []string          `json:"invalidOptionIds,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// writeDomainError maps the service error taxonomy onto HTTP statuses.
// Nothing here is fatal: every domain error is client-correctable.
func writeDomainError(rnd *render.Render, w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		rnd.JSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:            validationErr.Error(),
			InvalidOptionIDs: validationErr.InvalidOptionIDs,
		})
	case errors.Is(err, services.ErrAttributeNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrBindingNotFound),
		errors.Is(err, services.ErrValueNotFound):
		rnd.JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrDuplicateCode):
		rnd.JSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidDefinition),
		errors.Is(err, services.ErrTypeLocked),
		errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrHasDependents):
		rnd.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		rnd.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeBadRequest(rnd *render.Render, w http.ResponseWriter, msg string) {
	rnd.JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func writeFieldErrors(rnd *render.Render, w http.ResponseWriter, fields map[string]string) {
	rnd.JSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
}
