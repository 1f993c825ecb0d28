package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryAttributeHandler struct {
	bindings  *services.CategoryAttributeService
	render    *render.Render
	validator *validator.Validate
}

func NewCategoryAttributeHandler(bindings *services.CategoryAttributeService, rnd *render.Render, v *validator.Validate) *CategoryAttributeHandler {
	return &CategoryAttributeHandler{
		bindings:  bindings,
		render:    rnd,
		validator: v,
	}
}

type assignAttributesRequest struct {
	AttributeIDs []string `json:"attributeIds" validate:"required,min=1"`
	IsRequired   bool     `json:"isRequired"`
}

func (h *CategoryAttributeHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]
	bindings, err := h.bindings.ListForCategory(r.Context(), categoryID)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, bindings)
}

func (h *CategoryAttributeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]
	configs, err := h.bindings.ResolveForCategory(r.Context(), categoryID)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, configs)
}

func (h *CategoryAttributeHandler) Assign(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]

	var req assignAttributesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(h.render, w, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	bindings, err := h.bindings.Assign(r.Context(), categoryID, req.AttributeIDs, req.IsRequired)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, bindings)
}

func (h *CategoryAttributeHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.bindings.Unassign(r.Context(), vars["categoryId"], vars["attributeId"]); err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
