package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AttributeHandler struct {
	attributes *services.AttributeService
	render     *render.Render
	validator  *validator.Validate
}

func NewAttributeHandler(attributes *services.AttributeService, rnd *render.Render, v *validator.Validate) *AttributeHandler {
	return &AttributeHandler{
		attributes: attributes,
		render:     rnd,
		validator:  v,
	}
}

type optionRequest struct {
	Value     string `json:"value" validate:"required"`
	SortOrder *int   `json:"sortOrder"`
}

type createAttributeRequest struct {
	Code         string          `json:"code" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Type         string          `json:"type" validate:"required"`
	Unit         string          `json:"unit"`
	IsRequired   bool            `json:"isRequired"`
	IsFilterable bool            `json:"isFilterable"`
	SortOrder    int             `json:"sortOrder"`
	Options      []optionRequest `json:"options" validate:"omitempty,dive"`
}

type updateAttributeRequest struct {
	Name         *string          `json:"name"`
	Type         *string          `json:"type"`
	Unit         *string          `json:"unit"`
	IsRequired   *bool            `json:"isRequired"`
	IsFilterable *bool            `json:"isFilterable"`
	SortOrder    *int             `json:"sortOrder"`
	Options      *[]optionRequest `json:"options" validate:"omitempty,dive"`
}

func optionInputs(reqs []optionRequest) []services.AttributeOptionInput {
	inputs := make([]services.AttributeOptionInput, 0, len(reqs))
	for _, o := range reqs {
		inputs = append(inputs, services.AttributeOptionInput{Value: o.Value, SortOrder: o.SortOrder})
	}
	return inputs
}

func (h *AttributeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAttributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(h.render, w, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	attribute, err := h.attributes.Create(r.Context(), services.CreateAttributeInput{
		Code:         req.Code,
		Name:         req.Name,
		Type:         models.AttributeType(req.Type),
		Unit:         req.Unit,
		IsRequired:   req.IsRequired,
		IsFilterable: req.IsFilterable,
		SortOrder:    req.SortOrder,
		Options:      optionInputs(req.Options),
	})
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, attribute)
}

func (h *AttributeHandler) List(w http.ResponseWriter, r *http.Request) {
	attributes, err := h.attributes.List(r.Context())
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, attributes)
}

func (h *AttributeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attribute, err := h.attributes.Get(r.Context(), id)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, attribute)
}

func (h *AttributeHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	attribute, err := h.attributes.GetByCode(r.Context(), code)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, attribute)
}

func (h *AttributeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateAttributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(h.render, w, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	input := services.UpdateAttributeInput{
		Name:         req.Name,
		Unit:         req.Unit,
		IsRequired:   req.IsRequired,
		IsFilterable: req.IsFilterable,
		SortOrder:    req.SortOrder,
	}
	if req.Type != nil {
		attrType := models.AttributeType(*req.Type)
		input.Type = &attrType
	}
	if req.Options != nil {
		inputs := optionInputs(*req.Options)
		input.Options = &inputs
	}

	attribute, err := h.attributes.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, attribute)
}

func (h *AttributeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.attributes.Remove(r.Context(), id); err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
