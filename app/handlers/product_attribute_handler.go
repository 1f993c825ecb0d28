package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductAttributeHandler struct {
	values    *services.ProductAttributeService
	bulk      *services.BulkAttributeService
	render    *render.Render
	validator *validator.Validate
}

func NewProductAttributeHandler(values *services.ProductAttributeService, bulk *services.BulkAttributeService, rnd *render.Render, v *validator.Validate) *ProductAttributeHandler {
	return &ProductAttributeHandler{
		values:    values,
		bulk:      bulk,
		render:    rnd,
		validator: v,
	}
}

type setValueRequest struct {
	AttributeID string           `json:"attributeId" validate:"required"`
	TextValue   *string          `json:"textValue"`
	NumberValue *decimal.Decimal `json:"numberValue"`
	ColorValue  *string          `json:"colorValue"`
	OptionIDs   []string         `json:"optionIds"`
}

type bulkSetValuesRequest struct {
	Attributes []setValueRequest `json:"attributes" validate:"required,min=1,dive"`
}

type bulkEntryResponse struct {
	AttributeID string                   `json:"attributeId"`
	Value       *models.ProductAttribute `json:"value,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

func (r setValueRequest) payload() services.ValuePayload {
	return services.ValuePayload{
		TextValue:   r.TextValue,
		NumberValue: r.NumberValue,
		ColorValue:  r.ColorValue,
		OptionIDs:   r.OptionIDs,
	}
}

func (h *ProductAttributeHandler) List(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	values, err := h.values.ListForProduct(r.Context(), productID)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, values)
}

func (h *ProductAttributeHandler) Set(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var req setValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(h.render, w, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	value, err := h.values.SetValue(r.Context(), productID, req.AttributeID, req.payload())
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, value)
}

func (h *ProductAttributeHandler) BulkSet(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var req bulkSetValuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(h.render, w, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	assignments := make([]services.BulkAssignment, 0, len(req.Attributes))
	for _, attr := range req.Attributes {
		assignments = append(assignments, services.BulkAssignment{
			AttributeID: attr.AttributeID,
			Payload:     attr.payload(),
		})
	}

	results, err := h.bulk.SetValues(r.Context(), productID, assignments)
	if err != nil {
		writeDomainError(h.render, w, err)
		return
	}

	entries := make([]bulkEntryResponse, 0, len(results))
	status := http.StatusOK
	for _, res := range results {
		entry := bulkEntryResponse{AttributeID: res.AttributeID, Value: res.Value}
		if res.Err != nil {
			entry.Error = res.Err.Error()
			status = http.StatusMultiStatus
		}
		entries = append(entries, entry)
	}
	h.render.JSON(w, status, entries)
}

func (h *ProductAttributeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.values.RemoveValue(r.Context(), vars["productId"], vars["attributeId"]); err != nil {
		writeDomainError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
