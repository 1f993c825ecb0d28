package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ValuePayload carries the candidate value for one attribute. Exactly one
// slot is meaningful, selected by the attribute's type; extra populated
// slots are tolerated and ignored, never validated.
type ValuePayload struct {
	TextValue   *string
	NumberValue *decimal.Decimal
	ColorValue  *string
	OptionIDs   []string
}

// ProductAttributeService validates and persists one typed value per
// (product, attribute) pair.
type ProductAttributeService struct {
	valueRepo   repositories.ProductAttributeRepositoryImpl
	attrRepo    repositories.AttributeRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewProductAttributeService(
	valueRepo repositories.ProductAttributeRepositoryImpl,
	attrRepo repositories.AttributeRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *ProductAttributeService {
	return &ProductAttributeService{
		valueRepo:   valueRepo,
		attrRepo:    attrRepo,
		productRepo: productRepo,
	}
}

// SetValue runs existence checks, then the type dispatch, then the upsert,
// strictly in that order: validation must see the attribute's current
// option set. Concurrent writers for the same pair race as last-write-wins.
func (s *ProductAttributeService) SetValue(ctx context.Context, productID, attributeID string, payload ValuePayload) (*models.ProductAttribute, error) {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("id %q: %w", productID, ErrProductNotFound)
	}

	attribute, err := s.attrRepo.GetByID(ctx, attributeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute: %w", err)
	}
	if attribute == nil {
		return nil, fmt.Errorf("id %q: %w", attributeID, ErrAttributeNotFound)
	}

	if err := validateValue(attribute, payload); err != nil {
		return nil, err
	}

	value := &models.ProductAttribute{
		ProductID:   productID,
		AttributeID: attributeID,
		ColorValue:  payload.ColorValue,
		TextValue:   payload.TextValue,
		OptionIDs:   datatypes.NewJSONSlice(optionIDsOrEmpty(payload.OptionIDs)),
	}
	if payload.NumberValue != nil {
		value.NumberValue = decimal.NewNullDecimal(*payload.NumberValue)
	}

	if err := s.valueRepo.Upsert(ctx, value); err != nil {
		return nil, fmt.Errorf("failed to upsert attribute value: %w", err)
	}

	stored, err := s.valueRepo.Get(ctx, productID, attributeID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload attribute value: %w", err)
	}
	return stored, nil
}

// ListForProduct deliberately skips the product existence check: an unknown
// product simply reads as an empty list.
func (s *ProductAttributeService) ListForProduct(ctx context.Context, productID string) ([]models.ProductAttribute, error) {
	values, err := s.valueRepo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product attributes: %w", err)
	}
	return values, nil
}

func (s *ProductAttributeService) RemoveValue(ctx context.Context, productID, attributeID string) error {
	value, err := s.valueRepo.Get(ctx, productID, attributeID)
	if err != nil {
		return fmt.Errorf("failed to get attribute value: %w", err)
	}
	if value == nil {
		return fmt.Errorf("product %q attribute %q: %w", productID, attributeID, ErrValueNotFound)
	}
	if err := s.valueRepo.Delete(ctx, productID, attributeID); err != nil {
		return fmt.Errorf("failed to delete attribute value: %w", err)
	}
	return nil
}

// validateValue is the type dispatch table. It checks only the slot the
// attribute's type selects.
func validateValue(attribute *models.Attribute, payload ValuePayload) error {
	switch attribute.Type {
	case models.AttributeTypeText:
		if payload.TextValue == nil || *payload.TextValue == "" {
			return &ValidationError{
				AttributeCode: attribute.Code,
				Message:       "text value is required for TEXT attributes",
			}
		}

	case models.AttributeTypeNumber:
		// Zero is a valid number; only absence fails.
		if payload.NumberValue == nil {
			return &ValidationError{
				AttributeCode: attribute.Code,
				Message:       "number value is required for NUMBER attributes",
			}
		}

	case models.AttributeTypeColor:
		if payload.ColorValue == nil || *payload.ColorValue == "" {
			return &ValidationError{
				AttributeCode: attribute.Code,
				Message:       "color value is required for COLOR attributes",
			}
		}

	case models.AttributeTypeSelectOne:
		if len(payload.OptionIDs) != 1 {
			return &ValidationError{
				AttributeCode: attribute.Code,
				Message:       "exactly one option must be selected for SELECT_ONE attributes",
			}
		}
		if !attribute.OptionIDSet()[payload.OptionIDs[0]] {
			return &ValidationError{
				AttributeCode:    attribute.Code,
				Message:          "invalid option id",
				InvalidOptionIDs: []string{payload.OptionIDs[0]},
			}
		}

	case models.AttributeTypeSelectMany:
		if len(payload.OptionIDs) == 0 {
			return &ValidationError{
				AttributeCode: attribute.Code,
				Message:       "at least one option must be selected for SELECT_MANY attributes",
			}
		}
		valid := attribute.OptionIDSet()
		var invalid []string
		for _, id := range payload.OptionIDs {
			if !valid[id] {
				invalid = append(invalid, id)
			}
		}
		if len(invalid) > 0 {
			return &ValidationError{
				AttributeCode:    attribute.Code,
				Message:          "invalid option ids",
				InvalidOptionIDs: invalid,
			}
		}

	default:
		return &ValidationError{
			AttributeCode: attribute.Code,
			Message:       fmt.Sprintf("unknown attribute type %q", attribute.Type),
		}
	}
	return nil
}

func optionIDsOrEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
