package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"gorm.io/gorm"
)

// AttributeService owns attribute definitions and their option lists. It is
// the single authority on what can be stored: no other service writes
// options or changes an attribute's type.
type AttributeService struct {
	attrRepo    repositories.AttributeRepositoryImpl
	valueRepo   repositories.ProductAttributeRepositoryImpl
	bindingRepo repositories.CategoryAttributeRepositoryImpl
}

func NewAttributeService(
	attrRepo repositories.AttributeRepositoryImpl,
	valueRepo repositories.ProductAttributeRepositoryImpl,
	bindingRepo repositories.CategoryAttributeRepositoryImpl,
) *AttributeService {
	return &AttributeService{
		attrRepo:    attrRepo,
		valueRepo:   valueRepo,
		bindingRepo: bindingRepo,
	}
}

type AttributeOptionInput struct {
	Value     string
	SortOrder *int
}

type CreateAttributeInput struct {
	Code         string
	Name         string
	Type         models.AttributeType
	Unit         string
	IsRequired   bool
	IsFilterable bool
	SortOrder    int
	Options      []AttributeOptionInput
}

// UpdateAttributeInput is a patch: nil fields are left untouched. A non-nil
// Options slice fully replaces the stored option list, empty meaning
// "remove all options".
type UpdateAttributeInput struct {
	Name         *string
	Type         *models.AttributeType
	Unit         *string
	IsRequired   *bool
	IsFilterable *bool
	SortOrder    *int
	Options      *[]AttributeOptionInput
}

func buildOptions(inputs []AttributeOptionInput) []models.AttributeOption {
	options := make([]models.AttributeOption, 0, len(inputs))
	for i, in := range inputs {
		sortOrder := i
		if in.SortOrder != nil {
			sortOrder = *in.SortOrder
		}
		options = append(options, models.AttributeOption{
			Value:     in.Value,
			SortOrder: sortOrder,
		})
	}
	return options
}

// checkDefinition enforces the option/type coupling: select types must have
// options, non-select types must not.
func checkDefinition(attrType models.AttributeType, optionCount int) error {
	if !attrType.Valid() {
		return fmt.Errorf("unknown attribute type %q: %w", attrType, ErrInvalidDefinition)
	}
	if attrType.IsSelect() && optionCount == 0 {
		return fmt.Errorf("%s attributes must have options: %w", attrType, ErrInvalidDefinition)
	}
	if !attrType.IsSelect() && optionCount > 0 {
		return fmt.Errorf("only select attributes can have options: %w", ErrInvalidDefinition)
	}
	return nil
}

func (s *AttributeService) Create(ctx context.Context, input CreateAttributeInput) (*models.Attribute, error) {
	if err := checkDefinition(input.Type, len(input.Options)); err != nil {
		return nil, err
	}

	attribute := &models.Attribute{
		Code:         input.Code,
		Name:         input.Name,
		Type:         input.Type,
		Unit:         input.Unit,
		IsRequired:   input.IsRequired,
		IsFilterable: input.IsFilterable,
		SortOrder:    input.SortOrder,
		Options:      buildOptions(input.Options),
	}

	if err := s.attrRepo.Create(ctx, attribute); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("code %q: %w", input.Code, ErrDuplicateCode)
		}
		return nil, fmt.Errorf("failed to create attribute: %w", err)
	}

	return s.Get(ctx, attribute.ID)
}

func (s *AttributeService) Get(ctx context.Context, id string) (*models.Attribute, error) {
	attribute, err := s.attrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute: %w", err)
	}
	if attribute == nil {
		return nil, fmt.Errorf("id %q: %w", id, ErrAttributeNotFound)
	}
	return attribute, nil
}

func (s *AttributeService) GetByCode(ctx context.Context, code string) (*models.Attribute, error) {
	attribute, err := s.attrRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute by code: %w", err)
	}
	if attribute == nil {
		return nil, fmt.Errorf("code %q: %w", code, ErrAttributeNotFound)
	}
	return attribute, nil
}

func (s *AttributeService) List(ctx context.Context) ([]models.Attribute, error) {
	attributes, err := s.attrRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attributes: %w", err)
	}
	return attributes, nil
}

func (s *AttributeService) Update(ctx context.Context, id string, input UpdateAttributeInput) (*models.Attribute, error) {
	attribute, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A type change is only allowed while no product values reference the
	// attribute: stored values were validated against the old type.
	if input.Type != nil && *input.Type != attribute.Type {
		count, err := s.valueRepo.CountByAttribute(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count attribute values: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("attribute %q has %d values: %w", attribute.Code, count, ErrTypeLocked)
		}
		attribute.Type = *input.Type
	}

	if input.Name != nil {
		attribute.Name = *input.Name
	}
	if input.Unit != nil {
		attribute.Unit = *input.Unit
	}
	if input.IsRequired != nil {
		attribute.IsRequired = *input.IsRequired
	}
	if input.IsFilterable != nil {
		attribute.IsFilterable = *input.IsFilterable
	}
	if input.SortOrder != nil {
		attribute.SortOrder = *input.SortOrder
	}

	var newOptions []models.AttributeOption
	replaceOptions := false
	switch {
	case input.Options != nil:
		newOptions = buildOptions(*input.Options)
		replaceOptions = true
	case !attribute.Type.IsSelect() && len(attribute.Options) > 0:
		// The type moved away from a select type without an explicit option
		// patch: the option list goes with it.
		replaceOptions = true
	}

	optionCount := len(attribute.Options)
	if replaceOptions {
		optionCount = len(newOptions)
	}
	if err := checkDefinition(attribute.Type, optionCount); err != nil {
		return nil, err
	}

	if err := s.attrRepo.Update(ctx, attribute); err != nil {
		return nil, fmt.Errorf("failed to update attribute: %w", err)
	}

	if replaceOptions {
		if err := s.attrRepo.ReplaceOptions(ctx, id, newOptions); err != nil {
			return nil, fmt.Errorf("failed to replace attribute options: %w", err)
		}
	}

	return s.Get(ctx, id)
}

// Remove deletes the attribute together with its options. It refuses to
// delete while category bindings or product values still reference the
// attribute, so no dangling references are left behind.
func (s *AttributeService) Remove(ctx context.Context, id string) error {
	attribute, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	bindings, err := s.bindingRepo.CountByAttribute(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category bindings: %w", err)
	}
	values, err := s.valueRepo.CountByAttribute(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count attribute values: %w", err)
	}
	if bindings > 0 || values > 0 {
		return fmt.Errorf("attribute %q has %d bindings and %d values: %w", attribute.Code, bindings, values, ErrHasDependents)
	}

	if err := s.attrRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attribute: %w", err)
	}
	return nil
}
