package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

// CategoryAttributeService scopes attributes onto categories with
// category-specific requirement and display order overrides.
type CategoryAttributeService struct {
	bindingRepo  repositories.CategoryAttributeRepositoryImpl
	attrRepo     repositories.AttributeRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryAttributeService(
	bindingRepo repositories.CategoryAttributeRepositoryImpl,
	attrRepo repositories.AttributeRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
) *CategoryAttributeService {
	return &CategoryAttributeService{
		bindingRepo:  bindingRepo,
		attrRepo:     attrRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryAttributeService) ListForCategory(ctx context.Context, categoryID string) ([]models.CategoryAttribute, error) {
	bindings, err := s.bindingRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category attributes: %w", err)
	}
	return bindings, nil
}

// Assign binds the given attributes to a category. Pairs that are already
// bound are left untouched; only new pairs are inserted, with sort order
// continuing from the category's current binding count so ordering stays
// stable across repeated calls. Unknown attribute ids fail the whole call
// and nothing is written.
func (s *CategoryAttributeService) Assign(ctx context.Context, categoryID string, attributeIDs []string, isRequired bool) ([]models.CategoryAttribute, error) {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("id %q: %w", categoryID, ErrCategoryNotFound)
	}

	attributes, err := s.attrRepo.GetByIDs(ctx, attributeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attributes: %w", err)
	}
	if len(attributes) != len(uniqueIDs(attributeIDs)) {
		known := make(map[string]bool, len(attributes))
		for _, a := range attributes {
			known[a.ID] = true
		}
		var missing []string
		for _, id := range attributeIDs {
			if !known[id] {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("attributes %s: %w", strings.Join(missing, ", "), ErrInvalidReference)
	}

	existing, err := s.bindingRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bindings: %w", err)
	}
	bound := make(map[string]bool, len(existing))
	for _, b := range existing {
		bound[b.AttributeID] = true
	}

	var newBindings []models.CategoryAttribute
	for _, id := range uniqueIDs(attributeIDs) {
		if bound[id] {
			continue
		}
		newBindings = append(newBindings, models.CategoryAttribute{
			CategoryID:  categoryID,
			AttributeID: id,
			IsRequired:  isRequired,
			SortOrder:   len(existing) + len(newBindings),
		})
	}

	if err := s.bindingRepo.CreateBatch(ctx, newBindings); err != nil {
		return nil, fmt.Errorf("failed to create category bindings: %w", err)
	}

	return s.ListForCategory(ctx, categoryID)
}

func (s *CategoryAttributeService) Unassign(ctx context.Context, categoryID, attributeID string) error {
	binding, err := s.bindingRepo.Get(ctx, categoryID, attributeID)
	if err != nil {
		return fmt.Errorf("failed to get category binding: %w", err)
	}
	if binding == nil {
		return fmt.Errorf("category %q attribute %q: %w", categoryID, attributeID, ErrBindingNotFound)
	}
	if err := s.bindingRepo.Delete(ctx, categoryID, attributeID); err != nil {
		return fmt.Errorf("failed to delete category binding: %w", err)
	}
	return nil
}

// ResolveForCategory returns the category's attributes as effective
// configurations, binding overrides applied over the attribute defaults.
func (s *CategoryAttributeService) ResolveForCategory(ctx context.Context, categoryID string) ([]models.EffectiveAttributeConfig, error) {
	bindings, err := s.ListForCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	configs := make([]models.EffectiveAttributeConfig, 0, len(bindings))
	for i := range bindings {
		if bindings[i].Attribute == nil {
			continue
		}
		configs = append(configs, models.ResolveEffective(*bindings[i].Attribute, &bindings[i]))
	}
	return configs, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
