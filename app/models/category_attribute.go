package models

import (
	"time"
)

// CategoryAttribute scopes an attribute onto a category, with
// category-specific requirement and display order overrides.
type CategoryAttribute struct {
	CategoryID  string     `gorm:"size:36;primaryKey" json:"categoryId"`
	AttributeID string     `gorm:"size:36;primaryKey" json:"attributeId"`
	Attribute   *Attribute `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"`
	IsRequired  bool       `json:"isRequired"`
	SortOrder   int        `json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// EffectiveAttributeConfig is the merged view of an attribute's global
// defaults and a category binding's overrides.
type EffectiveAttributeConfig struct {
	Attribute    Attribute `json:"attribute"`
	IsRequired   bool      `json:"isRequired"`
	SortOrder    int       `json:"sortOrder"`
	CategoryID   string    `json:"categoryId,omitempty"`
	FromCategory bool      `json:"fromCategory"`
}

// ResolveEffective merges an attribute's global defaults with a category
// binding. A nil binding yields the global configuration unchanged.
func ResolveEffective(attribute Attribute, binding *CategoryAttribute) EffectiveAttributeConfig {
	cfg := EffectiveAttributeConfig{
		Attribute:  attribute,
		IsRequired: attribute.IsRequired,
		SortOrder:  attribute.SortOrder,
	}
	if binding != nil {
		cfg.IsRequired = binding.IsRequired
		cfg.SortOrder = binding.SortOrder
		cfg.CategoryID = binding.CategoryID
		cfg.FromCategory = true
	}
	return cfg
}
