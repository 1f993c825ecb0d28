package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeType decides which value slot of a ProductAttribute is legal
// and whether the attribute carries an option list.
type AttributeType string

const (
	AttributeTypeText       AttributeType = "TEXT"
	AttributeTypeNumber     AttributeType = "NUMBER"
	AttributeTypeColor      AttributeType = "COLOR"
	AttributeTypeSelectOne  AttributeType = "SELECT_ONE"
	AttributeTypeSelectMany AttributeType = "SELECT_MANY"
)

func (t AttributeType) Valid() bool {
	switch t {
	case AttributeTypeText, AttributeTypeNumber, AttributeTypeColor, AttributeTypeSelectOne, AttributeTypeSelectMany:
		return true
	}
	return false
}

// IsSelect reports whether the type requires an option list.
func (t AttributeType) IsSelect() bool {
	return t == AttributeTypeSelectOne || t == AttributeTypeSelectMany
}

type Attribute struct {
	ID           string            `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code         string            `gorm:"size:100;not null;uniqueIndex" json:"code"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	Type         AttributeType     `gorm:"size:20;not null" json:"type"`
	Unit         string            `gorm:"size:50" json:"unit,omitempty"`
	IsRequired   bool              `json:"isRequired"`
	IsFilterable bool              `json:"isFilterable"`
	SortOrder    int               `json:"sortOrder"`
	Options      []AttributeOption `gorm:"constraint:OnDelete:CASCADE;" json:"options,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (a *Attribute) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// OptionIDSet returns the ids of the attribute's current options,
// used to validate SELECT_ONE/SELECT_MANY payloads.
func (a *Attribute) OptionIDSet() map[string]bool {
	set := make(map[string]bool, len(a.Options))
	for _, opt := range a.Options {
		set[opt.ID] = true
	}
	return set
}

type AttributeOption struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	AttributeID string    `gorm:"size:36;not null;index" json:"attributeId"`
	Value       string    `gorm:"size:255;not null" json:"value"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (o *AttributeOption) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
