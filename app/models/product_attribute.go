package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductAttribute stores one product's value for one attribute. Exactly one
// value slot is meaningful, selected by the attribute's type; a write always
// replaces the whole row.
type ProductAttribute struct {
	ProductID   string                      `gorm:"size:36;primaryKey" json:"productId"`
	AttributeID string                      `gorm:"size:36;primaryKey" json:"attributeId"`
	Attribute   *Attribute                  `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"`
	TextValue   *string                     `gorm:"size:500" json:"textValue,omitempty"`
	NumberValue decimal.NullDecimal         `gorm:"type:decimal(20,6)" json:"numberValue,omitempty"`
	ColorValue  *string                     `gorm:"size:20" json:"colorValue,omitempty"`
	OptionIDs   datatypes.JSONSlice[string] `json:"optionIds"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}
