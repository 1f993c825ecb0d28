package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is an external entity as far as the attribute engine is concerned:
// only its identifier and existence are consumed.
type Product struct {
	ID         string             `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name       string             `gorm:"size:255;not null" json:"name"`
	Slug       string             `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Sku        string             `gorm:"size:100;uniqueIndex" json:"sku"`
	Attributes []ProductAttribute `json:"attributes,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
