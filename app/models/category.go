package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is an external entity: the attribute engine only checks its
// existence and keys bindings by its id.
type Category struct {
	ID         string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name       string              `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug       string              `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	ParentID   *string             `gorm:"size:36;index" json:"parentId,omitempty"`
	Parent     *Category           `gorm:"foreignKey:ParentID" json:"-"`
	Attributes []CategoryAttribute `json:"attributes,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
