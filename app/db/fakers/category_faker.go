package fakers

import (
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func CategoryFaker(db *gorm.DB) *models.Category {
	name := faker.Word() + " " + uuid.NewString()[:6]

	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
