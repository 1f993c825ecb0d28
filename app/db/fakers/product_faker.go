package fakers

import (
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func ProductFaker(db *gorm.DB) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	return &models.Product{
		ID:        productID,
		Name:      name,
		Slug:      slug.Make(name + "-" + uuid.NewString()[:6]),
		Sku:       slug.Make(name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
