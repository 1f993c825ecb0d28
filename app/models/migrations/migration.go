package migrations

import (
	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Attribute{},
		&models.AttributeOption{},
		&models.CategoryAttribute{},
		&models.ProductAttribute{},
	)
}
