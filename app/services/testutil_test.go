package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/migrations"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// env bundles a migrated in-memory database with every service wired the
// way routes.NewRouter wires them.
type env struct {
	db         *gorm.DB
	attributes *services.AttributeService
	bindings   *services.CategoryAttributeService
	values     *services.ProductAttributeService
	bulk       *services.BulkAttributeService
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	attrRepo := repositories.NewAttributeRepository(db)
	bindingRepo := repositories.NewCategoryAttributeRepository(db)
	valueRepo := repositories.NewProductAttributeRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	values := services.NewProductAttributeService(valueRepo, attrRepo, productRepo)

	return &env{
		db:         db,
		attributes: services.NewAttributeService(attrRepo, valueRepo, bindingRepo),
		bindings:   services.NewCategoryAttributeService(bindingRepo, attrRepo, categoryRepo),
		values:     values,
		bulk:       services.NewBulkAttributeService(values, productRepo),
	}
}

func (e *env) createProduct(t *testing.T, name string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Slug: name, Sku: name}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *env) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: name}
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *env) createAttribute(t *testing.T, input services.CreateAttributeInput) *models.Attribute {
	t.Helper()
	attribute, err := e.attributes.Create(context.Background(), input)
	require.NoError(t, err)
	return attribute
}

func strPtr(s string) *string { return &s }
