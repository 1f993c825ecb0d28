package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductAttributeRepositoryImpl interface {
	Get(ctx context.Context, productID, attributeID string) (*models.ProductAttribute, error)
	GetByProduct(ctx context.Context, productID string) ([]models.ProductAttribute, error)
	Upsert(ctx context.Context, value *models.ProductAttribute) error
	Delete(ctx context.Context, productID, attributeID string) error
	CountByAttribute(ctx context.Context, attributeID string) (int64, error)
}

type productAttributeRepository struct {
	db *gorm.DB
}

func NewProductAttributeRepository(db *gorm.DB) ProductAttributeRepositoryImpl {
	return &productAttributeRepository{db: db}
}

func (r *productAttributeRepository) Get(ctx context.Context, productID, attributeID string) (*models.ProductAttribute, error) {
	var value models.ProductAttribute
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Preload("Attribute.Options", orderedOptions).
		First(&value, "product_id = ? AND attribute_id = ?", productID, attributeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

func (r *productAttributeRepository) GetByProduct(ctx context.Context, productID string) ([]models.ProductAttribute, error) {
	var values []models.ProductAttribute
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Preload("Attribute.Options", orderedOptions).
		Where("product_id = ?", productID).
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Upsert inserts or fully overwrites the row keyed by (product_id,
// attribute_id). All value slots are replaced, never merged.
func (r *productAttributeRepository) Upsert(ctx context.Context, value *models.ProductAttribute) error {
	return r.db.WithContext(ctx).
		Omit("Attribute").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "attribute_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"text_value", "number_value", "color_value", "option_ids", "updated_at",
			}),
		}).
		Create(value).Error
}

func (r *productAttributeRepository) Delete(ctx context.Context, productID, attributeID string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND attribute_id = ?", productID, attributeID).
		Delete(&models.ProductAttribute{}).Error
}

func (r *productAttributeRepository) CountByAttribute(ctx context.Context, attributeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductAttribute{}).
		Where("attribute_id = ?", attributeID).
		Count(&count).Error
	return count, err
}
