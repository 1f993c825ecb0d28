package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type CategoryAttributeRepositoryImpl interface {
	GetByCategory(ctx context.Context, categoryID string) ([]models.CategoryAttribute, error)
	Get(ctx context.Context, categoryID, attributeID string) (*models.CategoryAttribute, error)
	CreateBatch(ctx context.Context, bindings []models.CategoryAttribute) error
	Delete(ctx context.Context, categoryID, attributeID string) error
	CountByAttribute(ctx context.Context, attributeID string) (int64, error)
}

type categoryAttributeRepository struct {
	db *gorm.DB
}

func NewCategoryAttributeRepository(db *gorm.DB) CategoryAttributeRepositoryImpl {
	return &categoryAttributeRepository{db: db}
}

func (r *categoryAttributeRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.CategoryAttribute, error) {
	var bindings []models.CategoryAttribute
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Preload("Attribute.Options", orderedOptions).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC").
		Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

func (r *categoryAttributeRepository) Get(ctx context.Context, categoryID, attributeID string) (*models.CategoryAttribute, error) {
	var binding models.CategoryAttribute
	err := r.db.WithContext(ctx).
		First(&binding, "category_id = ? AND attribute_id = ?", categoryID, attributeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &binding, nil
}

func (r *categoryAttributeRepository) CreateBatch(ctx context.Context, bindings []models.CategoryAttribute) error {
	if len(bindings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&bindings).Error
}

func (r *categoryAttributeRepository) Delete(ctx context.Context, categoryID, attributeID string) error {
	return r.db.WithContext(ctx).
		Where("category_id = ? AND attribute_id = ?", categoryID, attributeID).
		Delete(&models.CategoryAttribute{}).Error
}

func (r *categoryAttributeRepository) CountByAttribute(ctx context.Context, attributeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CategoryAttribute{}).
		Where("attribute_id = ?", attributeID).
		Count(&count).Error
	return count, err
}
