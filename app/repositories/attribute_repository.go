package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	Create(ctx context.Context, attribute *models.Attribute) error
	GetByID(ctx context.Context, id string) (*models.Attribute, error)
	GetByCode(ctx context.Context, code string) (*models.Attribute, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Attribute, error)
	GetAll(ctx context.Context) ([]models.Attribute, error)
	Update(ctx context.Context, attribute *models.Attribute) error
	ReplaceOptions(ctx context.Context, attributeID string, options []models.AttributeOption) error
	Delete(ctx context.Context, id string) error
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Create(attribute).Error
}

func (r *attributeRepository) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		First(&attribute, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetByCode(ctx context.Context, code string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		First(&attribute, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Where("id IN ?", ids).
		Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) GetAll(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Order("sort_order ASC").
		Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Omit("Options").Save(attribute).Error
}

// ReplaceOptions deletes the attribute's whole option list and inserts the
// given one, in a single transaction. Option ids do not survive a replace.
func (r *attributeRepository) ReplaceOptions(ctx context.Context, attributeID string, options []models.AttributeOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", attributeID).Delete(&models.AttributeOption{}).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		for i := range options {
			options[i].AttributeID = attributeID
		}
		return tx.Create(&options).Error
	})
}

func (r *attributeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", id).Delete(&models.AttributeOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attribute{}, "id = ?", id).Error
	})
}
