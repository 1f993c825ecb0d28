package seeders

import (
	"context"
	"log"

	"github.com/Rakhulsr/go-catalog/app/db/fakers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DBSeed creates a small demo catalog: two categories, two products, a
// representative attribute of every type, bindings for the first category,
// and one value per attribute on the first product. Values go through the
// assignment service so the seeded data is guaranteed valid.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()

	attrRepo := repositories.NewAttributeRepository(db)
	bindingRepo := repositories.NewCategoryAttributeRepository(db)
	valueRepo := repositories.NewProductAttributeRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	attributes := services.NewAttributeService(attrRepo, valueRepo, bindingRepo)
	bindings := services.NewCategoryAttributeService(bindingRepo, attrRepo, categoryRepo)
	values := services.NewProductAttributeService(valueRepo, attrRepo, productRepo)

	var categories []*models.Category
	for i := 0; i < 2; i++ {
		category := fakers.CategoryFaker(db)
		if err := categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		categories = append(categories, category)
	}

	var products []*models.Product
	for i := 0; i < 2; i++ {
		product := fakers.ProductFaker(db)
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		products = append(products, product)
	}

	color, err := attributes.Create(ctx, services.CreateAttributeInput{
		Code: "color", Name: "Color", Type: models.AttributeTypeColor,
		IsFilterable: true, SortOrder: 0,
	})
	if err != nil {
		return err
	}
	material, err := attributes.Create(ctx, services.CreateAttributeInput{
		Code: "material", Name: "Material", Type: models.AttributeTypeText,
		SortOrder: 1,
	})
	if err != nil {
		return err
	}
	weight, err := attributes.Create(ctx, services.CreateAttributeInput{
		Code: "weight", Name: "Weight", Type: models.AttributeTypeNumber,
		Unit: "kg", SortOrder: 2,
	})
	if err != nil {
		return err
	}
	size, err := attributes.Create(ctx, services.CreateAttributeInput{
		Code: "size", Name: "Size", Type: models.AttributeTypeSelectOne,
		IsFilterable: true, SortOrder: 3,
		Options: []services.AttributeOptionInput{
			{Value: "S"}, {Value: "M"}, {Value: "L"},
		},
	})
	if err != nil {
		return err
	}
	features, err := attributes.Create(ctx, services.CreateAttributeInput{
		Code: "features", Name: "Features", Type: models.AttributeTypeSelectMany,
		SortOrder: 4,
		Options: []services.AttributeOptionInput{
			{Value: "Waterproof"}, {Value: "Washable"}, {Value: "Recycled"},
		},
	})
	if err != nil {
		return err
	}

	attributeIDs := []string{color.ID, material.ID, weight.ID, size.ID, features.ID}
	if _, err := bindings.Assign(ctx, categories[0].ID, attributeIDs, false); err != nil {
		return err
	}

	kg := decimal.NewFromFloat(1.25)
	red := "#FF0000"
	cotton := "cotton"
	seedValues := []struct {
		attributeID string
		payload     services.ValuePayload
	}{
		{color.ID, services.ValuePayload{ColorValue: &red}},
		{material.ID, services.ValuePayload{TextValue: &cotton}},
		{weight.ID, services.ValuePayload{NumberValue: &kg}},
		{size.ID, services.ValuePayload{OptionIDs: []string{size.Options[1].ID}}},
		{features.ID, services.ValuePayload{OptionIDs: []string{features.Options[0].ID, features.Options[2].ID}}},
	}
	for _, sv := range seedValues {
		if _, err := values.SetValue(ctx, products[0].ID, sv.attributeID, sv.payload); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories, %d products, %d attributes", len(categories), len(products), len(attributeIDs))
	return nil
}
