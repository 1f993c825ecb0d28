package services_test

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValueColor(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	color := e.createAttribute(t, services.CreateAttributeInput{
		Code: "color", Name: "Color", Type: models.AttributeTypeColor,
	})

	value, err := e.values.SetValue(ctx, product.ID, color.ID, services.ValuePayload{
		ColorValue: strPtr("#FF0000"),
	})
	require.NoError(t, err)
	require.NotNil(t, value.ColorValue)
	assert.Equal(t, "#FF0000", *value.ColorValue)
	require.NotNil(t, value.Attribute)
	assert.Equal(t, "color", value.Attribute.Code)

	// Wrong slot populated: the color slot is still missing.
	_, err = e.values.SetValue(ctx, product.ID, color.ID, services.ValuePayload{
		TextValue: strPtr("red"),
	})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSetValueText(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	material := e.createAttribute(t, services.CreateAttributeInput{
		Code: "material", Name: "Material", Type: models.AttributeTypeText,
	})

	_, err := e.values.SetValue(ctx, product.ID, material.ID, services.ValuePayload{
		TextValue: strPtr(""),
	})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)

	value, err := e.values.SetValue(ctx, product.ID, material.ID, services.ValuePayload{
		TextValue: strPtr("cotton"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cotton", *value.TextValue)
}

func TestSetValueNumberZeroIsValid(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	weight := e.createAttribute(t, services.CreateAttributeInput{
		Code: "weight", Name: "Weight", Type: models.AttributeTypeNumber, Unit: "kg",
	})

	_, err := e.values.SetValue(ctx, product.ID, weight.ID, services.ValuePayload{})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)

	zero := decimal.Zero
	value, err := e.values.SetValue(ctx, product.ID, weight.ID, services.ValuePayload{NumberValue: &zero})
	require.NoError(t, err)
	require.True(t, value.NumberValue.Valid)
	assert.True(t, value.NumberValue.Decimal.IsZero())
}

func TestSetValueSelectOneCardinality(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	size := e.createAttribute(t, services.CreateAttributeInput{
		Code: "size", Name: "Size", Type: models.AttributeTypeSelectOne,
		Options: []services.AttributeOptionInput{{Value: "S"}, {Value: "M"}, {Value: "L"}},
	})
	idOfM, idOfL := size.Options[1].ID, size.Options[2].ID

	var validationErr *services.ValidationError

	_, err := e.values.SetValue(ctx, product.ID, size.ID, services.ValuePayload{})
	require.ErrorAs(t, err, &validationErr)

	_, err = e.values.SetValue(ctx, product.ID, size.ID, services.ValuePayload{
		OptionIDs: []string{idOfL, idOfM},
	})
	require.ErrorAs(t, err, &validationErr)

	_, err = e.values.SetValue(ctx, product.ID, size.ID, services.ValuePayload{
		OptionIDs: []string{"not-an-option"},
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"not-an-option"}, validationErr.InvalidOptionIDs)

	value, err := e.values.SetValue(ctx, product.ID, size.ID, services.ValuePayload{
		OptionIDs: []string{idOfL},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{idOfL}, []string(value.OptionIDs))
}

func TestSetValueSelectManyMembership(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "jacket")
	features := e.createAttribute(t, services.CreateAttributeInput{
		Code: "features", Name: "Features", Type: models.AttributeTypeSelectMany,
		Options: []services.AttributeOptionInput{{Value: "Waterproof"}, {Value: "Washable"}, {Value: "Recycled"}},
	})

	var validationErr *services.ValidationError

	_, err := e.values.SetValue(ctx, product.ID, features.ID, services.ValuePayload{OptionIDs: []string{}})
	require.ErrorAs(t, err, &validationErr)

	// One invalid id among valid ones fails the whole call, and the invalid
	// ids are reported individually.
	_, err = e.values.SetValue(ctx, product.ID, features.ID, services.ValuePayload{
		OptionIDs: []string{features.Options[0].ID, "bogus-1", features.Options[1].ID, "bogus-2"},
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"bogus-1", "bogus-2"}, validationErr.InvalidOptionIDs)

	value, err := e.values.SetValue(ctx, product.ID, features.ID, services.ValuePayload{
		OptionIDs: []string{features.Options[0].ID, features.Options[2].ID},
	})
	require.NoError(t, err)
	assert.Len(t, value.OptionIDs, 2)
}

func TestSetValueUpsertKeepsOneRecord(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	material := e.createAttribute(t, services.CreateAttributeInput{
		Code: "material", Name: "Material", Type: models.AttributeTypeText,
	})

	_, err := e.values.SetValue(ctx, product.ID, material.ID, services.ValuePayload{TextValue: strPtr("cotton")})
	require.NoError(t, err)
	_, err = e.values.SetValue(ctx, product.ID, material.ID, services.ValuePayload{TextValue: strPtr("linen")})
	require.NoError(t, err)

	var count int64
	require.NoError(t, e.db.Model(&models.ProductAttribute{}).
		Where("product_id = ? AND attribute_id = ?", product.ID, material.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	values, err := e.values.ListForProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "linen", *values[0].TextValue)
}

func TestSetValueOverwriteReplacesAllSlots(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	material := e.createAttribute(t, services.CreateAttributeInput{
		Code: "material", Name: "Material", Type: models.AttributeTypeText,
	})

	// An irrelevant populated slot is tolerated, written, and then fully
	// replaced by the next write: slots are never merged.
	n := decimal.NewFromInt(7)
	_, err := e.values.SetValue(ctx, product.ID, material.ID, services.ValuePayload{
		TextValue:   strPtr("cotton"),
		NumberValue: &n,
	})
	require.NoError(t, err)

	value, err := e.values.SetValue(ctx, product.ID, material.ID, services.ValuePayload{
		TextValue: strPtr("linen"),
	})
	require.NoError(t, err)
	assert.Equal(t, "linen", *value.TextValue)
	assert.False(t, value.NumberValue.Valid)
}

func TestSetValueMissingProductOrAttribute(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	color := e.createAttribute(t, services.CreateAttributeInput{
		Code: "color", Name: "Color", Type: models.AttributeTypeColor,
	})

	_, err := e.values.SetValue(ctx, "missing", color.ID, services.ValuePayload{ColorValue: strPtr("#000000")})
	require.ErrorIs(t, err, services.ErrProductNotFound)

	_, err = e.values.SetValue(ctx, product.ID, "missing", services.ValuePayload{ColorValue: strPtr("#000000")})
	require.ErrorIs(t, err, services.ErrAttributeNotFound)
}

func TestListForProductUnknownProductIsEmpty(t *testing.T) {
	e := setupEnv(t)

	values, err := e.values.ListForProduct(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestRemoveValue(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	color := e.createAttribute(t, services.CreateAttributeInput{
		Code: "color", Name: "Color", Type: models.AttributeTypeColor,
	})

	require.ErrorIs(t, e.values.RemoveValue(ctx, product.ID, color.ID), services.ErrValueNotFound)

	_, err := e.values.SetValue(ctx, product.ID, color.ID, services.ValuePayload{ColorValue: strPtr("#00FF00")})
	require.NoError(t, err)

	require.NoError(t, e.values.RemoveValue(ctx, product.ID, color.ID))
	values, err := e.values.ListForProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, values)
}
