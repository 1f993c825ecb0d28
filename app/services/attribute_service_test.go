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

func TestCreateAttributeOptionTypeCoupling(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		input   services.CreateAttributeInput
		wantErr error
	}{
		{
			name: "text with options rejected",
			input: services.CreateAttributeInput{
				Code: "material", Name: "Material", Type: models.AttributeTypeText,
				Options: []services.AttributeOptionInput{{Value: "cotton"}},
			},
			wantErr: services.ErrInvalidDefinition,
		},
		{
			name: "select one without options rejected",
			input: services.CreateAttributeInput{
				Code: "size", Name: "Size", Type: models.AttributeTypeSelectOne,
			},
			wantErr: services.ErrInvalidDefinition,
		},
		{
			name: "select many without options rejected",
			input: services.CreateAttributeInput{
				Code: "features", Name: "Features", Type: models.AttributeTypeSelectMany,
			},
			wantErr: services.ErrInvalidDefinition,
		},
		{
			name: "unknown type rejected",
			input: services.CreateAttributeInput{
				Code: "odd", Name: "Odd", Type: models.AttributeType("ENUM"),
			},
			wantErr: services.ErrInvalidDefinition,
		},
		{
			name: "text without options accepted",
			input: services.CreateAttributeInput{
				Code: "brand", Name: "Brand", Type: models.AttributeTypeText,
			},
		},
		{
			name: "select one with options accepted",
			input: services.CreateAttributeInput{
				Code: "fit", Name: "Fit", Type: models.AttributeTypeSelectOne,
				Options: []services.AttributeOptionInput{{Value: "slim"}, {Value: "regular"}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attribute, err := e.attributes.Create(ctx, tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input.Code, attribute.Code)
			assert.NotEmpty(t, attribute.ID)
		})
	}
}

func TestCreateAttributeOptionOrdering(t *testing.T) {
	e := setupEnv(t)

	two := 2
	zero := 0
	attribute := e.createAttribute(t, services.CreateAttributeInput{
		Code: "size", Name: "Size", Type: models.AttributeTypeSelectOne,
		Options: []services.AttributeOptionInput{
			{Value: "L", SortOrder: &two},
			{Value: "S", SortOrder: &zero},
			{Value: "M"}, // defaults to array index 2
		},
	})

	require.Len(t, attribute.Options, 3)
	assert.Equal(t, "S", attribute.Options[0].Value)
	values := []string{attribute.Options[1].Value, attribute.Options[2].Value}
	assert.ElementsMatch(t, []string{"L", "M"}, values)
	for _, opt := range attribute.Options {
		assert.Equal(t, attribute.ID, opt.AttributeID)
	}
}

func TestCreateAttributeDuplicateCode(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	e.createAttribute(t, services.CreateAttributeInput{
		Code: "color", Name: "Color", Type: models.AttributeTypeColor,
	})

	_, err := e.attributes.Create(ctx, services.CreateAttributeInput{
		Code: "color", Name: "Colour", Type: models.AttributeTypeColor,
	})
	require.ErrorIs(t, err, services.ErrDuplicateCode)
}

func TestGetAttribute(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	created := e.createAttribute(t, services.CreateAttributeInput{
		Code: "weight", Name: "Weight", Type: models.AttributeTypeNumber, Unit: "kg",
	})

	byID, err := e.attributes.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "weight", byID.Code)
	assert.Equal(t, "kg", byID.Unit)

	byCode, err := e.attributes.GetByCode(ctx, "weight")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = e.attributes.Get(ctx, "missing")
	require.ErrorIs(t, err, services.ErrAttributeNotFound)

	_, err = e.attributes.GetByCode(ctx, "missing")
	require.ErrorIs(t, err, services.ErrAttributeNotFound)
}

func TestListAttributesOrderedBySortOrder(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	e.createAttribute(t, services.CreateAttributeInput{
		Code: "b", Name: "B", Type: models.AttributeTypeText, SortOrder: 2,
	})
	e.createAttribute(t, services.CreateAttributeInput{
		Code: "a", Name: "A", Type: models.AttributeTypeText, SortOrder: 1,
	})

	attributes, err := e.attributes.List(ctx)
	require.NoError(t, err)
	require.Len(t, attributes, 2)
	assert.Equal(t, "a", attributes[0].Code)
	assert.Equal(t, "b", attributes[1].Code)
}

func TestUpdateAttributeTypeLock(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "shirt")
	size := e.createAttribute(t, services.CreateAttributeInput{
		Code: "size", Name: "Size", Type: models.AttributeTypeSelectOne,
		Options: []services.AttributeOptionInput{{Value: "S"}, {Value: "M"}, {Value: "L"}},
	})

	_, err := e.values.SetValue(ctx, product.ID, size.ID, services.ValuePayload{
		OptionIDs: []string{size.Options[2].ID},
	})
	require.NoError(t, err)

	numberType := models.AttributeTypeNumber
	_, err = e.attributes.Update(ctx, size.ID, services.UpdateAttributeInput{Type: &numberType})
	require.ErrorIs(t, err, services.ErrTypeLocked)

	// Once the value is gone the same update goes through, and the option
	// list (now illegal for a NUMBER attribute) is dropped with the type.
	require.NoError(t, e.values.RemoveValue(ctx, product.ID, size.ID))
	updated, err := e.attributes.Update(ctx, size.ID, services.UpdateAttributeInput{Type: &numberType})
	require.NoError(t, err)
	assert.Equal(t, models.AttributeTypeNumber, updated.Type)
	assert.Empty(t, updated.Options)
}

func TestUpdateAttributeScalarPatch(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	attribute := e.createAttribute(t, services.CreateAttributeInput{
		Code: "weight", Name: "Weight", Type: models.AttributeTypeNumber, Unit: "kg",
	})

	required := true
	updated, err := e.attributes.Update(ctx, attribute.ID, services.UpdateAttributeInput{
		Name:       strPtr("Net weight"),
		Unit:       strPtr("g"),
		IsRequired: &required,
	})
	require.NoError(t, err)
	assert.Equal(t, "Net weight", updated.Name)
	assert.Equal(t, "g", updated.Unit)
	assert.True(t, updated.IsRequired)
	// Untouched fields survive the patch.
	assert.Equal(t, "weight", updated.Code)
	assert.Equal(t, models.AttributeTypeNumber, updated.Type)
}

func TestUpdateAttributeReplacesOptions(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	size := e.createAttribute(t, services.CreateAttributeInput{
		Code: "size", Name: "Size", Type: models.AttributeTypeSelectOne,
		Options: []services.AttributeOptionInput{{Value: "S"}, {Value: "M"}},
	})
	oldIDs := []string{size.Options[0].ID, size.Options[1].ID}

	replacement := []services.AttributeOptionInput{{Value: "38"}, {Value: "40"}, {Value: "42"}}
	updated, err := e.attributes.Update(ctx, size.ID, services.UpdateAttributeInput{Options: &replacement})
	require.NoError(t, err)
	require.Len(t, updated.Options, 3)
	for _, opt := range updated.Options {
		assert.NotContains(t, oldIDs, opt.ID, "option ids must not survive a replace")
	}

	// Dropping the option list entirely violates the coupling for a select type.
	empty := []services.AttributeOptionInput{}
	_, err = e.attributes.Update(ctx, size.ID, services.UpdateAttributeInput{Options: &empty})
	require.ErrorIs(t, err, services.ErrInvalidDefinition)
}

func TestRemoveAttribute(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	attribute := e.createAttribute(t, services.CreateAttributeInput{
		Code: "material", Name: "Material", Type: models.AttributeTypeText,
	})

	require.NoError(t, e.attributes.Remove(ctx, attribute.ID))

	_, err := e.attributes.Get(ctx, attribute.ID)
	require.ErrorIs(t, err, services.ErrAttributeNotFound)

	require.ErrorIs(t, e.attributes.Remove(ctx, attribute.ID), services.ErrAttributeNotFound)
}

func TestRemoveAttributeBlockedByDependents(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	product := e.createProduct(t, "mug")
	category := e.createCategory(t, "kitchen")

	weight := e.createAttribute(t, services.CreateAttributeInput{
		Code: "weight", Name: "Weight", Type: models.AttributeTypeNumber,
	})

	grams := decimal.NewFromInt(300)
	_, err := e.values.SetValue(ctx, product.ID, weight.ID, services.ValuePayload{NumberValue: &grams})
	require.NoError(t, err)

	require.ErrorIs(t, e.attributes.Remove(ctx, weight.ID), services.ErrHasDependents)

	require.NoError(t, e.values.RemoveValue(ctx, product.ID, weight.ID))
	_, err = e.bindings.Assign(ctx, category.ID, []string{weight.ID}, false)
	require.NoError(t, err)
	require.ErrorIs(t, e.attributes.Remove(ctx, weight.ID), services.ErrHasDependents)

	require.NoError(t, e.bindings.Unassign(ctx, category.ID, weight.ID))
	require.NoError(t, e.attributes.Remove(ctx, weight.ID))
}
