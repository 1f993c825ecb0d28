package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

type BulkAssignment struct {
	AttributeID string
	Payload     ValuePayload
}

// BulkAssignmentResult is the per-entry outcome of a bulk write. Entries are
// independent: one failing does not undo the others.
type BulkAssignmentResult struct {
	AttributeID string
	Value       *models.ProductAttribute
	Err         error
}

// BulkAttributeService applies a list of value assignments to one product.
// There is no cross-entry transaction; instead of failing fast with an
// ambiguous committed prefix, every entry is attempted and the caller gets
// a deterministic per-entry result list to reconcile.
type BulkAttributeService struct {
	values      *ProductAttributeService
	productRepo repositories.ProductRepositoryImpl
}

func NewBulkAttributeService(values *ProductAttributeService, productRepo repositories.ProductRepositoryImpl) *BulkAttributeService {
	return &BulkAttributeService{values: values, productRepo: productRepo}
}

// SetValues checks the product once up front, so an unknown product aborts
// the whole call before anything is written.
func (s *BulkAttributeService) SetValues(ctx context.Context, productID string, assignments []BulkAssignment) ([]BulkAssignmentResult, error) {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("id %q: %w", productID, ErrProductNotFound)
	}

	results := make([]BulkAssignmentResult, 0, len(assignments))
	for _, assignment := range assignments {
		value, err := s.values.SetValue(ctx, productID, assignment.AttributeID, assignment.Payload)
		results = append(results, BulkAssignmentResult{
			AttributeID: assignment.AttributeID,
			Value:       value,
			Err:         err,
		})
	}
	return results, nil
}
