package services

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors surfaced by the attribute engine. All of them are
// client-correctable; handlers map them onto HTTP statuses.
var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrBindingNotFound   = errors.New("category attribute binding not found")
	ErrValueNotFound     = errors.New("product attribute value not found")

	// ErrInvalidDefinition means an attribute create/update pairs options
	// with a non-select type, or a select type with no options.
	ErrInvalidDefinition = errors.New("invalid attribute definition")

	// ErrTypeLocked means an update tried to change an attribute's type
	// while product values referencing it still exist.
	ErrTypeLocked = errors.New("attribute type is locked by existing values")

	// ErrInvalidReference means a category assignment batch named one or
	// more unknown attributes; the whole batch is rejected.
	ErrInvalidReference = errors.New("unknown attribute reference")

	// ErrHasDependents blocks deleting an attribute that category bindings
	// or product values still reference.
	ErrHasDependents = errors.New("attribute still has dependent bindings or values")

	ErrDuplicateCode = errors.New("attribute code already in use")
)

// ValidationError reports a value payload that fails the type rule of its
// attribute. InvalidOptionIDs lists the offending ids for select types.
type ValidationError struct {
	AttributeCode    string
	Message          string
	InvalidOptionIDs []string
}

func (e *ValidationError) Error() string {
	if len(e.InvalidOptionIDs) > 0 {
		return fmt.Sprintf("attribute %s: %s: %s", e.AttributeCode, e.Message, strings.Join(e.InvalidOptionIDs, ", "))
	}
	return fmt.Sprintf("attribute %s: %s", e.AttributeCode, e.Message)
}
