package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/abusaud/storefront/internal/domain"
)

// ErrNotFound is returned when a cart session does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnknownProduct is returned when a cart operation references a product
// that is not part of the catalog. The cart is left unchanged.
type ErrUnknownProduct struct {
	ProductID string
}

func (e *ErrUnknownProduct) Error() string {
	return fmt.Sprintf("unknown product: %q", e.ProductID)
}

// ValidationError is returned by checkout before any message text is built
type ValidationError struct {
	Kind   domain.ValidationKind
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed: %s (%s)", e.Kind, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("validation failed: %s", e.Kind)
}

// As is errors.As, re-exported so callers need only this package
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// IsValidation reports whether err is a ValidationError of the given kind
func IsValidation(err error, kind domain.ValidationKind) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve) && ve.Kind == kind
}
