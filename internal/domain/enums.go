package domain

// ValidationKind identifies why a checkout was refused
type ValidationKind string

const (
	ValidationMissingCustomerField ValidationKind = "MISSING_CUSTOMER_FIELD"
	ValidationEmptyCart            ValidationKind = "EMPTY_CART"
)

// IsValid checks if the validation kind is known
func (k ValidationKind) IsValid() bool {
	switch k {
	case ValidationMissingCustomerField,
		ValidationEmptyCart:
		return true
	default:
		return false
	}
}

// ChangeKind identifies the mutation reported to cart observers
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
	ChangeCleared ChangeKind = "cleared"
)
