package service

import (
	"github.com/google/uuid"

	"github.com/abusaud/storefront/internal/domain"
)

// CartView is a snapshot of a cart taken under its lock
type CartView struct {
	CartID uuid.UUID
	Lines  []domain.CartLine
	Total  int64
}

// CheckoutResult is a successful checkout
type CheckoutResult struct {
	CartID  uuid.UUID
	Link    string
	Message string
	Total   int64
	Lines   []domain.CartLine
	Cleared bool
}
