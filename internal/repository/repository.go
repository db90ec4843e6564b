package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abusaud/storefront/internal/cart"
)

// CartRepository keeps one cart ledger per visitor session.
// View and Update run fn while holding that cart's lock; fn must not retain
// the ledger after returning.
type CartRepository interface {
	Create(ctx context.Context) (uuid.UUID, error)
	View(ctx context.Context, id uuid.UUID, fn func(*cart.Ledger) error) error
	Update(ctx context.Context, id uuid.UUID, fn func(*cart.Ledger) error) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Sweep drops sessions idle since before now minus the TTL and returns
	// how many were removed
	Sweep(ctx context.Context, now time.Time) int
}

// Repositories groups the storefront's repositories
type Repositories struct {
	Cart CartRepository
}
