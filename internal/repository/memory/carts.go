package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/cart"
	"github.com/abusaud/storefront/internal/catalog"
	"github.com/abusaud/storefront/internal/repository"
	"github.com/abusaud/storefront/pkg/errors"
)

type cartSession struct {
	mu       sync.Mutex
	ledger   *cart.Ledger
	lastSeen time.Time
}

type cartRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*cartSession
	catalog  *catalog.Catalog
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewCartRepository creates an in-memory cart store. A ttl of zero keeps
// sessions until they are deleted.
func NewCartRepository(cat *catalog.Catalog, ttl time.Duration, logger *zap.Logger) *cartRepository {
	return &cartRepository{
		sessions: make(map[uuid.UUID]*cartSession),
		catalog:  cat,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// NewRepositories creates all in-memory repositories
func NewRepositories(cat *catalog.Catalog, cartTTL time.Duration, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Cart: NewCartRepository(cat, cartTTL, logger),
	}
}

func (r *cartRepository) Create(ctx context.Context) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	ledger := cart.NewLedger(r.catalog)
	ledger.OnChange(func(c cart.Change) {
		r.logger.Debug("Cart changed",
			zap.String("cart_id", id.String()),
			zap.String("kind", string(c.Kind)),
			zap.String("product_id", c.ProductID),
			zap.Int("quantity", c.Quantity),
		)
	})

	r.mu.Lock()
	r.sessions[id] = &cartSession{ledger: ledger, lastSeen: r.now()}
	r.mu.Unlock()

	return id, nil
}

func (r *cartRepository) View(ctx context.Context, id uuid.UUID, fn func(*cart.Ledger) error) error {
	return r.with(ctx, id, fn)
}

func (r *cartRepository) Update(ctx context.Context, id uuid.UUID, fn func(*cart.Ledger) error) error {
	return r.with(ctx, id, fn)
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return &errors.ErrNotFound{Resource: "cart", ID: id.String()}
	}
	delete(r.sessions, id)
	return nil
}

func (r *cartRepository) Sweep(ctx context.Context, now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		expired := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if expired {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *cartRepository) with(ctx context.Context, id uuid.UUID, fn func(*cart.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return &errors.ErrNotFound{Resource: "cart", ID: id.String()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = r.now()
	return fn(s.ledger)
}
