package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/cart"
	"github.com/abusaud/storefront/internal/catalog"
	"github.com/abusaud/storefront/internal/domain"
	"github.com/abusaud/storefront/internal/order"
	"github.com/abusaud/storefront/internal/repository"
)

// StorefrontService is the session controller between the HTTP layer and
// the per-visitor cart ledgers
type StorefrontService struct {
	catalog         *catalog.Catalog
	repos           *repository.Repositories
	formatter       *order.Formatter
	clearOnCheckout bool
	logger          *zap.Logger
}

// NewStorefrontService creates a new storefront service
func NewStorefrontService(
	cat *catalog.Catalog,
	repos *repository.Repositories,
	formatter *order.Formatter,
	clearOnCheckout bool,
	logger *zap.Logger,
) *StorefrontService {
	return &StorefrontService{
		catalog:         cat,
		repos:           repos,
		formatter:       formatter,
		clearOnCheckout: clearOnCheckout,
		logger:          logger,
	}
}

// Products returns the catalog in display order
func (s *StorefrontService) Products() []domain.Product {
	return s.catalog.Products()
}

// CreateCart opens a new empty cart session
func (s *StorefrontService) CreateCart(ctx context.Context) (uuid.UUID, error) {
	id, err := s.repos.Cart.Create(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("Cart created", zap.String("cart_id", id.String()))
	return id, nil
}

// GetCart returns the current lines and total
func (s *StorefrontService) GetCart(ctx context.Context, cartID uuid.UUID) (*CartView, error) {
	var view *CartView
	err := s.repos.Cart.View(ctx, cartID, func(l *cart.Ledger) error {
		view = snapshot(cartID, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddItem adds quantity of productID to the cart
func (s *StorefrontService) AddItem(ctx context.Context, cartID uuid.UUID, productID string, quantity int) (*CartView, error) {
	return s.mutate(ctx, cartID, func(l *cart.Ledger) error {
		return l.Add(productID, quantity)
	})
}

// SetQuantity sets the quantity of productID; zero removes it
func (s *StorefrontService) SetQuantity(ctx context.Context, cartID uuid.UUID, productID string, quantity int) (*CartView, error) {
	return s.mutate(ctx, cartID, func(l *cart.Ledger) error {
		return l.SetQuantity(productID, quantity)
	})
}

// AdjustQuantity changes the quantity of an existing entry by delta
func (s *StorefrontService) AdjustQuantity(ctx context.Context, cartID uuid.UUID, productID string, delta int) (*CartView, error) {
	return s.mutate(ctx, cartID, func(l *cart.Ledger) error {
		l.Adjust(productID, delta)
		return nil
	})
}

// RemoveItem drops productID from the cart
func (s *StorefrontService) RemoveItem(ctx context.Context, cartID uuid.UUID, productID string) (*CartView, error) {
	return s.mutate(ctx, cartID, func(l *cart.Ledger) error {
		l.Remove(productID)
		return nil
	})
}

// Checkout validates the customer fields and cart and returns the chat link.
// When the clear-on-checkout policy is on, the cart is emptied after the
// link is built.
func (s *StorefrontService) Checkout(ctx context.Context, cartID uuid.UUID, customer domain.CustomerInfo) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := s.repos.Cart.Update(ctx, cartID, func(l *cart.Ledger) error {
		o, err := s.formatter.Checkout(customer, l)
		if err != nil {
			return err
		}

		result = &CheckoutResult{
			CartID:  cartID,
			Link:    o.Link,
			Message: o.Message,
			Total:   o.Total,
			Lines:   o.Lines,
		}
		if s.clearOnCheckout {
			l.Clear()
			result.Cleared = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Checkout link created",
		zap.String("cart_id", cartID.String()),
		zap.Int("lines", len(result.Lines)),
		zap.Int64("total", result.Total),
		zap.Bool("cleared", result.Cleared),
	)
	return result, nil
}

func (s *StorefrontService) mutate(ctx context.Context, cartID uuid.UUID, fn func(*cart.Ledger) error) (*CartView, error) {
	var view *CartView
	err := s.repos.Cart.Update(ctx, cartID, func(l *cart.Ledger) error {
		if err := fn(l); err != nil {
			return err
		}
		view = snapshot(cartID, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func snapshot(cartID uuid.UUID, l *cart.Ledger) *CartView {
	return &CartView{
		CartID: cartID,
		Lines:  l.Entries(),
		Total:  l.Total(),
	}
}
