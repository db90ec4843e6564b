package cart

import (
	"github.com/abusaud/storefront/internal/catalog"
	"github.com/abusaud/storefront/internal/domain"
	"github.com/abusaud/storefront/pkg/errors"
)

// Change describes a mutation that altered the ledger
type Change struct {
	Kind      domain.ChangeKind
	ProductID string
	Quantity  int // quantity after the change; 0 when the entry was removed
}

// Observer is called synchronously after every state-changing mutation
type Observer func(Change)

// Ledger records requested quantities per product for one visitor.
// Every key present has a quantity of at least 1. A Ledger is not safe for
// concurrent use.
type Ledger struct {
	catalog    *catalog.Catalog
	quantities map[string]int
	order      []string
	observers  []Observer
}

// NewLedger creates an empty ledger priced against cat
func NewLedger(cat *catalog.Catalog) *Ledger {
	return &Ledger{
		catalog:    cat,
		quantities: make(map[string]int),
	}
}

// OnChange registers an observer
func (l *Ledger) OnChange(o Observer) {
	l.observers = append(l.observers, o)
}

// Add increments the quantity of productID by quantity, creating the entry
// if needed. Quantities below 1 count as 1 and the result saturates at
// MaxQuantity. Unknown products leave the ledger untouched and return
// *errors.ErrUnknownProduct.
func (l *Ledger) Add(productID string, quantity int) error {
	if !l.catalog.Contains(productID) {
		return &errors.ErrUnknownProduct{ProductID: productID}
	}
	if quantity < 1 {
		quantity = 1
	}

	if current, ok := l.quantities[productID]; ok {
		next := addQuantity(current, quantity)
		if next == current {
			return nil
		}
		l.quantities[productID] = next
		l.notify(Change{Kind: domain.ChangeUpdated, ProductID: productID, Quantity: next})
		return nil
	}

	quantity = addQuantity(0, quantity)
	l.quantities[productID] = quantity
	l.order = append(l.order, productID)
	l.notify(Change{Kind: domain.ChangeAdded, ProductID: productID, Quantity: quantity})
	return nil
}

// SetQuantity sets the entry to exactly quantity, capped at MaxQuantity. A
// quantity of zero or less removes the entry. Setting a positive quantity on a product absent from the
// catalog returns *errors.ErrUnknownProduct.
func (l *Ledger) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		l.Remove(productID)
		return nil
	}
	if !l.catalog.Contains(productID) {
		return &errors.ErrUnknownProduct{ProductID: productID}
	}
	quantity = addQuantity(0, quantity)

	current, ok := l.quantities[productID]
	if !ok {
		l.quantities[productID] = quantity
		l.order = append(l.order, productID)
		l.notify(Change{Kind: domain.ChangeAdded, ProductID: productID, Quantity: quantity})
		return nil
	}
	if current == quantity {
		return nil
	}

	l.quantities[productID] = quantity
	l.notify(Change{Kind: domain.ChangeUpdated, ProductID: productID, Quantity: quantity})
	return nil
}

// Adjust adds delta to an existing entry, removing it when the result drops
// to zero or below and saturating at MaxQuantity. Absent entries are ignored.
func (l *Ledger) Adjust(productID string, delta int) {
	current, ok := l.quantities[productID]
	if !ok || delta == 0 {
		return
	}
	next := addQuantity(current, delta)
	if next <= 0 {
		l.Remove(productID)
		return
	}
	if next == current {
		return
	}
	l.quantities[productID] = next
	l.notify(Change{Kind: domain.ChangeUpdated, ProductID: productID, Quantity: next})
}

// Remove deletes the entry for productID, if any
func (l *Ledger) Remove(productID string) {
	if _, ok := l.quantities[productID]; !ok {
		return
	}
	delete(l.quantities, productID)
	for i, id := range l.order {
		if id == productID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.notify(Change{Kind: domain.ChangeRemoved, ProductID: productID})
}

// Clear removes every entry
func (l *Ledger) Clear() {
	if len(l.order) == 0 {
		return
	}
	l.quantities = make(map[string]int)
	l.order = nil
	l.notify(Change{Kind: domain.ChangeCleared})
}

// Quantity returns the requested quantity, 0 when absent
func (l *Ledger) Quantity(productID string) int {
	return l.quantities[productID]
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.order)
}

// IsEmpty reports whether the ledger has no entries
func (l *Ledger) IsEmpty() bool {
	return len(l.order) == 0
}

// Total returns the sum of price * quantity over all entries
func (l *Ledger) Total() int64 {
	var total int64
	for _, id := range l.order {
		p, ok := l.catalog.Lookup(id)
		if !ok {
			continue
		}
		total = addTotal(total, lineTotal(p.Price, l.quantities[id]))
	}
	return total
}

// Entries returns the entries in the order they were first added
func (l *Ledger) Entries() []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(l.order))
	for _, id := range l.order {
		p, ok := l.catalog.Lookup(id)
		if !ok {
			continue
		}
		qty := l.quantities[id]
		lines = append(lines, domain.CartLine{
			Product:   p,
			Quantity:  qty,
			LineTotal: lineTotal(p.Price, qty),
		})
	}
	return lines
}

func (l *Ledger) notify(c Change) {
	for _, o := range l.observers {
		o(c)
	}
}
