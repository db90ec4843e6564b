package order

import (
	"fmt"
	"strings"

	"github.com/abusaud/storefront/internal/cart"
	"github.com/abusaud/storefront/internal/domain"
	"github.com/abusaud/storefront/internal/whatsapp"
	"github.com/abusaud/storefront/pkg/errors"
)

const (
	DefaultStoreName      = "حلويات أبو السعود"
	DefaultCurrencySuffix = "ج.م"
)

// Order is the result of a successful checkout
type Order struct {
	Customer domain.CustomerInfo // trimmed
	Lines    []domain.CartLine
	Total    int64
	Message  string
	Link     string
}

// Formatter turns a cart and customer details into an order message and a
// chat deep link
type Formatter struct {
	storeName      string
	currencySuffix string
	linker         *whatsapp.Linker
}

// NewFormatter creates a formatter. Empty storeName or currencySuffix fall
// back to the defaults.
func NewFormatter(storeName, currencySuffix string, linker *whatsapp.Linker) *Formatter {
	if strings.TrimSpace(storeName) == "" {
		storeName = DefaultStoreName
	}
	if strings.TrimSpace(currencySuffix) == "" {
		currencySuffix = DefaultCurrencySuffix
	}
	return &Formatter{
		storeName:      storeName,
		currencySuffix: currencySuffix,
		linker:         linker,
	}
}

// Validate checks the customer fields, then the cart
func (f *Formatter) Validate(customer domain.CustomerInfo, ledger *cart.Ledger) error {
	if missing := customer.MissingFields(); len(missing) > 0 {
		return &errors.ValidationError{
			Kind:   domain.ValidationMissingCustomerField,
			Fields: missing,
		}
	}
	if ledger.IsEmpty() {
		return &errors.ValidationError{Kind: domain.ValidationEmptyCart}
	}
	return nil
}

// Message validates the input and renders the order text
func (f *Formatter) Message(customer domain.CustomerInfo, ledger *cart.Ledger) (string, error) {
	if err := f.Validate(customer, ledger); err != nil {
		return "", err
	}
	return f.render(customer.Trimmed(), ledger.Entries(), ledger.Total()), nil
}

// Checkout validates the input and produces the order message and link.
// It does not open the link.
func (f *Formatter) Checkout(customer domain.CustomerInfo, ledger *cart.Ledger) (*Order, error) {
	if err := f.Validate(customer, ledger); err != nil {
		return nil, err
	}

	trimmed := customer.Trimmed()
	lines := ledger.Entries()
	total := ledger.Total()
	msg := f.render(trimmed, lines, total)

	return &Order{
		Customer: trimmed,
		Lines:    lines,
		Total:    total,
		Message:  msg,
		Link:     f.linker.Link(msg),
	}, nil
}

// FormatPrice renders an amount with the currency suffix
func (f *Formatter) FormatPrice(amount int64) string {
	return fmt.Sprintf("%d %s", amount, f.currencySuffix)
}

func (f *Formatter) render(c domain.CustomerInfo, lines []domain.CartLine, total int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "طلب جديد من موقع %s\n", f.storeName)
	fmt.Fprintf(&b, "الاسم: %s\n", c.Name)
	fmt.Fprintf(&b, "الهاتف: %s\n", c.Phone)
	fmt.Fprintf(&b, "العنوان: %s\n", c.Address)
	b.WriteString("\nالطلبات:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s × %d — %s\n", line.Product.Name, line.Quantity, f.FormatPrice(line.LineTotal))
	}
	fmt.Fprintf(&b, "\nالإجمالي: %s\n", f.FormatPrice(total))
	fmt.Fprintf(&b, "\nشكراً لتعاملكم — %s", f.storeName)

	return b.String()
}
