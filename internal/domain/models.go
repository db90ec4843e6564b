package domain

import "strings"

// Product represents a catalog item
type Product struct {
	ID          string
	Name        string
	Price       int64
	Description string
	ImageRef    string // empty when the view should render a placeholder
}

// HasImage reports whether the product carries an image reference
func (p Product) HasImage() bool {
	return p.ImageRef != ""
}

// CartLine is one cart entry resolved against the catalog
type CartLine struct {
	Product   Product
	Quantity  int
	LineTotal int64
}

// CustomerInfo holds the checkout form fields as typed by the visitor
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// Trimmed returns a copy with leading and trailing whitespace removed
func (c CustomerInfo) Trimmed() CustomerInfo {
	return CustomerInfo{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

// MissingFields lists the names of fields that are empty after trimming,
// in form order
func (c CustomerInfo) MissingFields() []string {
	t := c.Trimmed()
	var missing []string
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Phone == "" {
		missing = append(missing, "phone")
	}
	if t.Address == "" {
		missing = append(missing, "address")
	}
	return missing
}
