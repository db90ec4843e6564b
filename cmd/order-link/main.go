package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/cart"
	"github.com/abusaud/storefront/internal/catalog"
	"github.com/abusaud/storefront/internal/config"
	"github.com/abusaud/storefront/internal/domain"
	"github.com/abusaud/storefront/internal/order"
	"github.com/abusaud/storefront/internal/whatsapp"
	"github.com/abusaud/storefront/pkg/errors"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Println("Usage: go run cmd/order-link/main.go <name> <phone> <address> <product-id>[=qty]...")
		fmt.Println("Example: go run cmd/order-link/main.go \"Sara\" \"01001234567\" \"Cairo\" dolma-250=2 pistachio-250")
		fmt.Println()
		fmt.Println("Products:")
		for _, p := range catalog.Default().Products() {
			fmt.Printf("  %-16s %s (%d)\n", p.ID, p.Name, p.Price)
		}
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	linker, err := whatsapp.NewLinker(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Number, cfg.WhatsApp.CountryCode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid WhatsApp configuration: %v\n", err)
		os.Exit(1)
	}

	ledger := cart.NewLedger(catalog.Default())
	for _, arg := range os.Args[4:] {
		productID, qty, err := parseItem(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid item %q: %v\n", arg, err)
			os.Exit(1)
		}
		if err := ledger.Add(productID, qty); err != nil {
			logger.Warn("Skipping item", zap.String("product_id", productID), zap.Error(err))
		}
	}

	customer := domain.CustomerInfo{
		Name:    os.Args[1],
		Phone:   os.Args[2],
		Address: os.Args[3],
	}

	formatter := order.NewFormatter(cfg.Store.Name, cfg.Store.CurrencySuffix, linker)
	result, err := formatter.Checkout(customer, ledger)
	if err != nil {
		var ve *errors.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(os.Stderr, "❌ Cannot build order: %v\n", ve)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Failed to build order: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n\n", result.Message)
	fmt.Printf("Total: %s\n\n", formatter.FormatPrice(result.Total))
	fmt.Println(result.Link)
}

// parseItem splits "id=qty"; a bare id means one
func parseItem(arg string) (string, int, error) {
	id, rawQty, found := strings.Cut(arg, "=")
	if id == "" {
		return "", 0, fmt.Errorf("missing product ID")
	}
	if !found {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("quantity must be a positive whole number")
	}
	return id, qty, nil
}
