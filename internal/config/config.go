package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/abusaud/storefront/internal/whatsapp"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Store       StoreConfig
	WhatsApp    WhatsAppConfig
	Cart        CartConfig
}

type StoreConfig struct {
	Name           string
	CurrencySuffix string
}

type WhatsAppConfig struct {
	BaseURL     string
	Number      string
	CountryCode string
}

type CartConfig struct {
	ClearOnCheckout bool
	TTL             time.Duration
	SweepInterval   time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	clearOnCheckout, err := strconv.ParseBool(getEnvOrViper("CLEAR_CART_ON_CHECKOUT", "true"))
	if err != nil {
		return nil, fmt.Errorf("CLEAR_CART_ON_CHECKOUT: %w", err)
	}
	ttl, err := time.ParseDuration(getEnvOrViper("CART_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("CART_TTL: %w", err)
	}
	sweep, err := time.ParseDuration(getEnvOrViper("CART_SWEEP_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("CART_SWEEP_INTERVAL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Name:           getEnvOrViper("STORE_NAME", "حلويات أبو السعود"),
			CurrencySuffix: getEnvOrViper("CURRENCY_SUFFIX", "ج.م"),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:     getEnvOrViper("WHATSAPP_BASE_URL", whatsapp.DefaultBaseURL),
			Number:      getEnvOrViper("WHATSAPP_NUMBER", "01125933005"),
			CountryCode: getEnvOrViper("WHATSAPP_COUNTRY_CODE", "20"),
		},
		Cart: CartConfig{
			ClearOnCheckout: clearOnCheckout,
			TTL:             ttl,
			SweepInterval:   sweep,
		},
	}

	// Validate required fields
	if _, err := whatsapp.NormalizeNumber(cfg.WhatsApp.Number, cfg.WhatsApp.CountryCode); err != nil {
		return nil, fmt.Errorf("WHATSAPP_NUMBER is invalid: %w", err)
	}
	if cfg.Cart.TTL < 0 {
		return nil, fmt.Errorf("CART_TTL must not be negative")
	}
	if cfg.Cart.SweepInterval <= 0 {
		return nil, fmt.Errorf("CART_SWEEP_INTERVAL must be positive")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
