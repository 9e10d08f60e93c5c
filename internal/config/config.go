package config

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/viper"

	"github.com/buildtall-systems/scoopshop/internal/store"
)

// Config holds all application configuration.
type Config struct {
	Verbose bool
	Shop    ShopConfig
}

// ShopConfig holds store settings.
type ShopConfig struct {
	Stock map[string]float64 // opening inventory in lbs per flavor
}

// Load reads configuration from Viper and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{
		Verbose: viper.GetBool("verbose"),
	}

	stock, err := parseStock(viper.GetStringMapString("stock"))
	if err != nil {
		return nil, err
	}
	cfg.Shop.Stock = stock

	// Apply defaults
	if len(cfg.Shop.Stock) == 0 {
		cfg.Shop.Stock = store.DefaultStock()
	}

	return cfg, nil
}

func parseStock(raw map[string]string) (map[string]float64, error) {
	stock := make(map[string]float64, len(raw))
	for flavor, value := range raw {
		qty, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing stock for %s: %w", flavor, err)
		}
		if math.IsNaN(qty) || math.IsInf(qty, 0) {
			return nil, fmt.Errorf("stock for %s must be a finite number", flavor)
		}
		if qty < 0 {
			return nil, fmt.Errorf("stock for %s must not be negative", flavor)
		}
		stock[flavor] = qty
	}
	return stock, nil
}
