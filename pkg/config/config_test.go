package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		ItemStore:          StoreGenerated,
		LogLevel:           "info",
		Environment:        EnvProduction,
		CORSAllowedOrigins: "https://items.example.com",
	}
}

func TestUsesDatabase(t *testing.T) {
	tests := map[string]bool{
		StoreMemory:     false,
		StorePositional: true,
		StoreNamed:      true,
		StoreGenerated:  true,
	}
	for store, want := range tests {
		cfg := &Config{ItemStore: store}
		if got := cfg.UsesDatabase(); got != want {
			t.Errorf("UsesDatabase(%q) = %v, want %v", store, got, want)
		}
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is skipped", func(t *testing.T) {
		cfg := &Config{Environment: EnvDevelopment, ItemStore: StoreMemory, LogLevel: "debug"}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid production config", func(t *testing.T) {
		if err := ValidateForProduction(productionConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"memory store", func(c *Config) { c.ItemStore = StoreMemory }, "ITEM_STORE"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = "*" }, "CORS_ALLOWED_ORIGINS"},
		{"seed data", func(c *Config) { c.SeedData = true }, "SEED_DATA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
