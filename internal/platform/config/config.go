// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It uses 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct with defaults and required-field validation.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through their
constructors. No global state is kept.
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Boardbuddy API server and
// its seed command.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Token revocation list (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTPubKeyPath verifies access tokens issued by the external auth service.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// JWTPrivKeyPath is only needed by the seed command to mint development tokens.
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// SearchRadiusBands are the adjacency bands, in kilometres, precomputed for
	// every district. A member's radius is compared against these values.
	SearchRadiusBands []int `env:"SEARCH_RADIUS_BANDS" envDefault:"2,5,10" envSeparator:","`

	// DistrictSeedPath is the CSV (sido,sgg,emd,x,y) loaded by the seed command.
	DistrictSeedPath string `env:"DISTRICT_SEED_PATH" envDefault:"./data/seed/districts.csv"`
}

// # Configuration Loading

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are never overridden, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return nil
}

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if len(cfg.SearchRadiusBands) == 0 {
		return nil, fmt.Errorf("config: SEARCH_RADIUS_BANDS must list at least one band")
	}
	for _, band := range cfg.SearchRadiusBands {
		if band <= 0 {
			return nil, fmt.Errorf("config: SEARCH_RADIUS_BANDS must be positive, got %d", band)
		}
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
