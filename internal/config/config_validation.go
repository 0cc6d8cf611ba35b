// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var supportedDrivers = map[string]struct{}{
	"sqlite3": {},
	"pgx":     {},
	"mysql":   {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Name == "" {
		return fmt.Errorf("%w: empty app name", ErrInvalidAppConfigs)
	}

	db := cfg.Storage.DB
	if _, ok := supportedDrivers[db.Driver]; !ok {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	// every new connection to a private in-memory database sees its own empty
	// copy, so it only works through a single pooled connection
	if db.Driver == "sqlite3" && isSQLiteInMemory(db.DSN) {
		if !db.Pooled {
			return fmt.Errorf("%w: in-memory sqlite requires pooled mode", ErrInvalidStorageConfigs)
		}
		if db.MaxOpenConns > 1 && !strings.Contains(db.DSN, "cache=shared") {
			return fmt.Errorf("%w: in-memory sqlite needs max open conns 1 or cache=shared", ErrInvalidStorageConfigs)
		}
	}

	if db.CreatedStamp == "" {
		return fmt.Errorf("%w: empty created stamp", ErrInvalidStorageConfigs)
	}

	if db.Pooled && db.MaxOpenConns < 1 {
		return fmt.Errorf("%w: max open conns must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}

func isSQLiteInMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
