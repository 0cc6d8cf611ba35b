// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Legacy variable names still honored when the structured ones are unset.
const (
	legacyDBPathEnv = "DB_PATH"
	legacyPortEnv   = "PORT"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// DB_PATH and PORT fill STORAGE_DB_DSN and SERVER_ADDRESS when those are not
// set.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv(legacyDBPathEnv)
	}

	if port := os.Getenv(legacyPortEnv); cfg.Server.HTTPAddress == "" && port != "" {
		cfg.Server.HTTPAddress = ":" + port
	}

	return nil
}
