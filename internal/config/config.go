// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// sample-app1 service. It aggregates all sub-configurations and is
// populated by merging values from built-in defaults, an optional .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the title, version and
	// log verbosity.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, timeout and static file settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by userctl when it talks to a running
	// server instead of the local database.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotenvPath is the path of the .env file loaded into the process
	// environment before env parsing. A missing file is ignored.
	DotenvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the application title.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the version string exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Debug switches the log level to Debug.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// IsProduction marks a production deployment.
	// Env: APP_IS_PRODUCTION
	IsProduction bool `env:"IS_PRODUCTION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the SQL dialect: "sqlite3", "pgx" or "mysql".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For SQLite it is the database file path
	// (e.g. "data/app.db"); for PostgreSQL and MySQL a driver connection
	// string.
	// Env: STORAGE_DB_DSN (legacy alias: DB_PATH)
	DSN string `env:"DSN"`

	// CreatedStamp is the fixed value stored in users.created on insert.
	// Env: STORAGE_DB_CREATED_STAMP
	CreatedStamp string `env:"CREATED_STAMP"`

	// Pooled switches from a fresh connection per call to a bounded pool.
	// Env: STORAGE_DB_POOLED
	Pooled bool `env:"POOLED"`

	// MaxOpenConns bounds the pool when Pooled is set.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// RequireAffectedRows makes update and delete report a not-found error
	// when no row matched.
	// Env: STORAGE_DB_REQUIRE_AFFECTED_ROWS
	RequireAffectedRows bool `env:"REQUIRE_AFFECTED_ROWS"`

	// ConnectRetries is how many extra attempts startup makes when the
	// database is unreachable or busy. Zero disables retrying.
	// Env: STORAGE_DB_CONNECT_RETRIES
	ConnectRetries uint64 `env:"CONNECT_RETRIES"`

	// ConnectRetryDelay is the base delay of the exponential backoff between
	// startup attempts.
	// Env: STORAGE_DB_CONNECT_RETRY_DELAY
	ConnectRetryDelay time.Duration `env:"CONNECT_RETRY_DELAY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":8000").
	// Env: SERVER_ADDRESS (legacy: PORT)
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory served at "/" after all API routes.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Adapter holds the outbound settings used by the remote client.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of a running server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DebugInProduction reports whether debug logging is enabled on a production
// deployment. Callers log a warning at startup when it is true.
func (cfg *StructuredConfig) DebugInProduction() bool {
	return cfg.App.Debug && cfg.App.IsProduction
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file (loaded into the process environment)
//  3. Environment variables
//  4. Command-line flags parsed from args
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotenv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
