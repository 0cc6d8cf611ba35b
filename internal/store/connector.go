// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
)

// openFunc opens a database handle. It matches sqlx.Open and is swapped in
// tests.
type openFunc func(driverName, dsn string) (*sqlx.DB, error)

// perCallConnector opens a fresh handle for every acquisition and closes it
// on release. Nothing is shared between calls.
type perCallConnector struct {
	driverName string
	dsn        string
	open       openFunc
	inUse      atomic.Int64
}

// NewPerCallConnector returns a [Connector] that opens a new connection for
// every Acquire.
func NewPerCallConnector(driverName, dsn string) Connector {
	return newPerCallConnector(driverName, dsn, sqlx.Open)
}

func newPerCallConnector(driverName, dsn string, open openFunc) *perCallConnector {
	return &perCallConnector{
		driverName: driverName,
		dsn:        dsn,
		open:       open,
	}
}

func (c *perCallConnector) Acquire(ctx context.Context) (Conn, func() error, error) {
	db, err := c.open(c.driverName, c.dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; ping to surface an unreachable store here
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	c.inUse.Add(1)
	return db, releaseOnce(&c.inUse, db.Close), nil
}

func (c *perCallConnector) InUse() int64 {
	return c.inUse.Load()
}

func (c *perCallConnector) Close() error {
	return nil
}

// poolConnector hands out dedicated connections from one bounded pool.
type poolConnector struct {
	db    *sqlx.DB
	inUse atomic.Int64
}

// NewPoolConnector opens a pool of at most maxOpen connections and checks
// that the store is reachable.
func NewPoolConnector(ctx context.Context, driverName, dsn string, maxOpen int) (Connector, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	pool := newPoolConnector(db, maxOpen)
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	return pool, nil
}

func newPoolConnector(db *sqlx.DB, maxOpen int) *poolConnector {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	return &poolConnector{db: db}
}

func (c *poolConnector) Acquire(ctx context.Context) (Conn, func() error, error) {
	conn, err := c.db.Connx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	c.inUse.Add(1)
	return conn, releaseOnce(&c.inUse, conn.Close), nil
}

func (c *poolConnector) InUse() int64 {
	return c.inUse.Load()
}

func (c *poolConnector) Close() error {
	return c.db.Close()
}

// releaseOnce wraps closeFn so that the in-use counter is decremented and the
// handle closed exactly once, however many times the result is called.
func releaseOnce(inUse *atomic.Int64, closeFn func() error) func() error {
	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			inUse.Add(-1)
			err = closeFn()
		})
		return err
	}
}
