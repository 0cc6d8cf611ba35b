// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running sample-app server over its HTTP API.
//
// [ServerAdapter] offers the same boolean user API as the in-process
// service.UserManager, so command-line tools can switch between a local
// store and a remote server without changing their logic. Transport errors
// are mapped from HTTP status codes by mapHTTPError, logged, and reported as
// false.
package adapter

import (
	"context"

	"github.com/Infogain-GenAI/sample-app1/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the remote counterpart of service.UserManager.
type ServerAdapter interface {
	service.UserManager

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
