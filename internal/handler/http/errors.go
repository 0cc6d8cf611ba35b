// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. Callers can match
// against them with [errors.Is].
var (
	// ErrTitleRequired is returned when POST /api/todos carries no title,
	// neither in the query string nor in the JSON body.
	ErrTitleRequired = errors.New("title required")

	// ErrEmailRequired is returned by the lookup endpoint when the "email"
	// query parameter is missing.
	ErrEmailRequired = errors.New("email required")
)
