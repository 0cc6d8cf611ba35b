// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sample-app HTTP handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies in place of internal error text.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve, including a corrupt or
	// unreadable database.
	MsgInternalServerError = "internal server error"

	// MsgStoreUnavailable is returned when the user store cannot be reached,
	// is busy or is read-only, or when listing has been switched off.
	MsgStoreUnavailable = "user store is unavailable"

	// MsgRequestTimedOut is returned when the request deadline passed before
	// the store answered.
	MsgRequestTimedOut = "request timed out"
)
