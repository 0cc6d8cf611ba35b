// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// FailureReason tells why a store operation failed.
type FailureReason int

const (
	// ReasonUnknown is used for errors no classifier recognises.
	ReasonUnknown FailureReason = iota
	// ReasonUnavailable means the store could not be opened or reached.
	ReasonUnavailable
	// ReasonConstraint means a schema constraint rejected the statement.
	ReasonConstraint
	// ReasonReadOnly means the store refused to write.
	ReasonReadOnly
	// ReasonBusy means the statement lost a lock, deadlock or serialization race.
	ReasonBusy
	// ReasonCorrupt means the database file or an index is damaged.
	ReasonCorrupt
	// ReasonIO means the storage layer failed to read or write.
	ReasonIO
)

// ErrStoreFailure matches every *Failure via errors.Is.
var ErrStoreFailure = errors.New("store failure")

// Per-reason sentinels. errors.Is(err, ErrBusy) is true for a *Failure whose
// Reason is ReasonBusy.
var (
	ErrUnavailable = errors.New("store unavailable")
	ErrConstraint  = errors.New("constraint violation")
	ErrReadOnly    = errors.New("store is read-only")
	ErrBusy        = errors.New("store is busy")
	ErrCorrupt     = errors.New("store is corrupt")
	ErrIO          = errors.New("store i/o error")
)

var reasonSentinels = map[FailureReason]error{
	ReasonUnavailable: ErrUnavailable,
	ReasonConstraint:  ErrConstraint,
	ReasonReadOnly:    ErrReadOnly,
	ReasonBusy:        ErrBusy,
	ReasonCorrupt:     ErrCorrupt,
	ReasonIO:          ErrIO,
}

func (r FailureReason) String() string {
	switch r {
	case ReasonUnavailable:
		return "unavailable"
	case ReasonConstraint:
		return "constraint"
	case ReasonReadOnly:
		return "read-only"
	case ReasonBusy:
		return "busy"
	case ReasonCorrupt:
		return "corrupt"
	case ReasonIO:
		return "io"
	default:
		return "unknown"
	}
}

// Retryable reports whether an operation that failed for this reason may
// succeed if attempted again.
func (r FailureReason) Retryable() bool {
	return r == ReasonUnavailable || r == ReasonBusy
}

// Failure is the error returned by repository methods when the underlying
// store rejects an operation. Absence of a record is never a Failure.
type Failure struct {
	// Op names the repository operation, e.g. "CreateUser".
	Op     string
	Reason FailureReason
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("store: %s: %s: %v", f.Op, f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is matches [ErrStoreFailure] and the sentinel of f.Reason.
func (f *Failure) Is(target error) bool {
	if target == ErrStoreFailure {
		return true
	}

	sentinel, ok := reasonSentinels[f.Reason]
	return ok && target == sentinel
}

// Retryable reports whether the failed operation may succeed on retry.
func (f *Failure) Retryable() bool {
	return f.Reason.Retryable()
}

// ReasonOf returns the reason of the first *Failure in err's chain, or
// ReasonUnknown when there is none.
func ReasonOf(err error) FailureReason {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}

	return ReasonUnknown
}

func classify(c ErrorClassificator, err error) FailureReason {
	if errors.Is(err, driver.ErrBadConn) {
		return ReasonUnavailable
	}
	if c == nil {
		return ReasonUnknown
	}

	return c.Classify(err)
}
