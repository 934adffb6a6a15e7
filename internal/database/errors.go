// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package database

import (
	"errors"
	"fmt"

	"github.com/tomtom215/tableside/internal/models"
)

var (
	// ErrNotFound is returned when a lookup by ID matches no document.
	ErrNotFound = errors.New("not found")

	// ErrInternal is returned for any store failure other than a missing document.
	ErrInternal = errors.New("internal store error")

	// ErrStoreUnavailable is returned without contacting MongoDB while the
	// circuit breaker is open. It wraps ErrInternal.
	ErrStoreUnavailable = fmt.Errorf("store unavailable: %w", ErrInternal)

	// ErrCallerAborted is returned when the caller's context ended while an
	// operation was in flight. It wraps ErrInternal and never counts against
	// the circuit breaker.
	ErrCallerAborted = fmt.Errorf("caller aborted: %w", ErrInternal)
)

// ErrorKind classifies errors surfaced by the store.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindInvalidID means the caller supplied a malformed identifier.
	KindInvalidID
	// KindNotFound means the referenced record does not exist.
	KindNotFound
	// KindInternal covers everything else.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidID:
		return "invalid_id"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Kind classifies err. Errors not wrapping a known sentinel are internal.
// ErrInternal wins over ErrInvalidID so that a stored document with a
// malformed reference is reported as a store fault.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInternal):
		return KindInternal
	case errors.Is(err, models.ErrInvalidID):
		return KindInvalidID
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// internalError wraps a driver failure so that it matches ErrInternal while
// keeping the driver error in the chain for logging.
func internalError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

// abortedError marks err as the result of the caller going away.
func abortedError(err error) error {
	return fmt.Errorf("%w: %w", ErrCallerAborted, err)
}
