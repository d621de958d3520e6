// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyToken is returned by the auth middleware when the device token
	// path segment is empty.
	ErrEmptyToken = errors.New("empty device token in request path")

	// ErrNoUserID is returned when a device route runs without an
	// authenticated user in the request context.
	ErrNoUserID = errors.New("no user ID was given")

	// ErrInvalidBookID is returned when the {bookID} path segment is not a
	// positive integer.
	ErrInvalidBookID = errors.New("invalid book id")

	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("error reading request body")
)
