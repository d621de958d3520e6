// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-kobo-sync HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgSyncRoundFailed is returned when a library sync round fails.
	MsgSyncRoundFailed = "error running sync round"

	// MsgGetReadingStateFailed is returned when the reading state of a book
	// cannot be loaded.
	MsgGetReadingStateFailed = "error getting reading state"

	// MsgUpdateReadingStateFailed is returned when a device reading-state
	// push cannot be applied.
	MsgUpdateReadingStateFailed = "error updating reading state"

	// MsgUpstreamFailed is returned when a proxied vendor call fails.
	MsgUpstreamFailed = "error forwarding request upstream"

	// MsgBookDownloadNotServed is logged when a download link reaches the
	// sync API instead of the library file server.
	MsgBookDownloadNotServed = "book download reached the sync API"
)
