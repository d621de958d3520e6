// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncToken is the continuation state a device carries between sync calls.
// It never lives in the database; it travels in the X-Kobo-SyncToken header.
//
// An empty string means "not set" for every field. The zero value is the
// bootstrap token.
type SyncToken struct {
	// OngoingSnapshotID is set while a round is being paged through.
	OngoingSnapshotID string `json:"o,omitempty"`

	// LastSuccessfulSnapshotID is the snapshot the device fully received last.
	LastSuccessfulSnapshotID string `json:"l,omitempty"`

	// RawUpstreamToken is the vendor's own sync token, passed through untouched.
	RawUpstreamToken string `json:"r,omitempty"`
}

// IsBootstrap reports whether the device has never finished a round.
func (t SyncToken) IsBootstrap() bool {
	return t.LastSuccessfulSnapshotID == ""
}

// IsContinuing reports whether a round is mid-pagination.
func (t SyncToken) IsContinuing() bool {
	return t.OngoingSnapshotID != ""
}

// WithUpstreamToken returns a copy of t carrying raw as the upstream token.
// An empty raw keeps the current value.
func (t SyncToken) WithUpstreamToken(raw string) SyncToken {
	if raw != "" {
		t.RawUpstreamToken = raw
	}
	return t
}

// Continuing returns the token for a round that still has pages left.
func (t SyncToken) Continuing(currentSnapshotID string) SyncToken {
	t.OngoingSnapshotID = currentSnapshotID
	return t
}

// Completed returns the token for a round that finished on currentSnapshotID.
func (t SyncToken) Completed(currentSnapshotID string) SyncToken {
	t.OngoingSnapshotID = ""
	t.LastSuccessfulSnapshotID = currentSnapshotID
	return t
}
