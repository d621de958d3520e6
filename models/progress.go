// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReadStatus is the library's own read-status of a book for a user.
type ReadStatus string

const (
	ReadStatusUnread        ReadStatus = "UNREAD"
	ReadStatusReading       ReadStatus = "READING"
	ReadStatusReRead        ReadStatus = "RE_READING"
	ReadStatusPartiallyRead ReadStatus = "PARTIALLY_READ"
	ReadStatusPaused        ReadStatus = "PAUSED"
	ReadStatusRead          ReadStatus = "READ"
	ReadStatusWontRead      ReadStatus = "WONT_READ"
	ReadStatusAbandoned     ReadStatus = "ABANDONED"
	ReadStatusUnset         ReadStatus = "UNSET"
)

// BookLocation is the last position reported by a device.
type BookLocation struct {
	Value  string `json:"value"`
	Type   string `json:"type"`
	Source string `json:"source"`
}

// ReadingProgress is the per (user, book) progress row.
//
// Four timestamps drive the two-way reconciliation:
//   - StatusModifiedTime / StatusSentTime: local status changes and when they
//     were last pushed to a device;
//   - ProgressReceivedTime / ProgressSentTime: device progress reports and
//     when they were last echoed back in a sync round.
type ReadingProgress struct {
	UserID int64 `json:"user_id"`
	BookID int64 `json:"book_id"`

	ProgressPercent *float64      `json:"progress_percent,omitempty"`
	Location        *BookLocation `json:"location,omitempty"`
	ReadStatus      *ReadStatus   `json:"read_status,omitempty"`

	StatusModifiedTime   *time.Time `json:"status_modified_time,omitempty"`
	StatusSentTime       *time.Time `json:"status_sent_time,omitempty"`
	ProgressReceivedTime *time.Time `json:"progress_received_time,omitempty"`
	ProgressSentTime     *time.Time `json:"progress_sent_time,omitempty"`
	DateFinished         *time.Time `json:"date_finished,omitempty"`
}

// SyncSettings is the effective per-user view of the feature toggles and
// thresholds that influence a sync round.
type SyncSettings struct {
	// ConvertCbxToEpub allows comic archives to be delivered as converted EPUBs.
	ConvertCbxToEpub bool
	// CbxConversionLimitMB is the largest comic archive eligible for conversion.
	CbxConversionLimitMB int64
	// ConvertToKepub declares EPUBs as KEPUB downloads.
	ConvertToKepub bool

	// ReadingThreshold and FinishedThreshold are progress percentages at which
	// a device report moves a book to READING and READ.
	ReadingThreshold  float64
	FinishedThreshold float64

	// PageSize is the number of local entitlements emitted per round.
	PageSize int
	// StatusSyncBuffer is how long after a status push incoming device
	// reports may not overwrite the read status.
	StatusSyncBuffer time.Duration
}
