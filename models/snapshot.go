// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is an immutable capture of the books a user had on the
// device-sync shelf at CreatedAt.
//
// The membership set never changes after creation; the only mutable bit is
// [SnapshotBook.Synced], which moves from false to true exactly once.
type Snapshot struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	Books     []SnapshotBook `json:"books,omitempty"`
}

// SnapshotBook is one membership row of a [Snapshot].
type SnapshotBook struct {
	SnapshotID string `json:"snapshot_id"`
	BookID     int64  `json:"book_id"`
	Synced     bool   `json:"synced"`
}

// BookIDs returns the member book ids in stored order.
func (s Snapshot) BookIDs() []int64 {
	ids := make([]int64, 0, len(s.Books))
	for _, b := range s.Books {
		ids = append(ids, b.BookID)
	}
	return ids
}

// DeletedProgressMarker records that a removal of BookID has already been
// emitted while moving a user towards SnapshotID.
type DeletedProgressMarker struct {
	SnapshotID string `json:"snapshot_id"`
	UserID     int64  `json:"user_id"`
	BookID     int64  `json:"book_id"`
}

// Page is one slice of a snapshot diff. BookIDs are ascending; HasMore
// reports whether rows beyond this page are still pending.
type Page struct {
	BookIDs []int64
	HasMore bool
}

// Len returns the number of books in the page.
func (p Page) Len() int {
	return len(p.BookIDs)
}
