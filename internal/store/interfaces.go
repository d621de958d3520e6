// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-kobo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Transactor runs fn inside one database transaction. Repositories called
// with the ctx passed to fn take part in that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SnapshotRepository persists snapshots, their membership rows and the
// deleted-progress markers, and answers the diff queries between two
// snapshots. Every paging query orders by book id.
type SnapshotRepository interface {
	CreateSnapshot(ctx context.Context, snapshot models.Snapshot) error
	FindSnapshot(ctx context.Context, id string, userID int64) (models.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
	// DeleteSnapshotsExcept removes every snapshot of the user other than
	// keepID, with their rows and markers.
	DeleteSnapshotsExcept(ctx context.Context, userID int64, keepID string) error

	// ExistingBookIDs returns current rows that are also in previous and
	// still unsynced.
	ExistingBookIDs(ctx context.Context, previousID, currentID string) ([]int64, error)
	// AddedBookIDs returns up to limit unsynced current rows absent from previous.
	AddedBookIDs(ctx context.Context, previousID, currentID string, limit int) ([]int64, error)
	// RemovedBookIDs returns up to limit previous rows absent from current
	// that have no marker for (currentID, userID) yet.
	RemovedBookIDs(ctx context.Context, previousID, currentID string, userID int64, limit int) ([]int64, error)
	// UnsyncedBookIDs returns up to limit unsynced rows of the snapshot.
	UnsyncedBookIDs(ctx context.Context, snapshotID string, limit int) ([]int64, error)

	MarkSynced(ctx context.Context, snapshotID string, bookIDs []int64) error
	SaveDeletedMarkers(ctx context.Context, markers []models.DeletedProgressMarker) error
}

// BookRepository reads library books with their metadata.
type BookRepository interface {
	FindBooksByIDs(ctx context.Context, ids []int64) ([]models.Book, error)
}

// ShelfRepository answers shelf membership questions.
type ShelfRepository interface {
	// DeviceShelfBookIDs returns the distinct ids of books on the user's
	// device-sync shelves.
	DeviceShelfBookIDs(ctx context.Context, userID int64) ([]int64, error)
}

// ProgressRepository reads and writes per (user, book) reading progress.
type ProgressRepository interface {
	FindProgress(ctx context.Context, userID int64, bookIDs []int64) (map[int64]models.ReadingProgress, error)
	// PendingProgressInSnapshot returns progress rows of books in the
	// snapshot that carry a status change or a device report.
	PendingProgressInSnapshot(ctx context.Context, userID int64, snapshotID string) ([]models.ReadingProgress, error)
	SaveProgress(ctx context.Context, progress models.ReadingProgress) error
	MarkStatusSent(ctx context.Context, userID int64, bookIDs []int64, at time.Time) error
	MarkProgressSent(ctx context.Context, userID int64, bookIDs []int64, at time.Time) error
}

// SettingsRepository stores per-user overrides of the sync defaults.
type SettingsRepository interface {
	FindUserSettings(ctx context.Context, userID int64) (models.UserSyncSettings, error)
	SaveUserSettings(ctx context.Context, settings models.UserSyncSettings) error
}
