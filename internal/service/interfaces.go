// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-kobo-sync/models"
)

// AuthService issues and validates the device tokens embedded in sync URLs.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// SettingsService resolves the sync settings in effect for a user.
type SettingsService interface {
	// EffectiveSettings returns the app defaults with the user's stored
	// overrides applied.
	EffectiveSettings(ctx context.Context, userID int64) (models.SyncSettings, error)
	UpdateUserSettings(ctx context.Context, settings models.UserSyncSettings) error
}

// SnapshotStore creates and retrieves immutable captures of a user's
// device-sync shelf.
type SnapshotStore interface {
	// Create captures the eligible books currently on the device shelf.
	Create(ctx context.Context, userID int64, settings models.SyncSettings) (models.Snapshot, error)
	// FindByIDAndUser returns false when the snapshot does not exist or
	// belongs to another user.
	FindByIDAndUser(ctx context.Context, id string, userID int64) (models.Snapshot, bool, error)
	// DeleteByID retires a snapshot together with its deleted-progress markers.
	DeleteByID(ctx context.Context, id string) error
	// RetireAllExcept deletes every snapshot of the user other than keepID,
	// including the ones left behind by rounds that never completed.
	RetireAllExcept(ctx context.Context, userID int64, keepID string) error
}

// DiffEngine pages through the differences between two snapshots. Every page
// is ordered by book id and every returned row is recorded as delivered
// before the page is returned.
type DiffEngine interface {
	ExistingPage(ctx context.Context, previousID, currentID string) (models.Page, error)
	AddedPage(ctx context.Context, previousID, currentID string, n int) (models.Page, error)
	RemovedPage(ctx context.Context, previousID, currentID string, userID int64, n int) (models.Page, error)
	UnsyncedPage(ctx context.Context, currentID string, n int) (models.Page, error)
}

// EntitlementBuilder renders books as vendor entitlements.
type EntitlementBuilder interface {
	IsBookSupportedForKobo(book models.Book, settings models.SyncSettings) bool
	GenerateNewEntitlements(ctx context.Context, req EntitlementRequest) (BuildResult, error)
	GenerateChangedEntitlements(ctx context.Context, req EntitlementRequest) (BuildResult, error)
}

// SyncService runs library sync rounds.
type SyncService interface {
	Sync(ctx context.Context, req SyncRequest) (SyncResult, error)
}

// ReadingStateService serves the per-book reading state endpoints.
type ReadingStateService interface {
	GetReadingState(ctx context.Context, userID, bookID int64) ([]models.KoboReadingState, error)
	// UpdateReadingStates applies the device reports on bookID; reports
	// naming any other book are ignored.
	UpdateReadingStates(ctx context.Context, userID, bookID int64, req models.ReadingStateUpdateRequest) (models.ReadingStateUpdateResponse, error)
}

// ReadingStateServiceWrapper decorates a ReadingStateService, e.g. with
// input validation.
type ReadingStateServiceWrapper interface {
	Wrap(ReadingStateService) ReadingStateService
}
