// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/internal/utils"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// idGenerator issues snapshot ids.
type idGenerator interface {
	Generate() string
}

type snapshotStore struct {
	snapshotRepository store.SnapshotRepository
	shelfRepository    store.ShelfRepository
	bookRepository     store.BookRepository

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewSnapshotStore builds a SnapshotStore over the given repositories.
func NewSnapshotStore(storages *store.Storages, logger *logger.Logger) SnapshotStore {
	return &snapshotStore{
		snapshotRepository: storages.SnapshotRepository,
		shelfRepository:    storages.ShelfRepository,
		bookRepository:     storages.BookRepository,
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

// Create implements [SnapshotStore]. Books on the device shelf that the
// device cannot read are left out of the snapshot.
func (s *snapshotStore) Create(ctx context.Context, userID int64, settings models.SyncSettings) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	ids, err := s.shelfRepository.DeviceShelfBookIDs(ctx, userID)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("error reading device shelf: %w", err)
	}

	books, err := s.bookRepository.FindBooksByIDs(ctx, ids)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("error reading device shelf books: %w", err)
	}

	snapshot := models.Snapshot{
		ID:        s.ids.Generate(),
		UserID:    userID,
		CreatedAt: s.now().UTC(),
		Books:     make([]models.SnapshotBook, 0, len(books)),
	}
	for _, book := range books {
		if !IsBookSupportedForKobo(book, settings) {
			continue
		}
		snapshot.Books = append(snapshot.Books, models.SnapshotBook{SnapshotID: snapshot.ID, BookID: book.ID})
	}

	if err = s.snapshotRepository.CreateSnapshot(ctx, snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("error saving snapshot: %w", err)
	}

	log.Info().
		Str("func", "*snapshotStore.Create").
		Int64("user_id", userID).
		Str("snapshot_id", snapshot.ID).
		Int("shelf_books", len(ids)).
		Int("eligible_books", len(snapshot.Books)).
		Msg("snapshot created")

	return snapshot, nil
}

func (s *snapshotStore) FindByIDAndUser(ctx context.Context, id string, userID int64) (models.Snapshot, bool, error) {
	if id == "" {
		return models.Snapshot{}, false, nil
	}

	snapshot, err := s.snapshotRepository.FindSnapshot(ctx, id, userID)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("error reading snapshot: %w", err)
	}

	return snapshot, true, nil
}

func (s *snapshotStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.snapshotRepository.DeleteSnapshot(ctx, id); err != nil {
		return fmt.Errorf("error deleting snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) RetireAllExcept(ctx context.Context, userID int64, keepID string) error {
	if err := s.snapshotRepository.DeleteSnapshotsExcept(ctx, userID, keepID); err != nil {
		return fmt.Errorf("error retiring snapshots: %w", err)
	}
	return nil
}
