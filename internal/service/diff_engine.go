// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type diffEngine struct {
	snapshotRepository store.SnapshotRepository

	logger *logger.Logger
}

// NewDiffEngine builds a DiffEngine over the snapshot repository.
func NewDiffEngine(snapshotRepository store.SnapshotRepository, logger *logger.Logger) DiffEngine {
	return &diffEngine{
		snapshotRepository: snapshotRepository,
		logger:             logger,
	}
}

// ExistingPage returns every unsynced book present in both snapshots and
// marks it synced in current. The device already owns these books, so the
// page is never emitted.
func (d *diffEngine) ExistingPage(ctx context.Context, previousID, currentID string) (models.Page, error) {
	ids, err := d.snapshotRepository.ExistingBookIDs(ctx, previousID, currentID)
	if err != nil {
		return models.Page{}, fmt.Errorf("error diffing existing books: %w", err)
	}

	if err = d.snapshotRepository.MarkSynced(ctx, currentID, ids); err != nil {
		return models.Page{}, fmt.Errorf("error marking existing books as synced: %w", err)
	}

	return models.Page{BookIDs: ids}, nil
}

// AddedPage returns up to n books of current absent from previous and marks
// them synced in current.
func (d *diffEngine) AddedPage(ctx context.Context, previousID, currentID string, n int) (models.Page, error) {
	page, err := d.page(n, func(limit int) ([]int64, error) {
		return d.snapshotRepository.AddedBookIDs(ctx, previousID, currentID, limit)
	})
	if err != nil {
		return models.Page{}, fmt.Errorf("error diffing added books: %w", err)
	}

	if err = d.snapshotRepository.MarkSynced(ctx, currentID, page.BookIDs); err != nil {
		return models.Page{}, fmt.Errorf("error marking added books as synced: %w", err)
	}

	return page, nil
}

// RemovedPage returns up to n books of previous absent from current and
// records a deleted-progress marker keyed to current for each, so a retried
// page does not emit the same removal twice.
func (d *diffEngine) RemovedPage(ctx context.Context, previousID, currentID string, userID int64, n int) (models.Page, error) {
	page, err := d.page(n, func(limit int) ([]int64, error) {
		return d.snapshotRepository.RemovedBookIDs(ctx, previousID, currentID, userID, limit)
	})
	if err != nil {
		return models.Page{}, fmt.Errorf("error diffing removed books: %w", err)
	}

	markers := make([]models.DeletedProgressMarker, 0, page.Len())
	for _, id := range page.BookIDs {
		markers = append(markers, models.DeletedProgressMarker{SnapshotID: currentID, UserID: userID, BookID: id})
	}
	if err = d.snapshotRepository.SaveDeletedMarkers(ctx, markers); err != nil {
		return models.Page{}, fmt.Errorf("error saving deleted markers: %w", err)
	}

	return page, nil
}

// UnsyncedPage returns up to n unsynced books of current and marks them
// synced.
func (d *diffEngine) UnsyncedPage(ctx context.Context, currentID string, n int) (models.Page, error) {
	page, err := d.page(n, func(limit int) ([]int64, error) {
		return d.snapshotRepository.UnsyncedBookIDs(ctx, currentID, limit)
	})
	if err != nil {
		return models.Page{}, fmt.Errorf("error reading unsynced books: %w", err)
	}

	if err = d.snapshotRepository.MarkSynced(ctx, currentID, page.BookIDs); err != nil {
		return models.Page{}, fmt.Errorf("error marking unsynced books as synced: %w", err)
	}

	return page, nil
}

// page fetches one row past n to learn whether more remain. With no budget
// left it only probes for a single row.
func (d *diffEngine) page(n int, fetch func(limit int) ([]int64, error)) (models.Page, error) {
	if n <= 0 {
		probe, err := fetch(1)
		if err != nil {
			return models.Page{}, err
		}
		return models.Page{BookIDs: []int64{}, HasMore: len(probe) > 0}, nil
	}

	ids, err := fetch(n + 1)
	if err != nil {
		return models.Page{}, err
	}

	if len(ids) > n {
		return models.Page{BookIDs: ids[:n], HasMore: true}, nil
	}
	return models.Page{BookIDs: ids}, nil
}
