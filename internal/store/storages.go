// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-kobo-sync/internal/logger"

// Storages groups every repository the service layer needs, all sharing one
// [DB] and therefore one transaction scope.
type Storages struct {
	Transactor         Transactor
	SnapshotRepository SnapshotRepository
	BookRepository     BookRepository
	ShelfRepository    ShelfRepository
	ProgressRepository ProgressRepository
	SettingsRepository SettingsRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Transactor:         db,
		SnapshotRepository: NewSnapshotRepository(db, logger),
		BookRepository:     NewBookRepository(db, logger),
		ShelfRepository:    NewShelfRepository(db, logger),
		ProgressRepository: NewProgressRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
	}
}
