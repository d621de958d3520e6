// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
)

const testDownloadBase = "http://localhost:8080/api/kobo/device-token"

// newTestStorages opens a private in-memory SQLite database with the schema
// applied. The database name is derived from the test name.
func newTestStorages(t *testing.T) (*store.Storages, *store.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := store.NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return store.NewStorages(db, logger.Nop()), db
}

// seedEPUBs inserts EPUB books titled "Book <id>".
func seedEPUBs(t *testing.T, db *store.DB, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		_, err := db.Exec(
			`INSERT INTO books (id, title, file_type, file_size_kb) VALUES (?, ?, 'EPUB', 512)`,
			id, fmt.Sprintf("Book %d", id),
		)
		require.NoError(t, err)
	}
}

// putOnDeviceShelf puts books on the device-sync shelf of userID, creating
// the shelf on first use.
func putOnDeviceShelf(t *testing.T, db *store.DB, userID int64, ids ...int64) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO shelves (id, user_id, name, is_device_sync) VALUES (?, ?, 'Kobo', ?) ON CONFLICT (id) DO NOTHING`,
		userID, userID, true,
	)
	require.NoError(t, err)

	for _, id := range ids {
		_, err = db.Exec(`INSERT INTO shelf_books (shelf_id, book_id) VALUES (?, ?)`, userID, id)
		require.NoError(t, err)
	}
}

func takeOffDeviceShelf(t *testing.T, db *store.DB, userID int64, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		_, err := db.Exec(`DELETE FROM shelf_books WHERE shelf_id = ? AND book_id = ?`, userID, id)
		require.NoError(t, err)
	}
}

func testSyncConfig(pageSize int) config.Sync {
	return config.Sync{
		PageSize:             pageSize,
		StatusSyncBuffer:     10 * time.Second,
		ReadingThreshold:     1,
		FinishedThreshold:    99,
		CbxConversionLimitMB: 100,
	}
}

func ptr[T any](v T) *T {
	return &v
}
