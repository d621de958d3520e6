// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// newSQLiteStorages opens a private in-memory database with the schema applied.
func newSQLiteStorages(t *testing.T, name string) (*Storages, *DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop()), db
}

func seedBooks(t *testing.T, db *DB, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		_, err := db.Exec(`INSERT INTO books (id, title, file_type, file_size_kb) VALUES (?, ?, 'EPUB', 100)`, id, fmt.Sprintf("Book %d", id))
		require.NoError(t, err)
	}
}

func snapshotOf(id string, userID int64, ids ...int64) models.Snapshot {
	s := models.Snapshot{ID: id, UserID: userID, CreatedAt: time.Now().UTC()}
	for _, b := range ids {
		s.Books = append(s.Books, models.SnapshotBook{SnapshotID: id, BookID: b})
	}
	return s
}

func TestSQLite_SnapshotDiff(t *testing.T) {
	st, _ := newSQLiteStorages(t, "snapshot_diff")
	ctx := context.Background()
	repo := st.SnapshotRepository

	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("A", 1, 1, 2, 3)))
	require.NoError(t, repo.MarkSynced(ctx, "A", []int64{1, 2, 3}))
	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("B", 1, 2, 3, 4)))

	added, err := repo.AddedBookIDs(ctx, "A", "B", 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, added)

	existing, err := repo.ExistingBookIDs(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, existing)

	removed, err := repo.RemovedBookIDs(ctx, "A", "B", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, removed)

	// a recorded marker hides the removal, saving it twice is harmless
	marker := models.DeletedProgressMarker{SnapshotID: "B", UserID: 1, BookID: 1}
	require.NoError(t, repo.SaveDeletedMarkers(ctx, []models.DeletedProgressMarker{marker}))
	require.NoError(t, repo.SaveDeletedMarkers(ctx, []models.DeletedProgressMarker{marker}))

	removed, err = repo.RemovedBookIDs(ctx, "A", "B", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, removed)

	require.NoError(t, repo.MarkSynced(ctx, "B", []int64{2, 3, 4}))
	added, err = repo.AddedBookIDs(ctx, "A", "B", 10)
	require.NoError(t, err)
	assert.Empty(t, added)

	unsynced, err := repo.UnsyncedBookIDs(ctx, "B", 10)
	require.NoError(t, err)
	assert.Empty(t, unsynced)

	require.NoError(t, repo.DeleteSnapshot(ctx, "A"))
	_, err = repo.FindSnapshot(ctx, "A", 1)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	b, err := repo.FindSnapshot(ctx, "B", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, b.BookIDs())

	_, err = repo.FindSnapshot(ctx, "B", 2)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSQLite_DeleteSnapshotsExcept(t *testing.T) {
	st, db := newSQLiteStorages(t, "snapshot_retire")
	ctx := context.Background()
	repo := st.SnapshotRepository
	seedBooks(t, db, 1, 2)

	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("A", 1, 1, 2)))
	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("B", 1, 1)))
	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("C", 1, 2)))
	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("X", 2, 1, 2)))
	require.NoError(t, repo.SaveDeletedMarkers(ctx, []models.DeletedProgressMarker{
		{SnapshotID: "B", UserID: 1, BookID: 2},
		{SnapshotID: "C", UserID: 1, BookID: 1},
	}))

	require.NoError(t, repo.DeleteSnapshotsExcept(ctx, 1, "C"))

	for _, id := range []string{"A", "B"} {
		_, err := repo.FindSnapshot(ctx, id, 1)
		assert.ErrorIs(t, err, ErrSnapshotNotFound, id)
	}

	kept, err := repo.FindSnapshot(ctx, "C", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, kept.BookIDs())

	other, err := repo.FindSnapshot(ctx, "X", 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, other.BookIDs())

	var rows, markers int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kobo_snapshot_books`).Scan(&rows))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kobo_deleted_progress`).Scan(&markers))
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, markers)
}

func TestSQLite_AddedBookIDs_LimitAndOrder(t *testing.T) {
	st, _ := newSQLiteStorages(t, "added_limit")
	ctx := context.Background()
	repo := st.SnapshotRepository

	require.NoError(t, repo.CreateSnapshot(ctx, snapshotOf("A", 1, 7, 3, 5, 1, 2, 6, 4)))

	page, err := repo.UnsyncedBookIDs(ctx, "A", 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, page)

	page, err = repo.AddedBookIDs(ctx, "", "A", 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, page)
}

func TestSQLite_BooksAndShelves(t *testing.T) {
	st, db := newSQLiteStorages(t, "books_shelves")
	ctx := context.Background()

	seedBooks(t, db, 1, 2, 3)
	_, err := db.Exec(`UPDATE books SET series_name = 'Dune', series_number = 1.5, isbn13 = '9780441013593' WHERE id = 2`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO book_authors (book_id, position, name) VALUES (2, 1, 'Second'), (2, 0, 'First')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO book_categories (book_id, position, name) VALUES (2, 0, 'Science Fiction')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO shelves (id, user_id, name, is_device_sync) VALUES (10, 1, 'Kobo', TRUE), (11, 1, 'Other', FALSE), (12, 1, 'Kobo 2', TRUE)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO shelf_books (shelf_id, book_id) VALUES (10, 2), (10, 1), (11, 3), (12, 2)`)
	require.NoError(t, err)

	ids, err := st.ShelfRepository.DeviceShelfBookIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	books, err := st.BookRepository.FindBooksByIDs(ctx, []int64{2, 99})
	require.NoError(t, err)
	require.Len(t, books, 1)

	book := books[0]
	assert.Equal(t, models.FileTypeEPUB, book.FileType)
	assert.Equal(t, "Dune", book.Metadata.SeriesName)
	require.NotNil(t, book.Metadata.SeriesNumber)
	assert.InDelta(t, 1.5, *book.Metadata.SeriesNumber, 0.0001)
	assert.Equal(t, "9780441013593", book.Metadata.ISBN())
	assert.Equal(t, []string{"First", "Second"}, book.Metadata.Authors)
	assert.Equal(t, "Science Fiction", book.Metadata.Genre())
	assert.Nil(t, book.Metadata.PublishedDate)
}

func TestSQLite_Progress(t *testing.T) {
	st, db := newSQLiteStorages(t, "progress")
	ctx := context.Background()
	repo := st.ProgressRepository

	seedBooks(t, db, 1, 2)
	require.NoError(t, st.SnapshotRepository.CreateSnapshot(ctx, snapshotOf("S", 1, 1)))

	received := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	percent := 55.0
	status := models.ReadStatusReading
	require.NoError(t, repo.SaveProgress(ctx, models.ReadingProgress{
		UserID:               1,
		BookID:               1,
		ProgressPercent:      &percent,
		Location:             &models.BookLocation{Value: "kobo.3.1", Type: "KoboSpan", Source: "ch3.xhtml"},
		ReadStatus:           &status,
		ProgressReceivedTime: &received,
	}))
	// book 2 has a pending report but is not in the snapshot
	require.NoError(t, repo.SaveProgress(ctx, models.ReadingProgress{UserID: 1, BookID: 2, ProgressReceivedTime: &received}))

	pending, err := repo.PendingProgressInSnapshot(ctx, 1, "S")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].BookID)
	require.NotNil(t, pending[0].Location)
	assert.Equal(t, "kobo.3.1", pending[0].Location.Value)
	require.NotNil(t, pending[0].ProgressReceivedTime)
	assert.True(t, received.Equal(*pending[0].ProgressReceivedTime))

	sentAt := received.Add(time.Minute)
	require.NoError(t, repo.MarkProgressSent(ctx, 1, []int64{1}, sentAt))

	found, err := repo.FindProgress(ctx, 1, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.NotNil(t, found[1].ProgressSentTime)
	assert.True(t, sentAt.Equal(*found[1].ProgressSentTime))
	assert.Nil(t, found[1].StatusSentTime)
	assert.Nil(t, found[2].ReadStatus)

	// upsert replaces the whole row
	finished := models.ReadStatusRead
	require.NoError(t, repo.SaveProgress(ctx, models.ReadingProgress{UserID: 1, BookID: 1, ReadStatus: &finished}))
	found, err = repo.FindProgress(ctx, 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, models.ReadStatusRead, *found[1].ReadStatus)
	assert.Nil(t, found[1].Location)
}

func TestSQLite_UserSettings(t *testing.T) {
	st, _ := newSQLiteStorages(t, "settings")
	ctx := context.Background()
	repo := st.SettingsRepository

	_, err := repo.FindUserSettings(ctx, 1)
	assert.ErrorIs(t, err, ErrSettingsNotFound)

	finished := 95.0
	kepub := true
	require.NoError(t, repo.SaveUserSettings(ctx, models.UserSyncSettings{UserID: 1, FinishedThreshold: &finished, ConvertToKepub: &kepub}))

	s, err := repo.FindUserSettings(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, s.ReadingThreshold)
	require.NotNil(t, s.FinishedThreshold)
	assert.InDelta(t, 95.0, *s.FinishedThreshold, 0.0001)
	require.NotNil(t, s.ConvertToKepub)
	assert.True(t, *s.ConvertToKepub)
}

func TestSQLite_TransactionRollback(t *testing.T) {
	st, _ := newSQLiteStorages(t, "tx_rollback")
	ctx := context.Background()

	err := st.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := st.SnapshotRepository.CreateSnapshot(ctx, snapshotOf("A", 1, 1, 2)); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.EqualError(t, err, "abort")

	_, err = st.SnapshotRepository.FindSnapshot(ctx, "A", 1)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
