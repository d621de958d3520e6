// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/mock"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestSnapshotStore(t *testing.T) (*snapshotStore, *mock.MockSnapshotRepository, *mock.MockShelfRepository, *mock.MockBookRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	snapshots := mock.NewMockSnapshotRepository(ctrl)
	shelves := mock.NewMockShelfRepository(ctrl)
	books := mock.NewMockBookRepository(ctrl)

	s := NewSnapshotStore(&store.Storages{
		SnapshotRepository: snapshots,
		ShelfRepository:    shelves,
		BookRepository:     books,
	}, logger.Nop()).(*snapshotStore)
	s.ids = fixedID("snap-1")
	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	return s, snapshots, shelves, books
}

func TestSnapshotStore_CreateFiltersIneligibleBooks(t *testing.T) {
	s, snapshots, shelves, books := newTestSnapshotStore(t)
	ctx := context.Background()

	shelves.EXPECT().DeviceShelfBookIDs(ctx, int64(3)).Return([]int64{1, 2, 3}, nil)
	books.EXPECT().FindBooksByIDs(ctx, []int64{1, 2, 3}).Return([]models.Book{
		{ID: 1, FileType: models.FileTypeEPUB},
		{ID: 2, FileType: models.FileTypePDF},
		{ID: 3, FileType: models.FileTypeCBX, FileSizeKB: 1024},
	}, nil)

	want := models.Snapshot{
		ID:        "snap-1",
		UserID:    3,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Books: []models.SnapshotBook{
			{SnapshotID: "snap-1", BookID: 1},
			{SnapshotID: "snap-1", BookID: 3},
		},
	}
	snapshots.EXPECT().CreateSnapshot(ctx, want).Return(nil)

	got, err := s.Create(ctx, 3, models.SyncSettings{ConvertCbxToEpub: true, CbxConversionLimitMB: 5})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotStore_CreateShelfError(t *testing.T) {
	s, _, shelves, _ := newTestSnapshotStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	shelves.EXPECT().DeviceShelfBookIDs(ctx, int64(3)).Return(nil, boom)

	_, err := s.Create(ctx, 3, models.SyncSettings{})
	require.ErrorIs(t, err, boom)
}

func TestSnapshotStore_FindByIDAndUser(t *testing.T) {
	s, snapshots, _, _ := newTestSnapshotStore(t)
	ctx := context.Background()

	_, found, err := s.FindByIDAndUser(ctx, "", 1)
	require.NoError(t, err)
	assert.False(t, found)

	snapshots.EXPECT().FindSnapshot(ctx, "gone", int64(1)).Return(models.Snapshot{}, store.ErrSnapshotNotFound)
	_, found, err = s.FindByIDAndUser(ctx, "gone", 1)
	require.NoError(t, err)
	assert.False(t, found)

	snapshots.EXPECT().FindSnapshot(ctx, "snap-1", int64(1)).Return(models.Snapshot{ID: "snap-1", UserID: 1}, nil)
	snap, found, err := s.FindByIDAndUser(ctx, "snap-1", 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "snap-1", snap.ID)

	boom := errors.New("boom")
	snapshots.EXPECT().FindSnapshot(ctx, "snap-1", int64(1)).Return(models.Snapshot{}, boom)
	_, _, err = s.FindByIDAndUser(ctx, "snap-1", 1)
	require.ErrorIs(t, err, boom)
}

func TestSnapshotStore_DeleteByID(t *testing.T) {
	s, snapshots, _, _ := newTestSnapshotStore(t)
	ctx := context.Background()

	snapshots.EXPECT().DeleteSnapshot(ctx, "snap-1").Return(nil)
	require.NoError(t, s.DeleteByID(ctx, "snap-1"))
}

func TestSnapshotStore_RetireAllExcept(t *testing.T) {
	s, snapshots, _, _ := newTestSnapshotStore(t)
	ctx := context.Background()

	snapshots.EXPECT().DeleteSnapshotsExcept(ctx, int64(4), "snap-2").Return(nil)
	require.NoError(t, s.RetireAllExcept(ctx, 4, "snap-2"))

	boom := errors.New("boom")
	snapshots.EXPECT().DeleteSnapshotsExcept(ctx, int64(4), "snap-3").Return(boom)
	require.ErrorIs(t, s.RetireAllExcept(ctx, 4, "snap-3"), boom)
}
