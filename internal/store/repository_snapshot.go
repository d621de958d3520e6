// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// snapshotRepository is the SQL implementation of [SnapshotRepository] over
// the kobo_snapshots, kobo_snapshot_books and kobo_deleted_progress tables.
type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository].
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSnapshot inserts the snapshot header and its membership rows. Rows
// are inserted in chunks; call it inside [Transactor.WithinTransaction] to
// keep the snapshot all-or-nothing.
func (r *snapshotRepository) CreateSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)
	conn := r.db.conn(ctx)

	query, args, err := buildInsertSnapshotQuery(r.db.builder, snapshot)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.CreateSnapshot").Msg("error building insert snapshot query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = conn.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*snapshotRepository.CreateSnapshot").Msg("error inserting snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, ids := range chunks(snapshot.BookIDs(), insertChunkSize) {
		query, args, err = buildInsertSnapshotBooksQuery(r.db.builder, snapshot.ID, ids)
		if err != nil {
			log.Err(err).Str("func", "*snapshotRepository.CreateSnapshot").Msg("error building insert snapshot books query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = conn.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*snapshotRepository.CreateSnapshot").Msg("error inserting snapshot books")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	log.Debug().
		Str("func", "*snapshotRepository.CreateSnapshot").
		Str("snapshot_id", snapshot.ID).
		Int("books", len(snapshot.Books)).
		Msg("snapshot created")

	return nil
}

// FindSnapshot loads a snapshot owned by userID together with its rows.
// A missing snapshot, or one owned by somebody else, yields [ErrSnapshotNotFound].
func (r *snapshotRepository) FindSnapshot(ctx context.Context, id string, userID int64) (models.Snapshot, error) {
	log := logger.FromContext(ctx)
	conn := r.db.conn(ctx)

	query, args, err := buildSelectSnapshotQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.FindSnapshot").Msg("error building select snapshot query")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var snapshot models.Snapshot
	err = conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID, &snapshot.UserID, &snapshot.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.FindSnapshot").Msg("error scanning snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err = buildSelectSnapshotBooksQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.FindSnapshot").Msg("error building select snapshot books query")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.FindSnapshot").Msg("error selecting snapshot books")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		book := models.SnapshotBook{SnapshotID: id}
		if err = rows.Scan(&book.BookID, &book.Synced); err != nil {
			log.Err(err).Str("func", "*snapshotRepository.FindSnapshot").Msg("error scanning snapshot book")
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		snapshot.Books = append(snapshot.Books, book)
	}
	if err = rows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshot, nil
}

// DeleteSnapshot removes the markers recorded against the snapshot, its rows
// and the snapshot itself. Deleting an unknown id is not an error.
func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	builders := []func() (string, []any, error){
		func() (string, []any, error) { return buildDeleteMarkersQuery(r.db.builder, id) },
		func() (string, []any, error) { return buildDeleteSnapshotBooksQuery(r.db.builder, id) },
		func() (string, []any, error) { return buildDeleteSnapshotQuery(r.db.builder, id) },
	}

	for _, build := range builders {
		if err := r.exec(ctx, build); err != nil {
			log.Err(err).Str("func", "*snapshotRepository.DeleteSnapshot").Str("snapshot_id", id).Msg("error deleting snapshot")
			return err
		}
	}

	return nil
}

// DeleteSnapshotsExcept removes every snapshot of the user but keepID, in
// the same order as [snapshotRepository.DeleteSnapshot]. Snapshots of other
// users are left alone.
func (r *snapshotRepository) DeleteSnapshotsExcept(ctx context.Context, userID int64, keepID string) error {
	log := logger.FromContext(ctx)

	builders := []func() (string, []any, error){
		func() (string, []any, error) { return buildDeleteUserMarkersExceptQuery(r.db.builder, userID, keepID) },
		func() (string, []any, error) { return buildDeleteUserSnapshotBooksExceptQuery(r.db.builder, userID, keepID) },
		func() (string, []any, error) { return buildDeleteUserSnapshotsExceptQuery(r.db.builder, userID, keepID) },
	}

	for _, build := range builders {
		if err := r.exec(ctx, build); err != nil {
			log.Err(err).
				Str("func", "*snapshotRepository.DeleteSnapshotsExcept").
				Int64("user_id", userID).
				Str("keep_id", keepID).
				Msg("error retiring snapshots")
			return err
		}
	}

	return nil
}

func (r *snapshotRepository) ExistingBookIDs(ctx context.Context, previousID, currentID string) ([]int64, error) {
	return r.selectIDs(ctx, "*snapshotRepository.ExistingBookIDs", func() (string, []any, error) {
		return buildExistingBooksQuery(r.db.builder, previousID, currentID)
	})
}

func (r *snapshotRepository) AddedBookIDs(ctx context.Context, previousID, currentID string, limit int) ([]int64, error) {
	return r.selectIDs(ctx, "*snapshotRepository.AddedBookIDs", func() (string, []any, error) {
		return buildAddedBooksQuery(r.db.builder, previousID, currentID, limit)
	})
}

func (r *snapshotRepository) RemovedBookIDs(ctx context.Context, previousID, currentID string, userID int64, limit int) ([]int64, error) {
	return r.selectIDs(ctx, "*snapshotRepository.RemovedBookIDs", func() (string, []any, error) {
		return buildRemovedBooksQuery(r.db.builder, previousID, currentID, userID, limit)
	})
}

func (r *snapshotRepository) UnsyncedBookIDs(ctx context.Context, snapshotID string, limit int) ([]int64, error) {
	return r.selectIDs(ctx, "*snapshotRepository.UnsyncedBookIDs", func() (string, []any, error) {
		return buildUnsyncedBooksQuery(r.db.builder, snapshotID, limit)
	})
}

// MarkSynced flips the synced flag of the given rows. An empty id list is a
// no-op.
func (r *snapshotRepository) MarkSynced(ctx context.Context, snapshotID string, bookIDs []int64) error {
	if len(bookIDs) == 0 {
		return nil
	}

	for _, ids := range chunks(bookIDs, insertChunkSize) {
		err := r.exec(ctx, func() (string, []any, error) {
			return buildMarkSyncedQuery(r.db.builder, snapshotID, ids)
		})
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*snapshotRepository.MarkSynced").Msg("error marking books as synced")
			return err
		}
	}

	return nil
}

// SaveDeletedMarkers records removals already emitted. Duplicates are ignored.
func (r *snapshotRepository) SaveDeletedMarkers(ctx context.Context, markers []models.DeletedProgressMarker) error {
	for start := 0; start < len(markers); start += insertChunkSize {
		end := min(start+insertChunkSize, len(markers))
		batch := markers[start:end]

		err := r.exec(ctx, func() (string, []any, error) {
			return buildInsertMarkersQuery(r.db.builder, batch)
		})
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*snapshotRepository.SaveDeletedMarkers").Msg("error saving deleted markers")
			return err
		}
	}

	return nil
}

func (r *snapshotRepository) exec(ctx context.Context, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *snapshotRepository) selectIDs(ctx context.Context, funcName string, build func() (string, []any, error)) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := build()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ids, err := scanIDs(ctx, r.db.conn(ctx), query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting book ids")
		return nil, err
	}

	return ids, nil
}

// scanIDs runs a single-column id query.
func scanIDs(ctx context.Context, conn querier, query string, args ...any) ([]int64, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
