// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// progressRepository is the SQL implementation of [ProgressRepository] over
// the reading_progress table.
type progressRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProgressRepository constructs a [ProgressRepository].
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// FindProgress returns the progress rows of the given books keyed by book id.
// Books without a row are absent from the map.
func (r *progressRepository) FindProgress(ctx context.Context, userID int64, bookIDs []int64) (map[int64]models.ReadingProgress, error) {
	log := logger.FromContext(ctx)
	out := make(map[int64]models.ReadingProgress, len(bookIDs))
	if len(bookIDs) == 0 {
		return out, nil
	}

	query, args, err := buildSelectProgressQuery(r.db.builder, userID, bookIDs)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.FindProgress").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.FindProgress").Msg("error selecting progress")
		return nil, err
	}

	for _, p := range rows {
		out[p.BookID] = p
	}

	return out, nil
}

func (r *progressRepository) PendingProgressInSnapshot(ctx context.Context, userID int64, snapshotID string) ([]models.ReadingProgress, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingProgressQuery(r.db.builder, userID, snapshotID)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.PendingProgressInSnapshot").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.PendingProgressInSnapshot").Msg("error selecting pending progress")
		return nil, err
	}

	return rows, nil
}

// SaveProgress inserts or fully replaces the (user, book) row.
func (r *progressRepository) SaveProgress(ctx context.Context, progress models.ReadingProgress) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProgressQuery(r.db.builder, progress)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.SaveProgress").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*progressRepository.SaveProgress").
			Int64("user_id", progress.UserID).
			Int64("book_id", progress.BookID).
			Msg("error saving progress")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// MarkStatusSent stamps status_sent_time on the given rows.
func (r *progressRepository) MarkStatusSent(ctx context.Context, userID int64, bookIDs []int64, at time.Time) error {
	return r.markSent(ctx, "status_sent_time", userID, bookIDs, at)
}

// MarkProgressSent stamps progress_sent_time on the given rows.
func (r *progressRepository) MarkProgressSent(ctx context.Context, userID int64, bookIDs []int64, at time.Time) error {
	return r.markSent(ctx, "progress_sent_time", userID, bookIDs, at)
}

func (r *progressRepository) markSent(ctx context.Context, column string, userID int64, bookIDs []int64, at time.Time) error {
	if len(bookIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	for _, ids := range chunks(bookIDs, insertChunkSize) {
		query, args, err := buildMarkSentQuery(r.db.builder, column, userID, ids, at)
		if err != nil {
			log.Err(err).Str("func", "*progressRepository.markSent").Msg("error building update query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.db.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*progressRepository.markSent").Str("column", column).Msg("error stamping progress rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *progressRepository) query(ctx context.Context, query string, args []any) ([]models.ReadingProgress, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]models.ReadingProgress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func scanProgress(rows *sql.Rows) (models.ReadingProgress, error) {
	var (
		p                                                          models.ReadingProgress
		percent                                                    sql.NullFloat64
		locValue, locType, locSource, status                       sql.NullString
		statusModified, statusSent, progressReceived, progressSent sql.NullTime
		dateFinished                                               sql.NullTime
	)

	err := rows.Scan(
		&p.UserID, &p.BookID, &percent, &locValue, &locType, &locSource, &status,
		&statusModified, &statusSent, &progressReceived, &progressSent, &dateFinished,
	)
	if err != nil {
		return models.ReadingProgress{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	p.ProgressPercent = floatPtr(percent)
	if locValue.Valid || locType.Valid || locSource.Valid {
		p.Location = &models.BookLocation{Value: locValue.String, Type: locType.String, Source: locSource.String}
	}
	if status.Valid {
		s := models.ReadStatus(status.String)
		p.ReadStatus = &s
	}
	p.StatusModifiedTime = timePtr(statusModified)
	p.StatusSentTime = timePtr(statusSent)
	p.ProgressReceivedTime = timePtr(progressReceived)
	p.ProgressSentTime = timePtr(progressSent)
	p.DateFinished = timePtr(dateFinished)

	return p, nil
}
