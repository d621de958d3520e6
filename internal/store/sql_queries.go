// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kobo-sync/models"
)

// insertChunkSize bounds multi-row INSERTs so every statement stays under
// the bind-parameter limits of both backends.
const insertChunkSize = 300

var (
	bookColumns = []string{
		"id", "title", "file_type", "file_size_kb", "added_on", "description",
		"publisher", "imprint", "published_date", "isbn13", "isbn10", "language",
		"series_name", "series_number", "cover_updated_on",
	}

	progressColumns = []string{
		"user_id", "book_id", "progress_percent", "location_value", "location_type",
		"location_source", "read_status", "status_modified_time", "status_sent_time",
		"progress_received_time", "progress_sent_time", "date_finished",
	}
)

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + "." + c
	}
	return out
}

func chunks(ids []int64, size int) [][]int64 {
	var out [][]int64
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}

// ── snapshots ────────────────────────────────────────────────────────────────

func buildInsertSnapshotQuery(b sq.StatementBuilderType, s models.Snapshot) (string, []any, error) {
	return b.Insert("kobo_snapshots").
		Columns("id", "user_id", "created_at").
		Values(s.ID, s.UserID, s.CreatedAt.UTC()).
		ToSql()
}

func buildInsertSnapshotBooksQuery(b sq.StatementBuilderType, snapshotID string, bookIDs []int64) (string, []any, error) {
	q := b.Insert("kobo_snapshot_books").Columns("snapshot_id", "book_id", "synced")
	for _, id := range bookIDs {
		q = q.Values(snapshotID, id, false)
	}
	return q.ToSql()
}

func buildSelectSnapshotQuery(b sq.StatementBuilderType, id string, userID int64) (string, []any, error) {
	return b.Select("id", "user_id", "created_at").
		From("kobo_snapshots").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildSelectSnapshotBooksQuery(b sq.StatementBuilderType, snapshotID string) (string, []any, error) {
	return b.Select("book_id", "synced").
		From("kobo_snapshot_books").
		Where(sq.Eq{"snapshot_id": snapshotID}).
		OrderBy("book_id").
		ToSql()
}

func buildDeleteMarkersQuery(b sq.StatementBuilderType, snapshotID string) (string, []any, error) {
	return b.Delete("kobo_deleted_progress").Where(sq.Eq{"snapshot_id": snapshotID}).ToSql()
}

func buildDeleteSnapshotBooksQuery(b sq.StatementBuilderType, snapshotID string) (string, []any, error) {
	return b.Delete("kobo_snapshot_books").Where(sq.Eq{"snapshot_id": snapshotID}).ToSql()
}

func buildDeleteSnapshotQuery(b sq.StatementBuilderType, snapshotID string) (string, []any, error) {
	return b.Delete("kobo_snapshots").Where(sq.Eq{"id": snapshotID}).ToSql()
}

func buildDeleteUserMarkersExceptQuery(b sq.StatementBuilderType, userID int64, keepID string) (string, []any, error) {
	return b.Delete("kobo_deleted_progress").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"snapshot_id": keepID}).
		ToSql()
}

func buildDeleteUserSnapshotBooksExceptQuery(b sq.StatementBuilderType, userID int64, keepID string) (string, []any, error) {
	return b.Delete("kobo_snapshot_books").
		Where(sq.Expr("snapshot_id IN (SELECT id FROM kobo_snapshots WHERE user_id = ? AND id <> ?)", userID, keepID)).
		ToSql()
}

func buildDeleteUserSnapshotsExceptQuery(b sq.StatementBuilderType, userID int64, keepID string) (string, []any, error) {
	return b.Delete("kobo_snapshots").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"id": keepID}).
		ToSql()
}

// ── diff ─────────────────────────────────────────────────────────────────────

func buildExistingBooksQuery(b sq.StatementBuilderType, previousID, currentID string) (string, []any, error) {
	return b.Select("cur.book_id").
		From("kobo_snapshot_books cur").
		Where(sq.Eq{"cur.snapshot_id": currentID, "cur.synced": false}).
		Where(sq.Expr("EXISTS (SELECT 1 FROM kobo_snapshot_books prev WHERE prev.snapshot_id = ? AND prev.book_id = cur.book_id)", previousID)).
		OrderBy("cur.book_id").
		ToSql()
}

func buildAddedBooksQuery(b sq.StatementBuilderType, previousID, currentID string, limit int) (string, []any, error) {
	return b.Select("cur.book_id").
		From("kobo_snapshot_books cur").
		Where(sq.Eq{"cur.snapshot_id": currentID, "cur.synced": false}).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM kobo_snapshot_books prev WHERE prev.snapshot_id = ? AND prev.book_id = cur.book_id)", previousID)).
		OrderBy("cur.book_id").
		Limit(uint64(limit)).
		ToSql()
}

func buildRemovedBooksQuery(b sq.StatementBuilderType, previousID, currentID string, userID int64, limit int) (string, []any, error) {
	return b.Select("prev.book_id").
		From("kobo_snapshot_books prev").
		Where(sq.Eq{"prev.snapshot_id": previousID}).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM kobo_snapshot_books cur WHERE cur.snapshot_id = ? AND cur.book_id = prev.book_id)", currentID)).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM kobo_deleted_progress m WHERE m.snapshot_id = ? AND m.user_id = ? AND m.book_id = prev.book_id)", currentID, userID)).
		OrderBy("prev.book_id").
		Limit(uint64(limit)).
		ToSql()
}

func buildUnsyncedBooksQuery(b sq.StatementBuilderType, snapshotID string, limit int) (string, []any, error) {
	return b.Select("book_id").
		From("kobo_snapshot_books").
		Where(sq.Eq{"snapshot_id": snapshotID, "synced": false}).
		OrderBy("book_id").
		Limit(uint64(limit)).
		ToSql()
}

// buildMarkSyncedQuery only ever sets synced to TRUE.
func buildMarkSyncedQuery(b sq.StatementBuilderType, snapshotID string, bookIDs []int64) (string, []any, error) {
	return b.Update("kobo_snapshot_books").
		Set("synced", true).
		Where(sq.Eq{"snapshot_id": snapshotID, "book_id": bookIDs}).
		ToSql()
}

func buildInsertMarkersQuery(b sq.StatementBuilderType, markers []models.DeletedProgressMarker) (string, []any, error) {
	q := b.Insert("kobo_deleted_progress").Columns("snapshot_id", "user_id", "book_id")
	for _, m := range markers {
		q = q.Values(m.SnapshotID, m.UserID, m.BookID)
	}
	return q.Suffix("ON CONFLICT DO NOTHING").ToSql()
}

// ── books & shelves ──────────────────────────────────────────────────────────

func buildSelectBooksQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
}

// buildSelectBookNamesQuery reads an ordered name list table
// (book_authors or book_categories).
func buildSelectBookNamesQuery(b sq.StatementBuilderType, table string, ids []int64) (string, []any, error) {
	return b.Select("book_id", "name").
		From(table).
		Where(sq.Eq{"book_id": ids}).
		OrderBy("book_id", "position").
		ToSql()
}

func buildSelectDeviceShelfBooksQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("DISTINCT sb.book_id").
		From("shelf_books sb").
		Join("shelves s ON s.id = sb.shelf_id").
		Where(sq.Eq{"s.user_id": userID, "s.is_device_sync": true}).
		OrderBy("sb.book_id").
		ToSql()
}

// ── reading progress ─────────────────────────────────────────────────────────

func buildSelectProgressQuery(b sq.StatementBuilderType, userID int64, bookIDs []int64) (string, []any, error) {
	return b.Select(progressColumns...).
		From("reading_progress").
		Where(sq.Eq{"user_id": userID, "book_id": bookIDs}).
		OrderBy("book_id").
		ToSql()
}

func buildSelectPendingProgressQuery(b sq.StatementBuilderType, userID int64, snapshotID string) (string, []any, error) {
	return b.Select(prefixed("rp", progressColumns)...).
		From("reading_progress rp").
		Join("kobo_snapshot_books sb ON sb.book_id = rp.book_id").
		Where(sq.Eq{"rp.user_id": userID, "sb.snapshot_id": snapshotID}).
		Where(sq.Or{
			sq.NotEq{"rp.status_modified_time": nil},
			sq.NotEq{"rp.progress_received_time": nil},
		}).
		OrderBy("rp.book_id").
		ToSql()
}

func buildUpsertProgressQuery(b sq.StatementBuilderType, p models.ReadingProgress) (string, []any, error) {
	var locValue, locType, locSource *string
	if p.Location != nil {
		locValue, locType, locSource = &p.Location.Value, &p.Location.Type, &p.Location.Source
	}

	var status *string
	if p.ReadStatus != nil {
		s := string(*p.ReadStatus)
		status = &s
	}

	return b.Insert("reading_progress").
		Columns(progressColumns...).
		Values(
			p.UserID, p.BookID, p.ProgressPercent, locValue, locType, locSource, status,
			utcOrNil(p.StatusModifiedTime), utcOrNil(p.StatusSentTime),
			utcOrNil(p.ProgressReceivedTime), utcOrNil(p.ProgressSentTime), utcOrNil(p.DateFinished),
		).
		Suffix(`ON CONFLICT (user_id, book_id) DO UPDATE SET
			progress_percent = excluded.progress_percent,
			location_value = excluded.location_value,
			location_type = excluded.location_type,
			location_source = excluded.location_source,
			read_status = excluded.read_status,
			status_modified_time = excluded.status_modified_time,
			status_sent_time = excluded.status_sent_time,
			progress_received_time = excluded.progress_received_time,
			progress_sent_time = excluded.progress_sent_time,
			date_finished = excluded.date_finished`).
		ToSql()
}

func buildMarkSentQuery(b sq.StatementBuilderType, column string, userID int64, bookIDs []int64, at time.Time) (string, []any, error) {
	return b.Update("reading_progress").
		Set(column, at.UTC()).
		Where(sq.Eq{"user_id": userID, "book_id": bookIDs}).
		ToSql()
}

// ── user settings ────────────────────────────────────────────────────────────

func buildSelectUserSettingsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("user_id", "reading_threshold", "finished_threshold", "convert_to_kepub").
		From("kobo_user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertUserSettingsQuery(b sq.StatementBuilderType, s models.UserSyncSettings) (string, []any, error) {
	return b.Insert("kobo_user_settings").
		Columns("user_id", "reading_threshold", "finished_threshold", "convert_to_kepub").
		Values(s.UserID, s.ReadingThreshold, s.FinishedThreshold, s.ConvertToKepub).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			reading_threshold = excluded.reading_threshold,
			finished_threshold = excluded.finished_threshold,
			convert_to_kepub = excluded.convert_to_kepub`).
		ToSql()
}

func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
