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

type bookRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] reading the books,
// book_authors and book_categories tables.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// FindBooksByIDs returns the books with the given ids ordered by id. Ids that
// do not exist are silently skipped.
func (r *bookRepository) FindBooksByIDs(ctx context.Context, ids []int64) ([]models.Book, error) {
	log := logger.FromContext(ctx)
	if len(ids) == 0 {
		return []models.Book{}, nil
	}

	query, args, err := buildSelectBooksQuery(r.db.builder, ids)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooksByIDs").Msg("error building select books query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	books, err := r.scanBooks(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooksByIDs").Msg("error selecting books")
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}

	authors, err := r.names(ctx, "book_authors", ids)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooksByIDs").Msg("error selecting authors")
		return nil, err
	}
	categories, err := r.names(ctx, "book_categories", ids)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooksByIDs").Msg("error selecting categories")
		return nil, err
	}

	for i := range books {
		books[i].Metadata.Authors = authors[books[i].ID]
		books[i].Metadata.Categories = categories[books[i].ID]
	}

	return books, nil
}

func (r *bookRepository) scanBooks(ctx context.Context, query string, args []any) ([]models.Book, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var (
			b                                           models.Book
			fileType                                    string
			addedOn, publishedDate, coverUpdatedOn      sql.NullTime
			description, publisher, imprint, seriesName sql.NullString
			isbn13, isbn10, language                    sql.NullString
			seriesNumber                                sql.NullFloat64
		)

		err = rows.Scan(
			&b.ID, &b.Metadata.Title, &fileType, &b.FileSizeKB, &addedOn, &description,
			&publisher, &imprint, &publishedDate, &isbn13, &isbn10, &language,
			&seriesName, &seriesNumber, &coverUpdatedOn,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		b.FileType = models.BookFileType(fileType)
		b.AddedOn = timePtr(addedOn)
		b.Metadata.Description = description.String
		b.Metadata.Publisher = publisher.String
		b.Metadata.Imprint = imprint.String
		b.Metadata.PublishedDate = timePtr(publishedDate)
		b.Metadata.ISBN13 = isbn13.String
		b.Metadata.ISBN10 = isbn10.String
		b.Metadata.Language = language.String
		b.Metadata.SeriesName = seriesName.String
		b.Metadata.SeriesNumber = floatPtr(seriesNumber)
		b.Metadata.CoverUpdatedOn = timePtr(coverUpdatedOn)

		books = append(books, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// names loads an ordered name list per book from table.
func (r *bookRepository) names(ctx context.Context, table string, ids []int64) (map[int64][]string, error) {
	query, args, err := buildSelectBookNamesQuery(r.db.builder, table, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var (
			bookID int64
			name   string
		)
		if err = rows.Scan(&bookID, &name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out[bookID] = append(out[bookID], name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func boolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}
