// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// Download formats declared to the device.
const (
	FormatKepub = "KEPUB"
	FormatEpub3 = "EPUB3"
)

const (
	entitlementStatusActive = "Active"
	accessibilityFull       = "Full"
	originCategoryImported  = "Imported"
	downloadPlatform        = "Generic"
	defaultLanguage         = "en"
	defaultCurrency         = "USD"

	// defaultCategoryID is the vendor category every local book is filed under.
	defaultCategoryID = "00000000-0000-0000-0000-000000000001"
)

// Reasons a book is left out of a built page.
const (
	SkipReasonNotFound    = "book not found"
	SkipReasonUnsupported = "format not supported by device"
	SkipReasonMapping     = "mapping failed"
)

// EntitlementRequest selects the books to render and how.
type EntitlementRequest struct {
	UserID  int64
	BookIDs []int64
	// DownloadBaseURL is the device-facing base, /api/kobo/{token} included.
	DownloadBaseURL string
	// Removed renders the books as removed; no library lookup is made.
	Removed  bool
	Settings models.SyncSettings
}

// SkippedBook is a book dropped from a page, with the reason.
type SkippedBook struct {
	BookID int64
	Reason string
}

// BuildResult holds the rendered entitlements in request order and the
// books that could not be rendered.
type BuildResult struct {
	Entitlements []models.Entitlement
	Skipped      []SkippedBook
}

func (r *BuildResult) skip(log *logger.Logger, bookID int64, reason string, err error) {
	ev := log.Warn().Str("func", "EntitlementBuilder").Int64("book_id", bookID).Str("reason", reason)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("book skipped")

	r.Skipped = append(r.Skipped, SkippedBook{BookID: bookID, Reason: reason})
}

// IsBookSupportedForKobo reports whether the device can receive book. EPUB
// always qualifies; comic archives only when conversion is enabled and the
// archive is within the size limit.
func IsBookSupportedForKobo(book models.Book, settings models.SyncSettings) bool {
	switch book.FileType {
	case models.FileTypeEPUB:
		return true
	case models.FileTypeCBX:
		return settings.ConvertCbxToEpub && book.FileSizeBytes() <= settings.CbxConversionLimitMB*1024*1024
	default:
		return false
	}
}

// DownloadFormat returns the format declared for book.
func DownloadFormat(book models.Book, settings models.SyncSettings) string {
	if book.FileType == models.FileTypeEPUB && settings.ConvertToKepub {
		return FormatKepub
	}
	return FormatEpub3
}

type entitlementBuilder struct {
	bookRepository     store.BookRepository
	progressRepository store.ProgressRepository

	now func() time.Time

	logger *logger.Logger
}

// NewEntitlementBuilder builds an EntitlementBuilder reading books and
// progress from the given repositories.
func NewEntitlementBuilder(bookRepository store.BookRepository, progressRepository store.ProgressRepository, logger *logger.Logger) EntitlementBuilder {
	return &entitlementBuilder{
		bookRepository:     bookRepository,
		progressRepository: progressRepository,
		now:                time.Now,
		logger:             logger,
	}
}

func (b *entitlementBuilder) IsBookSupportedForKobo(book models.Book, settings models.SyncSettings) bool {
	return IsBookSupportedForKobo(book, settings)
}

// GenerateNewEntitlements renders NewEntitlement items carrying the current
// reading state of each book.
func (b *entitlementBuilder) GenerateNewEntitlements(ctx context.Context, req EntitlementRequest) (BuildResult, error) {
	log := logger.FromContext(ctx)
	now := b.now().UTC()
	result := BuildResult{Entitlements: make([]models.Entitlement, 0, len(req.BookIDs))}

	books, err := b.lookupBooks(ctx, req.BookIDs)
	if err != nil {
		return BuildResult{}, err
	}

	progress, err := b.progressRepository.FindProgress(ctx, req.UserID, req.BookIDs)
	if err != nil {
		return BuildResult{}, fmt.Errorf("error reading progress: %w", err)
	}

	for _, id := range req.BookIDs {
		book, ok := books[id]
		if !ok {
			result.skip(log, id, SkipReasonNotFound, nil)
			continue
		}
		if !IsBookSupportedForKobo(book, req.Settings) {
			result.skip(log, id, SkipReasonUnsupported, nil)
			continue
		}

		metadata, err := b.buildMetadata(book, req, now)
		if err != nil {
			result.skip(log, id, SkipReasonMapping, err)
			continue
		}

		var p *models.ReadingProgress
		if found, ok := progress[id]; ok {
			p = &found
		}

		result.Entitlements = append(result.Entitlements, models.NewEntitlementItem(models.NewEntitlement{
			BookEntitlement: buildBookEntitlement(book, req.Removed, now),
			BookMetadata:    metadata,
			ReadingState:    BuildReadingState(id, p, now),
		}))
	}

	return result, nil
}

// GenerateChangedEntitlements renders ChangedEntitlement items. With
// req.Removed set the books are not looked up: every identifier collapses to
// the book id, which is all the device needs to drop the book.
func (b *entitlementBuilder) GenerateChangedEntitlements(ctx context.Context, req EntitlementRequest) (BuildResult, error) {
	log := logger.FromContext(ctx)
	now := b.now().UTC()
	result := BuildResult{Entitlements: make([]models.Entitlement, 0, len(req.BookIDs))}

	if req.Removed {
		for _, id := range req.BookIDs {
			result.Entitlements = append(result.Entitlements, models.ChangedEntitlementItem(removedEntitlement(id, now)))
		}
		return result, nil
	}

	books, err := b.lookupBooks(ctx, req.BookIDs)
	if err != nil {
		return BuildResult{}, err
	}

	for _, id := range req.BookIDs {
		book, ok := books[id]
		if !ok {
			result.skip(log, id, SkipReasonNotFound, nil)
			continue
		}
		if !IsBookSupportedForKobo(book, req.Settings) {
			result.skip(log, id, SkipReasonUnsupported, nil)
			continue
		}

		metadata, err := b.buildMetadata(book, req, now)
		if err != nil {
			result.skip(log, id, SkipReasonMapping, err)
			continue
		}

		result.Entitlements = append(result.Entitlements, models.ChangedEntitlementItem(models.ChangedEntitlement{
			BookEntitlement: buildBookEntitlement(book, false, now),
			BookMetadata:    metadata,
		}))
	}

	return result, nil
}

func (b *entitlementBuilder) lookupBooks(ctx context.Context, ids []int64) (map[int64]models.Book, error) {
	books, err := b.bookRepository.FindBooksByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error reading books: %w", err)
	}

	out := make(map[int64]models.Book, len(books))
	for _, book := range books {
		out[book.ID] = book
	}
	return out, nil
}

func buildBookEntitlement(book models.Book, removed bool, now time.Time) models.KoboBookEntitlement {
	id := strconv.FormatInt(book.ID, 10)
	stamp := models.FormatKoboTime(now)

	created := stamp
	if book.AddedOn != nil {
		created = models.FormatKoboTime(*book.AddedOn)
	}

	return models.KoboBookEntitlement{
		Accessibility:   accessibilityFull,
		ActivePeriod:    models.KoboActivePeriod{From: stamp},
		Created:         created,
		CrossRevisionID: id,
		ID:              id,
		IsRemoved:       removed,
		LastModified:    stamp,
		OriginCategory:  originCategoryImported,
		RevisionID:      id,
		Status:          entitlementStatusActive,
	}
}

func (b *entitlementBuilder) buildMetadata(book models.Book, req EntitlementRequest, now time.Time) (models.KoboBookMetadata, error) {
	id := strconv.FormatInt(book.ID, 10)
	meta := book.Metadata

	downloadURL, err := DownloadURL(req.DownloadBaseURL, book.ID)
	if err != nil {
		return models.KoboBookMetadata{}, err
	}

	language := meta.Language
	if language == "" {
		language = defaultLanguage
	}

	roles := make([]models.KoboContributorRole, 0, len(meta.Authors))
	for _, author := range meta.Authors {
		roles = append(roles, models.KoboContributorRole{Name: author})
	}

	out := models.KoboBookMetadata{
		Categories:          []string{defaultCategoryID},
		CoverImageID:        coverImageID(book),
		CrossRevisionID:     id,
		CurrentDisplayPrice: models.KoboDisplayPrice{CurrencyCode: defaultCurrency},
		Description:         meta.Description,
		DownloadUrls: []models.KoboDownloadURL{{
			Format:   DownloadFormat(book, req.Settings),
			Size:     book.FileSizeBytes(),
			URL:      downloadURL,
			Platform: downloadPlatform,
		}},
		EntitlementID:          id,
		ExternalIDs:            []string{},
		Genre:                  meta.Genre(),
		IsSocialEnabled:        true,
		ISBN:                   meta.ISBN(),
		Language:               language,
		PhoneticPronunciations: map[string]string{},
		Publisher:              models.KoboPublisher{Name: meta.Publisher, Imprint: meta.Imprint},
		RevisionID:             id,
		Series:                 buildSeries(meta),
		Slug:                   Slugify(meta.Title),
		Title:                  meta.Title,
		WorkID:                 id,
		Contributors:           append([]string{}, meta.Authors...),
		ContributorRoles:       roles,
	}
	if meta.PublishedDate != nil {
		out.PublicationDate = models.FormatKoboTime(*meta.PublishedDate)
	}

	return out, nil
}

func removedEntitlement(bookID int64, now time.Time) models.ChangedEntitlement {
	id := strconv.FormatInt(bookID, 10)
	stamp := models.FormatKoboTime(now)

	return models.ChangedEntitlement{
		BookEntitlement: models.KoboBookEntitlement{
			Accessibility:   accessibilityFull,
			ActivePeriod:    models.KoboActivePeriod{From: stamp},
			Created:         stamp,
			CrossRevisionID: id,
			ID:              id,
			IsRemoved:       true,
			LastModified:    stamp,
			OriginCategory:  originCategoryImported,
			RevisionID:      id,
			Status:          entitlementStatusActive,
		},
		BookMetadata: models.KoboBookMetadata{
			Categories:             []string{defaultCategoryID},
			CoverImageID:           id,
			CrossRevisionID:        id,
			CurrentDisplayPrice:    models.KoboDisplayPrice{CurrencyCode: defaultCurrency},
			DownloadUrls:           []models.KoboDownloadURL{},
			EntitlementID:          id,
			ExternalIDs:            []string{},
			Language:               defaultLanguage,
			PhoneticPronunciations: map[string]string{},
			Publisher:              models.KoboPublisher{Name: id, Imprint: id},
			RevisionID:             id,
			Slug:                   id,
			Title:                  id,
			WorkID:                 id,
			Contributors:           []string{},
			ContributorRoles:       []models.KoboContributorRole{},
		},
	}
}

func buildSeries(meta models.BookMetadata) *models.KoboSeries {
	if meta.SeriesName == "" {
		return nil
	}

	series := &models.KoboSeries{
		ID:   Slugify(meta.SeriesName),
		Name: meta.SeriesName,
	}
	if meta.SeriesNumber != nil {
		series.NumberFloat = *meta.SeriesNumber
		series.Number = strconv.FormatFloat(*meta.SeriesNumber, 'f', -1, 64)
	}
	return series
}

// coverImageID changes whenever the cover does so devices refetch it.
func coverImageID(book models.Book) string {
	id := strconv.FormatInt(book.ID, 10)
	if book.Metadata.CoverUpdatedOn == nil {
		return id
	}
	return id + "-" + strconv.FormatInt(book.Metadata.CoverUpdatedOn.Unix(), 10)
}

// DownloadURL returns the device download link of a book under base.
func DownloadURL(base string, bookID int64) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("download base url is empty")
	}

	u, err := url.JoinPath(base, "v1", "books", strconv.FormatInt(bookID, 10), "download")
	if err != nil {
		return "", fmt.Errorf("error building download url: %w", err)
	}
	return u, nil
}

// Slugify lowercases s and replaces every run of characters other than
// ASCII letters and digits with a single dash.
func Slugify(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
