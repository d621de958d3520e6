// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type readingStateService struct {
	transactor         store.Transactor
	bookRepository     store.BookRepository
	progressRepository store.ProgressRepository
	settings           SettingsService

	now func() time.Time

	logger *logger.Logger
}

// NewReadingStateService builds the service behind the per-book reading
// state endpoints.
func NewReadingStateService(storages *store.Storages, settings SettingsService, logger *logger.Logger) ReadingStateService {
	return &readingStateService{
		transactor:         storages.Transactor,
		bookRepository:     storages.BookRepository,
		progressRepository: storages.ProgressRepository,
		settings:           settings,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *readingStateService) GetReadingState(ctx context.Context, userID, bookID int64) ([]models.KoboReadingState, error) {
	books, err := s.bookRepository.FindBooksByIDs(ctx, []int64{bookID})
	if err != nil {
		return nil, fmt.Errorf("error reading book: %w", err)
	}
	if len(books) == 0 {
		return nil, ErrBookNotFound
	}

	progress, err := s.progressRepository.FindProgress(ctx, userID, []int64{bookID})
	if err != nil {
		return nil, fmt.Errorf("error reading progress: %w", err)
	}

	var p *models.ReadingProgress
	if found, ok := progress[bookID]; ok {
		p = &found
	}

	return []models.KoboReadingState{BuildReadingState(bookID, p, s.now().UTC())}, nil
}

// UpdateReadingStates merges device reports on bookID into the stored
// progress. States naming an unknown book, or a book other than bookID, are
// acknowledged as ignored.
func (s *readingStateService) UpdateReadingStates(ctx context.Context, userID, bookID int64, req models.ReadingStateUpdateRequest) (models.ReadingStateUpdateResponse, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settings.EffectiveSettings(ctx, userID)
	if err != nil {
		return models.ReadingStateUpdateResponse{}, err
	}

	ids := make([]int64, 0, len(req.ReadingStates))
	for _, state := range req.ReadingStates {
		if id, err := strconv.ParseInt(state.EntitlementID, 10, 64); err == nil && id == bookID {
			ids = append(ids, id)
		}
	}

	response := models.ReadingStateUpdateResponse{
		RequestResult: models.RequestResultSuccess,
		UpdateResults: make([]models.ReadingStateUpdateResult, 0, len(req.ReadingStates)),
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		response.UpdateResults = response.UpdateResults[:0]

		books, err := s.bookRepository.FindBooksByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("error reading books: %w", err)
		}
		known := make(map[int64]struct{}, len(books))
		for _, book := range books {
			known[book.ID] = struct{}{}
		}

		progress, err := s.progressRepository.FindProgress(ctx, userID, ids)
		if err != nil {
			return fmt.Errorf("error reading progress: %w", err)
		}

		now := s.now().UTC()
		for _, state := range req.ReadingStates {
			id, err := strconv.ParseInt(state.EntitlementID, 10, 64)
			if err == nil && id != bookID {
				log.Warn().
					Str("func", "*readingStateService.UpdateReadingStates").
					Int64("book_id", bookID).
					Str("entitlement_id", state.EntitlementID).
					Msg("reading state for another book ignored")
				response.UpdateResults = append(response.UpdateResults, updateResult(state.EntitlementID, models.UpdateResultIgnored))
				continue
			}
			if _, ok := known[id]; err != nil || !ok {
				log.Warn().
					Str("func", "*readingStateService.UpdateReadingStates").
					Str("entitlement_id", state.EntitlementID).
					Msg("reading state for unknown book ignored")
				response.UpdateResults = append(response.UpdateResults, updateResult(state.EntitlementID, models.UpdateResultIgnored))
				continue
			}

			var existing *models.ReadingProgress
			if p, ok := progress[id]; ok {
				existing = &p
			}

			merged := ApplyDeviceReadingState(existing, userID, id, state, settings, now)
			if err = s.progressRepository.SaveProgress(ctx, merged); err != nil {
				return fmt.Errorf("error saving progress of book %d: %w", id, err)
			}
			progress[id] = merged

			response.UpdateResults = append(response.UpdateResults, updateResult(state.EntitlementID, models.UpdateResultSuccess))
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*readingStateService.UpdateReadingStates").Msg("error updating reading states")
		return models.ReadingStateUpdateResponse{}, err
	}

	return response, nil
}

func updateResult(entitlementID, result string) models.ReadingStateUpdateResult {
	return models.ReadingStateUpdateResult{
		EntitlementID:         entitlementID,
		CurrentBookmarkResult: models.UpdateResult{Result: result},
		StatisticsResult:      models.UpdateResult{Result: result},
		StatusInfoResult:      models.UpdateResult{Result: result},
	}
}
