// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/internal/validators"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type settingsService struct {
	settingsRepository store.SettingsRepository
	defaults           models.SyncSettings
	validator          validators.Validator

	logger *logger.Logger
}

// NewSettingsService builds the SettingsService with defaults taken from
// the app sync configuration.
func NewSettingsService(settingsRepository store.SettingsRepository, cfg config.Sync, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		defaults:           DefaultSyncSettings(cfg),
		validator:          validators.NewReadingStateValidator(),
		logger:             logger,
	}
}

// DefaultSyncSettings converts the config section into [models.SyncSettings].
func DefaultSyncSettings(cfg config.Sync) models.SyncSettings {
	return models.SyncSettings{
		ConvertCbxToEpub:     cfg.ConvertCbxToEpub,
		CbxConversionLimitMB: cfg.CbxConversionLimitMB,
		ConvertToKepub:       cfg.ConvertToKepub,
		ReadingThreshold:     cfg.ReadingThreshold,
		FinishedThreshold:    cfg.FinishedThreshold,
		PageSize:             cfg.PageSize,
		StatusSyncBuffer:     cfg.StatusSyncBuffer,
	}
}

func (s *settingsService) EffectiveSettings(ctx context.Context, userID int64) (models.SyncSettings, error) {
	userSettings, err := s.settingsRepository.FindUserSettings(ctx, userID)
	if errors.Is(err, store.ErrSettingsNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsService.EffectiveSettings").Int64("user_id", userID).Msg("error reading user settings")
		return models.SyncSettings{}, fmt.Errorf("error reading user settings: %w", err)
	}

	return userSettings.Apply(s.defaults), nil
}

// UpdateUserSettings stores overrides after checking the resulting
// thresholds are ordered and within 0..100.
func (s *settingsService) UpdateUserSettings(ctx context.Context, settings models.UserSyncSettings) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, settings); err != nil {
		log.Err(err).Str("func", "*settingsService.UpdateUserSettings").Msg("invalid user settings")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	effective := settings.Apply(s.defaults)
	if effective.ReadingThreshold < 0 || effective.FinishedThreshold > 100 ||
		effective.ReadingThreshold > effective.FinishedThreshold {
		log.Error().
			Float64("reading", effective.ReadingThreshold).
			Float64("finished", effective.FinishedThreshold).
			Msg("invalid thresholds")
		return ErrInvalidThresholds
	}

	if err := s.settingsRepository.SaveUserSettings(ctx, settings); err != nil {
		log.Err(err).Str("func", "*settingsService.UpdateUserSettings").Msg("error saving user settings")
		return fmt.Errorf("error saving user settings: %w", err)
	}

	return nil
}
