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

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] over kobo_user_settings.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserSettings returns [ErrSettingsNotFound] when the user never stored
// any override.
func (r *settingsRepository) FindUserSettings(ctx context.Context, userID int64) (models.UserSyncSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserSettingsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.FindUserSettings").Msg("error building query")
		return models.UserSyncSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s                 models.UserSyncSettings
		reading, finished sql.NullFloat64
		kepub             sql.NullBool
	)
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&s.UserID, &reading, &finished, &kepub)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserSyncSettings{}, ErrSettingsNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.FindUserSettings").Msg("error scanning settings")
		return models.UserSyncSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	s.ReadingThreshold = floatPtr(reading)
	s.FinishedThreshold = floatPtr(finished)
	s.ConvertToKepub = boolPtr(kepub)

	return s, nil
}

func (r *settingsRepository) SaveUserSettings(ctx context.Context, settings models.UserSyncSettings) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserSettingsQuery(r.db.builder, settings)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.SaveUserSettings").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.SaveUserSettings").Int64("user_id", settings.UserID).Msg("error saving settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
