// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
)

type shelfRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewShelfRepository constructs a [ShelfRepository].
func NewShelfRepository(db *DB, logger *logger.Logger) ShelfRepository {
	logger.Debug().Msg("creating shelf repository")
	return &shelfRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shelfRepository) DeviceShelfBookIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDeviceShelfBooksQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*shelfRepository.DeviceShelfBookIDs").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ids, err := scanIDs(ctx, r.db.conn(ctx), query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shelfRepository.DeviceShelfBookIDs").Int64("user_id", userID).Msg("error selecting device shelf books")
		return nil, err
	}

	return ids, nil
}
