// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// SyncRequest is one library sync call of a device.
type SyncRequest struct {
	UserID int64
	// Token is the decoded incoming sync token; the zero value bootstraps.
	Token models.SyncToken
	// DownloadBaseURL is the device-facing base download links are built on.
	DownloadBaseURL string
	// Upstream is the original request, forwarded to the vendor once the
	// local part of the round is complete.
	Upstream models.ProxyRequest
}

// SyncResult is the outcome of one sync call.
type SyncResult struct {
	Entitlements []models.Entitlement
	// Continue tells the device to call again with Token.
	Continue bool
	Token    models.SyncToken
	// Skipped counts books dropped from this page because they could not be
	// rendered.
	Skipped int
}

// localRound is what phase one of a sync call produced.
type localRound struct {
	current      models.Snapshot
	previous     *models.Snapshot
	entitlements []models.Entitlement
	skipped      int
	continuing   bool

	// statusIDs and progressIDs are the reading states emitted by this call.
	// They are stamped as sent only once the whole answer is built.
	statusIDs   []int64
	progressIDs []int64
	stampedAt   time.Time
}

type syncService struct {
	transactor         store.Transactor
	snapshots          SnapshotStore
	diff               DiffEngine
	builder            EntitlementBuilder
	progressRepository store.ProgressRepository
	settings           SettingsService
	upstream           adapter.UpstreamProxy

	now func() time.Time

	logger *logger.Logger
}

// NewSyncService builds the library sync orchestrator.
func NewSyncService(
	storages *store.Storages,
	snapshots SnapshotStore,
	diff DiffEngine,
	builder EntitlementBuilder,
	settings SettingsService,
	upstream adapter.UpstreamProxy,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		transactor:         storages.Transactor,
		snapshots:          snapshots,
		diff:               diff,
		builder:            builder,
		progressRepository: storages.ProgressRepository,
		settings:           settings,
		upstream:           upstream,
		now:                time.Now,
		logger:             logger,
	}
}

// Sync runs one call of a sync round in three phases:
//
//  1. in one transaction: resolve the snapshots, page through the diff, mark
//     the delivered rows and, when the local round is complete, collect the
//     pending reading states;
//  2. when nothing local is left, forward the call to the vendor and append
//     its items;
//  3. in a second transaction: stamp the emitted reading states as sent and,
//     when the round completes, retire every other snapshot of the user.
//
// Phase one commits on its own, so a failing vendor call never re-emits a
// continuation page on retry. Reading states are only stamped in phase three,
// so a failing vendor call leaves them pending for the next call.
func (s *syncService) Sync(ctx context.Context, req SyncRequest) (SyncResult, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*syncService.Sync").
		Int64("user_id", req.UserID).
		Logger()

	settings, err := s.settings.EffectiveSettings(ctx, req.UserID)
	if err != nil {
		return SyncResult{}, err
	}

	var round localRound
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		round, txErr = s.runLocalRound(ctx, req, settings)
		return txErr
	})
	if err != nil {
		log.Err(err).Msg("local sync round failed")
		return SyncResult{}, err
	}

	result := SyncResult{
		Entitlements: round.entitlements,
		Continue:     round.continuing,
		Token:        req.Token,
		Skipped:      round.skipped,
	}

	if !round.continuing {
		upstreamReq := req.Upstream
		upstreamReq.Token = req.Token

		page, err := s.upstream.Sync(ctx, upstreamReq)
		if err != nil {
			log.Err(err).Msg("upstream sync failed")
			return SyncResult{}, fmt.Errorf("%w: %w", ErrUpstreamSyncFailed, err)
		}

		result.Entitlements = append(result.Entitlements, page.Entitlements...)
		result.Continue = page.Continue
		result.Token = page.Token
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.progressRepository.MarkStatusSent(ctx, req.UserID, round.statusIDs, round.stampedAt); err != nil {
			return err
		}
		if err := s.progressRepository.MarkProgressSent(ctx, req.UserID, round.progressIDs, round.stampedAt); err != nil {
			return err
		}
		if result.Continue {
			return nil
		}
		return s.snapshots.RetireAllExcept(ctx, req.UserID, round.current.ID)
	})
	if err != nil {
		log.Err(err).Msg("error finishing sync call")
		return SyncResult{}, err
	}

	if result.Continue {
		result.Token = result.Token.Continuing(round.current.ID)
	} else {
		result.Token = result.Token.Completed(round.current.ID)
	}

	log.Info().
		Str("snapshot_id", round.current.ID).
		Bool("bootstrap", round.previous == nil).
		Bool("continue", result.Continue).
		Int("entitlements", len(result.Entitlements)).
		Int("skipped", result.Skipped).
		Msg("sync call served")

	return result, nil
}

func (s *syncService) runLocalRound(ctx context.Context, req SyncRequest, settings models.SyncSettings) (localRound, error) {
	var round localRound

	current, err := s.resolveCurrent(ctx, req, settings)
	if err != nil {
		return localRound{}, err
	}
	round.current = current

	previous, found, err := s.snapshots.FindByIDAndUser(ctx, req.Token.LastSuccessfulSnapshotID, req.UserID)
	if err != nil {
		return localRound{}, err
	}
	if found && previous.ID != current.ID {
		round.previous = &previous
	}

	entitlementReq := EntitlementRequest{
		UserID:          req.UserID,
		DownloadBaseURL: req.DownloadBaseURL,
		Settings:        settings,
	}

	newIDs := map[int64]struct{}{}
	if round.previous != nil {
		err = s.pageIncremental(ctx, &round, entitlementReq, settings.PageSize, newIDs)
	} else {
		err = s.pageBootstrap(ctx, &round, entitlementReq, settings.PageSize, newIDs)
	}
	if err != nil {
		return localRound{}, err
	}

	if !round.continuing {
		if err = s.pushReadingStates(ctx, &round, req.UserID, newIDs); err != nil {
			return localRound{}, err
		}
	}

	return round, nil
}

// resolveCurrent reuses the snapshot of a round in progress, or captures a
// new one.
func (s *syncService) resolveCurrent(ctx context.Context, req SyncRequest, settings models.SyncSettings) (models.Snapshot, error) {
	if req.Token.IsContinuing() {
		current, found, err := s.snapshots.FindByIDAndUser(ctx, req.Token.OngoingSnapshotID, req.UserID)
		if err != nil {
			return models.Snapshot{}, err
		}
		if found {
			return current, nil
		}
		logger.FromContext(ctx).Warn().
			Str("func", "*syncService.resolveCurrent").
			Str("snapshot_id", req.Token.OngoingSnapshotID).
			Msg("ongoing snapshot not found, starting a new round")
	}

	return s.snapshots.Create(ctx, req.UserID, settings)
}

// pageIncremental spends the page budget on added books first and on
// removals only once no added book is left.
func (s *syncService) pageIncremental(ctx context.Context, round *localRound, req EntitlementRequest, budget int, newIDs map[int64]struct{}) error {
	previousID, currentID := round.previous.ID, round.current.ID

	if _, err := s.diff.ExistingPage(ctx, previousID, currentID); err != nil {
		return err
	}

	added, err := s.diff.AddedPage(ctx, previousID, currentID, budget)
	if err != nil {
		return err
	}
	if err = s.emitNew(ctx, round, req, added.BookIDs, newIDs); err != nil {
		return err
	}
	round.continuing = added.HasMore
	if added.HasMore {
		return nil
	}

	removed, err := s.diff.RemovedPage(ctx, previousID, currentID, req.UserID, budget-added.Len())
	if err != nil {
		return err
	}
	if removed.Len() > 0 {
		req.BookIDs = removed.BookIDs
		req.Removed = true
		built, err := s.builder.GenerateChangedEntitlements(ctx, req)
		if err != nil {
			return err
		}
		round.entitlements = append(round.entitlements, built.Entitlements...)
		round.skipped += len(built.Skipped)
	}
	round.continuing = removed.HasMore

	return nil
}

func (s *syncService) pageBootstrap(ctx context.Context, round *localRound, req EntitlementRequest, budget int, newIDs map[int64]struct{}) error {
	unsynced, err := s.diff.UnsyncedPage(ctx, round.current.ID, budget)
	if err != nil {
		return err
	}
	if err = s.emitNew(ctx, round, req, unsynced.BookIDs, newIDs); err != nil {
		return err
	}
	round.continuing = unsynced.HasMore

	return nil
}

func (s *syncService) emitNew(ctx context.Context, round *localRound, req EntitlementRequest, ids []int64, newIDs map[int64]struct{}) error {
	if len(ids) == 0 {
		return nil
	}

	req.BookIDs = ids
	built, err := s.builder.GenerateNewEntitlements(ctx, req)
	if err != nil {
		return err
	}

	for _, id := range ids {
		newIDs[id] = struct{}{}
	}
	round.entitlements = append(round.entitlements, built.Entitlements...)
	round.skipped += len(built.Skipped)

	return nil
}

// pushReadingStates emits the reading states with unsent changes and
// remembers which of them to stamp as sent. Books delivered as new
// entitlements in this call already carry their state, so they are only
// stamped.
func (s *syncService) pushReadingStates(ctx context.Context, round *localRound, userID int64, newIDs map[int64]struct{}) error {
	rows, err := s.progressRepository.PendingProgressInSnapshot(ctx, userID, round.current.ID)
	if err != nil {
		return err
	}

	round.stampedAt = s.now().UTC()

	for i := range rows {
		p := rows[i]
		needsStatus, needsProgress := NeedsStatusSync(p), NeedsProgressSync(p)
		if !needsStatus && !needsProgress {
			continue
		}

		if needsStatus {
			round.statusIDs = append(round.statusIDs, p.BookID)
		}
		if needsProgress {
			round.progressIDs = append(round.progressIDs, p.BookID)
		}

		if _, ok := newIDs[p.BookID]; ok {
			continue
		}
		round.entitlements = append(round.entitlements, models.ChangedReadingStateItem(BuildReadingState(p.BookID, &p, round.stampedAt)))
	}

	return nil
}
