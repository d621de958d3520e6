// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"strconv"
	"time"

	"github.com/MKhiriev/go-kobo-sync/models"
)

// MapStatus converts the library read status to the device vocabulary.
// A nil status is ReadyToRead.
func MapStatus(status *models.ReadStatus) models.DeviceReadStatus {
	if status == nil {
		return models.DeviceStatusReadyToRead
	}

	switch *status {
	case models.ReadStatusRead:
		return models.DeviceStatusFinished
	case models.ReadStatusPartiallyRead, models.ReadStatusReading, models.ReadStatusReRead, models.ReadStatusPaused:
		return models.DeviceStatusReading
	default:
		return models.DeviceStatusReadyToRead
	}
}

// DeriveStatus maps a device progress percent to a library read status
// using the user's thresholds.
func DeriveStatus(percent float64, settings models.SyncSettings) models.ReadStatus {
	switch {
	case percent >= settings.FinishedThreshold:
		return models.ReadStatusRead
	case percent >= settings.ReadingThreshold:
		return models.ReadStatusReading
	default:
		return models.ReadStatusUnread
	}
}

// BuildBookmark renders the current bookmark of p. LastModified is the time
// the progress was received from a device, or fallback when it never was.
func BuildBookmark(p *models.ReadingProgress, fallback time.Time) *models.KoboBookmark {
	bookmark := &models.KoboBookmark{LastModified: models.FormatKoboTime(fallback)}
	if p == nil {
		return bookmark
	}

	if p.ProgressReceivedTime != nil {
		bookmark.LastModified = models.FormatKoboTime(*p.ProgressReceivedTime)
	}
	if p.ProgressPercent != nil {
		rounded := math.Round(*p.ProgressPercent)
		bookmark.ProgressPercent = &rounded
	}
	if p.Location != nil {
		bookmark.Location = &models.KoboLocation{
			Value:  p.Location.Value,
			Type:   p.Location.Type,
			Source: p.Location.Source,
		}
	}

	return bookmark
}

// BuildStatusInfo renders the device status block of p.
func BuildStatusInfo(p *models.ReadingProgress, lastModified string) *models.KoboStatusInfo {
	var status *models.ReadStatus
	if p != nil {
		status = p.ReadStatus
	}

	info := &models.KoboStatusInfo{
		LastModified: lastModified,
		Status:       MapStatus(status),
	}

	if info.Status != models.DeviceStatusReadyToRead {
		info.TimesStartedReading = 1
	}
	if info.Status == models.DeviceStatusFinished && p.DateFinished != nil {
		info.LastTimeFinished = models.FormatKoboTime(*p.DateFinished)
	}

	return info
}

// BuildReadingState renders the full reading state of a book. p may be nil
// for a book that has no progress yet.
func BuildReadingState(bookID int64, p *models.ReadingProgress, now time.Time) models.KoboReadingState {
	lastModified := latest(now, p)
	stamp := models.FormatKoboTime(lastModified)

	statusModified := stamp
	if p != nil && p.StatusModifiedTime != nil {
		statusModified = models.FormatKoboTime(*p.StatusModifiedTime)
	}

	return models.KoboReadingState{
		EntitlementID:     strconv.FormatInt(bookID, 10),
		Created:           stamp,
		LastModified:      stamp,
		PriorityTimestamp: stamp,
		StatusInfo:        BuildStatusInfo(p, statusModified),
		Statistics:        &models.KoboStatistics{LastModified: stamp},
		CurrentBookmark:   BuildBookmark(p, lastModified),
	}
}

// latest returns the most recent local or device change of p, or fallback
// when p carries neither.
func latest(fallback time.Time, p *models.ReadingProgress) time.Time {
	if p == nil {
		return fallback
	}

	var out time.Time
	for _, t := range []*time.Time{p.StatusModifiedTime, p.ProgressReceivedTime} {
		if t != nil && t.After(out) {
			out = *t
		}
	}
	if out.IsZero() {
		return fallback
	}
	return out
}

// NeedsStatusSync reports a local status change the device has not been
// sent yet.
func NeedsStatusSync(p models.ReadingProgress) bool {
	return pendingSince(p.StatusModifiedTime, p.StatusSentTime)
}

// NeedsProgressSync reports a device report that has not been echoed back
// in a sync round yet.
func NeedsProgressSync(p models.ReadingProgress) bool {
	return pendingSince(p.ProgressReceivedTime, p.ProgressSentTime)
}

func pendingSince(changed, sent *time.Time) bool {
	return changed != nil && (sent == nil || changed.After(*sent))
}

// IsStatusSyncSuppressed reports whether an incoming device report must not
// re-derive the read status of p: a local change is still unsent, or the
// last push happened less than buffer ago.
func IsStatusSyncSuppressed(p models.ReadingProgress, buffer time.Duration, now time.Time) bool {
	if NeedsStatusSync(p) {
		return true
	}
	return p.StatusSentTime != nil && now.Before(p.StatusSentTime.Add(buffer))
}

// ApplyDeviceReadingState merges a device report into the stored progress
// and returns the row to save. existing may be nil.
func ApplyDeviceReadingState(
	existing *models.ReadingProgress,
	userID, bookID int64,
	incoming models.KoboReadingState,
	settings models.SyncSettings,
	now time.Time,
) models.ReadingProgress {
	p := models.ReadingProgress{UserID: userID, BookID: bookID}
	if existing != nil {
		p = *existing
	}

	if bm := incoming.CurrentBookmark; bm != nil {
		if bm.ProgressPercent != nil {
			percent := *bm.ProgressPercent
			p.ProgressPercent = &percent
		}
		if bm.Location != nil {
			p.Location = &models.BookLocation{
				Value:  bm.Location.Value,
				Type:   bm.Location.Type,
				Source: bm.Location.Source,
			}
		}
	}

	received := now
	p.ProgressReceivedTime = &received

	if p.ProgressPercent == nil || IsStatusSyncSuppressed(p, settings.StatusSyncBuffer, now) {
		return p
	}

	derived := DeriveStatus(*p.ProgressPercent, settings)
	p.ReadStatus = &derived
	if derived == models.ReadStatusRead && p.DateFinished == nil {
		finished := now
		p.DateFinished = &finished
	}

	return p
}
