// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceReadStatus is the read-status vocabulary of the device.
type DeviceReadStatus string

const (
	DeviceStatusReadyToRead DeviceReadStatus = "ReadyToRead"
	DeviceStatusReading     DeviceReadStatus = "Reading"
	DeviceStatusFinished    DeviceReadStatus = "Finished"
)

// KoboReadingState is the vendor reading-state block. The same shape is
// emitted in sync rounds and received from devices.
type KoboReadingState struct {
	EntitlementID     string          `json:"EntitlementId"`
	Created           string          `json:"Created,omitempty"`
	LastModified      string          `json:"LastModified"`
	PriorityTimestamp string          `json:"PriorityTimestamp,omitempty"`
	StatusInfo        *KoboStatusInfo `json:"StatusInfo,omitempty"`
	Statistics        *KoboStatistics `json:"Statistics,omitempty"`
	CurrentBookmark   *KoboBookmark   `json:"CurrentBookmark,omitempty"`
}

// KoboStatusInfo carries the device read status.
type KoboStatusInfo struct {
	LastModified           string           `json:"LastModified"`
	Status                 DeviceReadStatus `json:"Status"`
	TimesStartedReading    int              `json:"TimesStartedReading"`
	LastTimeStartedReading string           `json:"LastTimeStartedReading,omitempty"`
	LastTimeFinished       string           `json:"LastTimeFinished,omitempty"`
}

// KoboStatistics carries reading time estimates.
type KoboStatistics struct {
	LastModified         string `json:"LastModified"`
	SpentReadingMinutes  *int   `json:"SpentReadingMinutes,omitempty"`
	RemainingTimeMinutes *int   `json:"RemainingTimeMinutes,omitempty"`
}

// KoboBookmark is the current reading position.
type KoboBookmark struct {
	LastModified                 string        `json:"LastModified"`
	ProgressPercent              *float64      `json:"ProgressPercent,omitempty"`
	ContentSourceProgressPercent *float64      `json:"ContentSourceProgressPercent,omitempty"`
	Location                     *KoboLocation `json:"Location,omitempty"`
}

// KoboLocation is a position inside a book.
type KoboLocation struct {
	Value  string `json:"Value"`
	Type   string `json:"Type"`
	Source string `json:"Source"`
}

// ReadingStateUpdateRequest is the body a device sends to push its state.
type ReadingStateUpdateRequest struct {
	ReadingStates []KoboReadingState `json:"ReadingStates"`
}

// Result values of a reading-state update.
const (
	RequestResultSuccess = "Success"
	UpdateResultSuccess  = "Success"
	UpdateResultIgnored  = "Ignored"
)

// ReadingStateUpdateResponse acknowledges a [ReadingStateUpdateRequest].
type ReadingStateUpdateResponse struct {
	RequestResult string                     `json:"RequestResult"`
	UpdateResults []ReadingStateUpdateResult `json:"UpdateResults"`
}

// ReadingStateUpdateResult is the per-entitlement outcome of an update.
type ReadingStateUpdateResult struct {
	EntitlementID         string       `json:"EntitlementId"`
	CurrentBookmarkResult UpdateResult `json:"CurrentBookmarkResult"`
	StatisticsResult      UpdateResult `json:"StatisticsResult"`
	StatusInfoResult      UpdateResult `json:"StatusInfoResult"`
}

// UpdateResult is a single result field.
type UpdateResult struct {
	Result string `json:"Result"`
}
