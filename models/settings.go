// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserSyncSettings holds a user's overrides of the app-wide sync defaults.
// A nil field falls back to the default.
type UserSyncSettings struct {
	UserID            int64    `json:"user_id"`
	ReadingThreshold  *float64 `json:"reading_threshold,omitempty"`
	FinishedThreshold *float64 `json:"finished_threshold,omitempty"`
	ConvertToKepub    *bool    `json:"convert_to_kepub,omitempty"`
}

// Apply returns defaults with the user's overrides on top.
func (s UserSyncSettings) Apply(defaults SyncSettings) SyncSettings {
	if s.ReadingThreshold != nil {
		defaults.ReadingThreshold = *s.ReadingThreshold
	}
	if s.FinishedThreshold != nil {
		defaults.FinishedThreshold = *s.FinishedThreshold
	}
	if s.ConvertToKepub != nil {
		defaults.ConvertToKepub = *s.ConvertToKepub
	}
	return defaults
}
