// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BookFileType is the format of a book's primary source file.
type BookFileType string

const (
	// FileTypeEPUB is a reflowable EPUB book.
	FileTypeEPUB BookFileType = "EPUB"
	// FileTypeCBX is a comic archive (cbz/cbr/cb7/cbt).
	FileTypeCBX BookFileType = "CBX"
	// FileTypePDF is a fixed-layout PDF document. Never delivered to devices.
	FileTypePDF BookFileType = "PDF"
)

// Book is a library book as seen by the sync engine: identity, source file
// facts needed for eligibility and format selection, and the metadata that
// ends up in the vendor entitlement.
type Book struct {
	ID         int64        `json:"id"`
	FileType   BookFileType `json:"file_type"`
	FileSizeKB int64        `json:"file_size_kb"`
	AddedOn    *time.Time   `json:"added_on,omitempty"`

	Metadata BookMetadata `json:"metadata"`
}

// BookMetadata is the descriptive part of a book record.
type BookMetadata struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Publisher      string     `json:"publisher,omitempty"`
	Imprint        string     `json:"imprint,omitempty"`
	PublishedDate  *time.Time `json:"published_date,omitempty"`
	ISBN13         string     `json:"isbn13,omitempty"`
	ISBN10         string     `json:"isbn10,omitempty"`
	Language       string     `json:"language,omitempty"`
	SeriesName     string     `json:"series_name,omitempty"`
	SeriesNumber   *float64   `json:"series_number,omitempty"`
	CoverUpdatedOn *time.Time `json:"cover_updated_on,omitempty"`

	// Authors and Categories are kept in their stored order.
	Authors    []string `json:"authors,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// FileSizeBytes returns the source file size in bytes.
func (b Book) FileSizeBytes() int64 {
	return b.FileSizeKB * 1024
}

// ISBN returns ISBN-13 when present, otherwise ISBN-10.
func (m BookMetadata) ISBN() string {
	if m.ISBN13 != "" {
		return m.ISBN13
	}
	return m.ISBN10
}

// Genre returns the first category or an empty string.
func (m BookMetadata) Genre() string {
	if len(m.Categories) == 0 {
		return ""
	}
	return m.Categories[0]
}
