// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// KoboTimeLayout is the timestamp layout used on the vendor wire.
const KoboTimeLayout = "2006-01-02T15:04:05Z"

// FormatKoboTime renders t in UTC using [KoboTimeLayout].
func FormatKoboTime(t time.Time) string {
	return t.UTC().Format(KoboTimeLayout)
}

// EntitlementKind discriminates the variants of [Entitlement].
type EntitlementKind int

const (
	// EntitlementKindNew announces a book the device does not have yet.
	EntitlementKindNew EntitlementKind = iota + 1
	// EntitlementKindChanged replaces (or removes) a book the device has.
	EntitlementKindChanged
	// EntitlementKindChangedReadingState carries a reading-state push only.
	EntitlementKindChangedReadingState
	// EntitlementKindUpstream is an item relayed verbatim from the vendor.
	EntitlementKindUpstream
)

const (
	wireKeyNewEntitlement      = "NewEntitlement"
	wireKeyChangedEntitlement  = "ChangedEntitlement"
	wireKeyChangedReadingState = "ChangedReadingState"
)

// ErrEmptyEntitlement is returned when marshaling an [Entitlement] whose
// variant payload is missing.
var ErrEmptyEntitlement = errors.New("entitlement variant payload is empty")

// Entitlement is one item of a sync response. Exactly one payload field is
// set, selected by Kind. On the wire it is a single-key object named after
// the variant.
type Entitlement struct {
	Kind EntitlementKind

	New          *NewEntitlement
	Changed      *ChangedEntitlement
	ReadingState *ChangedReadingState
	Raw          json.RawMessage
}

// NewEntitlement is the payload of a "NewEntitlement" item.
type NewEntitlement struct {
	BookEntitlement KoboBookEntitlement `json:"BookEntitlement"`
	BookMetadata    KoboBookMetadata    `json:"BookMetadata"`
	ReadingState    KoboReadingState    `json:"ReadingState"`
}

// ChangedEntitlement is the payload of a "ChangedEntitlement" item.
type ChangedEntitlement struct {
	BookEntitlement KoboBookEntitlement `json:"BookEntitlement"`
	BookMetadata    KoboBookMetadata    `json:"BookMetadata"`
}

// ChangedReadingState is the payload of a "ChangedReadingState" item.
type ChangedReadingState struct {
	ReadingState KoboReadingState `json:"ReadingState"`
}

// NewEntitlementItem wraps e as an [Entitlement].
func NewEntitlementItem(e NewEntitlement) Entitlement {
	return Entitlement{Kind: EntitlementKindNew, New: &e}
}

// ChangedEntitlementItem wraps e as an [Entitlement].
func ChangedEntitlementItem(e ChangedEntitlement) Entitlement {
	return Entitlement{Kind: EntitlementKindChanged, Changed: &e}
}

// ChangedReadingStateItem wraps s as an [Entitlement].
func ChangedReadingStateItem(s KoboReadingState) Entitlement {
	return Entitlement{Kind: EntitlementKindChangedReadingState, ReadingState: &ChangedReadingState{ReadingState: s}}
}

// UpstreamItem wraps an opaque vendor item as an [Entitlement].
func UpstreamItem(raw json.RawMessage) Entitlement {
	return Entitlement{Kind: EntitlementKindUpstream, Raw: raw}
}

// MarshalJSON renders the single-key wrapper object for the variant.
func (e Entitlement) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case EntitlementKindNew:
		if e.New == nil {
			return nil, ErrEmptyEntitlement
		}
		return json.Marshal(map[string]*NewEntitlement{wireKeyNewEntitlement: e.New})
	case EntitlementKindChanged:
		if e.Changed == nil {
			return nil, ErrEmptyEntitlement
		}
		return json.Marshal(map[string]*ChangedEntitlement{wireKeyChangedEntitlement: e.Changed})
	case EntitlementKindChangedReadingState:
		if e.ReadingState == nil {
			return nil, ErrEmptyEntitlement
		}
		return json.Marshal(map[string]*ChangedReadingState{wireKeyChangedReadingState: e.ReadingState})
	case EntitlementKindUpstream:
		if len(bytes.TrimSpace(e.Raw)) == 0 {
			return nil, ErrEmptyEntitlement
		}
		return e.Raw, nil
	default:
		return nil, fmt.Errorf("unknown entitlement kind %d", e.Kind)
	}
}

// UnmarshalJSON decodes a wrapper object. Objects that are not one of the
// locally produced variants are kept as [EntitlementKindUpstream].
func (e *Entitlement) UnmarshalJSON(data []byte) error {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	if len(wrapper) == 1 {
		for key, payload := range wrapper {
			switch key {
			case wireKeyNewEntitlement:
				var v NewEntitlement
				if err := json.Unmarshal(payload, &v); err != nil {
					return err
				}
				*e = NewEntitlementItem(v)
				return nil
			case wireKeyChangedEntitlement:
				var v ChangedEntitlement
				if err := json.Unmarshal(payload, &v); err != nil {
					return err
				}
				*e = ChangedEntitlementItem(v)
				return nil
			case wireKeyChangedReadingState:
				var v ChangedReadingState
				if err := json.Unmarshal(payload, &v); err != nil {
					return err
				}
				*e = ChangedReadingStateItem(v.ReadingState)
				return nil
			}
		}
	}

	*e = UpstreamItem(append(json.RawMessage(nil), data...))
	return nil
}

// KoboBookEntitlement is the "BookEntitlement" block.
type KoboBookEntitlement struct {
	Accessibility       string           `json:"Accessibility"`
	ActivePeriod        KoboActivePeriod `json:"ActivePeriod"`
	Created             string           `json:"Created"`
	CrossRevisionID     string           `json:"CrossRevisionId"`
	ID                  string           `json:"Id"`
	IsRemoved           bool             `json:"IsRemoved"`
	IsHiddenFromArchive bool             `json:"IsHiddenFromArchive"`
	IsLocked            bool             `json:"IsLocked"`
	LastModified        string           `json:"LastModified"`
	OriginCategory      string           `json:"OriginCategory"`
	RevisionID          string           `json:"RevisionId"`
	Status              string           `json:"Status"`
}

// KoboActivePeriod is the entitlement validity window.
type KoboActivePeriod struct {
	From string `json:"From"`
}

// KoboBookMetadata is the "BookMetadata" block.
type KoboBookMetadata struct {
	Categories             []string              `json:"Categories"`
	CoverImageID           string                `json:"CoverImageId"`
	CrossRevisionID        string                `json:"CrossRevisionId"`
	CurrentDisplayPrice    KoboDisplayPrice      `json:"CurrentDisplayPrice"`
	Description            string                `json:"Description,omitempty"`
	DownloadUrls           []KoboDownloadURL     `json:"DownloadUrls"`
	EntitlementID          string                `json:"EntitlementId"`
	ExternalIDs            []string              `json:"ExternalIds"`
	Genre                  string                `json:"Genre"`
	IsEligibleForKoboLove  bool                  `json:"IsEligibleForKoboLove"`
	IsInternetArchive      bool                  `json:"IsInternetArchive"`
	IsPreOrder             bool                  `json:"IsPreOrder"`
	IsSocialEnabled        bool                  `json:"IsSocialEnabled"`
	ISBN                   string                `json:"Isbn,omitempty"`
	Language               string                `json:"Language"`
	PhoneticPronunciations map[string]string     `json:"PhoneticPronunciations"`
	PublicationDate        string                `json:"PublicationDate,omitempty"`
	Publisher              KoboPublisher         `json:"Publisher"`
	RevisionID             string                `json:"RevisionId"`
	Series                 *KoboSeries           `json:"Series,omitempty"`
	Slug                   string                `json:"Slug"`
	Title                  string                `json:"Title"`
	WorkID                 string                `json:"WorkId"`
	Contributors           []string              `json:"Contributors"`
	ContributorRoles       []KoboContributorRole `json:"ContributorRoles"`
}

// KoboDisplayPrice is a (always free) price tag.
type KoboDisplayPrice struct {
	CurrencyCode string  `json:"CurrencyCode"`
	TotalAmount  float64 `json:"TotalAmount"`
}

// KoboDownloadURL is one download target of a book.
type KoboDownloadURL struct {
	Format   string `json:"Format"`
	Size     int64  `json:"Size"`
	URL      string `json:"Url"`
	Platform string `json:"Platform"`
}

// KoboPublisher is the publisher block.
type KoboPublisher struct {
	Imprint string `json:"Imprint"`
	Name    string `json:"Name"`
}

// KoboSeries is the series block.
type KoboSeries struct {
	ID          string  `json:"Id"`
	Name        string  `json:"Name"`
	Number      string  `json:"Number"`
	NumberFloat float64 `json:"NumberFloat"`
}

// KoboContributorRole names one contributor.
type KoboContributorRole struct {
	Name string `json:"Name"`
}
