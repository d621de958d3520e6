// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package synctoken serializes [models.SyncToken] for the X-Kobo-SyncToken
// header: unpadded base64url over compact JSON with one-letter keys.
package synctoken

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-kobo-sync/models"
)

const (
	// HeaderName is the request and response header carrying the token.
	HeaderName = "X-Kobo-SyncToken"

	// ContinueHeaderName signals that more pages of the round are pending
	// when it carries [ContinueValue].
	ContinueHeaderName = "X-Kobo-Sync"
	ContinueValue      = "continue"
)

var encoding = base64.RawURLEncoding

// Encode returns the transport form of t.
func Encode(t models.SyncToken) (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("error encoding sync token: %w", err)
	}

	return encoding.EncodeToString(raw), nil
}

// Decode parses s. Any failure, including an empty or foreign value,
// yields the zero (bootstrap) token.
func Decode(s string) models.SyncToken {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.SyncToken{}
	}

	raw, err := encoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return models.SyncToken{}
	}

	var t models.SyncToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return models.SyncToken{}
	}

	return t
}
