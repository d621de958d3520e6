// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synctoken

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/go-kobo-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	values := []string{"", "0192f1c4-7a11-7c3e-9a55-3b1f2d4e5f60", "upstream+/=token"}

	// every combination of set / unset fields
	for _, ongoing := range values[:2] {
		for _, last := range values[:2] {
			for _, raw := range []string{values[0], values[2]} {
				token := models.SyncToken{
					OngoingSnapshotID:        ongoing,
					LastSuccessfulSnapshotID: last,
					RawUpstreamToken:         raw,
				}

				encoded, err := Encode(token)
				require.NoError(t, err)

				assert.Equal(t, token, Decode(encoded))
			}
		}
	}
}

func TestEncode_IsHeaderSafe(t *testing.T) {
	encoded, err := Encode(models.SyncToken{
		OngoingSnapshotID: "a",
		RawUpstreamToken:  strings.Repeat("?/+", 20),
	})
	require.NoError(t, err)

	assert.NotContains(t, encoded, "=")
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
}

func TestEncode_EmptyTokenIsCompact(t *testing.T) {
	encoded, err := Encode(models.SyncToken{})
	require.NoError(t, err)

	assert.Equal(t, base64.RawURLEncoding.EncodeToString([]byte("{}")), encoded)
}

func TestDecode_MalformedYieldsBootstrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "   "},
		{name: "not base64", input: "!!!not-base64!!!"},
		{name: "base64 of garbage", input: base64.RawURLEncoding.EncodeToString([]byte("garbage"))},
		{name: "base64 of json array", input: base64.RawURLEncoding.EncodeToString([]byte(`[1,2]`))},
		{name: "vendor token", input: "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9.e30.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := Decode(tt.input)
			assert.Equal(t, models.SyncToken{}, token)
			assert.True(t, token.IsBootstrap())
		})
	}
}

func TestDecode_AcceptsPaddedInput(t *testing.T) {
	want := models.SyncToken{LastSuccessfulSnapshotID: "x"}
	padded := base64.URLEncoding.EncodeToString([]byte(`{"l":"x"}`))

	assert.Equal(t, want, Decode(padded))
}

func TestSyncToken_Transitions(t *testing.T) {
	start := models.SyncToken{LastSuccessfulSnapshotID: "prev", RawUpstreamToken: "up"}

	continuing := start.Continuing("curr")
	assert.Equal(t, "curr", continuing.OngoingSnapshotID)
	assert.Equal(t, "prev", continuing.LastSuccessfulSnapshotID)
	assert.True(t, continuing.IsContinuing())

	completed := continuing.Completed("curr")
	assert.Empty(t, completed.OngoingSnapshotID)
	assert.Equal(t, "curr", completed.LastSuccessfulSnapshotID)
	assert.Equal(t, "up", completed.RawUpstreamToken)

	assert.Equal(t, "up", completed.WithUpstreamToken("").RawUpstreamToken)
	assert.Equal(t, "rotated", completed.WithUpstreamToken("rotated").RawUpstreamToken)

	// the receiver is never modified
	assert.Equal(t, models.SyncToken{LastSuccessfulSnapshotID: "prev", RawUpstreamToken: "up"}, start)
}
