// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// ProxyRequest is a device request to be forwarded to the vendor store API.
type ProxyRequest struct {
	Method string
	// Path is the vendor path, without the local /api/kobo/{token} prefix.
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte

	// Token is the decoded local sync token; its RawUpstreamToken is sent
	// upstream in place of the local one.
	Token SyncToken
}

// ProxyResponse is the vendor answer to a [ProxyRequest].
type ProxyResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Continue mirrors the vendor "X-Kobo-Sync: continue" signal.
	Continue bool
	// Token is the request token with any rotated upstream token folded in.
	Token SyncToken
}

// UpstreamSyncResult is a parsed vendor library sync page.
type UpstreamSyncResult struct {
	Entitlements []Entitlement
	Continue     bool
	Token        SyncToken
}
