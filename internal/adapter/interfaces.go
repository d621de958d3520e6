// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the e-reader vendor's store API.
//
// The primary abstraction is [UpstreamProxy]: it forwards a device request to
// the vendor with a filtered header set and the vendor's own sync token, and
// hands the answer back with the rotated vendor token folded into the local
// [models.SyncToken].
//
// Non-2xx vendor answers on the sync path are mapped by mapHTTPError to the
// sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-kobo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_proxy_mock.go -package=mock

// UpstreamProxy forwards device requests to the vendor store API.
type UpstreamProxy interface {
	// Forward relays req and returns the vendor answer whatever its status.
	// Only transport failures are errors.
	Forward(ctx context.Context, req models.ProxyRequest) (models.ProxyResponse, error)

	// Sync forwards a library sync request and parses the vendor entitlement
	// page. Non-2xx answers and malformed bodies are errors.
	Sync(ctx context.Context, req models.ProxyRequest) (models.UpstreamSyncResult, error)
}
