// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/app"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/synctoken"
	"github.com/MKhiriev/go-kobo-sync/internal/utils"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// syncLibrary runs one library sync round for the authenticated device.
//
// The device sends the token it got from the previous round in
// X-Kobo-SyncToken. The answer carries the next token in the same header and
// X-Kobo-Sync: continue while the round has pages left.
func (h *Handler) syncLibrary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncLibrary").Msg(ErrNoUserID.Error())
		http.Error(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	token := synctoken.Decode(r.Header.Get(synctoken.HeaderName))

	upstream, err := h.proxyRequest(r, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncLibrary").Msg("error reading request body")
		http.Error(w, ErrReadingBody.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.SyncService.Sync(ctx, service.SyncRequest{
		UserID:          userID,
		Token:           token,
		DownloadBaseURL: h.deviceBaseURL(r),
		Upstream:        upstream,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncLibrary").Msg(app.MsgSyncRoundFailed)
		http.Error(w, app.MsgSyncRoundFailed, statusFromError(err))
		return
	}

	encoded, err := synctoken.Encode(result.Token)
	if err != nil {
		err = fmt.Errorf("%w: %w", service.ErrEncodingSyncToken, err)
		log.Err(err).Str("func", "*Handler.syncLibrary").Send()
		http.Error(w, service.ErrEncodingSyncToken.Error(), statusFromError(err))
		return
	}

	entitlements := result.Entitlements
	if entitlements == nil {
		entitlements = []models.Entitlement{}
	}

	log.Debug().
		Int64("user_id", userID).
		Int("entitlements", len(entitlements)).
		Int("skipped", result.Skipped).
		Bool("continue", result.Continue).
		Msg("sync round served")

	w.Header().Set(synctoken.HeaderName, encoded)
	if result.Continue {
		w.Header().Set(synctoken.ContinueHeaderName, synctoken.ContinueValue)
	}

	if _, err = utils.WriteJSON(w, entitlements, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.syncLibrary").Msg("error writing sync response")
	}
}

// deviceBaseURL is the externally visible /api/kobo/{token} root of the
// calling device. Download links are built on top of it.
func (h *Handler) deviceBaseURL(r *http.Request) string {
	deviceToken, _ := utils.GetDeviceTokenFromContext(r.Context())
	return utils.RequestBaseURL(r, h.publicURL) + koboPrefix + deviceToken
}

// proxyRequest turns r into a vendor request: the local path prefix is
// stripped and the body is buffered so it can be sent upstream.
func (h *Handler) proxyRequest(r *http.Request, token models.SyncToken) (models.ProxyRequest, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return models.ProxyRequest{}, fmt.Errorf("%w: %w", ErrReadingBody, err)
		}
	}

	return models.ProxyRequest{
		Method:   r.Method,
		Path:     adapter.UpstreamPath(r.URL.Path),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
		Token:    token,
	}, nil
}
