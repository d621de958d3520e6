package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/internal/synctoken"
	"github.com/MKhiriev/go-kobo-sync/internal/utils"
	"github.com/MKhiriev/go-kobo-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncRouter(syncSvc service.SyncService, publicURL string) http.Handler {
	h := &Handler{
		logger:    logger.Nop(),
		publicURL: publicURL,
		services: &service.Services{
			AuthService: &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{UserID: 42}, nil
				},
			},
			SyncService: syncSvc,
		},
	}
	return h.Init()
}

func TestSyncLibrary_PassesRequestToService(t *testing.T) {
	incoming := models.SyncToken{LastSuccessfulSnapshotID: "snap-1", RawUpstreamToken: "vendor-1"}
	encoded, err := synctoken.Encode(incoming)
	require.NoError(t, err)

	syncSvc := &mockSyncService{}
	router := newSyncRouter(syncSvc, "https://books.example.com/")

	req := httptest.NewRequest(http.MethodGet, "/api/kobo/dev-tok/v1/library/sync?Filter=ALL", nil)
	req.Header.Set(synctoken.HeaderName, encoded)
	req.Header.Set("User-Agent", "Kobo Touch")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, syncSvc.calls)

	got := syncSvc.received
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, incoming, got.Token)
	assert.Equal(t, "https://books.example.com/api/kobo/dev-tok", got.DownloadBaseURL)
	assert.Equal(t, http.MethodGet, got.Upstream.Method)
	assert.Equal(t, "/v1/library/sync", got.Upstream.Path)
	assert.Equal(t, "Filter=ALL", got.Upstream.RawQuery)
	assert.Equal(t, "Kobo Touch", got.Upstream.Header.Get("User-Agent"))
}

func TestSyncLibrary_DownloadBaseFromForwardedHeaders(t *testing.T) {
	syncSvc := &mockSyncService{}
	router := newSyncRouter(syncSvc, "")

	req := httptest.NewRequest(http.MethodGet, "/api/kobo/dev-tok/v1/library/sync", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "library.example.org")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://library.example.org/api/kobo/dev-tok", syncSvc.received.DownloadBaseURL)
}

func TestSyncLibrary_ResponseHeadersAndBody(t *testing.T) {
	tests := []struct {
		name         string
		result       service.SyncResult
		wantContinue bool
		wantBody     string
	}{
		{
			name: "round continues",
			result: service.SyncResult{
				Entitlements: []models.Entitlement{
					models.ChangedReadingStateItem(models.KoboReadingState{EntitlementID: "5", LastModified: "2026-01-01T00:00:00Z"}),
				},
				Continue: true,
				Token:    models.SyncToken{OngoingSnapshotID: "snap-2"},
			},
			wantContinue: true,
			wantBody:     `[{"ChangedReadingState":{"ReadingState":{"EntitlementId":"5","LastModified":"2026-01-01T00:00:00Z"}}}]`,
		},
		{
			name: "round completed with nothing to send",
			result: service.SyncResult{
				Token: models.SyncToken{LastSuccessfulSnapshotID: "snap-2"},
			},
			wantContinue: false,
			wantBody:     `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncSvc := &mockSyncService{
				syncFn: func(_ context.Context, _ service.SyncRequest) (service.SyncResult, error) {
					return tt.result, nil
				},
			}
			router := newSyncRouter(syncSvc, "")

			req := httptest.NewRequest(http.MethodGet, "/api/kobo/dev-tok/v1/library/sync", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.result.Token, synctoken.Decode(rr.Header().Get(synctoken.HeaderName)))

			if tt.wantContinue {
				assert.Equal(t, synctoken.ContinueValue, rr.Header().Get(synctoken.ContinueHeaderName))
			} else {
				assert.Empty(t, rr.Header().Get(synctoken.ContinueHeaderName))
			}
		})
	}
}

func TestSyncLibrary_UpstreamItemsRelayedVerbatim(t *testing.T) {
	raw := json.RawMessage(`{"NewTag":{"Tag":{"Id":"t1"}}}`)
	syncSvc := &mockSyncService{
		syncFn: func(_ context.Context, req service.SyncRequest) (service.SyncResult, error) {
			return service.SyncResult{
				Entitlements: []models.Entitlement{models.UpstreamItem(raw)},
				Token:        req.Token,
			}, nil
		},
	}
	router := newSyncRouter(syncSvc, "")

	req := httptest.NewRequest(http.MethodGet, "/api/kobo/dev-tok/v1/library/sync", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"NewTag":{"Tag":{"Id":"t1"}}}]`, rr.Body.String())
}

func TestSyncLibrary_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"upstream failure", fmt.Errorf("%w: %w", service.ErrUpstreamSyncFailed, adapter.ErrUpstreamUnavailable), http.StatusBadGateway},
		{"database failure", fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unclassified failure", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncSvc := &mockSyncService{
				syncFn: func(_ context.Context, _ service.SyncRequest) (service.SyncResult, error) {
					return service.SyncResult{}, tt.err
				},
			}
			router := newSyncRouter(syncSvc, "")

			req := httptest.NewRequest(http.MethodGet, "/api/kobo/dev-tok/v1/library/sync", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get(synctoken.HeaderName))
		})
	}
}

func TestSyncLibrary_NoUserInContext(t *testing.T) {
	syncSvc := &mockSyncService{}
	h := &Handler{logger: logger.Nop(), services: &service.Services{SyncService: syncSvc}}

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/kobo/dev-tok/v1/library/sync", nil))
	rr := httptest.NewRecorder()
	h.syncLibrary(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Zero(t, syncSvc.calls)
}

func TestDeviceBaseURL(t *testing.T) {
	h := &Handler{publicURL: ""}

	req := httptest.NewRequest(http.MethodGet, "http://reader.local:8080/api/kobo/abc/v1/library/sync", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.DeviceTokenCtxKey, "abc"))

	assert.Equal(t, "http://reader.local:8080/api/kobo/abc", h.deviceBaseURL(req))
}
