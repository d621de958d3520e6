package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/models"
	"github.com/stretchr/testify/assert"
)

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthService{
				parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
					if s != "good-token" {
						return models.Token{}, service.ErrTokenIsExpiredOrInvalid
					}
					return models.Token{UserID: 1}, nil
				},
			},
			AppInfoService:      &mockAppInfoService{version: "test-version"},
			SyncService:         &mockSyncService{},
			ReadingStateService: &mockReadingStateService{},
		},
	}
	return h.Init()
}

// ---- Public routes: reachable without a device token ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- Device routes: 401 with a bad token ----

func TestInit_DeviceRoutes_RequireValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/kobo/bad-token/v1/library/sync"},
		{http.MethodGet, "/api/kobo/bad-token/v1/library/1/state"},
		{http.MethodPut, "/api/kobo/bad-token/v1/library/1/state"},
		{http.MethodGet, "/api/kobo/bad-token/v1/initialization"},
		{http.MethodGet, "/api/kobo/bad-token/v1/books/1/download"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Device routes: pass with a valid token ----

func TestInit_DeviceRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/kobo/good-token/v1/library/sync"},
		{http.MethodGet, "/api/kobo/good-token/v1/library/1/state"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" → 200", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

// ---- Book downloads are never proxied ----

func TestInit_BookDownloadIsNotProxied(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/kobo/good-token/v1/books/9/download", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// UpstreamProxy is nil here: reaching it would panic and Recoverer would answer 500.
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodPatch, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/kobo/good-token/v1/library/sync", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
