package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/mock"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/synctoken"
	"github.com/MKhiriev/go-kobo-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProxyRouter(upstream adapter.UpstreamProxy) http.Handler {
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:   &mockAuthService{},
			UpstreamProxy: upstream,
		},
	}
	return h.Init()
}

func TestProxy_ForwardsAndRelays(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockUpstreamProxy(ctrl)

	incoming := models.SyncToken{LastSuccessfulSnapshotID: "snap-1", RawUpstreamToken: "vendor-1"}
	encoded, err := synctoken.Encode(incoming)
	require.NoError(t, err)

	rotated := incoming.WithUpstreamToken("vendor-2")

	upstream.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/v1/analytics/event", req.Path)
			assert.Equal(t, "x=1", req.RawQuery)
			assert.Equal(t, `{"Events":[]}`, string(req.Body))
			assert.Equal(t, incoming, req.Token)

			return models.ProxyResponse{
				StatusCode: http.StatusCreated,
				Header:     http.Header{"Content-Type": {"application/json"}, "X-Kobo-Apitoken": {"e30="}},
				Body:       []byte(`{"Result":"Success"}`),
				Token:      rotated,
			}, nil
		})

	router := newProxyRouter(upstream)

	req := httptest.NewRequest(http.MethodPost, "/api/kobo/tok/v1/analytics/event?x=1", strings.NewReader(`{"Events":[]}`))
	req.Header.Set(synctoken.HeaderName, encoded)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"Result":"Success"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "e30=", rr.Header().Get("X-Kobo-Apitoken"))
	assert.Equal(t, rotated, synctoken.Decode(rr.Header().Get(synctoken.HeaderName)))
	assert.Empty(t, rr.Header().Get(synctoken.ContinueHeaderName))
}

func TestProxy_RelaysNon2xxAndContinue(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockUpstreamProxy(ctrl)

	upstream.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
			return models.ProxyResponse{
				StatusCode: http.StatusTeapot,
				Body:       []byte("nope"),
				Continue:   true,
				Token:      req.Token,
			}, nil
		})

	router := newProxyRouter(upstream)

	req := httptest.NewRequest(http.MethodGet, "/api/kobo/tok/v1/user/profile", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "nope", rr.Body.String())
	assert.Equal(t, synctoken.ContinueValue, rr.Header().Get(synctoken.ContinueHeaderName))
	// the token did not change, so it is not echoed
	assert.Empty(t, rr.Header().Get(synctoken.HeaderName))
}

func TestProxy_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"upstream disabled", adapter.ErrUpstreamDisabled, http.StatusNotFound},
		{"upstream unavailable", fmt.Errorf("%w: dial tcp", adapter.ErrUpstreamUnavailable), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			upstream := mock.NewMockUpstreamProxy(ctrl)
			upstream.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(models.ProxyResponse{}, tt.err)

			router := newProxyRouter(upstream)

			req := httptest.NewRequest(http.MethodGet, "/api/kobo/tok/v1/initialization", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestProxyRequest_BodyReadError(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/kobo/tok/v1/x", failingReader{})

	_, err := h.proxyRequest(req, models.SyncToken{})

	assert.ErrorIs(t, err, ErrReadingBody)
}
