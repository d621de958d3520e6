package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/models"
	"github.com/go-chi/chi/v5"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	parseTokenFn func(ctx context.Context, s string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(_ context.Context, userID int64) (models.Token, error) {
	return models.Token{UserID: userID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, s string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: 1}, nil
	}
	return m.parseTokenFn(ctx, s)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return models.AppInfo{Version: m.version}
}

// ---- Mock: SyncService ----

type mockSyncService struct {
	syncFn func(ctx context.Context, req service.SyncRequest) (service.SyncResult, error)

	calls    int
	received service.SyncRequest
}

func (m *mockSyncService) Sync(ctx context.Context, req service.SyncRequest) (service.SyncResult, error) {
	m.calls++
	m.received = req
	if m.syncFn == nil {
		return service.SyncResult{Token: req.Token}, nil
	}
	return m.syncFn(ctx, req)
}

// ---- Mock: ReadingStateService ----

type mockReadingStateService struct {
	getFn    func(ctx context.Context, userID, bookID int64) ([]models.KoboReadingState, error)
	updateFn func(ctx context.Context, userID, bookID int64, req models.ReadingStateUpdateRequest) (models.ReadingStateUpdateResponse, error)
}

func (m *mockReadingStateService) GetReadingState(ctx context.Context, userID, bookID int64) ([]models.KoboReadingState, error) {
	if m.getFn == nil {
		return []models.KoboReadingState{}, nil
	}
	return m.getFn(ctx, userID, bookID)
}

func (m *mockReadingStateService) UpdateReadingStates(ctx context.Context, userID, bookID int64, req models.ReadingStateUpdateRequest) (models.ReadingStateUpdateResponse, error) {
	if m.updateFn == nil {
		return models.ReadingStateUpdateResponse{RequestResult: models.RequestResultSuccess}, nil
	}
	return m.updateFn(ctx, userID, bookID, req)
}

// ---- Helpers ----

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withURLParams attaches a chi route context carrying the given params, the
// way the router does before calling a handler.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
