package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrValidationNoReadingStates: http.StatusBadRequest,
	service.ErrInvalidThresholds:         http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrBookNotFound:              http.StatusNotFound,
	service.ErrUpstreamSyncFailed:        http.StatusBadGateway,
	service.ErrEncodingSyncToken:         http.StatusInternalServerError,

	adapter.ErrUpstreamDisabled:    http.StatusNotFound,
	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,

	ErrInvalidBookID: http.StatusBadRequest,
	ErrNoUserID:      http.StatusUnauthorized,
	ErrReadingBody:   http.StatusBadRequest,

	store.ErrSnapshotNotFound: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
