package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that authenticates device routes.
//
// E-readers cannot send an Authorization header, so the device token is part
// of the API base URL: /api/kobo/{token}/... The token is validated via
// [service.AuthService.ParseToken]. On success the user ID is stored under
// [utils.UserIDCtxKey] and the raw token under [utils.DeviceTokenCtxKey],
// since download links handed to the device must embed it again.
//
// Requests with an empty or invalid token are rejected with HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := chi.URLParam(r, tokenURLParam)
		if tokenString == "" {
			log.Err(ErrEmptyToken).Send()
			http.Error(w, ErrEmptyToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("device token is expired or invalid")
				http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.DeviceTokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
