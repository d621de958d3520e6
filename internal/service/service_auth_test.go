// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
)

func newTestAuthService(duration time.Duration) AuthService {
	return NewAuthService(config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-kobo-sync",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := newTestAuthService(0)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())
	assert.Equal(t, int64(42), token.UserID)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_CreateToken_InvalidUser(t *testing.T) {
	_, err := newTestAuthService(0).CreateToken(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	svc := NewAuthService(config.Auth{TokenIssuer: "go-kobo-sync"}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), 1)
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()

	expired, err := newTestAuthService(-time.Minute).CreateToken(ctx, 1)
	require.NoError(t, err)

	foreign, err := NewAuthService(config.Auth{TokenSignKey: "other-key", TokenIssuer: "go-kobo-sync"}, logger.Nop()).CreateToken(ctx, 1)
	require.NoError(t, err)

	otherIssuer, err := NewAuthService(config.Auth{TokenSignKey: "test-sign-key", TokenIssuer: "someone"}, logger.Nop()).CreateToken(ctx, 1)
	require.NoError(t, err)

	svc := newTestAuthService(0)
	for name, raw := range map[string]string{
		"garbage":      "not-a-jwt",
		"expired":      expired.String(),
		"wrong key":    foreign.String(),
		"wrong issuer": otherIssuer.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
