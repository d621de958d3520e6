// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/synctoken"
	"github.com/MKhiriev/go-kobo-sync/internal/utils"
	"github.com/MKhiriev/go-kobo-sync/models"
)

// localPrefix is the path segment every device route lives under.
const localPrefix = "/api/kobo/"

// forwardedHeaders are the request headers relayed upstream besides the
// X-Kobo-* family.
var forwardedHeaders = map[string]struct{}{
	"Accept":          {},
	"Accept-Language": {},
	"Authorization":   {},
	"Content-Type":    {},
	"If-None-Match":   {},
	"User-Agent":      {},
}

// droppedResponseHeaders are hop-by-hop or rewritten headers that must not
// be copied back to the device.
var droppedResponseHeaders = map[string]struct{}{
	"Connection":        {},
	"Content-Encoding":  {},
	"Content-Length":    {},
	"Keep-Alive":        {},
	"Proxy-Connection":  {},
	"Trailer":           {},
	"Transfer-Encoding": {},
	"Upgrade":           {},
}

type upstreamProxy struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewUpstreamProxy constructs the resty-backed [UpstreamProxy] for
// cfg.UpstreamURL. An empty URL or cfg.Disabled yields a proxy that never
// calls out: Sync returns an empty page and Forward fails with
// [ErrUpstreamDisabled].
//
// Returns an error if the URL cannot be parsed.
func NewUpstreamProxy(cfg config.Adapter, logger *logger.Logger) (UpstreamProxy, error) {
	if cfg.Disabled || strings.TrimSpace(cfg.UpstreamURL) == "" {
		logger.Info().Msg("vendor proxy disabled")
		return disabledProxy{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.UpstreamURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url: %w", err)
	}

	return &upstreamProxy{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Forward implements [UpstreamProxy].
func (p *upstreamProxy) Forward(ctx context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
	log := logger.FromContext(ctx)

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	path := UpstreamPath(req.Path)

	r := p.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(forwardHeaders(req.Header))
	if req.Token.RawUpstreamToken != "" {
		r.SetHeader(synctoken.HeaderName, req.Token.RawUpstreamToken)
	}
	if req.RawQuery != "" {
		r.SetQueryString(req.RawQuery)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		log.Err(err).Str("func", "*upstreamProxy.Forward").Str("method", method).Str("path", path).Msg("upstream request failed")
		return models.ProxyResponse{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	log.Debug().
		Str("func", "*upstreamProxy.Forward").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("upstream answered")

	return models.ProxyResponse{
		StatusCode: resp.StatusCode(),
		Header:     relayHeaders(resp.Header()),
		Body:       resp.Body(),
		Continue:   isContinue(resp.Header()),
		Token:      req.Token.WithUpstreamToken(strings.TrimSpace(resp.Header().Get(synctoken.HeaderName))),
	}, nil
}

// Sync implements [UpstreamProxy].
func (p *upstreamProxy) Sync(ctx context.Context, req models.ProxyRequest) (models.UpstreamSyncResult, error) {
	log := logger.FromContext(ctx)

	resp, err := p.Forward(ctx, req)
	if err != nil {
		return models.UpstreamSyncResult{}, err
	}

	if err = mapHTTPError(resp.StatusCode, resp.Body); err != nil {
		log.Err(err).Str("func", "*upstreamProxy.Sync").Int("status", resp.StatusCode).Msg("upstream sync failed")
		return models.UpstreamSyncResult{}, err
	}

	// vendor items are relayed byte for byte, fields unknown locally included
	var raw []json.RawMessage
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		if err = json.Unmarshal(resp.Body, &raw); err != nil {
			log.Err(err).Str("func", "*upstreamProxy.Sync").Msg("error decoding upstream sync body")
			return models.UpstreamSyncResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	}

	items := make([]models.Entitlement, 0, len(raw))
	for _, item := range raw {
		items = append(items, models.UpstreamItem(item))
	}

	return models.UpstreamSyncResult{
		Entitlements: items,
		Continue:     resp.Continue,
		Token:        resp.Token,
	}, nil
}

// UpstreamPath strips the local /api/kobo/{token} prefix from path, if
// present, and guarantees a leading slash.
func UpstreamPath(path string) string {
	if strings.HasPrefix(path, localPrefix) {
		rest := strings.TrimPrefix(path, localPrefix)
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			path = rest[i:]
		} else {
			path = "/"
		}
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return path
}

func forwardHeaders(in http.Header) map[string][]string {
	out := make(map[string][]string, len(in))
	for name, values := range in {
		canonical := http.CanonicalHeaderKey(name)
		if strings.EqualFold(canonical, synctoken.HeaderName) {
			continue
		}
		_, allowed := forwardedHeaders[canonical]
		if !allowed && !strings.HasPrefix(canonical, "X-Kobo-") {
			continue
		}
		out[canonical] = append([]string(nil), values...)
	}
	return out
}

func relayHeaders(in http.Header) http.Header {
	out := make(http.Header, len(in))
	for name, values := range in {
		canonical := http.CanonicalHeaderKey(name)
		if _, dropped := droppedResponseHeaders[canonical]; dropped {
			continue
		}
		if strings.EqualFold(canonical, synctoken.HeaderName) {
			continue
		}
		out[canonical] = append([]string(nil), values...)
	}
	return out
}

func isContinue(h http.Header) bool {
	return strings.EqualFold(strings.TrimSpace(h.Get(synctoken.ContinueHeaderName)), synctoken.ContinueValue)
}

// disabledProxy is used when no upstream URL is configured.
type disabledProxy struct{}

func (disabledProxy) Forward(context.Context, models.ProxyRequest) (models.ProxyResponse, error) {
	return models.ProxyResponse{}, ErrUpstreamDisabled
}

func (disabledProxy) Sync(_ context.Context, req models.ProxyRequest) (models.UpstreamSyncResult, error) {
	return models.UpstreamSyncResult{Entitlements: []models.Entitlement{}, Token: req.Token}, nil
}
