package adapter

import "errors"

var (
	ErrUpstreamDisabled    = errors.New("upstream proxy is disabled")
	ErrUpstreamUnavailable = errors.New("upstream is unavailable")

	ErrBadRequest          = errors.New("upstream rejected the request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream resource not found")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("upstream bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected upstream status")

	ErrMalformedResponse = errors.New("malformed upstream response")
)
