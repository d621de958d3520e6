package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrBookNotFound       = errors.New("book was not found")
	ErrInvalidThresholds  = errors.New("thresholds must satisfy 0 <= reading <= finished <= 100")
	ErrUpstreamSyncFailed = errors.New("upstream sync failed")
	ErrEncodingSyncToken  = errors.New("error encoding sync token")

	ErrValidationNoReadingStates = errors.New("no reading states provided")
)
