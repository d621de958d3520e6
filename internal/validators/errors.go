package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrEmptyReadingStates     = errors.New("reading states list cannot be empty")
	ErrInvalidEntitlementID   = errors.New("invalid entitlement id")
	ErrInvalidProgressPercent = errors.New("progress percent must be between 0 and 100")
	ErrInvalidLocation        = errors.New("bookmark location requires a value and a type")
	ErrInvalidSettings        = errors.New("invalid sync settings")
)
