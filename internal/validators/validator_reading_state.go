package validators

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-kobo-sync/models"
)

type ReadingStateValidator struct {
}

func NewReadingStateValidator() Validator {
	return &ReadingStateValidator{}
}

func (v *ReadingStateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReadingStateUpdateRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.ReadingStateUpdateRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.KoboReadingState:
		return v.validateReadingState(ctx, value, fields...)
	case *models.KoboReadingState:
		return v.validateReadingState(ctx, *value, fields...)

	case models.UserSyncSettings:
		return v.validateUserSettings(ctx, value, fields...)
	case *models.UserSyncSettings:
		return v.validateUserSettings(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ReadingStateValidator) validateUpdateRequest(ctx context.Context, request models.ReadingStateUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReadingStates}
	}

	for _, f := range fields {
		switch f {
		case FieldReadingStates:
			if len(request.ReadingStates) == 0 {
				return ErrEmptyReadingStates
			}
			for i, state := range request.ReadingStates {
				if err := v.validateReadingState(ctx, state); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateReadingState only checks the shape of a state. Whether the book
// exists is decided by the service, which acknowledges unknown books as
// ignored instead of failing the request.
func (v *ReadingStateValidator) validateReadingState(_ context.Context, state models.KoboReadingState, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntitlementID, FieldBookmark}
	}

	for _, f := range fields {
		switch f {
		case FieldEntitlementID:
			if state.EntitlementID == "" {
				return ErrInvalidEntitlementID
			}
			if _, err := strconv.ParseInt(state.EntitlementID, 10, 64); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEntitlementID, err)
			}
		case FieldBookmark:
			bm := state.CurrentBookmark
			if bm == nil {
				continue
			}
			if bm.ProgressPercent != nil && !isPercent(*bm.ProgressPercent) {
				return ErrInvalidProgressPercent
			}
			if bm.Location != nil && (bm.Location.Value == "" || bm.Location.Type == "") {
				return ErrInvalidLocation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReadingStateValidator) validateUserSettings(_ context.Context, settings models.UserSyncSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldThresholds}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if settings.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldThresholds:
			reading, finished := settings.ReadingThreshold, settings.FinishedThreshold
			if reading != nil && !isPercent(*reading) {
				return fmt.Errorf("%w: reading threshold %v", ErrInvalidSettings, *reading)
			}
			if finished != nil && !isPercent(*finished) {
				return fmt.Errorf("%w: finished threshold %v", ErrInvalidSettings, *finished)
			}
			if reading != nil && finished != nil && *reading > *finished {
				return fmt.Errorf("%w: reading threshold above finished threshold", ErrInvalidSettings)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isPercent(p float64) bool {
	return p >= 0 && p <= 100
}
