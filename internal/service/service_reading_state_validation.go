package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kobo-sync/internal/validators"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type ReadingStateValidationService struct {
	inner     ReadingStateService
	validator validators.Validator
}

func NewReadingStateValidationService() ReadingStateServiceWrapper {
	return &ReadingStateValidationService{
		validator: validators.NewReadingStateValidator(),
	}
}

func (v *ReadingStateValidationService) GetReadingState(ctx context.Context, userID, bookID int64) ([]models.KoboReadingState, error) {
	if userID <= 0 || bookID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	return v.inner.GetReadingState(ctx, userID, bookID)
}

func (v *ReadingStateValidationService) UpdateReadingStates(ctx context.Context, userID, bookID int64, req models.ReadingStateUpdateRequest) (models.ReadingStateUpdateResponse, error) {
	if userID <= 0 || bookID <= 0 {
		return models.ReadingStateUpdateResponse{}, ErrInvalidDataProvided
	}
	if len(req.ReadingStates) == 0 {
		return models.ReadingStateUpdateResponse{}, ErrValidationNoReadingStates
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ReadingStateUpdateResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateReadingStates(ctx, userID, bookID, req)
}

func (v *ReadingStateValidationService) Wrap(inner ReadingStateService) ReadingStateService {
	v.inner = inner
	return v
}
