package usecase

import (
	"context"
	"fmt"

	"form-data-backend/internal/domain"
	"form-data-backend/internal/mapper"
	"form-data-backend/pkg/apperror"
	"form-data-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	storageType    = "database"
	databaseEngine = "postgresql"
)

type formDataUsecase struct {
	repo     domain.FormDataRepository
	validate *validator.Validate
}

// NewFormDataUsecase wires the profile service. validate must have the custom
// rules from pkg/validation registered.
func NewFormDataUsecase(repo domain.FormDataRepository, validate *validator.Validate) domain.FormDataUsecase {
	return &formDataUsecase{repo: repo, validate: validate}
}

// validatePayload rejects the input before any store access
func (u *formDataUsecase) validatePayload(input *domain.FormData) error {
	if input == nil {
		return apperror.BadRequest("Request body is required")
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.Unprocessable("Validation failed", validation.FormatValidationErrors(err))
	}
	return nil
}

func (u *formDataUsecase) CreateFormData(ctx context.Context, input *domain.FormData) (*domain.FormDataResponse, error) {
	if err := u.validatePayload(input); err != nil {
		return nil, err
	}

	rec, err := u.repo.Create(ctx, input)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create form data: %w", err))
	}
	return mapper.ToResponse(rec), nil
}

func (u *formDataUsecase) GetFormData(ctx context.Context, id string) (*domain.FormDataResponse, bool, error) {
	rec, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, apperror.Internal(fmt.Errorf("failed to get form data: %w", err))
	}
	if !found {
		return nil, false, nil
	}
	return mapper.ToResponse(rec), true, nil
}

func (u *formDataUsecase) GetAllFormData(ctx context.Context) ([]domain.FormDataResponse, error) {
	recs, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list form data: %w", err))
	}
	return mapper.ToResponseList(recs), nil
}

func (u *formDataUsecase) SearchFormData(ctx context.Context, filter domain.SearchFilter) ([]domain.FormDataResponse, error) {
	recs, err := u.repo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to search form data: %w", err))
	}
	return mapper.ToResponseList(recs), nil
}

func (u *formDataUsecase) UpdateFormData(ctx context.Context, id string, input *domain.FormData) (*domain.FormDataResponse, bool, error) {
	if err := u.validatePayload(input); err != nil {
		return nil, false, err
	}

	rec, found, err := u.repo.Update(ctx, id, input)
	if err != nil {
		return nil, false, apperror.Internal(fmt.Errorf("failed to update form data: %w", err))
	}
	if !found {
		return nil, false, nil
	}
	return mapper.ToResponse(rec), true, nil
}

// DeleteFormData returns the profile as it was just before deletion
func (u *formDataUsecase) DeleteFormData(ctx context.Context, id string) (*domain.FormDataResponse, bool, error) {
	rec, found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return nil, false, apperror.Internal(fmt.Errorf("failed to delete form data: %w", err))
	}
	if !found {
		return nil, false, nil
	}
	return mapper.ToResponse(rec), true, nil
}

func (u *formDataUsecase) GetStorageInfo(ctx context.Context) (*domain.StorageInfo, error) {
	counts, err := u.repo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to count form data: %w", err))
	}
	return &domain.StorageInfo{
		TotalEntries:   counts.FormData,
		StorageType:    storageType,
		DatabaseEngine: databaseEngine,
		Collections:    counts.Collections,
	}, nil
}
